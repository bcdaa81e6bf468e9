package domain

import "time"

// TimeRange is a half-open [Start, End) interval used for
// interval-intersection tests.
type TimeRange struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether two half-open intervals intersect.
// Adjacent intervals (one ending exactly where the other starts) do not
// overlap.
func (r TimeRange) Overlaps(other TimeRange) bool {
	return !(!r.End.After(other.Start) || !r.Start.Before(other.End))
}

// Contains reports whether the instant t falls inside the interval.
func (r TimeRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && t.Before(r.End)
}
