package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-ShopService/internal/domain"
	"github.com/m04kA/SMC-ShopService/pkg/types"
)

// generateSlots produces the bookable start instants of one calendar day.
// Candidates run from the business-day start at fixed steps; a candidate is
// kept when the whole [candidate, candidate+duration) interval fits before
// the business-day end and intersects no existing appointment.
//
// For today the window is truncated: candidates earlier than now rounded up
// to the next step boundary are dropped. Seconds are ignored by the rounding,
// so at 09:17 the first candidate is 09:20 and at 09:20:30 it is still 09:20.
func generateSlots(
	businessStart, businessEnd types.TimeString,
	stepMinutes int,
	date time.Time,
	now time.Time,
	durationMinutes int,
	appointments []*domain.Appointment,
) ([]string, error) {
	if isDateInPast(date, now) {
		return []string{}, nil
	}

	open, err := businessStart.At(date)
	if err != nil {
		return nil, err
	}
	closing, err := businessEnd.At(date)
	if err != nil {
		return nil, err
	}

	if isSameDay(date, now) {
		rounded := roundUpToStep(now, stepMinutes)
		if rounded.After(open) {
			open = rounded
		}
	}

	busy := make([]domain.TimeRange, 0, len(appointments))
	for _, appt := range appointments {
		busy = append(busy, appt.Range())
	}

	duration := time.Duration(durationMinutes) * time.Minute
	step := time.Duration(stepMinutes) * time.Minute

	slots := make([]string, 0)
	for candidate := open; !candidate.After(closing); candidate = candidate.Add(step) {
		candidateRange := domain.TimeRange{Start: candidate, End: candidate.Add(duration)}
		if candidateRange.End.After(closing) {
			break
		}

		if overlapsAny(candidateRange, busy) {
			continue
		}

		slots = append(slots, candidate.Format(domain.DateTimeFormat))
	}

	return slots, nil
}

// overlapsAny reports whether the candidate intersects any busy interval.
func overlapsAny(candidate domain.TimeRange, busy []domain.TimeRange) bool {
	for _, r := range busy {
		if candidate.Overlaps(r) {
			return true
		}
	}
	return false
}

// roundUpToStep rounds t forward to the next multiple of step minutes within
// the hour, ignoring seconds. A minute already on the boundary stays put.
func roundUpToStep(t time.Time, stepMinutes int) time.Time {
	rounded := ((t.Minute() + stepMinutes - 1) / stepMinutes) * stepMinutes
	base := time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, t.Location())
	return base.Add(time.Duration(rounded) * time.Minute)
}
