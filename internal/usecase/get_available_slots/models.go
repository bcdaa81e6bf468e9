package get_available_slots

import "time"

// Request describes a free-slot query for one employee on one calendar day.
type Request struct {
	EmployeeID      int64
	ShopID          int64
	Date            time.Time // calendar day, interpreted in its own location
	DurationMinutes int       // total duration of the desired booking
}

// Response carries the bookable start instants, in ascending order, formatted
// as "2006-01-02 15:04".
type Response struct {
	EmployeeID      int64
	ShopID          int64
	Date            time.Time
	DurationMinutes int
	Slots           []string
}
