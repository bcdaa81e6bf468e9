package domain

import "time"

// Appointment represents a booked time range for an employee at a shop.
// Appointments are never updated in place; cancellation is not part of the
// booking flow.
type Appointment struct {
	ID              int64
	EmployeeID      int64
	ShopID          int64
	CustomerID      int64
	StartAt         time.Time // absolute start instant, millisecond resolution
	DurationMinutes int
	Price           float64
	CreatedAt       time.Time
}

// EndAt returns the exclusive end instant of the appointment interval.
func (a *Appointment) EndAt() time.Time {
	return a.StartAt.Add(time.Duration(a.DurationMinutes) * time.Minute)
}

// Range returns the half-open [start, end) interval of the appointment.
func (a *Appointment) Range() TimeRange {
	return TimeRange{Start: a.StartAt, End: a.EndAt()}
}

// AppointmentDetails is an appointment with its denormalized relations,
// used by the manager/shop appointment listing.
type AppointmentDetails struct {
	Appointment
	Services []Service
	Employee *Employee
	Customer *Customer
}
