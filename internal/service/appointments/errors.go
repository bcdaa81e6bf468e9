package appointments

import "errors"

var (
	// ErrAppointmentNotFound is returned when an appointment does not exist.
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrShopNotFound is returned when a requested shop does not exist.
	ErrShopNotFound = errors.New("shop not found")

	// ErrAccessDenied is returned when the caller may not see the schedule.
	ErrAccessDenied = errors.New("access denied")

	// ErrInternal is returned on internal service errors.
	ErrInternal = errors.New("service: internal error")
)
