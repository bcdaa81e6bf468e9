package create_booking

import "errors"

var (
	// ErrEmployeeNotFound is returned when the employee does not exist.
	ErrEmployeeNotFound = errors.New("employee not found")

	// ErrEmployeeNotInShop is returned when the employee is not assigned to
	// the requested shop.
	ErrEmployeeNotInShop = errors.New("employee does not work at this shop")

	// ErrServiceNotFound is returned when a requested service does not exist.
	ErrServiceNotFound = errors.New("service not found")

	// ErrTimeSlotTaken is returned when the interval collides with an
	// existing appointment of the employee.
	ErrTimeSlotTaken = errors.New("time slot is already taken")

	// ErrLinkNotFound is returned when the booking link vanished before the
	// booking committed.
	ErrLinkNotFound = errors.New("booking link not found")

	// ErrInvalidInput is returned on malformed request data.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal use case errors.
	ErrInternal = errors.New("usecase: internal error")
)
