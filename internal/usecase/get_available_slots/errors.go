package get_available_slots

import "errors"

var (
	// ErrEmployeeNotFound is returned when the employee does not exist.
	ErrEmployeeNotFound = errors.New("employee not found")

	// ErrEmployeeNotInShop is returned when the employee is not assigned to
	// the requested shop.
	ErrEmployeeNotInShop = errors.New("employee does not work at this shop")

	// ErrInvalidInput is returned on malformed request data.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal use case errors.
	ErrInternal = errors.New("usecase: internal error")
)
