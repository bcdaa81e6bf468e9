package catalog

import "errors"

var (
	// ErrServiceNotFound is returned when a requested service does not exist.
	ErrServiceNotFound = errors.New("service not found")

	// ErrInvalidInput is returned on malformed service data.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal service errors.
	ErrInternal = errors.New("service: internal error")
)
