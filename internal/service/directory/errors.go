package directory

import "errors"

var (
	// ErrShopNotFound is returned when a requested shop does not exist.
	ErrShopNotFound = errors.New("shop not found")

	// ErrEmployeeNotFound is returned when a requested employee does not exist.
	ErrEmployeeNotFound = errors.New("employee not found")

	// ErrInternal is returned on internal service errors.
	ErrInternal = errors.New("service: internal error")
)
