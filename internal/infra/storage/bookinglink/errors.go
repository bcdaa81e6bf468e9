package bookinglink

import "errors"

var (
	// ErrLinkNotFound is returned when a booking link does not exist.
	ErrLinkNotFound = errors.New("bookinglink.repository: link not found")

	// ErrBuildQuery is returned when an SQL query cannot be built.
	ErrBuildQuery = errors.New("bookinglink.repository: failed to build query")

	// ErrExecQuery is returned when an SQL query fails to execute.
	ErrExecQuery = errors.New("bookinglink.repository: failed to execute query")

	// ErrScanRow is returned when a result row cannot be scanned.
	ErrScanRow = errors.New("bookinglink.repository: failed to scan row")
)
