package catalog

import "errors"

var (
	// ErrServiceNotFound is returned when a service does not exist.
	ErrServiceNotFound = errors.New("catalog.repository: service not found")

	// ErrBuildQuery is returned when an SQL query cannot be built.
	ErrBuildQuery = errors.New("catalog.repository: failed to build query")

	// ErrExecQuery is returned when an SQL query fails to execute.
	ErrExecQuery = errors.New("catalog.repository: failed to execute query")

	// ErrScanRow is returned when a result row cannot be scanned.
	ErrScanRow = errors.New("catalog.repository: failed to scan row")
)
