package directory

import "errors"

var (
	// ErrShopNotFound is returned when a shop does not exist.
	ErrShopNotFound = errors.New("directory.repository: shop not found")

	// ErrEmployeeNotFound is returned when an employee does not exist.
	ErrEmployeeNotFound = errors.New("directory.repository: employee not found")

	// ErrManagerNotFound is returned when a manager does not exist.
	ErrManagerNotFound = errors.New("directory.repository: manager not found")

	// ErrBuildQuery is returned when an SQL query cannot be built.
	ErrBuildQuery = errors.New("directory.repository: failed to build query")

	// ErrExecQuery is returned when an SQL query fails to execute.
	ErrExecQuery = errors.New("directory.repository: failed to execute query")

	// ErrScanRow is returned when a result row cannot be scanned.
	ErrScanRow = errors.New("directory.repository: failed to scan row")
)
