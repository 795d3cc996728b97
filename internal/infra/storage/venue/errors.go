package venue

import "errors"

var (
	// ErrVenueNotFound is returned when the venue does not exist for the
	// tenant. Cross-tenant lookups read as not found.
	ErrVenueNotFound = errors.New("venue.repository: venue not found")

	// ErrBuildQuery is returned when building a SQL query fails.
	ErrBuildQuery = errors.New("venue.repository: failed to build query")

	// ErrExecQuery is returned when executing a SQL query fails.
	ErrExecQuery = errors.New("venue.repository: failed to execute query")

	// ErrScanRow is returned when scanning a query result fails.
	ErrScanRow = errors.New("venue.repository: failed to scan row")
)
