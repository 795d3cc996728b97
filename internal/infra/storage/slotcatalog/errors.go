package slotcatalog

import "errors"

var (
	// ErrSlotNotFound is returned when a slot does not exist for the venue.
	ErrSlotNotFound = errors.New("slotcatalog.repository: slot not found")

	// ErrBuildQuery is returned when building a SQL query fails.
	ErrBuildQuery = errors.New("slotcatalog.repository: failed to build query")

	// ErrExecQuery is returned when executing a SQL query fails.
	ErrExecQuery = errors.New("slotcatalog.repository: failed to execute query")

	// ErrScanRow is returned when scanning a query result fails.
	ErrScanRow = errors.New("slotcatalog.repository: failed to scan row")
)
