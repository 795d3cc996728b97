package booking

import "errors"

var (
	// ErrBookingNotFound is returned when a booking does not exist.
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrOverlapConstraint is returned when the database exclusion
	// constraint rejects an insert because the window is already taken.
	// This is the authoritative conflict signal; the in-core pre-check is
	// advisory only.
	ErrOverlapConstraint = errors.New("booking.repository: overlapping booking rejected by exclusion constraint")

	// ErrBuildQuery is returned when building a SQL query fails.
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery is returned when executing a SQL query fails.
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow is returned when scanning a query result fails.
	ErrScanRow = errors.New("booking.repository: failed to scan row")

	// ErrCannotCancel is returned when a booking is already terminal.
	ErrCannotCancel = errors.New("booking.repository: booking cannot be cancelled")
)
