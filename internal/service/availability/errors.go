package availability

import "errors"

var (
	// ErrInternal is returned when the underlying storage fails.
	ErrInternal = errors.New("availability: internal error")
)
