package catalog

import "errors"

var (
	// ErrSlotNotFound is returned when the slot does not exist for the venue.
	ErrSlotNotFound = errors.New("catalog: slot not found")

	// ErrUpstreamUnavailable is returned when the catalog store fails.
	ErrUpstreamUnavailable = errors.New("catalog: upstream unavailable")
)
