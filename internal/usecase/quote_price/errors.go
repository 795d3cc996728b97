package quote_price

import "errors"

var (
	// ErrVenueNotFound is returned when the venue does not exist for the tenant.
	ErrVenueNotFound = errors.New("quote_price: venue not found")

	// ErrSlotNotFound is returned when the slot does not exist for the venue.
	ErrSlotNotFound = errors.New("quote_price: slot not found")

	// ErrInvalidDateFormat is returned when a date is not YYYY-MM-DD.
	ErrInvalidDateFormat = errors.New("quote_price: invalid date format")

	// ErrInvalidInput is returned for malformed request data.
	ErrInvalidInput = errors.New("quote_price: invalid input data")

	// ErrUpstreamUnavailable is returned when the catalog store fails.
	ErrUpstreamUnavailable = errors.New("quote_price: upstream unavailable")
)
