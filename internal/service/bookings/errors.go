package bookings

import "errors"

var (
	// ErrBookingNotFound is returned when the booking does not exist for
	// the tenant.
	ErrBookingNotFound = errors.New("bookings: booking not found")

	// ErrVenueNotFound is returned when the venue does not exist for the
	// tenant.
	ErrVenueNotFound = errors.New("bookings: venue not found")

	// ErrCannotCancel is returned when the booking is already terminal.
	ErrCannotCancel = errors.New("bookings: booking cannot be cancelled")

	// ErrInvalidInput is returned for malformed request data.
	ErrInvalidInput = errors.New("bookings: invalid input data")

	// ErrUpstreamUnavailable is returned when persistence fails; callers
	// apply their own retry policy.
	ErrUpstreamUnavailable = errors.New("bookings: upstream unavailable")
)
