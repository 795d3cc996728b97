package schedule_booking

import (
	"errors"
	"fmt"

	"github.com/venuebook/venue-scheduler/internal/domain"
)

var (
	// ErrInvalidDateFormat is returned when a raw timestamp does not parse.
	ErrInvalidDateFormat = errors.New("schedule_booking: invalid timestamp format")

	// ErrInvalidTimeRange is returned when the interval is empty or inverted.
	ErrInvalidTimeRange = errors.New("schedule_booking: start must be before end")

	// ErrInsufficientLeadTime is returned when the window starts too soon.
	ErrInsufficientLeadTime = errors.New("schedule_booking: insufficient lead time")

	// ErrBookingTooShort is returned when the window is below the minimum duration.
	ErrBookingTooShort = errors.New("schedule_booking: booking too short")

	// ErrBookingTooLong is returned when the window exceeds the maximum duration.
	ErrBookingTooLong = errors.New("schedule_booking: booking too long")

	// ErrVenueNotFound is returned when the venue does not exist for the
	// tenant or is inactive.
	ErrVenueNotFound = errors.New("schedule_booking: venue not found")

	// ErrSlotNotFound is returned when the selected slot does not exist or
	// is no longer selectable.
	ErrSlotNotFound = errors.New("schedule_booking: slot not found")

	// ErrCapacityExceeded is returned when the guest count exceeds the
	// venue capacity.
	ErrCapacityExceeded = errors.New("schedule_booking: guest count exceeds venue capacity")

	// ErrBookingConflict is returned when the window overlaps an existing
	// booking. The returned error is a *ConflictError carrying the payload.
	ErrBookingConflict = errors.New("schedule_booking: booking conflict")

	// ErrInvalidInput is returned for malformed request data.
	ErrInvalidInput = errors.New("schedule_booking: invalid input data")

	// ErrUpstreamUnavailable is returned when persistence fails for reasons
	// other than a conflict. Never retried here; the caller applies its own
	// backoff policy.
	ErrUpstreamUnavailable = errors.New("schedule_booking: upstream unavailable")
)

// ConflictError carries the structured conflict payload alongside the
// ErrBookingConflict sentinel, so handlers can render conflicting bookings
// and alternative windows instead of a bare failure.
type ConflictError struct {
	Conflict *domain.BookingConflict
}

func (e *ConflictError) Error() string {
	if e.Conflict != nil && e.Conflict.Message != "" {
		return fmt.Sprintf("%v: %s", ErrBookingConflict, e.Conflict.Message)
	}
	return ErrBookingConflict.Error()
}

// Unwrap makes errors.Is(err, ErrBookingConflict) hold.
func (e *ConflictError) Unwrap() error {
	return ErrBookingConflict
}
