package bookings

import (
	"context"

	"github.com/venuebook/venue-scheduler/internal/domain"
)

// BookingRepository is the persistence surface used by the read/cancel paths.
type BookingRepository interface {
	GetByID(ctx context.Context, tenantID, id int64) (*domain.Booking, error)
	ListByVenue(ctx context.Context, filter domain.VenueBookingsFilter) ([]*domain.Booking, error)
	Cancel(ctx context.Context, tenantID, id int64, reason string) error
}

// VenueRepository resolves venues for tenant scoping of listings.
type VenueRepository interface {
	Get(ctx context.Context, tenantID, venueID int64) (*domain.Venue, error)
}

// Logger is the injected leveled logger.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
