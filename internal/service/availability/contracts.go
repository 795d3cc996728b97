package availability

import (
	"context"

	"github.com/venuebook/venue-scheduler/internal/domain"
)

// BookingRepository is the read surface the index needs.
type BookingRepository interface {
	FindOverlapping(ctx context.Context, tenantID, venueID int64, interval domain.TimeInterval, excludeID *int64) ([]*domain.Booking, error)
}

// Logger is the injected leveled logger.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
