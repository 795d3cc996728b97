package schedule_booking

import (
	"context"
	"time"

	"github.com/venuebook/venue-scheduler/internal/domain"
)

// BookingRepository is the write surface for new holds.
type BookingRepository interface {
	Insert(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
}

// VenueRepository resolves the venue for tenant scoping and capacity.
type VenueRepository interface {
	Get(ctx context.Context, tenantID, venueID int64) (*domain.Venue, error)
}

// SlotCatalog resolves slot definitions.
type SlotCatalog interface {
	Resolve(ctx context.Context, venueID int64, slotID string) (*domain.VenueSlot, error)
}

// AvailabilityIndex is the advisory conflict pre-check and the source of the
// user-facing conflict payload.
type AvailabilityIndex interface {
	FindConflicts(ctx context.Context, tenantID, venueID int64, interval domain.TimeInterval, excludeID *int64) ([]*domain.Booking, error)
	BuildConflict(ctx context.Context, tenantID, venueID int64, interval domain.TimeInterval, conflicts []*domain.Booking) (*domain.BookingConflict, error)
}

// TransactionManager runs the check-then-insert sequence atomically.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider supplies the clock. Injected so the lead-time rule is
// deterministic under test.
type TimeProvider interface {
	Now() time.Time
}

// Logger is the injected leveled logger.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production clock.
type RealTimeProvider struct{}

// Now returns the current time.
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
