package quote_price

import (
	"context"

	"github.com/venuebook/venue-scheduler/internal/domain"
)

// VenueRepository resolves the venue for tenant scoping.
type VenueRepository interface {
	Get(ctx context.Context, tenantID, venueID int64) (*domain.Venue, error)
}

// SlotCatalog resolves slot definitions. Quotes must resolve inactive slots
// too, so historical bookings can be re-priced for audit.
type SlotCatalog interface {
	Resolve(ctx context.Context, venueID int64, slotID string) (*domain.VenueSlot, error)
}

// Logger is the injected leveled logger.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
