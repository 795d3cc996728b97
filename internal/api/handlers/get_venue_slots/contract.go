package get_venue_slots

import (
	"context"

	"github.com/venuebook/venue-scheduler/internal/domain"
)

type SlotCatalog interface {
	SlotsFor(ctx context.Context, venueID int64) ([]*domain.VenueSlot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
