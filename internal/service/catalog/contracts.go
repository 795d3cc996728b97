package catalog

import (
	"context"

	"github.com/venuebook/venue-scheduler/internal/domain"
)

// SlotRepository is the read surface over venue slot definitions.
type SlotRepository interface {
	ListActive(ctx context.Context, venueID int64) ([]*domain.VenueSlot, error)
	Get(ctx context.Context, venueID int64, slotID string) (*domain.VenueSlot, error)
}

// Logger is the injected leveled logger.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
