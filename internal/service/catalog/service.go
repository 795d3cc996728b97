package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/venuebook/venue-scheduler/internal/domain"
	slotRepo "github.com/venuebook/venue-scheduler/internal/infra/storage/slotcatalog"
)

// Service exposes read-only slot catalog lookups. Slot definitions change
// rarely and only through the owner-facing service, so reads go straight to
// the store; correctness never depends on a cache being fresh.
type Service struct {
	slotRepo SlotRepository
	logger   Logger
}

// NewService creates the catalog service.
func NewService(slotRepo SlotRepository, logger Logger) *Service {
	return &Service{
		slotRepo: slotRepo,
		logger:   logger,
	}
}

// SlotsFor returns the venue's active slots ordered by start offset. These
// are the slots a caller may select for a new booking.
func (s *Service) SlotsFor(ctx context.Context, venueID int64) ([]*domain.VenueSlot, error) {
	slots, err := s.slotRepo.ListActive(ctx, venueID)
	if err != nil {
		s.logger.Error("SlotsFor: repository error for venue=%d: %v", venueID, err)
		return nil, fmt.Errorf("%w: SlotsFor - repository error: %v", ErrUpstreamUnavailable, err)
	}

	s.logger.Info("SlotsFor: venue=%d has %d active slot(s)", venueID, len(slots))
	return slots, nil
}

// Resolve looks up a slot regardless of its active flag. Historical bookings
// and audit quotes must keep resolving after a slot is retired.
func (s *Service) Resolve(ctx context.Context, venueID int64, slotID string) (*domain.VenueSlot, error) {
	slot, err := s.slotRepo.Get(ctx, venueID, slotID)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			s.logger.Warn("Resolve: slot %q not found for venue=%d", slotID, venueID)
			return nil, ErrSlotNotFound
		}
		s.logger.Error("Resolve: repository error for venue=%d slot=%q: %v", venueID, slotID, err)
		return nil, fmt.Errorf("%w: Resolve - repository error: %v", ErrUpstreamUnavailable, err)
	}

	return slot, nil
}
