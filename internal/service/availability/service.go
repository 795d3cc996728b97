package availability

import (
	"context"
	"fmt"
	"time"

	"github.com/venuebook/venue-scheduler/internal/domain"
)

// Policy bounds the alternative-window search. Step and horizon are a
// market-tunable policy, not a contract.
type Policy struct {
	Step           time.Duration // probe increment, typically 24h
	Horizon        time.Duration // give up after this much forward probing
	MaxSuggestions int
}

// Service is the conflict detector over persisted bookings. Its answers are
// advisory: the database exclusion constraint is what actually keeps
// concurrent writers out of the same window. This layer exists to produce a
// useful rejection payload before the atomic insert is attempted.
type Service struct {
	bookingRepo BookingRepository
	policy      Policy
	logger      Logger
}

// NewService creates the availability index.
func NewService(bookingRepo BookingRepository, policy Policy, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		policy:      policy,
		logger:      logger,
	}
}

// HasConflict reports whether any blocking booking of the venue overlaps the
// candidate interval.
func (s *Service) HasConflict(ctx context.Context, tenantID, venueID int64, interval domain.TimeInterval, excludeID *int64) (bool, error) {
	conflicts, err := s.FindConflicts(ctx, tenantID, venueID, interval, excludeID)
	if err != nil {
		return false, err
	}
	return len(conflicts) > 0, nil
}

// FindConflicts returns the blocking bookings overlapping the candidate
// interval, earliest first.
func (s *Service) FindConflicts(ctx context.Context, tenantID, venueID int64, interval domain.TimeInterval, excludeID *int64) ([]*domain.Booking, error) {
	conflicts, err := s.bookingRepo.FindOverlapping(ctx, tenantID, venueID, interval, excludeID)
	if err != nil {
		s.logger.Error("FindConflicts: tenant=%d venue=%d interval=%s: %v", tenantID, venueID, interval, err)
		return nil, fmt.Errorf("%w: FindConflicts - repository error: %v", ErrInternal, err)
	}
	return conflicts, nil
}

// SuggestAlternatives probes forward from the requested window in fixed
// steps and collects conflict-free windows of the same duration, up to the
// policy's suggestion count, giving up at the horizon.
func (s *Service) SuggestAlternatives(ctx context.Context, tenantID, venueID int64, interval domain.TimeInterval) ([]domain.TimeInterval, error) {
	suggestions := make([]domain.TimeInterval, 0, s.policy.MaxSuggestions)
	if s.policy.MaxSuggestions == 0 {
		return suggestions, nil
	}

	for offset := s.policy.Step; offset <= s.policy.Horizon; offset += s.policy.Step {
		candidate := interval.Shift(offset)

		busy, err := s.HasConflict(ctx, tenantID, venueID, candidate, nil)
		if err != nil {
			return nil, err
		}
		if busy {
			continue
		}

		suggestions = append(suggestions, candidate)
		if len(suggestions) >= s.policy.MaxSuggestions {
			break
		}
	}

	s.logger.Info("SuggestAlternatives: tenant=%d venue=%d found %d alternative(s) for %s",
		tenantID, venueID, len(suggestions), interval)
	return suggestions, nil
}

// BuildConflict assembles the full rejection payload for a window that is
// already taken: the bookings in the way plus nearby free windows.
func (s *Service) BuildConflict(ctx context.Context, tenantID, venueID int64, interval domain.TimeInterval, conflicts []*domain.Booking) (*domain.BookingConflict, error) {
	alternatives, err := s.SuggestAlternatives(ctx, tenantID, venueID, interval)
	if err != nil {
		return nil, err
	}

	summaries := make([]domain.BookingSummary, 0, len(conflicts))
	for _, b := range conflicts {
		summaries = append(summaries, domain.SummaryOf(b))
	}

	message := fmt.Sprintf("requested window %s overlaps %d existing booking(s)", interval, len(conflicts))
	if len(alternatives) > 0 {
		message += fmt.Sprintf("; %d nearby window(s) are free", len(alternatives))
	}

	return &domain.BookingConflict{
		ConflictingBookings: summaries,
		AlternativeWindows:  alternatives,
		Message:             message,
	}, nil
}
