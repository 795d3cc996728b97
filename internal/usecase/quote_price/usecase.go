package quote_price

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/venuebook/venue-scheduler/internal/domain"
	venueRepo "github.com/venuebook/venue-scheduler/internal/infra/storage/venue"
	catalogSvc "github.com/venuebook/venue-scheduler/internal/service/catalog"
	"github.com/venuebook/venue-scheduler/pkg/types"
)

// UseCase is the pricing engine. It is deterministic: identical inputs
// always produce an identical breakdown, and nothing here reads the clock.
type UseCase struct {
	venueRepo VenueRepository
	catalog   SlotCatalog
	logger    Logger
}

// NewUseCase creates the pricing use case.
func NewUseCase(venueRepo VenueRepository, catalog SlotCatalog, logger Logger) *UseCase {
	return &UseCase{
		venueRepo: venueRepo,
		catalog:   catalog,
		logger:    logger,
	}
}

// Execute prices the requested dates against the slot's multiplier. Each
// line rounds to whole paise; the total is the exact sum of the lines, never
// rounded again. An empty date set quotes an empty breakdown with a zero
// total.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("QuotePrice: tenant=%d venue=%d slot=%q dates=%d",
		req.TenantID, req.VenueID, req.SlotID, len(req.Dates))

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("QuotePrice: validation failed: %v", err)
		return nil, err
	}

	if _, err := uc.venueRepo.Get(ctx, req.TenantID, req.VenueID); err != nil {
		if errors.Is(err, venueRepo.ErrVenueNotFound) {
			uc.logger.Warn("QuotePrice: venue id=%d not found for tenant=%d", req.VenueID, req.TenantID)
			return nil, ErrVenueNotFound
		}
		uc.logger.Error("QuotePrice: venue lookup failed: %v", err)
		return nil, fmt.Errorf("%w: venue lookup: %v", ErrUpstreamUnavailable, err)
	}

	// Inactive slots still resolve: a historical quote must reconstruct.
	slot, err := uc.catalog.Resolve(ctx, req.VenueID, req.SlotID)
	if err != nil {
		if errors.Is(err, catalogSvc.ErrSlotNotFound) {
			uc.logger.Warn("QuotePrice: slot %q not found for venue id=%d", req.SlotID, req.VenueID)
			return nil, ErrSlotNotFound
		}
		uc.logger.Error("QuotePrice: slot lookup failed: %v", err)
		return nil, fmt.Errorf("%w: slot lookup: %v", ErrUpstreamUnavailable, err)
	}

	dates, baseRate, err := parseDates(req)
	if err != nil {
		uc.logger.Warn("QuotePrice: date parsing failed: %v", err)
		return nil, err
	}

	breakdown := domain.NewPricingBreakdown(req.VenueID, slot, dates, baseRate)

	uc.logger.Info("QuotePrice: venue=%d slot=%q total=%s over %d date(s)",
		req.VenueID, req.SlotID, breakdown.Total, len(breakdown.PerDate))

	return &Response{Breakdown: breakdown}, nil
}

func validateRequest(req *Request) error {
	if req.TenantID <= 0 {
		return fmt.Errorf("%w: tenantID must be positive", ErrInvalidInput)
	}
	if req.VenueID <= 0 {
		return fmt.Errorf("%w: venueID must be positive", ErrInvalidInput)
	}
	if req.SlotID == "" {
		return fmt.Errorf("%w: slotId is required", ErrInvalidInput)
	}
	for date, rate := range req.BaseRates {
		if rate < 0 {
			return fmt.Errorf("%w: negative base rate for date %s", ErrInvalidInput, date)
		}
	}
	return nil
}

// parseDates deduplicates and sorts the requested dates and checks that each
// one carries a base rate.
func parseDates(req *Request) ([]time.Time, func(time.Time) types.Paise, error) {
	seen := make(map[string]struct{}, len(req.Dates))
	dates := make([]time.Time, 0, len(req.Dates))

	for _, raw := range req.Dates {
		if _, dup := seen[raw]; dup {
			continue
		}
		seen[raw] = struct{}{}

		date, err := time.ParseInLocation(domain.DateFormat, raw, time.UTC)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: date %q is not YYYY-MM-DD", ErrInvalidDateFormat, raw)
		}
		if _, ok := req.BaseRates[raw]; !ok {
			return nil, nil, fmt.Errorf("%w: no base rate for date %s", ErrInvalidInput, raw)
		}
		dates = append(dates, date)
	}

	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	baseRate := func(date time.Time) types.Paise {
		return types.Paise(req.BaseRates[date.Format(domain.DateFormat)])
	}

	return dates, baseRate, nil
}
