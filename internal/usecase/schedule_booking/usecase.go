package schedule_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/venuebook/venue-scheduler/internal/domain"
	bookingRepo "github.com/venuebook/venue-scheduler/internal/infra/storage/booking"
	venueRepo "github.com/venuebook/venue-scheduler/internal/infra/storage/venue"
	catalogSvc "github.com/venuebook/venue-scheduler/internal/service/catalog"
)

// maxInsertAttempts caps the automatic retry when the storage exclusion
// constraint rejects an insert the pre-check didn't see coming: one retry,
// then the conflict is surfaced.
const maxInsertAttempts = 2

// UseCase is the booking orchestrator: validate, scope, pre-check, then
// insert a temp hold under the database's exclusion guarantee.
type UseCase struct {
	bookingRepo  BookingRepository
	venueRepo    VenueRepository
	catalog      SlotCatalog
	availability AvailabilityIndex
	txManager    TransactionManager
	timeProvider TimeProvider
	policy       Policy
	logger       Logger
}

// NewUseCase creates the orchestrator with the production clock.
func NewUseCase(
	bookingRepo BookingRepository,
	venueRepo VenueRepository,
	catalog SlotCatalog,
	availability AvailabilityIndex,
	txManager TransactionManager,
	policy Policy,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		venueRepo:    venueRepo,
		catalog:      catalog,
		availability: availability,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		policy:       policy,
		logger:       logger,
	}
}

// WithTimeProvider swaps the clock. For tests.
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute runs one booking attempt end to end. The attempt either completes
// as accepted/rejected or the error propagates; nothing is retried except
// the single storage-race pass documented on maxInsertAttempts.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ScheduleBooking: tenant=%d venue=%d window=[%s, %s) guests=%d",
		req.TenantID, req.VenueID, req.StartRaw, req.EndRaw, req.GuestCount)

	// 1. Structural validation.
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ScheduleBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Interval rules, against the injected clock.
	now := uc.timeProvider.Now()
	interval, err := validateInterval(req.StartRaw, req.EndRaw, now, uc.policy)
	if err != nil {
		uc.logger.Warn("ScheduleBooking: interval validation failed: %v", err)
		return nil, err
	}

	// 3. Venue: tenant scope, activity, capacity.
	venue, err := uc.venueRepo.Get(ctx, req.TenantID, req.VenueID)
	if err != nil {
		if errors.Is(err, venueRepo.ErrVenueNotFound) {
			uc.logger.Warn("ScheduleBooking: venue id=%d not found for tenant=%d", req.VenueID, req.TenantID)
			return nil, ErrVenueNotFound
		}
		uc.logger.Error("ScheduleBooking: venue lookup failed: %v", err)
		return nil, fmt.Errorf("%w: venue lookup: %v", ErrUpstreamUnavailable, err)
	}
	if !venue.IsActive {
		uc.logger.Warn("ScheduleBooking: venue id=%d is inactive", req.VenueID)
		return nil, ErrVenueNotFound
	}
	if req.GuestCount > 0 && !venue.HasCapacityFor(req.GuestCount) {
		uc.logger.Warn("ScheduleBooking: %d guests exceed capacity %d of venue id=%d",
			req.GuestCount, venue.Capacity, req.VenueID)
		return nil, fmt.Errorf("%w: %d guests against capacity %d", ErrCapacityExceeded, req.GuestCount, venue.Capacity)
	}

	// 4. Slot: must exist and be selectable for new bookings.
	var slot *domain.VenueSlot
	if req.SlotID != nil {
		slot, err = uc.catalog.Resolve(ctx, req.VenueID, *req.SlotID)
		if err != nil {
			if errors.Is(err, catalogSvc.ErrSlotNotFound) {
				uc.logger.Warn("ScheduleBooking: slot %q not found for venue id=%d", *req.SlotID, req.VenueID)
				return nil, ErrSlotNotFound
			}
			uc.logger.Error("ScheduleBooking: slot lookup failed: %v", err)
			return nil, fmt.Errorf("%w: slot lookup: %v", ErrUpstreamUnavailable, err)
		}
		if !slot.Active {
			uc.logger.Warn("ScheduleBooking: slot %q of venue id=%d is inactive", *req.SlotID, req.VenueID)
			return nil, ErrSlotNotFound
		}
	}

	// 5. Optional quote, computed before touching storage so a pricing
	// problem rejects the request without side effects.
	var pricing *domain.PricingBreakdown
	if req.Quote != nil {
		if slot == nil {
			return nil, fmt.Errorf("%w: a quote requires a slot", ErrInvalidInput)
		}
		dates, baseRate, err := parseQuoteDates(req.Quote)
		if err != nil {
			uc.logger.Warn("ScheduleBooking: quote input invalid: %v", err)
			return nil, err
		}
		breakdown := domain.NewPricingBreakdown(req.VenueID, slot, dates, baseRate)
		pricing = &breakdown
	}

	// 6. Check-then-insert under the storage guarantee, with the single
	// automatic retry on a constraint race.
	booking, err := uc.insertWithRetry(ctx, req, interval, pricing)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("ScheduleBooking: accepted booking id=%d reference=%s as %s",
		booking.ID, booking.Reference, booking.Status)

	return &Response{
		ID:         booking.ID,
		Reference:  booking.Reference,
		TenantID:   booking.TenantID,
		VenueID:    booking.VenueID,
		SlotID:     booking.SlotID,
		StartAt:    booking.StartAt,
		EndAt:      booking.EndAt,
		Status:     string(booking.Status),
		GuestCount: booking.GuestCount,
		Notes:      booking.Notes,
		Pricing:    pricing,
		CreatedAt:  booking.CreatedAt,
		UpdatedAt:  booking.UpdatedAt,
	}, nil
}

// insertWithRetry runs the serializable pre-check + insert. The pre-check is
// advisory and exists to produce a conflict payload; the exclusion constraint
// is the authoritative guard. A constraint rejection after a clean pre-check
// means another writer won the race between our snapshot and commit, so the
// whole pass is retried once against fresh state.
func (uc *UseCase) insertWithRetry(ctx context.Context, req *Request, interval domain.TimeInterval, pricing *domain.PricingBreakdown) (*domain.Booking, error) {
	var preCheckConflicts []*domain.Booking

	for attempt := 1; attempt <= maxInsertAttempts; attempt++ {
		var created *domain.Booking

		err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
			conflicts, err := uc.availability.FindConflicts(txCtx, req.TenantID, req.VenueID, interval, nil)
			if err != nil {
				return fmt.Errorf("%w: conflict pre-check: %v", ErrUpstreamUnavailable, err)
			}
			if len(conflicts) > 0 {
				preCheckConflicts = conflicts
				return ErrBookingConflict
			}

			hold := &domain.Booking{
				Reference:  uuid.New(),
				TenantID:   req.TenantID,
				VenueID:    req.VenueID,
				SlotID:     req.SlotID,
				StartAt:    interval.Start,
				EndAt:      interval.End,
				Status:     domain.StatusTempHold,
				GuestCount: req.GuestCount,
				Notes:      req.Notes,
			}
			if pricing != nil {
				total := int64(pricing.Total)
				hold.QuotedTotal = &total
			}

			created, err = uc.bookingRepo.Insert(txCtx, hold)
			return err
		})

		switch {
		case err == nil:
			return created, nil

		case errors.Is(err, ErrBookingConflict):
			// Pre-check saw the overlap; no point retrying.
			return nil, uc.conflictError(ctx, req, interval, preCheckConflicts)

		case errors.Is(err, bookingRepo.ErrOverlapConstraint):
			if attempt < maxInsertAttempts {
				uc.logger.Warn("ScheduleBooking: exclusion constraint raced pre-check for venue=%d, retrying once", req.VenueID)
				continue
			}
			uc.logger.Warn("ScheduleBooking: exclusion constraint held after retry for venue=%d", req.VenueID)
			return nil, uc.conflictError(ctx, req, interval, nil)

		case errors.Is(err, ErrUpstreamUnavailable):
			uc.logger.Error("ScheduleBooking: %v", err)
			return nil, err

		default:
			uc.logger.Error("ScheduleBooking: transaction failed: %v", err)
			return nil, fmt.Errorf("%w: transaction failed: %v", ErrUpstreamUnavailable, err)
		}
	}

	// Unreachable: every branch above returns or continues.
	return nil, fmt.Errorf("%w: insert attempts exhausted", ErrUpstreamUnavailable)
}

// conflictError assembles the rejection payload outside the transaction.
// When the constraint fired without the pre-check seeing the overlap, the
// conflicting bookings are re-read for the payload.
func (uc *UseCase) conflictError(ctx context.Context, req *Request, interval domain.TimeInterval, conflicts []*domain.Booking) error {
	if conflicts == nil {
		found, err := uc.availability.FindConflicts(ctx, req.TenantID, req.VenueID, interval, nil)
		if err != nil {
			uc.logger.Error("ScheduleBooking: could not read conflicts for payload: %v", err)
			return &ConflictError{Conflict: &domain.BookingConflict{
				Message: fmt.Sprintf("requested window %s is no longer available", interval),
			}}
		}
		conflicts = found
	}

	payload, err := uc.availability.BuildConflict(ctx, req.TenantID, req.VenueID, interval, conflicts)
	if err != nil {
		uc.logger.Error("ScheduleBooking: could not build conflict payload: %v", err)
		payload = &domain.BookingConflict{
			Message: fmt.Sprintf("requested window %s is no longer available", interval),
		}
	}

	return &ConflictError{Conflict: payload}
}
