package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/venuebook/venue-scheduler/internal/domain"
	bookingRepo "github.com/venuebook/venue-scheduler/internal/infra/storage/booking"
	venueRepo "github.com/venuebook/venue-scheduler/internal/infra/storage/venue"
	"github.com/venuebook/venue-scheduler/internal/service/bookings/models"
)

// Service covers the read and cancel paths over persisted bookings. New
// bookings go through the schedule_booking use case; confirmation and
// payment-driven transitions live outside this service.
type Service struct {
	bookingRepo BookingRepository
	venueRepo   VenueRepository
	logger      Logger
}

// NewService creates the bookings service.
func NewService(bookingRepo BookingRepository, venueRepo VenueRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		venueRepo:   venueRepo,
		logger:      logger,
	}
}

// GetByID fetches one booking. Tenant scoping happens in the repository, so
// a cross-tenant id reads as not found rather than leaking existence.
func (s *Service) GetByID(ctx context.Context, tenantID, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for tenant=%d", id, tenantID)

	booking, err := s.bookingRepo.GetByID(ctx, tenantID, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found for tenant=%d", id, tenantID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrUpstreamUnavailable, err)
	}

	return models.FromDomainBooking(booking), nil
}

// GetVenueBookings lists a venue's bookings with optional window and status
// filters.
func (s *Service) GetVenueBookings(ctx context.Context, req *models.GetVenueBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetVenueBookings: tenant=%d venue=%d", req.TenantID, req.VenueID)

	if _, err := s.venueRepo.Get(ctx, req.TenantID, req.VenueID); err != nil {
		if errors.Is(err, venueRepo.ErrVenueNotFound) {
			s.logger.Warn("GetVenueBookings: venue id=%d not found for tenant=%d", req.VenueID, req.TenantID)
			return nil, ErrVenueNotFound
		}
		s.logger.Error("GetVenueBookings: venue lookup failed: %v", err)
		return nil, fmt.Errorf("%w: GetVenueBookings - venue lookup: %v", ErrUpstreamUnavailable, err)
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetVenueBookings: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	bookings, err := s.bookingRepo.ListByVenue(ctx, filter)
	if err != nil {
		s.logger.Error("GetVenueBookings: repository error for venue=%d: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: GetVenueBookings - repository error: %v", ErrUpstreamUnavailable, err)
	}

	s.logger.Info("GetVenueBookings: fetched %d booking(s) for venue=%d", len(bookings), req.VenueID)
	return models.FromDomainBookingList(bookings), nil
}

// Cancel moves a non-terminal booking to cancelled with a reason.
func (s *Service) Cancel(ctx context.Context, tenantID, id int64, reason string) error {
	s.logger.Info("Cancel: cancelling booking id=%d for tenant=%d", id, tenantID)

	if len(reason) > domain.MaxCancellationReasonLength {
		return fmt.Errorf("%w: cancellation reason exceeds %d characters", ErrInvalidInput, domain.MaxCancellationReasonLength)
	}

	err := s.bookingRepo.Cancel(ctx, tenantID, id, reason)
	if err != nil {
		switch {
		case errors.Is(err, bookingRepo.ErrBookingNotFound):
			s.logger.Warn("Cancel: booking id=%d not found for tenant=%d", id, tenantID)
			return ErrBookingNotFound
		case errors.Is(err, bookingRepo.ErrCannotCancel):
			s.logger.Warn("Cancel: booking id=%d is already terminal", id)
			return ErrCannotCancel
		default:
			s.logger.Error("Cancel: repository error for booking id=%d: %v", id, err)
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrUpstreamUnavailable, err)
		}
	}

	s.logger.Info("Cancel: booking id=%d cancelled", id)
	return nil
}
