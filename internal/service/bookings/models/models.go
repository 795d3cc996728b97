// Package models holds the transport-neutral request/response shapes of the
// bookings service.
package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/venuebook/venue-scheduler/internal/domain"
)

// BookingResponse is one booking as returned to callers.
type BookingResponse struct {
	ID          int64
	Reference   uuid.UUID
	TenantID    int64
	VenueID     int64
	SlotID      *string
	StartAt     time.Time
	EndAt       time.Time
	Status      string
	GuestCount  int
	QuotedTotal *int64
	Notes       *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// BookingListResponse is a list of bookings.
type BookingListResponse struct {
	Bookings []BookingResponse
	Total    int
}

// GetVenueBookingsRequest filters a venue's booking listing.
type GetVenueBookingsRequest struct {
	TenantID        int64
	VenueID         int64
	From            *time.Time
	To              *time.Time
	Status          *string
	IncludeTerminal bool
}

// ToDomainFilter converts the request into the repository filter.
func (r *GetVenueBookingsRequest) ToDomainFilter() (domain.VenueBookingsFilter, error) {
	filter := domain.VenueBookingsFilter{
		TenantID:        r.TenantID,
		VenueID:         r.VenueID,
		From:            r.From,
		To:              r.To,
		IncludeTerminal: r.IncludeTerminal,
	}

	if r.Status != nil {
		status := domain.BookingStatus(*r.Status)
		if !domain.IsValidStatus(status) {
			return domain.VenueBookingsFilter{}, fmt.Errorf("unknown booking status %q", *r.Status)
		}
		filter.Status = &status
	}

	return filter, nil
}

// FromDomainBooking converts a domain booking.
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:                 b.ID,
		Reference:          b.Reference,
		TenantID:           b.TenantID,
		VenueID:            b.VenueID,
		SlotID:             b.SlotID,
		StartAt:            b.StartAt,
		EndAt:              b.EndAt,
		Status:             string(b.Status),
		GuestCount:         b.GuestCount,
		QuotedTotal:        b.QuotedTotal,
		Notes:              b.Notes,
		CancellationReason: b.CancellationReason,
		CancelledAt:        b.CancelledAt,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}
}

// FromDomainBookingList converts a slice of domain bookings.
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	out := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, *FromDomainBooking(b))
	}
	return &BookingListResponse{Bookings: out, Total: len(out)}
}
