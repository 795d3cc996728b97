package schedule_booking

import (
	"time"

	"github.com/venuebook/venue-scheduler/internal/domain"
	scheduleBooking "github.com/venuebook/venue-scheduler/internal/usecase/schedule_booking"
)

// ScheduleBookingRequest is the HTTP request model.
type ScheduleBookingRequest struct {
	VenueID    int64       `json:"venueId"`
	Start      string      `json:"start"` // RFC 3339, e.g. "2025-02-01T10:00:00Z"
	End        string      `json:"end"`   // RFC 3339
	SlotID     *string     `json:"slotId,omitempty"`
	GuestCount int         `json:"guestCount,omitempty"`
	Notes      *string     `json:"notes,omitempty"`
	Quote      *QuoteInput `json:"quote,omitempty"`
}

// QuoteInput optionally requests a price quote with the reservation.
type QuoteInput struct {
	Dates     []string         `json:"dates"`
	BaseRates map[string]int64 `json:"baseRates"` // paise per date
}

// BookingResponse is the accepted reservation.
type BookingResponse struct {
	ID          int64              `json:"id"`
	Reference   string             `json:"reference"`
	VenueID     int64              `json:"venueId"`
	SlotID      *string            `json:"slotId,omitempty"`
	Start       string             `json:"start"`
	End         string             `json:"end"`
	Status      string             `json:"status"`
	GuestCount  int                `json:"guestCount,omitempty"`
	Notes       *string            `json:"notes,omitempty"`
	Pricing     *PricingBreakdown  `json:"pricing,omitempty"`
	CreatedAt   string             `json:"createdAt"`
	UpdatedAt   string             `json:"updatedAt"`
}

// PricingBreakdown mirrors the quoted price per date. Rates carry both the
// integer paise value and the formatted rupee string.
type PricingBreakdown struct {
	VenueID int64       `json:"venueId"`
	SlotID  string      `json:"slotId"`
	PerDate []PriceLine `json:"perDate"`
	Total   int64       `json:"totalPaise"`
	TotalRs string      `json:"total"`
}

// PriceLine is one date of the breakdown.
type PriceLine struct {
	Date          string `json:"date"`
	BaseRate      int64  `json:"baseRatePaise"`
	Multiplier    string `json:"multiplier"`
	AppliedRate   int64  `json:"appliedRatePaise"`
	AppliedRateRs string `json:"appliedRate"`
}

// ConflictResponse is the rejection body for an overlapping window: the
// stable code, a human-readable message and the structured conflict payload.
type ConflictResponse struct {
	Code     string           `json:"code"`
	Message  string           `json:"message"`
	Conflict *ConflictPayload `json:"conflict"`
}

// ConflictPayload lists what is in the way and nearby free windows.
type ConflictPayload struct {
	ConflictingBookings []ConflictingBooking `json:"conflictingBookings"`
	AlternativeWindows  []Window             `json:"alternativeWindows"`
	Message             string               `json:"message"`
}

// ConflictingBooking is the compact view of an existing booking.
type ConflictingBooking struct {
	ID        int64   `json:"id"`
	Reference string  `json:"reference"`
	Start     string  `json:"start"`
	End       string  `json:"end"`
	SlotID    *string `json:"slotId,omitempty"`
	Status    string  `json:"status"`
}

// Window is a time interval with an IST label for display.
type Window struct {
	Start string `json:"start"`
	End   string `json:"end"`
	Label string `json:"label"` // human-facing, rendered in IST
}

// ToUseCaseRequest converts the HTTP request. The tenant comes from the auth
// middleware, never from the body.
func (r *ScheduleBookingRequest) ToUseCaseRequest(tenantID int64) *scheduleBooking.Request {
	req := &scheduleBooking.Request{
		TenantID:   tenantID,
		VenueID:    r.VenueID,
		StartRaw:   r.Start,
		EndRaw:     r.End,
		SlotID:     r.SlotID,
		GuestCount: r.GuestCount,
		Notes:      r.Notes,
	}
	if r.Quote != nil {
		req.Quote = &scheduleBooking.QuoteInput{
			Dates:     r.Quote.Dates,
			BaseRates: r.Quote.BaseRates,
		}
	}
	return req
}

// FromUseCaseResponse converts the accepted reservation to the HTTP response.
func FromUseCaseResponse(resp *scheduleBooking.Response) *BookingResponse {
	out := &BookingResponse{
		ID:         resp.ID,
		Reference:  resp.Reference.String(),
		VenueID:    resp.VenueID,
		SlotID:     resp.SlotID,
		Start:      resp.StartAt.Format(time.RFC3339),
		End:        resp.EndAt.Format(time.RFC3339),
		Status:     resp.Status,
		GuestCount: resp.GuestCount,
		Notes:      resp.Notes,
		CreatedAt:  resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  resp.UpdatedAt.Format(time.RFC3339),
	}
	if resp.Pricing != nil {
		out.Pricing = fromDomainBreakdown(resp.Pricing)
	}
	return out
}

func fromDomainBreakdown(b *domain.PricingBreakdown) *PricingBreakdown {
	lines := make([]PriceLine, 0, len(b.PerDate))
	for _, line := range b.PerDate {
		lines = append(lines, PriceLine{
			Date:          line.Date.Format(domain.DateFormat),
			BaseRate:      int64(line.BaseRate),
			Multiplier:    line.Multiplier.String(),
			AppliedRate:   int64(line.AppliedRate),
			AppliedRateRs: line.AppliedRate.String(),
		})
	}
	return &PricingBreakdown{
		VenueID: b.VenueID,
		SlotID:  b.SlotID,
		PerDate: lines,
		Total:   int64(b.Total),
		TotalRs: b.Total.String(),
	}
}

// FromDomainConflict converts the conflict payload.
func FromDomainConflict(c *domain.BookingConflict) *ConflictPayload {
	bookings := make([]ConflictingBooking, 0, len(c.ConflictingBookings))
	for _, b := range c.ConflictingBookings {
		bookings = append(bookings, ConflictingBooking{
			ID:        b.ID,
			Reference: b.Reference.String(),
			Start:     b.Interval.Start.Format(time.RFC3339),
			End:       b.Interval.End.Format(time.RFC3339),
			SlotID:    b.SlotID,
			Status:    string(b.Status),
		})
	}

	windows := make([]Window, 0, len(c.AlternativeWindows))
	for _, w := range c.AlternativeWindows {
		windows = append(windows, Window{
			Start: w.Start.Format(time.RFC3339),
			End:   w.End.Format(time.RFC3339),
			Label: w.String(),
		})
	}

	return &ConflictPayload{
		ConflictingBookings: bookings,
		AlternativeWindows:  windows,
		Message:             c.Message,
	}
}
