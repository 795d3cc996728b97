package get_booking

import (
	"time"

	"github.com/venuebook/venue-scheduler/internal/service/bookings/models"
)

// BookingResponse is the HTTP view of a persisted booking.
type BookingResponse struct {
	ID                 int64   `json:"id"`
	Reference          string  `json:"reference"`
	VenueID            int64   `json:"venueId"`
	SlotID             *string `json:"slotId,omitempty"`
	Start              string  `json:"start"`
	End                string  `json:"end"`
	Status             string  `json:"status"`
	GuestCount         int     `json:"guestCount,omitempty"`
	QuotedTotal        *int64  `json:"quotedTotalPaise,omitempty"`
	Notes              *string `json:"notes,omitempty"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"`
	CreatedAt          string  `json:"createdAt"`
	UpdatedAt          string  `json:"updatedAt"`
}

// FromServiceBooking converts the service model.
func FromServiceBooking(b *models.BookingResponse) *BookingResponse {
	out := &BookingResponse{
		ID:                 b.ID,
		Reference:          b.Reference.String(),
		VenueID:            b.VenueID,
		SlotID:             b.SlotID,
		Start:              b.StartAt.Format(time.RFC3339),
		End:                b.EndAt.Format(time.RFC3339),
		Status:             b.Status,
		GuestCount:         b.GuestCount,
		QuotedTotal:        b.QuotedTotal,
		Notes:              b.Notes,
		CancellationReason: b.CancellationReason,
		CreatedAt:          b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          b.UpdatedAt.Format(time.RFC3339),
	}
	if b.CancelledAt != nil {
		cancelled := b.CancelledAt.Format(time.RFC3339)
		out.CancelledAt = &cancelled
	}
	return out
}
