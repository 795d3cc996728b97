package get_venue_bookings

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/venuebook/venue-scheduler/internal/service/bookings/models"
)

// BookingResponse is the HTTP view of one listed booking.
type BookingResponse struct {
	ID          int64   `json:"id"`
	Reference   string  `json:"reference"`
	SlotID      *string `json:"slotId,omitempty"`
	Start       string  `json:"start"`
	End         string  `json:"end"`
	Status      string  `json:"status"`
	GuestCount  int     `json:"guestCount,omitempty"`
	QuotedTotal *int64  `json:"quotedTotalPaise,omitempty"`
}

// BookingListResponse wraps the listing.
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}

// ParseQuery builds the service request from query parameters. Supported
// parameters: from, to (RFC3339), status, includeTerminal.
func ParseQuery(tenantID, venueID int64, query url.Values) (*models.GetVenueBookingsRequest, error) {
	req := &models.GetVenueBookingsRequest{
		TenantID: tenantID,
		VenueID:  venueID,
	}

	if raw := query.Get("from"); raw != "" {
		from, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return nil, fmt.Errorf("invalid from parameter %q", raw)
		}
		from = from.UTC()
		req.From = &from
	}

	if raw := query.Get("to"); raw != "" {
		to, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return nil, fmt.Errorf("invalid to parameter %q", raw)
		}
		to = to.UTC()
		req.To = &to
	}

	if req.From != nil && req.To != nil && !req.From.Before(*req.To) {
		return nil, fmt.Errorf("from must be before to")
	}

	if raw := query.Get("status"); raw != "" {
		req.Status = &raw
	}

	if raw := query.Get("includeTerminal"); raw != "" {
		includeTerminal, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid includeTerminal parameter %q", raw)
		}
		req.IncludeTerminal = includeTerminal
	}

	return req, nil
}

// FromServiceList converts the service listing.
func FromServiceList(list *models.BookingListResponse) *BookingListResponse {
	out := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(list.Bookings)),
		Total:    list.Total,
	}
	for _, b := range list.Bookings {
		out.Bookings = append(out.Bookings, BookingResponse{
			ID:          b.ID,
			Reference:   b.Reference.String(),
			SlotID:      b.SlotID,
			Start:       b.StartAt.Format(time.RFC3339),
			End:         b.EndAt.Format(time.RFC3339),
			Status:      b.Status,
			GuestCount:  b.GuestCount,
			QuotedTotal: b.QuotedTotal,
		})
	}
	return out
}
