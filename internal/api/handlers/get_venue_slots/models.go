package get_venue_slots

import (
	"github.com/venuebook/venue-scheduler/internal/domain"
)

// SlotResponse is one named session window of a venue. Offsets are local
// times of day in "HH:MM" form; the multiplier is a decimal string so
// callers never lose precision to binary floats.
type SlotResponse struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	StartOffset string `json:"startOffset"`
	EndOffset   string `json:"endOffset"`
	Multiplier  string `json:"multiplier"`
}

// SlotListResponse wraps a venue's active slots.
type SlotListResponse struct {
	VenueID int64          `json:"venueId"`
	Slots   []SlotResponse `json:"slots"`
}

// FromDomainSlots converts the catalog listing.
func FromDomainSlots(venueID int64, slots []*domain.VenueSlot) *SlotListResponse {
	out := &SlotListResponse{
		VenueID: venueID,
		Slots:   make([]SlotResponse, 0, len(slots)),
	}
	for _, s := range slots {
		out.Slots = append(out.Slots, SlotResponse{
			ID:          s.ID,
			Label:       s.Label,
			StartOffset: s.StartOffset.String(),
			EndOffset:   s.EndOffset.String(),
			Multiplier:  s.PriceMultiplier.String(),
		})
	}
	return out
}
