package quote_price

import "github.com/venuebook/venue-scheduler/internal/domain"

// Request asks for a price quote: a venue, a slot, calendar dates and the
// per-date base rates in paise. Base rates come from the caller because rate
// cards live with the venue-owner service, not here.
type Request struct {
	TenantID  int64
	VenueID   int64
	SlotID    string
	Dates     []string         // "YYYY-MM-DD"
	BaseRates map[string]int64 // paise, keyed by the same date strings
}

// Response is the auditable per-date breakdown plus the total.
type Response struct {
	Breakdown domain.PricingBreakdown
}
