package quote_price

import (
	"github.com/venuebook/venue-scheduler/internal/domain"
	quotePrice "github.com/venuebook/venue-scheduler/internal/usecase/quote_price"
)

// QuotePriceRequest is the HTTP request model.
type QuotePriceRequest struct {
	SlotID    string           `json:"slotId"`
	Dates     []string         `json:"dates"`               // "YYYY-MM-DD"
	BaseRates map[string]int64 `json:"baseRates"`           // paise per date
}

// QuoteResponse is the auditable breakdown. Rates carry both the integer
// paise value and the formatted rupee string.
type QuoteResponse struct {
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
	BaseRateRs    string `json:"baseRate"`
	Multiplier    string `json:"multiplier"`
	AppliedRate   int64  `json:"appliedRatePaise"`
	AppliedRateRs string `json:"appliedRate"`
}

// ToUseCaseRequest builds the use case request from path and body.
func (r *QuotePriceRequest) ToUseCaseRequest(tenantID, venueID int64) *quotePrice.Request {
	return &quotePrice.Request{
		TenantID:  tenantID,
		VenueID:   venueID,
		SlotID:    r.SlotID,
		Dates:     r.Dates,
		BaseRates: r.BaseRates,
	}
}

// FromUseCaseResponse converts the breakdown to the HTTP response.
func FromUseCaseResponse(resp *quotePrice.Response) *QuoteResponse {
	b := resp.Breakdown

	lines := make([]PriceLine, 0, len(b.PerDate))
	for _, line := range b.PerDate {
		lines = append(lines, PriceLine{
			Date:          line.Date.Format(domain.DateFormat),
			BaseRate:      int64(line.BaseRate),
			BaseRateRs:    line.BaseRate.String(),
			Multiplier:    line.Multiplier.String(),
			AppliedRate:   int64(line.AppliedRate),
			AppliedRateRs: line.AppliedRate.String(),
		})
	}

	return &QuoteResponse{
		VenueID: b.VenueID,
		SlotID:  b.SlotID,
		PerDate: lines,
		Total:   int64(b.Total),
		TotalRs: b.Total.String(),
	}
}
