package domain

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/venuebook/venue-scheduler/pkg/types"
)

// PriceLine explains the rate applied to one calendar date: the base rate,
// the slot multiplier in force, and the resulting applied rate.
type PriceLine struct {
	Date        time.Time // calendar date, midnight UTC
	BaseRate    types.Paise
	Multiplier  decimal.Decimal
	AppliedRate types.Paise
}

// PricingBreakdown is the auditable result of a quote: one line per date in
// ascending order, plus the total. The total is the exact sum of the
// per-line applied rates; rounding happens once per line, never again on the
// total, so the breakdown always adds up.
type PricingBreakdown struct {
	VenueID int64
	SlotID  string
	PerDate []PriceLine
	Total   types.Paise
}

// NewPricingBreakdown prices the given dates against a base-rate lookup and
// the slot's multiplier. Dates must already be deduplicated and sorted.
func NewPricingBreakdown(venueID int64, slot *VenueSlot, dates []time.Time, baseRate func(time.Time) types.Paise) PricingBreakdown {
	breakdown := PricingBreakdown{
		VenueID: venueID,
		SlotID:  slot.ID,
		PerDate: make([]PriceLine, 0, len(dates)),
	}

	for _, date := range dates {
		base := baseRate(date)
		applied := base.MulDecimal(slot.PriceMultiplier)
		breakdown.PerDate = append(breakdown.PerDate, PriceLine{
			Date:        date,
			BaseRate:    base,
			Multiplier:  slot.PriceMultiplier,
			AppliedRate: applied,
		})
		breakdown.Total += applied
	}

	return breakdown
}
