package domain

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/venuebook/venue-scheduler/pkg/types"
)

// VenueSlot is a named recurring session within a day (e.g. "morning",
// "full_day") carrying a price multiplier. Slots belong to exactly one venue.
// Slots referenced by historical bookings are never deleted, only
// deactivated, so pricing stays reconstructible.
type VenueSlot struct {
	ID              string
	VenueID         int64
	Label           string
	StartOffset     types.TimeOfDay
	EndOffset       types.TimeOfDay
	PriceMultiplier decimal.Decimal
	Active          bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsValid checks the structural invariants of a slot definition.
func (s *VenueSlot) IsValid() bool {
	return s.ID != "" &&
		s.StartOffset.Valid() &&
		s.EndOffset.Valid() &&
		s.StartOffset.Before(s.EndOffset) &&
		!s.PriceMultiplier.IsNegative()
}
