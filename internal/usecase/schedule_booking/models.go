package schedule_booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/venuebook/venue-scheduler/internal/domain"
)

// Policy is the validation policy applied to every request.
type Policy struct {
	MinLeadTime time.Duration
	MinDuration time.Duration
	MaxDuration time.Duration
}

// QuoteInput optionally asks for a price quote alongside the reservation.
// Dates are "YYYY-MM-DD"; base rates are paise keyed by the same strings.
type QuoteInput struct {
	Dates     []string
	BaseRates map[string]int64
}

// Request is one booking attempt. It lives for the duration of the call.
type Request struct {
	TenantID   int64
	VenueID    int64
	StartRaw   string // RFC 3339 timestamp
	EndRaw     string // RFC 3339 timestamp
	SlotID     *string
	GuestCount int
	Notes      *string
	Quote      *QuoteInput
}

// Response is the accepted reservation, plus the quote when one was asked for.
type Response struct {
	ID          int64
	Reference   uuid.UUID
	TenantID    int64
	VenueID     int64
	SlotID      *string
	StartAt     time.Time
	EndAt       time.Time
	Status      string
	GuestCount  int
	Notes       *string
	Pricing     *domain.PricingBreakdown
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
