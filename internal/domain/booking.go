package domain

import (
	"time"

	"github.com/google/uuid"
)

// BookingStatus represents the lifecycle state of a booking.
type BookingStatus string

const (
	StatusTempHold  BookingStatus = "temp_hold"
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusExpired   BookingStatus = "expired"
)

// IsValidStatus reports whether s is one of the known lifecycle states.
func IsValidStatus(s BookingStatus) bool {
	switch s {
	case StatusTempHold, StatusPending, StatusConfirmed, StatusCancelled, StatusExpired:
		return true
	}
	return false
}

// Booking is a reserved time window on a venue. The scheduler creates new
// records as temp holds and reads existing ones for conflict checks; status
// transitions past that belong to the payment/confirmation workflow.
type Booking struct {
	ID        int64
	Reference uuid.UUID // stable external identifier, issued at insert
	TenantID  int64
	VenueID   int64
	SlotID    *string // nil when the booking was made without a named slot
	StartAt   time.Time
	EndAt     time.Time
	Status    BookingStatus

	GuestCount  int
	QuotedTotal *int64 // paise total quoted at scheduling time, if any
	Notes       *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Interval returns the booked window.
func (b *Booking) Interval() TimeInterval {
	return NewTimeInterval(b.StartAt, b.EndAt)
}

// Blocks reports whether the booking occupies its window for conflict
// purposes. Cancelled and expired bookings never block.
func (b *Booking) Blocks() bool {
	return b.Status == StatusTempHold || b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanBeCancelled reports whether a cancellation is still meaningful.
func (b *Booking) CanBeCancelled() bool {
	return b.Blocks()
}

// IsTerminal reports whether the booking reached a final state.
func (b *Booking) IsTerminal() bool {
	return b.Status == StatusCancelled || b.Status == StatusExpired
}

// BlockingStatuses are the states that participate in conflict detection.
var BlockingStatuses = []BookingStatus{
	StatusTempHold,
	StatusPending,
	StatusConfirmed,
}

// TerminalStatuses never block a venue window.
var TerminalStatuses = []BookingStatus{
	StatusCancelled,
	StatusExpired,
}

// VenueBookingsFilter narrows a venue's booking listing.
type VenueBookingsFilter struct {
	TenantID        int64
	VenueID         int64
	From            *time.Time     // window start bound (on StartAt), optional
	To              *time.Time     // window end bound (on StartAt), optional
	Status          *BookingStatus // exact status, optional
	IncludeTerminal bool           // include cancelled/expired when no Status is set
}

// BookingSummary is the compact representation of a conflicting booking
// surfaced to callers. It deliberately omits tenant-internal fields.
type BookingSummary struct {
	ID        int64
	Reference uuid.UUID
	Interval  TimeInterval
	SlotID    *string
	Status    BookingStatus
}

// SummaryOf builds a BookingSummary from a booking.
func SummaryOf(b *Booking) BookingSummary {
	return BookingSummary{
		ID:        b.ID,
		Reference: b.Reference,
		Interval:  b.Interval(),
		SlotID:    b.SlotID,
		Status:    b.Status,
	}
}

// BookingConflict is the structured rejection payload for an overlapping
// request: what is in the way, and up to a handful of nearby windows that
// were free when the check ran.
type BookingConflict struct {
	ConflictingBookings []BookingSummary
	AlternativeWindows  []TimeInterval
	Message             string
}
