package domain

import "time"

// Venue is the bookable resource. Ownership and editing live in an external
// service; the scheduler only reads capacity, tenant scope and the active flag.
type Venue struct {
	ID        int64
	TenantID  int64
	Name      string
	Capacity  int // 0 = no capacity limit
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasCapacityFor reports whether guestCount fits the venue. A zero capacity
// means the venue does not limit headcount.
func (v *Venue) HasCapacityFor(guestCount int) bool {
	return v.Capacity == 0 || guestCount <= v.Capacity
}
