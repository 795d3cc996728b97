package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venuebook/venue-scheduler/internal/domain"
)

func TestToDomainFilter(t *testing.T) {
	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	status := "confirmed"

	req := &GetVenueBookingsRequest{
		TenantID: 1,
		VenueID:  2,
		From:     &from,
		To:       &to,
		Status:   &status,
	}

	filter, err := req.ToDomainFilter()
	require.NoError(t, err)
	assert.Equal(t, int64(1), filter.TenantID)
	assert.Equal(t, int64(2), filter.VenueID)
	require.NotNil(t, filter.Status)
	assert.Equal(t, domain.StatusConfirmed, *filter.Status)
}

func TestToDomainFilter_RejectsUnknownStatus(t *testing.T) {
	status := "on-hold"
	req := &GetVenueBookingsRequest{TenantID: 1, VenueID: 2, Status: &status}

	_, err := req.ToDomainFilter()
	assert.Error(t, err)
}

func TestFromDomainBookingList(t *testing.T) {
	bookings := []*domain.Booking{
		{ID: 1, TenantID: 1, VenueID: 2, Status: domain.StatusTempHold},
		{ID: 2, TenantID: 1, VenueID: 2, Status: domain.StatusConfirmed},
	}

	list := FromDomainBookingList(bookings)

	assert.Equal(t, 2, list.Total)
	require.Len(t, list.Bookings, 2)
	assert.Equal(t, int64(1), list.Bookings[0].ID)
	assert.Equal(t, "confirmed", list.Bookings[1].Status)
}
