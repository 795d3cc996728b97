package quote_price

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venuebook/venue-scheduler/internal/domain"
	catalogSvc "github.com/venuebook/venue-scheduler/internal/service/catalog"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeVenueRepo struct {
	venue *domain.Venue
	err   error
}

func (f *fakeVenueRepo) Get(context.Context, int64, int64) (*domain.Venue, error) {
	return f.venue, f.err
}

type fakeCatalog struct {
	slot *domain.VenueSlot
	err  error
}

func (f *fakeCatalog) Resolve(context.Context, int64, string) (*domain.VenueSlot, error) {
	return f.slot, f.err
}

func eveningSlot(multiplier string, active bool) *domain.VenueSlot {
	return &domain.VenueSlot{
		ID:              "evening",
		VenueID:         2,
		Label:           "Evening",
		StartOffset:     17 * 60,
		EndOffset:       23 * 60,
		PriceMultiplier: decimal.RequireFromString(multiplier),
		Active:          active,
	}
}

func newTestUseCase(slot *domain.VenueSlot) *UseCase {
	venue := &domain.Venue{ID: 2, TenantID: 1, Name: "Grand Hall", IsActive: true}
	return NewUseCase(&fakeVenueRepo{venue: venue}, &fakeCatalog{slot: slot}, nopLogger{})
}

func quoteRequest(dates []string, rates map[string]int64) *Request {
	return &Request{
		TenantID:  1,
		VenueID:   2,
		SlotID:    "evening",
		Dates:     dates,
		BaseRates: rates,
	}
}

func TestExecute_PerDateBreakdown(t *testing.T) {
	uc := newTestUseCase(eveningSlot("1.5", true))

	resp, err := uc.Execute(context.Background(), quoteRequest(
		[]string{"2025-06-01", "2025-06-02"},
		map[string]int64{"2025-06-01": 100000, "2025-06-02": 100000},
	))

	require.NoError(t, err)
	require.Len(t, resp.Breakdown.PerDate, 2)
	for _, line := range resp.Breakdown.PerDate {
		assert.EqualValues(t, 100000, line.BaseRate)
		assert.EqualValues(t, 150000, line.AppliedRate)
	}
	assert.EqualValues(t, 300000, resp.Breakdown.Total)
	assert.Equal(t, "evening", resp.Breakdown.SlotID)
}

func TestExecute_Deterministic(t *testing.T) {
	uc := newTestUseCase(eveningSlot("1.175", true))
	req := quoteRequest(
		[]string{"2025-06-01", "2025-06-02", "2025-06-03"},
		map[string]int64{"2025-06-01": 33333, "2025-06-02": 33333, "2025-06-03": 33333},
	)

	first, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first.Breakdown, second.Breakdown)
	// Each line rounds once; the total is the exact sum of the lines.
	assert.EqualValues(t, 3*39166, first.Breakdown.Total)
}

func TestExecute_DeduplicatesAndSortsDates(t *testing.T) {
	uc := newTestUseCase(eveningSlot("1.0", true))

	resp, err := uc.Execute(context.Background(), quoteRequest(
		[]string{"2025-06-03", "2025-06-01", "2025-06-03"},
		map[string]int64{"2025-06-01": 100, "2025-06-03": 200},
	))

	require.NoError(t, err)
	require.Len(t, resp.Breakdown.PerDate, 2)
	assert.True(t, resp.Breakdown.PerDate[0].Date.Before(resp.Breakdown.PerDate[1].Date))
	assert.EqualValues(t, 300, resp.Breakdown.Total)
}

func TestExecute_EmptyDatesQuoteZero(t *testing.T) {
	uc := newTestUseCase(eveningSlot("2.0", true))

	resp, err := uc.Execute(context.Background(), quoteRequest(nil, nil))

	require.NoError(t, err)
	assert.Empty(t, resp.Breakdown.PerDate)
	assert.EqualValues(t, 0, resp.Breakdown.Total)
}

func TestExecute_MissingBaseRate(t *testing.T) {
	uc := newTestUseCase(eveningSlot("1.0", true))

	_, err := uc.Execute(context.Background(), quoteRequest(
		[]string{"2025-06-01", "2025-06-02"},
		map[string]int64{"2025-06-01": 100},
	))

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_MalformedDate(t *testing.T) {
	uc := newTestUseCase(eveningSlot("1.0", true))

	_, err := uc.Execute(context.Background(), quoteRequest(
		[]string{"01/06/2025"},
		map[string]int64{"01/06/2025": 100},
	))

	assert.ErrorIs(t, err, ErrInvalidDateFormat)
}

func TestExecute_InactiveSlotStillQuotes(t *testing.T) {
	// Historical quotes must reconstruct after a slot is retired.
	uc := newTestUseCase(eveningSlot("1.5", false))

	resp, err := uc.Execute(context.Background(), quoteRequest(
		[]string{"2025-06-01"},
		map[string]int64{"2025-06-01": 100000},
	))

	require.NoError(t, err)
	assert.EqualValues(t, 150000, resp.Breakdown.Total)
}

func TestExecute_UnknownSlot(t *testing.T) {
	venue := &domain.Venue{ID: 2, TenantID: 1, IsActive: true}
	uc := NewUseCase(&fakeVenueRepo{venue: venue}, &fakeCatalog{err: catalogSvc.ErrSlotNotFound}, nopLogger{})

	_, err := uc.Execute(context.Background(), quoteRequest([]string{"2025-06-01"}, map[string]int64{"2025-06-01": 100}))

	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestExecute_NegativeBaseRate(t *testing.T) {
	uc := newTestUseCase(eveningSlot("1.0", true))

	_, err := uc.Execute(context.Background(), quoteRequest(
		[]string{"2025-06-01"},
		map[string]int64{"2025-06-01": -100},
	))

	assert.ErrorIs(t, err, ErrInvalidInput)
}
