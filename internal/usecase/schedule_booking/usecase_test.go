package schedule_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venuebook/venue-scheduler/internal/domain"
	bookingRepo "github.com/venuebook/venue-scheduler/internal/infra/storage/booking"
	catalogSvc "github.com/venuebook/venue-scheduler/internal/service/catalog"
	"github.com/venuebook/venue-scheduler/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type fakeBookingRepo struct {
	insertErrs  []error // consumed per call; nil past the end
	insertCalls int
	lastInsert  *domain.Booking
}

func (f *fakeBookingRepo) Insert(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	f.insertCalls++
	if f.insertCalls <= len(f.insertErrs) && f.insertErrs[f.insertCalls-1] != nil {
		return nil, f.insertErrs[f.insertCalls-1]
	}
	f.lastInsert = b
	b.ID = int64(f.insertCalls)
	b.CreatedAt = time.Now()
	b.UpdatedAt = b.CreatedAt
	return b, nil
}

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

type fakeAvailability struct {
	conflicts    []*domain.Booking
	alternatives []domain.TimeInterval
	findCalls    int
}

func (f *fakeAvailability) FindConflicts(context.Context, int64, int64, domain.TimeInterval, *int64) ([]*domain.Booking, error) {
	f.findCalls++
	return f.conflicts, nil
}

func (f *fakeAvailability) BuildConflict(_ context.Context, _, _ int64, interval domain.TimeInterval, conflicts []*domain.Booking) (*domain.BookingConflict, error) {
	summaries := make([]domain.BookingSummary, 0, len(conflicts))
	for _, b := range conflicts {
		summaries = append(summaries, domain.SummaryOf(b))
	}
	return &domain.BookingConflict{
		ConflictingBookings: summaries,
		AlternativeWindows:  f.alternatives,
		Message:             "window taken",
	}, nil
}

type inlineTxManager struct{}

func (inlineTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func activeVenue(capacity int) *domain.Venue {
	return &domain.Venue{ID: 2, TenantID: 1, Name: "Grand Hall", Capacity: capacity, IsActive: true}
}

func activeSlot() *domain.VenueSlot {
	return &domain.VenueSlot{
		ID:              "evening",
		VenueID:         2,
		Label:           "Evening",
		StartOffset:     17 * 60,
		EndOffset:       23 * 60,
		PriceMultiplier: decimal.RequireFromString("1.5"),
		Active:          true,
	}
}

func validRequest() *Request {
	return &Request{
		TenantID:   1,
		VenueID:    2,
		StartRaw:   "2025-01-02T10:00:00Z",
		EndRaw:     "2025-01-02T14:00:00Z",
		SlotID:     ptr.Ptr("evening"),
		GuestCount: 50,
	}
}

func newTestUseCase(bookings *fakeBookingRepo, venues *fakeVenueRepo, catalog *fakeCatalog, avail *fakeAvailability) *UseCase {
	uc := NewUseCase(bookings, venues, catalog, avail, inlineTxManager{}, testPolicy, nopLogger{})
	return uc.WithTimeProvider(fixedClock{now: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)})
}

func TestExecute_AcceptsFreeWindowAsTempHold(t *testing.T) {
	bookings := &fakeBookingRepo{}
	uc := newTestUseCase(bookings, &fakeVenueRepo{venue: activeVenue(100)}, &fakeCatalog{slot: activeSlot()}, &fakeAvailability{})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusTempHold), resp.Status)
	assert.NotEqual(t, resp.Reference.String(), "00000000-0000-0000-0000-000000000000")
	assert.Equal(t, 1, bookings.insertCalls)
	assert.Equal(t, time.Date(2025, 1, 2, 10, 0, 0, 0, time.UTC), resp.StartAt)
	assert.Nil(t, resp.Pricing)
}

func TestExecute_RejectsGuestsOverCapacity(t *testing.T) {
	bookings := &fakeBookingRepo{}
	uc := newTestUseCase(bookings, &fakeVenueRepo{venue: activeVenue(100)}, &fakeCatalog{slot: activeSlot()}, &fakeAvailability{})

	req := validRequest()
	req.GuestCount = 150

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrCapacityExceeded)
	assert.Zero(t, bookings.insertCalls)
}

func TestExecute_UnlimitedCapacityAcceptsAnyHeadcount(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeVenueRepo{venue: activeVenue(0)}, &fakeCatalog{slot: activeSlot()}, &fakeAvailability{})

	req := validRequest()
	req.GuestCount = 5000

	_, err := uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestExecute_InactiveVenueReadsAsNotFound(t *testing.T) {
	venue := activeVenue(100)
	venue.IsActive = false
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeVenueRepo{venue: venue}, &fakeCatalog{slot: activeSlot()}, &fakeAvailability{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrVenueNotFound)
}

func TestExecute_InactiveSlotIsNotSelectable(t *testing.T) {
	slot := activeSlot()
	slot.Active = false
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeVenueRepo{venue: activeVenue(100)}, &fakeCatalog{slot: slot}, &fakeAvailability{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestExecute_UnknownSlot(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeVenueRepo{venue: activeVenue(100)}, &fakeCatalog{err: catalogSvc.ErrSlotNotFound}, &fakeAvailability{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestExecute_ConflictCarriesPayloadWithAlternatives(t *testing.T) {
	existing := &domain.Booking{
		ID:      7,
		StartAt: time.Date(2025, 1, 2, 9, 0, 0, 0, time.UTC),
		EndAt:   time.Date(2025, 1, 2, 12, 0, 0, 0, time.UTC),
		Status:  domain.StatusConfirmed,
	}
	alt := domain.NewTimeInterval(
		time.Date(2025, 1, 3, 10, 0, 0, 0, time.UTC),
		time.Date(2025, 1, 3, 14, 0, 0, 0, time.UTC),
	)
	bookings := &fakeBookingRepo{}
	avail := &fakeAvailability{conflicts: []*domain.Booking{existing}, alternatives: []domain.TimeInterval{alt}}
	uc := newTestUseCase(bookings, &fakeVenueRepo{venue: activeVenue(100)}, &fakeCatalog{slot: activeSlot()}, avail)

	_, err := uc.Execute(context.Background(), validRequest())

	require.ErrorIs(t, err, ErrBookingConflict)
	assert.Zero(t, bookings.insertCalls)

	var conflictErr *ConflictError
	require.ErrorAs(t, err, &conflictErr)
	require.NotNil(t, conflictErr.Conflict)
	require.Len(t, conflictErr.Conflict.ConflictingBookings, 1)
	assert.Equal(t, int64(7), conflictErr.Conflict.ConflictingBookings[0].ID)
	require.Len(t, conflictErr.Conflict.AlternativeWindows, 1)
	assert.Equal(t, alt, conflictErr.Conflict.AlternativeWindows[0])
}

func TestExecute_RetriesOnceWhenConstraintRacesPreCheck(t *testing.T) {
	bookings := &fakeBookingRepo{insertErrs: []error{bookingRepo.ErrOverlapConstraint}}
	uc := newTestUseCase(bookings, &fakeVenueRepo{venue: activeVenue(100)}, &fakeCatalog{slot: activeSlot()}, &fakeAvailability{})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, 2, bookings.insertCalls)
	assert.Equal(t, string(domain.StatusTempHold), resp.Status)
}

func TestExecute_ConstraintHoldingAfterRetryIsAConflict(t *testing.T) {
	bookings := &fakeBookingRepo{insertErrs: []error{
		bookingRepo.ErrOverlapConstraint,
		bookingRepo.ErrOverlapConstraint,
	}}
	uc := newTestUseCase(bookings, &fakeVenueRepo{venue: activeVenue(100)}, &fakeCatalog{slot: activeSlot()}, &fakeAvailability{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrBookingConflict)
	assert.Equal(t, 2, bookings.insertCalls, "exactly one automatic retry")
}

func TestExecute_QuoteAttachesPricingAndTotal(t *testing.T) {
	bookings := &fakeBookingRepo{}
	uc := newTestUseCase(bookings, &fakeVenueRepo{venue: activeVenue(100)}, &fakeCatalog{slot: activeSlot()}, &fakeAvailability{})

	req := validRequest()
	req.Quote = &QuoteInput{
		Dates: []string{"2025-01-02", "2025-01-03"},
		BaseRates: map[string]int64{
			"2025-01-02": 100000,
			"2025-01-03": 100000,
		},
	}

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	require.NotNil(t, resp.Pricing)
	require.Len(t, resp.Pricing.PerDate, 2)
	assert.EqualValues(t, 300000, resp.Pricing.Total)

	require.NotNil(t, bookings.lastInsert.QuotedTotal)
	assert.Equal(t, int64(300000), *bookings.lastInsert.QuotedTotal)
}

func TestExecute_QuoteWithoutSlotIsInvalid(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeVenueRepo{venue: activeVenue(100)}, &fakeCatalog{slot: activeSlot()}, &fakeAvailability{})

	req := validRequest()
	req.SlotID = nil
	req.Quote = &QuoteInput{Dates: []string{"2025-01-02"}, BaseRates: map[string]int64{"2025-01-02": 100000}}

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_StorageFailureIsUpstreamUnavailable(t *testing.T) {
	bookings := &fakeBookingRepo{insertErrs: []error{errors.New("connection reset")}}
	uc := newTestUseCase(bookings, &fakeVenueRepo{venue: activeVenue(100)}, &fakeCatalog{slot: activeSlot()}, &fakeAvailability{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrUpstreamUnavailable)
	assert.Equal(t, 1, bookings.insertCalls, "generic failures are not retried")
}
