package availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venuebook/venue-scheduler/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// calendarRepo serves overlap queries from an in-memory set of bookings.
type calendarRepo struct {
	bookings []*domain.Booking
	queries  int
}

func (r *calendarRepo) FindOverlapping(_ context.Context, _, _ int64, interval domain.TimeInterval, excludeID *int64) ([]*domain.Booking, error) {
	r.queries++
	var out []*domain.Booking
	for _, b := range r.bookings {
		if excludeID != nil && b.ID == *excludeID {
			continue
		}
		if b.Blocks() && b.Interval().Overlaps(interval) {
			out = append(out, b)
		}
	}
	return out, nil
}

func booked(id int64, start, end string) *domain.Booking {
	s, _ := time.Parse(time.RFC3339, start)
	e, _ := time.Parse(time.RFC3339, end)
	return &domain.Booking{ID: id, StartAt: s, EndAt: e, Status: domain.StatusConfirmed}
}

func window(start, end string) domain.TimeInterval {
	s, _ := time.Parse(time.RFC3339, start)
	e, _ := time.Parse(time.RFC3339, end)
	return domain.NewTimeInterval(s, e)
}

var testPolicy = Policy{
	Step:           24 * time.Hour,
	Horizon:        14 * 24 * time.Hour,
	MaxSuggestions: 3,
}

func TestHasConflict(t *testing.T) {
	repo := &calendarRepo{bookings: []*domain.Booking{
		booked(1, "2025-06-01T10:00:00Z", "2025-06-01T12:00:00Z"),
	}}
	svc := NewService(repo, testPolicy, nopLogger{})

	busy, err := svc.HasConflict(context.Background(), 1, 2, window("2025-06-01T11:00:00Z", "2025-06-01T13:00:00Z"), nil)
	require.NoError(t, err)
	assert.True(t, busy)

	free, err := svc.HasConflict(context.Background(), 1, 2, window("2025-06-01T12:00:00Z", "2025-06-01T14:00:00Z"), nil)
	require.NoError(t, err)
	assert.False(t, free)
}

func TestHasConflict_CancelledBookingsDoNotBlock(t *testing.T) {
	cancelled := booked(1, "2025-06-01T10:00:00Z", "2025-06-01T12:00:00Z")
	cancelled.Status = domain.StatusCancelled

	svc := NewService(&calendarRepo{bookings: []*domain.Booking{cancelled}}, testPolicy, nopLogger{})

	busy, err := svc.HasConflict(context.Background(), 1, 2, window("2025-06-01T10:00:00Z", "2025-06-01T12:00:00Z"), nil)
	require.NoError(t, err)
	assert.False(t, busy)
}

func TestSuggestAlternatives_SkipsBusyDays(t *testing.T) {
	// Same daily window booked on June 2 and 3; probing from June 1 must
	// land on June 4, 5 and 6.
	repo := &calendarRepo{bookings: []*domain.Booking{
		booked(1, "2025-06-02T10:00:00Z", "2025-06-02T12:00:00Z"),
		booked(2, "2025-06-03T10:00:00Z", "2025-06-03T12:00:00Z"),
	}}
	svc := NewService(repo, testPolicy, nopLogger{})

	alternatives, err := svc.SuggestAlternatives(context.Background(), 1, 2, window("2025-06-01T10:00:00Z", "2025-06-01T12:00:00Z"))

	require.NoError(t, err)
	require.Len(t, alternatives, 3)
	assert.Equal(t, window("2025-06-04T10:00:00Z", "2025-06-04T12:00:00Z"), alternatives[0])
	assert.Equal(t, window("2025-06-05T10:00:00Z", "2025-06-05T12:00:00Z"), alternatives[1])
	assert.Equal(t, window("2025-06-06T10:00:00Z", "2025-06-06T12:00:00Z"), alternatives[2])
}

func TestSuggestAlternatives_GivesUpAtHorizon(t *testing.T) {
	// Every probed day within the horizon is taken.
	var busy []*domain.Booking
	for day := 1; day <= 20; day++ {
		start := time.Date(2025, 6, day, 10, 0, 0, 0, time.UTC)
		busy = append(busy, &domain.Booking{
			ID:      int64(day),
			StartAt: start,
			EndAt:   start.Add(2 * time.Hour),
			Status:  domain.StatusConfirmed,
		})
	}
	repo := &calendarRepo{bookings: busy}
	svc := NewService(repo, testPolicy, nopLogger{})

	alternatives, err := svc.SuggestAlternatives(context.Background(), 1, 2, window("2025-06-01T10:00:00Z", "2025-06-01T12:00:00Z"))

	require.NoError(t, err)
	assert.Empty(t, alternatives)
	// 14 probes, one per day up to the horizon, none beyond it.
	assert.Equal(t, 14, repo.queries)
}

func TestSuggestAlternatives_DisabledPolicy(t *testing.T) {
	repo := &calendarRepo{}
	svc := NewService(repo, Policy{Step: 24 * time.Hour, Horizon: 14 * 24 * time.Hour, MaxSuggestions: 0}, nopLogger{})

	alternatives, err := svc.SuggestAlternatives(context.Background(), 1, 2, window("2025-06-01T10:00:00Z", "2025-06-01T12:00:00Z"))

	require.NoError(t, err)
	assert.Empty(t, alternatives)
	assert.Zero(t, repo.queries)
}

func TestBuildConflict(t *testing.T) {
	existing := booked(7, "2025-06-01T10:00:00Z", "2025-06-01T12:00:00Z")
	repo := &calendarRepo{bookings: []*domain.Booking{existing}}
	svc := NewService(repo, testPolicy, nopLogger{})

	requested := window("2025-06-01T11:00:00Z", "2025-06-01T13:00:00Z")
	conflict, err := svc.BuildConflict(context.Background(), 1, 2, requested, []*domain.Booking{existing})

	require.NoError(t, err)
	require.Len(t, conflict.ConflictingBookings, 1)
	assert.Equal(t, int64(7), conflict.ConflictingBookings[0].ID)
	// June 1 is the only busy day, so the very next day is free.
	require.NotEmpty(t, conflict.AlternativeWindows)
	assert.Equal(t, window("2025-06-02T11:00:00Z", "2025-06-02T13:00:00Z"), conflict.AlternativeWindows[0])
	assert.NotEmpty(t, conflict.Message)
}
