package schedule_booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venuebook/venue-scheduler/pkg/ptr"
)

var testPolicy = Policy{
	MinLeadTime: 2 * time.Hour,
	MinDuration: 1 * time.Hour,
	MaxDuration: 168 * time.Hour,
}

func TestValidateInterval(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		start   string
		end     string
		wantErr error
	}{
		{
			name:  "valid window",
			start: "2025-01-02T10:00:00Z",
			end:   "2025-01-02T14:00:00Z",
		},
		{
			name:  "lead time exactly at the boundary",
			start: "2025-01-01T02:00:00Z",
			end:   "2025-01-01T04:00:00Z",
		},
		{
			name:  "duration exactly at the maximum",
			start: "2025-01-02T00:00:00Z",
			end:   "2025-01-09T00:00:00Z",
		},
		{
			name:    "unparseable start",
			start:   "02-01-2025 10:00",
			end:     "2025-01-02T14:00:00Z",
			wantErr: ErrInvalidDateFormat,
		},
		{
			name:    "unparseable end",
			start:   "2025-01-02T10:00:00Z",
			end:     "tomorrow",
			wantErr: ErrInvalidDateFormat,
		},
		{
			name:    "start equals end",
			start:   "2025-01-02T10:00:00Z",
			end:     "2025-01-02T10:00:00Z",
			wantErr: ErrInvalidTimeRange,
		},
		{
			name:    "inverted window",
			start:   "2025-01-02T14:00:00Z",
			end:     "2025-01-02T10:00:00Z",
			wantErr: ErrInvalidTimeRange,
		},
		{
			name:    "starts within the lead window",
			start:   "2025-01-01T01:00:00Z",
			end:     "2025-01-01T05:00:00Z",
			wantErr: ErrInsufficientLeadTime,
		},
		{
			name:    "one minute short of the lead window",
			start:   "2025-01-01T01:59:00Z",
			end:     "2025-01-01T05:00:00Z",
			wantErr: ErrInsufficientLeadTime,
		},
		{
			name:    "too short",
			start:   "2025-01-02T10:00:00Z",
			end:     "2025-01-02T10:30:00Z",
			wantErr: ErrBookingTooShort,
		},
		{
			name:    "too long",
			start:   "2025-01-02T00:00:00Z",
			end:     "2025-01-09T00:00:01Z",
			wantErr: ErrBookingTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			interval, err := validateInterval(tt.start, tt.end, now, testPolicy)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, interval.IsValid())
		})
	}
}

// An inverted window that also violates lead time must fail on the range
// check: the rules apply in order and the first failure wins.
func TestValidateInterval_FirstFailureWins(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	_, err := validateInterval("2025-01-01T01:00:00Z", "2025-01-01T00:30:00Z", now, testPolicy)
	assert.ErrorIs(t, err, ErrInvalidTimeRange)

	// Unparseable input wins over everything.
	_, err = validateInterval("garbage", "2025-01-01T00:30:00Z", now, testPolicy)
	assert.ErrorIs(t, err, ErrInvalidDateFormat)
}

func TestValidateRequest(t *testing.T) {
	valid := &Request{
		TenantID: 1,
		VenueID:  2,
		StartRaw: "2025-01-02T10:00:00Z",
		EndRaw:   "2025-01-02T14:00:00Z",
	}
	assert.NoError(t, validateRequest(valid))

	tests := []struct {
		name string
		req  *Request
	}{
		{name: "missing tenant", req: &Request{VenueID: 2}},
		{name: "missing venue", req: &Request{TenantID: 1}},
		{name: "negative guest count", req: &Request{TenantID: 1, VenueID: 2, GuestCount: -1}},
		{name: "empty slot id", req: &Request{TenantID: 1, VenueID: 2, SlotID: ptr.Ptr("")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, validateRequest(tt.req), ErrInvalidInput)
		})
	}
}

func TestParseQuoteDates(t *testing.T) {
	t.Run("deduplicates and sorts", func(t *testing.T) {
		q := &QuoteInput{
			Dates: []string{"2025-06-03", "2025-06-01", "2025-06-03", "2025-06-02"},
			BaseRates: map[string]int64{
				"2025-06-01": 100000,
				"2025-06-02": 100000,
				"2025-06-03": 100000,
			},
		}

		dates, baseRate, err := parseQuoteDates(q)
		require.NoError(t, err)
		require.Len(t, dates, 3)
		assert.True(t, dates[0].Before(dates[1]))
		assert.True(t, dates[1].Before(dates[2]))
		assert.EqualValues(t, 100000, baseRate(dates[0]))
	})

	t.Run("rejects malformed dates", func(t *testing.T) {
		q := &QuoteInput{Dates: []string{"01/06/2025"}, BaseRates: map[string]int64{}}
		_, _, err := parseQuoteDates(q)
		assert.ErrorIs(t, err, ErrInvalidDateFormat)
	})

	t.Run("requires a base rate per date", func(t *testing.T) {
		q := &QuoteInput{Dates: []string{"2025-06-01"}, BaseRates: map[string]int64{}}
		_, _, err := parseQuoteDates(q)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
