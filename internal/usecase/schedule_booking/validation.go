package schedule_booking

import (
	"fmt"
	"sort"
	"time"

	"github.com/venuebook/venue-scheduler/internal/domain"
	"github.com/venuebook/venue-scheduler/pkg/types"
)

// validateRequest checks the structural fields of a request.
func validateRequest(req *Request) error {
	if req.TenantID <= 0 {
		return fmt.Errorf("%w: tenantID must be positive", ErrInvalidInput)
	}
	if req.VenueID <= 0 {
		return fmt.Errorf("%w: venueID must be positive", ErrInvalidInput)
	}
	if req.GuestCount < 0 {
		return fmt.Errorf("%w: guestCount must not be negative", ErrInvalidInput)
	}
	if req.SlotID != nil && *req.SlotID == "" {
		return fmt.Errorf("%w: slotId must not be empty when set", ErrInvalidInput)
	}
	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}
	return nil
}

// validateInterval applies the interval rules in order, first failure wins:
// parse, start < end, lead time, duration bounds. Pure: now is an input.
func validateInterval(startRaw, endRaw string, now time.Time, policy Policy) (domain.TimeInterval, error) {
	start, err := time.Parse(time.RFC3339, startRaw)
	if err != nil {
		return domain.TimeInterval{}, fmt.Errorf("%w: start %q is not RFC 3339", ErrInvalidDateFormat, startRaw)
	}

	end, err := time.Parse(time.RFC3339, endRaw)
	if err != nil {
		return domain.TimeInterval{}, fmt.Errorf("%w: end %q is not RFC 3339", ErrInvalidDateFormat, endRaw)
	}

	interval := domain.NewTimeInterval(start, end)
	if !interval.IsValid() {
		return domain.TimeInterval{}, ErrInvalidTimeRange
	}

	if interval.Start.Before(now.Add(policy.MinLeadTime)) {
		return domain.TimeInterval{}, fmt.Errorf("%w: bookings require at least %s notice", ErrInsufficientLeadTime, policy.MinLeadTime)
	}

	duration := interval.Duration()
	if duration < policy.MinDuration {
		return domain.TimeInterval{}, fmt.Errorf("%w: minimum duration is %s", ErrBookingTooShort, policy.MinDuration)
	}
	if duration > policy.MaxDuration {
		return domain.TimeInterval{}, fmt.Errorf("%w: maximum duration is %s", ErrBookingTooLong, policy.MaxDuration)
	}

	return interval, nil
}

// parseQuoteDates validates the quote input and returns deduplicated sorted
// dates plus a base-rate lookup. Every date must carry a base rate.
func parseQuoteDates(q *QuoteInput) ([]time.Time, func(time.Time) types.Paise, error) {
	seen := make(map[string]struct{}, len(q.Dates))
	dates := make([]time.Time, 0, len(q.Dates))

	for _, raw := range q.Dates {
		if _, dup := seen[raw]; dup {
			continue
		}
		seen[raw] = struct{}{}

		date, err := time.ParseInLocation(domain.DateFormat, raw, time.UTC)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: quote date %q is not YYYY-MM-DD", ErrInvalidDateFormat, raw)
		}
		if _, ok := q.BaseRates[raw]; !ok {
			return nil, nil, fmt.Errorf("%w: no base rate for date %s", ErrInvalidInput, raw)
		}
		dates = append(dates, date)
	}

	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	baseRate := func(date time.Time) types.Paise {
		return types.Paise(q.BaseRates[date.Format(domain.DateFormat)])
	}

	return dates, baseRate, nil
}
