package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustInterval(t *testing.T, start, end string) TimeInterval {
	t.Helper()
	s, err := time.Parse(time.RFC3339, start)
	require.NoError(t, err)
	e, err := time.Parse(time.RFC3339, end)
	require.NoError(t, err)
	return NewTimeInterval(s, e)
}

func TestTimeInterval_Overlaps(t *testing.T) {
	tests := []struct {
		name     string
		a        TimeInterval
		b        TimeInterval
		overlaps bool
	}{
		{
			name:     "back to back windows do not overlap",
			a:        mustInterval(t, "2025-06-01T10:00:00Z", "2025-06-01T11:00:00Z"),
			b:        mustInterval(t, "2025-06-01T11:00:00Z", "2025-06-01T12:00:00Z"),
			overlaps: false,
		},
		{
			name:     "one minute across the boundary overlaps",
			a:        mustInterval(t, "2025-06-01T10:59:00Z", "2025-06-01T11:01:00Z"),
			b:        mustInterval(t, "2025-06-01T11:00:00Z", "2025-06-01T12:00:00Z"),
			overlaps: true,
		},
		{
			name:     "contained window overlaps",
			a:        mustInterval(t, "2025-06-01T10:00:00Z", "2025-06-01T14:00:00Z"),
			b:        mustInterval(t, "2025-06-01T11:00:00Z", "2025-06-01T12:00:00Z"),
			overlaps: true,
		},
		{
			name:     "identical windows overlap",
			a:        mustInterval(t, "2025-06-01T10:00:00Z", "2025-06-01T11:00:00Z"),
			b:        mustInterval(t, "2025-06-01T10:00:00Z", "2025-06-01T11:00:00Z"),
			overlaps: true,
		},
		{
			name:     "disjoint days do not overlap",
			a:        mustInterval(t, "2025-06-01T10:00:00Z", "2025-06-01T11:00:00Z"),
			b:        mustInterval(t, "2025-06-02T10:00:00Z", "2025-06-02T11:00:00Z"),
			overlaps: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.overlaps, tt.a.Overlaps(tt.b))
			// Overlap is symmetric.
			assert.Equal(t, tt.overlaps, tt.b.Overlaps(tt.a))
		})
	}
}

func TestTimeInterval_IsValid(t *testing.T) {
	valid := mustInterval(t, "2025-06-01T10:00:00Z", "2025-06-01T11:00:00Z")
	assert.True(t, valid.IsValid())

	inverted := mustInterval(t, "2025-06-01T11:00:00Z", "2025-06-01T10:00:00Z")
	assert.False(t, inverted.IsValid())

	empty := mustInterval(t, "2025-06-01T10:00:00Z", "2025-06-01T10:00:00Z")
	assert.False(t, empty.IsValid())
}

func TestTimeInterval_NormalizesToUTC(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+30*60)
	start := time.Date(2025, 6, 1, 15, 30, 0, 0, ist)
	end := time.Date(2025, 6, 1, 17, 30, 0, 0, ist)

	interval := NewTimeInterval(start, end)

	assert.Equal(t, time.UTC, interval.Start.Location())
	assert.Equal(t, time.UTC, interval.End.Location())
	assert.Equal(t, "2025-06-01T10:00:00Z", interval.Start.Format(time.RFC3339))
}

func TestTimeInterval_Shift(t *testing.T) {
	interval := mustInterval(t, "2025-06-01T10:00:00Z", "2025-06-01T12:00:00Z")
	shifted := interval.Shift(24 * time.Hour)

	assert.Equal(t, mustInterval(t, "2025-06-02T10:00:00Z", "2025-06-02T12:00:00Z"), shifted)
	assert.Equal(t, interval.Duration(), shifted.Duration())
}

func TestTimeInterval_StringUsesIST(t *testing.T) {
	interval := mustInterval(t, "2025-06-01T10:00:00Z", "2025-06-01T12:00:00Z")
	// 10:00 UTC is 15:30 IST.
	assert.Equal(t, "[2025-06-01 15:30 IST, 2025-06-01 17:30 IST)", interval.String())
}
