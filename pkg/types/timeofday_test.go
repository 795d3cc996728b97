package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		input   string
		want    TimeOfDay
		wantErr bool
	}{
		{input: "00:00", want: 0},
		{input: "09:30", want: 9*60 + 30},
		{input: "17:00", want: 17 * 60},
		{input: "24:00", want: 24 * 60},
		{input: "24:01", wantErr: true},
		{input: "25:00", wantErr: true},
		{input: "10:60", wantErr: true},
		{input: "not-a-time", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseTimeOfDay(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeOfDay_String(t *testing.T) {
	assert.Equal(t, "00:00", TimeOfDay(0).String())
	assert.Equal(t, "09:05", TimeOfDay(9*60+5).String())
	assert.Equal(t, "23:59", TimeOfDay(23*60+59).String())
	assert.Equal(t, "24:00", TimeOfDay(24*60).String())
}

func TestTimeOfDay_JSONRoundTrip(t *testing.T) {
	original := TimeOfDay(17*60 + 30)

	data, err := json.Marshal(original)
	require.NoError(t, err)
	assert.Equal(t, `"17:30"`, string(data))

	var decoded TimeOfDay
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, original, decoded)
}

func TestTimeOfDay_OnDate(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+30*60)
	date := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	offset, err := ParseTimeOfDay("17:00")
	require.NoError(t, err)

	instant := offset.OnDate(date, ist)
	assert.Equal(t, time.Date(2025, 6, 1, 17, 0, 0, 0, ist), instant)
	// 17:00 IST is 11:30 UTC.
	assert.Equal(t, "2025-06-01T11:30:00Z", instant.UTC().Format(time.RFC3339))
}
