package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateOT(t *testing.T) {
	dayShift := ShiftConfig{WorkHours: 9, BreakHours: 1, IsNextDay: false}
	nightShift := ShiftConfig{WorkHours: 9, BreakHours: 1, IsNextDay: true}

	tests := []struct {
		name     string
		clockIn  string
		clockOut string
		cfg      ShiftConfig
		expected int
	}{
		{
			name:     "30 minutes over a day shift",
			clockIn:  "09:00",
			clockOut: "19:30",
			cfg:      dayShift,
			expected: 30,
		},
		{
			name:     "exactly on time is zero",
			clockIn:  "09:00",
			clockOut: "19:00",
			cfg:      dayShift,
			expected: 0,
		},
		{
			name:     "leaving early floors at zero",
			clockIn:  "09:00",
			clockOut: "17:00",
			cfg:      dayShift,
			expected: 0,
		},
		{
			name:     "overnight shift wraps early-morning clock-out",
			clockIn:  "16:00",
			clockOut: "02:15",
			cfg:      nightShift,
			expected: 15, // out wraps to 1575, in 960, worked 615 vs expected 600
		},
		{
			name:     "overnight shift with same-day clock-out does not wrap",
			clockIn:  "16:00",
			clockOut: "23:00",
			cfg:      nightShift,
			expected: 0,
		},
		{
			name:     "noon clock-out on overnight shift counts as same day",
			clockIn:  "16:00",
			clockOut: "12:00",
			cfg:      nightShift,
			expected: 0,
		},
		{
			name:     "missing clock-out is zero",
			clockIn:  "09:00",
			clockOut: "",
			cfg:      dayShift,
			expected: 0,
		},
		{
			name:     "missing clock-in is zero",
			clockIn:  "",
			clockOut: "19:30",
			cfg:      dayShift,
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CalculateOT(tt.clockIn, tt.clockOut, tt.cfg))
		})
	}
}

func TestCalculateOTFractionalHours(t *testing.T) {
	cfg := ShiftConfig{WorkHours: 8.5, BreakHours: 0.5}
	// expected = 9h = 540m; worked 09:00-18:20 = 560m
	assert.Equal(t, 20, CalculateOT("09:00", "18:20", cfg))
}

func TestFormatOT(t *testing.T) {
	tests := []struct {
		minutes  int
		expected string
	}{
		{0, "-"},
		{30, "30 น."},
		{60, "1 ชม."},
		{90, "1 ชม. 30 น."},
		{135, "2 ชม. 15 น."},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatOT(tt.minutes), "minutes=%d", tt.minutes)
	}
}
