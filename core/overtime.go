package core

import (
	"fmt"
	"strconv"
	"strings"
)

// ShiftConfig is the resolved configuration the overtime math runs against:
// either an employee's pinned override or the current default preset.
type ShiftConfig struct {
	WorkHours  float64 `json:"workHours"`
	BreakHours float64 `json:"breakHours"`
	IsNextDay  bool    `json:"isNextDay"`
}

// CalculateOT returns the overtime minutes for one day. A missing clock-in or
// clock-out yields zero — a single scan is not an error, there is just nothing
// to compute.
//
// For next-day shifts a clock-out before noon is attributed to the day after
// clock-in and shifted by 24h. Noon is safe as the cutoff: no supported shift
// nominally ends there, so any clock-out at 12:00 or later is same-day.
func CalculateOT(clockIn, clockOut string, cfg ShiftConfig) int {
	if clockIn == "" || clockOut == "" {
		return 0
	}

	inMinutes := toMinutes(clockIn)
	outMinutes := toMinutes(clockOut)

	if cfg.IsNextDay && outMinutes/60 < 12 {
		outMinutes += 24 * 60
	}

	worked := outMinutes - inMinutes
	expected := int((cfg.WorkHours + cfg.BreakHours) * 60)

	ot := worked - expected
	if ot < 0 {
		return 0
	}
	return ot
}

// toMinutes converts "HH:MM" to minutes since midnight.
func toMinutes(t string) int {
	h, m, found := strings.Cut(t, ":")
	if !found {
		return 0
	}
	hours, _ := strconv.Atoi(h)
	minutes, _ := strconv.Atoi(m)
	return hours*60 + minutes
}

// FormatOT renders overtime minutes as "X ชม. Y น.", dropping the zero part.
// Zero minutes renders as "-" (no overtime), never "0".
func FormatOT(minutes int) string {
	if minutes == 0 {
		return "-"
	}
	hours := minutes / 60
	mins := minutes % 60
	switch {
	case hours > 0 && mins > 0:
		return fmt.Sprintf("%d ชม. %d น.", hours, mins)
	case hours > 0:
		return fmt.Sprintf("%d ชม.", hours)
	default:
		return fmt.Sprintf("%d น.", mins)
	}
}
