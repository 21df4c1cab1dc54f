package core

// TimePairs is the classified view of one employee-day. Empty string means the
// slot is absent (rendered as "-" downstream).
type TimePairs struct {
	ClockIn  string `json:"clockIn,omitempty"`
	BreakOut string `json:"breakOut,omitempty"`
	BreakIn  string `json:"breakIn,omitempty"`
	ClockOut string `json:"clockOut,omitempty"`
}

// ClassifyTimes maps a sorted scan-time list to named pairs purely by position —
// the device records order, not punch type.
//
//	1 scan   clock-in only
//	2 scans  clock-in, clock-out
//	3 scans  clock-in, break-out, clock-out
//	4+ scans clock-in, break-out, break-in, last scan as clock-out
//
// Scans between the third and the last are treated as noise and ignored here
// (they still count toward raw scan statistics).
func ClassifyTimes(times []string) TimePairs {
	var tp TimePairs
	if len(times) == 0 {
		return tp
	}

	tp.ClockIn = times[0]

	switch {
	case len(times) == 2:
		tp.ClockOut = times[1]
	case len(times) == 3:
		tp.BreakOut = times[1]
		tp.ClockOut = times[2]
	case len(times) >= 4:
		tp.BreakOut = times[1]
		tp.BreakIn = times[2]
		tp.ClockOut = times[len(times)-1]
	}
	return tp
}
