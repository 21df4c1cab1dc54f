package core

import (
	"sort"

	"timescan.app/timescan/utils"
)

// EmployeeDay holds the ordered scan times for one employee on one calendar
// date. Times are sorted ascending; for zero-padded HH:MM strings, string order
// equals clock order.
type EmployeeDay struct {
	EmployeeID string
	Date       string
	Times      []string
}

// GroupByDay partitions punches by employee then by date. A shift that
// physically spans midnight is not joined across the two dates — each calendar
// date is classified on its own (the overtime wraparound handles the early
// clock-out instead).
func GroupByDay(records []PunchEvent) []EmployeeDay {
	var days []EmployeeDay

	byEmployee := utils.GroupBy(records, func(r PunchEvent) string { return r.EmployeeID })
	for employeeID, recs := range byEmployee {
		byDate := utils.GroupBy(recs, func(r PunchEvent) string { return r.Date })
		for date, dayRecs := range byDate {
			times := utils.Map(dayRecs, func(r PunchEvent) string { return r.Time })
			sort.Strings(times)
			days = append(days, EmployeeDay{
				EmployeeID: employeeID,
				Date:       date,
				Times:      times,
			})
		}
	}

	sort.Slice(days, func(i, j int) bool {
		if days[i].EmployeeID != days[j].EmployeeID {
			return days[i].EmployeeID < days[j].EmployeeID
		}
		return days[i].Date < days[j].Date
	})
	return days
}
