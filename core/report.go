package core

import (
	"sort"
	"strconv"
	"strings"

	"timescan.app/timescan/utils"
)

// ResolveFunc yields the effective shift configuration for an employee. The
// shift package supplies this; core stays independent of where presets live.
type ResolveFunc func(employeeID string) ShiftConfig

// ScanStatus is the coarse per-punch label shown in the record table, inferred
// from the hour band alone.
type ScanStatus struct {
	Kind  string `json:"kind"`
	Label string `json:"label"`
}

// StatusFor labels a scan by its hour: morning scans read as clock-in, the
// midday band as lunch break, afternoon and evening as clock-out, and anything
// before 06:00 as a late-night scan.
func StatusFor(t string) ScanStatus {
	hourStr, _, _ := strings.Cut(t, ":")
	hour, _ := strconv.Atoi(hourStr)

	switch {
	case hour >= 6 && hour < 12:
		return ScanStatus{Kind: "in", Label: "เข้างาน"}
	case hour >= 12 && hour < 15:
		return ScanStatus{Kind: "break", Label: "พักกลางวัน"}
	case hour >= 15 && hour < 24:
		return ScanStatus{Kind: "out", Label: "ออกงาน"}
	default:
		return ScanStatus{Kind: "late", Label: "ดึก"}
	}
}

// DayRecord is one reconciled day inside an employee report.
type DayRecord struct {
	Date      string    `json:"date"`
	ThaiDate  string    `json:"thaiDate"`
	Pairs     TimePairs `json:"pairs"`
	Scans     int       `json:"scans"`
	OTMinutes int       `json:"otMinutes"`
	OT        string    `json:"ot"`
}

// EmployeeReport is the reconciled attendance of one employee across the
// current import: per-day rows plus totals.
type EmployeeReport struct {
	EmployeeID     string      `json:"employeeId"`
	EmployeeName   string      `json:"employeeName"`
	Config         ShiftConfig `json:"config"`
	Days           []DayRecord `json:"days"`
	ScanCount      int         `json:"scanCount"`
	DaysWorked     int         `json:"daysWorked"`
	TotalOTMinutes int         `json:"totalOtMinutes"`
	TotalOT        string      `json:"totalOt"`
}

// BuildReport reconciles one employee's punches: group by day, classify each
// day's scan sequence, and compute overtime against the resolved shift config.
// Pure function of its inputs — rerunning on unchanged input gives identical
// output.
func BuildReport(records []PunchEvent, employeeID string, resolve ResolveFunc) *EmployeeReport {
	own := utils.Filter(records, func(r PunchEvent) bool { return r.EmployeeID == employeeID })
	if len(own) == 0 {
		return nil
	}

	cfg := resolve(employeeID)
	report := &EmployeeReport{
		EmployeeID:   employeeID,
		EmployeeName: own[0].EmployeeName,
		Config:       cfg,
		ScanCount:    len(own),
	}

	for _, day := range GroupByDay(own) {
		pairs := ClassifyTimes(day.Times)
		ot := CalculateOT(pairs.ClockIn, pairs.ClockOut, cfg)
		report.Days = append(report.Days, DayRecord{
			Date:      day.Date,
			ThaiDate:  utils.ThaiDate(day.Date),
			Pairs:     pairs,
			Scans:     len(day.Times),
			OTMinutes: ot,
			OT:        FormatOT(ot),
		})
		report.TotalOTMinutes += ot
	}

	report.DaysWorked = len(report.Days)
	report.TotalOT = FormatOT(report.TotalOTMinutes)
	return report
}

// EmployeeCard is the per-employee aggregate behind the personal view.
type EmployeeCard struct {
	EmployeeID   string `json:"employeeId"`
	EmployeeName string `json:"employeeName"`
	ScanCount    int    `json:"scanCount"`
	DaysWorked   int    `json:"daysWorked"`
}

// BuildCards aggregates the given punches into one card per employee,
// preserving first-seen order.
func BuildCards(records []PunchEvent) []EmployeeCard {
	var order []string
	index := make(map[string]*EmployeeCard)
	days := make(map[string]map[string]bool)

	for _, r := range records {
		card, ok := index[r.EmployeeID]
		if !ok {
			card = &EmployeeCard{EmployeeID: r.EmployeeID, EmployeeName: r.EmployeeName}
			index[r.EmployeeID] = card
			days[r.EmployeeID] = make(map[string]bool)
			order = append(order, r.EmployeeID)
		}
		card.ScanCount++
		days[r.EmployeeID][r.Date] = true
	}

	cards := make([]EmployeeCard, 0, len(order))
	for _, id := range order {
		card := index[id]
		card.DaysWorked = len(days[id])
		cards = append(cards, *card)
	}
	return cards
}

// TimelineEmployee is one employee's scan chips inside a timeline day.
type TimelineEmployee struct {
	EmployeeID   string   `json:"employeeId"`
	EmployeeName string   `json:"employeeName"`
	Times        []string `json:"times"`
}

// TimelineDay is one date in the timeline view, newest dates first.
type TimelineDay struct {
	Date      string             `json:"date"`
	ThaiDate  string             `json:"thaiDate"`
	DayName   string             `json:"dayName"`
	ScanCount int                `json:"scanCount"`
	Employees []TimelineEmployee `json:"employees"`
}

// BuildTimeline groups the given punches per date (descending) and, inside
// each date, per employee in first-seen order.
func BuildTimeline(records []PunchEvent) []TimelineDay {
	byDate := utils.GroupBy(records, func(r PunchEvent) string { return r.Date })

	dates := make([]string, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))

	var timeline []TimelineDay
	for _, date := range dates {
		recs := byDate[date]
		day := TimelineDay{
			Date:      date,
			ThaiDate:  utils.ThaiDate(date),
			DayName:   utils.ThaiDayName(date),
			ScanCount: len(recs),
		}

		index := make(map[string]int)
		for _, r := range recs {
			i, ok := index[r.EmployeeID]
			if !ok {
				i = len(day.Employees)
				index[r.EmployeeID] = i
				day.Employees = append(day.Employees, TimelineEmployee{
					EmployeeID:   r.EmployeeID,
					EmployeeName: r.EmployeeName,
				})
			}
			day.Employees[i].Times = append(day.Employees[i].Times, r.Time)
		}
		timeline = append(timeline, day)
	}
	return timeline
}
