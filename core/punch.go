package core

import (
	"bufio"
	"io"
	"strings"
)

// PunchEvent is one raw scan from an access-control device, as exported in the
// device's tab-delimited log. Events are immutable once parsed; identity is
// positional and duplicates are kept as-is.
type PunchEvent struct {
	SequenceNo   string `json:"no"`
	DeviceID     string `json:"deviceId"`
	EmployeeID   string `json:"employeeId"`
	EmployeeName string `json:"employeeName"`
	VerifyMethod string `json:"verify"`
	Date         string `json:"date"` // YYYY/M/D
	Time         string `json:"time"` // HH:MM, 24h
}

// Employee is the first-seen directory entry collected while parsing.
type Employee struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ParseResult carries the punch list plus the byproducts the filtering UI
// needs: the distinct employees (first-seen name wins) and the distinct dates
// observed in the log.
type ParseResult struct {
	Records   []PunchEvent
	Employees []Employee
	Dates     []string
	Skipped   int
}

// ParseLog reads a scanner export: one header line, then one row per scan,
// fields separated by runs of tabs. Rows with fewer than 6 fields, or empty
// rows, are skipped silently — device exports routinely contain trailing blanks
// and malformed lines, and the whole file is processed best-effort.
func ParseLog(r io.Reader) (*ParseResult, error) {
	res := &ParseResult{}
	seen := make(map[string]bool)
	dates := make(map[string]bool)

	scanner := bufio.NewScanner(r)
	first := true
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if first {
			first = false
			continue
		}
		if line == "" {
			continue
		}

		parts := splitTabs(line)
		if len(parts) < 6 {
			res.Skipped++
			continue
		}

		// The 6th column holds "YYYY/M/D H:MM" with an internal space.
		datetime := strings.Fields(parts[5])
		if len(datetime) < 2 {
			res.Skipped++
			continue
		}

		rec := PunchEvent{
			SequenceNo:   parts[0],
			DeviceID:     parts[1],
			EmployeeID:   parts[2],
			EmployeeName: parts[3],
			VerifyMethod: parts[4],
			Date:         datetime[0],
			Time:         padTime(datetime[1]),
		}
		res.Records = append(res.Records, rec)

		if !seen[rec.EmployeeID] {
			seen[rec.EmployeeID] = true
			res.Employees = append(res.Employees, Employee{ID: rec.EmployeeID, Name: rec.EmployeeName})
		}
		if !dates[rec.Date] {
			dates[rec.Date] = true
			res.Dates = append(res.Dates, rec.Date)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

// splitTabs splits on runs of tabs, trimming surrounding spaces from each field.
func splitTabs(line string) []string {
	raw := strings.FieldsFunc(line, func(r rune) bool { return r == '\t' })
	fields := raw[:0]
	for _, f := range raw {
		f = strings.TrimSpace(f)
		if f != "" {
			fields = append(fields, f)
		}
	}
	return fields
}

// padTime zero-pads "H:MM" to "HH:MM" so string order equals clock order.
func padTime(t string) string {
	if len(t) == 4 && t[1] == ':' {
		return "0" + t
	}
	return t
}
