// Package export serializes the current punch list for download. The CSV
// shape is fixed by the downstream payroll tooling: Thai column headers, every
// field quoted, UTF-8 with BOM, one row per punch in list order.
package export

import (
	"fmt"
	"io"
	"strings"

	"timescan.app/timescan/core"
)

const bom = "\uFEFF"

var csvHeader = []string{"ลำดับ", "รหัสเครื่อง", "รหัสพนักงาน", "ชื่อพนักงาน", "Verify", "วันที่", "เวลา"}

// WriteCSV writes records as CSV. Field order must match PunchEvent field
// order exactly — consumers index by position, not by header.
func WriteCSV(w io.Writer, records []core.PunchEvent) error {
	var b strings.Builder
	b.WriteString(bom)
	writeRow(&b, csvHeader, false)

	for _, r := range records {
		writeRow(&b, []string{
			r.SequenceNo, r.DeviceID, r.EmployeeID,
			r.EmployeeName, r.VerifyMethod, r.Date, r.Time,
		}, true)
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("failed to write csv: %w", err)
	}
	return nil
}

func writeRow(b *strings.Builder, fields []string, quote bool) {
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		if quote {
			b.WriteByte('"')
			b.WriteString(strings.ReplaceAll(f, `"`, `""`))
			b.WriteByte('"')
		} else {
			b.WriteString(f)
		}
	}
	b.WriteByte('\n')
}
