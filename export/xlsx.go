package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"timescan.app/timescan/core"
)

// WriteXLSX writes a two-sheet workbook: the raw punch list (same columns as
// the CSV) and the reconciled per-employee attendance with overtime.
func WriteXLSX(w io.Writer, records []core.PunchEvent, resolve core.ResolveFunc) error {
	f := excelize.NewFile()
	defer f.Close()

	const recordsSheet = "Records"
	f.SetSheetName("Sheet1", recordsSheet)

	if err := setRow(f, recordsSheet, 1, toAny(csvHeader)); err != nil {
		return err
	}
	for i, r := range records {
		row := []any{r.SequenceNo, r.DeviceID, r.EmployeeID, r.EmployeeName, r.VerifyMethod, r.Date, r.Time}
		if err := setRow(f, recordsSheet, i+2, row); err != nil {
			return err
		}
	}

	const attendanceSheet = "Attendance"
	if _, err := f.NewSheet(attendanceSheet); err != nil {
		return fmt.Errorf("failed to add sheet: %w", err)
	}
	header := []any{"รหัสพนักงาน", "ชื่อพนักงาน", "วันที่", "เข้างาน", "พักออก", "พักเข้า", "ออกงาน", "OT"}
	if err := setRow(f, attendanceSheet, 1, header); err != nil {
		return err
	}

	rowNo := 2
	for _, card := range core.BuildCards(records) {
		report := core.BuildReport(records, card.EmployeeID, resolve)
		if report == nil {
			continue
		}
		for _, day := range report.Days {
			row := []any{
				report.EmployeeID, report.EmployeeName, day.ThaiDate,
				orDash(day.Pairs.ClockIn), orDash(day.Pairs.BreakOut),
				orDash(day.Pairs.BreakIn), orDash(day.Pairs.ClockOut),
				day.OT,
			}
			if err := setRow(f, attendanceSheet, rowNo, row); err != nil {
				return err
			}
			rowNo++
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("failed to set row %d on %s: %w", row, sheet, err)
	}
	return nil
}

func toAny(fields []string) []any {
	out := make([]any, len(fields))
	for i, f := range fields {
		out[i] = f
	}
	return out
}

func orDash(t string) string {
	if t == "" {
		return "-"
	}
	return t
}
