// Command report runs one reconciliation pass over a scanner export and
// prints the per-employee overtime summary, using the same settings database
// as the server.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"timescan.app/timescan/core"
	"timescan.app/timescan/export"
	"timescan.app/timescan/shift"
	"timescan.app/timescan/store"
)

func main() {
	logPath := flag.String("log", "", "path to the scanner export (.txt)")
	dbPath := flag.String("db", "timescan.db", "path to the settings database")
	csvPath := flag.String("csv", "", "also write the punch list as CSV to this path")
	flag.Parse()

	if *logPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	settings, err := store.Open(*dbPath)
	if err != nil {
		log.Fatal(err)
	}
	shifts, err := shift.NewStore(settings)
	if err != nil {
		log.Fatal(err)
	}

	f, err := os.Open(*logPath)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	result, err := core.ParseLog(f)
	if err != nil {
		log.Fatalf("failed to parse %s: %v", *logPath, err)
	}

	fmt.Printf("%d records, %d employees, %d days (%d rows skipped)\n\n",
		len(result.Records), len(result.Employees), len(result.Dates), result.Skipped)

	for _, emp := range result.Employees {
		report := core.BuildReport(result.Records, emp.ID, shifts.Resolve)
		if report == nil {
			continue
		}

		fmt.Printf("%s (%s) — %d scans, %d days\n", report.EmployeeName, report.EmployeeID, report.ScanCount, report.DaysWorked)
		for _, day := range report.Days {
			fmt.Printf("  %-14s in %-5s breakOut %-5s breakIn %-5s out %-5s  OT %s\n",
				day.Date,
				orDash(day.Pairs.ClockIn), orDash(day.Pairs.BreakOut),
				orDash(day.Pairs.BreakIn), orDash(day.Pairs.ClockOut),
				day.OT)
		}
		fmt.Printf("  total OT: %s\n\n", report.TotalOT)
	}

	if *csvPath != "" {
		out, err := os.Create(*csvPath)
		if err != nil {
			log.Fatal(err)
		}
		defer out.Close()
		if err := export.WriteCSV(out, result.Records); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("wrote %s\n", *csvPath)
	}
}

func orDash(t string) string {
	if t == "" {
		return "-"
	}
	return t
}
