package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

var thaiMonths = []string{
	"ม.ค.", "ก.พ.", "มี.ค.", "เม.ย.", "พ.ค.", "มิ.ย.",
	"ก.ค.", "ส.ค.", "ก.ย.", "ต.ค.", "พ.ย.", "ธ.ค.",
}

var thaiDays = []string{
	"วันอาทิตย์", "วันจันทร์", "วันอังคาร", "วันพุธ",
	"วันพฤหัสบดี", "วันศุกร์", "วันเสาร์",
}

// ThaiDate formats a "YYYY/M/D" date as "D ม.ค. YYYY". Unparseable input is
// returned unchanged.
func ThaiDate(date string) string {
	parts := strings.Split(date, "/")
	if len(parts) != 3 {
		return date
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil || month < 1 || month > 12 {
		return date
	}
	day, err := strconv.Atoi(parts[2])
	if err != nil {
		return date
	}
	return fmt.Sprintf("%d %s %s", day, thaiMonths[month-1], parts[0])
}

// ThaiDayName returns the Thai weekday name for a "YYYY/M/D" date.
func ThaiDayName(date string) string {
	parts := strings.Split(date, "/")
	if len(parts) != 3 {
		return ""
	}
	year, _ := strconv.Atoi(parts[0])
	month, _ := strconv.Atoi(parts[1])
	day, _ := strconv.Atoi(parts[2])
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return thaiDays[int(t.Weekday())]
}
