package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func punch(employeeID, date, timeStr string) PunchEvent {
	return PunchEvent{
		EmployeeID:   employeeID,
		EmployeeName: "emp " + employeeID,
		Date:         date,
		Time:         timeStr,
	}
}

func TestGroupByDay(t *testing.T) {
	records := []PunchEvent{
		punch("0001", "2025/3/1", "19:10"),
		punch("0001", "2025/3/1", "09:00"),
		punch("0002", "2025/3/1", "09:30"),
		punch("0001", "2025/3/2", "08:55"),
	}

	days := GroupByDay(records)
	assert.Len(t, days, 3)

	assert.Equal(t, "0001", days[0].EmployeeID)
	assert.Equal(t, "2025/3/1", days[0].Date)
	assert.Equal(t, []string{"09:00", "19:10"}, days[0].Times, "times must be sorted ascending")

	assert.Equal(t, "2025/3/2", days[1].Date)
	assert.Equal(t, []string{"08:55"}, days[1].Times)

	assert.Equal(t, "0002", days[2].EmployeeID)
}

func TestGroupByDaySortsWithinEachDay(t *testing.T) {
	records := []PunchEvent{
		punch("0001", "2025/3/1", "13:00"),
		punch("0001", "2025/3/1", "09:00"),
		punch("0001", "2025/3/1", "12:00"),
		punch("0001", "2025/3/1", "19:10"),
	}

	days := GroupByDay(records)
	assert.Len(t, days, 1)
	for i := 1; i < len(days[0].Times); i++ {
		assert.LessOrEqual(t, days[0].Times[i-1], days[0].Times[i])
	}
}

func TestGroupByDayDoesNotMergeAcrossMidnight(t *testing.T) {
	// A night shift leaves its post-midnight punches on the next calendar
	// date; the grouper must not join them back.
	records := []PunchEvent{
		punch("0001", "2025/3/1", "16:00"),
		punch("0001", "2025/3/2", "02:15"),
	}

	days := GroupByDay(records)
	assert.Len(t, days, 2)
	assert.Equal(t, []string{"16:00"}, days[0].Times)
	assert.Equal(t, []string{"02:15"}, days[1].Times)
}

func TestGroupByDayIsDeterministic(t *testing.T) {
	records := []PunchEvent{
		punch("0002", "2025/3/1", "09:30"),
		punch("0001", "2025/3/2", "08:55"),
		punch("0001", "2025/3/1", "09:00"),
	}

	first := GroupByDay(records)
	second := GroupByDay(records)
	assert.Equal(t, first, second)
}
