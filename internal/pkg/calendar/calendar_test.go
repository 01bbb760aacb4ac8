package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLoc = time.UTC

func TestWorkingDays_FullWeek(t *testing.T) {
	// 2024-01-01 is a Monday
	days, err := WorkingDays(testLoc, "2024-01-01", "2024-01-07", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04", "2024-01-05",
	}, days)
}

func TestWorkingDays_AscendingNoDuplicates(t *testing.T) {
	days, err := WorkingDays(testLoc, "2024-01-01", "2024-02-29", nil)
	require.NoError(t, err)

	seen := make(map[string]bool)
	for i, d := range days {
		assert.False(t, seen[d], "duplicate date %s", d)
		seen[d] = true
		if i > 0 {
			assert.Less(t, days[i-1], d, "dates must be ascending")
		}
		parsed, err := ParseDate(d, testLoc)
		require.NoError(t, err)
		assert.False(t, IsWeekend(parsed), "%s is a weekend", d)
	}
}

func TestWorkingDays_WeekendOnlyRange(t *testing.T) {
	// 2024-01-06 (Sat) to 2024-01-07 (Sun)
	days, err := WorkingDays(testLoc, "2024-01-06", "2024-01-07", nil)
	require.NoError(t, err)
	assert.Empty(t, days)
}

func TestWorkingDays_SingleDay(t *testing.T) {
	days, err := WorkingDays(testLoc, "2024-01-03", "2024-01-03", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-01-03"}, days)
}

func TestWorkingDays_InvertedRange(t *testing.T) {
	days, err := WorkingDays(testLoc, "2024-01-10", "2024-01-01", nil)
	require.NoError(t, err)
	assert.Empty(t, days)
}

func TestWorkingDays_EmployeeStartBounds(t *testing.T) {
	empStart := "2024-01-03"
	days, err := WorkingDays(testLoc, "2024-01-01", "2024-01-05", &empStart)
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-01-03", "2024-01-04", "2024-01-05"}, days)
}

func TestWorkingDays_EmployeeStartBeforeRangeIgnored(t *testing.T) {
	empStart := "2023-06-01"
	days, err := WorkingDays(testLoc, "2024-01-01", "2024-01-05", &empStart)
	require.NoError(t, err)
	assert.Len(t, days, 5)
}

func TestWorkingDays_EmployeeStartAfterRange(t *testing.T) {
	empStart := "2024-06-01"
	days, err := WorkingDays(testLoc, "2024-01-01", "2024-01-05", &empStart)
	require.NoError(t, err)
	assert.Empty(t, days)
}

func TestWorkingDays_InvalidDate(t *testing.T) {
	_, err := WorkingDays(testLoc, "01-01-2024", "2024-01-05", nil)
	assert.Error(t, err)
}

func TestCalendarDays(t *testing.T) {
	count, err := CalendarDays(testLoc, "2024-01-01", "2024-01-31")
	require.NoError(t, err)
	assert.Equal(t, 31, count)

	count, err = CalendarDays(testLoc, "2024-01-05", "2024-01-05")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	count, err = CalendarDays(testLoc, "2024-01-05", "2024-01-01")
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestIsWeekend(t *testing.T) {
	sat, _ := ParseDate("2024-01-06", testLoc)
	sun, _ := ParseDate("2024-01-07", testLoc)
	mon, _ := ParseDate("2024-01-08", testLoc)
	assert.True(t, IsWeekend(sat))
	assert.True(t, IsWeekend(sun))
	assert.False(t, IsWeekend(mon))
}
