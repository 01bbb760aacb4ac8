package calendar

import (
	"fmt"
	"time"
)

// DateLayout is the wire format for calendar dates. All calendar math in this
// package operates on dates in a single organizational timezone; instants are
// never compared across zones, so a date can never shift across midnight.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD string as midnight in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// IsWeekend reports whether t falls on a Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// Today returns today's date string in loc.
func Today(loc *time.Location) string {
	return time.Now().In(loc).Format(DateLayout)
}

// WorkingDays returns the weekday (Mon-Fri) dates in [startDate, endDate],
// inclusive, ascending, formatted as YYYY-MM-DD. When employeeStartDate is
// given and falls after startDate the range is bounded below by it, so days
// before an employee joined never count as working days for that employee.
// An empty or inverted effective range yields an empty slice.
func WorkingDays(loc *time.Location, startDate, endDate string, employeeStartDate *string) ([]string, error) {
	start, err := ParseDate(startDate, loc)
	if err != nil {
		return nil, err
	}
	end, err := ParseDate(endDate, loc)
	if err != nil {
		return nil, err
	}

	if employeeStartDate != nil && *employeeStartDate != "" {
		empStart, err := ParseDate(*employeeStartDate, loc)
		if err != nil {
			return nil, err
		}
		if empStart.After(start) {
			start = empStart
		}
	}

	days := []string{}
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if IsWeekend(d) {
			continue
		}
		days = append(days, d.Format(DateLayout))
	}
	return days, nil
}

// CalendarDays counts the calendar days in [startDate, endDate] inclusive,
// zero when the range is inverted.
func CalendarDays(loc *time.Location, startDate, endDate string) (int, error) {
	start, err := ParseDate(startDate, loc)
	if err != nil {
		return 0, err
	}
	end, err := ParseDate(endDate, loc)
	if err != nil {
		return 0, err
	}
	if start.After(end) {
		return 0, nil
	}
	count := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		count++
	}
	return count, nil
}
