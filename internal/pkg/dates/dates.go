package dates

import (
	"errors"
	"time"
)

// ErrInvalidDayCount is returned when an absence spans less than one day.
var ErrInvalidDayCount = errors.New("day count must be at least 1")

// Layout is the wire/storage format for calendar dates.
const Layout = "2006-01-02"

// DisplayLayout is the dd/mm/yyyy format used on exported spreadsheets.
const DisplayLayout = "02/01/2006"

// Calculate returns the last day of an absence and the first day the
// employee is expected back. The day count is inclusive, so a one-day
// absence starts and ends on the same date.
func Calculate(start time.Time, days int) (end, ret time.Time, err error) {
	if days < 1 {
		return time.Time{}, time.Time{}, ErrInvalidDayCount
	}
	start = Normalize(start)
	end = start.AddDate(0, 0, days-1)
	ret = end.AddDate(0, 0, 1)
	return end, ret, nil
}

// Normalize truncates a timestamp to a midnight UTC calendar date.
func Normalize(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Parse parses a YYYY-MM-DD date string.
func Parse(s string) (time.Time, error) {
	return time.Parse(Layout, s)
}
