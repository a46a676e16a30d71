package timezone

import (
	"fmt"
	"time"
)

const hoursPerDay = 24

// DateOf returns the calendar date of t in the application timezone, as midnight UTC.
// Dates compare and persist as DATE columns independent of the server zone.
func DateOf(t time.Time) time.Time {
	local := ToAppTime(t)

	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}

// Today returns the current calendar date in the application timezone.
func Today() time.Time {
	return DateOf(Now())
}

// Date normalizes a DATE value read from the store (or built in tests) to midnight UTC.
func Date(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD value.
func ParseDate(value string) (time.Time, error) {
	date, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", value, err)
	}

	return date, nil
}

// DaysBetween returns the number of whole days from one date to another. Negative when to is before from.
func DaysBetween(from, to time.Time) int {
	return int(Date(to).Sub(Date(from)).Hours() / hoursPerDay)
}

// FormatDate renders a date as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	return Date(t).Format(time.DateOnly)
}
