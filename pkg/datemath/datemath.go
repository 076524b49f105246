// Package datemath holds the calendar arithmetic shared by the parser's
// date rules and the day-month wire format used by every consumer that
// renders or re-edits a due date.
package datemath

import (
	"fmt"
	"strings"
	"time"
)

// DayMonthFormat is the wire format for resolved due dates, e.g. "05-Jan".
const DayMonthFormat = "02-Jan"

// NotSpecified is rendered when no due date could be resolved.
const NotSpecified = "Not specified"

// StartOfDay returns midnight at the start of t's day, keeping t's location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// NextWeekday returns the next occurrence of target strictly after base's
// weekday position: when target is base's own weekday (or earlier in the
// week), it rolls forward a full week.
func NextWeekday(base time.Time, target time.Weekday) time.Time {
	daysToAdd := int(target) - int(base.Weekday())
	if daysToAdd <= 0 {
		daysToAdd += 7
	}
	return StartOfDay(base.AddDate(0, 0, daysToAdd))
}

// ComingSaturday returns the upcoming Saturday. If base already falls on a
// weekend it returns base + 2 days instead.
func ComingSaturday(base time.Time) time.Time {
	wd := base.Weekday()
	if wd == time.Saturday || wd == time.Sunday {
		return StartOfDay(base.AddDate(0, 0, 2))
	}
	return StartOfDay(base.AddDate(0, 0, int(time.Saturday-wd)))
}

// MidMonth returns the 15th of base's month as a placeholder for vague
// month-level references, pushed forward a few days when the 15th has
// already passed.
func MidMonth(base time.Time) time.Time {
	mid := time.Date(base.Year(), base.Month(), 15, 0, 0, 0, 0, base.Location())
	if !mid.After(StartOfDay(base)) {
		return StartOfDay(base.AddDate(0, 0, 3))
	}
	return mid
}

// FormatDayMonth renders t as DD-MMM. A nil t renders as NotSpecified.
func FormatDayMonth(t *time.Time) string {
	if t == nil {
		return NotSpecified
	}
	return t.Format(DayMonthFormat)
}

// ParseDayMonth parses the DD-MMM form back into a date in the given year.
func ParseDayMonth(s string, year int, loc *time.Location) (time.Time, error) {
	parsed, err := time.Parse(DayMonthFormat, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day-month value %q: %w", s, err)
	}
	return time.Date(year, parsed.Month(), parsed.Day(), 0, 0, 0, 0, loc), nil
}
