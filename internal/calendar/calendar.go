// Package calendar provides the date arithmetic for the weekly scheduling
// grid: ISO day formatting, Monday-based weeks, and the fixed hour rows.
package calendar

import "time"

// ISODate is the layout for calendar dates (yyyy-MM-dd). The zero-padded
// format makes lexical comparison of date strings chronological.
const ISODate = "2006-01-02"

const (
	// DefaultStartHour is the first row of the scheduling grid.
	DefaultStartHour = 9

	// DefaultHourCount is the number of hour rows on the grid.
	DefaultHourCount = 15
)

// FormatISO formats t as a calendar date.
func FormatISO(t time.Time) string {
	return t.Format(ISODate)
}

// ParseISO parses a yyyy-MM-dd calendar date.
func ParseISO(s string) (time.Time, error) {
	return time.Parse(ISODate, s)
}

// ValidISO reports whether s is a well-formed calendar date.
func ValidISO(s string) bool {
	_, err := ParseISO(s)
	return err == nil
}

// StartOfWeek returns the Monday of t's week, truncated to midnight.
func StartOfWeek(t time.Time) time.Time {
	diff := int(t.Weekday() - time.Monday)
	if t.Weekday() == time.Sunday {
		diff = 6
	}
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return day.AddDate(0, 0, -diff)
}

// WeekDays returns the seven days of anchor's week, Monday first.
func WeekDays(anchor time.Time) []time.Time {
	start := StartOfWeek(anchor)
	days := make([]time.Time, 7)
	for i := range days {
		days[i] = start.AddDate(0, 0, i)
	}
	return days
}

// GridHours returns the hour rows of the grid, count hours from start.
func GridHours(start, count int) []int {
	hours := make([]int, count)
	for i := range hours {
		hours[i] = start + i
	}
	return hours
}
