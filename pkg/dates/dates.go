package dates

import (
	"fmt"
	"strings"
	"time"
)

// ISO is the storage and display format for calendar dates.
const ISO = "2006-01-02"

// layouts accepted by Parse, in order of preference. The first two are the
// spreadsheet conventions, the rest are conversational formats.
var layouts = []string{
	ISO,
	"2006/01/02",
	"02.01.2006",
	"02-01-2006",
}

// Parse converts a user- or spreadsheet-supplied date string to a date at
// midnight local time. Empty input returns nil without error.
func Parse(value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	for _, layout := range layouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			d := Midnight(parsed)
			return &d, nil
		}
	}
	return nil, fmt.Errorf("fecha no reconocida: %q", value)
}

// Format renders a date as ISO, or "" for nil.
func Format(date *time.Time) string {
	if date == nil {
		return ""
	}
	return date.Format(ISO)
}

// Midnight truncates a timestamp to its calendar day in local time.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}

// EachDay calls fn for every calendar day from start to end inclusive.
// A start after end yields no calls.
func EachDay(start, end time.Time, fn func(day time.Time)) {
	for day := Midnight(start); !day.After(Midnight(end)); day = day.AddDate(0, 0, 1) {
		fn(day)
	}
}

// YearDays returns every day of the given year as ISO strings, in order.
func YearDays(year int) []string {
	days := make([]string, 0, 366)
	first := time.Date(year, time.January, 1, 0, 0, 0, 0, time.Local)
	last := time.Date(year, time.December, 31, 0, 0, 0, 0, time.Local)
	EachDay(first, last, func(day time.Time) {
		days = append(days, day.Format(ISO))
	})
	return days
}
