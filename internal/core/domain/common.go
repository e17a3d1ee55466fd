package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Amounts are persisted as plain JSON numbers, matching documents written by older clients.
	decimal.MarshalJSONWithoutQuotes = true
}

// TimestampLayout is the ISO-8601 form used for every persisted date: UTC with millisecond precision.
// Fixed width keeps lexical order equal to chronological order.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// CalendarDateLayout is the layout of a calendar date without time (e.g. from a date picker).
const CalendarDateLayout = "2006-01-02"

// FormatTimestamp renders t in TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// ParseTimestamp parses a persisted date. RFC3339 variants are accepted as well.
func ParseTimestamp(s string) (time.Time, error) {
	if t, err := time.Parse(TimestampLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q: %w", s, err)
	}
	return t, nil
}

// ComposeTimestamp moves original onto a new calendar day while keeping its time-of-day
// as seen in loc. calendarDate uses CalendarDateLayout.
func ComposeTimestamp(original string, calendarDate string, loc *time.Location) (string, error) {
	if loc == nil {
		loc = time.Local
	}
	day, err := time.ParseInLocation(CalendarDateLayout, calendarDate, loc)
	if err != nil {
		return "", fmt.Errorf("invalid calendar date %q: %w", calendarDate, err)
	}
	orig, err := ParseTimestamp(original)
	if err != nil {
		return "", err
	}
	orig = orig.In(loc)
	composed := time.Date(day.Year(), day.Month(), day.Day(),
		orig.Hour(), orig.Minute(), orig.Second(), orig.Nanosecond(), loc)
	return FormatTimestamp(composed), nil
}
