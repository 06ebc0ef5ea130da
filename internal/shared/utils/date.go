package utils

import "time"

// DateLayout is the wire format of every date field (ISO-8601 calendar date)
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD string into UTC midnight
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// DateOf drops the clock part of t and returns its calendar day, in t's
// location, as UTC midnight
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
