package interval

import (
	"strings"

	"cloud.google.com/go/civil"
)

// MustDate parses a YYYY-MM-DD date and panics on failure.
// This exists purely for developer laziness in tests and fixtures.
func MustDate(s string) civil.Date {
	d, err := civil.ParseDate(strings.TrimSpace(s))
	if err != nil {
		panic(err)
	}
	return d
}

// ParseDateTime parses a date-time separated by either a space or a T:
// "2006-01-02 15:04:05" and "2006-01-02T15:04:05" are both accepted.
func ParseDateTime(s string) (civil.DateTime, error) {
	return civil.ParseDateTime(strings.Replace(strings.TrimSpace(s), " ", "T", 1))
}

// MustDateTime is ParseDateTime that panics on failure.
func MustDateTime(s string) civil.DateTime {
	dt, err := ParseDateTime(s)
	if err != nil {
		panic(err)
	}
	return dt
}

// MustTime parses a 15:04:05 time of day and panics on failure.
func MustTime(s string) civil.Time {
	t, err := civil.ParseTime(strings.TrimSpace(s))
	if err != nil {
		panic(err)
	}
	return t
}
