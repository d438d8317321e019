package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidDateTime = errors.New("invalid isoformat string")
	ErrTimeRequired    = errors.New("a full format with time is required")
)

// Accepted ISO-8601 shapes. Fractional seconds are accepted after any
// seconds field. Date-only and space-separated forms parse but are rejected
// afterwards for lacking the T separator.
var dateTimeLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02T15",
	time.RFC3339Nano,
	"2006-01-02T15:04Z07:00",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseDateTime parses an ISO-8601 date-time into a naive wall-clock value.
// An explicit offset is accepted, but only its wall clock is kept.
func ParseDateTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)

	var (
		t      time.Time
		parsed bool
	)
	for _, layout := range dateTimeLayouts {
		v, err := time.Parse(layout, s)
		if err == nil {
			t, parsed = v, true
			break
		}
	}
	if !parsed {
		return time.Time{}, fmt.Errorf("%w: '%s'", ErrInvalidDateTime, s)
	}

	if !strings.Contains(s, "T") {
		return time.Time{}, ErrTimeRequired
	}

	return Naive(t), nil
}

// Naive drops the location of t, keeping its wall clock.
func Naive(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}
