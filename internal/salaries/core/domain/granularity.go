package domain

import (
	"errors"
	"time"
)

var ErrInvalidGranularity = errors.New("invalid granularity")

// LabelLayout is the canonical bucket label format. Labels carry no offset:
// timestamps are naive wall-clock values.
const LabelLayout = "2006-01-02T15:04:05"

type Granularity string

const (
	Hour  Granularity = "hour"
	Day   Granularity = "day"
	Month Granularity = "month"
)

func ParseGranularity(s string) (Granularity, error) {
	g := Granularity(s)
	if !g.Valid() {
		return "", ErrInvalidGranularity
	}
	return g, nil
}

func (g Granularity) Valid() bool {
	switch g {
	case Hour, Day, Month:
		return true
	}
	return false
}

// Floor truncates t to the start of its bucket. The value's own location is
// kept; no timezone conversion happens.
func (g Granularity) Floor(t time.Time) (time.Time, error) {
	y, m, d := t.Date()
	switch g {
	case Hour:
		return time.Date(y, m, d, t.Hour(), 0, 0, 0, t.Location()), nil
	case Day:
		return time.Date(y, m, d, 0, 0, 0, 0, t.Location()), nil
	case Month:
		return time.Date(y, m, 1, 0, 0, 0, 0, t.Location()), nil
	default:
		return time.Time{}, ErrInvalidGranularity
	}
}

// Label renders the label of the bucket containing t.
func (g Granularity) Label(t time.Time) (string, error) {
	start, err := g.Floor(t)
	if err != nil {
		return "", err
	}
	return start.Format(LabelLayout), nil
}

func (g Granularity) FloorAndLabel(t time.Time) (time.Time, string, error) {
	start, err := g.Floor(t)
	if err != nil {
		return time.Time{}, "", err
	}
	return start, start.Format(LabelLayout), nil
}

// Step returns the n-th point of the walk anchored at anchor.
//
// Hours and days are fixed durations. Months are calendar months counted from
// the anchor, with the day clamped to the last day of the target month:
// Jan 31 -> Feb 28 (29 in leap years) -> Mar 31. Counting from the anchor
// instead of the previous point keeps a clamped day from drifting.
func (g Granularity) Step(anchor time.Time, n int) (time.Time, error) {
	switch g {
	case Hour:
		return anchor.Add(time.Duration(n) * time.Hour), nil
	case Day:
		return anchor.Add(time.Duration(n) * 24 * time.Hour), nil
	case Month:
		return addMonthsClamped(anchor, n), nil
	default:
		return time.Time{}, ErrInvalidGranularity
	}
}

func addMonthsClamped(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	target := time.Date(y, m+time.Month(n), 1, 0, 0, 0, 0, t.Location())

	if last := daysIn(target.Year(), target.Month()); d > last {
		d = last
	}

	return time.Date(target.Year(), target.Month(), d,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
