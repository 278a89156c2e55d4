// Package reporting computes sales dashboards over the shoe read models:
// named date ranges, totals per party, and cumulative daily series. Every
// computation here is pure; nothing mutates the read models.
package reporting

import (
	"errors"
	"fmt"
	"time"
)

var ErrUnknownRange = errors.New("unknown report range")

// Range is a named reporting window, resolved against "now" at query time.
type Range string

const (
	RangeLastWeek    Range = "last-week"
	RangeLastMonth   Range = "last-month"
	RangeLast3Months Range = "last-3-months"
	RangeLastYear    Range = "last-year"
	RangeYearToDate  Range = "year-to-date"
	RangeAllTime     Range = "all-time"
)

// Ranges returns the closed set of report ranges.
func Ranges() []Range {
	return []Range{RangeLastWeek, RangeLastMonth, RangeLast3Months, RangeLastYear, RangeYearToDate, RangeAllTime}
}

// ParseRange resolves a range token.
func ParseRange(s string) (Range, error) {
	for _, r := range Ranges() {
		if s == string(r) {
			return r, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownRange, s)
}

// Bounds returns the inclusive [start, end] instants for r relative to now,
// in now's location. Starts are normalized to midnight and ends to
// 23:59:59.999, except year-to-date whose end is the current instant.
func (r Range) Bounds(now time.Time) (time.Time, time.Time, error) {
	switch r {
	case RangeLastWeek:
		// Week runs Monday through Sunday; a Sunday counts as day 7 of
		// the week that started six days earlier.
		daysSinceMonday := int(now.Weekday()) - 1
		if now.Weekday() == time.Sunday {
			daysSinceMonday = 6
		}
		start := now.AddDate(0, 0, -daysSinceMonday)
		end := start.AddDate(0, 0, 6)
		return startOfDay(start), endOfDay(end), nil

	case RangeLastMonth:
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		end := start.AddDate(0, 1, -1)
		return start, endOfDay(end), nil

	case RangeLast3Months:
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -2, 0)
		end := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, 1, -1)
		return start, endOfDay(end), nil

	case RangeLastYear:
		start := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
		end := time.Date(now.Year(), time.December, 31, 0, 0, 0, 0, now.Location())
		return start, endOfDay(end), nil

	case RangeYearToDate:
		start := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
		return start, now, nil

	case RangeAllTime:
		return time.Unix(0, 0).In(now.Location()), endOfDay(now), nil
	}
	return time.Time{}, time.Time{}, fmt.Errorf("%w: %q", ErrUnknownRange, r)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), t.Location())
}
