// Package planner holds the pure view computations: recurrence matching,
// timeline layout with free-time gaps, habit streaks and savings progress.
// Functions here never block, do I/O or keep state between calls.
package planner

import (
	"fmt"
	"regexp"
	"time"

	errorvalues "github.com/limbo/planner/internal/error_values"
)

const (
	DateLayout = "2006-01-02"
	// StartOfDay is the initial gap frontier.
	StartOfDay = "00:00"
)

// Dates and clock times travel as fixed-width zero-padded strings, so plain
// string comparison orders them chronologically. Everything entering the
// planner from outside must pass ValidDate / ValidClock first.
var (
	dateRe  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	clockRe = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
)

func ValidDate(s string) bool {
	if !dateRe.MatchString(s) {
		return false
	}
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

func ValidClock(s string) bool {
	return clockRe.MatchString(s)
}

// ParseDate anchors a calendar date at local midnight.
func ParseDate(s string) (time.Time, error) {
	if !dateRe.MatchString(s) {
		return time.Time{}, fmt.Errorf("%w: %q", errorvalues.ErrInvalidDate, s)
	}
	t, err := time.ParseInLocation(DateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", errorvalues.ErrInvalidDate, s)
	}
	return t, nil
}

// Weekday returns 0 (Sunday) .. 6 (Saturday) for a calendar date.
func Weekday(date string) (int, bool) {
	t, err := ParseDate(date)
	if err != nil {
		return 0, false
	}
	return int(t.Weekday()), true
}

// AddDays shifts a calendar date by n days. Arithmetic runs in UTC so DST
// transitions can't skip or repeat a day.
func AddDays(date string, n int) (string, error) {
	if !dateRe.MatchString(date) {
		return "", fmt.Errorf("%w: %q", errorvalues.ErrInvalidDate, date)
	}
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return "", fmt.Errorf("%w: %q", errorvalues.ErrInvalidDate, date)
	}
	return t.AddDate(0, 0, n).Format(DateLayout), nil
}

// DateOf formats the calendar date of t in t's own location.
func DateOf(t time.Time) string {
	return t.Format(DateLayout)
}
