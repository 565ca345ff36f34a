package planner

import (
	"slices"
	"strings"

	"github.com/limbo/planner/pkg/entity"
)

const (
	DefaultWeekDays = 7
	MaxWeekDays     = 14
)

// BuildTimeline lays out the occurrences of date in start-time order and
// inserts a gap wherever the next start is past the latest end seen so far.
// No gap follows the last activity. The input slice is not modified.
func BuildTimeline(activities []entity.Activity, date string) []entity.TimelineEntry {
	day := make([]entity.Activity, 0, len(activities))
	for i := range activities {
		if OccursOn(&activities[i], date) {
			day = append(day, activities[i])
		}
	}
	slices.SortStableFunc(day, func(a, b entity.Activity) int {
		return strings.Compare(a.StartTime, b.StartTime)
	})

	entries := make([]entity.TimelineEntry, 0, 2*len(day))
	frontier := StartOfDay
	for i := range day {
		a := day[i]
		if a.StartTime > frontier {
			entries = append(entries, entity.TimelineEntry{
				Kind:  entity.EntryGap,
				Start: frontier,
				End:   a.StartTime,
			})
		}
		entries = append(entries, entity.TimelineEntry{
			Kind:      entity.EntryActivity,
			Start:     a.StartTime,
			End:       a.EndTime,
			Recurring: a.IsRecurring(),
			Activity:  &a,
		})
		// nested activities must not pull the frontier back
		if a.EndTime > frontier {
			frontier = a.EndTime
		}
	}
	return entries
}

// BuildWeek builds consecutive day timelines starting at from.
// days outside [1, MaxWeekDays] falls back to DefaultWeekDays.
func BuildWeek(activities []entity.Activity, from string, days int) ([]entity.DayTimeline, error) {
	if days < 1 || days > MaxWeekDays {
		days = DefaultWeekDays
	}
	if _, err := ParseDate(from); err != nil {
		return nil, err
	}
	week := make([]entity.DayTimeline, 0, days)
	for i := range days {
		date, err := AddDays(from, i)
		if err != nil {
			return nil, err
		}
		week = append(week, entity.DayTimeline{
			Date:    date,
			Entries: BuildTimeline(activities, date),
		})
	}
	return week, nil
}
