package planner

import (
	"slices"

	"github.com/limbo/planner/pkg/entity"
)

// OccursOn reports whether the activity has an occurrence on date.
// Recurring activities never project before their anchor date.
func OccursOn(a *entity.Activity, date string) bool {
	kind := a.Recurrence.Kind()
	if kind == entity.RecurrenceNone {
		return date == a.Date
	}
	if date < a.Date {
		return false
	}
	switch kind {
	case entity.RecurrenceDaily:
		return true
	case entity.RecurrenceCustom:
		wd, ok := Weekday(date)
		if !ok {
			return false
		}
		return slices.Contains(a.Recurrence.Days, wd)
	}
	return false
}
