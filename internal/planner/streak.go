package planner

import (
	"slices"

	"github.com/google/uuid"
	"github.com/limbo/planner/pkg/entity"
)

const RecentWindow = 7

// normalizeHistory drops malformed and duplicate dates and sorts descending.
func normalizeHistory(history []string) []string {
	dates := make([]string, 0, len(history))
	for _, d := range history {
		if ValidDate(d) {
			dates = append(dates, d)
		}
	}
	slices.Sort(dates)
	dates = slices.Compact(dates)
	slices.Reverse(dates)
	return dates
}

// CurrentStreak counts consecutive days ending at the most recent completion,
// which has to be today or yesterday. Anything older resets the streak to 0.
// The run stops at the first missing day.
func CurrentStreak(history []string, today string) int {
	dates := normalizeHistory(history)
	if len(dates) == 0 {
		return 0
	}
	yesterday, err := AddDays(today, -1)
	if err != nil {
		return 0
	}
	if dates[0] != today && dates[0] != yesterday {
		return 0
	}
	streak := 0
	cursor := dates[0]
	for _, d := range dates {
		if d != cursor {
			break
		}
		streak++
		cursor, _ = AddDays(cursor, -1)
	}
	return streak
}

// LongestStreak is the longest run of consecutive days anywhere in history.
func LongestStreak(history []string) int {
	dates := normalizeHistory(history)
	longest, run := 0, 0
	expected := ""
	for _, d := range dates {
		if d == expected {
			run++
		} else {
			run = 1
		}
		longest = max(longest, run)
		expected, _ = AddDays(d, -1)
	}
	return longest
}

func DoneOn(history []string, date string) bool {
	return slices.Contains(history, date)
}

// RecentDays marks the n days ending at today, oldest first. n below 1 gives
// an empty slice.
func RecentDays(history []string, today string, n int) []entity.DayMark {
	n = max(n, 0)
	marks := make([]entity.DayMark, 0, n)
	for i := n - 1; i >= 0; i-- {
		date, err := AddDays(today, -i)
		if err != nil {
			return marks
		}
		marks = append(marks, entity.DayMark{Date: date, Done: DoneOn(history, date)})
	}
	return marks
}

func HabitStats(id uuid.UUID, history []string, today string) entity.HabitStats {
	dates := normalizeHistory(history)
	stats := entity.HabitStats{
		ID:            id,
		TotalChecks:   len(dates),
		CurrentStreak: CurrentStreak(dates, today),
		MaxStreak:     LongestStreak(dates),
		DoneToday:     DoneOn(dates, today),
		LastDays:      RecentDays(dates, today, RecentWindow),
	}
	if len(dates) > 0 {
		stats.LastCheck = dates[0]
	}
	return stats
}
