package planner_test

import (
	"testing"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/planner/internal/error_values"
	"github.com/limbo/planner/internal/planner"
	"github.com/limbo/planner/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2026-10-15 is a Thursday.
const (
	today     = "2026-10-15"
	yesterday = "2026-10-14"
)

func activity(start, end, date string, rec entity.Recurrence) entity.Activity {
	return entity.Activity{
		ID:         uuid.New(),
		Title:      "act " + start,
		StartTime:  start,
		EndTime:    end,
		Category:   entity.CategoryWork,
		Date:       date,
		Recurrence: rec,
	}
}

func TestDates(t *testing.T) {
	t.Run("valid date", func(t *testing.T) {
		assert.True(t, planner.ValidDate("2026-02-28"))
		assert.False(t, planner.ValidDate("2026-02-30"))
		assert.False(t, planner.ValidDate("2026-2-28"))
		assert.False(t, planner.ValidDate(""))
	})
	t.Run("valid clock", func(t *testing.T) {
		assert.True(t, planner.ValidClock("00:00"))
		assert.True(t, planner.ValidClock("23:59"))
		assert.False(t, planner.ValidClock("24:00"))
		assert.False(t, planner.ValidClock("9:00"))
		assert.False(t, planner.ValidClock("09:60"))
	})
	t.Run("weekday", func(t *testing.T) {
		wd, ok := planner.Weekday(today)
		assert.True(t, ok)
		assert.Equal(t, 4, wd)
		wd, ok = planner.Weekday("2026-10-18")
		assert.True(t, ok)
		assert.Equal(t, 0, wd)
		_, ok = planner.Weekday("nope")
		assert.False(t, ok)
	})
	t.Run("add days", func(t *testing.T) {
		d, err := planner.AddDays("2026-03-01", -1)
		require.NoError(t, err)
		assert.Equal(t, "2026-02-28", d)
		d, err = planner.AddDays("2026-12-31", 1)
		require.NoError(t, err)
		assert.Equal(t, "2027-01-01", d)
		_, err = planner.AddDays("31/12/2026", 1)
		assert.ErrorIs(t, err, errorvalues.ErrInvalidDate)
	})
}

func TestOccursOn(t *testing.T) {
	testCases := []struct {
		Desc     string
		Activity entity.Activity
		Date     string
		Expected bool
	}{
		{"none on anchor", activity("09:00", "10:00", today, entity.Recurrence{Type: entity.RecurrenceNone}), today, true},
		{"none other day", activity("09:00", "10:00", today, entity.Recurrence{Type: entity.RecurrenceNone}), yesterday, false},
		{"absent recurrence is none", activity("09:00", "10:00", today, entity.Recurrence{}), today, true},
		{"absent recurrence other day", activity("09:00", "10:00", today, entity.Recurrence{}), "2026-10-16", false},
		{"daily on anchor", activity("09:00", "10:00", today, entity.Recurrence{Type: entity.RecurrenceDaily}), today, true},
		{"daily after anchor", activity("09:00", "10:00", yesterday, entity.Recurrence{Type: entity.RecurrenceDaily}), "2027-05-01", true},
		{"daily before anchor", activity("09:00", "10:00", today, entity.Recurrence{Type: entity.RecurrenceDaily}), yesterday, false},
		{"custom matching weekday", activity("09:00", "10:00", "2026-10-01", entity.Recurrence{Type: entity.RecurrenceCustom, Days: []int{1, 4}}), today, true},
		{"custom other weekday", activity("09:00", "10:00", "2026-10-01", entity.Recurrence{Type: entity.RecurrenceCustom, Days: []int{1, 3}}), today, false},
		{"custom before anchor", activity("09:00", "10:00", "2026-10-20", entity.Recurrence{Type: entity.RecurrenceCustom, Days: []int{4}}), today, false},
		{"custom sunday", activity("09:00", "10:00", today, entity.Recurrence{Type: entity.RecurrenceCustom, Days: []int{0}}), "2026-10-18", true},
		{"unknown kind", activity("09:00", "10:00", yesterday, entity.Recurrence{Type: "weekly"}), today, false},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			assert.Equal(t, tc.Expected, planner.OccursOn(&tc.Activity, tc.Date))
		})
	}
}

func TestOccursOnCustomCoversWholeWeek(t *testing.T) {
	a := activity("07:00", "07:30", "2026-10-11", entity.Recurrence{Type: entity.RecurrenceCustom, Days: []int{2, 5}})
	for i := range 14 {
		date, err := planner.AddDays("2026-10-11", i)
		require.NoError(t, err)
		wd, _ := planner.Weekday(date)
		assert.Equal(t, wd == 2 || wd == 5, planner.OccursOn(&a, date), date)
	}
}

func TestBuildTimeline(t *testing.T) {
	t.Run("example day", func(t *testing.T) {
		activities := []entity.Activity{
			activity("09:00", "10:00", today, entity.Recurrence{Type: entity.RecurrenceNone}),
			activity("11:00", "12:00", yesterday, entity.Recurrence{Type: entity.RecurrenceDaily}),
		}
		entries := planner.BuildTimeline(activities, today)
		require.Len(t, entries, 4)
		assert.Equal(t, entity.TimelineEntry{Kind: entity.EntryGap, Start: "00:00", End: "09:00"}, entries[0])
		assert.Equal(t, entity.EntryActivity, entries[1].Kind)
		assert.Equal(t, activities[0].ID, entries[1].Activity.ID)
		assert.False(t, entries[1].Recurring)
		assert.Equal(t, entity.TimelineEntry{Kind: entity.EntryGap, Start: "10:00", End: "11:00"}, entries[2])
		assert.Equal(t, activities[1].ID, entries[3].Activity.ID)
		assert.True(t, entries[3].Recurring)
	})
	t.Run("empty", func(t *testing.T) {
		entries := planner.BuildTimeline(nil, today)
		assert.NotNil(t, entries)
		assert.Empty(t, entries)
		entries = planner.BuildTimeline([]entity.Activity{
			activity("09:00", "10:00", yesterday, entity.Recurrence{}),
		}, today)
		assert.Empty(t, entries)
	})
	t.Run("starts at midnight", func(t *testing.T) {
		entries := planner.BuildTimeline([]entity.Activity{
			activity("00:00", "01:00", today, entity.Recurrence{}),
		}, today)
		require.Len(t, entries, 1)
		assert.Equal(t, entity.EntryActivity, entries[0].Kind)
	})
	t.Run("nested activity keeps frontier", func(t *testing.T) {
		entries := planner.BuildTimeline([]entity.Activity{
			activity("08:00", "12:00", today, entity.Recurrence{}),
			activity("09:00", "10:00", today, entity.Recurrence{}),
			activity("11:30", "13:00", today, entity.Recurrence{}),
			activity("14:00", "15:00", today, entity.Recurrence{}),
		}, today)
		kinds := make([]entity.EntryKind, 0, len(entries))
		for _, e := range entries {
			kinds = append(kinds, e.Kind)
		}
		assert.Equal(t, []entity.EntryKind{
			entity.EntryGap, entity.EntryActivity, entity.EntryActivity, entity.EntryActivity,
			entity.EntryGap, entity.EntryActivity,
		}, kinds)
		assert.Equal(t, "13:00", entries[4].Start)
		assert.Equal(t, "14:00", entries[4].End)
	})
	t.Run("adjacent activities have no gap", func(t *testing.T) {
		entries := planner.BuildTimeline([]entity.Activity{
			activity("10:00", "11:00", today, entity.Recurrence{}),
			activity("09:00", "10:00", today, entity.Recurrence{}),
		}, today)
		require.Len(t, entries, 3)
		assert.Equal(t, "09:00", entries[1].Start)
		assert.Equal(t, "10:00", entries[2].Start)
	})
	t.Run("ties keep snapshot order", func(t *testing.T) {
		first := activity("09:00", "09:30", today, entity.Recurrence{})
		second := activity("09:00", "10:00", today, entity.Recurrence{})
		entries := planner.BuildTimeline([]entity.Activity{first, second}, today)
		require.Len(t, entries, 3)
		assert.Equal(t, first.ID, entries[1].Activity.ID)
		assert.Equal(t, second.ID, entries[2].Activity.ID)
	})
	t.Run("sorted and idempotent", func(t *testing.T) {
		activities := []entity.Activity{
			activity("18:00", "19:00", today, entity.Recurrence{}),
			activity("06:00", "07:00", "2026-10-01", entity.Recurrence{Type: entity.RecurrenceDaily}),
			activity("12:00", "12:30", "2026-10-01", entity.Recurrence{Type: entity.RecurrenceCustom, Days: []int{4}}),
		}
		snapshot := append([]entity.Activity(nil), activities...)
		first := planner.BuildTimeline(activities, today)
		second := planner.BuildTimeline(activities, today)
		assert.Equal(t, first, second)
		assert.Equal(t, snapshot, activities)
		for i := 1; i < len(first); i++ {
			assert.LessOrEqual(t, first[i-1].Start, first[i].Start)
		}
	})
}

func TestBuildWeek(t *testing.T) {
	activities := []entity.Activity{
		activity("09:00", "10:00", today, entity.Recurrence{Type: entity.RecurrenceDaily}),
		activity("12:00", "13:00", today, entity.Recurrence{Type: entity.RecurrenceCustom, Days: []int{6}}),
	}
	t.Run("default window", func(t *testing.T) {
		week, err := planner.BuildWeek(activities, today, 0)
		require.NoError(t, err)
		require.Len(t, week, planner.DefaultWeekDays)
		assert.Equal(t, today, week[0].Date)
		assert.Equal(t, "2026-10-21", week[6].Date)
		// saturday 2026-10-17 carries both
		assert.Len(t, week[2].Entries, 4)
		assert.Len(t, week[1].Entries, 2)
	})
	t.Run("invalid from", func(t *testing.T) {
		_, err := planner.BuildWeek(activities, "tomorrow", 3)
		assert.ErrorIs(t, err, errorvalues.ErrInvalidDate)
	})
}

func TestCurrentStreak(t *testing.T) {
	testCases := []struct {
		Desc     string
		History  []string
		Expected int
	}{
		{"empty", nil, 0},
		{"today only", []string{today}, 1},
		{"three days", []string{"2026-10-13", today, yesterday}, 3},
		{"ends yesterday with gap", []string{yesterday, "2026-10-12"}, 1},
		{"stale", []string{"2026-10-13", "2026-10-12"}, 0},
		{"duplicates", []string{today, today, yesterday}, 2},
		{"broken middle", []string{today, yesterday, "2026-10-12", "2026-10-11"}, 2},
		{"future only", []string{"2026-10-16"}, 0},
		{"malformed ignored", []string{"garbage", today}, 1},
		{"across month", []string{"2026-10-01", "2026-09-30", "2026-09-29"}, 0},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			assert.Equal(t, tc.Expected, planner.CurrentStreak(tc.History, today))
		})
	}
	t.Run("across month boundary", func(t *testing.T) {
		assert.Equal(t, 3, planner.CurrentStreak([]string{"2026-09-30", "2026-10-01", "2026-09-29"}, "2026-10-01"))
	})
}

func TestLongestStreak(t *testing.T) {
	assert.Equal(t, 0, planner.LongestStreak(nil))
	assert.Equal(t, 3, planner.LongestStreak([]string{"2026-01-01", "2026-01-02", "2026-01-03", today}))
	assert.Equal(t, 2, planner.LongestStreak([]string{today, yesterday, yesterday}))
}

func TestHabitStats(t *testing.T) {
	id := uuid.New()
	stats := planner.HabitStats(id, []string{yesterday, "2026-10-13", "2026-10-09", yesterday}, today)
	assert.Equal(t, id, stats.ID)
	assert.Equal(t, 3, stats.TotalChecks)
	assert.Equal(t, 2, stats.CurrentStreak)
	assert.Equal(t, 2, stats.MaxStreak)
	assert.False(t, stats.DoneToday)
	assert.Equal(t, yesterday, stats.LastCheck)
	require.Len(t, stats.LastDays, planner.RecentWindow)
	assert.Equal(t, entity.DayMark{Date: "2026-10-09", Done: true}, stats.LastDays[0])
	assert.Equal(t, entity.DayMark{Date: today, Done: false}, stats.LastDays[6])
	assert.True(t, stats.LastDays[5].Done)
}

func TestRecentDays(t *testing.T) {
	history := []string{yesterday, today}
	testCases := []struct {
		Name     string
		N        int
		Expected []entity.DayMark
	}{
		{Name: "two days", N: 2, Expected: []entity.DayMark{{Date: yesterday, Done: true}, {Date: today, Done: true}}},
		{Name: "zero", N: 0, Expected: []entity.DayMark{}},
		{Name: "negative", N: -3, Expected: []entity.DayMark{}},
	}
	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				assert.Equal(t, tc.Expected, planner.RecentDays(history, today, tc.N))
			})
		})
	}
}

func TestProgress(t *testing.T) {
	testCases := []struct {
		Desc     string
		Current  float64
		Target   float64
		Expected entity.SavingsProgress
	}{
		{"half", 50, 100, entity.SavingsProgress{Percentage: 50, Remaining: 50}},
		{"exceeded", 150, 100, entity.SavingsProgress{Percentage: 100, Remaining: -50}},
		{"zero target", 0, 0, entity.SavingsProgress{Percentage: 0, Remaining: 0}},
		{"zero target with savings", 10, 0, entity.SavingsProgress{Percentage: 0, Remaining: -10}},
		{"rounds", 1, 3, entity.SavingsProgress{Percentage: 33, Remaining: 2}},
		{"rounds half up", 1, 8, entity.SavingsProgress{Percentage: 13, Remaining: 7}},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			assert.Equal(t, tc.Expected, planner.Progress(tc.Current, tc.Target))
		})
	}
}

func TestDayView(t *testing.T) {
	view := planner.NewDayView(today)
	assert.Empty(t, view.Timeline().Entries)

	snapshot := []entity.Activity{activity("09:00", "10:00", today, entity.Recurrence{})}
	view.SetSnapshot(snapshot)
	tl := view.Timeline()
	assert.Equal(t, today, tl.Date)
	assert.Len(t, tl.Entries, 2)

	// mutating the caller's slice doesn't leak into the view
	snapshot[0].StartTime = "11:00"
	assert.Equal(t, "09:00", view.Timeline().Entries[1].Start)

	require.NoError(t, view.Select(yesterday))
	assert.Empty(t, view.Timeline().Entries)
	assert.ErrorIs(t, view.Select("15-10-2026"), errorvalues.ErrInvalidDate)
	assert.Equal(t, yesterday, view.Date())

	view.SetSnapshot([]entity.Activity{activity("20:00", "21:00", yesterday, entity.Recurrence{})})
	assert.Equal(t, "20:00", view.Timeline().Entries[1].Start)
}
