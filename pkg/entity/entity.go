package entity

import (
	"time"

	"github.com/google/uuid"
)

type Category string

const (
	CategoryHome    Category = "home"
	CategoryStudy   Category = "study"
	CategoryWork    Category = "work"
	CategoryLeisure Category = "leisure"
	CategoryHealth  Category = "health"
	CategoryOther   Category = "other"
)

type RecurrenceType string

const (
	RecurrenceNone   RecurrenceType = "none"
	RecurrenceDaily  RecurrenceType = "daily"
	RecurrenceCustom RecurrenceType = "custom"
)

// Recurrence is a tagged variant. Days (0 = Sunday .. 6 = Saturday) is only
// meaningful for custom recurrence. Empty Type is read as none.
type Recurrence struct {
	Type RecurrenceType `json:"type"`
	Days []int          `json:"days,omitempty"`
}

func (r Recurrence) Kind() RecurrenceType {
	if r.Type == "" {
		return RecurrenceNone
	}
	return r.Type
}

type Activity struct {
	ID         uuid.UUID  `json:"id"`
	OwnerID    uuid.UUID  `json:"uid"`
	Title      string     `json:"title"`
	StartTime  string     `json:"start_time"`
	EndTime    string     `json:"end_time"`
	Category   Category   `json:"category"`
	Date       string     `json:"date"`
	Recurrence Recurrence `json:"recurrence"`
	CreatedAt  time.Time  `json:"created_at"`
}

func (a *Activity) IsRecurring() bool {
	return a.Recurrence.Kind() != RecurrenceNone
}

type EntryKind string

const (
	EntryActivity EntryKind = "activity"
	EntryGap      EntryKind = "gap"
)

// TimelineEntry is either an activity occurrence or a synthetic free-time gap.
type TimelineEntry struct {
	Kind      EntryKind `json:"kind"`
	Start     string    `json:"start"`
	End       string    `json:"end"`
	Recurring bool      `json:"recurring,omitempty"`
	Activity  *Activity `json:"activity,omitempty"`
}

type DayTimeline struct {
	Date    string          `json:"date"`
	Entries []TimelineEntry `json:"entries"`
}

type GoalType string

const (
	GoalHabit   GoalType = "habit"
	GoalSavings GoalType = "savings"
)

// Goal holds both goal kinds. History is used by habits, the amounts by savings.
type Goal struct {
	ID            uuid.UUID `json:"id"`
	OwnerID       uuid.UUID `json:"uid"`
	Title         string    `json:"title"`
	Type          GoalType  `json:"type"`
	History       []string  `json:"history,omitempty"`
	TargetAmount  float64   `json:"target_amount,omitempty"`
	CurrentAmount float64   `json:"current_amount,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

type DayMark struct {
	Date string `json:"date"`
	Done bool   `json:"done"`
}

type HabitStats struct {
	ID            uuid.UUID `json:"habit_id"`
	TotalChecks   int       `json:"total_checks"`
	CurrentStreak int       `json:"current_streak"`
	MaxStreak     int       `json:"max_streak"`
	DoneToday     bool      `json:"done_today"`
	LastCheck     string    `json:"last_check,omitempty"`
	LastDays      []DayMark `json:"last_days"`
}

type SavingsProgress struct {
	Percentage int     `json:"percentage"`
	Remaining  float64 `json:"remaining"`
}

// GoalView is a goal together with the view derived from it.
type GoalView struct {
	Goal     *Goal            `json:"goal"`
	Stats    *HabitStats      `json:"stats,omitempty"`
	Progress *SavingsProgress `json:"progress,omitempty"`
}

type Task struct {
	ID          uuid.UUID  `json:"id"`
	OwnerID     uuid.UUID  `json:"uid"`
	Title       string     `json:"title"`
	Description string     `json:"desc"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	IsCompleted bool       `json:"is_completed"`
	IsImportant bool       `json:"is_important"`
	CreatedAt   time.Time  `json:"created_at"`
}

// TaskPatch lists the task fields to change. Nil fields keep the stored value.
type TaskPatch struct {
	Title        *string
	Description  *string
	DueDate      *time.Time
	ClearDueDate bool
	IsCompleted  *bool
	IsImportant  *bool
}
