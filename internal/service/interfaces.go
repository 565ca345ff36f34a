package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/planner/pkg/entity"
)

type CreateActivityRequest struct {
	Title     string                `validate:"required,notblank,max=200"`
	StartTime string                `validate:"required,hhmm"`
	EndTime   string                `validate:"required,hhmm"`
	Category  entity.Category       `validate:"omitempty,oneof=home study work leisure health other"`
	Date      string                `validate:"required,isodate"`
	Type      entity.RecurrenceType `validate:"omitempty,oneof=none daily custom"`
	Days      []int                 `validate:"omitempty,dive,min=0,max=6"`
}

type CreateGoalRequest struct {
	Title         string          `validate:"required,notblank,max=200"`
	Type          entity.GoalType `validate:"required,oneof=habit savings"`
	TargetAmount  float64         `validate:"gte=0"`
	CurrentAmount float64         `validate:"gte=0"`
}

type CreateTaskRequest struct {
	Title       string `validate:"required,notblank,max=200"`
	Description string `validate:"max=2000"`
	DueDate     *time.Time
	IsImportant bool
}

// UpdateTaskRequest changes only the fields that are set.
type UpdateTaskRequest struct {
	Title        *string `validate:"omitempty,notblank,max=200"`
	Description  *string `validate:"omitempty,max=2000"`
	DueDate      *time.Time
	ClearDueDate bool
	IsCompleted  *bool
	IsImportant  *bool
}

type ScheduleServiceI interface {
	// Validates request and stores new activity of owner. Publishes activities change
	CreateActivity(ctx context.Context, ownerID uuid.UUID, req *CreateActivityRequest) (*entity.Activity, error)
	// Full snapshot of owner's activities
	ListActivities(ctx context.Context, ownerID uuid.UUID) ([]entity.Activity, error)
	DeleteActivity(ctx context.Context, activityID, ownerID uuid.UUID) error
	// Timeline of a single day. Empty date means today
	GetTimeline(ctx context.Context, ownerID uuid.UUID, date string) (*entity.DayTimeline, error)
	// Consecutive timelines starting from date (today if empty)
	GetWeek(ctx context.Context, ownerID uuid.UUID, from string, days int) ([]entity.DayTimeline, error)
	// Current calendar date in service's timezone
	Today() string
}

type GoalsServiceI interface {
	CreateGoal(ctx context.Context, ownerID uuid.UUID, req *CreateGoalRequest) (*entity.Goal, error)
	// Every goal of owner with its stats or progress computed for today
	ListGoals(ctx context.Context, ownerID uuid.UUID) ([]entity.GoalView, error)
	GetGoal(ctx context.Context, goalID, ownerID uuid.UUID) (*entity.GoalView, error)
	// Adds today into habit history. Repeated calls on the same day change nothing
	MarkHabitDone(ctx context.Context, goalID, ownerID uuid.UUID) (*entity.HabitStats, error)
	// Increments saved amount by positive value
	AddSavings(ctx context.Context, goalID, ownerID uuid.UUID, amount float64) (*entity.SavingsProgress, error)
	GetHabitStats(ctx context.Context, goalID, ownerID uuid.UUID) (*entity.HabitStats, error)
	DeleteGoal(ctx context.Context, goalID, ownerID uuid.UUID) error
}

type TasksServiceI interface {
	CreateTask(ctx context.Context, ownerID uuid.UUID, req *CreateTaskRequest) (*entity.Task, error)
	// Owner's tasks, newest first
	ListTasks(ctx context.Context, ownerID uuid.UUID) ([]entity.Task, error)
	UpdateTask(ctx context.Context, taskID, ownerID uuid.UUID, req *UpdateTaskRequest) (*entity.Task, error)
	DeleteTask(ctx context.Context, taskID, ownerID uuid.UUID) error
}
