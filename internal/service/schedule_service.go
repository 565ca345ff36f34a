package service

import (
	"context"
	"log"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/planner/internal/error_values"
	"github.com/limbo/planner/internal/feed"
	"github.com/limbo/planner/internal/observability"
	"github.com/limbo/planner/internal/planner"
	"github.com/limbo/planner/internal/repository"
	"github.com/limbo/planner/pkg/entity"
)

type ScheduleService struct {
	base
	repo repository.ActivitiesRepositoryI
}

func NewScheduleService(activitiesRepo repository.ActivitiesRepositoryI, f feed.Feed, opts ...Option) *ScheduleService {
	if activitiesRepo == nil {
		log.Fatal("provided nil activitiesRepo")
	}
	return &ScheduleService{
		base: newBase(f, opts),
		repo: activitiesRepo,
	}
}

func (ss *ScheduleService) CreateActivity(ctx context.Context, ownerID uuid.UUID, req *CreateActivityRequest) (*entity.Activity, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	if req.StartTime >= req.EndTime {
		return nil, validationError("start time must be before end time")
	}
	rec := entity.Recurrence{Type: req.Type}
	switch rec.Kind() {
	case entity.RecurrenceCustom:
		if len(req.Days) == 0 {
			return nil, validationError("custom recurrence requires at least one weekday")
		}
		days := slices.Clone(req.Days)
		slices.Sort(days)
		rec.Days = slices.Compact(days)
	default:
		// Days only mean something for custom recurrence
		rec.Days = nil
	}
	rec.Type = rec.Kind()
	category := req.Category
	if category == "" {
		category = entity.CategoryOther
	}
	a := entity.Activity{
		OwnerID:    ownerID,
		Title:      strings.TrimSpace(req.Title),
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		Category:   category,
		Date:       req.Date,
		Recurrence: rec,
	}
	if err := ss.repo.Create(ctx, &a); err != nil {
		return nil, repoError("create_activity", err)
	}
	ss.notify(ctx, ownerID, feed.CollectionActivities)
	return &a, nil
}

func (ss *ScheduleService) ListActivities(ctx context.Context, ownerID uuid.UUID) ([]entity.Activity, error) {
	activities, err := ss.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, repoError("list_activities", err)
	}
	return activities, nil
}

func (ss *ScheduleService) DeleteActivity(ctx context.Context, activityID, ownerID uuid.UUID) error {
	a, err := ss.repo.GetByID(ctx, activityID)
	if err != nil {
		return repoError("get_activity", err)
	}
	if a.OwnerID != ownerID {
		return errorvalues.ErrWrongOwner
	}
	if err = ss.repo.Delete(ctx, activityID); err != nil {
		return repoError("delete_activity", err)
	}
	ss.notify(ctx, ownerID, feed.CollectionActivities)
	return nil
}

func (ss *ScheduleService) GetTimeline(ctx context.Context, ownerID uuid.UUID, date string) (*entity.DayTimeline, error) {
	if date == "" {
		date = ss.Today()
	}
	if !planner.ValidDate(date) {
		return nil, validationError("date must be a YYYY-MM-DD calendar date")
	}
	activities, err := ss.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, repoError("list_activities", err)
	}
	start := time.Now()
	entries := planner.BuildTimeline(activities, date)
	observability.RecordTimelineBuild("http", time.Since(start))
	return &entity.DayTimeline{
		Date:    date,
		Entries: entries,
	}, nil
}

func (ss *ScheduleService) GetWeek(ctx context.Context, ownerID uuid.UUID, from string, days int) ([]entity.DayTimeline, error) {
	if from == "" {
		from = ss.Today()
	}
	if !planner.ValidDate(from) {
		return nil, validationError("from must be a YYYY-MM-DD calendar date")
	}
	if days == 0 {
		days = planner.DefaultWeekDays
	}
	if days < 1 || days > planner.MaxWeekDays {
		return nil, validationError("days must be between 1 and 14")
	}
	activities, err := ss.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, repoError("list_activities", err)
	}
	start := time.Now()
	week, err := planner.BuildWeek(activities, from, days)
	if err != nil {
		return nil, validationError(err.Error())
	}
	observability.RecordTimelineBuild("http_week", time.Since(start))
	return week, nil
}
