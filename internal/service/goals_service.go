package service

import (
	"context"
	"log"
	"math"
	"strings"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/planner/internal/error_values"
	"github.com/limbo/planner/internal/feed"
	"github.com/limbo/planner/internal/planner"
	"github.com/limbo/planner/internal/repository"
	"github.com/limbo/planner/pkg/entity"
)

type GoalsService struct {
	base
	repo repository.GoalsRepositoryI
}

func NewGoalsService(goalsRepo repository.GoalsRepositoryI, f feed.Feed, opts ...Option) *GoalsService {
	if goalsRepo == nil {
		log.Fatal("provided nil goalsRepo")
	}
	return &GoalsService{
		base: newBase(f, opts),
		repo: goalsRepo,
	}
}

func (gs *GoalsService) CreateGoal(ctx context.Context, ownerID uuid.UUID, req *CreateGoalRequest) (*entity.Goal, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	g := entity.Goal{
		OwnerID: ownerID,
		Title:   strings.TrimSpace(req.Title),
		Type:    req.Type,
	}
	if g.Type == entity.GoalSavings {
		if math.IsInf(req.TargetAmount, 0) || math.IsInf(req.CurrentAmount, 0) {
			return nil, validationError("amounts must be finite")
		}
		g.TargetAmount = req.TargetAmount
		g.CurrentAmount = req.CurrentAmount
	}
	if err := gs.repo.Create(ctx, &g); err != nil {
		return nil, repoError("create_goal", err)
	}
	gs.notify(ctx, ownerID, feed.CollectionGoals)
	return &g, nil
}

func (gs *GoalsService) ListGoals(ctx context.Context, ownerID uuid.UUID) ([]entity.GoalView, error) {
	goals, err := gs.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, repoError("list_goals", err)
	}
	return BuildGoalViews(goals, gs.Today()), nil
}

func (gs *GoalsService) GetGoal(ctx context.Context, goalID, ownerID uuid.UUID) (*entity.GoalView, error) {
	g, err := gs.ownedGoal(ctx, goalID, ownerID)
	if err != nil {
		return nil, err
	}
	view := BuildGoalView(g, gs.Today())
	return &view, nil
}

func (gs *GoalsService) MarkHabitDone(ctx context.Context, goalID, ownerID uuid.UUID) (*entity.HabitStats, error) {
	g, err := gs.ownedGoal(ctx, goalID, ownerID)
	if err != nil {
		return nil, err
	}
	if g.Type != entity.GoalHabit {
		return nil, errorvalues.ErrGoalTypeMismatch
	}
	today := gs.Today()
	if planner.DoneOn(g.History, today) {
		stats := planner.HabitStats(g.ID, g.History, today)
		return &stats, nil
	}
	stored, err := gs.repo.AppendHistory(ctx, goalID, today)
	if err != nil {
		return nil, repoError("append_history", err)
	}
	gs.notify(ctx, ownerID, feed.CollectionGoals)
	stats := planner.HabitStats(stored.ID, stored.History, today)
	return &stats, nil
}

func (gs *GoalsService) AddSavings(ctx context.Context, goalID, ownerID uuid.UUID, amount float64) (*entity.SavingsProgress, error) {
	if !(amount > 0) || math.IsInf(amount, 0) {
		return nil, validationError("amount must be a positive number")
	}
	g, err := gs.ownedGoal(ctx, goalID, ownerID)
	if err != nil {
		return nil, err
	}
	if g.Type != entity.GoalSavings {
		return nil, errorvalues.ErrGoalTypeMismatch
	}
	stored, err := gs.repo.AddAmount(ctx, goalID, amount)
	if err != nil {
		return nil, repoError("add_amount", err)
	}
	gs.notify(ctx, ownerID, feed.CollectionGoals)
	progress := planner.Progress(stored.CurrentAmount, stored.TargetAmount)
	return &progress, nil
}

func (gs *GoalsService) GetHabitStats(ctx context.Context, goalID, ownerID uuid.UUID) (*entity.HabitStats, error) {
	g, err := gs.ownedGoal(ctx, goalID, ownerID)
	if err != nil {
		return nil, err
	}
	if g.Type != entity.GoalHabit {
		return nil, errorvalues.ErrGoalTypeMismatch
	}
	stats := planner.HabitStats(g.ID, g.History, gs.Today())
	return &stats, nil
}

func (gs *GoalsService) DeleteGoal(ctx context.Context, goalID, ownerID uuid.UUID) error {
	if _, err := gs.ownedGoal(ctx, goalID, ownerID); err != nil {
		return err
	}
	if err := gs.repo.Delete(ctx, goalID); err != nil {
		return repoError("delete_goal", err)
	}
	gs.notify(ctx, ownerID, feed.CollectionGoals)
	return nil
}

func (gs *GoalsService) ownedGoal(ctx context.Context, goalID, ownerID uuid.UUID) (*entity.Goal, error) {
	g, err := gs.repo.GetByID(ctx, goalID)
	if err != nil {
		return nil, repoError("get_goal", err)
	}
	if g.OwnerID != ownerID {
		return nil, errorvalues.ErrWrongOwner
	}
	return g, nil
}

// BuildGoalView pairs a goal with the view matching its type.
func BuildGoalView(g *entity.Goal, today string) entity.GoalView {
	view := entity.GoalView{Goal: g}
	switch g.Type {
	case entity.GoalHabit:
		stats := planner.HabitStats(g.ID, g.History, today)
		view.Stats = &stats
	case entity.GoalSavings:
		progress := planner.Progress(g.CurrentAmount, g.TargetAmount)
		view.Progress = &progress
	}
	return view
}

func BuildGoalViews(goals []entity.Goal, today string) []entity.GoalView {
	views := make([]entity.GoalView, 0, len(goals))
	for i := range goals {
		views = append(views, BuildGoalView(&goals[i], today))
	}
	return views
}
