package service

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/planner/internal/error_values"
	"github.com/limbo/planner/internal/feed"
	"github.com/limbo/planner/internal/repository"
	"github.com/limbo/planner/pkg/entity"
)

type TasksService struct {
	base
	repo repository.TasksRepositoryI
}

func NewTasksService(tasksRepo repository.TasksRepositoryI, f feed.Feed, opts ...Option) *TasksService {
	if tasksRepo == nil {
		log.Fatal("provided nil tasksRepo")
	}
	return &TasksService{
		base: newBase(f, opts),
		repo: tasksRepo,
	}
}

func (ts *TasksService) CreateTask(ctx context.Context, ownerID uuid.UUID, req *CreateTaskRequest) (*entity.Task, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	t := entity.Task{
		OwnerID:     ownerID,
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		DueDate:     req.DueDate,
		IsImportant: req.IsImportant,
	}
	if err := ts.repo.Create(ctx, &t); err != nil {
		return nil, repoError("create_task", err)
	}
	ts.notify(ctx, ownerID, feed.CollectionTasks)
	return &t, nil
}

func (ts *TasksService) ListTasks(ctx context.Context, ownerID uuid.UUID) ([]entity.Task, error) {
	tasks, err := ts.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, repoError("list_tasks", err)
	}
	return tasks, nil
}

func (ts *TasksService) UpdateTask(ctx context.Context, taskID, ownerID uuid.UUID, req *UpdateTaskRequest) (*entity.Task, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	patch := entity.TaskPatch{
		Description:  req.Description,
		DueDate:      req.DueDate,
		ClearDueDate: req.ClearDueDate,
		IsCompleted:  req.IsCompleted,
		IsImportant:  req.IsImportant,
	}
	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		patch.Title = &title
	}
	if patch.ClearDueDate {
		patch.DueDate = nil
	}
	t, err := ts.repo.Update(ctx, taskID, ownerID, patch)
	if errors.Is(err, errorvalues.ErrTaskNotFound) {
		// tell a missing task from someone else's
		if _, ownerErr := ts.ownedTask(ctx, taskID, ownerID); ownerErr != nil {
			return nil, ownerErr
		}
	}
	if err != nil {
		return nil, repoError("update_task", err)
	}
	ts.notify(ctx, ownerID, feed.CollectionTasks)
	return t, nil
}

func (ts *TasksService) DeleteTask(ctx context.Context, taskID, ownerID uuid.UUID) error {
	if _, err := ts.ownedTask(ctx, taskID, ownerID); err != nil {
		return err
	}
	if err := ts.repo.Delete(ctx, taskID); err != nil {
		return repoError("delete_task", err)
	}
	ts.notify(ctx, ownerID, feed.CollectionTasks)
	return nil
}

func (ts *TasksService) ownedTask(ctx context.Context, taskID, ownerID uuid.UUID) (*entity.Task, error) {
	t, err := ts.repo.GetByID(ctx, taskID)
	if err != nil {
		return nil, repoError("get_task", err)
	}
	if t.OwnerID != ownerID {
		return nil, errorvalues.ErrWrongOwner
	}
	return t, nil
}
