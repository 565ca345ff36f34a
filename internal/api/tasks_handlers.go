package api

import (
	"context"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/limbo/planner/internal/service"
	"github.com/limbo/planner/pkg/entity"
	"github.com/limbo/planner/pkg/httputil"
	"go.uber.org/zap"
)

type CreateTaskRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"desc"`
	DueDate     *time.Time `json:"due_date"`
	IsImportant bool       `json:"is_important"`
}

// UpdateTaskRequest is a partial update: absent fields stay unchanged.
// clear_due_date removes the due date, since null can't be told apart from
// an absent field.
type UpdateTaskRequest struct {
	Title        *string    `json:"title"`
	Description  *string    `json:"desc"`
	DueDate      *time.Time `json:"due_date"`
	ClearDueDate bool       `json:"clear_due_date"`
	IsCompleted  *bool      `json:"is_completed"`
	IsImportant  *bool      `json:"is_important"`
}

type GetTasksResponse struct {
	UserID string        `json:"uid"`
	Tasks  []entity.Task `json:"tasks"`
}

func (s *Server) CreateTask(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := s.ownerFromRequest(w, r, "create task")
	if !ok {
		return
	}
	var req CreateTaskRequest
	defer r.Body.Close()
	if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("create task error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	task, err := s.tasksService.CreateTask(ctx, uid, &service.CreateTaskRequest{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		IsImportant: req.IsImportant,
	})
	if err != nil {
		writeServiceError(w, logger, "create task", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, task)
	logger.Info("task created", zap.String("task_id", task.ID.String()))
}

func (s *Server) GetTasks(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := s.ownerFromRequest(w, r, "get tasks")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	tasks, err := s.tasksService.ListTasks(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "get tasks", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetTasksResponse{
		UserID: uid.String(),
		Tasks:  tasks,
	})
}

func (s *Server) UpdateTask(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := s.ownerFromRequest(w, r, "update task")
	if !ok {
		return
	}
	id, ok := idFromPath(w, r, "update task")
	if !ok {
		return
	}
	var req UpdateTaskRequest
	defer r.Body.Close()
	if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("update task error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	task, err := s.tasksService.UpdateTask(ctx, id, uid, &service.UpdateTaskRequest{
		Title:        req.Title,
		Description:  req.Description,
		DueDate:      req.DueDate,
		ClearDueDate: req.ClearDueDate,
		IsCompleted:  req.IsCompleted,
		IsImportant:  req.IsImportant,
	})
	if err != nil {
		writeServiceError(w, logger, "update task", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, task)
	logger.Info("task updated", zap.String("task_id", id.String()))
}

func (s *Server) DeleteTask(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := s.ownerFromRequest(w, r, "task deletion")
	if !ok {
		return
	}
	id, ok := idFromPath(w, r, "task deletion")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	if err := s.tasksService.DeleteTask(ctx, id, uid); err != nil {
		writeServiceError(w, logger, "task deletion", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, DeletedResponse{ID: id.String()})
	logger.Info("task deleted", zap.String("task_id", id.String()))
}
