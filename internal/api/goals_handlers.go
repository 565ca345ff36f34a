package api

import (
	"context"
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/limbo/planner/internal/service"
	"github.com/limbo/planner/pkg/entity"
	"github.com/limbo/planner/pkg/httputil"
	"go.uber.org/zap"
)

type CreateGoalRequest struct {
	Title         string          `json:"title"`
	Type          entity.GoalType `json:"type"`
	TargetAmount  float64         `json:"target_amount"`
	CurrentAmount float64         `json:"current_amount"`
}

type AddSavingsRequest struct {
	Amount float64 `json:"amount"`
}

type GetGoalsResponse struct {
	UserID string            `json:"uid"`
	Goals  []entity.GoalView `json:"goals"`
}

func (s *Server) CreateGoal(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := s.ownerFromRequest(w, r, "create goal")
	if !ok {
		return
	}
	var req CreateGoalRequest
	defer r.Body.Close()
	if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("create goal error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	goal, err := s.goalsService.CreateGoal(ctx, uid, &service.CreateGoalRequest{
		Title:         req.Title,
		Type:          req.Type,
		TargetAmount:  req.TargetAmount,
		CurrentAmount: req.CurrentAmount,
	})
	if err != nil {
		writeServiceError(w, logger, "create goal", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, goal)
	logger.Info("goal created", zap.String("goal_id", goal.ID.String()))
}

func (s *Server) GetGoals(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := s.ownerFromRequest(w, r, "get goals")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	goals, err := s.goalsService.ListGoals(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "get goals", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetGoalsResponse{
		UserID: uid.String(),
		Goals:  goals,
	})
}

func (s *Server) GetGoal(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := s.ownerFromRequest(w, r, "get goal")
	if !ok {
		return
	}
	id, ok := idFromPath(w, r, "get goal")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	view, err := s.goalsService.GetGoal(ctx, id, uid)
	if err != nil {
		writeServiceError(w, logger, "get goal", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, view)
}

func (s *Server) DeleteGoal(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := s.ownerFromRequest(w, r, "goal deletion")
	if !ok {
		return
	}
	id, ok := idFromPath(w, r, "goal deletion")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	if err := s.goalsService.DeleteGoal(ctx, id, uid); err != nil {
		writeServiceError(w, logger, "goal deletion", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, DeletedResponse{ID: id.String()})
	logger.Info("goal deleted", zap.String("goal_id", id.String()))
}

// MarkHabitDone checks today's date. Repeating it on the same day is a no-op
// and still answers with the current stats.
func (s *Server) MarkHabitDone(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := s.ownerFromRequest(w, r, "mark habit")
	if !ok {
		return
	}
	id, ok := idFromPath(w, r, "mark habit")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	stats, err := s.goalsService.MarkHabitDone(ctx, id, uid)
	if err != nil {
		writeServiceError(w, logger, "mark habit", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, stats)
	logger.Info("habit checked", zap.String("goal_id", id.String()))
}

func (s *Server) AddSavings(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := s.ownerFromRequest(w, r, "add savings")
	if !ok {
		return
	}
	id, ok := idFromPath(w, r, "add savings")
	if !ok {
		return
	}
	var req AddSavingsRequest
	defer r.Body.Close()
	if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("add savings error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	progress, err := s.goalsService.AddSavings(ctx, id, uid, req.Amount)
	if err != nil {
		writeServiceError(w, logger, "add savings", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, progress)
	logger.Info("savings added", zap.String("goal_id", id.String()), zap.Float64("amount", req.Amount))
}

func (s *Server) GetHabitStats(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := s.ownerFromRequest(w, r, "get habit stats")
	if !ok {
		return
	}
	id, ok := idFromPath(w, r, "get habit stats")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	stats, err := s.goalsService.GetHabitStats(ctx, id, uid)
	if err != nil {
		writeServiceError(w, logger, "get habit stats", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, stats)
}
