package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/bytedance/sonic"
	"github.com/limbo/planner/internal/service"
	"github.com/limbo/planner/pkg/entity"
	"github.com/limbo/planner/pkg/httputil"
	"go.uber.org/zap"
)

type CreateActivityRequest struct {
	Title      string            `json:"title"`
	StartTime  string            `json:"start_time"`
	EndTime    string            `json:"end_time"`
	Category   entity.Category   `json:"category"`
	Date       string            `json:"date"`
	Recurrence entity.Recurrence `json:"recurrence"`
}

type GetActivitiesResponse struct {
	UserID     string            `json:"uid"`
	Activities []entity.Activity `json:"activities"`
}

type GetWeekResponse struct {
	UserID string               `json:"uid"`
	Days   []entity.DayTimeline `json:"days"`
}

func (s *Server) CreateActivity(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := s.ownerFromRequest(w, r, "create activity")
	if !ok {
		return
	}
	var req CreateActivityRequest
	defer r.Body.Close()
	if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("create activity error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	activity, err := s.scheduleService.CreateActivity(ctx, uid, &service.CreateActivityRequest{
		Title:     req.Title,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Category:  req.Category,
		Date:      req.Date,
		Type:      req.Recurrence.Type,
		Days:      req.Recurrence.Days,
	})
	if err != nil {
		writeServiceError(w, logger, "create activity", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, activity)
	logger.Info("activity created", zap.String("activity_id", activity.ID.String()))
}

func (s *Server) GetActivities(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := s.ownerFromRequest(w, r, "get activities")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	activities, err := s.scheduleService.ListActivities(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "get activities", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetActivitiesResponse{
		UserID:     uid.String(),
		Activities: activities,
	})
}

func (s *Server) DeleteActivity(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := s.ownerFromRequest(w, r, "activity deletion")
	if !ok {
		return
	}
	id, ok := idFromPath(w, r, "activity deletion")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	if err := s.scheduleService.DeleteActivity(ctx, id, uid); err != nil {
		writeServiceError(w, logger, "activity deletion", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, DeletedResponse{ID: id.String()})
	logger.Info("activity deleted", zap.String("activity_id", id.String()))
}

// GetTimeline renders a single day, today when the date query is empty.
func (s *Server) GetTimeline(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := s.ownerFromRequest(w, r, "get timeline")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	timeline, err := s.scheduleService.GetTimeline(ctx, uid, r.URL.Query().Get("date"))
	if err != nil {
		writeServiceError(w, logger, "get timeline", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, timeline)
}

func (s *Server) GetWeek(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := s.ownerFromRequest(w, r, "get week")
	if !ok {
		return
	}
	var days int
	if raw := r.URL.Query().Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			logger.Warn("get week error: invalid days query")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "days must be a number", nil)
			return
		}
		days = parsed
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	week, err := s.scheduleService.GetWeek(ctx, uid, r.URL.Query().Get("from"), days)
	if err != nil {
		writeServiceError(w, logger, "get week", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetWeekResponse{
		UserID: uid.String(),
		Days:   week,
	})
}

// Live upgrades to a websocket and blocks for the session lifetime.
func (s *Server) Live(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := s.ownerFromRequest(w, r, "live")
	if !ok {
		return
	}
	if s.liveHub == nil {
		httputil.WriteErrorResponse(w, http.StatusServiceUnavailable, "live updates are disabled", nil)
		return
	}
	if err := s.liveHub.Serve(w, r, uid); err != nil {
		logger.Warn("live session error", zap.Error(err))
	}
}

