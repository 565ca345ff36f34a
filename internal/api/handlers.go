package api

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/planner/internal/error_values"
	"github.com/limbo/planner/pkg/httputil"
	"go.uber.org/zap"
)

type HealthResponse struct {
	Status string `json:"status"`
}

type DeletedResponse struct {
	ID string `json:"id"`
}

func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONResponse(w, http.StatusOK, HealthResponse{Status: "ok"})
}

// writeServiceError maps service sentinels to status codes. Entities of other
// owners are reported as missing.
func writeServiceError(w http.ResponseWriter, logger *zap.Logger, op string, err error) {
	switch {
	case errors.Is(err, errorvalues.ErrValidation):
		logger.Warn(op+" error: validation failed", zap.Error(err))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "validation failed", validationDetails(err))
	case errors.Is(err, errorvalues.ErrActivityNotFound):
		logger.Warn(op + " error: unexist activity")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "activity doesn't exist", nil)
	case errors.Is(err, errorvalues.ErrGoalNotFound):
		logger.Warn(op + " error: unexist goal")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "goal doesn't exist", nil)
	case errors.Is(err, errorvalues.ErrTaskNotFound):
		logger.Warn(op + " error: unexist task")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "task doesn't exist", nil)
	case errors.Is(err, errorvalues.ErrWrongOwner):
		logger.Warn(op + " error: entity has different owner")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "entity doesn't exist", nil)
	case errors.Is(err, errorvalues.ErrGoalTypeMismatch):
		logger.Warn(op + " error: goal type mismatch")
		httputil.WriteErrorResponse(w, http.StatusConflict, "operation not supported by goal type", nil)
	default:
		logger.Error(op+" error: service error", zap.Error(err))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during "+op, nil)
	}
}

// validationDetails drops the sentinel so only field level messages reach
// the client.
func validationDetails(err error) error {
	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		return nil
	}
	details := make([]error, 0)
	for _, e := range joined.Unwrap() {
		if e == errorvalues.ErrValidation {
			continue
		}
		details = append(details, e)
	}
	return errors.Join(details...)
}

func (s *Server) ownerFromRequest(w http.ResponseWriter, r *http.Request, op string) (uuid.UUID, bool) {
	uid, err := GetUIDFromContext(r)
	if err != nil {
		GetLoggerFromCtx(r.Context()).Error(op + " error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return uuid.Nil, false
	}
	return uid, true
}

func idFromPath(w http.ResponseWriter, r *http.Request, op string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		GetLoggerFromCtx(r.Context()).Warn(op + " error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid id in path value", nil)
		return uuid.Nil, false
	}
	return id, true
}
