package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/limbo/planner/internal/service"
	"github.com/limbo/planner/pkg/cleanup"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const (
	requestTimeout  = 10 * time.Second
	shutdownTimeout = 10 * time.Second
)

type Server struct {
	mx              *chi.Mux
	httpServer      *http.Server
	scheduleService service.ScheduleServiceI
	goalsService    service.GoalsServiceI
	tasksService    service.TasksServiceI
	jwtService      JWTServiceI
	liveHub         LiveHubI
	limiter         *limiterStore
	logger          *zap.Logger
}

type ServicesList struct {
	ScheduleService service.ScheduleServiceI
	GoalsService    service.GoalsServiceI
	TasksService    service.TasksServiceI
	JwtService      JWTServiceI
	LiveHub         LiveHubI
	Logger          *zap.Logger
	RateLimit       RateLimitConfig
}

func New(servicesOptions *ServicesList) *Server {
	s := &Server{
		mx:              chi.NewMux(),
		scheduleService: servicesOptions.ScheduleService,
		goalsService:    servicesOptions.GoalsService,
		tasksService:    servicesOptions.TasksService,
		jwtService:      servicesOptions.JwtService,
		liveHub:         servicesOptions.LiveHub,
		logger:          servicesOptions.Logger,
	}
	if s.logger == nil {
		s.logger = zap.L()
	}
	if !servicesOptions.RateLimit.Disabled {
		s.limiter = newLimiterStore(servicesOptions.RateLimit.withDefaults(), limiterStaleAfter)
	}
	s.mountRoutes()
	return s
}

func (s *Server) mountRoutes() {
	s.mx.Use(middleware.Recoverer, s.RequestIDMiddleware, s.SettingUpLoggerMiddleware)
	s.mx.Method(http.MethodGet, "/metrics", promhttp.Handler())
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", s.Health)
		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware, s.RateLimitMiddleware)

			r.Post("/activities", s.CreateActivity)
			r.Get("/activities", s.GetActivities)
			r.Delete("/activities/{id}", s.DeleteActivity)

			r.Get("/timeline", s.GetTimeline)
			r.Get("/timeline/week", s.GetWeek)

			r.Post("/goals", s.CreateGoal)
			r.Get("/goals", s.GetGoals)
			r.Get("/goals/{id}", s.GetGoal)
			r.Delete("/goals/{id}", s.DeleteGoal)
			r.Post("/goals/{id}/done", s.MarkHabitDone)
			r.Post("/goals/{id}/savings", s.AddSavings)
			r.Get("/goals/{id}/stats", s.GetHabitStats)

			r.Post("/tasks", s.CreateTask)
			r.Get("/tasks", s.GetTasks)
			r.Patch("/tasks/{id}", s.UpdateTask)
			r.Delete("/tasks/{id}", s.DeleteTask)

			r.Get("/live", s.Live)
		})
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mx.ServeHTTP(w, r)
}

// Run blocks until the server is shut down. Shutdown is registered as a
// cleanup job.
func (s *Server) Run(addr string) error {
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 5 * time.Second,
	}
	cleanup.Register(&cleanup.Job{
		Name: "shutting down http server",
		F: func() error {
			ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return s.Shutdown(ctx)
		},
	})
	s.logger.Info("http server started", zap.String("address", addr))
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.limiter != nil {
		s.limiter.close()
	}
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
