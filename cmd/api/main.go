// @title Planner API
// @description Daily timeline, habits, savings goals and tasks with live updates
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/limbo/planner/internal/api"
	"github.com/limbo/planner/internal/feed"
	"github.com/limbo/planner/internal/live"
	"github.com/limbo/planner/internal/repository"
	"github.com/limbo/planner/internal/service"
	"github.com/limbo/planner/pkg/cleanup"
	"github.com/limbo/planner/pkg/config"
	jwtservice "github.com/limbo/planner/pkg/jwt_service"
	"github.com/limbo/planner/pkg/logger"
	"go.uber.org/zap"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	log := logger.New(logger.Config{
		Level:    cfg.GetStringOr("LOG_LEVEL", "info"),
		Encoding: cfg.GetStringOr("LOG_ENCODING", "json"),
	})
	zap.ReplaceGlobals(log)
	defer log.Sync()

	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
		SSLMode:  cfg.GetString("POSTGRES_SSLMODE"),
	}
	if cfg.GetBool("RUN_MIGRATIONS", false) {
		if err := repository.Migrate(&dbCfg, cfg.GetStringOr("MIGRATIONS_DIR", "./migrations")); err != nil {
			log.Fatal("migrations failed", zap.Error(err))
		}
		log.Info("migrations applied")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	pool, err := repository.Connect(ctx, &dbCfg)
	cancel()
	if err != nil {
		log.Fatal("connecting to postgres failed", zap.Error(err))
	}

	changes, err := newFeed(cfg, log)
	if err != nil {
		cleanup.CleanUp(log)
		log.Fatal("creating change feed failed", zap.Error(err))
	}

	loc := cfg.GetLocation("TIMEZONE")
	scheduleService := service.NewScheduleService(repository.NewActivitiesRepo(pool), changes, service.WithLocation(loc))
	goalsService := service.NewGoalsService(repository.NewGoalsRepo(pool), changes, service.WithLocation(loc))
	tasksService := service.NewTasksService(repository.NewTasksRepo(pool), changes, service.WithLocation(loc))

	hub := live.NewHub(changes, live.Sources{
		Schedule: scheduleService,
		Goals:    goalsService,
		Tasks:    tasksService,
	}, log.Named("live"), live.Options{
		SendBuffer: cfg.GetInt("LIVE_SEND_BUFFER", 0),
	})
	cleanup.Register(&cleanup.Job{
		Name: "closing live sessions",
		F: func() error {
			hub.Close()
			return nil
		},
	})
	rollover, err := live.NewRollover(hub, loc, log.Named("rollover"))
	if err != nil {
		cleanup.CleanUp(log)
		log.Fatal("scheduling midnight rollover failed", zap.Error(err))
	}
	rollover.Start()
	cleanup.Register(&cleanup.Job{
		Name: "stopping midnight rollover",
		F: func() error {
			stopCtx, stopCancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer stopCancel()
			rollover.Stop(stopCtx)
			return nil
		},
	})
	log.Info("midnight rollover scheduled", zap.Time("next", rollover.Next()))

	serv := api.New(&api.ServicesList{
		ScheduleService: scheduleService,
		GoalsService:    goalsService,
		TasksService:    tasksService,
		JwtService:      jwtservice.New(cfg.GetString("JWT_SECRET"), cfg.GetString("JWT_ISSUER")),
		LiveHub:         hub,
		Logger:          log.Named("http"),
		RateLimit: api.RateLimitConfig{
			RPS:      cfg.GetFloat("RATE_LIMIT_RPS", 0),
			Burst:    cfg.GetInt("RATE_LIMIT_BURST", 0),
			Disabled: !cfg.GetBool("RATE_LIMIT_ENABLED", true),
		},
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- serv.Run(cfg.GetStringOr("API_ADDRESS", ":8080"))
	}()
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	select {
	case s := <-sig:
		log.Info("shutdown signal received", zap.String("signal", s.String()))
	case err := <-errCh:
		if err != nil {
			log.Error("server error", zap.Error(err))
		}
	}
	cleanup.CleanUp(log)
}

// newFeed picks redis when REDIS_URL is set, so several api instances share
// change events. A single instance works with the in-process feed.
func newFeed(cfg *config.Config, log *zap.Logger) (feed.Feed, error) {
	url := cfg.GetString("REDIS_URL")
	if url == "" {
		log.Info("using in-memory change feed")
		return feed.NewMemory(), nil
	}
	client, err := feed.NewRedisClient(url)
	if err != nil {
		return nil, err
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing redis client",
		F:    client.Close,
	})
	log.Info("using redis change feed")
	return feed.NewRedis(client, log.Named("feed")), nil
}
