package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/limbo/planner/pkg/cleanup"
	"github.com/pressly/goose"

	errorvalues "github.com/limbo/planner/internal/error_values"
)

// Connect opens the shared pool used by every repository and registers
// its shutdown with the cleanup registry.
func Connect(ctx context.Context, cfg DBConfig) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, cfg.ConnString())
	if err != nil {
		return nil, fmt.Errorf("creating pgxpool error: %w", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err = pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging pgxpool error: %w", err)
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return pool, nil
}

// Migrate applies goose migrations from dir over a short-lived database/sql handle.
func Migrate(cfg DBConfig, dir string) error {
	db, err := sql.Open("pgx", cfg.ConnString())
	if err != nil {
		return fmt.Errorf("opening migration connection error: %w", err)
	}
	defer db.Close()
	if err = goose.SetDialect("postgres"); err != nil {
		return err
	}
	if err = goose.Up(db, dir); err != nil {
		return fmt.Errorf("applying migrations error: %w", err)
	}
	return nil
}

func dbError(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", errorvalues.ErrPersistence, op, err)
}
