package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/planner/pkg/entity"
)

type ActivitiesRepositoryI interface {
	// Stores new activity. ID and CreatedAt are assigned by database and written back into a
	Create(ctx context.Context, a *entity.Activity) error
	// Searches activity with given id
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Activity, error)
	// Full snapshot of owner's activities in creation order
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]entity.Activity, error)
	// Deletes activity with id
	Delete(ctx context.Context, id uuid.UUID) error
}

type GoalsRepositoryI interface {
	// Stores new goal. ID and CreatedAt are written back into g
	Create(ctx context.Context, g *entity.Goal) error
	// Searches goal with given id
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error)
	// Full snapshot of owner's goals in creation order
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]entity.Goal, error)
	// Adds date to habit history and returns the stored goal. Dates already present are left as is
	AppendHistory(ctx context.Context, id uuid.UUID, date string) (*entity.Goal, error)
	// Increments current amount of savings goal and returns the stored goal
	AddAmount(ctx context.Context, id uuid.UUID, amount float64) (*entity.Goal, error)
	// Deletes goal with id
	Delete(ctx context.Context, id uuid.UUID) error
}

type TasksRepositoryI interface {
	// Stores new task. ID and CreatedAt are written back into t
	Create(ctx context.Context, t *entity.Task) error
	// Searches task with given id
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Task, error)
	// Owner's tasks, newest first
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]entity.Task, error)
	// Changes only the fields set in patch of the owner's task and returns the stored row
	Update(ctx context.Context, id, ownerID uuid.UUID, patch entity.TaskPatch) (*entity.Task, error)
	// Deletes task with id
	Delete(ctx context.Context, id uuid.UUID) error
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
	SSLMode  string
}

func (pgcfg *PGCfg) ConnString() string {
	sslMode := pgcfg.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("postgresql://%s:%s@%s/%s?sslmode=%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB, sslMode)
}
