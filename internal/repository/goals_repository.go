package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/planner/internal/error_values"
	"github.com/limbo/planner/pkg/entity"
)

type GoalsRepository struct {
	conn PgConnection
}

func NewGoalsRepo(conn PgConnection) *GoalsRepository {
	return &GoalsRepository{
		conn: conn,
	}
}

func (gr *GoalsRepository) Create(ctx context.Context, g *entity.Goal) error {
	history := g.History
	if history == nil {
		history = []string{}
	}
	row := gr.conn.QueryRow(ctx, `INSERT INTO goals (owner_id, title, type, history, target_amount, current_amount)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at;`,
		g.OwnerID,
		g.Title,
		g.Type,
		history,
		g.TargetAmount,
		g.CurrentAmount,
	)
	if err := row.Scan(&g.ID, &g.CreatedAt); err != nil {
		return dbError("creating goal", err)
	}
	return nil
}

func (gr *GoalsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error) {
	row := gr.conn.QueryRow(ctx, `SELECT id, owner_id, title, type, history, target_amount, current_amount, created_at
		FROM goals WHERE id = $1;`, id)
	g, err := scanGoal(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrGoalNotFound
		}
		return nil, dbError("getting goal by id", err)
	}
	return g, nil
}

func (gr *GoalsRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]entity.Goal, error) {
	rows, err := gr.conn.Query(ctx, `SELECT id, owner_id, title, type, history, target_amount, current_amount, created_at
		FROM goals WHERE owner_id = $1 ORDER BY created_at, id;`, ownerID)
	if err != nil {
		return nil, dbError("listing goals", err)
	}
	defer rows.Close()
	goals := make([]entity.Goal, 0)
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, dbError("unmarshalling goal", err)
		}
		goals = append(goals, *g)
	}
	if err = rows.Err(); err != nil {
		return nil, dbError("iterating goals", err)
	}
	return goals, nil
}

// AppendHistory adds date to the habit's history unless already there and
// returns the stored goal.
func (gr *GoalsRepository) AppendHistory(ctx context.Context, id uuid.UUID, date string) (*entity.Goal, error) {
	row := gr.conn.QueryRow(ctx, `UPDATE goals SET history = CASE WHEN $2::text = ANY(history) THEN history ELSE array_append(history, $2::text) END
		WHERE id = $1 AND type = 'habit'
		RETURNING id, owner_id, title, type, history, target_amount, current_amount, created_at;`, id, date)
	g, err := scanGoal(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrGoalNotFound
		}
		return nil, dbError("appending habit history", err)
	}
	return g, nil
}

// AddAmount increments the savings goal and returns it as stored after the increment.
func (gr *GoalsRepository) AddAmount(ctx context.Context, id uuid.UUID, amount float64) (*entity.Goal, error) {
	row := gr.conn.QueryRow(ctx, `UPDATE goals SET current_amount = current_amount + $2 WHERE id = $1 AND type = 'savings'
		RETURNING id, owner_id, title, type, history, target_amount, current_amount, created_at;`, id, amount)
	g, err := scanGoal(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrGoalNotFound
		}
		return nil, dbError("adding savings amount", err)
	}
	return g, nil
}

func (gr *GoalsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := gr.conn.Exec(ctx, `DELETE FROM goals WHERE id = $1;`, id)
	if err != nil {
		return dbError("deleting goal", err)
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrGoalNotFound
	}
	return nil
}

func scanGoal(row pgx.Row) (*entity.Goal, error) {
	var g entity.Goal
	err := row.Scan(&g.ID, &g.OwnerID, &g.Title, &g.Type, &g.History, &g.TargetAmount, &g.CurrentAmount, &g.CreatedAt)
	if err != nil {
		return nil, err
	}
	if len(g.History) == 0 {
		g.History = nil
	}
	return &g, nil
}
