package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/planner/internal/error_values"
	"github.com/limbo/planner/pkg/entity"
)

type ActivitiesRepository struct {
	conn PgConnection
}

func NewActivitiesRepo(conn PgConnection) *ActivitiesRepository {
	return &ActivitiesRepository{
		conn: conn,
	}
}

func (ar *ActivitiesRepository) Create(ctx context.Context, a *entity.Activity) error {
	days := a.Recurrence.Days
	if days == nil {
		days = []int{}
	}
	row := ar.conn.QueryRow(ctx, `INSERT INTO activities (owner_id, title, start_time, end_time, category, anchor_date, recurrence_type, recurrence_days)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id, created_at;`,
		a.OwnerID,
		a.Title,
		a.StartTime,
		a.EndTime,
		a.Category,
		a.Date,
		a.Recurrence.Kind(),
		days,
	)
	if err := row.Scan(&a.ID, &a.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Check violation
			case "23514":
				return errors.Join(errorvalues.ErrValidation, errors.New("activity rejected by storage constraints: "+pgErr.ConstraintName))
			}
		}
		return dbError("creating activity", err)
	}
	return nil
}

func (ar *ActivitiesRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Activity, error) {
	row := ar.conn.QueryRow(ctx, `SELECT id, owner_id, title, start_time, end_time, category, anchor_date, recurrence_type, recurrence_days, created_at
		FROM activities WHERE id = $1;`, id)
	a, err := scanActivity(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrActivityNotFound
		}
		return nil, dbError("getting activity by id", err)
	}
	return a, nil
}

func (ar *ActivitiesRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]entity.Activity, error) {
	rows, err := ar.conn.Query(ctx, `SELECT id, owner_id, title, start_time, end_time, category, anchor_date, recurrence_type, recurrence_days, created_at
		FROM activities WHERE owner_id = $1 ORDER BY created_at, id;`, ownerID)
	if err != nil {
		return nil, dbError("listing activities", err)
	}
	defer rows.Close()
	activities := make([]entity.Activity, 0)
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, dbError("unmarshalling activity", err)
		}
		activities = append(activities, *a)
	}
	if err = rows.Err(); err != nil {
		return nil, dbError("iterating activities", err)
	}
	return activities, nil
}

func (ar *ActivitiesRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := ar.conn.Exec(ctx, `DELETE FROM activities WHERE id = $1;`, id)
	if err != nil {
		return dbError("deleting activity", err)
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrActivityNotFound
	}
	return nil
}

func scanActivity(row pgx.Row) (*entity.Activity, error) {
	var a entity.Activity
	err := row.Scan(
		&a.ID,
		&a.OwnerID,
		&a.Title,
		&a.StartTime,
		&a.EndTime,
		&a.Category,
		&a.Date,
		&a.Recurrence.Type,
		&a.Recurrence.Days,
		&a.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(a.Recurrence.Days) == 0 {
		a.Recurrence.Days = nil
	}
	return &a, nil
}
