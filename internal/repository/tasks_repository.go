package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/planner/internal/error_values"
	"github.com/limbo/planner/pkg/entity"
)

type TasksRepository struct {
	conn PgConnection
}

func NewTasksRepo(conn PgConnection) *TasksRepository {
	return &TasksRepository{
		conn: conn,
	}
}

func (tr *TasksRepository) Create(ctx context.Context, t *entity.Task) error {
	row := tr.conn.QueryRow(ctx, `INSERT INTO tasks (owner_id, title, description, due_date, is_completed, is_important)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at;`,
		t.OwnerID,
		t.Title,
		t.Description,
		t.DueDate,
		t.IsCompleted,
		t.IsImportant,
	)
	if err := row.Scan(&t.ID, &t.CreatedAt); err != nil {
		return dbError("creating task", err)
	}
	return nil
}

func (tr *TasksRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Task, error) {
	row := tr.conn.QueryRow(ctx, `SELECT id, owner_id, title, description, due_date, is_completed, is_important, created_at
		FROM tasks WHERE id = $1;`, id)
	t, err := scanTask(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrTaskNotFound
		}
		return nil, dbError("getting task by id", err)
	}
	return t, nil
}

func (tr *TasksRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]entity.Task, error) {
	rows, err := tr.conn.Query(ctx, `SELECT id, owner_id, title, description, due_date, is_completed, is_important, created_at
		FROM tasks WHERE owner_id = $1 ORDER BY created_at DESC, id;`, ownerID)
	if err != nil {
		return nil, dbError("listing tasks", err)
	}
	defer rows.Close()
	tasks := make([]entity.Task, 0)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, dbError("unmarshalling task", err)
		}
		tasks = append(tasks, *t)
	}
	if err = rows.Err(); err != nil {
		return nil, dbError("iterating tasks", err)
	}
	return tasks, nil
}

// Update writes only the fields set in patch, in one statement, so
// concurrent patches of different fields do not overwrite each other.
// A task of another owner is reported as not found.
func (tr *TasksRepository) Update(ctx context.Context, id, ownerID uuid.UUID, patch entity.TaskPatch) (*entity.Task, error) {
	row := tr.conn.QueryRow(ctx, `UPDATE tasks SET
		title = COALESCE($3, title),
		description = COALESCE($4, description),
		due_date = CASE WHEN $5::boolean THEN NULL ELSE COALESCE($6, due_date) END,
		is_completed = COALESCE($7, is_completed),
		is_important = COALESCE($8, is_important)
		WHERE id = $1 AND owner_id = $2
		RETURNING id, owner_id, title, description, due_date, is_completed, is_important, created_at;`,
		id,
		ownerID,
		patch.Title,
		patch.Description,
		patch.ClearDueDate,
		patch.DueDate,
		patch.IsCompleted,
		patch.IsImportant,
	)
	t, err := scanTask(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrTaskNotFound
		}
		return nil, dbError("updating task", err)
	}
	return t, nil
}

func (tr *TasksRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := tr.conn.Exec(ctx, `DELETE FROM tasks WHERE id = $1;`, id)
	if err != nil {
		return dbError("deleting task", err)
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrTaskNotFound
	}
	return nil
}

func scanTask(row pgx.Row) (*entity.Task, error) {
	var t entity.Task
	err := row.Scan(&t.ID, &t.OwnerID, &t.Title, &t.Description, &t.DueDate, &t.IsCompleted, &t.IsImportant, &t.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
