package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dailyforge/dailyforge-api/internal/domain/entity"
	"github.com/dailyforge/dailyforge-api/internal/domain/repository"
)

const taskColumns = "id, user_id, title, description, deadline, category, is_completed, created_at, updated_at"

type TaskRepository struct {
	pool *pgxpool.Pool
}

func NewTaskRepository(pool *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{pool: pool}
}

func scanTask(row pgx.Row) (*entity.Task, error) {
	t := &entity.Task{}
	if err := row.Scan(&t.ID, &t.UserID, &t.Title, &t.Description, &t.Deadline,
		&t.Category, &t.IsCompleted, &t.CreatedAt, &t.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

func (r *TaskRepository) List(ctx context.Context, userID string) ([]entity.Task, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+taskColumns+`
		FROM tasks
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]entity.Task, 0)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *t)
	}
	return out, rows.Err()
}

func (r *TaskRepository) Get(ctx context.Context, id, userID string) (*entity.Task, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+taskColumns+`
		FROM tasks
		WHERE id = $1 AND user_id = $2
	`, id, userID)
	return scanTask(row)
}

func (r *TaskRepository) Create(ctx context.Context, t *entity.Task) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO tasks (user_id, title, description, deadline, category, is_completed)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`, t.UserID, t.Title, t.Description, t.Deadline, t.Category, t.IsCompleted)
	return row.Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
}

// Update applies only the provided patch fields. The WHERE clause carries
// both id and user_id; zero rows affected reads as not-found regardless of
// whether the task is missing or owned by someone else.
func (r *TaskRepository) Update(ctx context.Context, id, userID string, patch entity.TaskPatch) (*entity.Task, error) {
	b := &updateBuilder{}
	if patch.Title != nil {
		b.Set("title", *patch.Title)
	}
	if patch.Description != nil {
		b.Set("description", nullIfEmpty(*patch.Description))
	}
	if patch.Deadline != nil {
		if *patch.Deadline == "" {
			b.Set("deadline", nil)
		} else {
			d, err := entity.ParseDate(*patch.Deadline)
			if err != nil {
				return nil, fmt.Errorf("parse deadline: %w", err)
			}
			b.Set("deadline", d)
		}
	}
	if patch.Category != nil {
		b.Set("category", nullIfEmpty(*patch.Category))
	}
	if patch.IsCompleted != nil {
		b.Set("is_completed", *patch.IsCompleted)
	}
	if b.Empty() {
		return nil, repository.ErrNotFound
	}
	b.Set("updated_at", time.Now())

	query := fmt.Sprintf(`
		UPDATE tasks SET %s
		WHERE id = %s AND user_id = %s
		RETURNING `+taskColumns,
		b.SetClause(), b.Arg(id), b.Arg(userID))
	return scanTask(r.pool.QueryRow(ctx, query, b.args...))
}

func (r *TaskRepository) Delete(ctx context.Context, id, userID string) error {
	res, err := r.pool.Exec(ctx, `
		DELETE FROM tasks WHERE id = $1 AND user_id = $2
	`, id, userID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *TaskRepository) CountOverdue(ctx context.Context, userID string, today time.Time) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM tasks
		WHERE user_id = $1 AND is_completed = FALSE AND deadline < $2
	`, userID, today).Scan(&n)
	return n, err
}

func (r *TaskRepository) CountDueOn(ctx context.Context, userID string, day time.Time) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM tasks
		WHERE user_id = $1 AND is_completed = FALSE AND deadline = $2
	`, userID, day).Scan(&n)
	return n, err
}

var _ repository.TaskRepository = (*TaskRepository)(nil)
