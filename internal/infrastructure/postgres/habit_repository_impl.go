package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dailyforge/dailyforge-api/internal/domain/entity"
	"github.com/dailyforge/dailyforge-api/internal/domain/repository"
)

const habitColumns = "id, user_id, name, description, frequency, goal, color, icon, created_at, updated_at"

type HabitRepository struct {
	pool *pgxpool.Pool
}

func NewHabitRepository(pool *pgxpool.Pool) *HabitRepository {
	return &HabitRepository{pool: pool}
}

func scanHabit(row pgx.Row) (*entity.Habit, error) {
	h := &entity.Habit{Completions: []entity.HabitCompletion{}}
	if err := row.Scan(&h.ID, &h.UserID, &h.Name, &h.Description, &h.Frequency,
		&h.Goal, &h.Color, &h.Icon, &h.CreatedAt, &h.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return h, nil
}

func (r *HabitRepository) List(ctx context.Context, userID string) ([]entity.Habit, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+habitColumns+`
		FROM habits
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]entity.Habit, 0)
	for rows.Next() {
		h, err := scanHabit(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *h)
	}
	return out, rows.Err()
}

func (r *HabitRepository) Get(ctx context.Context, id, userID string) (*entity.Habit, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+habitColumns+`
		FROM habits
		WHERE id = $1 AND user_id = $2
	`, id, userID)
	return scanHabit(row)
}

func (r *HabitRepository) Create(ctx context.Context, h *entity.Habit) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO habits (user_id, name, description, frequency, goal, color, icon)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`, h.UserID, h.Name, h.Description, h.Frequency, h.Goal, h.Color, h.Icon)
	return row.Scan(&h.ID, &h.CreatedAt, &h.UpdatedAt)
}

func (r *HabitRepository) Update(ctx context.Context, id, userID string, patch entity.HabitPatch) (*entity.Habit, error) {
	b := &updateBuilder{}
	if patch.Name != nil {
		b.Set("name", *patch.Name)
	}
	if patch.Description != nil {
		b.Set("description", nullIfEmpty(*patch.Description))
	}
	if patch.Frequency != nil {
		b.Set("frequency", *patch.Frequency)
	}
	if patch.Goal != nil {
		b.Set("goal", nullIfEmpty(*patch.Goal))
	}
	if patch.Color != nil {
		b.Set("color", nullIfEmpty(*patch.Color))
	}
	if patch.Icon != nil {
		b.Set("icon", nullIfEmpty(*patch.Icon))
	}
	if b.Empty() {
		return nil, repository.ErrNotFound
	}
	b.Set("updated_at", time.Now())

	query := fmt.Sprintf(`
		UPDATE habits SET %s
		WHERE id = %s AND user_id = %s
		RETURNING `+habitColumns,
		b.SetClause(), b.Arg(id), b.Arg(userID))
	return scanHabit(r.pool.QueryRow(ctx, query, b.args...))
}

func (r *HabitRepository) Delete(ctx context.Context, id, userID string) error {
	res, err := r.pool.Exec(ctx, `
		DELETE FROM habits WHERE id = $1 AND user_id = $2
	`, id, userID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *HabitRepository) ListCompletions(ctx context.Context, habitID string) ([]entity.HabitCompletion, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, habit_id, user_id, date, notes, created_at
		FROM habit_completions
		WHERE habit_id = $1
		ORDER BY date DESC
	`, habitID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]entity.HabitCompletion, 0)
	for rows.Next() {
		var c entity.HabitCompletion
		if err := rows.Scan(&c.ID, &c.HabitID, &c.UserID, &c.Date, &c.Notes, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *HabitRepository) GetCompletionByDate(ctx context.Context, habitID string, day time.Time) (*entity.HabitCompletion, error) {
	c := &entity.HabitCompletion{}
	row := r.pool.QueryRow(ctx, `
		SELECT id, habit_id, user_id, date, notes, created_at
		FROM habit_completions
		WHERE habit_id = $1 AND date = $2
	`, habitID, day)
	if err := row.Scan(&c.ID, &c.HabitID, &c.UserID, &c.Date, &c.Notes, &c.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (r *HabitRepository) CreateCompletion(ctx context.Context, c *entity.HabitCompletion) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO habit_completions (habit_id, user_id, date, notes)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, c.HabitID, c.UserID, c.Date, c.Notes)
	if err := row.Scan(&c.ID, &c.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return repository.ErrConflict
		}
		return err
	}
	return nil
}

func (r *HabitRepository) DeleteCompletion(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, `
		DELETE FROM habit_completions WHERE id = $1
	`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *HabitRepository) LatestName(ctx context.Context, userID string) (string, error) {
	var name string
	err := r.pool.QueryRow(ctx, `
		SELECT name FROM habits
		WHERE user_id = $1
		ORDER BY updated_at DESC
		LIMIT 1
	`, userID).Scan(&name)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", repository.ErrNotFound
	}
	return name, err
}

var _ repository.HabitRepository = (*HabitRepository)(nil)
