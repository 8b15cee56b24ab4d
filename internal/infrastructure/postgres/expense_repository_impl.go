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

const expenseColumns = "id, user_id, description, amount, category, date, created_at, updated_at"

type ExpenseRepository struct {
	pool *pgxpool.Pool
}

func NewExpenseRepository(pool *pgxpool.Pool) *ExpenseRepository {
	return &ExpenseRepository{pool: pool}
}

func scanExpense(row pgx.Row) (*entity.Expense, error) {
	e := &entity.Expense{}
	if err := row.Scan(&e.ID, &e.UserID, &e.Description, &e.Amount, &e.Category,
		&e.Date, &e.CreatedAt, &e.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *ExpenseRepository) List(ctx context.Context, userID string) ([]entity.Expense, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+expenseColumns+`
		FROM expenses
		WHERE user_id = $1
		ORDER BY date DESC, created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]entity.Expense, 0)
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *e)
	}
	return out, rows.Err()
}

func (r *ExpenseRepository) Get(ctx context.Context, id, userID string) (*entity.Expense, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+expenseColumns+`
		FROM expenses
		WHERE id = $1 AND user_id = $2
	`, id, userID)
	return scanExpense(row)
}

func (r *ExpenseRepository) Create(ctx context.Context, e *entity.Expense) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO expenses (user_id, description, amount, category, date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`, e.UserID, e.Description, e.Amount, e.Category, e.Date)
	return row.Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
}

func (r *ExpenseRepository) Update(ctx context.Context, id, userID string, patch entity.ExpensePatch) (*entity.Expense, error) {
	b := &updateBuilder{}
	if patch.Description != nil {
		b.Set("description", *patch.Description)
	}
	if patch.Amount != nil {
		b.Set("amount", *patch.Amount)
	}
	if patch.Category != nil {
		b.Set("category", *patch.Category)
	}
	if patch.Date != nil {
		d, err := entity.ParseDate(*patch.Date)
		if err != nil {
			return nil, fmt.Errorf("parse date: %w", err)
		}
		b.Set("date", d)
	}
	if b.Empty() {
		return nil, repository.ErrNotFound
	}
	b.Set("updated_at", time.Now())

	query := fmt.Sprintf(`
		UPDATE expenses SET %s
		WHERE id = %s AND user_id = %s
		RETURNING `+expenseColumns,
		b.SetClause(), b.Arg(id), b.Arg(userID))
	return scanExpense(r.pool.QueryRow(ctx, query, b.args...))
}

func (r *ExpenseRepository) Delete(ctx context.Context, id, userID string) error {
	res, err := r.pool.Exec(ctx, `
		DELETE FROM expenses WHERE id = $1 AND user_id = $2
	`, id, userID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *ExpenseRepository) Summary(ctx context.Context, userID string) ([]entity.CategoryTotal, float64, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT category, SUM(amount) AS total_amount
		FROM expenses
		WHERE user_id = $1
		GROUP BY category
		ORDER BY total_amount DESC
	`, userID)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	summary := make([]entity.CategoryTotal, 0)
	for rows.Next() {
		var ct entity.CategoryTotal
		if err := rows.Scan(&ct.Category, &ct.TotalAmount); err != nil {
			return nil, 0, err
		}
		summary = append(summary, ct)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var grandTotal float64
	if err := r.pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(amount), 0) FROM expenses WHERE user_id = $1
	`, userID).Scan(&grandTotal); err != nil {
		return nil, 0, err
	}
	return summary, grandTotal, nil
}

func (r *ExpenseRepository) TotalBetween(ctx context.Context, userID string, from, to time.Time) (float64, error) {
	var total float64
	err := r.pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(amount), 0)
		FROM expenses
		WHERE user_id = $1 AND date BETWEEN $2 AND $3
	`, userID, from, to).Scan(&total)
	return total, err
}

var _ repository.ExpenseRepository = (*ExpenseRepository)(nil)
