package repository

import (
	"context"
	"time"

	"github.com/dailyforge/dailyforge-api/internal/domain/entity"
)

// ExpenseRepository scopes every operation by the owning user.
type ExpenseRepository interface {
	List(ctx context.Context, userID string) ([]entity.Expense, error)
	Get(ctx context.Context, id, userID string) (*entity.Expense, error)
	Create(ctx context.Context, e *entity.Expense) error
	Update(ctx context.Context, id, userID string, patch entity.ExpensePatch) (*entity.Expense, error)
	Delete(ctx context.Context, id, userID string) error

	// Summary returns per-category totals ordered by total descending,
	// plus the grand total across all categories.
	Summary(ctx context.Context, userID string) ([]entity.CategoryTotal, float64, error)
	// TotalBetween sums spend over [from, to] inclusive.
	TotalBetween(ctx context.Context, userID string, from, to time.Time) (float64, error)
}
