package application

import (
	"context"

	"github.com/dailyforge/dailyforge-api/internal/domain/entity"
	"github.com/dailyforge/dailyforge-api/internal/domain/repository"
)

// ExpenseSummary is the aggregate view returned by the summary endpoint.
type ExpenseSummary struct {
	Summary    []entity.CategoryTotal `json:"summary"`
	GrandTotal float64                `json:"grand_total"`
}

type ExpenseService struct {
	expenses repository.ExpenseRepository
}

func NewExpenseService(expenses repository.ExpenseRepository) *ExpenseService {
	return &ExpenseService{expenses: expenses}
}

func (s *ExpenseService) List(ctx context.Context, userID string) ([]entity.Expense, error) {
	return s.expenses.List(ctx, userID)
}

func (s *ExpenseService) Get(ctx context.Context, id, userID string) (*entity.Expense, error) {
	return s.expenses.Get(ctx, id, userID)
}

func (s *ExpenseService) Create(ctx context.Context, e *entity.Expense) error {
	return s.expenses.Create(ctx, e)
}

func (s *ExpenseService) Update(ctx context.Context, id, userID string, patch entity.ExpensePatch) (*entity.Expense, error) {
	return s.expenses.Update(ctx, id, userID, patch)
}

func (s *ExpenseService) Delete(ctx context.Context, id, userID string) error {
	return s.expenses.Delete(ctx, id, userID)
}

func (s *ExpenseService) Summary(ctx context.Context, userID string) (*ExpenseSummary, error) {
	rows, total, err := s.expenses.Summary(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &ExpenseSummary{Summary: rows, GrandTotal: total}, nil
}
