package repository

import (
	"context"
	"time"

	"github.com/dailyforge/dailyforge-api/internal/domain/entity"
)

// HabitRepository scopes every operation by the owning user. Completion
// rows are unique per (habit, date).
type HabitRepository interface {
	List(ctx context.Context, userID string) ([]entity.Habit, error)
	Get(ctx context.Context, id, userID string) (*entity.Habit, error)
	Create(ctx context.Context, h *entity.Habit) error
	Update(ctx context.Context, id, userID string, patch entity.HabitPatch) (*entity.Habit, error)
	Delete(ctx context.Context, id, userID string) error

	ListCompletions(ctx context.Context, habitID string) ([]entity.HabitCompletion, error)
	GetCompletionByDate(ctx context.Context, habitID string, day time.Time) (*entity.HabitCompletion, error)
	CreateCompletion(ctx context.Context, c *entity.HabitCompletion) error
	DeleteCompletion(ctx context.Context, id string) error

	// LatestName returns the most recently updated habit's name, feeding
	// suggestion context. Not-found when the user has no habits.
	LatestName(ctx context.Context, userID string) (string, error)
}
