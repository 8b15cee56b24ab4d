package repository

import (
	"context"
	"time"

	"github.com/dailyforge/dailyforge-api/internal/domain/entity"
)

// TaskRepository scopes every operation by the owning user.
type TaskRepository interface {
	List(ctx context.Context, userID string) ([]entity.Task, error)
	Get(ctx context.Context, id, userID string) (*entity.Task, error)
	Create(ctx context.Context, t *entity.Task) error
	Update(ctx context.Context, id, userID string, patch entity.TaskPatch) (*entity.Task, error)
	Delete(ctx context.Context, id, userID string) error

	// Counters feeding suggestion context.
	CountOverdue(ctx context.Context, userID string, today time.Time) (int, error)
	CountDueOn(ctx context.Context, userID string, day time.Time) (int, error)
}
