package application

import (
	"context"
	"errors"

	"github.com/dailyforge/dailyforge-api/internal/domain/entity"
	"github.com/dailyforge/dailyforge-api/internal/domain/repository"
	"github.com/dailyforge/dailyforge-api/internal/search"
)

// TaskService wraps the repository with best-effort search indexing. All
// reads and writes are scoped by the authenticated user.
type TaskService struct {
	tasks   repository.TaskRepository
	indexer *search.TaskIndexer // nil when search is disabled
}

func NewTaskService(tasks repository.TaskRepository, indexer *search.TaskIndexer) *TaskService {
	return &TaskService{tasks: tasks, indexer: indexer}
}

func (s *TaskService) List(ctx context.Context, userID string) ([]entity.Task, error) {
	return s.tasks.List(ctx, userID)
}

func (s *TaskService) Get(ctx context.Context, id, userID string) (*entity.Task, error) {
	return s.tasks.Get(ctx, id, userID)
}

func (s *TaskService) Create(ctx context.Context, t *entity.Task) error {
	if err := s.tasks.Create(ctx, t); err != nil {
		return err
	}
	s.indexer.Index(ctx, t)
	return nil
}

func (s *TaskService) Update(ctx context.Context, id, userID string, patch entity.TaskPatch) (*entity.Task, error) {
	t, err := s.tasks.Update(ctx, id, userID, patch)
	if err != nil {
		return nil, err
	}
	s.indexer.Index(ctx, t)
	return t, nil
}

func (s *TaskService) Delete(ctx context.Context, id, userID string) error {
	if err := s.tasks.Delete(ctx, id, userID); err != nil {
		return err
	}
	s.indexer.Delete(ctx, id)
	return nil
}

// Search resolves matching IDs from the index, then loads the rows from
// Postgres so stale index entries never leak deleted tasks.
func (s *TaskService) Search(ctx context.Context, userID, query string) ([]entity.Task, error) {
	ids, err := s.indexer.Search(ctx, userID, query)
	if err != nil {
		return nil, err
	}
	out := make([]entity.Task, 0, len(ids))
	for _, id := range ids {
		t, err := s.tasks.Get(ctx, id, userID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				continue
			}
			return nil, err
		}
		out = append(out, *t)
	}
	return out, nil
}
