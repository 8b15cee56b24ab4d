package application

import (
	"context"
	"errors"
	"time"

	"github.com/dailyforge/dailyforge-api/internal/domain/entity"
	"github.com/dailyforge/dailyforge-api/internal/domain/repository"
)

// ToggleResult reports whether the toggle left the habit completed for the
// day, and carries the completion row when one was created.
type ToggleResult struct {
	Completed  bool                    `json:"completed"`
	Completion *entity.HabitCompletion `json:"completion,omitempty"`
	Created    bool                    `json:"-"`
}

type HabitService struct {
	habits repository.HabitRepository
}

func NewHabitService(habits repository.HabitRepository) *HabitService {
	return &HabitService{habits: habits}
}

func (s *HabitService) List(ctx context.Context, userID string) ([]entity.Habit, error) {
	return s.habits.List(ctx, userID)
}

// Get loads a habit together with its completion history, newest first.
func (s *HabitService) Get(ctx context.Context, id, userID string) (*entity.Habit, error) {
	h, err := s.habits.Get(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	completions, err := s.habits.ListCompletions(ctx, h.ID)
	if err != nil {
		return nil, err
	}
	h.Completions = completions
	return h, nil
}

func (s *HabitService) Create(ctx context.Context, h *entity.Habit) error {
	return s.habits.Create(ctx, h)
}

func (s *HabitService) Update(ctx context.Context, id, userID string, patch entity.HabitPatch) (*entity.Habit, error) {
	return s.habits.Update(ctx, id, userID, patch)
}

func (s *HabitService) Delete(ctx context.Context, id, userID string) error {
	return s.habits.Delete(ctx, id, userID)
}

// ToggleCompletion flips the habit's completed state for one calendar day.
// An existing row is removed; a missing one is created. The ownership check
// runs first so a foreign habit is a plain not-found.
func (s *HabitService) ToggleCompletion(ctx context.Context, habitID, userID string, day time.Time, notes *string) (*ToggleResult, error) {
	if _, err := s.habits.Get(ctx, habitID, userID); err != nil {
		return nil, err
	}

	existing, err := s.habits.GetCompletionByDate(ctx, habitID, day)
	if err == nil {
		if err := s.habits.DeleteCompletion(ctx, existing.ID); err != nil && !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		return &ToggleResult{Completed: false}, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	c := &entity.HabitCompletion{
		HabitID: habitID,
		UserID:  userID,
		Date:    entity.NewDate(day),
		Notes:   notes,
	}
	if err := s.habits.CreateCompletion(ctx, c); err != nil {
		return nil, err
	}
	return &ToggleResult{Completed: true, Completion: c, Created: true}, nil
}
