package application

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/dailyforge/dailyforge-api/internal/domain/entity"
	"github.com/dailyforge/dailyforge-api/internal/domain/repository"
)

type fakeHabitRepo struct {
	mu          sync.Mutex
	habits      map[string]*entity.Habit
	completions map[string]*entity.HabitCompletion
	next        int
}

func newFakeHabitRepo() *fakeHabitRepo {
	return &fakeHabitRepo{
		habits:      make(map[string]*entity.Habit),
		completions: make(map[string]*entity.HabitCompletion),
	}
}

func (r *fakeHabitRepo) List(_ context.Context, userID string) ([]entity.Habit, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []entity.Habit{}
	for _, h := range r.habits {
		if h.UserID == userID {
			out = append(out, *h)
		}
	}
	return out, nil
}

func (r *fakeHabitRepo) Get(_ context.Context, id, userID string) (*entity.Habit, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	h, ok := r.habits[id]
	if !ok || h.UserID != userID {
		return nil, repository.ErrNotFound
	}
	cp := *h
	return &cp, nil
}

func (r *fakeHabitRepo) Create(_ context.Context, h *entity.Habit) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.next++
	h.ID = fmt.Sprintf("habit-%d", r.next)
	cp := *h
	r.habits[h.ID] = &cp
	return nil
}

func (r *fakeHabitRepo) Update(_ context.Context, id, userID string, patch entity.HabitPatch) (*entity.Habit, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	h, ok := r.habits[id]
	if !ok || h.UserID != userID {
		return nil, repository.ErrNotFound
	}
	if patch.Name != nil {
		h.Name = *patch.Name
	}
	cp := *h
	return &cp, nil
}

func (r *fakeHabitRepo) Delete(_ context.Context, id, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	h, ok := r.habits[id]
	if !ok || h.UserID != userID {
		return repository.ErrNotFound
	}
	delete(r.habits, id)
	return nil
}

func (r *fakeHabitRepo) ListCompletions(_ context.Context, habitID string) ([]entity.HabitCompletion, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []entity.HabitCompletion{}
	for _, c := range r.completions {
		if c.HabitID == habitID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *fakeHabitRepo) GetCompletionByDate(_ context.Context, habitID string, day time.Time) (*entity.HabitCompletion, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.completions {
		if c.HabitID == habitID && c.Date.String() == entity.NewDate(day).String() {
			cp := *c
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeHabitRepo) CreateCompletion(_ context.Context, c *entity.HabitCompletion) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.completions {
		if existing.HabitID == c.HabitID && existing.Date.String() == c.Date.String() {
			return repository.ErrConflict
		}
	}
	r.next++
	c.ID = fmt.Sprintf("completion-%d", r.next)
	cp := *c
	r.completions[c.ID] = &cp
	return nil
}

func (r *fakeHabitRepo) DeleteCompletion(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.completions[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.completions, id)
	return nil
}

func (r *fakeHabitRepo) LatestName(_ context.Context, userID string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, h := range r.habits {
		if h.UserID == userID {
			return h.Name, nil
		}
	}
	return "", repository.ErrNotFound
}

func TestToggleCompletion_FlipsState(t *testing.T) {
	t.Parallel()

	repo := newFakeHabitRepo()
	svc := NewHabitService(repo)
	ctx := context.Background()

	h := &entity.Habit{UserID: "u1", Name: "Morning run", Frequency: entity.FrequencyDaily}
	if err := svc.Create(ctx, h); err != nil {
		t.Fatalf("Create error: %v", err)
	}

	day := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)

	res, err := svc.ToggleCompletion(ctx, h.ID, "u1", day, nil)
	if err != nil {
		t.Fatalf("first toggle error: %v", err)
	}
	if !res.Completed || !res.Created || res.Completion == nil {
		t.Fatalf("expected created completion, got %+v", res)
	}

	res, err = svc.ToggleCompletion(ctx, h.ID, "u1", day, nil)
	if err != nil {
		t.Fatalf("second toggle error: %v", err)
	}
	if res.Completed || res.Created {
		t.Fatalf("expected completion removed, got %+v", res)
	}

	if got, _ := repo.ListCompletions(ctx, h.ID); len(got) != 0 {
		t.Fatalf("expected no completions after second toggle, got %d", len(got))
	}
}

func TestToggleCompletion_ForeignHabitIsNotFound(t *testing.T) {
	t.Parallel()

	repo := newFakeHabitRepo()
	svc := NewHabitService(repo)
	ctx := context.Background()

	h := &entity.Habit{UserID: "owner", Name: "Read", Frequency: entity.FrequencyDaily}
	if err := svc.Create(ctx, h); err != nil {
		t.Fatalf("Create error: %v", err)
	}

	day := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	_, err := svc.ToggleCompletion(ctx, h.ID, "intruder", day, nil)
	if !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for foreign habit, got %v", err)
	}
}

func TestHabitGet_LoadsCompletions(t *testing.T) {
	t.Parallel()

	repo := newFakeHabitRepo()
	svc := NewHabitService(repo)
	ctx := context.Background()

	h := &entity.Habit{UserID: "u1", Name: "Stretch", Frequency: entity.FrequencyDaily}
	if err := svc.Create(ctx, h); err != nil {
		t.Fatalf("Create error: %v", err)
	}
	day := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
	if _, err := svc.ToggleCompletion(ctx, h.ID, "u1", day, nil); err != nil {
		t.Fatalf("toggle error: %v", err)
	}

	got, err := svc.Get(ctx, h.ID, "u1")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if len(got.Completions) != 1 {
		t.Fatalf("expected 1 completion, got %d", len(got.Completions))
	}
}
