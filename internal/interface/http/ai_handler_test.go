package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dailyforge/dailyforge-api/internal/ai"
	"github.com/dailyforge/dailyforge-api/internal/application"
	"github.com/dailyforge/dailyforge-api/internal/domain/entity"
	"github.com/dailyforge/dailyforge-api/internal/domain/repository"
)

type stubTaskRepo struct{}

func (stubTaskRepo) List(context.Context, string) ([]entity.Task, error) { return nil, nil }
func (stubTaskRepo) Get(context.Context, string, string) (*entity.Task, error) {
	return nil, repository.ErrNotFound
}
func (stubTaskRepo) Create(context.Context, *entity.Task) error { return nil }
func (stubTaskRepo) Update(context.Context, string, string, entity.TaskPatch) (*entity.Task, error) {
	return nil, repository.ErrNotFound
}
func (stubTaskRepo) Delete(context.Context, string, string) error { return nil }
func (stubTaskRepo) CountOverdue(context.Context, string, time.Time) (int, error) {
	return 2, nil
}
func (stubTaskRepo) CountDueOn(context.Context, string, time.Time) (int, error) {
	return 1, nil
}

type stubExpenseRepo struct{}

func (stubExpenseRepo) List(context.Context, string) ([]entity.Expense, error) { return nil, nil }
func (stubExpenseRepo) Get(context.Context, string, string) (*entity.Expense, error) {
	return nil, repository.ErrNotFound
}
func (stubExpenseRepo) Create(context.Context, *entity.Expense) error { return nil }
func (stubExpenseRepo) Update(context.Context, string, string, entity.ExpensePatch) (*entity.Expense, error) {
	return nil, repository.ErrNotFound
}
func (stubExpenseRepo) Delete(context.Context, string, string) error { return nil }
func (stubExpenseRepo) Summary(context.Context, string) ([]entity.CategoryTotal, float64, error) {
	return nil, 0, nil
}
func (stubExpenseRepo) TotalBetween(context.Context, string, time.Time, time.Time) (float64, error) {
	return 42.50, nil
}

type stubHabitRepo struct{}

func (stubHabitRepo) List(context.Context, string) ([]entity.Habit, error) { return nil, nil }
func (stubHabitRepo) Get(context.Context, string, string) (*entity.Habit, error) {
	return nil, repository.ErrNotFound
}
func (stubHabitRepo) Create(context.Context, *entity.Habit) error { return nil }
func (stubHabitRepo) Update(context.Context, string, string, entity.HabitPatch) (*entity.Habit, error) {
	return nil, repository.ErrNotFound
}
func (stubHabitRepo) Delete(context.Context, string, string) error { return nil }
func (stubHabitRepo) ListCompletions(context.Context, string) ([]entity.HabitCompletion, error) {
	return nil, nil
}
func (stubHabitRepo) GetCompletionByDate(context.Context, string, time.Time) (*entity.HabitCompletion, error) {
	return nil, repository.ErrNotFound
}
func (stubHabitRepo) CreateCompletion(context.Context, *entity.HabitCompletion) error { return nil }
func (stubHabitRepo) DeleteCompletion(context.Context, string) error                  { return nil }
func (stubHabitRepo) LatestName(context.Context, string) (string, error) {
	return "Morning run", nil
}

func TestAISuggestion_UnavailableIs503(t *testing.T) {
	t.Parallel()

	// An empty API key makes the client report unavailable without a
	// network call.
	gemini := ai.NewGeminiClient("", "gemini-2.0-flash")
	svc := application.NewSuggestionService(stubTaskRepo{}, stubExpenseRepo{}, stubHabitRepo{}, gemini, nil, testLogger())
	h := NewAIHandler(svc, testLogger())

	r := gin.New()
	r.POST("/api/ai/suggestion", func(c *gin.Context) {
		c.Set("userID", "u1")
		c.Set("username", "alex")
		h.Suggest(c)
	})

	w := doJSON(t, r, http.MethodPost, "/api/ai/suggestion", "", gin.H{
		"suggestion_type": "general_greeting",
	})
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d: %s", w.Code, w.Body.String())
	}
}

func TestAISuggestion_MissingType400(t *testing.T) {
	t.Parallel()

	gemini := ai.NewGeminiClient("", "gemini-2.0-flash")
	svc := application.NewSuggestionService(stubTaskRepo{}, stubExpenseRepo{}, stubHabitRepo{}, gemini, nil, testLogger())
	h := NewAIHandler(svc, testLogger())

	r := gin.New()
	r.POST("/api/ai/suggestion", h.Suggest)

	w := doJSON(t, r, http.MethodPost, "/api/ai/suggestion", "", gin.H{})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}
