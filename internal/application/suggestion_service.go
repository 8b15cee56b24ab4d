package application

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/dailyforge/dailyforge-api/internal/ai"
	"github.com/dailyforge/dailyforge-api/internal/domain/repository"
	"github.com/dailyforge/dailyforge-api/pkg/helpers"
)

// Suggestion types the prompt builder knows; unknown types fall through to
// a generic motivational prompt.
const (
	SuggestionGeneralGreeting = "general_greeting"
	SuggestionTaskTip         = "task_tip"
	SuggestionExpenseInsight  = "expense_insight"
	SuggestionHabitMotivation = "habit_motivation"
	SuggestionDailySummary    = "daily_summary_prompt"
)

// SuggestionEvent carries the optional client-side trigger context: what the
// user just did, so the reply can reference it.
type SuggestionEvent struct {
	ItemName          string  `json:"item_name,omitempty"`
	ItemValue         string  `json:"item_value,omitempty"`
	ItemCategory      string  `json:"item_category,omitempty"`
	Action            string  `json:"action,omitempty"` // added, completed, created, threshold_reached, streak_update, repeated_category_expense
	Count             int     `json:"count,omitempty"`
	Currency          string  `json:"currency,omitempty"`
	ExpenseAmount     float64 `json:"expense_amount,omitempty"`
	HabitStreakLength int     `json:"habit_streak_length,omitempty"`
}

func (e *SuggestionEvent) empty() bool {
	return e == nil || *e == SuggestionEvent{}
}

// Suggestion is the reply returned to the client.
type Suggestion struct {
	MessageType        string `json:"message_type"`
	Text               string `json:"text"`
	SuggestionCategory string `json:"suggestion_category"`
}

const suggestionCacheTTL = 5 * time.Minute

// SuggestionService assembles personalized context from the user's data,
// picks a prompt per suggestion type and asks Gemini for a short reply.
// Replies to event-free requests are cached per (user, type) for a few
// minutes to keep repeated greetings off the model.
type SuggestionService struct {
	tasks    repository.TaskRepository
	expenses repository.ExpenseRepository
	habits   repository.HabitRepository
	gemini   *ai.GeminiClient
	rdb      *redis.Client // nil disables caching
	log      *logrus.Logger
}

func NewSuggestionService(
	tasks repository.TaskRepository,
	expenses repository.ExpenseRepository,
	habits repository.HabitRepository,
	gemini *ai.GeminiClient,
	rdb *redis.Client,
	log *logrus.Logger,
) *SuggestionService {
	return &SuggestionService{
		tasks:    tasks,
		expenses: expenses,
		habits:   habits,
		gemini:   gemini,
		rdb:      rdb,
		log:      log,
	}
}

// Suggest returns a short generated message for the given type. Context
// lookups are best effort, a failed counter never fails the request.
func (s *SuggestionService) Suggest(ctx context.Context, userID, username, suggestionType string, event *SuggestionEvent) (*Suggestion, error) {
	cacheKey := fmt.Sprintf("suggestion:%s:%s", userID, suggestionType)
	if s.rdb != nil && event.empty() {
		var cached Suggestion
		if ok, err := helpers.RedisGetJSON(ctx, s.rdb, cacheKey, &cached); err == nil && ok {
			return &cached, nil
		}
	}

	userContext := s.buildContext(ctx, userID, username, suggestionType, event)
	prompt := buildPrompt(suggestionType, userContext, event)

	text, err := s.gemini.Generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	out := &Suggestion{
		MessageType:        "ai_suggestion",
		Text:               strings.TrimSpace(text),
		SuggestionCategory: suggestionType,
	}
	if s.rdb != nil && event.empty() {
		if err := helpers.RedisSetJSON(ctx, s.rdb, cacheKey, out, suggestionCacheTTL); err != nil {
			s.log.WithError(err).Debug("failed to cache suggestion")
		}
	}
	return out, nil
}

func (s *SuggestionService) buildContext(ctx context.Context, userID, username, suggestionType string, event *SuggestionEvent) string {
	parts := make([]string, 0, 8)
	if username == "" {
		username = "Valued User"
	}
	parts = append(parts, fmt.Sprintf("User: %s.", username))
	now := time.Now()
	parts = append(parts, fmt.Sprintf("Today is %s.", now.Format("Monday, January 2, 2006")))

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	overdue, err := s.tasks.CountOverdue(ctx, userID, today)
	if err != nil {
		s.log.WithError(err).Debug("failed to count overdue tasks for suggestion context")
	} else if overdue > 0 {
		parts = append(parts, fmt.Sprintf("They have %d overdue %s.", overdue, plural("task", overdue)))
	}

	dueToday, err := s.tasks.CountDueOn(ctx, userID, today)
	if err != nil {
		s.log.WithError(err).Debug("failed to count due-today tasks for suggestion context")
	} else if dueToday > 0 {
		parts = append(parts, fmt.Sprintf("They also have %d %s due today.", dueToday, plural("task", dueToday)))
	} else if overdue == 0 && (event == nil || event.Action != "completed") {
		parts = append(parts, "They have no tasks immediately due or overdue.")
	}

	if event != nil && event.Action == "completed" && event.ItemName != "" {
		parts = append(parts, fmt.Sprintf("They just completed the task: %q.", event.ItemName))
	} else if event != nil && event.Action == "added" && event.ItemName != "" && suggestionType == SuggestionTaskTip {
		parts = append(parts, fmt.Sprintf("They just added a new task: %q.", event.ItemName))
	}

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, -1)
	monthlyTotal, err := s.expenses.TotalBetween(ctx, userID, monthStart, monthEnd)
	if err != nil {
		s.log.WithError(err).Debug("failed to sum monthly spend for suggestion context")
	} else if monthlyTotal > 0 {
		currency := "$"
		if event != nil && event.Currency != "" {
			currency = event.Currency
		}
		parts = append(parts, fmt.Sprintf("This month, they have spent %s%.2f so far.", currency, monthlyTotal))
	}

	if suggestionType == SuggestionExpenseInsight && event != nil {
		switch event.Action {
		case "added":
			if event.ItemCategory != "" && event.ItemValue != "" {
				parts = append(parts, fmt.Sprintf("They just added an expense of %s for %q.", event.ItemValue, event.ItemCategory))
			}
		case "threshold_reached":
			if event.ItemCategory != "" && event.ExpenseAmount > 0 && event.Currency != "" {
				parts = append(parts, fmt.Sprintf("They just logged a significant expense of %s%.2f for %q.", event.Currency, event.ExpenseAmount, event.ItemCategory))
			}
		case "repeated_category_expense":
			if event.ItemCategory != "" && event.Count > 0 {
				parts = append(parts, fmt.Sprintf("They have logged expenses for %q %d times today.", event.ItemCategory, event.Count))
			}
		}
	}

	if suggestionType == SuggestionHabitMotivation {
		switch {
		case event != nil && event.Action == "created" && event.ItemName != "":
			parts = append(parts, fmt.Sprintf("They just created a new habit: %q.", event.ItemName))
		case event != nil && event.Action == "streak_update" && event.ItemName != "" && event.HabitStreakLength > 0:
			parts = append(parts, fmt.Sprintf("They are now on a %d-day streak for their habit: %q.", event.HabitStreakLength, event.ItemName))
		case event == nil || event.Action == "":
			name, err := s.habits.LatestName(ctx, userID)
			if err == nil && name != "" {
				parts = append(parts, fmt.Sprintf("One of their habits is %q.", name))
			}
		}
	}

	return strings.Join(parts, " ")
}

func buildPrompt(suggestionType, userContext string, event *SuggestionEvent) string {
	switch suggestionType {
	case SuggestionGeneralGreeting:
		return fmt.Sprintf("Based on this context: %q. Generate a very short, friendly, and positive greeting or an insightful thought for the user (1-2 sentences max). Be encouraging.", userContext)
	case SuggestionTaskTip:
		if event != nil && event.Action == "added" && event.ItemName != "" {
			return fmt.Sprintf("Context: %q. The user just added a new task: %q. Offer a brief, encouraging tip about starting new tasks or staying organized (1-2 sentences max).", userContext, event.ItemName)
		}
		if event != nil && event.Action == "completed" && event.ItemName != "" {
			return fmt.Sprintf("Context: %q. The user just completed a task: %q. Offer brief praise and a positive follow-up thought or tip (1-2 sentences max).", userContext, event.ItemName)
		}
		return fmt.Sprintf("Context: %q. Offer a concise, actionable, and empathetic productivity tip specifically related to managing tasks. If they have overdue tasks, acknowledge it gently and offer a tip for tackling them. If they have tasks due today, offer a tip for focus. If no tasks, a general productivity tip is fine (1-2 sentences max).", userContext)
	case SuggestionExpenseInsight:
		if event != nil && event.Action == "threshold_reached" && event.Currency != "" && event.ExpenseAmount > 0 && event.ItemCategory != "" {
			return fmt.Sprintf("Context: %q. The user just logged a significant expense: %s%.2f for %q. Offer a very brief, non-judgmental observation or a gentle tip about mindful spending (1-2 sentences max).", userContext, event.Currency, event.ExpenseAmount, event.ItemCategory)
		}
		if event != nil && event.Action == "repeated_category_expense" && event.ItemCategory != "" && event.Count > 0 {
			return fmt.Sprintf("Context: %q. The user has logged expenses for %q %d times today. Offer a brief, neutral observation or a gentle question about this pattern (1-2 sentences max). Avoid being accusatory.", userContext, event.ItemCategory, event.Count)
		}
		if event != nil && event.Action == "added" && event.ItemValue != "" && event.ItemCategory != "" {
			return fmt.Sprintf("Context: %q. The user just added an expense: %s for %q. Offer a brief, positive acknowledgement or a very general financial wellness tip (1-2 sentences max).", userContext, event.ItemValue, event.ItemCategory)
		}
		return fmt.Sprintf("Context: %q. Give a short, general, and positive tip about personal finance awareness or a small, encouraging insight about spending habits, avoiding judgment (1-2 sentences max). Do not lecture.", userContext)
	case SuggestionHabitMotivation:
		if event != nil && event.Action == "created" && event.ItemName != "" {
			return fmt.Sprintf("Context: %q. The user just created a new habit: %q. Offer a short, encouraging message about starting new habits (1-2 sentences max).", userContext, event.ItemName)
		}
		if event != nil && event.Action == "streak_update" && event.ItemName != "" && event.HabitStreakLength > 0 {
			return fmt.Sprintf("Context: %q. The user is now on a %d-day streak for their habit: %q. Provide a specific, positive, and motivational message celebrating this milestone (1-2 sentences max).", userContext, event.HabitStreakLength, event.ItemName)
		}
		return fmt.Sprintf("Context: %q. Provide a short, encouraging message about building or maintaining good habits (1-2 sentences max).", userContext)
	case SuggestionDailySummary:
		return fmt.Sprintf("Context: %q. Generate a single, engaging, and positive open-ended question to help the user reflect on their day's achievements or positive aspects, or to plan for a productive tomorrow (1 sentence max).", userContext)
	default:
		return fmt.Sprintf("Context: %q. Offer a general piece of wisdom, a light-hearted positive comment, or a very short motivational quote (1-2 sentences max).", userContext)
	}
}

func plural(word string, n int) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
