package entity

import "time"

// Habit frequencies accepted by the API.
const (
	FrequencyDaily   = "daily"
	FrequencyWeekly  = "weekly"
	FrequencyMonthly = "monthly"
)

// Habit is a recurring practice the user tracks. Completions are loaded
// only on single-habit reads.
type Habit struct {
	ID          string            `json:"id"`
	UserID      string            `json:"user_id"`
	Name        string            `json:"name"`
	Description *string           `json:"description"`
	Frequency   string            `json:"frequency"`
	Goal        *string           `json:"goal"`
	Color       *string           `json:"color"`
	Icon        *string           `json:"icon"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
	Completions []HabitCompletion `json:"completions"`
}

// HabitCompletion marks a habit done on one calendar date; at most one row
// per (habit, date).
type HabitCompletion struct {
	ID        string    `json:"id"`
	HabitID   string    `json:"habit_id"`
	UserID    string    `json:"user_id"`
	Date      Date      `json:"date"`
	Notes     *string   `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
}

// HabitPatch carries the fields of a partial update; nil means "leave as
// is".
type HabitPatch struct {
	Name        *string
	Description *string
	Frequency   *string
	Goal        *string
	Color       *string
	Icon        *string
}

func (p HabitPatch) Empty() bool {
	return p.Name == nil && p.Description == nil && p.Frequency == nil &&
		p.Goal == nil && p.Color == nil && p.Icon == nil
}
