package entity

import "time"

// Task is a user-owned todo item. Deadline is a calendar date, not a
// timestamp; it is carried as YYYY-MM-DD at the API boundary.
type Task struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Deadline    *Date     `json:"deadline"`
	Category    *string   `json:"category"`
	IsCompleted bool      `json:"is_completed"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TaskPatch carries the fields of a partial update; nil means "leave as
// is". Pointers to empty strings clear nullable columns.
type TaskPatch struct {
	Title       *string
	Description *string
	Deadline    *string // YYYY-MM-DD, empty clears
	Category    *string
	IsCompleted *bool
}

func (p TaskPatch) Empty() bool {
	return p.Title == nil && p.Description == nil && p.Deadline == nil &&
		p.Category == nil && p.IsCompleted == nil
}
