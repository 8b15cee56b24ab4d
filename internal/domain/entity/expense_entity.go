package entity

import "time"

// Expense is a single spend record. Amount is positive; Date is the day
// the money was spent, carried as YYYY-MM-DD at the API boundary.
type Expense struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Category    string    `json:"category"`
	Date        Date      `json:"date"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ExpensePatch carries the fields of a partial update; nil means "leave
// as is".
type ExpensePatch struct {
	Description *string
	Amount      *float64
	Category    *string
	Date        *string // YYYY-MM-DD
}

func (p ExpensePatch) Empty() bool {
	return p.Description == nil && p.Amount == nil && p.Category == nil && p.Date == nil
}

// CategoryTotal is one row of the per-category expense summary.
type CategoryTotal struct {
	Category    string  `json:"category"`
	TotalAmount float64 `json:"total_amount"`
}
