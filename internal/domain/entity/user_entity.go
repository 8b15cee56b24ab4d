package entity

import "time"

// User is the aggregate root for the account domain.
// PasswordHash holds a bcrypt hash and never leaves the persistence layer
// through API responses.
type User struct {
	ID           string
	Email        string
	Username     string // optional, may be empty
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Public returns the JSON-safe projection of the user.
func (u *User) Public() map[string]any {
	var username any
	if u.Username != "" {
		username = u.Username
	}
	return map[string]any{
		"id":       u.ID,
		"email":    u.Email,
		"username": username,
	}
}
