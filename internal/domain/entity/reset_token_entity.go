package entity

import "time"

// PasswordResetToken is one row of the reset-token ledger. TokenHash is a
// bcrypt digest of the random plaintext mailed to the user; the plaintext
// itself is never persisted. At most one live row exists per user.
type PasswordResetToken struct {
	ID        string
	UserID    string
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
}

func (t *PasswordResetToken) Expired(now time.Time) bool {
	return !t.ExpiresAt.After(now)
}
