package repository

import (
	"context"
	"time"

	"github.com/dailyforge/dailyforge-api/internal/domain/entity"
)

// ResetTokenRepository is the ledger of outstanding password reset tokens.
type ResetTokenRepository interface {
	// Replace removes any existing token rows for the user and stores the
	// new digest, keeping at most one live token per user.
	Replace(ctx context.Context, userID, tokenHash string, expiresAt time.Time) error
	// ListActive returns every row with expires_at after now. Expired rows
	// are filtered out here, not purged.
	ListActive(ctx context.Context, now time.Time) ([]entity.PasswordResetToken, error)
	// Delete consumes a token row.
	Delete(ctx context.Context, id string) error
}
