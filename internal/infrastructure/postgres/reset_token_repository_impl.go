package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dailyforge/dailyforge-api/internal/domain/entity"
	"github.com/dailyforge/dailyforge-api/internal/domain/repository"
)

type ResetTokenRepository struct {
	pool *pgxpool.Pool
}

func NewResetTokenRepository(pool *pgxpool.Pool) *ResetTokenRepository {
	return &ResetTokenRepository{pool: pool}
}

// Replace keeps the one-live-token-per-user invariant with a delete then
// an insert. The two statements are individually atomic; a crash between
// them loses this request but can never leave two valid tokens behind.
func (r *ResetTokenRepository) Replace(ctx context.Context, userID, tokenHash string, expiresAt time.Time) error {
	if _, err := r.pool.Exec(ctx, `
		DELETE FROM password_reset_tokens WHERE user_id = $1
	`, userID); err != nil {
		return err
	}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO password_reset_tokens (user_id, token_hash, expires_at)
		VALUES ($1, $2, $3)
	`, userID, tokenHash, expiresAt)
	return err
}

func (r *ResetTokenRepository) ListActive(ctx context.Context, now time.Time) ([]entity.PasswordResetToken, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, token_hash, expires_at, created_at
		FROM password_reset_tokens
		WHERE expires_at > $1
	`, now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []entity.PasswordResetToken
	for rows.Next() {
		var t entity.PasswordResetToken
		if err := rows.Scan(&t.ID, &t.UserID, &t.TokenHash, &t.ExpiresAt, &t.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *ResetTokenRepository) Delete(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, `
		DELETE FROM password_reset_tokens WHERE id = $1
	`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.ResetTokenRepository = (*ResetTokenRepository)(nil)
