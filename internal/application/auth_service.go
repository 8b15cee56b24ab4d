package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/dailyforge/dailyforge-api/internal/domain/entity"
	"github.com/dailyforge/dailyforge-api/internal/domain/repository"
	"github.com/dailyforge/dailyforge-api/pkg/helpers"
	"github.com/dailyforge/dailyforge-api/pkg/mailer"
)

// Sentinel errors the handlers translate to HTTP statuses.
var (
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrDuplicateEmail        = repository.ErrDuplicateEmail
	ErrWeakPassword          = errors.New("password must be at least 8 characters long")
	ErrInvalidOrExpiredToken = errors.New("invalid or expired reset token")
	ErrUserNotFound          = errors.New("user not found")
)

const passwordMinLength = 8

// EmailPublisher is the slice of the queue publisher the auth service needs.
type EmailPublisher interface {
	PublishJSON(ctx context.Context, body any) error
}

// AuthService implements registration, login and the password reset flow.
// Sessions are stateless JWTs; nothing about a login is persisted.
type AuthService struct {
	users     repository.UserRepository
	tokens    repository.ResetTokenRepository
	jwt       *helpers.JWTManager
	publisher EmailPublisher // nil when no broker is configured
	log       *logrus.Logger

	resetTokenTTL time.Duration
	resetURL      string
}

func NewAuthService(
	users repository.UserRepository,
	tokens repository.ResetTokenRepository,
	jwt *helpers.JWTManager,
	publisher EmailPublisher,
	log *logrus.Logger,
	resetTokenTTL time.Duration,
	resetURL string,
) *AuthService {
	return &AuthService{
		users:         users,
		tokens:        tokens,
		jwt:           jwt,
		publisher:     publisher,
		log:           log,
		resetTokenTTL: resetTokenTTL,
		resetURL:      resetURL,
	}
}

// Register creates a user and returns it together with a fresh session token.
// A taken email wins over any password problem, so callers learn about the
// conflict even when the password would have been rejected too.
func (s *AuthService) Register(ctx context.Context, email, password, username string) (*entity.User, string, error) {
	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, "", ErrDuplicateEmail
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, "", err
	}
	if len(password) < passwordMinLength {
		return nil, "", ErrWeakPassword
	}
	hash, err := helpers.HashPassword(password)
	if err != nil {
		return nil, "", err
	}
	u := &entity.User{
		Email:        email,
		Username:     username,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, "", ErrDuplicateEmail
		}
		return nil, "", err
	}
	token, _, err := s.jwt.Generate(u.ID, u.Email)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

// Login verifies credentials and mints a session token. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}
	if !helpers.CompareHashAndPassword(u.PasswordHash, password) {
		return nil, "", ErrInvalidCredentials
	}
	token, _, err := s.jwt.Generate(u.ID, u.Email)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

// GetUser loads the authenticated user's profile.
func (s *AuthService) GetUser(ctx context.Context, userID string) (*entity.User, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

// ChangePassword swaps the stored hash after checking the current password.
// Existing JWTs stay valid until they expire.
func (s *AuthService) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	if len(newPassword) < passwordMinLength {
		return ErrWeakPassword
	}
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	if !helpers.CompareHashAndPassword(u.PasswordHash, currentPassword) {
		return ErrInvalidCredentials
	}
	hash, err := helpers.HashPassword(newPassword)
	if err != nil {
		return err
	}
	return s.users.UpdatePassword(ctx, u.ID, hash)
}

// RequestPasswordReset starts the reset flow. The outcome is identical for
// known and unknown emails so the endpoint cannot be used for enumeration.
// Requesting again replaces the previous token.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) error {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		return err
	}

	plain, err := helpers.GenerateResetToken()
	if err != nil {
		return err
	}
	digest, err := helpers.HashResetToken(plain)
	if err != nil {
		return err
	}
	expiresAt := time.Now().Add(s.resetTokenTTL)
	if err := s.tokens.Replace(ctx, u.ID, digest, expiresAt); err != nil {
		return err
	}

	resetURL := s.resetURL + "/" + plain
	if s.publisher == nil {
		// No broker configured; surface the link in the log for development.
		s.log.WithField("reset_url", resetURL).Debug("password reset requested, no email publisher configured")
		return nil
	}

	job := mailer.EmailJob{
		To:       u.Email,
		Template: mailer.PasswordReset,
		Data: map[string]any{
			"Username":  u.Username,
			"ResetURL":  resetURL,
			"ExpiresIn": s.resetTokenTTL.String(),
		},
	}
	if err := s.publisher.PublishJSON(ctx, job); err != nil {
		// Swallowed: a delivery error must not make the response differ
		// from the unknown-email case. The token row is live; the user
		// can request again.
		s.log.WithError(err).Error("failed to enqueue password reset email")
	}
	return nil
}

// ResetPassword redeems a reset token. Only the bcrypt digest is stored, so
// the candidate is verified against every live digest; single match wins and
// the row is consumed.
func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	if len(newPassword) < passwordMinLength {
		return ErrWeakPassword
	}
	live, err := s.tokens.ListActive(ctx, time.Now())
	if err != nil {
		return err
	}
	for _, row := range live {
		if !helpers.VerifyResetToken(row.TokenHash, token) {
			continue
		}
		hash, err := helpers.HashPassword(newPassword)
		if err != nil {
			return err
		}
		if err := s.users.UpdatePassword(ctx, row.UserID, hash); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return ErrInvalidOrExpiredToken
			}
			return err
		}
		if err := s.tokens.Delete(ctx, row.ID); err != nil && !errors.Is(err, repository.ErrNotFound) {
			s.log.WithError(err).Warn("failed to consume reset token")
		}
		return nil
	}
	return ErrInvalidOrExpiredToken
}
