package helpers

import (
	"errors"
	"testing"
	"time"
)

func TestGenerateAndParse_Success(t *testing.T) {
	t.Parallel()

	m := NewJWTManager("super-secret", time.Hour)
	tok, exp, err := m.Generate("user-123", "a@b.co")
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if !exp.After(time.Now()) {
		t.Fatalf("expected expiry in the future, got %v", exp)
	}

	claims, err := m.Parse(tok)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if claims.UserID != "user-123" {
		t.Fatalf("userID mismatch: got %q want %q", claims.UserID, "user-123")
	}
	if claims.Email != "a@b.co" {
		t.Fatalf("email mismatch: got %q want %q", claims.Email, "a@b.co")
	}
}

func TestParse_Expired(t *testing.T) {
	t.Parallel()

	m := NewJWTManager("secret", -1*time.Second)
	tok, _, err := m.Generate("u1", "a@b.co")
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	_, err = m.Parse(tok)
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestParse_WrongSecret(t *testing.T) {
	t.Parallel()

	issuer := NewJWTManager("right-secret", time.Hour)
	tok, _, err := issuer.Generate("u2", "a@b.co")
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	verifier := NewJWTManager("wrong-secret", time.Hour)
	if _, err := verifier.Parse(tok); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for wrong secret, got %v", err)
	}
}

func TestParse_Malformed(t *testing.T) {
	t.Parallel()

	m := NewJWTManager("secret", time.Hour)
	for _, tok := range []string{"", "not-a-jwt", "a.b.c"} {
		if _, err := m.Parse(tok); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken for %q, got %v", tok, err)
		}
	}
}

func TestParse_MissingUserID(t *testing.T) {
	t.Parallel()

	m := NewJWTManager("secret", time.Hour)
	tok, _, err := m.Generate("", "a@b.co")
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if _, err := m.Parse(tok); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for empty user id, got %v", err)
	}
}
