package helpers

import (
	"crypto/rand"
	"encoding/base64"
)

// Reset token helpers. The plaintext is a random 256-bit value handed to
// the delivery mechanism exactly once; only its bcrypt digest is persisted,
// so a candidate has to be verified against every live digest.

// GenerateResetToken returns a URL-safe random token.
func GenerateResetToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// HashResetToken produces the digest stored in the ledger.
func HashResetToken(plain string) (string, error) {
	return HashPassword(plain)
}

// VerifyResetToken reports whether plain matches the stored digest.
func VerifyResetToken(digest, plain string) bool {
	return CompareHashAndPassword(digest, plain)
}
