package helpers

import "testing"

func TestHashAndComparePassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if hash == "correct horse battery staple" {
		t.Fatal("hash equals plaintext")
	}
	if !CompareHashAndPassword(hash, "correct horse battery staple") {
		t.Fatal("expected match for correct password")
	}
	if CompareHashAndPassword(hash, "wrong password") {
		t.Fatal("expected mismatch for wrong password")
	}
}

func TestHashPassword_Salted(t *testing.T) {
	t.Parallel()

	h1, err := HashPassword("same input")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	h2, err := HashPassword("same input")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if h1 == h2 {
		t.Fatal("expected different hashes for the same input")
	}
}

func TestResetTokenRoundTrip(t *testing.T) {
	t.Parallel()

	plain, err := GenerateResetToken()
	if err != nil {
		t.Fatalf("GenerateResetToken error: %v", err)
	}
	if len(plain) < 40 {
		t.Fatalf("token too short: %d chars", len(plain))
	}

	other, err := GenerateResetToken()
	if err != nil {
		t.Fatalf("GenerateResetToken error: %v", err)
	}
	if plain == other {
		t.Fatal("expected unique tokens")
	}

	digest, err := HashResetToken(plain)
	if err != nil {
		t.Fatalf("HashResetToken error: %v", err)
	}
	if !VerifyResetToken(digest, plain) {
		t.Fatal("expected token to verify against its digest")
	}
	if VerifyResetToken(digest, other) {
		t.Fatal("expected foreign token to fail verification")
	}
}
