package auth

import "testing"

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("sekret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hash == "sekret" {
		t.Fatalf("hash must not equal the plaintext password")
	}

	if !CheckPassword(hash, "sekret") {
		t.Fatalf("expected password to match its own hash")
	}
	if CheckPassword(hash, "wrong") {
		t.Fatalf("expected mismatched password to fail")
	}
}

func TestCheckPasswordRejectsGarbageHash(t *testing.T) {
	if CheckPassword("not-a-bcrypt-hash", "sekret") {
		t.Fatalf("expected garbage hash to fail verification")
	}
}
