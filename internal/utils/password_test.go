package utils

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_ProducesVerifiableDigest(t *testing.T) {
	digest, err := HashPassword("secret123", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if digest == "" {
		t.Fatal("expected non-empty digest")
	}
	if digest == "secret123" {
		t.Fatal("digest must not equal plaintext")
	}

	if !VerifyPassword("secret123", digest) {
		t.Error("expected matching password to verify")
	}
}

func TestHashPassword_SaltedDigestsDiffer(t *testing.T) {
	first, err := HashPassword("secret123", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := HashPassword("secret123", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first == second {
		t.Error("expected distinct digests for the same plaintext (random salt)")
	}
}

func TestHashPassword_OutOfRangeCostFallsBack(t *testing.T) {
	digest, err := HashPassword("secret123", 99)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cost, err := bcrypt.Cost([]byte(digest))
	if err != nil {
		t.Fatalf("unexpected error reading cost: %v", err)
	}
	if cost != bcrypt.DefaultCost {
		t.Errorf("expected fallback to default cost %d, got %d", bcrypt.DefaultCost, cost)
	}
}

func TestVerifyPassword_SingleCharacterMutationFails(t *testing.T) {
	password := "secret123"
	digest, err := HashPassword(password, bcrypt.MinCost)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := 0; i < len(password); i++ {
		mutated := []byte(password)
		mutated[i]++

		if VerifyPassword(string(mutated), digest) {
			t.Errorf("expected mutation at position %d to fail verification", i)
		}
	}
}

func TestVerifyPassword_MalformedDigestIsFalse(t *testing.T) {
	if VerifyPassword("secret123", "not-a-bcrypt-digest") {
		t.Error("expected malformed digest to yield false")
	}
	if VerifyPassword("secret123", "") {
		t.Error("expected empty digest to yield false")
	}
}
