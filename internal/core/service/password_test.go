package service

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHasher_HashIsSalted(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	first, err := h.Hash("Passw0rd")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	second, err := h.Hash("Passw0rd")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if first == second {
		t.Fatalf("expected distinct hashes for the same password")
	}
	if first == "Passw0rd" {
		t.Fatalf("password stored in plaintext")
	}
}

func TestPasswordHasher_Verify(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	hash, err := h.Hash("Passw0rd")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}

	if !h.Verify("Passw0rd", hash) {
		t.Fatalf("expected match for correct password")
	}
	if h.Verify("wrongpass", hash) {
		t.Fatalf("expected mismatch for wrong password")
	}
}

func TestPasswordHasher_MalformedHash(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	// A foreign or corrupted hash format is a verification failure,
	// never a panic.
	for _, bad := range []string{"", "not-a-bcrypt-hash", "$2y$garbage"} {
		if h.Verify("Passw0rd", bad) {
			t.Fatalf("expected mismatch for malformed hash %q", bad)
		}
	}
}

func TestNewPasswordHasher_CostOutOfRange(t *testing.T) {
	h := NewPasswordHasher(99)

	hash, err := h.Hash("Passw0rd")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		t.Fatalf("cost: %v", err)
	}
	if cost != bcrypt.DefaultCost {
		t.Fatalf("expected default cost fallback, got %d", cost)
	}
}
