package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/minauth/auth-service/internal/core/domain"
)

func assertReason(t *testing.T, err error, want string) {
	t.Helper()
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if ve.Reason != want {
		t.Fatalf("expected reason %q, got %q", want, ve.Reason)
	}
}

func TestValidateUsername(t *testing.T) {
	for _, name := range []string{"abc", "alice", "user_42", strings.Repeat("a", 20)} {
		if err := ValidateUsername(name); err != nil {
			t.Fatalf("expected %q valid, got %v", name, err)
		}
	}

	assertReason(t, ValidateUsername("ab"), "Username must be between 3 and 20 characters")
	assertReason(t, ValidateUsername(strings.Repeat("a", 21)), "Username must be between 3 and 20 characters")
	assertReason(t, ValidateUsername("bad name"), "Username can only contain letters, numbers and underscores")
	assertReason(t, ValidateUsername("p@ss"), "Username can only contain letters, numbers and underscores")
}

func TestValidateEmail(t *testing.T) {
	for _, email := range []string{"a@b.co", "alice.smith+tag@example.org", "x_1%z@mail.example.com"} {
		if err := ValidateEmail(email); err != nil {
			t.Fatalf("expected %q valid, got %v", email, err)
		}
	}

	for _, email := range []string{"", "plain", "a@b", "a@b.c", "@example.com", "a b@example.com"} {
		assertReason(t, ValidateEmail(email), "Invalid email format")
	}
}

func TestValidatePassword_RuleOrder(t *testing.T) {
	if err := ValidatePassword("Passw0rd"); err != nil {
		t.Fatalf("expected valid password, got %v", err)
	}

	// Rules are checked in order: length, digit, uppercase, lowercase.
	assertReason(t, ValidatePassword("Sh0rt"), "Password must be at least 8 characters long")
	assertReason(t, ValidatePassword("NoDigits"), "Password must contain at least one number")
	assertReason(t, ValidatePassword("nocaps123"), "Password must contain at least one uppercase letter")
	assertReason(t, ValidatePassword("NOLOWER123"), "Password must contain at least one lowercase letter")
}
