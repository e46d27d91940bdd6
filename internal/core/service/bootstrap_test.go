package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/minauth/auth-service/internal/core/domain"
)

func TestBootstrapAdmin_SeedsOnce(t *testing.T) {
	users := newStubUserRepo()
	hasher := NewPasswordHasher(bcrypt.MinCost)
	cfg := BootstrapConfig{
		Enabled:  true,
		Username: "admin",
		Email:    "admin@example.com",
		Password: "Adm1nPass",
	}

	if err := BootstrapAdmin(context.Background(), users, hasher, cfg, zerolog.Nop()); err != nil {
		t.Fatalf("bootstrap failed: %v", err)
	}

	admin, err := users.FindByUsername(context.Background(), "admin")
	if err != nil {
		t.Fatalf("admin not seeded: %v", err)
	}
	if admin.Role != domain.RoleAdmin {
		t.Fatalf("expected admin role, got %s", admin.Role)
	}
	if !hasher.Verify("Adm1nPass", admin.PasswordHash) {
		t.Fatalf("seeded password hash does not verify")
	}

	// Second run is a no-op.
	if err := BootstrapAdmin(context.Background(), users, hasher, cfg, zerolog.Nop()); err != nil {
		t.Fatalf("repeated bootstrap failed: %v", err)
	}
	if len(users.users) != 1 {
		t.Fatalf("expected exactly one user, got %d", len(users.users))
	}
}

func TestBootstrapAdmin_GeneratesPassword(t *testing.T) {
	users := newStubUserRepo()
	hasher := NewPasswordHasher(bcrypt.MinCost)
	cfg := BootstrapConfig{Enabled: true, Username: "admin", Email: "admin@example.com"}

	if err := BootstrapAdmin(context.Background(), users, hasher, cfg, zerolog.Nop()); err != nil {
		t.Fatalf("bootstrap failed: %v", err)
	}
	admin, err := users.FindByUsername(context.Background(), "admin")
	if err != nil {
		t.Fatalf("admin not seeded: %v", err)
	}
	if admin.PasswordHash == "" {
		t.Fatalf("expected generated password hash")
	}
}

func TestBootstrapAdmin_Disabled(t *testing.T) {
	users := newStubUserRepo()
	cfg := BootstrapConfig{Enabled: false, Username: "admin"}

	if err := BootstrapAdmin(context.Background(), users, NewPasswordHasher(bcrypt.MinCost), cfg, zerolog.Nop()); err != nil {
		t.Fatalf("bootstrap failed: %v", err)
	}
	if len(users.users) != 0 {
		t.Fatalf("expected no users, got %d", len(users.users))
	}
}
