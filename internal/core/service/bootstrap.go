package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/minauth/auth-service/internal/core/domain"
	"github.com/minauth/auth-service/internal/core/ports"
)

// BootstrapConfig controls the initial admin account seeding.
type BootstrapConfig struct {
	Enabled  bool
	Username string
	Email    string
	// Password for the seeded admin. When empty, a random one is generated
	// and logged exactly once.
	Password string
}

// BootstrapAdmin seeds the initial admin account when none exists. It is
// idempotent: an existing account with the configured username short-circuits,
// and a concurrent seeding race resolves through the store's unique insert.
// This runs once at startup, outside the request-handling path.
func BootstrapAdmin(ctx context.Context, users ports.UserRepository, hasher *PasswordHasher, cfg BootstrapConfig, log zerolog.Logger) error {
	if !cfg.Enabled {
		return nil
	}

	_, err := users.FindByUsername(ctx, cfg.Username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return fmt.Errorf("bootstrap admin lookup: %w", err)
	}

	password := cfg.Password
	generated := false
	if password == "" {
		password, err = generatePassword(32)
		if err != nil {
			return err
		}
		generated = true
	}

	hash, err := hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("bootstrap admin hash: %w", err)
	}

	admin := &domain.User{
		Username:     cfg.Username,
		Email:        cfg.Email,
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
	}
	if _, err := users.Create(ctx, admin); err != nil {
		// Lost the race to another instance seeding the same account.
		if errors.Is(err, domain.ErrUserExists) {
			return nil
		}
		return fmt.Errorf("bootstrap admin create: %w", err)
	}

	if generated {
		log.Warn().
			Str("username", cfg.Username).
			Str("password", password).
			Msg("initial admin created with generated password; change it")
	} else {
		log.Info().Str("username", cfg.Username).Msg("initial admin created")
	}

	return nil
}

func generatePassword(length int) (string, error) {
	if length <= 0 {
		return "", errors.New("password length must be positive")
	}
	raw := make([]byte, length)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(raw)[:length], nil
}
