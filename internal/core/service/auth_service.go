package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/minauth/auth-service/internal/core/domain"
	"github.com/minauth/auth-service/internal/core/ports"
)

// AuthService implements the authentication and session lifecycle engine.
// It holds no mutable state of its own; uniqueness races are resolved by the
// stores' atomic inserts, so it is safe to call from any number of request
// goroutines.
type AuthService struct {
	users    ports.UserRepository
	sessions ports.SessionRepository
	hasher   *PasswordHasher
	tokens   *TokenIssuer
	log      zerolog.Logger
}

// NewAuthService wires the engine to its stores and crypto helpers.
func NewAuthService(
	users ports.UserRepository,
	sessions ports.SessionRepository,
	hasher *PasswordHasher,
	tokens *TokenIssuer,
	log zerolog.Logger,
) *AuthService {
	return &AuthService{
		users:    users,
		sessions: sessions,
		hasher:   hasher,
		tokens:   tokens,
		log:      log,
	}
}

// Register validates inputs in order (username, email, password), hashes the
// password, and asks the store to create the user. The store enforces
// uniqueness atomically and reports collisions as domain.ErrUserExists.
func (s *AuthService) Register(ctx context.Context, username, email, password string, role domain.Role) (*domain.User, error) {
	if err := ValidateUsername(username); err != nil {
		return nil, err
	}
	if err := ValidateEmail(email); err != nil {
		return nil, err
	}
	if err := ValidatePassword(password); err != nil {
		return nil, err
	}
	if role == "" {
		role = domain.RoleUser
	}
	if !role.Valid() {
		return nil, &domain.ValidationError{Reason: "Invalid role"}
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("username", created.Username).
		Str("role", string(created.Role)).
		Msg("user registered")

	return created, nil
}

// Login authenticates the credentials and issues a fresh session. Unknown
// usernames and wrong passwords both yield domain.ErrInvalidCredentials so
// callers cannot enumerate accounts.
func (s *AuthService) Login(ctx context.Context, username, password string) (*ports.LoginResult, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, domain.ErrAccountDisabled
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Generate()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	session := &domain.Session{
		Token:     token,
		UserID:    user.ID,
		CreatedAt: now,
		ExpiresAt: s.tokens.ExpiresAt(now),
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	s.log.Info().Str("username", user.Username).Msg("user logged in")

	return &ports.LoginResult{
		Token:     token,
		User:      user,
		ExpiresAt: session.ExpiresAt,
	}, nil
}

// Logout deletes the session for token. Unknown tokens are not an error, so
// logging out twice always succeeds.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if err := s.sessions.Delete(ctx, token); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// Verify resolves token to a Principal. Expired and unknown tokens are the
// same outward signal: (nil, nil). The Principal's role is re-read from the
// user record at lookup time, so role changes apply to existing sessions.
func (s *AuthService) Verify(ctx context.Context, token string) (*domain.Principal, error) {
	return s.sessions.FindValid(ctx, token, time.Now().UTC())
}

// ListUsers returns every user record. Only admins may call it.
func (s *AuthService) ListUsers(ctx context.Context, caller domain.Role) ([]domain.User, error) {
	if caller != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	return s.users.List(ctx)
}

// UpdateRole changes the target user's role. Only admins may call it; the
// new role must be one of the closed role set.
func (s *AuthService) UpdateRole(ctx context.Context, userID string, newRole domain.Role, caller domain.Role) error {
	if caller != domain.RoleAdmin {
		return domain.ErrForbidden
	}
	if !newRole.Valid() {
		return &domain.ValidationError{Reason: "Invalid role"}
	}

	if err := s.users.UpdateRole(ctx, userID, newRole); err != nil {
		return err
	}

	s.log.Info().
		Str("user_id", userID).
		Str("new_role", string(newRole)).
		Msg("user role updated")

	return nil
}
