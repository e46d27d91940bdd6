package ports

import (
	"context"
	"time"

	"github.com/minauth/auth-service/internal/core/domain"
)

// LoginResult bundles a freshly issued session with its owner.
type LoginResult struct {
	Token     string
	User      *domain.User
	ExpiresAt time.Time
}

// AuthService is the authentication and session lifecycle engine. All
// failures are value-level domain errors; nothing panics across this
// boundary. The service is stateless and safe for concurrent use.
type AuthService interface {
	// Register validates the credentials, hashes the password, and creates
	// the user. Role defaults to domain.RoleUser when empty.
	Register(ctx context.Context, username, email, password string, role domain.Role) (*domain.User, error)

	// Login authenticates the credentials and issues a new session. It does
	// not invalidate prior sessions for the same user.
	Login(ctx context.Context, username, password string) (*LoginResult, error)

	// Logout deletes the session for token. Idempotent.
	Logout(ctx context.Context, token string) error

	// Verify resolves a token to a Principal, or (nil, nil) when the token
	// is unknown or expired.
	Verify(ctx context.Context, token string) (*domain.Principal, error)

	// ListUsers returns all users. Requires the admin role.
	ListUsers(ctx context.Context, caller domain.Role) ([]domain.User, error)

	// UpdateRole changes the role of the target user. Requires the admin role.
	UpdateRole(ctx context.Context, userID string, newRole domain.Role, caller domain.Role) error
}
