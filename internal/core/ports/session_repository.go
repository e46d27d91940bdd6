package ports

import (
	"context"
	"time"

	"github.com/minauth/auth-service/internal/core/domain"
)

// SessionRepository defines the persistence contract for bearer sessions.
type SessionRepository interface {
	// Save persists a new session. Tokens are unique by construction
	// (high-entropy random), so collisions are treated as store errors.
	Save(ctx context.Context, session *domain.Session) error

	// FindValid looks up an unexpired session by token and resolves the
	// owning user's current username and role. Returns (nil, nil) when the
	// token is unknown or expired — the two cases are indistinguishable.
	FindValid(ctx context.Context, token string, now time.Time) (*domain.Principal, error)

	// Delete removes the session for token. Deleting a token that does not
	// exist is not an error.
	Delete(ctx context.Context, token string) error
}
