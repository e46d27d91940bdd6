package ports

import (
	"context"

	"github.com/minauth/auth-service/internal/core/domain"
)

// UserRepository defines the persistence contract for user accounts.
// Implementations must enforce username and email uniqueness atomically at
// insert time (check-and-insert, not check-then-insert), returning
// domain.ErrUserExists on collision.
type UserRepository interface {
	// Create persists a new user and returns it with the store-assigned ID.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)

	// FindByUsername returns domain.ErrUserNotFound when no user matches.
	FindByUsername(ctx context.Context, username string) (*domain.User, error)

	// FindByID returns domain.ErrUserNotFound when no user matches.
	FindByID(ctx context.Context, id string) (*domain.User, error)

	// List returns every user record.
	List(ctx context.Context) ([]domain.User, error)

	// UpdateRole sets the role of the user with the given ID, returning
	// domain.ErrUserNotFound when the ID matches nothing.
	UpdateRole(ctx context.Context, id string, role domain.Role) error
}
