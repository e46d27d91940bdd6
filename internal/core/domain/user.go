package domain

import (
	"errors"
	"time"
)

// Role is the closed set of authorization roles. Keeping it a distinct type
// means an invalid role can only enter the system through ParseRole.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// ParseRole maps a wire-level string onto the closed role set.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", &ValidationError{Reason: "Invalid role"}
	}
	return r, nil
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User models an account record. Username and email are immutable after
// creation and globally unique; only Role is mutated post-creation.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

// Sentinel errors returned by the auth service and repositories. The messages
// are caller-facing and rendered verbatim in API responses; unknown-user and
// wrong-password deliberately share ErrInvalidCredentials so login failures
// are indistinguishable.
var (
	ErrInvalidCredentials = errors.New("Invalid username or password")
	ErrAccountDisabled    = errors.New("Account is disabled")
	ErrForbidden          = errors.New("Unauthorized")
	ErrUserExists         = errors.New("Username or email already exists")
	ErrUserNotFound       = errors.New("User not found")
)

// ValidationError reports malformed input together with the caller-facing
// reason for the first rule that failed.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }
