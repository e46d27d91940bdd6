package domain

import "time"

// Session ties an opaque bearer token to a user until it expires. A session
// is valid only while now < ExpiresAt and it has not been deleted; expired
// sessions are treated as absent, never surfaced as a distinct state.
type Session struct {
	Token     string
	UserID    string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Principal is the authenticated identity resolved from a bearer token.
// Username and Role reflect the user record at lookup time, not at login.
type Principal struct {
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	Role      Role      `json:"role"`
	ExpiresAt time.Time `json:"expires_at"`
}
