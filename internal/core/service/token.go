package service

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

// tokenBytes of CSPRNG output, hex-encoded to 2*tokenBytes characters.
const tokenBytes = 64

// TokenIssuer mints opaque bearer tokens and computes their expiry.
type TokenIssuer struct {
	ttl time.Duration
}

// NewTokenIssuer returns an issuer whose sessions live for ttl.
// Non-positive ttl falls back to 24 hours.
func NewTokenIssuer(ttl time.Duration) *TokenIssuer {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenIssuer{ttl: ttl}
}

// Generate returns a new unguessable opaque token: 64 bytes from the
// OS CSPRNG, hex-encoded.
func (i *TokenIssuer) Generate() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// ExpiresAt computes the expiry for a session issued at issuedAt.
func (i *TokenIssuer) ExpiresAt(issuedAt time.Time) time.Time {
	return issuedAt.Add(i.ttl)
}

// TTL returns the configured session lifetime.
func (i *TokenIssuer) TTL() time.Duration {
	return i.ttl
}
