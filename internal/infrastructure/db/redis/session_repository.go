package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/minauth/auth-service/internal/core/domain"
	"github.com/minauth/auth-service/internal/core/ports"
)

// Key format: session:<token>
const sessionKeyPrefix = "session:"

// SessionRepository stores bearer sessions as Redis keys whose TTL tracks the
// session expiry. The key TTL makes Redis purge eagerly, but lookups still
// compare expires_at against the caller's clock so validity never depends on
// Redis eviction timing.
type SessionRepository struct {
	client *redis.Client
	users  ports.UserRepository
}

func NewSessionRepository(client *redis.Client, users ports.UserRepository) *SessionRepository {
	return &SessionRepository{client: client, users: users}
}

type sessionRecord struct {
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (r *SessionRepository) Save(ctx context.Context, session *domain.Session) error {
	ttl := session.ExpiresAt.Sub(session.CreatedAt)
	if ttl <= 0 {
		return fmt.Errorf("save session: non-positive ttl %v", ttl)
	}

	payload, err := json.Marshal(sessionRecord{
		UserID:    session.UserID,
		CreatedAt: session.CreatedAt,
		ExpiresAt: session.ExpiresAt,
	})
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	if err := r.client.Set(ctx, r.key(session.Token), payload, ttl).Err(); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (r *SessionRepository) FindValid(ctx context.Context, token string, now time.Time) (*domain.Principal, error) {
	raw, err := r.client.Get(ctx, r.key(token)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("find session: %w", err)
	}

	var rec sessionRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	if !now.Before(rec.ExpiresAt) {
		return nil, nil
	}

	user, err := r.users.FindByID(ctx, rec.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &domain.Principal{
		UserID:    user.ID,
		Username:  user.Username,
		Role:      user.Role,
		ExpiresAt: rec.ExpiresAt.UTC(),
	}, nil
}

func (r *SessionRepository) Delete(ctx context.Context, token string) error {
	if err := r.client.Del(ctx, r.key(token)).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (r *SessionRepository) key(token string) string {
	return sessionKeyPrefix + token
}
