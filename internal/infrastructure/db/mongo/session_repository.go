package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/minauth/auth-service/internal/core/domain"
	"github.com/minauth/auth-service/internal/core/ports"
)

const sessionsCollection = "sessions"

// SessionRepository persists bearer sessions in MongoDB. Expiry is enforced
// at lookup time by filtering on expires_at; a TTL index additionally purges
// expired documents in the background, but the lookup filter stays
// authoritative since TTL deletion lags wall-clock expiry.
type SessionRepository struct {
	coll  *mongo.Collection
	users ports.UserRepository
}

func NewSessionRepository(db *mongo.Database, users ports.UserRepository) *SessionRepository {
	return &SessionRepository{coll: db.Collection(sessionsCollection), users: users}
}

type mongoSession struct {
	Token     string    `bson:"token"`
	UserID    string    `bson:"user_id"`
	CreatedAt time.Time `bson:"created_at"`
	ExpiresAt time.Time `bson:"expires_at"`
}

// EnsureIndexes creates the unique token index and the TTL purge index.
func (r *SessionRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "token", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "expires_at", Value: 1}},
			Options: options.Index().SetExpireAfterSeconds(0),
		},
	})
	if err != nil {
		return fmt.Errorf("create session indexes: %w", err)
	}
	return nil
}

func (r *SessionRepository) Save(ctx context.Context, session *domain.Session) error {
	doc := mongoSession{
		Token:     session.Token,
		UserID:    session.UserID,
		CreatedAt: session.CreatedAt,
		ExpiresAt: session.ExpiresAt,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

// FindValid returns the principal for an unexpired session, resolving the
// owner's username and role from the user store at lookup time. Unknown and
// expired tokens both return (nil, nil).
func (r *SessionRepository) FindValid(ctx context.Context, token string, now time.Time) (*domain.Principal, error) {
	var ms mongoSession
	filter := bson.M{"token": token, "expires_at": bson.M{"$gt": now}}
	if err := r.coll.FindOne(ctx, filter).Decode(&ms); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find session: %w", err)
	}

	user, err := r.users.FindByID(ctx, ms.UserID)
	if err != nil {
		// The owning user disappeared out-of-band: the session is orphaned
		// and the token resolves to no principal.
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &domain.Principal{
		UserID:    user.ID,
		Username:  user.Username,
		Role:      user.Role,
		ExpiresAt: ms.ExpiresAt.UTC(),
	}, nil
}

func (r *SessionRepository) Delete(ctx context.Context, token string) error {
	if _, err := r.coll.DeleteOne(ctx, bson.M{"token": token}); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
