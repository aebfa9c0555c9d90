package session

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"courier/internal/domain"
)

// TTL is the fixed idle/absolute expiry of a session.
const TTL = time.Hour

const keyPrefix = "session:"

// Session is the payload stored against an opaque session key.
type Session struct {
	UserID string      `json:"user_id"`
	Name   string      `json:"name"`
	Role   domain.Role `json:"role"`
}

// Store persists sessions behind opaque keys.
type Store interface {
	// Create stores the session under a fresh opaque key and returns
	// the key.
	Create(ctx context.Context, sess *Session) (string, error)

	// Get retrieves the session for a key. Returns nil for a missing or
	// expired key.
	Get(ctx context.Context, key string) (*Session, error)

	// Destroy removes the session for a key. Destroying a missing key
	// is not an error.
	Destroy(ctx context.Context, key string) error
}

// RedisStore is a Redis-backed session store with a fixed TTL.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore creates a new RedisStore.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client, ttl: TTL}
}

// Create stores the session under a fresh opaque key and returns the key.
func (s *RedisStore) Create(ctx context.Context, sess *Session) (string, error) {
	data, err := json.Marshal(sess)
	if err != nil {
		return "", err
	}

	key := uuid.New().String()
	if err := s.client.Set(ctx, keyPrefix+key, data, s.ttl).Err(); err != nil {
		return "", err
	}

	return key, nil
}

// Get retrieves the session for a key. Returns nil for a missing or
// expired key.
func (s *RedisStore) Get(ctx context.Context, key string) (*Session, error) {
	data, err := s.client.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, err
	}

	return &sess, nil
}

// Destroy removes the session for a key.
func (s *RedisStore) Destroy(ctx context.Context, key string) error {
	return s.client.Del(ctx, keyPrefix+key).Err()
}

// Ensure RedisStore implements Store.
var _ Store = (*RedisStore)(nil)
