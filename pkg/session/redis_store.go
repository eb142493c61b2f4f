package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// keyPrefix namespaces session keys in a shared Redis instance.
const keyPrefix = "session:"

// RedisStore implements Store on top of Redis. The absolute session expiry
// maps directly onto the key TTL, so Redis removes stale records on its own;
// the defensive expiry check in Get covers clock skew between the process
// and the Redis server.
type RedisStore struct {
	client redis.UniversalClient
}

// NewRedisStore creates a Redis-backed session store.
func NewRedisStore(client redis.UniversalClient) *RedisStore {
	return &RedisStore{client: client}
}

// Create stores a new session with a TTL equal to its remaining lifetime.
func (r *RedisStore) Create(ctx context.Context, session *Session) error {
	if session == nil || session.Token == "" {
		return ErrInvalidSession
	}

	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return ErrInvalidSession
	}

	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	if err := r.client.Set(ctx, keyPrefix+session.Token, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}

	return nil
}

// Get retrieves a live session by token.
func (r *RedisStore) Get(ctx context.Context, token string) (*Session, error) {
	data, err := r.client.Get(ctx, keyPrefix+token).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	var session Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}

	if session.IsExpired() {
		_, _ = r.Delete(ctx, token)
		return nil, ErrSessionExpired
	}

	return &session, nil
}

// Delete removes a session by token and reports whether it was present.
func (r *RedisStore) Delete(ctx context.Context, token string) (bool, error) {
	n, err := r.client.Del(ctx, keyPrefix+token).Result()
	if err != nil {
		return false, fmt.Errorf("failed to delete session: %w", err)
	}
	return n > 0, nil
}

// DeleteExpired is a no-op: Redis evicts expired keys natively.
func (r *RedisStore) DeleteExpired(ctx context.Context) error {
	return nil
}
