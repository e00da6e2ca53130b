// Package redis provides the Redis-backed session store used by the
// session credential source.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/quickplate/ui-gate/internal/domain/auth"
	apperrors "github.com/quickplate/ui-gate/internal/errors"
)

// ErrNotFound is returned when a session does not exist or has expired.
var ErrNotFound error = apperrors.NotFound("session not found")

// SessionStore is a Redis-based session store. Key TTLs follow each
// session's ExpiresAt, so Redis evicts expired sessions on its own.
type SessionStore struct {
	client redis.UniversalClient
	prefix string
}

// NewSessionStore creates a session store with the default key prefix.
func NewSessionStore(client redis.UniversalClient) *SessionStore {
	return NewSessionStoreWithPrefix(client, "session:")
}

// NewSessionStoreWithPrefix creates a session store with a custom key prefix.
func NewSessionStoreWithPrefix(client redis.UniversalClient, prefix string) *SessionStore {
	return &SessionStore{client: client, prefix: prefix}
}

func (s *SessionStore) Save(ctx context.Context, sess auth.Session) error {
	if sess.ID == "" {
		return apperrors.Validation("session ID cannot be empty")
	}

	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	ttl := time.Until(sess.ExpiresAt)
	if ttl <= 0 {
		return apperrors.Validation("session is already expired")
	}

	return s.client.Set(ctx, s.prefix+sess.ID, data, ttl).Err()
}

func (s *SessionStore) Get(ctx context.Context, id string) (auth.Session, error) {
	if id == "" {
		return auth.Session{}, ErrNotFound
	}

	data, err := s.client.Get(ctx, s.prefix+id).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return auth.Session{}, ErrNotFound
		}
		return auth.Session{}, fmt.Errorf("redis get: %w", err)
	}

	var sess auth.Session
	if unmarshalErr := json.Unmarshal([]byte(data), &sess); unmarshalErr != nil {
		return auth.Session{}, fmt.Errorf("unmarshal session: %w", unmarshalErr)
	}

	// Redis TTL should have evicted this already; double-check regardless.
	if time.Now().After(sess.ExpiresAt) {
		if deleteErr := s.Delete(ctx, id); deleteErr != nil {
			return auth.Session{}, fmt.Errorf("cleanup expired session: %w", deleteErr)
		}
		return auth.Session{}, ErrNotFound
	}

	return sess, nil
}

func (s *SessionStore) Delete(ctx context.Context, id string) error {
	if id == "" {
		return nil // Nothing to delete
	}
	return s.client.Del(ctx, s.prefix+id).Err()
}
