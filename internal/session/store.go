// Package session provides server-side session management. A session is an
// opaque token, carried by a cookie, mapped to the authenticated username for
// a bounded idle window.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ErrNotFound is returned when a token resolves to no live session.
var ErrNotFound = errors.New("session not found")

// CookieName is the cookie that carries the session token.
const CookieName = "session_token"

// Session associates a request with an authenticated username. It is passed
// explicitly into every service operation that requires identity, never held
// as ambient request state.
type Session struct {
	Token    string
	Username string
}

// Store defines how sessions are created, resolved and destroyed.
type Store interface {
	// Create establishes a new session for username and returns it.
	Create(ctx context.Context, username string) (*Session, error)
	// Get resolves a token and refreshes its idle expiry. Returns ErrNotFound
	// for unknown or expired tokens.
	Get(ctx context.Context, token string) (*Session, error)
	// Delete destroys a session. Deleting an absent session is a no-op.
	Delete(ctx context.Context, token string) error
}

const keyPrefix = "session:"

type redisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore creates a Store backed by Redis with the given idle expiry.
func NewRedisStore(client *redis.Client, ttl time.Duration) Store {
	return &redisStore{client: client, ttl: ttl}
}

func (s *redisStore) Create(ctx context.Context, username string) (*Session, error) {
	token := uuid.NewString()
	if err := s.client.Set(ctx, keyPrefix+token, username, s.ttl).Err(); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return &Session{Token: token, Username: username}, nil
}

func (s *redisStore) Get(ctx context.Context, token string) (*Session, error) {
	// GETEX resets the idle window on every resolution.
	username, err := s.client.GetEx(ctx, keyPrefix+token, s.ttl).Result()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve session: %w", err)
	}
	return &Session{Token: token, Username: username}, nil
}

func (s *redisStore) Delete(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, keyPrefix+token).Err(); err != nil {
		return fmt.Errorf("failed to destroy session: %w", err)
	}
	return nil
}
