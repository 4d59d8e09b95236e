// Package session keeps shopper session tokens in redis. The token is
// what ties a browser to its server-side cart; the gateway mints one per
// shopper and refreshes a sliding TTL on every request.
package session

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var ErrSessionNotFound = errors.New("session not found")

type Store struct {
	client  *redis.Client
	baseTTL time.Duration
}

func NewStore(client *redis.Client) *Store {
	return &Store{
		client:  client,
		baseTTL: 24 * time.Hour,
	}
}

// Ensure returns a live session token. A known token gets its TTL
// refreshed; an unknown or empty one is replaced with a freshly minted
// uuid. The bool reports whether a new session was created.
func (s *Store) Ensure(ctx context.Context, token string) (string, bool, error) {
	if token != "" {
		err := s.Touch(ctx, token)
		if err == nil {
			return token, false, nil
		}
		if !errors.Is(err, ErrSessionNotFound) {
			return "", false, err
		}
	}

	token = uuid.NewString()
	if err := s.client.Set(ctx, sessionKey(token), time.Now().Unix(), s.ttl()).Err(); err != nil {
		return "", false, fmt.Errorf("redis set failed: %w", err)
	}
	return token, true, nil
}

// Touch refreshes the sliding TTL of a known token.
func (s *Store) Touch(ctx context.Context, token string) error {
	ok, err := s.client.Expire(ctx, sessionKey(token), s.ttl()).Result()
	if err != nil {
		return fmt.Errorf("redis expire failed: %w", err)
	}
	if !ok {
		return ErrSessionNotFound
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, sessionKey(token)).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}

// ttl adds jitter so a burst of sessions does not expire in one wave.
func (s *Store) ttl() time.Duration {
	jitter := time.Duration(rand.Intn(30)) * time.Minute
	return s.baseTTL + jitter
}

func sessionKey(token string) string {
	return fmt.Sprintf("session:%s", token)
}
