package cache

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrStateNotFound is returned when a picker state token is unknown, expired,
// or already consumed.
var ErrStateNotFound = errors.New("oauth state not found")

// OAuthStateStore holds one-time state tokens for the Instagram picker flow.
// Tokens are consumed atomically with GETDEL so a state can only be used once.
type OAuthStateStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func NewOAuthStateStore(client *redis.Client, ttl time.Duration) *OAuthStateStore {
	return &OAuthStateStore{
		client: client,
		prefix: "oauth:state:",
		ttl:    ttl,
	}
}

// Issue generates a random state token bound to the user and stores it with
// the configured TTL.
func (s *OAuthStateStore) Issue(ctx context.Context, userID uint) (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate state: %w", err)
	}
	state := hex.EncodeToString(b)

	key := s.prefix + state
	if err := s.client.Set(ctx, key, userID, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("failed to store state in redis: %w", err)
	}

	return state, nil
}

// Consume verifies the state token and returns the user it was issued for.
// The token is deleted atomically, preventing replay.
func (s *OAuthStateStore) Consume(ctx context.Context, state string) (uint, error) {
	if state == "" {
		return 0, ErrStateNotFound
	}

	key := s.prefix + state
	userID, err := s.client.GetDel(ctx, key).Uint64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, ErrStateNotFound
		}
		return 0, fmt.Errorf("failed to consume state: %w", err)
	}

	return uint(userID), nil
}
