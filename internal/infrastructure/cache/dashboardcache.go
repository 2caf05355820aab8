package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"linkdeck/internal/shared/logger"
)

// DashboardCache keeps the serialized linked-accounts view per user so
// repeated dashboard loads do not hit the database. Entries are invalidated
// whenever an account is connected or disconnected.
type DashboardCache struct {
	client *redis.Client
	ttl    time.Duration
	logger logger.Interface
}

func NewDashboardCache(client *redis.Client, ttl time.Duration, logger logger.Interface) *DashboardCache {
	return &DashboardCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func (c *DashboardCache) key(userID uint) string {
	return fmt.Sprintf("dashboard:accounts:%d", userID)
}

// Get returns the cached view payload for the user, or nil on a miss.
func (c *DashboardCache) Get(ctx context.Context, userID uint) ([]byte, error) {
	data, err := c.client.Get(ctx, c.key(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read dashboard cache: %w", err)
	}
	return data, nil
}

// Set stores the serialized view with the configured TTL. Failures are
// logged and swallowed; the cache is best-effort.
func (c *DashboardCache) Set(ctx context.Context, userID uint, data []byte) {
	if err := c.client.Set(ctx, c.key(userID), data, c.ttl).Err(); err != nil {
		c.logger.Warnw("failed to write dashboard cache", "user_id", userID, "error", err)
	}
}

// Invalidate drops the cached view for the user.
func (c *DashboardCache) Invalidate(ctx context.Context, userID uint) {
	if err := c.client.Del(ctx, c.key(userID)).Err(); err != nil {
		c.logger.Warnw("failed to invalidate dashboard cache", "user_id", userID, "error", err)
	}
}
