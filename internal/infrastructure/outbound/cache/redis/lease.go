package redis

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"pinstack-publish-service/internal/domain/custom_errors"
	"pinstack-publish-service/internal/domain/ports/output/lock"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const leaseKeyPrefix = "lease:"

// releaseScript deletes the key only while it still holds our token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

func (c *Client) TryLock(ctx context.Context, key string, ttl time.Duration) (lock.Lease, error) {
	fullKey := leaseKeyPrefix + key
	token := uuid.NewString()

	ok, err := c.client.SetNX(ctx, fullKey, token, ttl).Result()
	if err != nil {
		c.log.Error("Failed to acquire lease",
			slog.String("key", fullKey),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to acquire lease: %w", err)
	}
	if !ok {
		c.log.Debug("Lease held by another instance", slog.String("key", fullKey))
		return nil, custom_errors.ErrLeaseNotAcquired
	}

	c.log.Debug("Lease acquired", slog.String("key", fullKey), slog.Duration("ttl", ttl))
	return &Lease{client: c, key: fullKey, token: token}, nil
}

type Lease struct {
	client *Client
	key    string
	token  string
}

func (l *Lease) Release(ctx context.Context) error {
	deleted, err := releaseScript.Run(ctx, l.client.client, []string{l.key}, l.token).Int64()
	if err != nil {
		l.client.log.Error("Failed to release lease",
			slog.String("key", l.key),
			slog.String("error", err.Error()))
		return fmt.Errorf("failed to release lease: %w", err)
	}
	if deleted == 0 {
		l.client.log.Warn("Lease expired before release", slog.String("key", l.key))
	}
	return nil
}
