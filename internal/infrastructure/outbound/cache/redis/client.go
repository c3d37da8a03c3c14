package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"pinstack-publish-service/internal/domain/custom_errors"
	ports "pinstack-publish-service/internal/domain/ports/output"
	"pinstack-publish-service/internal/infrastructure/config"

	"github.com/redis/go-redis/v9"
)

// Client wraps go-redis with JSON values and the service's logging. It backs
// the account cache, the scheduler lease and the event publisher.
type Client struct {
	client *redis.Client
	log    ports.Logger
}

func NewClient(cfg config.Redis, log ports.Logger) (*Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr(),
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.OpTimeout,
		WriteTimeout: cfg.OpTimeout,
	})

	c := NewClientFromRedis(rdb, log)
	ctx, cancel := context.WithTimeout(context.Background(), cfg.DialTimeout)
	defer cancel()
	if err := c.Ping(ctx); err != nil {
		_ = rdb.Close()
		return nil, err
	}

	log.Info("Connected to Redis", slog.String("addr", cfg.Addr()), slog.Int("db", cfg.DB))
	return c, nil
}

func NewClientFromRedis(rdb *redis.Client, log ports.Logger) *Client {
	return &Client{client: rdb, log: log}
}

// Get decodes the JSON value stored at key into dest. A missing key is
// ErrCacheMiss; an undecodable one is dropped so the next read refills it.
func (c *Client) Get(ctx context.Context, key string, dest any) error {
	raw, err := c.client.Get(ctx, key).Bytes()
	switch {
	case errors.Is(err, redis.Nil):
		return custom_errors.ErrCacheMiss
	case err != nil:
		c.log.Error("Redis GET failed", slog.String("key", key), slog.String("error", err.Error()))
		return fmt.Errorf("redis get %s: %w", key, err)
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		c.log.Warn("Dropping undecodable cache entry", slog.String("key", key), slog.String("error", err.Error()))
		_ = c.client.Del(ctx, key).Err()
		return custom_errors.ErrCacheMiss
	}
	return nil
}

func (c *Client) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := c.client.Set(ctx, key, raw, ttl).Err(); err != nil {
		c.log.Error("Redis SET failed", slog.String("key", key), slog.String("error", err.Error()))
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (c *Client) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.log.Error("Redis DEL failed", slog.Any("keys", keys), slog.String("error", err.Error()))
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

func (c *Client) Ping(ctx context.Context) error {
	if err := c.client.Ping(ctx).Err(); err != nil {
		c.log.Error("Redis ping failed", slog.String("error", err.Error()))
		return fmt.Errorf("redis ping: %w", err)
	}
	return nil
}

func (c *Client) Close() error {
	if err := c.client.Close(); err != nil {
		return fmt.Errorf("close redis: %w", err)
	}
	c.log.Info("Redis connection closed")
	return nil
}
