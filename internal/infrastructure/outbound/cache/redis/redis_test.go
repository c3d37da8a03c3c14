package redis_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"pinstack-publish-service/internal/domain/custom_errors"
	model "pinstack-publish-service/internal/domain/models"
	"pinstack-publish-service/internal/infrastructure/logger"
	redis_cache "pinstack-publish-service/internal/infrastructure/outbound/cache/redis"
	"pinstack-publish-service/internal/infrastructure/outbound/metrics/prometheus"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client, *redis_cache.Client) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return mr, rdb, redis_cache.NewClientFromRedis(rdb, logger.New("test"))
}

func TestClient_GetSetDelete(t *testing.T) {
	ctx := context.Background()
	mr, _, client := setupRedis(t)

	var dest map[string]int
	assert.ErrorIs(t, client.Get(ctx, "missing", &dest), custom_errors.ErrCacheMiss)

	require.NoError(t, client.Set(ctx, "k", map[string]int{"a": 1}, time.Minute))
	require.NoError(t, client.Get(ctx, "k", &dest))
	assert.Equal(t, map[string]int{"a": 1}, dest)
	assert.Equal(t, time.Minute, mr.TTL("k"))

	require.NoError(t, mr.Set("broken", "{not json"))
	assert.ErrorIs(t, client.Get(ctx, "broken", &dest), custom_errors.ErrCacheMiss)
	assert.False(t, mr.Exists("broken"), "undecodable entries are dropped")

	require.NoError(t, client.Delete(ctx, "k"))
	require.NoError(t, client.Delete(ctx, "k"), "deleting a missing key is not an error")
	assert.False(t, mr.Exists("k"))
	require.NoError(t, client.Delete(ctx))

	assert.Error(t, client.Set(ctx, "fn", func() {}, time.Minute))
	require.NoError(t, client.Ping(ctx))
}

func TestAccountCache(t *testing.T) {
	ctx := context.Background()
	mr, _, client := setupRedis(t)
	cache := redis_cache.NewAccountCache(client, logger.New("test"), 0)

	_, err := cache.GetAccount(ctx, 7)
	assert.ErrorIs(t, err, custom_errors.ErrCacheMiss)

	assert.Error(t, cache.SetAccount(ctx, nil))

	account := &model.Account{ID: 7, WorkspaceID: 1, Platform: "x", DisplayName: "Acme", Status: model.AccountStatusActive}
	require.NoError(t, cache.SetAccount(ctx, account))
	assert.Equal(t, 5*time.Minute, mr.TTL("account:7"), "zero ttl falls back to the default")

	got, err := cache.GetAccount(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, account.DisplayName, got.DisplayName)
	assert.Equal(t, model.AccountStatusActive, got.Status)

	require.NoError(t, cache.DeleteAccount(ctx, 7))
	_, err = cache.GetAccount(ctx, 7)
	assert.ErrorIs(t, err, custom_errors.ErrCacheMiss)

	mr.SetError("ERR backend unavailable")
	_, err = cache.GetAccount(ctx, 7)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, custom_errors.ErrCacheMiss)
}

func TestLease(t *testing.T) {
	ctx := context.Background()
	mr, _, client := setupRedis(t)

	lease, err := client.TryLock(ctx, "batch", time.Minute)
	require.NoError(t, err)
	assert.True(t, mr.Exists("lease:batch"))

	_, err = client.TryLock(ctx, "batch", time.Minute)
	assert.ErrorIs(t, err, custom_errors.ErrLeaseNotAcquired)

	require.NoError(t, lease.Release(ctx))
	assert.False(t, mr.Exists("lease:batch"))

	again, err := client.TryLock(ctx, "batch", time.Minute)
	require.NoError(t, err)
	require.NoError(t, again.Release(ctx))
}

func TestLease_ExpiredLeaseIsNotStolenBack(t *testing.T) {
	ctx := context.Background()
	mr, _, client := setupRedis(t)

	stale, err := client.TryLock(ctx, "batch", time.Second)
	require.NoError(t, err)
	mr.FastForward(2 * time.Second)

	fresh, err := client.TryLock(ctx, "batch", time.Minute)
	require.NoError(t, err)

	require.NoError(t, stale.Release(ctx), "releasing an expired lease only logs")
	assert.True(t, mr.Exists("lease:batch"), "the new holder keeps its lease")

	require.NoError(t, fresh.Release(ctx))
	assert.False(t, mr.Exists("lease:batch"))
}

func TestEventPublisher(t *testing.T) {
	ctx := context.Background()
	_, rdb, client := setupRedis(t)
	publisher := redis_cache.NewEventPublisher(client, "publish.events", logger.New("test"), prometheus.NewPrometheusMetricsProvider())

	sub := rdb.Subscribe(ctx, "publish.events")
	t.Cleanup(func() { _ = sub.Close() })
	_, err := sub.Receive(ctx)
	require.NoError(t, err)

	event := &model.DomainEvent{
		ID:          "7f0c",
		Name:        model.EventPostPublished,
		WorkspaceID: 1,
		PostID:      42,
		OccurredAt:  time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, publisher.Publish(ctx, event))

	select {
	case msg := <-sub.Channel():
		var got model.DomainEvent
		require.NoError(t, json.Unmarshal([]byte(msg.Payload), &got))
		assert.Equal(t, model.EventPostPublished, got.Name)
		assert.Equal(t, int64(42), got.PostID)
		assert.Equal(t, "7f0c", got.ID)
	case <-time.After(2 * time.Second):
		t.Fatal("event was not delivered")
	}
}

func TestEventPublisher_BackendDown(t *testing.T) {
	mr, _, client := setupRedis(t)
	publisher := redis_cache.NewEventPublisher(client, "publish.events", logger.New("test"), prometheus.NewPrometheusMetricsProvider())
	mr.SetError("ERR backend unavailable")

	err := publisher.Publish(context.Background(), &model.DomainEvent{Name: model.EventPostFailed, PostID: 1})
	assert.Error(t, err)
}
