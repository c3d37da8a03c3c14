package scheduler_service

import (
	"context"
	"errors"
	"testing"
	"time"

	"pinstack-publish-service/internal/domain/custom_errors"
	model "pinstack-publish-service/internal/domain/models"
	"pinstack-publish-service/internal/domain/ports/output/lock"
	"pinstack-publish-service/internal/infrastructure/logger"
	redis_cache "pinstack-publish-service/internal/infrastructure/outbound/cache/redis"
	"pinstack-publish-service/internal/infrastructure/outbound/metrics/prometheus"
	"pinstack-publish-service/internal/infrastructure/outbound/repository/memory"
	lock_mock "pinstack-publish-service/mocks/lock"
	service_mock "pinstack-publish-service/mocks/service"

	"github.com/alicebob/miniredis/v2"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// seedScheduled stores n SCHEDULED posts due one second apart, oldest first,
// ending a second before now.
func seedScheduled(t *testing.T, store *memory.Store, n int) []int64 {
	ctx := context.Background()
	ids := make([]int64, 0, n)
	for i := 0; i < n; i++ {
		p, err := store.PostRepository().Create(ctx, &model.Post{
			WorkspaceID: 1,
			AuthorID:    1,
			Status:      model.PostStatusScheduled,
			ScheduledAt: pgtype.Timestamptz{Time: now.Add(-time.Duration(n-i) * time.Second), Valid: true},
		})
		require.NoError(t, err)
		ids = append(ids, p.ID)
	}
	return ids
}

func newScheduler(store *memory.Store, orchestrator *service_mock.Orchestrator, locker lock.Locker, batch int) *DueSchedulerService {
	s := NewDueSchedulerService(
		store.PostRepository(),
		orchestrator,
		locker,
		logger.New("test"),
		prometheus.NewPrometheusMetricsProvider(),
		batch,
		time.Minute,
	)
	s.clock = func() time.Time { return now }
	orchestrator.EXPECT().RecoverStale(mock.Anything).Return(0, nil).Maybe()
	return s
}

// startPublishing stands in for the orchestrator: it moves the post out of
// SCHEDULED the way a successful PublishDue would.
func startPublishing(store *memory.Store) func(context.Context, int64) (*model.Post, error) {
	return func(ctx context.Context, id int64) (*model.Post, error) {
		p, err := store.PostRepository().GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		p.Status = model.PostStatusPublishing
		return store.PostRepository().Update(ctx, p)
	}
}

func TestDueScheduler_BatchCapCarriesOverflow(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore(logger.New("test"))
	ids := seedScheduled(t, store, 150)

	orchestrator := service_mock.NewOrchestrator(t)
	orchestrator.EXPECT().PublishDue(mock.Anything, mock.Anything).RunAndReturn(startPublishing(store)).Times(150)

	s := newScheduler(store, orchestrator, nil, 100)

	first, err := s.RunDueBatch(ctx)
	require.NoError(t, err)
	assert.Equal(t, 100, first.Due)
	assert.Equal(t, ids[:100], first.Dispatched)
	assert.Empty(t, first.Failed)
	assert.False(t, first.Skipped)

	second, err := s.RunDueBatch(ctx)
	require.NoError(t, err)
	assert.Equal(t, 50, second.Due)
	assert.Equal(t, ids[100:], second.Dispatched)

	third, err := s.RunDueBatch(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, third.Due)
	assert.Empty(t, third.Dispatched)
}

func TestDueScheduler_DefaultBatchSize(t *testing.T) {
	s := NewDueSchedulerService(nil, nil, nil, logger.New("test"), prometheus.NewPrometheusMetricsProvider(), 0, 0)
	assert.Equal(t, DefaultBatchSize, s.batchSize)
	assert.Equal(t, defaultLeaseTTL, s.leaseTTL)
}

func TestDueScheduler_FailuresDoNotStopBatch(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore(logger.New("test"))
	ids := seedScheduled(t, store, 4)

	orchestrator := service_mock.NewOrchestrator(t)
	orchestrator.EXPECT().PublishDue(mock.Anything, ids[0]).RunAndReturn(func(context.Context, int64) (*model.Post, error) {
		panic("adapter registry exploded")
	}).Once()
	orchestrator.EXPECT().PublishDue(mock.Anything, ids[1]).Return(nil, custom_errors.ErrNoTargets).Once()
	orchestrator.EXPECT().PublishDue(mock.Anything, ids[2]).RunAndReturn(startPublishing(store)).Once()
	orchestrator.EXPECT().PublishDue(mock.Anything, ids[3]).Return(nil, errors.New("connection reset")).Once()

	report, err := newScheduler(store, orchestrator, nil, 0).RunDueBatch(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, report.Due)
	assert.Equal(t, []int64{ids[2]}, report.Dispatched)
	assert.Equal(t, []int64{ids[0], ids[1], ids[3]}, report.Failed)
}

func TestDueScheduler_NotDueAndFutureIgnored(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore(logger.New("test"))
	_, err := store.PostRepository().Create(ctx, &model.Post{
		WorkspaceID: 1,
		Status:      model.PostStatusScheduled,
		ScheduledAt: pgtype.Timestamptz{Time: now.Add(time.Minute), Valid: true},
	})
	require.NoError(t, err)
	_, err = store.PostRepository().Create(ctx, &model.Post{
		WorkspaceID: 1,
		Status:      model.PostStatusApproved,
		ScheduledAt: pgtype.Timestamptz{Time: now.Add(-time.Minute), Valid: true},
	})
	require.NoError(t, err)

	orchestrator := service_mock.NewOrchestrator(t)
	report, err := newScheduler(store, orchestrator, nil, 0).RunDueBatch(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, report.Due)
	orchestrator.AssertNotCalled(t, "PublishDue", mock.Anything, mock.Anything)
}

func TestDueScheduler_SweepsStaleAttempts(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name          string
		recovered     int
		err           error
		wantRecovered int
	}{
		{name: "Recovered targets are reported", recovered: 2, wantRecovered: 2},
		{name: "Sweep failure does not fail the batch", err: errors.New("database down")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := memory.NewStore(logger.New("test"))
			ids := seedScheduled(t, store, 1)

			orchestrator := service_mock.NewOrchestrator(t)
			orchestrator.EXPECT().PublishDue(mock.Anything, ids[0]).RunAndReturn(startPublishing(store)).Once()
			orchestrator.EXPECT().RecoverStale(mock.Anything).Return(tt.recovered, tt.err).Once()

			report, err := newScheduler(store, orchestrator, nil, 0).RunDueBatch(ctx)
			require.NoError(t, err)
			assert.Equal(t, []int64{ids[0]}, report.Dispatched)
			assert.Equal(t, tt.wantRecovered, report.Recovered)
		})
	}
}

func TestDueScheduler_Lease(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		setup       func(locker *lock_mock.Locker, lease *lock_mock.Lease)
		wantSkipped bool
		wantErr     bool
		wantDue     int
	}{
		{
			name: "Lease held elsewhere",
			setup: func(locker *lock_mock.Locker, lease *lock_mock.Lease) {
				locker.EXPECT().TryLock(mock.Anything, "scheduler:due-batch", time.Minute).Return(nil, custom_errors.ErrLeaseNotAcquired)
			},
			wantSkipped: true,
		},
		{
			name: "Lock backend down",
			setup: func(locker *lock_mock.Locker, lease *lock_mock.Lease) {
				locker.EXPECT().TryLock(mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("redis down"))
			},
			wantErr: true,
		},
		{
			name: "Lease acquired and released",
			setup: func(locker *lock_mock.Locker, lease *lock_mock.Lease) {
				locker.EXPECT().TryLock(mock.Anything, "scheduler:due-batch", time.Minute).Return(lease, nil)
				lease.EXPECT().Release(mock.Anything).Return(nil).Once()
			},
			wantDue: 2,
		},
		{
			name: "Release failure is only logged",
			setup: func(locker *lock_mock.Locker, lease *lock_mock.Lease) {
				locker.EXPECT().TryLock(mock.Anything, mock.Anything, mock.Anything).Return(lease, nil)
				lease.EXPECT().Release(mock.Anything).Return(errors.New("script error")).Once()
			},
			wantDue: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := memory.NewStore(logger.New("test"))
			seedScheduled(t, store, 2)
			orchestrator := service_mock.NewOrchestrator(t)
			orchestrator.EXPECT().PublishDue(mock.Anything, mock.Anything).RunAndReturn(startPublishing(store)).Maybe()
			locker := lock_mock.NewLocker(t)
			lease := lock_mock.NewLease(t)
			tt.setup(locker, lease)

			report, err := newScheduler(store, orchestrator, locker, 0).RunDueBatch(ctx)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, report)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantSkipped, report.Skipped)
			assert.Equal(t, tt.wantDue, report.Due)
			if tt.wantSkipped {
				orchestrator.AssertNotCalled(t, "RecoverStale", mock.Anything)
			}
		})
	}
}

func TestDueScheduler_RedisLeaseExcludesSecondInstance(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	locker := redis_cache.NewClientFromRedis(rdb, logger.New("test"))

	store := memory.NewStore(logger.New("test"))
	ids := seedScheduled(t, store, 1)

	entered := make(chan struct{})
	release := make(chan struct{})
	orchestrator := service_mock.NewOrchestrator(t)
	orchestrator.EXPECT().PublishDue(mock.Anything, ids[0]).RunAndReturn(func(ctx context.Context, id int64) (*model.Post, error) {
		close(entered)
		<-release
		return startPublishing(store)(ctx, id)
	}).Once()

	orchestrator.EXPECT().RecoverStale(mock.Anything).Return(0, nil).Maybe()

	newInstance := func() *DueSchedulerService {
		s := NewDueSchedulerService(store.PostRepository(), orchestrator, locker, logger.New("test"), prometheus.NewPrometheusMetricsProvider(), 0, time.Minute)
		s.clock = func() time.Time { return now }
		return s
	}
	a, b := newInstance(), newInstance()

	done := make(chan struct{})
	go func() {
		defer close(done)
		report, err := a.RunDueBatch(ctx)
		assert.NoError(t, err)
		assert.Equal(t, []int64{ids[0]}, report.Dispatched)
	}()

	<-entered
	report, err := b.RunDueBatch(ctx)
	require.NoError(t, err)
	assert.True(t, report.Skipped)

	close(release)
	<-done
	assert.False(t, mr.Exists("lease:scheduler:due-batch"), "lease must be released after the batch")
}
