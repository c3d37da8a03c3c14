package account_test

import (
	"context"
	"errors"
	"testing"

	"pinstack-publish-service/internal/domain/custom_errors"
	model "pinstack-publish-service/internal/domain/models"
	"pinstack-publish-service/internal/infrastructure/logger"
	"pinstack-publish-service/internal/infrastructure/outbound/account"
	"pinstack-publish-service/internal/infrastructure/outbound/metrics/prometheus"
	account_mock "pinstack-publish-service/mocks/account"
	cache_mock "pinstack-publish-service/mocks/cache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDirectoryCacheDecorator_Get(t *testing.T) {
	stored := &model.Account{ID: 7, WorkspaceID: 1, Platform: "x", Status: model.AccountStatusActive}

	tests := []struct {
		name    string
		mocks   func(dir *account_mock.Directory, cache *cache_mock.AccountCache)
		want    *model.Account
		wantErr error
	}{
		{
			name: "Cache hit skips the directory",
			mocks: func(dir *account_mock.Directory, cache *cache_mock.AccountCache) {
				cache.EXPECT().GetAccount(mock.Anything, int64(7)).Return(stored, nil)
			},
			want: stored,
		},
		{
			name: "Cache miss reads through and fills the cache",
			mocks: func(dir *account_mock.Directory, cache *cache_mock.AccountCache) {
				cache.EXPECT().GetAccount(mock.Anything, int64(7)).Return(nil, custom_errors.ErrCacheMiss)
				dir.EXPECT().Get(mock.Anything, int64(7)).Return(stored, nil)
				cache.EXPECT().SetAccount(mock.Anything, stored).Return(nil)
			},
			want: stored,
		},
		{
			name: "Cache failures fall back to the directory",
			mocks: func(dir *account_mock.Directory, cache *cache_mock.AccountCache) {
				cache.EXPECT().GetAccount(mock.Anything, int64(7)).Return(nil, errors.New("i/o timeout"))
				dir.EXPECT().Get(mock.Anything, int64(7)).Return(stored, nil)
				cache.EXPECT().SetAccount(mock.Anything, stored).Return(errors.New("i/o timeout"))
			},
			want: stored,
		},
		{
			name: "Unknown account is not cached",
			mocks: func(dir *account_mock.Directory, cache *cache_mock.AccountCache) {
				cache.EXPECT().GetAccount(mock.Anything, int64(7)).Return(nil, custom_errors.ErrCacheMiss)
				dir.EXPECT().Get(mock.Anything, int64(7)).Return(nil, custom_errors.ErrAccountNotFound)
			},
			wantErr: custom_errors.ErrAccountNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := account_mock.NewDirectory(t)
			cache := cache_mock.NewAccountCache(t)
			tt.mocks(dir, cache)

			decorator := account.NewDirectoryCacheDecorator(dir, cache, logger.New("test"), prometheus.NewPrometheusMetricsProvider())
			got, err := decorator.Get(context.Background(), 7)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDirectoryCacheDecorator_MarkTokenExpired(t *testing.T) {
	ctx := context.Background()

	t.Run("Invalidates the cached account", func(t *testing.T) {
		dir := account_mock.NewDirectory(t)
		cache := cache_mock.NewAccountCache(t)
		dir.EXPECT().MarkTokenExpired(mock.Anything, int64(7)).Return(nil)
		cache.EXPECT().DeleteAccount(mock.Anything, int64(7)).Return(errors.New("i/o timeout"))

		decorator := account.NewDirectoryCacheDecorator(dir, cache, logger.New("test"), prometheus.NewPrometheusMetricsProvider())
		assert.NoError(t, decorator.MarkTokenExpired(ctx, 7))
	})

	t.Run("Directory failure leaves the cache alone", func(t *testing.T) {
		dir := account_mock.NewDirectory(t)
		cache := cache_mock.NewAccountCache(t)
		dir.EXPECT().MarkTokenExpired(mock.Anything, int64(7)).Return(custom_errors.ErrDatabaseQuery)

		decorator := account.NewDirectoryCacheDecorator(dir, cache, logger.New("test"), prometheus.NewPrometheusMetricsProvider())
		assert.ErrorIs(t, decorator.MarkTokenExpired(ctx, 7), custom_errors.ErrDatabaseQuery)
	})
}
