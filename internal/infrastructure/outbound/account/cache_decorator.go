package account

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"pinstack-publish-service/internal/domain/custom_errors"
	model "pinstack-publish-service/internal/domain/models"
	ports "pinstack-publish-service/internal/domain/ports/output"
	account_port "pinstack-publish-service/internal/domain/ports/output/account"
	"pinstack-publish-service/internal/domain/ports/output/cache"
)

// DirectoryCacheDecorator reads accounts through the account cache and
// invalidates it on writes.
type DirectoryCacheDecorator struct {
	directory account_port.Directory
	cache     cache.AccountCache
	log       ports.Logger
	metrics   ports.MetricsProvider
}

func NewDirectoryCacheDecorator(
	directory account_port.Directory,
	cache cache.AccountCache,
	log ports.Logger,
	metrics ports.MetricsProvider,
) account_port.Directory {
	return &DirectoryCacheDecorator{
		directory: directory,
		cache:     cache,
		log:       log,
		metrics:   metrics,
	}
}

func (d *DirectoryCacheDecorator) Get(ctx context.Context, accountID int64) (*model.Account, error) {
	cacheStart := time.Now()
	cached, err := d.cache.GetAccount(ctx, accountID)
	d.metrics.RecordCacheOperationDuration("account_get", time.Since(cacheStart))
	if err == nil {
		d.metrics.IncrementCacheHits()
		return cached, nil
	}

	if !errors.Is(err, custom_errors.ErrCacheMiss) {
		d.log.Warn("Failed to get account from cache",
			slog.Int64("account_id", accountID),
			slog.String("error", err.Error()))
	} else {
		d.metrics.IncrementCacheMisses()
	}

	account, err := d.directory.Get(ctx, accountID)
	if err != nil {
		return nil, err
	}

	setStart := time.Now()
	if err := d.cache.SetAccount(ctx, account); err != nil {
		d.log.Warn("Failed to cache account",
			slog.Int64("account_id", accountID),
			slog.String("error", err.Error()))
	}
	d.metrics.RecordCacheOperationDuration("account_set", time.Since(setStart))
	return account, nil
}

func (d *DirectoryCacheDecorator) MarkTokenExpired(ctx context.Context, accountID int64) error {
	if err := d.directory.MarkTokenExpired(ctx, accountID); err != nil {
		return err
	}

	start := time.Now()
	if err := d.cache.DeleteAccount(ctx, accountID); err != nil {
		d.log.Warn("Failed to invalidate account cache after token expiry",
			slog.Int64("account_id", accountID),
			slog.String("error", err.Error()))
	}
	d.metrics.RecordCacheOperationDuration("account_delete", time.Since(start))
	return nil
}
