package redis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"pinstack-publish-service/internal/domain/custom_errors"
	model "pinstack-publish-service/internal/domain/models"
	ports "pinstack-publish-service/internal/domain/ports/output"
)

const (
	accountCacheKeyPrefix = "account:"
	defaultAccountTTL     = 5 * time.Minute
)

type AccountCache struct {
	client *Client
	log    ports.Logger
	ttl    time.Duration
}

func NewAccountCache(client *Client, log ports.Logger, ttl time.Duration) *AccountCache {
	if ttl <= 0 {
		ttl = defaultAccountTTL
	}
	return &AccountCache{
		client: client,
		log:    log,
		ttl:    ttl,
	}
}

func (a *AccountCache) GetAccount(ctx context.Context, accountID int64) (*model.Account, error) {
	key := a.getAccountKey(accountID)

	var account model.Account
	if err := a.client.Get(ctx, key, &account); err != nil {
		if errors.Is(err, custom_errors.ErrCacheMiss) {
			a.log.Debug("Account cache miss", slog.Int64("account_id", accountID))
			return nil, custom_errors.ErrCacheMiss
		}
		a.log.Error("Failed to get account from cache",
			slog.Int64("account_id", accountID),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to get account from cache: %w", err)
	}

	a.log.Debug("Account cache hit", slog.Int64("account_id", accountID))
	return &account, nil
}

func (a *AccountCache) SetAccount(ctx context.Context, account *model.Account) error {
	if account == nil {
		return fmt.Errorf("account cannot be nil")
	}

	if err := a.client.Set(ctx, a.getAccountKey(account.ID), account, a.ttl); err != nil {
		a.log.Error("Failed to set account cache",
			slog.Int64("account_id", account.ID),
			slog.String("error", err.Error()))
		return fmt.Errorf("failed to set account cache: %w", err)
	}

	a.log.Debug("Account cached successfully",
		slog.Int64("account_id", account.ID),
		slog.Duration("ttl", a.ttl))
	return nil
}

func (a *AccountCache) DeleteAccount(ctx context.Context, accountID int64) error {
	if err := a.client.Delete(ctx, a.getAccountKey(accountID)); err != nil {
		a.log.Error("Failed to delete account from cache",
			slog.Int64("account_id", accountID),
			slog.String("error", err.Error()))
		return fmt.Errorf("failed to delete account from cache: %w", err)
	}

	a.log.Debug("Account deleted from cache", slog.Int64("account_id", accountID))
	return nil
}

func (a *AccountCache) getAccountKey(accountID int64) string {
	return accountCacheKeyPrefix + strconv.FormatInt(accountID, 10)
}
