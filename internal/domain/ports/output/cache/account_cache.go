package cache

import (
	"context"

	model "pinstack-publish-service/internal/domain/models"
)

//go:generate mockery --name AccountCache --dir . --output ../../../../../mocks/cache --outpkg mocks --with-expecter --filename AccountCache.go
type AccountCache interface {
	GetAccount(ctx context.Context, accountID int64) (*model.Account, error)
	SetAccount(ctx context.Context, account *model.Account) error
	DeleteAccount(ctx context.Context, accountID int64) error
}
