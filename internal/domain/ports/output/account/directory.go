package account

import (
	"context"

	model "pinstack-publish-service/internal/domain/models"
)

// Directory looks up destination accounts. Get returns ErrAccountNotFound for
// unknown ids.
//
//go:generate mockery --name Directory --dir . --output ../../../../../mocks/account --outpkg mocks --with-expecter --filename Directory.go
type Directory interface {
	Get(ctx context.Context, accountID int64) (*model.Account, error)
	MarkTokenExpired(ctx context.Context, accountID int64) error
}

//go:generate mockery --name Integrations --dir . --output ../../../../../mocks/account --outpkg mocks --with-expecter --filename Integrations.go
type Integrations interface {
	IsActive(ctx context.Context, platform string) (bool, error)
}
