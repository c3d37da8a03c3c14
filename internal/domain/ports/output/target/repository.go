package target_repository

import (
	"context"
	"encoding/json"
	"time"

	model "pinstack-publish-service/internal/domain/models"
)

//go:generate mockery --name Repository --dir . --output ../../../../../mocks/target --outpkg mocks --with-expecter --filename TargetRepository.go
type Repository interface {
	CreateBatch(ctx context.Context, postID int64, targets []*model.PostTarget) ([]*model.PostTarget, error)
	GetByID(ctx context.Context, id int64) (*model.PostTarget, error)
	ListByPost(ctx context.Context, postID int64) ([]*model.PostTarget, error)
	CountByPost(ctx context.Context, postID int64) (int, error)
	Update(ctx context.Context, target *model.PostTarget) (*model.PostTarget, error)
	// Claim moves a PENDING target to PUBLISHING; any other status yields
	// ErrTargetNotPending.
	Claim(ctx context.Context, id int64, now time.Time) (*model.PostTarget, error)
	// ListStale returns PUBLISHING targets last touched before cutoff, oldest
	// first.
	ListStale(ctx context.Context, cutoff time.Time, limit int) ([]*model.PostTarget, error)
	UpdateMetrics(ctx context.Context, id int64, metrics json.RawMessage) error
	Delete(ctx context.Context, id int64) error
	DeleteByPost(ctx context.Context, postID int64) error
}
