package post_repository

import (
	"context"
	"time"

	model "pinstack-publish-service/internal/domain/models"
)

//go:generate mockery --name Repository --dir . --output ../../../../../mocks/post --outpkg mocks --with-expecter --filename PostRepository.go
type Repository interface {
	Create(ctx context.Context, post *model.Post) (*model.Post, error)
	// GetByID never returns soft-deleted posts.
	GetByID(ctx context.Context, id int64) (*model.Post, error)
	// GetForUpdate is GetByID holding a row lock until the transaction ends.
	GetForUpdate(ctx context.Context, id int64) (*model.Post, error)
	Update(ctx context.Context, post *model.Post) (*model.Post, error)
	List(ctx context.Context, filters model.PostFilters) ([]*model.Post, int, error)
	// ListDue returns SCHEDULED posts with scheduled_at <= now, oldest first.
	ListDue(ctx context.Context, now time.Time, limit int) ([]*model.Post, error)
}
