package media_repository

import (
	"context"

	model "pinstack-publish-service/internal/domain/models"
)

// Repository stores the ordered attachment set of a post. The set is always
// replaced as a whole, so there is no per-item removal.
//
//go:generate mockery --name Repository --dir . --output ../../../../../mocks/media --outpkg mocks --with-expecter --filename MediaRepository.go
type Repository interface {
	Attach(ctx context.Context, postID int64, media []*model.PostMedia) error
	DetachAll(ctx context.Context, postID int64) (int64, error)
	GetByPost(ctx context.Context, postID int64) ([]*model.PostMedia, error)
}
