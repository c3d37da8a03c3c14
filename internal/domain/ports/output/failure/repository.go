package failure_repository

import (
	"context"

	model "pinstack-publish-service/internal/domain/models"
)

//go:generate mockery --name Repository --dir . --output ../../../../../mocks/failure --outpkg mocks --with-expecter --filename FailureRepository.go
type Repository interface {
	Record(ctx context.Context, failure *model.PublishFailure) (*model.PublishFailure, error)
	ListByPost(ctx context.Context, postID int64) ([]*model.PublishFailure, error)
}
