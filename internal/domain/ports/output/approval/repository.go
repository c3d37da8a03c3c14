package approval_repository

import (
	"context"

	model "pinstack-publish-service/internal/domain/models"
)

//go:generate mockery --name Repository --dir . --output ../../../../../mocks/approval --outpkg mocks --with-expecter --filename ApprovalRepository.go
type Repository interface {
	// DeactivateActive flips is_active to false on the post's active rows and
	// returns how many were flipped.
	DeactivateActive(ctx context.Context, postID int64) (int64, error)
	Create(ctx context.Context, decision *model.ApprovalDecision) (*model.ApprovalDecision, error)
	GetActive(ctx context.Context, postID int64) (*model.ApprovalDecision, error)
	// ListByPost returns the full history, newest first.
	ListByPost(ctx context.Context, postID int64) ([]*model.ApprovalDecision, error)
}
