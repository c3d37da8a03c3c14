package approval_service

import (
	"context"

	model "pinstack-publish-service/internal/domain/models"
)

//go:generate mockery --name Ledger --dir . --output ../../../../../mocks/service --outpkg mocks --with-expecter --filename ApprovalLedger.go
type Ledger interface {
	Approve(ctx context.Context, actor model.Actor, postID int64, comment *string) (*model.ApprovalDecision, error)
	Reject(ctx context.Context, actor model.Actor, postID int64, reject model.RejectDTO) (*model.ApprovalDecision, error)
	History(ctx context.Context, actor model.Actor, postID int64) ([]*model.ApprovalDecision, error)
}
