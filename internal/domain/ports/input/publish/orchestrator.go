package publish_service

import (
	"context"
	"encoding/json"

	model "pinstack-publish-service/internal/domain/models"
)

//go:generate mockery --name Orchestrator --dir . --output ../../../../../mocks/service --outpkg mocks --with-expecter --filename Orchestrator.go
type Orchestrator interface {
	PublishNow(ctx context.Context, actor model.Actor, postID int64) (*model.Post, error)
	RetryFailed(ctx context.Context, actor model.Actor, postID int64) (*model.Post, error)
	// PublishDue starts a SCHEDULED post. It is the scheduler's entry point.
	PublishDue(ctx context.Context, postID int64) (*model.Post, error)
	ProcessTarget(ctx context.Context, targetID int64) (*model.PostTarget, error)
	UpdatePostStatusFromTargets(ctx context.Context, postID int64) (*model.Post, error)
	// RecoverStale fails targets whose attempt never settled and re-runs
	// aggregation for their posts. It returns the number of targets recovered.
	RecoverStale(ctx context.Context) (int, error)
	UpdateTargetMetrics(ctx context.Context, targetID int64, metrics json.RawMessage) error
	ListFailures(ctx context.Context, actor model.Actor, postID int64) ([]*model.PublishFailure, error)
}
