package publish_service

import (
	"context"
	"log/slog"

	"pinstack-publish-service/internal/application/service/common"
	"pinstack-publish-service/internal/domain/aggregation"
	"pinstack-publish-service/internal/domain/lifecycle"
	model "pinstack-publish-service/internal/domain/models"
	ports "pinstack-publish-service/internal/domain/ports/output"
)

// UpdatePostStatusFromTargets settles a PUBLISHING post once all its targets
// are settled. It is safe to call at any time: with unsettled targets, or on a
// post that is no longer PUBLISHING, it returns the post unchanged.
func (o *OrchestratorService) UpdatePostStatusFromTargets(ctx context.Context, postID int64) (*model.Post, error) {
	now := o.clock()
	var (
		post    *model.Post
		result  aggregation.Result
		changed bool
	)
	err := common.InTx(ctx, o.uow, o.log, func(tx ports.Transaction) error {
		current, err := tx.PostRepository().GetForUpdate(ctx, postID)
		if err != nil {
			return err
		}
		post = current
		if current.Status != model.PostStatusPublishing {
			return nil
		}

		targets, err := tx.TargetRepository().ListByPost(ctx, postID)
		if err != nil {
			return err
		}
		result = aggregation.Evaluate(targets)
		status, settled := result.Verdict.PostStatus()
		if !settled {
			return nil
		}

		next, err := lifecycle.Complete(*current, status, now)
		if err != nil {
			return err
		}
		post, err = tx.PostRepository().Update(ctx, &next)
		if err != nil {
			return err
		}
		changed = true
		return nil
	})
	if err != nil {
		return nil, err
	}
	if !changed {
		return post, nil
	}

	o.metrics.IncrementAggregations(result.Verdict.String())
	o.metrics.IncrementPostTransitions(string(model.PostStatusPublishing), string(post.Status))

	switch result.Verdict {
	case aggregation.VerdictPartial:
		o.log.Warn("Post published with failed targets",
			slog.Int64("post_id", postID),
			slog.Int("published", result.Published),
			slog.Int("failed", result.Failed),
			slog.Any("failures", result.Failures))
	case aggregation.VerdictFailed:
		o.log.Error("Post failed on every target", slog.Int64("post_id", postID), slog.Int("failed", result.Failed))
	default:
		o.log.Info("Post published", slog.Int64("post_id", postID), slog.Int("published", result.Published))
	}

	name := model.EventPostPublished
	if post.Status == model.PostStatusFailed {
		name = model.EventPostFailed
	}
	common.Emit(ctx, o.events, o.log, common.NewEvent(name, post, nil, now))
	return post, nil
}
