package publish_service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"pinstack-publish-service/internal/application/service/common"
	"pinstack-publish-service/internal/domain/lifecycle"
	model "pinstack-publish-service/internal/domain/models"
	ports "pinstack-publish-service/internal/domain/ports/output"
)

const staleBatchSize = 100

// RecoverStale finds targets stuck in PUBLISHING, left behind by a process that
// died mid-attempt or a settle write that failed, and fails them with
// stale_attempt. The adapter call may have reached the platform, so the target
// is not re-published; a RetryFailed decides that. Targets of a cancelled post
// return to PENDING instead.
func (o *OrchestratorService) RecoverStale(ctx context.Context) (int, error) {
	now := o.clock()
	cutoff := now.Add(-o.staleAfter)
	stale, err := o.targetRepo.ListStale(ctx, cutoff, staleBatchSize)
	if err != nil {
		o.log.Error("Failed to list stale targets", slog.String("error", err.Error()))
		return 0, err
	}

	recovered := 0
	posts := make([]int64, 0, len(stale))
	seen := make(map[int64]struct{}, len(stale))
	for _, target := range stale {
		expired, err := o.expire(ctx, target.ID, cutoff, now)
		if err != nil {
			o.log.Error("Failed to recover stale target",
				slog.Int64("target_id", target.ID),
				slog.Int64("post_id", target.PostID),
				slog.String("error", err.Error()))
			continue
		}
		if !expired {
			continue
		}
		recovered++
		if _, ok := seen[target.PostID]; !ok {
			seen[target.PostID] = struct{}{}
			posts = append(posts, target.PostID)
		}
	}

	for _, postID := range posts {
		if _, err := o.UpdatePostStatusFromTargets(ctx, postID); err != nil {
			o.log.Error("Failed to aggregate after stale recovery",
				slog.Int64("post_id", postID),
				slog.String("error", err.Error()))
		}
	}
	if recovered > 0 {
		o.log.Warn("Recovered stale publish attempts",
			slog.Int("targets", recovered),
			slog.Int("posts", len(posts)))
	}
	return recovered, nil
}

// expire settles one stale target under its post's row lock. The target is
// re-read under the lock so an attempt that settled in the meantime wins.
func (o *OrchestratorService) expire(ctx context.Context, targetID int64, cutoff, now time.Time) (bool, error) {
	var (
		expired bool
		target  model.PostTarget
	)
	err := common.InTx(ctx, o.uow, o.log, func(tx ports.Transaction) error {
		candidate, err := tx.TargetRepository().GetByID(ctx, targetID)
		if err != nil {
			return err
		}
		post, err := tx.PostRepository().GetForUpdate(ctx, candidate.PostID)
		if err != nil {
			return err
		}
		current, err := tx.TargetRepository().GetByID(ctx, targetID)
		if err != nil {
			return err
		}
		if !lifecycle.IsStale(*current, cutoff) {
			return nil
		}

		if post.Status == model.PostStatusCancelled {
			target = lifecycle.Discard(*current, now)
			_, err = tx.TargetRepository().Update(ctx, &target)
			expired = err == nil
			return err
		}

		message := fmt.Sprintf("attempt started at %s did not settle", current.UpdatedAt.Time.UTC().Format(time.RFC3339))
		target = lifecycle.MarkFailed(*current, model.TargetErrStaleAttempt, message, now)
		if _, err := tx.TargetRepository().Update(ctx, &target); err != nil {
			return err
		}
		if _, err := recordFailure(ctx, tx, post, current, model.TargetErrStaleAttempt, message, now); err != nil {
			return err
		}
		expired = true
		return nil
	})
	if err != nil {
		return false, err
	}
	if expired && target.Status == model.TargetStatusFailed {
		o.metrics.IncrementTargetOutcomes(target.Platform, string(model.TargetStatusFailed), model.TargetErrStaleAttempt)
	}
	return expired, nil
}
