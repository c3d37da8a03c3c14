package publish_service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"pinstack-publish-service/internal/application/service/common"
	"pinstack-publish-service/internal/domain/custom_errors"
	"pinstack-publish-service/internal/domain/lifecycle"
	model "pinstack-publish-service/internal/domain/models"
	ports "pinstack-publish-service/internal/domain/ports/output"
	"pinstack-publish-service/internal/domain/ports/output/platform"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// outcome is the settled result of one attempt.
type outcome struct {
	success     bool
	externalID  *string
	externalURL *string
	code        string
	message     string
}

func failure(code, message string) outcome {
	return outcome{code: code, message: message}
}

// ProcessTarget runs one publish attempt for a PENDING target of a PUBLISHING
// post and re-evaluates aggregation afterwards.
func (o *OrchestratorService) ProcessTarget(ctx context.Context, targetID int64) (*model.PostTarget, error) {
	target, err := o.targetRepo.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}
	post, err := o.postRepo.GetByID(ctx, target.PostID)
	if err != nil {
		return nil, err
	}
	if post.Status != model.PostStatusPublishing {
		if post.Status == model.PostStatusCancelled {
			o.log.Info("Post cancelled, target not started",
				slog.Int64("post_id", post.ID),
				slog.Int64("target_id", targetID))
		}
		return target, custom_errors.ErrPostNotPublishing
	}

	claimed, err := o.targetRepo.Claim(ctx, targetID, o.clock())
	if err != nil {
		return target, err
	}

	log := o.log.With(
		slog.Int64("post_id", post.ID),
		slog.Int64("target_id", claimed.ID),
		slog.String("platform", claimed.Platform),
		slog.Int64("account_id", claimed.AccountID),
	)

	result := o.attempt(ctx, log, claimed, post)

	settled, discarded, err := o.settle(ctx, log, claimed, post, result)
	if err != nil {
		return claimed, err
	}
	if discarded {
		return settled, nil
	}

	if _, err := o.UpdatePostStatusFromTargets(ctx, post.ID); err != nil {
		log.Error("Failed to aggregate after target settled", slog.String("error", err.Error()))
	}
	return settled, nil
}

// attempt runs the pre-flight checks and, when they pass, the adapter call.
func (o *OrchestratorService) attempt(ctx context.Context, log ports.Logger, target *model.PostTarget, post *model.Post) outcome {
	adapter, err := o.adapters.Create(target.Platform)
	if err != nil {
		return failure(model.TargetErrUnknownPlatform, fmt.Sprintf("platform %q is not supported", target.Platform))
	}

	acct, err := o.accounts.Get(ctx, target.AccountID)
	switch {
	case errors.Is(err, custom_errors.ErrAccountNotFound):
		return failure(model.TargetErrAccountNotFound, "destination account does not exist")
	case err != nil:
		log.Error("Account lookup failed", slog.String("error", err.Error()))
		return failure(model.TargetErrLookupFailed, "account lookup failed")
	case acct.WorkspaceID != post.WorkspaceID:
		return failure(model.TargetErrAccountNotFound, "destination account belongs to another workspace")
	case !acct.CanPublish():
		return failure(model.TargetErrAccountCannotPublish, fmt.Sprintf("destination account is %s", acct.Status))
	}

	active, err := o.integrations.IsActive(ctx, target.Platform)
	if err != nil {
		log.Error("Integration lookup failed", slog.String("error", err.Error()))
		return failure(model.TargetErrLookupFailed, "integration lookup failed")
	}
	if !active {
		return failure(model.TargetErrIntegrationDisabled, fmt.Sprintf("%s integration is disabled", target.Platform))
	}

	if acct.IsTokenExpired(o.clock()) {
		if err := o.accounts.MarkTokenExpired(ctx, acct.ID); err != nil {
			log.Warn("Failed to mark account token expired", slog.String("error", err.Error()))
		}
		return failure(model.TargetErrTokenExpired, "access token has expired")
	}

	media, err := o.mediaRepo.GetByPost(ctx, post.ID)
	if err != nil {
		log.Error("Media lookup failed", slog.String("error", err.Error()))
		return failure(model.TargetErrLookupFailed, "media lookup failed")
	}

	return o.callAdapter(ctx, adapter, target, post, media)
}

type adapterReturn struct {
	result *platform.PublishResult
	err    error
	panic  any
}

// callAdapter bounds the call by the adapter timeout. An adapter that ignores
// its context is abandoned when the deadline passes.
func (o *OrchestratorService) callAdapter(ctx context.Context, adapter platform.Adapter, target *model.PostTarget, post *model.Post, media []*model.PostMedia) outcome {
	callCtx, cancel := context.WithTimeout(ctx, o.adapterTimeout)
	defer cancel()

	done := make(chan adapterReturn, 1)
	start := time.Now()
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- adapterReturn{panic: r}
			}
		}()
		res, err := adapter.Publish(callCtx, target, post, media)
		done <- adapterReturn{result: res, err: err}
	}()

	var ret adapterReturn
	select {
	case ret = <-done:
	case <-callCtx.Done():
		ret = adapterReturn{err: callCtx.Err()}
	}
	o.metrics.RecordAdapterCallDuration(target.Platform, time.Since(start))

	switch {
	case ret.panic != nil:
		return failure(model.TargetErrAdapterPanic, fmt.Sprintf("adapter panicked: %v", ret.panic))
	case errors.Is(ret.err, context.DeadlineExceeded):
		return failure(model.TargetErrAdapterTimeout, fmt.Sprintf("adapter did not answer within %s", o.adapterTimeout))
	case ret.err != nil:
		return failure(model.TargetErrAdapter, ret.err.Error())
	case ret.result == nil:
		return failure(model.TargetErrAdapter, "adapter returned no result")
	case !ret.result.Success:
		code := ret.result.ErrorCode
		if code == "" {
			code = model.TargetErrAdapter
		}
		message := ret.result.ErrorMessage
		if message == "" {
			message = "platform rejected the publish"
		}
		return failure(code, message)
	}
	return outcome{success: true, externalID: ret.result.ExternalPostID, externalURL: ret.result.ExternalPostURL}
}

// settle persists the outcome under the post's row lock. If the post was
// cancelled meanwhile the result is dropped and the target returns to PENDING.
func (o *OrchestratorService) settle(ctx context.Context, log ports.Logger, target *model.PostTarget, post *model.Post, res outcome) (*model.PostTarget, bool, error) {
	now := o.clock()
	var (
		saved     *model.PostTarget
		discarded bool
		recorded  *model.PublishFailure
	)
	err := common.InTx(ctx, o.uow, o.log, func(tx ports.Transaction) error {
		current, err := tx.PostRepository().GetForUpdate(ctx, post.ID)
		if err != nil {
			return err
		}

		var next model.PostTarget
		switch {
		case current.Status == model.PostStatusCancelled:
			discarded = true
			next = lifecycle.Discard(*target, now)
		case res.success:
			next = lifecycle.MarkPublished(*target, res.externalID, res.externalURL, now)
		default:
			next = lifecycle.MarkFailed(*target, res.code, res.message, now)
		}

		saved, err = tx.TargetRepository().Update(ctx, &next)
		if err != nil {
			return err
		}
		if discarded || res.success {
			return nil
		}

		recorded, err = recordFailure(ctx, tx, post, target, res.code, res.message, now)
		return err
	})
	if err != nil {
		log.Error("Failed to settle target", slog.String("error", err.Error()))
		return nil, false, err
	}

	switch {
	case discarded:
		log.Info("Post cancelled during attempt, result discarded",
			slog.Bool("success", res.success),
			slog.String("error_code", res.code))
	case res.success:
		o.metrics.IncrementTargetOutcomes(target.Platform, string(model.TargetStatusPublished), "")
		log.Info("Target published", slog.Any("external_post_id", saved.ExternalPostID))
	default:
		o.metrics.IncrementTargetOutcomes(target.Platform, string(model.TargetStatusFailed), res.code)
		log.Error("Target publish failed",
			slog.Int64("workspace_id", post.WorkspaceID),
			slog.String("error_code", res.code),
			slog.String("error_message", res.message),
			slog.Int("retry_count", target.RetryCount),
			slog.String("attempt_id", recorded.AttemptID))
	}
	return saved, discarded, nil
}

func recordFailure(ctx context.Context, tx ports.Transaction, post *model.Post, target *model.PostTarget, code, message string, now time.Time) (*model.PublishFailure, error) {
	return tx.FailureRepository().Record(ctx, &model.PublishFailure{
		AttemptID:    uuid.NewString(),
		PostID:       post.ID,
		TargetID:     target.ID,
		WorkspaceID:  post.WorkspaceID,
		Platform:     target.Platform,
		AccountID:    target.AccountID,
		ErrorCode:    code,
		ErrorMessage: message,
		RetryCount:   target.RetryCount,
		OccurredAt:   pgtype.Timestamptz{Time: now, Valid: true},
	})
}
