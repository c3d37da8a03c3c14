package publish_service

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"pinstack-publish-service/internal/application/service/common"
	"pinstack-publish-service/internal/domain/custom_errors"
	"pinstack-publish-service/internal/domain/lifecycle"
	model "pinstack-publish-service/internal/domain/models"
	ports "pinstack-publish-service/internal/domain/ports/output"
	"pinstack-publish-service/internal/domain/ports/output/account"
	"pinstack-publish-service/internal/domain/ports/output/auth"
	failure_repository "pinstack-publish-service/internal/domain/ports/output/failure"
	media_repository "pinstack-publish-service/internal/domain/ports/output/media"
	"pinstack-publish-service/internal/domain/ports/output/platform"
	post_repository "pinstack-publish-service/internal/domain/ports/output/post"
	target_repository "pinstack-publish-service/internal/domain/ports/output/target"

	"golang.org/x/sync/errgroup"
)

const (
	defaultWorkers        = 8
	defaultAdapterTimeout = 30 * time.Second
)

type Options struct {
	Workers        int
	AdapterTimeout time.Duration
	// StaleAfter is how long a target may sit in PUBLISHING before
	// RecoverStale fails it. Defaults to twice the adapter timeout.
	StaleAfter time.Duration
}

type Dependencies struct {
	PostRepo     post_repository.Repository
	TargetRepo   target_repository.Repository
	MediaRepo    media_repository.Repository
	FailureRepo  failure_repository.Repository
	UOW          ports.UnitOfWork
	Adapters     platform.AdapterFactory
	Accounts     account.Directory
	Integrations account.Integrations
	Authorizer   auth.Authorizer
	Events       ports.EventPublisher
	Log          ports.Logger
	Metrics      ports.MetricsProvider
}

// OrchestratorService fans a post out to its targets. Target failures are
// recorded on the target and never returned as errors; only guard violations
// and storage errors reach the caller.
type OrchestratorService struct {
	postRepo     post_repository.Repository
	targetRepo   target_repository.Repository
	mediaRepo    media_repository.Repository
	failureRepo  failure_repository.Repository
	uow          ports.UnitOfWork
	adapters     platform.AdapterFactory
	accounts     account.Directory
	integrations account.Integrations
	authorizer   auth.Authorizer
	events       ports.EventPublisher
	log          ports.Logger
	metrics      ports.MetricsProvider

	workers        int
	adapterTimeout time.Duration
	staleAfter     time.Duration
	clock          func() time.Time
}

func NewOrchestratorService(deps Dependencies, opts Options) *OrchestratorService {
	if opts.Workers <= 0 {
		opts.Workers = defaultWorkers
	}
	if opts.AdapterTimeout <= 0 {
		opts.AdapterTimeout = defaultAdapterTimeout
	}
	if opts.StaleAfter < opts.AdapterTimeout {
		opts.StaleAfter = 2 * opts.AdapterTimeout
	}
	return &OrchestratorService{
		postRepo:       deps.PostRepo,
		targetRepo:     deps.TargetRepo,
		mediaRepo:      deps.MediaRepo,
		failureRepo:    deps.FailureRepo,
		uow:            deps.UOW,
		adapters:       deps.Adapters,
		accounts:       deps.Accounts,
		integrations:   deps.Integrations,
		authorizer:     deps.Authorizer,
		events:         deps.Events,
		log:            deps.Log,
		metrics:        deps.Metrics,
		workers:        opts.Workers,
		adapterTimeout: opts.AdapterTimeout,
		staleAfter:     opts.StaleAfter,
		clock:          time.Now,
	}
}

// PublishNow starts an APPROVED or SCHEDULED post immediately. A FAILED post is
// retried the same way RetryFailed does.
func (o *OrchestratorService) PublishNow(ctx context.Context, actor model.Actor, postID int64) (*model.Post, error) {
	return o.start(ctx, postID, func(post *model.Post) error {
		return o.authorizer.Authorize(actor, post.WorkspaceID, model.CapabilityPublish)
	}, func(ctx context.Context, tx ports.Transaction, post model.Post, targets []*model.PostTarget, now time.Time) (model.Post, error) {
		if post.Status == model.PostStatusFailed {
			return o.resetFailed(ctx, tx, post, targets, now)
		}
		return lifecycle.StartPublishing(post, lifecycle.Content{Targets: len(targets)}, now)
	})
}

// RetryFailed resets every FAILED target to PENDING and re-enters PUBLISHING.
// PUBLISHED targets are left untouched.
func (o *OrchestratorService) RetryFailed(ctx context.Context, actor model.Actor, postID int64) (*model.Post, error) {
	return o.start(ctx, postID, func(post *model.Post) error {
		return o.authorizer.Authorize(actor, post.WorkspaceID, model.CapabilityPublish)
	}, o.resetFailed)
}

func (o *OrchestratorService) PublishDue(ctx context.Context, postID int64) (*model.Post, error) {
	return o.start(ctx, postID, nil, func(_ context.Context, _ ports.Transaction, post model.Post, targets []*model.PostTarget, now time.Time) (model.Post, error) {
		if post.Status != model.PostStatusScheduled {
			return post, custom_errors.NewTransitionError(string(post.Status), string(model.PostStatusPublishing), nil)
		}
		if !post.ScheduledAt.Valid || post.ScheduledAt.Time.After(now) {
			return post, custom_errors.NewTransitionError(string(post.Status), string(model.PostStatusPublishing), custom_errors.ErrPostNotDue)
		}
		return lifecycle.StartPublishing(post, lifecycle.Content{Targets: len(targets)}, now)
	})
}

func (o *OrchestratorService) UpdateTargetMetrics(ctx context.Context, targetID int64, metrics json.RawMessage) error {
	if len(metrics) == 0 || !json.Valid(metrics) {
		return custom_errors.ErrInvalidInput
	}
	if err := o.targetRepo.UpdateMetrics(ctx, targetID, metrics); err != nil {
		return err
	}
	o.log.Debug("Target metrics updated", slog.Int64("target_id", targetID), slog.Int("bytes", len(metrics)))
	return nil
}

func (o *OrchestratorService) ListFailures(ctx context.Context, actor model.Actor, postID int64) ([]*model.PublishFailure, error) {
	post, err := o.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if err := o.authorizer.Authorize(actor, post.WorkspaceID, model.CapabilityView); err != nil {
		return nil, err
	}
	return o.failureRepo.ListByPost(ctx, postID)
}

type startStep func(ctx context.Context, tx ports.Transaction, post model.Post, targets []*model.PostTarget, now time.Time) (model.Post, error)

// start moves the post into PUBLISHING under its row lock, then dispatches
// the pending targets and returns the refreshed post.
func (o *OrchestratorService) start(ctx context.Context, postID int64, allow func(post *model.Post) error, step startStep) (*model.Post, error) {
	now := o.clock()
	var from model.PostStatus
	err := common.InTx(ctx, o.uow, o.log, func(tx ports.Transaction) error {
		current, err := tx.PostRepository().GetForUpdate(ctx, postID)
		if err != nil {
			return err
		}
		if allow != nil {
			if err := allow(current); err != nil {
				return err
			}
		}
		from = current.Status

		targets, err := tx.TargetRepository().ListByPost(ctx, postID)
		if err != nil {
			return err
		}
		next, err := step(ctx, tx, *current, targets, now)
		if err != nil {
			o.log.Debug("Publish start refused",
				slog.Int64("post_id", postID),
				slog.String("status", string(current.Status)),
				slog.String("error", err.Error()))
			return err
		}
		_, err = tx.PostRepository().Update(ctx, &next)
		return err
	})
	if err != nil {
		return nil, err
	}
	o.metrics.IncrementPostTransitions(string(from), string(model.PostStatusPublishing))
	o.log.Info("Post publishing started", slog.Int64("post_id", postID), slog.String("from", string(from)))

	// Targets must settle even if the caller goes away.
	o.dispatch(context.WithoutCancel(ctx), postID)

	return o.postRepo.GetByID(ctx, postID)
}

func (o *OrchestratorService) resetFailed(ctx context.Context, tx ports.Transaction, post model.Post, targets []*model.PostTarget, now time.Time) (model.Post, error) {
	failed := 0
	for _, t := range targets {
		if t.Status == model.TargetStatusFailed {
			failed++
		}
	}
	next, err := lifecycle.ResumePublishing(post, lifecycle.Content{Targets: len(targets)}, failed, now)
	if err != nil {
		return post, err
	}
	for _, t := range targets {
		reset, ok := lifecycle.ResetForRetry(*t, now)
		if !ok {
			continue
		}
		if _, err := tx.TargetRepository().Update(ctx, &reset); err != nil {
			return post, err
		}
		o.log.Info("Target reset for retry",
			slog.Int64("post_id", post.ID),
			slog.Int64("target_id", t.ID),
			slog.Int("retry_count", reset.RetryCount))
	}
	return next, nil
}

// dispatch processes every PENDING target of the post through the worker
// pool and re-evaluates aggregation once they are done.
func (o *OrchestratorService) dispatch(ctx context.Context, postID int64) {
	targets, err := o.targetRepo.ListByPost(ctx, postID)
	if err != nil {
		o.log.Error("Failed to list targets for dispatch", slog.Int64("post_id", postID), slog.String("error", err.Error()))
		return
	}

	var g errgroup.Group
	g.SetLimit(o.workers)
	for _, t := range targets {
		if t.Status != model.TargetStatusPending {
			continue
		}
		targetID := t.ID
		g.Go(func() error {
			if _, err := o.ProcessTarget(ctx, targetID); err != nil {
				o.log.Debug("Target not processed",
					slog.Int64("post_id", postID),
					slog.Int64("target_id", targetID),
					slog.String("reason", err.Error()))
			}
			return nil
		})
	}
	_ = g.Wait()

	if _, err := o.UpdatePostStatusFromTargets(ctx, postID); err != nil {
		o.log.Error("Failed to aggregate post status", slog.Int64("post_id", postID), slog.String("error", err.Error()))
	}
}
