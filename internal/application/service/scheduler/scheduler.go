package scheduler_service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"pinstack-publish-service/internal/domain/custom_errors"
	publish_service "pinstack-publish-service/internal/domain/ports/input/publish"
	scheduler_port "pinstack-publish-service/internal/domain/ports/input/scheduler"
	ports "pinstack-publish-service/internal/domain/ports/output"
	"pinstack-publish-service/internal/domain/ports/output/lock"
	post_repository "pinstack-publish-service/internal/domain/ports/output/post"
)

const (
	DefaultBatchSize = 100
	defaultLeaseTTL  = 55 * time.Second
	leaseKey         = "scheduler:due-batch"
)

// DueSchedulerService dispatches due SCHEDULED posts, oldest first, at most
// batchSize per run. Overflow waits for the next run. Each run also sweeps
// stale publish attempts. A lease keeps two instances from running the same
// batch.
type DueSchedulerService struct {
	postRepo     post_repository.Repository
	orchestrator publish_service.Orchestrator
	locker       lock.Locker
	log          ports.Logger
	metrics      ports.MetricsProvider
	batchSize    int
	leaseTTL     time.Duration
	clock        func() time.Time
}

func NewDueSchedulerService(
	postRepo post_repository.Repository,
	orchestrator publish_service.Orchestrator,
	locker lock.Locker,
	log ports.Logger,
	metrics ports.MetricsProvider,
	batchSize int,
	leaseTTL time.Duration,
) *DueSchedulerService {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	if leaseTTL <= 0 {
		leaseTTL = defaultLeaseTTL
	}
	return &DueSchedulerService{
		postRepo:     postRepo,
		orchestrator: orchestrator,
		locker:       locker,
		log:          log,
		metrics:      metrics,
		batchSize:    batchSize,
		leaseTTL:     leaseTTL,
		clock:        time.Now,
	}
}

func (s *DueSchedulerService) RunDueBatch(ctx context.Context) (*scheduler_port.BatchReport, error) {
	report := &scheduler_port.BatchReport{Dispatched: []int64{}, Failed: []int64{}}

	if s.locker != nil {
		lease, err := s.locker.TryLock(ctx, leaseKey, s.leaseTTL)
		if err != nil {
			if errors.Is(err, custom_errors.ErrLeaseNotAcquired) {
				s.log.Debug("Due batch already running elsewhere")
				report.Skipped = true
				return report, nil
			}
			return nil, err
		}
		defer func() {
			if err := lease.Release(context.WithoutCancel(ctx)); err != nil {
				s.log.Warn("Failed to release scheduler lease", slog.String("error", err.Error()))
			}
		}()
	}

	due, err := s.postRepo.ListDue(ctx, s.clock(), s.batchSize)
	if err != nil {
		s.log.Error("Failed to list due posts", slog.String("error", err.Error()))
		return nil, err
	}
	report.Due = len(due)
	s.metrics.RecordSchedulerBatchSize(len(due))

	for _, post := range due {
		if err := ctx.Err(); err != nil {
			s.log.Warn("Due batch interrupted",
				slog.Int("dispatched", len(report.Dispatched)),
				slog.Int("remaining", len(due)-len(report.Dispatched)-len(report.Failed)))
			break
		}
		if err := s.dispatch(ctx, post.ID); err != nil {
			report.Failed = append(report.Failed, post.ID)
			s.metrics.IncrementSchedulerDispatches(false)
			s.log.Error("Failed to dispatch due post",
				slog.Int64("post_id", post.ID),
				slog.String("error", err.Error()))
			continue
		}
		report.Dispatched = append(report.Dispatched, post.ID)
		s.metrics.IncrementSchedulerDispatches(true)
	}

	report.Recovered = s.recoverStale(ctx)

	if report.Due > 0 || report.Recovered > 0 {
		s.log.Info("Due batch finished",
			slog.Int("due", report.Due),
			slog.Int("dispatched", len(report.Dispatched)),
			slog.Int("failed", len(report.Failed)),
			slog.Int("recovered", report.Recovered))
	}
	return report, nil
}

// recoverStale sweeps targets stuck in PUBLISHING. A failing sweep does not
// fail the batch.
func (s *DueSchedulerService) recoverStale(ctx context.Context) (recovered int) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("Panic while recovering stale targets", slog.Any("panic", r))
		}
	}()
	if ctx.Err() != nil {
		return 0
	}
	recovered, err := s.orchestrator.RecoverStale(ctx)
	if err != nil {
		s.log.Error("Failed to recover stale targets", slog.String("error", err.Error()))
		return 0
	}
	return recovered
}

// dispatch isolates one post so that neither an error nor a panic stops the
// batch.
func (s *DueSchedulerService) dispatch(ctx context.Context, postID int64) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic while dispatching post %d: %v", postID, r)
		}
	}()
	_, err = s.orchestrator.PublishDue(ctx, postID)
	return err
}
