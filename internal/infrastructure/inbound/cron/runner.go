package cron_runner

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	scheduler_service "pinstack-publish-service/internal/domain/ports/input/scheduler"
	ports "pinstack-publish-service/internal/domain/ports/output"

	"github.com/robfig/cron/v3"
)

// Runner fires the due scheduler on a cron spec. Overlapping ticks are
// skipped while a batch is still running.
type Runner struct {
	cron      *cron.Cron
	scheduler scheduler_service.DueScheduler
	spec      string
	timeout   time.Duration
	log       ports.Logger
}

func NewRunner(scheduler scheduler_service.DueScheduler, spec string, timeout time.Duration, log ports.Logger) *Runner {
	cronLog := cronLogger{log: log}
	return &Runner{
		cron: cron.New(
			cron.WithParser(cron.NewParser(cron.SecondOptional|cron.Minute|cron.Hour|cron.Dom|cron.Month|cron.Dow|cron.Descriptor)),
			cron.WithLogger(cronLog),
			cron.WithChain(cron.Recover(cronLog), cron.SkipIfStillRunning(cronLog)),
		),
		scheduler: scheduler,
		spec:      spec,
		timeout:   timeout,
		log:       log,
	}
}

func (r *Runner) Start() error {
	if _, err := r.cron.AddFunc(r.spec, r.tick); err != nil {
		return fmt.Errorf("invalid scheduler spec %q: %w", r.spec, err)
	}
	r.cron.Start()
	r.log.Info("Due scheduler started", slog.String("spec", r.spec))
	return nil
}

// Stop waits for a running batch to finish or ctx to expire.
func (r *Runner) Stop(ctx context.Context) error {
	done := r.cron.Stop()
	select {
	case <-done.Done():
		r.log.Info("Due scheduler stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r *Runner) tick() {
	ctx := context.Background()
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	report, err := r.scheduler.RunDueBatch(ctx)
	if err != nil {
		r.log.Error("Due batch failed", slog.String("error", err.Error()))
		return
	}
	if report.Skipped {
		r.log.Debug("Due batch skipped, lease held elsewhere")
		return
	}
	r.log.Info("Due batch finished",
		slog.Int("due", report.Due),
		slog.Int("dispatched", len(report.Dispatched)),
		slog.Int("failed", len(report.Failed)))
}

type cronLogger struct {
	log ports.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.log.Debug(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	if err != nil {
		keysAndValues = append(keysAndValues, slog.String("error", err.Error()))
	}
	l.log.Error(msg, keysAndValues...)
}
