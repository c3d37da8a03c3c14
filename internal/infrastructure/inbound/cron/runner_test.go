package cron_runner

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	scheduler_service "pinstack-publish-service/internal/domain/ports/input/scheduler"
	"pinstack-publish-service/internal/infrastructure/logger"
	service_mock "pinstack-publish-service/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRunner_InvalidSpec(t *testing.T) {
	runner := NewRunner(service_mock.NewDueScheduler(t), "every tuesday", time.Second, logger.New("test"))
	assert.Error(t, runner.Start())
}

func TestRunner_FiresScheduler(t *testing.T) {
	scheduler := service_mock.NewDueScheduler(t)
	fired := make(chan struct{}, 10)
	scheduler.EXPECT().RunDueBatch(mock.Anything).RunAndReturn(func(ctx context.Context) (*scheduler_service.BatchReport, error) {
		_, hasDeadline := ctx.Deadline()
		assert.True(t, hasDeadline, "each run is bounded")
		fired <- struct{}{}
		return &scheduler_service.BatchReport{Dispatched: []int64{}, Failed: []int64{}}, nil
	})

	runner := NewRunner(scheduler, "@every 1s", 5*time.Second, logger.New("test"))
	require.NoError(t, runner.Start())

	select {
	case <-fired:
	case <-time.After(3 * time.Second):
		t.Fatal("scheduler was not fired")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, runner.Stop(ctx))
}

func TestRunner_Tick(t *testing.T) {
	tests := []struct {
		name    string
		report  *scheduler_service.BatchReport
		err     error
		wantLog string
	}{
		{
			name:    "Finished",
			report:  &scheduler_service.BatchReport{Due: 3, Dispatched: []int64{1, 2}, Failed: []int64{3}},
			wantLog: "Due batch finished",
		},
		{
			name:    "Skipped",
			report:  &scheduler_service.BatchReport{Skipped: true},
			wantLog: "Due batch skipped",
		},
		{
			name:    "Failed",
			err:     errors.New("database down"),
			wantLog: "Due batch failed",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			scheduler := service_mock.NewDueScheduler(t)
			scheduler.EXPECT().RunDueBatch(mock.Anything).Return(tt.report, tt.err).Once()

			runner := NewRunner(scheduler, "@every 1m", 0, logger.NewWithWriter("test", &buf))
			runner.tick()

			assert.True(t, strings.Contains(buf.String(), tt.wantLog), buf.String())
		})
	}
}

func TestCronLogger(t *testing.T) {
	var buf bytes.Buffer
	l := cronLogger{log: logger.NewWithWriter("test", &buf)}

	l.Info("schedule", "entry", 1)
	l.Error(nil, "panic recovered")
	l.Error(errors.New("boom"), "job failed")

	out := buf.String()
	assert.Contains(t, out, "level=DEBUG msg=schedule")
	assert.Contains(t, out, "panic recovered")
	assert.Contains(t, out, "error=boom")
}
