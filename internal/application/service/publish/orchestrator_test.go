package publish_service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"pinstack-publish-service/internal/domain/custom_errors"
	model "pinstack-publish-service/internal/domain/models"
	"pinstack-publish-service/internal/domain/ports/output/platform"
	"pinstack-publish-service/internal/infrastructure/logger"
	"pinstack-publish-service/internal/infrastructure/outbound/auth"
	"pinstack-publish-service/internal/infrastructure/outbound/metrics/prometheus"
	platform_adapter "pinstack-publish-service/internal/infrastructure/outbound/platform"
	"pinstack-publish-service/internal/infrastructure/outbound/repository/memory"
	account_mock "pinstack-publish-service/mocks/account"
	events_mock "pinstack-publish-service/mocks/events"
	failure_mock "pinstack-publish-service/mocks/failure"
	platform_mock "pinstack-publish-service/mocks/platform"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	publisher = model.Actor{UserID: 20, WorkspaceID: 1, Role: model.RoleApprover}
	writer    = model.Actor{UserID: 21, WorkspaceID: 1, Role: model.RoleEditor}
)

func strPtr(s string) *string { return &s }

type fixture struct {
	svc          *OrchestratorService
	store        *memory.Store
	registry     *platform_adapter.Registry
	accounts     *account_mock.Directory
	integrations *account_mock.Integrations
	events       *events_mock.EventPublisher
	logs         *bytes.Buffer
}

type syncBuffer struct {
	mu  sync.Mutex
	buf *bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func newFixture(t *testing.T, opts Options) *fixture {
	logs := &bytes.Buffer{}
	log := logger.NewWithWriter("prod", &syncBuffer{buf: logs})
	store := memory.NewStore(log)
	registry := platform_adapter.NewRegistry(log)
	accounts := account_mock.NewDirectory(t)
	integrations := account_mock.NewIntegrations(t)
	events := events_mock.NewEventPublisher(t)

	integrations.On("IsActive", mock.Anything, mock.Anything).Return(true, nil).Maybe()

	svc := NewOrchestratorService(Dependencies{
		PostRepo:     store.PostRepository(),
		TargetRepo:   store.TargetRepository(),
		MediaRepo:    store.MediaRepository(),
		FailureRepo:  store.FailureRepository(),
		UOW:          store.UnitOfWork(),
		Adapters:     registry,
		Accounts:     accounts,
		Integrations: integrations,
		Authorizer:   auth.NewRoleAuthorizer(),
		Events:       events,
		Log:          log,
		Metrics:      prometheus.NewPrometheusMetricsProvider(),
	}, opts)
	return &fixture{
		svc:          svc,
		store:        store,
		registry:     registry,
		accounts:     accounts,
		integrations: integrations,
		events:       events,
		logs:         logs,
	}
}

type seedTarget struct {
	accountID int64
	platform  string
}

// seed stores a post in status with one target per entry and registers an
// active account for each of them.
func (f *fixture) seed(t *testing.T, status model.PostStatus, targets ...seedTarget) (int64, []int64) {
	ctx := context.Background()
	post, err := f.store.PostRepository().Create(ctx, &model.Post{WorkspaceID: 1, AuthorID: 1, Body: strPtr("Big news")})
	require.NoError(t, err)
	post.Status = status
	_, err = f.store.PostRepository().Update(ctx, post)
	require.NoError(t, err)

	rows := make([]*model.PostTarget, 0, len(targets))
	for _, st := range targets {
		rows = append(rows, &model.PostTarget{AccountID: st.accountID, Platform: st.platform})
		f.accounts.On("Get", mock.Anything, st.accountID).Return(&model.Account{
			ID:          st.accountID,
			WorkspaceID: 1,
			Platform:    st.platform,
			Status:      model.AccountStatusActive,
		}, nil).Maybe()
	}
	created, err := f.store.TargetRepository().CreateBatch(ctx, post.ID, rows)
	require.NoError(t, err)
	ids := make([]int64, 0, len(created))
	for _, c := range created {
		ids = append(ids, c.ID)
	}
	return post.ID, ids
}

func (f *fixture) adapter(t *testing.T, code string) *platform_mock.Adapter {
	a := platform_mock.NewAdapter(t)
	f.registry.Register(code, a)
	return a
}

func (f *fixture) post(t *testing.T, id int64) *model.Post {
	p, err := f.store.PostRepository().GetByID(context.Background(), id)
	require.NoError(t, err)
	return p
}

func (f *fixture) target(t *testing.T, id int64) *model.PostTarget {
	tg, err := f.store.TargetRepository().GetByID(context.Background(), id)
	require.NoError(t, err)
	return tg
}

func published(id string) *platform.PublishResult {
	return &platform.PublishResult{Success: true, ExternalPostID: strPtr(id), ExternalPostURL: strPtr("https://social.example/" + id)}
}

func expectEvent(f *fixture, name model.EventName) {
	f.events.On("Publish", mock.Anything, mock.MatchedBy(func(e *model.DomainEvent) bool {
		return e.Name == name
	})).Return(nil).Once()
}

func TestOrchestrator_PartialSuccessIsPublishedWithWarning(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, Options{Workers: 3})
	postID, targetIDs := f.seed(t, model.PostStatusApproved,
		seedTarget{1, "x"}, seedTarget{2, "linkedin"}, seedTarget{3, "facebook"})

	f.adapter(t, "x").EXPECT().Publish(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(published("x-1"), nil).Once()
	f.adapter(t, "linkedin").EXPECT().Publish(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(&platform.PublishResult{Success: false, ErrorCode: "server_error", ErrorMessage: "try later"}, nil).Once()
	f.adapter(t, "facebook").EXPECT().Publish(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(&platform.PublishResult{Success: false, ErrorCode: "rate_limited", ErrorMessage: "slow down"}, nil).Once()
	expectEvent(f, model.EventPostPublished)

	got, err := f.svc.PublishNow(ctx, publisher, postID)
	require.NoError(t, err)
	assert.Equal(t, model.PostStatusPublished, got.Status)
	assert.True(t, got.PublishedAt.Valid)

	assert.Equal(t, model.TargetStatusPublished, f.target(t, targetIDs[0]).Status)
	li := f.target(t, targetIDs[1])
	assert.Equal(t, model.TargetStatusFailed, li.Status)
	assert.Equal(t, "server_error", *li.ErrorCode)
	fb := f.target(t, targetIDs[2])
	assert.Equal(t, model.TargetStatusFailed, fb.Status)
	assert.Equal(t, "rate_limited", *fb.ErrorCode)

	failures, err := f.svc.ListFailures(ctx, writer, postID)
	require.NoError(t, err)
	require.Len(t, failures, 2)
	for _, failure := range failures {
		assert.NotEmpty(t, failure.AttemptID)
	}

	var warn string
	for _, line := range strings.Split(f.logs.String(), "\n") {
		if strings.Contains(line, "Post published with failed targets") {
			warn = line
		}
	}
	require.NotEmpty(t, warn, "partial success must be logged")

	var record struct {
		Level    string `json:"level"`
		PostID   int64  `json:"post_id"`
		Failed   int    `json:"failed"`
		Failures []struct {
			TargetID int64  `json:"target_id"`
			Platform string `json:"platform"`
			Code     string `json:"error_code"`
			Message  string `json:"error_message"`
		} `json:"failures"`
	}
	require.NoError(t, json.Unmarshal([]byte(warn), &record))
	assert.Equal(t, "WARN", record.Level)
	assert.Equal(t, postID, record.PostID)
	assert.Equal(t, 2, record.Failed)
	require.Len(t, record.Failures, 2, "every failed target keeps its own entry")

	byPlatform := map[string]string{}
	for _, failure := range record.Failures {
		byPlatform[failure.Platform] = failure.Code
	}
	assert.Equal(t, map[string]string{"linkedin": "server_error", "facebook": "rate_limited"}, byPlatform)
}

func TestOrchestrator_AllTargetsFail(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, Options{})
	postID, targetIDs := f.seed(t, model.PostStatusApproved, seedTarget{1, "x"}, seedTarget{2, "linkedin"})

	f.adapter(t, "x").EXPECT().Publish(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("connection refused")).Once()
	f.adapter(t, "linkedin").EXPECT().Publish(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(&platform.PublishResult{Success: false}, nil).Once()
	expectEvent(f, model.EventPostFailed)

	got, err := f.svc.PublishNow(ctx, publisher, postID)
	require.NoError(t, err, "target failures are recorded, not returned")
	assert.Equal(t, model.PostStatusFailed, got.Status)

	x := f.target(t, targetIDs[0])
	assert.Equal(t, model.TargetErrAdapter, *x.ErrorCode)
	assert.Equal(t, "connection refused", *x.ErrorMessage)
	li := f.target(t, targetIDs[1])
	assert.Equal(t, model.TargetErrAdapter, *li.ErrorCode)

	failures, err := f.store.FailureRepository().ListByPost(ctx, postID)
	require.NoError(t, err)
	assert.Len(t, failures, 2)
}

func TestOrchestrator_RetryTouchesOnlyFailedTargets(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, Options{})
	postID, targetIDs := f.seed(t, model.PostStatusApproved, seedTarget{1, "x"}, seedTarget{2, "facebook"})

	f.adapter(t, "x").EXPECT().Publish(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(published("x-1"), nil).Once()
	fb := f.adapter(t, "facebook")
	fb.EXPECT().Publish(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(&platform.PublishResult{Success: false, ErrorCode: "server_error"}, nil).Once()
	f.events.On("Publish", mock.Anything, mock.MatchedBy(func(e *model.DomainEvent) bool {
		return e.Name == model.EventPostPublished
	})).Return(nil).Twice()

	got, err := f.svc.PublishNow(ctx, publisher, postID)
	require.NoError(t, err)
	require.Equal(t, model.PostStatusPublished, got.Status)
	firstPublishedAt := f.target(t, targetIDs[0]).PublishedAt

	fb.EXPECT().Publish(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(published("fb-1"), nil).Once()

	got, err = f.svc.RetryFailed(ctx, publisher, postID)
	require.NoError(t, err)
	assert.Equal(t, model.PostStatusPublished, got.Status)

	x := f.target(t, targetIDs[0])
	assert.Equal(t, 0, x.RetryCount)
	assert.Equal(t, firstPublishedAt, x.PublishedAt)
	assert.Equal(t, "x-1", *x.ExternalPostID)

	retried := f.target(t, targetIDs[1])
	assert.Equal(t, model.TargetStatusPublished, retried.Status)
	assert.Equal(t, 1, retried.RetryCount)
	assert.Equal(t, "fb-1", *retried.ExternalPostID)
	assert.Nil(t, retried.ErrorCode)

	_, err = f.svc.RetryFailed(ctx, publisher, postID)
	assert.ErrorIs(t, err, custom_errors.ErrNoFailedTargets)
}

func TestOrchestrator_PublishNowOnFailedPostRetries(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, Options{})
	postID, targetIDs := f.seed(t, model.PostStatusFailed, seedTarget{1, "x"})

	failed := f.target(t, targetIDs[0])
	failed.Status = model.TargetStatusFailed
	failed.ErrorCode = strPtr(model.TargetErrAdapter)
	_, err := f.store.TargetRepository().Update(ctx, failed)
	require.NoError(t, err)

	f.adapter(t, "x").EXPECT().Publish(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(published("x-2"), nil).Once()
	expectEvent(f, model.EventPostPublished)

	got, err := f.svc.PublishNow(ctx, publisher, postID)
	require.NoError(t, err)
	assert.Equal(t, model.PostStatusPublished, got.Status)
	assert.Equal(t, 1, f.target(t, targetIDs[0]).RetryCount)
}

func TestOrchestrator_StartGuards(t *testing.T) {
	ctx := context.Background()

	t.Run("No targets", func(t *testing.T) {
		f := newFixture(t, Options{})
		postID, _ := f.seed(t, model.PostStatusApproved)

		_, err := f.svc.PublishNow(ctx, publisher, postID)
		assert.ErrorIs(t, err, custom_errors.ErrNoTargets)
		assert.Equal(t, model.PostStatusApproved, f.post(t, postID).Status)
	})

	t.Run("Draft cannot publish", func(t *testing.T) {
		f := newFixture(t, Options{})
		postID, _ := f.seed(t, model.PostStatusDraft, seedTarget{1, "x"})

		_, err := f.svc.PublishNow(ctx, publisher, postID)
		assert.ErrorIs(t, err, custom_errors.ErrPostCannotTransition)
	})

	t.Run("Editor lacks publish capability", func(t *testing.T) {
		f := newFixture(t, Options{})
		postID, _ := f.seed(t, model.PostStatusApproved, seedTarget{1, "x"})

		_, err := f.svc.PublishNow(ctx, writer, postID)
		assert.ErrorIs(t, err, custom_errors.ErrForbidden)
		assert.Equal(t, model.PostStatusApproved, f.post(t, postID).Status)
	})

	t.Run("Scheduled post is not due yet", func(t *testing.T) {
		f := newFixture(t, Options{})
		postID, _ := f.seed(t, model.PostStatusScheduled, seedTarget{1, "x"})
		p := f.post(t, postID)
		p.ScheduledAt = pgtype.Timestamptz{Time: time.Now().Add(time.Hour), Valid: true}
		_, err := f.store.PostRepository().Update(ctx, p)
		require.NoError(t, err)

		_, err = f.svc.PublishDue(ctx, postID)
		assert.ErrorIs(t, err, custom_errors.ErrPostNotDue)
		assert.Equal(t, model.PostStatusScheduled, f.post(t, postID).Status)
	})

	t.Run("PublishDue only starts scheduled posts", func(t *testing.T) {
		f := newFixture(t, Options{})
		postID, _ := f.seed(t, model.PostStatusApproved, seedTarget{1, "x"})

		_, err := f.svc.PublishDue(ctx, postID)
		assert.ErrorIs(t, err, custom_errors.ErrPostCannotTransition)
	})
}

func TestOrchestrator_PublishDue(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, Options{})
	postID, _ := f.seed(t, model.PostStatusScheduled, seedTarget{1, "x"})
	p := f.post(t, postID)
	p.ScheduledAt = pgtype.Timestamptz{Time: time.Now().Add(-time.Minute), Valid: true}
	_, err := f.store.PostRepository().Update(ctx, p)
	require.NoError(t, err)

	f.adapter(t, "x").EXPECT().Publish(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(published("x-9"), nil).Once()
	expectEvent(f, model.EventPostPublished)

	got, err := f.svc.PublishDue(ctx, postID)
	require.NoError(t, err)
	assert.Equal(t, model.PostStatusPublished, got.Status)

	_, err = f.svc.PublishDue(ctx, postID)
	assert.ErrorIs(t, err, custom_errors.ErrPostCannotTransition, "a second dispatch must not publish twice")
}

func TestOrchestrator_PreflightFailures(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name     string
		platform string
		setup    func(f *fixture)
		wantCode string
	}{
		{
			name:     "Unknown platform",
			platform: "myspace",
			setup:    func(f *fixture) {},
			wantCode: model.TargetErrUnknownPlatform,
		},
		{
			name:     "Account missing",
			platform: "x",
			setup: func(f *fixture) {
				f.accounts.On("Get", mock.Anything, int64(50)).Return(nil, custom_errors.ErrAccountNotFound)
			},
			wantCode: model.TargetErrAccountNotFound,
		},
		{
			name:     "Account in another workspace",
			platform: "x",
			setup: func(f *fixture) {
				f.accounts.On("Get", mock.Anything, int64(50)).Return(&model.Account{ID: 50, WorkspaceID: 9, Status: model.AccountStatusActive}, nil)
			},
			wantCode: model.TargetErrAccountNotFound,
		},
		{
			name:     "Account disconnected",
			platform: "x",
			setup: func(f *fixture) {
				f.accounts.On("Get", mock.Anything, int64(50)).Return(&model.Account{ID: 50, WorkspaceID: 1, Status: model.AccountStatusDisconnected}, nil)
			},
			wantCode: model.TargetErrAccountCannotPublish,
		},
		{
			name:     "Directory unavailable",
			platform: "x",
			setup: func(f *fixture) {
				f.accounts.On("Get", mock.Anything, int64(50)).Return(nil, errors.New("timeout"))
			},
			wantCode: model.TargetErrLookupFailed,
		},
		{
			name:     "Integration disabled",
			platform: "tiktok",
			setup: func(f *fixture) {
				f.accounts.On("Get", mock.Anything, int64(50)).Return(&model.Account{ID: 50, WorkspaceID: 1, Status: model.AccountStatusActive}, nil)
				f.integrations.ExpectedCalls = nil
				f.integrations.On("IsActive", mock.Anything, "tiktok").Return(false, nil)
			},
			wantCode: model.TargetErrIntegrationDisabled,
		},
		{
			name:     "Token expired",
			platform: "x",
			setup: func(f *fixture) {
				f.accounts.On("Get", mock.Anything, int64(50)).Return(&model.Account{
					ID:             50,
					WorkspaceID:    1,
					Status:         model.AccountStatusActive,
					TokenExpiresAt: pgtype.Timestamptz{Time: time.Now().Add(-time.Hour), Valid: true},
				}, nil)
				f.accounts.On("MarkTokenExpired", mock.Anything, int64(50)).Return(nil).Once()
			},
			wantCode: model.TargetErrTokenExpired,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, Options{})
			// Registered but never called: every case fails before the adapter.
			f.adapter(t, "x")
			f.adapter(t, "tiktok")
			tt.setup(f)

			post, err := f.store.PostRepository().Create(ctx, &model.Post{WorkspaceID: 1, AuthorID: 1, Body: strPtr("hi")})
			require.NoError(t, err)
			post.Status = model.PostStatusApproved
			_, err = f.store.PostRepository().Update(ctx, post)
			require.NoError(t, err)
			created, err := f.store.TargetRepository().CreateBatch(ctx, post.ID, []*model.PostTarget{{AccountID: 50, Platform: tt.platform}})
			require.NoError(t, err)
			expectEvent(f, model.EventPostFailed)

			got, err := f.svc.PublishNow(ctx, publisher, post.ID)
			require.NoError(t, err)
			assert.Equal(t, model.PostStatusFailed, got.Status)

			target := f.target(t, created[0].ID)
			assert.Equal(t, model.TargetStatusFailed, target.Status)
			require.NotNil(t, target.ErrorCode)
			assert.Equal(t, tt.wantCode, *target.ErrorCode)
		})
	}
}

func TestOrchestrator_AdapterTimeoutAndPanic(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, Options{AdapterTimeout: 50 * time.Millisecond})
	postID, targetIDs := f.seed(t, model.PostStatusApproved, seedTarget{1, "x"}, seedTarget{2, "linkedin"}, seedTarget{3, "facebook"})

	release := make(chan struct{})
	defer close(release)

	f.adapter(t, "x").EXPECT().Publish(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, *model.PostTarget, *model.Post, []*model.PostMedia) (*platform.PublishResult, error) {
			<-release
			return published("late"), nil
		}).Once()
	f.adapter(t, "linkedin").EXPECT().Publish(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, *model.PostTarget, *model.Post, []*model.PostMedia) (*platform.PublishResult, error) {
			panic("nil map write")
		}).Once()
	f.adapter(t, "facebook").EXPECT().Publish(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(published("fb-3"), nil).Once()
	expectEvent(f, model.EventPostPublished)

	got, err := f.svc.PublishNow(ctx, publisher, postID)
	require.NoError(t, err)
	assert.Equal(t, model.PostStatusPublished, got.Status)

	assert.Equal(t, model.TargetErrAdapterTimeout, *f.target(t, targetIDs[0]).ErrorCode)
	panicked := f.target(t, targetIDs[1])
	assert.Equal(t, model.TargetErrAdapterPanic, *panicked.ErrorCode)
	assert.Contains(t, *panicked.ErrorMessage, "nil map write")
	assert.Equal(t, model.TargetStatusPublished, f.target(t, targetIDs[2]).Status)
}

func TestOrchestrator_CancelDuringAttemptDiscardsResult(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, Options{})
	postID, targetIDs := f.seed(t, model.PostStatusApproved, seedTarget{1, "x"})

	started := make(chan struct{})
	release := make(chan struct{})
	f.adapter(t, "x").EXPECT().Publish(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, *model.PostTarget, *model.Post, []*model.PostMedia) (*platform.PublishResult, error) {
			close(started)
			<-release
			return published("x-1"), nil
		}).Once()

	done := make(chan *model.Post, 1)
	go func() {
		p, err := f.svc.PublishNow(ctx, publisher, postID)
		assert.NoError(t, err)
		done <- p
	}()

	<-started
	p := f.post(t, postID)
	require.Equal(t, model.PostStatusPublishing, p.Status)
	p.Status = model.PostStatusCancelled
	_, err := f.store.PostRepository().Update(ctx, p)
	require.NoError(t, err)
	close(release)

	got := <-done
	assert.Equal(t, model.PostStatusCancelled, got.Status)

	target := f.target(t, targetIDs[0])
	assert.Equal(t, model.TargetStatusPending, target.Status)
	assert.Nil(t, target.ExternalPostID)

	failures, err := f.store.FailureRepository().ListByPost(ctx, postID)
	require.NoError(t, err)
	assert.Empty(t, failures)
}

func TestOrchestrator_ProcessTargetIsIdempotent(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, Options{})
	postID, targetIDs := f.seed(t, model.PostStatusPublishing, seedTarget{1, "x"}, seedTarget{2, "linkedin"})

	x := f.adapter(t, "x")
	x.EXPECT().Publish(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(published("x-1"), nil).Once()

	got, err := f.svc.ProcessTarget(ctx, targetIDs[0])
	require.NoError(t, err)
	assert.Equal(t, model.TargetStatusPublished, got.Status)
	assert.Equal(t, model.PostStatusPublishing, f.post(t, postID).Status, "one target still pending")

	_, err = f.svc.ProcessTarget(ctx, targetIDs[0])
	assert.ErrorIs(t, err, custom_errors.ErrTargetNotPending)
	x.AssertNumberOfCalls(t, "Publish", 1)

	f.adapter(t, "linkedin").EXPECT().Publish(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(published("li-1"), nil).Once()
	expectEvent(f, model.EventPostPublished)

	_, err = f.svc.ProcessTarget(ctx, targetIDs[1])
	require.NoError(t, err)
	assert.Equal(t, model.PostStatusPublished, f.post(t, postID).Status)

	again, err := f.svc.UpdatePostStatusFromTargets(ctx, postID)
	require.NoError(t, err)
	assert.Equal(t, model.PostStatusPublished, again.Status)

	_, err = f.svc.ProcessTarget(ctx, 404)
	assert.ErrorIs(t, err, custom_errors.ErrTargetNotFound)
}

func TestOrchestrator_ProcessTargetRequiresPublishingPost(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, Options{})
	_, targetIDs := f.seed(t, model.PostStatusCancelled, seedTarget{1, "x"})
	f.adapter(t, "x")

	_, err := f.svc.ProcessTarget(ctx, targetIDs[0])
	assert.ErrorIs(t, err, custom_errors.ErrPostNotPublishing)
	assert.Equal(t, model.TargetStatusPending, f.target(t, targetIDs[0]).Status)
}

func TestOrchestrator_UpdatePostStatusWaitsForAllTargets(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, Options{})
	postID, _ := f.seed(t, model.PostStatusPublishing, seedTarget{1, "x"})

	got, err := f.svc.UpdatePostStatusFromTargets(ctx, postID)
	require.NoError(t, err)
	assert.Equal(t, model.PostStatusPublishing, got.Status)

	empty, _ := f.seed(t, model.PostStatusPublishing)
	got, err = f.svc.UpdatePostStatusFromTargets(ctx, empty)
	require.NoError(t, err)
	assert.Equal(t, model.PostStatusPublishing, got.Status)
}

func TestOrchestrator_UpdateTargetMetrics(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, Options{})
	_, targetIDs := f.seed(t, model.PostStatusPublished, seedTarget{1, "x"})

	assert.ErrorIs(t, f.svc.UpdateTargetMetrics(ctx, targetIDs[0], []byte(`{"likes":`)), custom_errors.ErrInvalidInput)
	assert.ErrorIs(t, f.svc.UpdateTargetMetrics(ctx, targetIDs[0], nil), custom_errors.ErrInvalidInput)
	assert.ErrorIs(t, f.svc.UpdateTargetMetrics(ctx, 404, []byte(`{}`)), custom_errors.ErrTargetNotFound)

	require.NoError(t, f.svc.UpdateTargetMetrics(ctx, targetIDs[0], []byte(`{"likes":12,"shares":3}`)))
	assert.JSONEq(t, `{"likes":12,"shares":3}`, string(f.target(t, targetIDs[0]).Metrics))
}

func TestOrchestrator_RecoverStaleFailsStuckAttempts(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, Options{AdapterTimeout: time.Minute})
	now := time.Now()
	f.svc.clock = func() time.Time { return now }

	postID, targetIDs := f.seed(t, model.PostStatusPublishing,
		seedTarget{1, "x"}, seedTarget{2, "linkedin"}, seedTarget{3, "facebook"})
	targets := f.store.TargetRepository()

	done := f.target(t, targetIDs[0])
	done.Status = model.TargetStatusPublished
	done.ExternalPostID = strPtr("x-1")
	_, err := targets.Update(ctx, done)
	require.NoError(t, err)
	_, err = targets.Claim(ctx, targetIDs[1], now.Add(-10*time.Minute))
	require.NoError(t, err)
	_, err = targets.Claim(ctx, targetIDs[2], now.Add(-30*time.Second))
	require.NoError(t, err)

	recovered, err := f.svc.RecoverStale(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, recovered)

	stuck := f.target(t, targetIDs[1])
	assert.Equal(t, model.TargetStatusFailed, stuck.Status)
	assert.Equal(t, model.TargetErrStaleAttempt, *stuck.ErrorCode)
	assert.Contains(t, *stuck.ErrorMessage, "did not settle")
	assert.Equal(t, model.TargetStatusPublishing, f.target(t, targetIDs[2]).Status, "an attempt within the window is left alone")
	assert.Equal(t, model.PostStatusPublishing, f.post(t, postID).Status)

	failures, err := f.store.FailureRepository().ListByPost(ctx, postID)
	require.NoError(t, err)
	require.Len(t, failures, 1)
	assert.Equal(t, targetIDs[1], failures[0].TargetID)
	assert.Equal(t, model.TargetErrStaleAttempt, failures[0].ErrorCode)

	// Once the last attempt ages out the post settles.
	later := now.Add(5 * time.Minute)
	f.svc.clock = func() time.Time { return later }
	expectEvent(f, model.EventPostPublished)

	recovered, err = f.svc.RecoverStale(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, recovered)
	assert.Equal(t, model.TargetStatusFailed, f.target(t, targetIDs[2]).Status)
	assert.Equal(t, model.PostStatusPublished, f.post(t, postID).Status)

	recovered, err = f.svc.RecoverStale(ctx)
	require.NoError(t, err)
	assert.Zero(t, recovered)
}

func TestOrchestrator_RecoverStaleOnCancelledPost(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, Options{})
	now := time.Now()
	f.svc.clock = func() time.Time { return now }

	postID, targetIDs := f.seed(t, model.PostStatusCancelled, seedTarget{1, "x"})
	_, err := f.store.TargetRepository().Claim(ctx, targetIDs[0], now.Add(-time.Hour))
	require.NoError(t, err)

	recovered, err := f.svc.RecoverStale(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, recovered)

	target := f.target(t, targetIDs[0])
	assert.Equal(t, model.TargetStatusPending, target.Status)
	assert.Nil(t, target.ErrorCode)
	assert.Equal(t, model.PostStatusCancelled, f.post(t, postID).Status)

	failures, err := f.store.FailureRepository().ListByPost(ctx, postID)
	require.NoError(t, err)
	assert.Empty(t, failures)
}

func TestOrchestrator_ListFailures(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, Options{})
	postID, _ := f.seed(t, model.PostStatusFailed, seedTarget{1, "x"})

	failures := failure_mock.NewRepository(t)
	f.svc.failureRepo = failures

	t.Run("Repository error is returned", func(t *testing.T) {
		failures.EXPECT().ListByPost(mock.Anything, postID).Return(nil, errors.New("connection reset")).Once()

		got, err := f.svc.ListFailures(ctx, writer, postID)
		assert.EqualError(t, err, "connection reset")
		assert.Nil(t, got)
	})

	t.Run("Other workspace is rejected", func(t *testing.T) {
		outsider := model.Actor{UserID: 99, WorkspaceID: 2, Role: model.RoleApprover}

		_, err := f.svc.ListFailures(ctx, outsider, postID)
		assert.ErrorIs(t, err, custom_errors.ErrForbidden)
	})

	t.Run("Unknown post", func(t *testing.T) {
		_, err := f.svc.ListFailures(ctx, writer, 404)
		assert.ErrorIs(t, err, custom_errors.ErrPostNotFound)
	})
}
