package post_service

import (
	"context"
	"errors"
	"testing"
	"time"

	"pinstack-publish-service/internal/domain/custom_errors"
	model "pinstack-publish-service/internal/domain/models"
	"pinstack-publish-service/internal/infrastructure/logger"
	"pinstack-publish-service/internal/infrastructure/outbound/auth"
	"pinstack-publish-service/internal/infrastructure/outbound/metrics/prometheus"
	"pinstack-publish-service/internal/infrastructure/outbound/repository/memory"
	events_mock "pinstack-publish-service/mocks/events"
	media_repository_mock "pinstack-publish-service/mocks/media"
	post_repository_mock "pinstack-publish-service/mocks/post"
	postgres_mock "pinstack-publish-service/mocks/postgres"
	target_repository_mock "pinstack-publish-service/mocks/target"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	editor   = model.Actor{UserID: 1, WorkspaceID: 1, Role: model.RoleEditor}
	approver = model.Actor{UserID: 2, WorkspaceID: 1, Role: model.RoleApprover}
	viewer   = model.Actor{UserID: 3, WorkspaceID: 1, Role: model.RoleViewer}
	outsider = model.Actor{UserID: 4, WorkspaceID: 2, Role: model.RoleOwner}
)

func strPtr(s string) *string { return &s }

func TestPostService_CreatePost(t *testing.T) {
	log := logger.New("test")
	type mocks struct {
		postRepo   *post_repository_mock.Repository
		targetRepo *target_repository_mock.Repository
		mediaRepo  *media_repository_mock.Repository
		uow        *postgres_mock.UnitOfWork
		tx         *postgres_mock.Transaction
	}
	validDTO := func() *model.CreatePostDTO {
		return &model.CreatePostDTO{
			Body:       strPtr("Launch day"),
			MediaItems: []*model.PostMediaInput{{URL: "https://cdn.example/a.png", Type: model.MediaTypeImage, Position: 1}},
			Targets:    []*model.TargetInput{{AccountID: 10, Platform: "x"}, {AccountID: 11, Platform: "linkedin"}},
		}
	}
	tests := []struct {
		name        string
		actor       model.Actor
		dto         *model.CreatePostDTO
		setup       func(m mocks)
		wantErrType error
	}{
		{
			name:  "Success",
			actor: editor,
			dto:   validDTO(),
			setup: func(m mocks) {
				m.uow.On("Begin", mock.Anything).Return(m.tx, nil)
				m.tx.On("PostRepository").Return(m.postRepo)
				m.tx.On("MediaRepository").Return(m.mediaRepo)
				m.tx.On("TargetRepository").Return(m.targetRepo)
				m.postRepo.On("Create", mock.Anything, mock.MatchedBy(func(p *model.Post) bool {
					return p.WorkspaceID == 1 && p.AuthorID == 1 && p.Status == model.PostStatusDraft
				})).Return(&model.Post{ID: 7, WorkspaceID: 1, AuthorID: 1, Status: model.PostStatusDraft}, nil)
				m.mediaRepo.On("Attach", mock.Anything, int64(7), mock.AnythingOfType("[]*model.PostMedia")).Return(nil)
				m.mediaRepo.On("GetByPost", mock.Anything, int64(7)).Return([]*model.PostMedia{{ID: 1, PostID: 7}}, nil)
				m.targetRepo.On("CreateBatch", mock.Anything, int64(7), mock.MatchedBy(func(ts []*model.PostTarget) bool {
					return len(ts) == 2 && ts[0].Status == model.TargetStatusPending
				})).Return([]*model.PostTarget{{ID: 1, PostID: 7}, {ID: 2, PostID: 7}}, nil)
				m.tx.On("Commit", mock.Anything).Return(nil)
			},
		},
		{
			name:        "Viewer cannot compose",
			actor:       viewer,
			dto:         validDTO(),
			setup:       func(m mocks) {},
			wantErrType: custom_errors.ErrForbidden,
		},
		{
			name:  "Foreign workspace",
			actor: outsider,
			dto: func() *model.CreatePostDTO {
				d := validDTO()
				d.WorkspaceID = 1
				return d
			}(),
			setup:       func(m mocks) {},
			wantErrType: custom_errors.ErrForbidden,
		},
		{
			name:  "Duplicate target account",
			actor: editor,
			dto: func() *model.CreatePostDTO {
				d := validDTO()
				d.Targets = append(d.Targets, &model.TargetInput{AccountID: 10, Platform: "x"})
				return d
			}(),
			setup:       func(m mocks) {},
			wantErrType: custom_errors.ErrDuplicateTarget,
		},
		{
			name:        "Nil input",
			actor:       editor,
			dto:         nil,
			setup:       func(m mocks) {},
			wantErrType: custom_errors.ErrInvalidInput,
		},
		{
			name:  "Transaction begin error",
			actor: editor,
			dto:   validDTO(),
			setup: func(m mocks) {
				m.uow.On("Begin", mock.Anything).Return(nil, errors.New("db error"))
			},
			wantErrType: custom_errors.ErrDatabaseQuery,
		},
		{
			name:  "Error creating post in repository",
			actor: editor,
			dto:   validDTO(),
			setup: func(m mocks) {
				m.uow.On("Begin", mock.Anything).Return(m.tx, nil)
				m.tx.On("PostRepository").Return(m.postRepo)
				m.postRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Post")).Return(nil, custom_errors.ErrDatabaseQuery)
				m.tx.On("Rollback", mock.Anything).Return(nil)
			},
			wantErrType: custom_errors.ErrDatabaseQuery,
		},
		{
			name:  "Error attaching media",
			actor: editor,
			dto:   validDTO(),
			setup: func(m mocks) {
				m.uow.On("Begin", mock.Anything).Return(m.tx, nil)
				m.tx.On("PostRepository").Return(m.postRepo)
				m.tx.On("MediaRepository").Return(m.mediaRepo)
				m.postRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Post")).Return(&model.Post{ID: 7, WorkspaceID: 1}, nil)
				m.mediaRepo.On("Attach", mock.Anything, int64(7), mock.Anything).Return(errors.New("constraint"))
				m.tx.On("Rollback", mock.Anything).Return(nil)
			},
			wantErrType: custom_errors.ErrMediaAttachFailed,
		},
		{
			name:  "Commit error",
			actor: editor,
			dto:   &model.CreatePostDTO{Body: strPtr("text")},
			setup: func(m mocks) {
				m.uow.On("Begin", mock.Anything).Return(m.tx, nil)
				m.tx.On("PostRepository").Return(m.postRepo)
				m.tx.On("MediaRepository").Return(m.mediaRepo)
				m.tx.On("TargetRepository").Return(m.targetRepo)
				m.postRepo.On("Create", mock.Anything, mock.Anything).Return(&model.Post{ID: 8, WorkspaceID: 1}, nil)
				m.targetRepo.On("CreateBatch", mock.Anything, int64(8), mock.Anything).Return([]*model.PostTarget{}, nil)
				m.tx.On("Commit", mock.Anything).Return(errors.New("connection reset"))
				m.tx.On("Rollback", mock.Anything).Return(errors.New("tx is closed"))
			},
			wantErrType: custom_errors.ErrDatabaseQuery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := mocks{
				postRepo:   post_repository_mock.NewRepository(t),
				targetRepo: target_repository_mock.NewRepository(t),
				mediaRepo:  media_repository_mock.NewRepository(t),
				uow:        postgres_mock.NewUnitOfWork(t),
				tx:         postgres_mock.NewTransaction(t),
			}
			tt.setup(m)
			metrics := prometheus.NewPrometheusMetricsProvider()
			service := NewPostService(m.postRepo, m.targetRepo, m.mediaRepo, m.uow, auth.NewRoleAuthorizer(), events_mock.NewEventPublisher(t), log, metrics)

			got, err := service.CreatePost(context.Background(), tt.actor, tt.dto)
			if tt.wantErrType != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErrType)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(7), got.Post.ID)
			assert.Len(t, got.Targets, 2)
			assert.Len(t, got.Media, 1)
		})
	}
}

func TestPostService_GetPost(t *testing.T) {
	log := logger.New("test")
	tests := []struct {
		name        string
		actor       model.Actor
		setup       func(postRepo *post_repository_mock.Repository, targetRepo *target_repository_mock.Repository, mediaRepo *media_repository_mock.Repository)
		wantErrType error
	}{
		{
			name:  "Success",
			actor: viewer,
			setup: func(postRepo *post_repository_mock.Repository, targetRepo *target_repository_mock.Repository, mediaRepo *media_repository_mock.Repository) {
				postRepo.On("GetByID", mock.Anything, int64(1)).Return(&model.Post{ID: 1, WorkspaceID: 1}, nil)
				targetRepo.On("ListByPost", mock.Anything, int64(1)).Return([]*model.PostTarget{{ID: 3}}, nil)
				mediaRepo.On("GetByPost", mock.Anything, int64(1)).Return([]*model.PostMedia{}, nil)
			},
		},
		{
			name:  "Not found",
			actor: viewer,
			setup: func(postRepo *post_repository_mock.Repository, targetRepo *target_repository_mock.Repository, mediaRepo *media_repository_mock.Repository) {
				postRepo.On("GetByID", mock.Anything, int64(1)).Return(nil, custom_errors.ErrPostNotFound)
			},
			wantErrType: custom_errors.ErrPostNotFound,
		},
		{
			name:  "Other workspace",
			actor: outsider,
			setup: func(postRepo *post_repository_mock.Repository, targetRepo *target_repository_mock.Repository, mediaRepo *media_repository_mock.Repository) {
				postRepo.On("GetByID", mock.Anything, int64(1)).Return(&model.Post{ID: 1, WorkspaceID: 1}, nil)
			},
			wantErrType: custom_errors.ErrForbidden,
		},
		{
			name:  "Media query error",
			actor: viewer,
			setup: func(postRepo *post_repository_mock.Repository, targetRepo *target_repository_mock.Repository, mediaRepo *media_repository_mock.Repository) {
				postRepo.On("GetByID", mock.Anything, int64(1)).Return(&model.Post{ID: 1, WorkspaceID: 1}, nil)
				targetRepo.On("ListByPost", mock.Anything, int64(1)).Return([]*model.PostTarget{}, nil)
				mediaRepo.On("GetByPost", mock.Anything, int64(1)).Return(nil, errors.New("boom"))
			},
			wantErrType: custom_errors.ErrMediaQueryFailed,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			postRepo := post_repository_mock.NewRepository(t)
			targetRepo := target_repository_mock.NewRepository(t)
			mediaRepo := media_repository_mock.NewRepository(t)
			tt.setup(postRepo, targetRepo, mediaRepo)
			service := NewPostService(postRepo, targetRepo, mediaRepo, postgres_mock.NewUnitOfWork(t), auth.NewRoleAuthorizer(), events_mock.NewEventPublisher(t), log, prometheus.NewPrometheusMetricsProvider())

			got, err := service.GetPost(context.Background(), tt.actor, 1)
			if tt.wantErrType != nil {
				assert.ErrorIs(t, err, tt.wantErrType)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(1), got.Post.ID)
			assert.Len(t, got.Targets, 1)
		})
	}
}

type fixture struct {
	service *PostService
	store   *memory.Store
	events  *events_mock.EventPublisher
	now     time.Time
}

func newFixture(t *testing.T) *fixture {
	store := memory.NewStore(logger.New("test"))
	events := events_mock.NewEventPublisher(t)
	service := NewPostService(
		store.PostRepository(),
		store.TargetRepository(),
		store.MediaRepository(),
		store.UnitOfWork(),
		auth.NewRoleAuthorizer(),
		events,
		logger.New("test"),
		prometheus.NewPrometheusMetricsProvider(),
	)
	now := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	service.clock = func() time.Time { return now }
	return &fixture{service: service, store: store, events: events, now: now}
}

func (f *fixture) create(t *testing.T, dto *model.CreatePostDTO) *model.PostDetailed {
	created, err := f.service.CreatePost(context.Background(), editor, dto)
	require.NoError(t, err)
	return created
}

func (f *fixture) setStatus(t *testing.T, id int64, status model.PostStatus) {
	post, err := f.store.PostRepository().GetByID(context.Background(), id)
	require.NoError(t, err)
	post.Status = status
	_, err = f.store.PostRepository().Update(context.Background(), post)
	require.NoError(t, err)
}

func TestPostService_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("Emits event for approvers", func(t *testing.T) {
		f := newFixture(t)
		created := f.create(t, &model.CreatePostDTO{Body: strPtr("hello"), Targets: []*model.TargetInput{{AccountID: 1, Platform: "x"}}})
		f.events.On("Publish", mock.Anything, mock.MatchedBy(func(e *model.DomainEvent) bool {
			return e.Name == model.EventPostSubmittedForApproval && e.PostID == created.Post.ID && *e.ActorID == editor.UserID
		})).Return(nil).Once()

		got, err := f.service.Submit(ctx, editor, created.Post.ID)
		require.NoError(t, err)
		assert.Equal(t, model.PostStatusSubmitted, got.Status)
		assert.Equal(t, f.now, got.SubmittedAt.Time)
	})

	t.Run("Without targets", func(t *testing.T) {
		f := newFixture(t)
		created := f.create(t, &model.CreatePostDTO{Body: strPtr("hello")})

		_, err := f.service.Submit(ctx, editor, created.Post.ID)
		assert.ErrorIs(t, err, custom_errors.ErrNoTargets)
		assert.ErrorIs(t, err, custom_errors.ErrGuardViolation)

		post, err := f.store.PostRepository().GetByID(ctx, created.Post.ID)
		require.NoError(t, err)
		assert.Equal(t, model.PostStatusDraft, post.Status)
	})

	t.Run("Without content", func(t *testing.T) {
		f := newFixture(t)
		created := f.create(t, &model.CreatePostDTO{Targets: []*model.TargetInput{{AccountID: 1, Platform: "x"}}})

		_, err := f.service.Submit(ctx, editor, created.Post.ID)
		assert.ErrorIs(t, err, custom_errors.ErrContentMissing)
	})

	t.Run("Media counts as content", func(t *testing.T) {
		f := newFixture(t)
		created := f.create(t, &model.CreatePostDTO{
			MediaItems: []*model.PostMediaInput{{URL: "https://cdn.example/v.mp4", Type: model.MediaTypeVideo}},
			Targets:    []*model.TargetInput{{AccountID: 1, Platform: "x"}},
		})
		f.events.On("Publish", mock.Anything, mock.Anything).Return(errors.New("sink down")).Once()

		got, err := f.service.Submit(ctx, editor, created.Post.ID)
		require.NoError(t, err, "a failing event sink must not undo the transition")
		assert.Equal(t, model.PostStatusSubmitted, got.Status)
	})

	t.Run("Viewer cannot submit", func(t *testing.T) {
		f := newFixture(t)
		created := f.create(t, &model.CreatePostDTO{Body: strPtr("hello"), Targets: []*model.TargetInput{{AccountID: 1, Platform: "x"}}})

		_, err := f.service.Submit(ctx, viewer, created.Post.ID)
		assert.ErrorIs(t, err, custom_errors.ErrForbidden)
	})
}

func TestPostService_ScheduleAndReschedule(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	created := f.create(t, &model.CreatePostDTO{Body: strPtr("hello"), Targets: []*model.TargetInput{{AccountID: 1, Platform: "x"}}})
	id := created.Post.ID

	_, err := f.service.Schedule(ctx, approver, id, model.ScheduleDTO{At: f.now.Add(time.Hour), Timezone: "UTC"})
	assert.ErrorIs(t, err, custom_errors.ErrPostCannotTransition, "draft cannot be scheduled")

	f.setStatus(t, id, model.PostStatusApproved)

	_, err = f.service.Schedule(ctx, editor, id, model.ScheduleDTO{At: f.now.Add(time.Hour), Timezone: "UTC"})
	assert.ErrorIs(t, err, custom_errors.ErrForbidden)

	_, err = f.service.Schedule(ctx, approver, id, model.ScheduleDTO{At: f.now.Add(-time.Hour), Timezone: "UTC"})
	assert.ErrorIs(t, err, custom_errors.ErrTimeNotInFuture)

	_, err = f.service.Schedule(ctx, approver, id, model.ScheduleDTO{At: f.now.Add(time.Hour), Timezone: "Nowhere/City"})
	assert.ErrorIs(t, err, custom_errors.ErrInvalidTimezone)

	at := f.now.Add(2 * time.Hour)
	got, err := f.service.Schedule(ctx, approver, id, model.ScheduleDTO{At: at, Timezone: "America/New_York"})
	require.NoError(t, err)
	assert.Equal(t, model.PostStatusScheduled, got.Status)
	assert.True(t, got.ScheduledAt.Time.Equal(at))

	later := f.now.Add(5 * time.Hour)
	got, err = f.service.Reschedule(ctx, approver, id, model.ScheduleDTO{At: later, Timezone: "UTC"})
	require.NoError(t, err)
	assert.Equal(t, model.PostStatusScheduled, got.Status)
	assert.True(t, got.ScheduledAt.Time.Equal(later))
}

func TestPostService_EditRules(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	created := f.create(t, &model.CreatePostDTO{Body: strPtr("v1"), Targets: []*model.TargetInput{{AccountID: 1, Platform: "x"}}})
	id := created.Post.ID

	updated, err := f.service.UpdatePost(ctx, editor, id, &model.UpdatePostDTO{
		Body:       strPtr("v2"),
		MediaItems: []*model.PostMediaInput{{URL: "https://cdn.example/a.png", Type: model.MediaTypeImage}},
	})
	require.NoError(t, err)
	assert.Equal(t, "v2", *updated.Post.Body)
	assert.Len(t, updated.Media, 1)
	assert.Len(t, updated.Targets, 1)

	f.setStatus(t, id, model.PostStatusSubmitted)
	_, err = f.service.UpdatePost(ctx, editor, id, &model.UpdatePostDTO{Body: strPtr("v3")})
	assert.ErrorIs(t, err, custom_errors.ErrPostNotEditable)
	_, err = f.service.SetTargets(ctx, editor, id, []*model.TargetInput{{AccountID: 2, Platform: "x"}})
	assert.ErrorIs(t, err, custom_errors.ErrPostNotEditable)

	post, err := f.store.PostRepository().GetByID(ctx, id)
	require.NoError(t, err)
	post.Status = model.PostStatusRejected
	post.RejectionReason = strPtr("tone")
	_, err = f.store.PostRepository().Update(ctx, post)
	require.NoError(t, err)

	replaced, err := f.service.SetTargets(ctx, editor, id, []*model.TargetInput{
		{AccountID: 2, Platform: "x"},
		{AccountID: 3, Platform: "facebook"},
	})
	require.NoError(t, err)
	assert.Equal(t, model.PostStatusDraft, replaced.Post.Status)
	assert.Nil(t, replaced.Post.RejectionReason)
	assert.Len(t, replaced.Targets, 2)
	assert.Len(t, replaced.Media, 1)

	_, err = f.service.SetTargets(ctx, editor, id, []*model.TargetInput{{AccountID: 2, Platform: "x"}, {AccountID: 2, Platform: "x"}})
	assert.ErrorIs(t, err, custom_errors.ErrDuplicateTarget)
}

func TestPostService_DeleteAndCancel(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	created := f.create(t, &model.CreatePostDTO{Body: strPtr("hi"), Targets: []*model.TargetInput{{AccountID: 1, Platform: "x"}}})
	id := created.Post.ID

	f.setStatus(t, id, model.PostStatusScheduled)
	assert.ErrorIs(t, f.service.DeletePost(ctx, editor, id), custom_errors.ErrPostNotDeletable)

	cancelled, err := f.service.Cancel(ctx, editor, id)
	require.NoError(t, err)
	assert.Equal(t, model.PostStatusCancelled, cancelled.Status)

	_, err = f.service.Cancel(ctx, editor, id)
	assert.ErrorIs(t, err, custom_errors.ErrPostCannotTransition)

	require.NoError(t, f.service.DeletePost(ctx, editor, id))
	_, err = f.service.GetPost(ctx, editor, id)
	assert.ErrorIs(t, err, custom_errors.ErrPostNotFound)
}

func TestPostService_ListPostsScopedToWorkspace(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.create(t, &model.CreatePostDTO{Body: strPtr("a")})
	f.create(t, &model.CreatePostDTO{Body: strPtr("b")})
	_, err := f.service.CreatePost(ctx, outsider, &model.CreatePostDTO{Body: strPtr("c")})
	require.NoError(t, err)

	posts, total, err := f.service.ListPosts(ctx, viewer, &model.PostFilters{WorkspaceID: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	for _, p := range posts {
		assert.Equal(t, int64(1), p.WorkspaceID)
	}

	bad := model.PostStatus("archived")
	_, _, err = f.service.ListPosts(ctx, viewer, &model.PostFilters{Status: &bad})
	assert.ErrorIs(t, err, custom_errors.ErrInvalidInput)
}
