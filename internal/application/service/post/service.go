package post_service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"pinstack-publish-service/internal/application/service/common"
	"pinstack-publish-service/internal/domain/custom_errors"
	"pinstack-publish-service/internal/domain/lifecycle"
	model "pinstack-publish-service/internal/domain/models"
	ports "pinstack-publish-service/internal/domain/ports/output"
	"pinstack-publish-service/internal/domain/ports/output/auth"
	media_repository "pinstack-publish-service/internal/domain/ports/output/media"
	post_repository "pinstack-publish-service/internal/domain/ports/output/post"
	target_repository "pinstack-publish-service/internal/domain/ports/output/target"
)

type PostService struct {
	postRepo   post_repository.Repository
	targetRepo target_repository.Repository
	mediaRepo  media_repository.Repository
	uow        ports.UnitOfWork
	authorizer auth.Authorizer
	events     ports.EventPublisher
	log        ports.Logger
	metrics    ports.MetricsProvider
	clock      func() time.Time
}

func NewPostService(
	postRepo post_repository.Repository,
	targetRepo target_repository.Repository,
	mediaRepo media_repository.Repository,
	uow ports.UnitOfWork,
	authorizer auth.Authorizer,
	events ports.EventPublisher,
	log ports.Logger,
	metrics ports.MetricsProvider,
) *PostService {
	return &PostService{
		postRepo:   postRepo,
		targetRepo: targetRepo,
		mediaRepo:  mediaRepo,
		uow:        uow,
		authorizer: authorizer,
		events:     events,
		log:        log,
		metrics:    metrics,
		clock:      time.Now,
	}
}

func (s *PostService) CreatePost(ctx context.Context, actor model.Actor, dto *model.CreatePostDTO) (*model.PostDetailed, error) {
	if dto == nil {
		return nil, custom_errors.ErrInvalidInput
	}
	workspaceID := dto.WorkspaceID
	if workspaceID == 0 {
		workspaceID = actor.WorkspaceID
	}
	if err := s.authorizer.Authorize(actor, workspaceID, model.CapabilityCompose); err != nil {
		return nil, err
	}
	if err := checkDuplicateTargets(dto.Targets); err != nil {
		return nil, err
	}

	var result *model.PostDetailed
	err := common.InTx(ctx, s.uow, s.log, func(tx ports.Transaction) error {
		created, err := tx.PostRepository().Create(ctx, &model.Post{
			WorkspaceID: workspaceID,
			AuthorID:    actor.UserID,
			Body:        dto.Body,
			Variations:  dto.Variations,
			Status:      model.PostStatusDraft,
		})
		if err != nil {
			s.log.Error("Failed to create post", slog.String("error", err.Error()))
			return err
		}

		media, err := s.attachMedia(ctx, tx.MediaRepository(), created.ID, dto.MediaItems)
		if err != nil {
			return err
		}

		targets, err := tx.TargetRepository().CreateBatch(ctx, created.ID, toTargets(dto.Targets))
		if err != nil {
			s.log.Error("Failed to create post targets", slog.Int64("post_id", created.ID), slog.String("error", err.Error()))
			return err
		}

		result = &model.PostDetailed{Post: created, Targets: targets, Media: media}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Post created",
		slog.Int64("post_id", result.Post.ID),
		slog.Int64("workspace_id", workspaceID),
		slog.Int("targets", len(result.Targets)))
	return result, nil
}

func (s *PostService) GetPost(ctx context.Context, actor model.Actor, id int64) (*model.PostDetailed, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, custom_errors.ErrPostNotFound) {
			s.log.Debug("Post not found", slog.Int64("id", id))
		}
		return nil, err
	}
	if err := s.authorizer.Authorize(actor, post.WorkspaceID, model.CapabilityView); err != nil {
		return nil, err
	}

	targets, err := s.targetRepo.ListByPost(ctx, id)
	if err != nil {
		return nil, err
	}
	media, err := s.mediaRepo.GetByPost(ctx, id)
	if err != nil {
		s.log.Error("Failed to get media by post", slog.Int64("post_id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrMediaQueryFailed
	}
	return &model.PostDetailed{Post: post, Targets: targets, Media: media}, nil
}

func (s *PostService) ListPosts(ctx context.Context, actor model.Actor, filters *model.PostFilters) ([]*model.Post, int, error) {
	if err := s.authorizer.Authorize(actor, actor.WorkspaceID, model.CapabilityView); err != nil {
		return nil, 0, err
	}
	f := model.PostFilters{}
	if filters != nil {
		f = *filters
	}
	f.WorkspaceID = actor.WorkspaceID
	if f.Status != nil && f.Status.IsValid() != nil {
		return nil, 0, custom_errors.ErrInvalidInput
	}
	return s.postRepo.List(ctx, f)
}

func (s *PostService) UpdatePost(ctx context.Context, actor model.Actor, id int64, update *model.UpdatePostDTO) (*model.PostDetailed, error) {
	if update == nil {
		return nil, custom_errors.ErrInvalidInput
	}

	var result *model.PostDetailed
	err := common.InTx(ctx, s.uow, s.log, func(tx ports.Transaction) error {
		current, err := s.lockForCompose(ctx, tx, actor, id)
		if err != nil {
			return err
		}

		edited, err := lifecycle.Edit(*current, s.clock())
		if err != nil {
			return err
		}
		if update.Body != nil {
			edited.Body = update.Body
		}
		if update.Variations != nil {
			edited.Variations = update.Variations
		}

		media, err := s.replaceMedia(ctx, tx.MediaRepository(), id, update.MediaItems)
		if err != nil {
			return err
		}

		saved, err := tx.PostRepository().Update(ctx, &edited)
		if err != nil {
			return err
		}
		s.recordTransition(current.Status, saved.Status)

		targets, err := tx.TargetRepository().ListByPost(ctx, id)
		if err != nil {
			return err
		}
		result = &model.PostDetailed{Post: saved, Targets: targets, Media: media}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// SetTargets replaces the post's targets. Like any edit it returns a rejected
// post to DRAFT.
func (s *PostService) SetTargets(ctx context.Context, actor model.Actor, id int64, inputs []*model.TargetInput) (*model.PostDetailed, error) {
	if err := checkDuplicateTargets(inputs); err != nil {
		return nil, err
	}

	var result *model.PostDetailed
	err := common.InTx(ctx, s.uow, s.log, func(tx ports.Transaction) error {
		current, err := s.lockForCompose(ctx, tx, actor, id)
		if err != nil {
			return err
		}
		edited, err := lifecycle.Edit(*current, s.clock())
		if err != nil {
			return err
		}

		targetRepo := tx.TargetRepository()
		if err := targetRepo.DeleteByPost(ctx, id); err != nil {
			return err
		}
		targets, err := targetRepo.CreateBatch(ctx, id, toTargets(inputs))
		if err != nil {
			return err
		}

		saved, err := tx.PostRepository().Update(ctx, &edited)
		if err != nil {
			return err
		}
		s.recordTransition(current.Status, saved.Status)

		media, err := tx.MediaRepository().GetByPost(ctx, id)
		if err != nil {
			return custom_errors.ErrMediaQueryFailed
		}
		result = &model.PostDetailed{Post: saved, Targets: targets, Media: media}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Post targets replaced", slog.Int64("post_id", id), slog.Int("targets", len(result.Targets)))
	return result, nil
}

func (s *PostService) DeletePost(ctx context.Context, actor model.Actor, id int64) error {
	return common.InTx(ctx, s.uow, s.log, func(tx ports.Transaction) error {
		current, err := s.lockForCompose(ctx, tx, actor, id)
		if err != nil {
			return err
		}
		deleted, err := lifecycle.Delete(*current, s.clock())
		if err != nil {
			return err
		}
		if _, err := tx.PostRepository().Update(ctx, &deleted); err != nil {
			return err
		}
		s.log.Info("Post soft-deleted", slog.Int64("post_id", id), slog.Int64("user_id", actor.UserID))
		return nil
	})
}

func (s *PostService) Submit(ctx context.Context, actor model.Actor, id int64) (*model.Post, error) {
	now := s.clock()
	saved, from, err := s.transition(ctx, actor, id, model.CapabilitySubmit, func(post model.Post, c lifecycle.Content) (model.Post, error) {
		return lifecycle.Submit(post, c, now)
	})
	if err != nil {
		return nil, err
	}
	s.recordTransition(from, saved.Status)
	common.Emit(ctx, s.events, s.log, common.NewEvent(model.EventPostSubmittedForApproval, saved, common.ActorID(actor), now))
	s.log.Info("Post submitted for approval", slog.Int64("post_id", id), slog.Int64("user_id", actor.UserID))
	return saved, nil
}

func (s *PostService) Schedule(ctx context.Context, actor model.Actor, id int64, schedule model.ScheduleDTO) (*model.Post, error) {
	now := s.clock()
	saved, from, err := s.transition(ctx, actor, id, model.CapabilityPublish, func(post model.Post, c lifecycle.Content) (model.Post, error) {
		return lifecycle.Schedule(post, c, schedule.At, schedule.Timezone, now)
	})
	if err != nil {
		return nil, err
	}
	s.recordTransition(from, saved.Status)
	s.log.Info("Post scheduled",
		slog.Int64("post_id", id),
		slog.Time("scheduled_at", saved.ScheduledAt.Time),
		slog.String("timezone", schedule.Timezone))
	return saved, nil
}

func (s *PostService) Reschedule(ctx context.Context, actor model.Actor, id int64, schedule model.ScheduleDTO) (*model.Post, error) {
	now := s.clock()
	saved, _, err := s.transition(ctx, actor, id, model.CapabilityPublish, func(post model.Post, _ lifecycle.Content) (model.Post, error) {
		return lifecycle.Reschedule(post, schedule.At, schedule.Timezone, now)
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("Post rescheduled", slog.Int64("post_id", id), slog.Time("scheduled_at", saved.ScheduledAt.Time))
	return saved, nil
}

func (s *PostService) Cancel(ctx context.Context, actor model.Actor, id int64) (*model.Post, error) {
	now := s.clock()
	saved, from, err := s.transition(ctx, actor, id, model.CapabilityCompose, func(post model.Post, _ lifecycle.Content) (model.Post, error) {
		return lifecycle.Cancel(post, now)
	})
	if err != nil {
		return nil, err
	}
	s.recordTransition(from, saved.Status)
	s.log.Info("Post cancelled", slog.Int64("post_id", id), slog.String("from", string(from)))
	return saved, nil
}

// transition locks the post, applies step and persists the result in one
// transaction. It returns the saved post and the status it left.
func (s *PostService) transition(
	ctx context.Context,
	actor model.Actor,
	id int64,
	capability model.Capability,
	step func(post model.Post, c lifecycle.Content) (model.Post, error),
) (*model.Post, model.PostStatus, error) {
	var saved *model.Post
	var from model.PostStatus
	err := common.InTx(ctx, s.uow, s.log, func(tx ports.Transaction) error {
		current, err := tx.PostRepository().GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if err := s.authorizer.Authorize(actor, current.WorkspaceID, capability); err != nil {
			return err
		}
		from = current.Status

		c, err := contentOf(ctx, tx, id)
		if err != nil {
			return err
		}
		next, err := step(*current, c)
		if err != nil {
			s.log.Debug("Post transition refused",
				slog.Int64("post_id", id),
				slog.String("status", string(current.Status)),
				slog.String("error", err.Error()))
			return err
		}
		saved, err = tx.PostRepository().Update(ctx, &next)
		return err
	})
	if err != nil {
		return nil, "", err
	}
	return saved, from, nil
}

func (s *PostService) lockForCompose(ctx context.Context, tx ports.Transaction, actor model.Actor, id int64) (*model.Post, error) {
	current, err := tx.PostRepository().GetForUpdate(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.authorizer.Authorize(actor, current.WorkspaceID, model.CapabilityCompose); err != nil {
		return nil, err
	}
	return current, nil
}

func (s *PostService) attachMedia(ctx context.Context, repo media_repository.Repository, postID int64, items []*model.PostMediaInput) ([]*model.PostMedia, error) {
	if len(items) == 0 {
		return []*model.PostMedia{}, nil
	}
	media := make([]*model.PostMedia, 0, len(items))
	for _, m := range items {
		media = append(media, &model.PostMedia{PostID: postID, URL: m.URL, Type: m.Type, Position: m.Position})
	}
	if err := repo.Attach(ctx, postID, media); err != nil {
		s.log.Error("Failed to attach media to post", slog.Int64("post_id", postID), slog.String("error", err.Error()))
		return nil, custom_errors.ErrMediaAttachFailed
	}
	attached, err := repo.GetByPost(ctx, postID)
	if err != nil {
		s.log.Error("Failed to get media by post", slog.Int64("post_id", postID), slog.String("error", err.Error()))
		return nil, custom_errors.ErrMediaQueryFailed
	}
	return attached, nil
}

// replaceMedia swaps the attachment set when items is non-nil and otherwise
// returns the current one.
func (s *PostService) replaceMedia(ctx context.Context, repo media_repository.Repository, postID int64, items []*model.PostMediaInput) ([]*model.PostMedia, error) {
	existing, err := repo.GetByPost(ctx, postID)
	if err != nil {
		return nil, custom_errors.ErrMediaQueryFailed
	}
	if items == nil {
		return existing, nil
	}
	if len(existing) > 0 {
		if _, err := repo.DetachAll(ctx, postID); err != nil {
			s.log.Error("Failed to detach media", slog.Int64("post_id", postID), slog.String("error", err.Error()))
			return nil, custom_errors.ErrMediaAttachFailed
		}
	}
	return s.attachMedia(ctx, repo, postID, items)
}

func (s *PostService) recordTransition(from, to model.PostStatus) {
	if from != to {
		s.metrics.IncrementPostTransitions(string(from), string(to))
	}
}

func contentOf(ctx context.Context, tx ports.Transaction, postID int64) (lifecycle.Content, error) {
	targets, err := tx.TargetRepository().CountByPost(ctx, postID)
	if err != nil {
		return lifecycle.Content{}, err
	}
	media, err := tx.MediaRepository().GetByPost(ctx, postID)
	if err != nil {
		return lifecycle.Content{}, custom_errors.ErrMediaQueryFailed
	}
	return lifecycle.Content{Targets: targets, Media: len(media)}, nil
}

func checkDuplicateTargets(inputs []*model.TargetInput) error {
	seen := make(map[int64]struct{}, len(inputs))
	for _, in := range inputs {
		if in == nil {
			return custom_errors.ErrInvalidInput
		}
		if _, ok := seen[in.AccountID]; ok {
			return custom_errors.ErrDuplicateTarget
		}
		seen[in.AccountID] = struct{}{}
	}
	return nil
}

func toTargets(inputs []*model.TargetInput) []*model.PostTarget {
	targets := make([]*model.PostTarget, 0, len(inputs))
	for _, in := range inputs {
		targets = append(targets, &model.PostTarget{
			AccountID:       in.AccountID,
			Platform:        in.Platform,
			ContentOverride: in.ContentOverride,
			Status:          model.TargetStatusPending,
		})
	}
	return targets
}
