package approval_service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"pinstack-publish-service/internal/application/service/common"
	"pinstack-publish-service/internal/domain/custom_errors"
	"pinstack-publish-service/internal/domain/lifecycle"
	model "pinstack-publish-service/internal/domain/models"
	ports "pinstack-publish-service/internal/domain/ports/output"
	approval_repository "pinstack-publish-service/internal/domain/ports/output/approval"
	"pinstack-publish-service/internal/domain/ports/output/auth"
	post_repository "pinstack-publish-service/internal/domain/ports/output/post"

	"github.com/jackc/pgx/v5/pgtype"
)

// LedgerService records approval decisions. Each decision deactivates the
// previous active row, inserts itself and moves the post in one transaction
// holding the post's row lock.
type LedgerService struct {
	postRepo     post_repository.Repository
	approvalRepo approval_repository.Repository
	uow          ports.UnitOfWork
	authorizer   auth.Authorizer
	events       ports.EventPublisher
	log          ports.Logger
	metrics      ports.MetricsProvider
	clock        func() time.Time
}

func NewLedgerService(
	postRepo post_repository.Repository,
	approvalRepo approval_repository.Repository,
	uow ports.UnitOfWork,
	authorizer auth.Authorizer,
	events ports.EventPublisher,
	log ports.Logger,
	metrics ports.MetricsProvider,
) *LedgerService {
	return &LedgerService{
		postRepo:     postRepo,
		approvalRepo: approvalRepo,
		uow:          uow,
		authorizer:   authorizer,
		events:       events,
		log:          log,
		metrics:      metrics,
		clock:        time.Now,
	}
}

func (l *LedgerService) Approve(ctx context.Context, actor model.Actor, postID int64, comment *string) (*model.ApprovalDecision, error) {
	return l.decide(ctx, actor, postID, model.DecisionApproved, "", comment)
}

func (l *LedgerService) Reject(ctx context.Context, actor model.Actor, postID int64, reject model.RejectDTO) (*model.ApprovalDecision, error) {
	if strings.TrimSpace(reject.Reason) == "" {
		return nil, custom_errors.ErrReasonRequired
	}
	return l.decide(ctx, actor, postID, model.DecisionRejected, reject.Reason, reject.Comment)
}

func (l *LedgerService) History(ctx context.Context, actor model.Actor, postID int64) ([]*model.ApprovalDecision, error) {
	post, err := l.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if err := l.authorizer.Authorize(actor, post.WorkspaceID, model.CapabilityView); err != nil {
		return nil, err
	}
	return l.approvalRepo.ListByPost(ctx, postID)
}

func (l *LedgerService) decide(
	ctx context.Context,
	actor model.Actor,
	postID int64,
	decision model.Decision,
	reason string,
	comment *string,
) (*model.ApprovalDecision, error) {
	now := l.clock()

	var (
		saved    *model.Post
		recorded *model.ApprovalDecision
		from     model.PostStatus
	)
	err := common.InTx(ctx, l.uow, l.log, func(tx ports.Transaction) error {
		postRepo := tx.PostRepository()
		approvalRepo := tx.ApprovalRepository()

		current, err := postRepo.GetForUpdate(ctx, postID)
		if err != nil {
			return err
		}
		if err := l.authorizer.Authorize(actor, current.WorkspaceID, model.CapabilityApprove); err != nil {
			return err
		}
		from = current.Status

		next, err := lifecycle.Decide(*current, decision, reason, now)
		if err != nil {
			l.log.Debug("Approval decision refused",
				slog.Int64("post_id", postID),
				slog.String("status", string(current.Status)),
				slog.String("decision", string(decision)),
				slog.String("error", err.Error()))
			return err
		}

		deactivated, err := approvalRepo.DeactivateActive(ctx, postID)
		if err != nil {
			return err
		}
		recorded, err = approvalRepo.Create(ctx, &model.ApprovalDecision{
			PostID:    postID,
			DeciderID: actor.UserID,
			Decision:  decision,
			Comment:   comment,
			IsActive:  true,
			DecidedAt: pgtype.Timestamptz{Time: now, Valid: true},
		})
		if err != nil {
			return err
		}
		saved, err = postRepo.Update(ctx, &next)
		if err != nil {
			return err
		}

		l.log.Debug("Approval ledger updated",
			slog.Int64("post_id", postID),
			slog.Int64("deactivated", deactivated),
			slog.Int64("decision_id", recorded.ID))
		return nil
	})
	if err != nil {
		return nil, err
	}

	l.metrics.IncrementApprovalDecisions(string(decision))
	l.metrics.IncrementPostTransitions(string(from), string(saved.Status))

	name := model.EventPostApproved
	if decision == model.DecisionRejected {
		name = model.EventPostRejected
	}
	event := common.NewEvent(name, saved, common.ActorID(actor), now)
	event.Decision = recorded
	common.Emit(ctx, l.events, l.log, event)

	l.log.Info("Approval decision recorded",
		slog.Int64("post_id", postID),
		slog.Int64("decider_id", actor.UserID),
		slog.String("decision", string(decision)))
	return recorded, nil
}
