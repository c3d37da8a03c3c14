package common

import (
	"context"
	"log/slog"
	"time"

	model "pinstack-publish-service/internal/domain/models"
	ports "pinstack-publish-service/internal/domain/ports/output"

	"github.com/google/uuid"
)

func NewEvent(name model.EventName, post *model.Post, actorID *int64, now time.Time) *model.DomainEvent {
	return &model.DomainEvent{
		ID:          uuid.NewString(),
		Name:        name,
		WorkspaceID: post.WorkspaceID,
		PostID:      post.ID,
		ActorID:     actorID,
		Post:        post,
		OccurredAt:  now,
	}
}

// Emit hands the event to the sink once the state change is committed. A
// failing sink is logged; the committed transition stands.
func Emit(ctx context.Context, events ports.EventPublisher, log ports.Logger, event *model.DomainEvent) {
	if err := events.Publish(ctx, event); err != nil {
		log.Warn("Failed to emit domain event",
			slog.String("event", string(event.Name)),
			slog.Int64("post_id", event.PostID),
			slog.String("error", err.Error()))
	}
}

func ActorID(actor model.Actor) *int64 {
	id := actor.UserID
	return &id
}
