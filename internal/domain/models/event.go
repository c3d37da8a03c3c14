package model

import "time"

type EventName string

const (
	EventPostSubmittedForApproval EventName = "post.submitted_for_approval"
	EventPostApproved             EventName = "post.approved"
	EventPostRejected             EventName = "post.rejected"
	EventPostPublished            EventName = "post.published"
	EventPostFailed               EventName = "post.failed"
)

type DomainEvent struct {
	ID          string            `json:"id"`
	Name        EventName         `json:"name"`
	WorkspaceID int64             `json:"workspace_id"`
	PostID      int64             `json:"post_id"`
	ActorID     *int64            `json:"actor_id,omitempty"`
	Post        *Post             `json:"post"`
	Decision    *ApprovalDecision `json:"decision,omitempty"`
	OccurredAt  time.Time         `json:"occurred_at"`
}
