package model

import (
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgtype"
)

type PostStatus string

const (
	PostStatusDraft      PostStatus = "draft"
	PostStatusSubmitted  PostStatus = "submitted"
	PostStatusApproved   PostStatus = "approved"
	PostStatusRejected   PostStatus = "rejected"
	PostStatusScheduled  PostStatus = "scheduled"
	PostStatusPublishing PostStatus = "publishing"
	PostStatusPublished  PostStatus = "published"
	PostStatusFailed     PostStatus = "failed"
	PostStatusCancelled  PostStatus = "cancelled"
)

func (s PostStatus) IsValid() error {
	switch s {
	case PostStatusDraft, PostStatusSubmitted, PostStatusApproved, PostStatusRejected,
		PostStatusScheduled, PostStatusPublishing, PostStatusPublished, PostStatusFailed,
		PostStatusCancelled:
		return nil
	}
	return fmt.Errorf("invalid post status: %s", s)
}

// IsTerminal reports statuses no user action can leave. FAILED and REJECTED
// are recoverable and therefore not terminal.
func (s PostStatus) IsTerminal() bool {
	return s == PostStatusPublished || s == PostStatusCancelled
}

func (s PostStatus) IsEditable() bool {
	return s == PostStatusDraft || s == PostStatusRejected
}

func (s PostStatus) IsDeletable() bool {
	return s == PostStatusDraft || s == PostStatusRejected || s == PostStatusCancelled
}

type Post struct {
	ID              int64              `json:"id"`
	WorkspaceID     int64              `json:"workspace_id"`
	AuthorID        int64              `json:"author_id"`
	Body            *string            `json:"body,omitempty"`
	Variations      map[string]string  `json:"variations,omitempty"`
	Status          PostStatus         `json:"status"`
	ScheduledAt     pgtype.Timestamptz `json:"scheduled_at"`
	Timezone        *string            `json:"timezone,omitempty"`
	PublishedAt     pgtype.Timestamptz `json:"published_at"`
	SubmittedAt     pgtype.Timestamptz `json:"submitted_at"`
	RejectionReason *string            `json:"rejection_reason,omitempty"`
	DeletedAt       pgtype.Timestamptz `json:"deleted_at"`
	CreatedAt       pgtype.Timestamptz `json:"created_at"`
	UpdatedAt       pgtype.Timestamptz `json:"updated_at"`
}

func (p *Post) HasBody() bool {
	return p.Body != nil && strings.TrimSpace(*p.Body) != ""
}

func (p *Post) IsDeleted() bool {
	return p.DeletedAt.Valid
}

// ContentFor resolves the text sent to a platform: a per-platform variation
// wins over the shared body.
func (p *Post) ContentFor(platform string) string {
	if v, ok := p.Variations[platform]; ok && strings.TrimSpace(v) != "" {
		return v
	}
	if p.Body != nil {
		return *p.Body
	}
	return ""
}

type PostDetailed struct {
	Post    *Post         `json:"post"`
	Targets []*PostTarget `json:"targets"`
	Media   []*PostMedia  `json:"media"`
}
