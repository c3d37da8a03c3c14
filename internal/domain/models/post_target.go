package model

import (
	"encoding/json"
	"strings"

	"github.com/jackc/pgx/v5/pgtype"
)

type TargetStatus string

const (
	TargetStatusPending    TargetStatus = "pending"
	TargetStatusPublishing TargetStatus = "publishing"
	TargetStatusPublished  TargetStatus = "published"
	TargetStatusFailed     TargetStatus = "failed"
)

// IsSettled reports a terminal per-attempt state.
func (s TargetStatus) IsSettled() bool {
	return s == TargetStatusPublished || s == TargetStatusFailed
}

// Failure codes recorded on a target. The first six are pre-flight
// (ExternalUnavailable) failures; the rest come from the adapter call.
const (
	TargetErrUnknownPlatform      = "unknown_platform"
	TargetErrAccountNotFound      = "account_not_found"
	TargetErrAccountCannotPublish = "account_cannot_publish"
	TargetErrIntegrationDisabled  = "integration_disabled"
	TargetErrTokenExpired         = "token_expired"
	TargetErrLookupFailed         = "lookup_failed"
	TargetErrAdapter              = "adapter_error"
	TargetErrAdapterTimeout       = "adapter_timeout"
	TargetErrAdapterPanic         = "adapter_panic"
	TargetErrStaleAttempt         = "stale_attempt"
)

type PostTarget struct {
	ID              int64              `json:"id"`
	PostID          int64              `json:"post_id"`
	AccountID       int64              `json:"account_id"`
	Platform        string             `json:"platform"`
	ContentOverride *string            `json:"content_override,omitempty"`
	Status          TargetStatus       `json:"status"`
	ExternalPostID  *string            `json:"external_post_id,omitempty"`
	ExternalPostURL *string            `json:"external_post_url,omitempty"`
	ErrorCode       *string            `json:"error_code,omitempty"`
	ErrorMessage    *string            `json:"error_message,omitempty"`
	RetryCount      int                `json:"retry_count"`
	Metrics         json.RawMessage    `json:"metrics,omitempty"`
	PublishedAt     pgtype.Timestamptz `json:"published_at"`
	CreatedAt       pgtype.Timestamptz `json:"created_at"`
	UpdatedAt       pgtype.Timestamptz `json:"updated_at"`
}

// Content returns the override when set, otherwise the post's content for the
// target platform.
func (t *PostTarget) Content(post *Post) string {
	if t.ContentOverride != nil && strings.TrimSpace(*t.ContentOverride) != "" {
		return *t.ContentOverride
	}
	if post == nil {
		return ""
	}
	return post.ContentFor(t.Platform)
}

type TargetInput struct {
	AccountID       int64   `json:"account_id" validate:"required,gt=0"`
	Platform        string  `json:"platform" validate:"required,max=32"`
	ContentOverride *string `json:"content_override,omitempty" validate:"omitempty,max=10000"`
}
