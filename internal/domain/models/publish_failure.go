package model

import "github.com/jackc/pgx/v5/pgtype"

// PublishFailure is the audit record written every time a target attempt fails.
type PublishFailure struct {
	ID           int64              `json:"id"`
	AttemptID    string             `json:"attempt_id"`
	PostID       int64              `json:"post_id"`
	TargetID     int64              `json:"target_id"`
	WorkspaceID  int64              `json:"workspace_id"`
	Platform     string             `json:"platform"`
	AccountID    int64              `json:"account_id"`
	ErrorCode    string             `json:"error_code"`
	ErrorMessage string             `json:"error_message"`
	RetryCount   int                `json:"retry_count"`
	OccurredAt   pgtype.Timestamptz `json:"occurred_at"`
}
