package model

import (
	"github.com/jackc/pgx/v5/pgtype"
)

type Decision string

const (
	DecisionApproved Decision = "approved"
	DecisionRejected Decision = "rejected"
)

// ApprovalDecision is an append-only ledger row. Only IsActive is ever
// flipped after insertion.
type ApprovalDecision struct {
	ID        int64              `json:"id"`
	PostID    int64              `json:"post_id"`
	DeciderID int64              `json:"decider_id"`
	Decision  Decision           `json:"decision"`
	Comment   *string            `json:"comment,omitempty"`
	IsActive  bool               `json:"is_active"`
	DecidedAt pgtype.Timestamptz `json:"decided_at"`
}
