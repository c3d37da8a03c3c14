package model

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

type AccountStatus string

const (
	AccountStatusActive       AccountStatus = "active"
	AccountStatusDisconnected AccountStatus = "disconnected"
	AccountStatusSuspended    AccountStatus = "suspended"
)

// Account is the destination-account read model owned by the account
// directory collaborator.
type Account struct {
	ID             int64              `json:"id"`
	WorkspaceID    int64              `json:"workspace_id"`
	Platform       string             `json:"platform"`
	DisplayName    string             `json:"display_name"`
	Status         AccountStatus      `json:"status"`
	TokenExpiresAt pgtype.Timestamptz `json:"token_expires_at"`
	TokenExpired   bool               `json:"token_expired"`
}

func (a *Account) CanPublish() bool {
	return a.Status == AccountStatusActive
}

func (a *Account) IsTokenExpired(now time.Time) bool {
	if a.TokenExpired {
		return true
	}
	return a.TokenExpiresAt.Valid && !a.TokenExpiresAt.Time.After(now)
}
