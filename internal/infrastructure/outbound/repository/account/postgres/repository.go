package account_repository_postgres

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"pinstack-publish-service/internal/domain/custom_errors"
	model "pinstack-publish-service/internal/domain/models"
	ports "pinstack-publish-service/internal/domain/ports/output"
	"pinstack-publish-service/internal/infrastructure/outbound/repository/postgres/db"

	"github.com/jackc/pgx/v5"
)

// AccountRepository reads the social_accounts and platform_integrations
// tables this service shares with the account directory.
type AccountRepository struct {
	log     ports.Logger
	db      db.PgDB
	metrics ports.MetricsProvider
}

func NewAccountRepository(db db.PgDB, log ports.Logger, metrics ports.MetricsProvider) *AccountRepository {
	return &AccountRepository{db: db, log: log, metrics: metrics}
}

func (r *AccountRepository) record(queryType string, start time.Time, success bool) {
	r.metrics.IncrementDatabaseQueries(queryType, success)
	r.metrics.RecordDatabaseQueryDuration(queryType, time.Since(start))
}

func (r *AccountRepository) Get(ctx context.Context, accountID int64) (*model.Account, error) {
	start := time.Now()
	var a model.Account
	err := r.db.QueryRow(ctx, `
		SELECT id, workspace_id, platform, display_name, status, token_expires_at, token_expired
		FROM social_accounts WHERE id = @id`,
		pgx.NamedArgs{"id": accountID},
	).Scan(&a.ID, &a.WorkspaceID, &a.Platform, &a.DisplayName, &a.Status, &a.TokenExpiresAt, &a.TokenExpired)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.record("account_get", start, true)
			return nil, custom_errors.ErrAccountNotFound
		}
		r.record("account_get", start, false)
		r.log.Error("Failed to get account", slog.Int64("account_id", accountID), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	r.record("account_get", start, true)
	return &a, nil
}

func (r *AccountRepository) MarkTokenExpired(ctx context.Context, accountID int64) error {
	start := time.Now()
	tag, err := r.db.Exec(ctx,
		`UPDATE social_accounts SET token_expired = true, updated_at = now() WHERE id = @id`,
		pgx.NamedArgs{"id": accountID})
	if err != nil {
		r.record("account_mark_token_expired", start, false)
		r.log.Error("Failed to mark token expired", slog.Int64("account_id", accountID), slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}
	r.record("account_mark_token_expired", start, true)
	if tag.RowsAffected() == 0 {
		return custom_errors.ErrAccountNotFound
	}
	r.log.Warn("Account token marked expired", slog.Int64("account_id", accountID))
	return nil
}

// IsActive reports whether the workspace-wide integration for platform is
// enabled. Platforms without a row are treated as enabled.
func (r *AccountRepository) IsActive(ctx context.Context, platform string) (bool, error) {
	start := time.Now()
	var enabled bool
	err := r.db.QueryRow(ctx,
		`SELECT enabled FROM platform_integrations WHERE platform = @platform`,
		pgx.NamedArgs{"platform": platform},
	).Scan(&enabled)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.record("integration_is_active", start, true)
			return true, nil
		}
		r.record("integration_is_active", start, false)
		r.log.Error("Failed to read platform integration", slog.String("platform", platform), slog.String("error", err.Error()))
		return false, custom_errors.ErrDatabaseQuery
	}
	r.record("integration_is_active", start, true)
	return enabled, nil
}
