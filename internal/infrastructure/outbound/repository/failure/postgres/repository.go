package failure_repository_postgres

import (
	"context"
	"log/slog"
	"time"

	"pinstack-publish-service/internal/domain/custom_errors"
	model "pinstack-publish-service/internal/domain/models"
	ports "pinstack-publish-service/internal/domain/ports/output"
	"pinstack-publish-service/internal/infrastructure/outbound/repository/postgres/db"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const failureColumns = `id, attempt_id, post_id, target_id, workspace_id, platform, account_id,
	error_code, error_message, retry_count, occurred_at`

type FailureRepository struct {
	log     ports.Logger
	db      db.PgDB
	metrics ports.MetricsProvider
}

func NewFailureRepository(db db.PgDB, log ports.Logger, metrics ports.MetricsProvider) *FailureRepository {
	return &FailureRepository{db: db, log: log, metrics: metrics}
}

func scanFailure(row pgx.Row) (*model.PublishFailure, error) {
	var f model.PublishFailure
	err := row.Scan(
		&f.ID,
		&f.AttemptID,
		&f.PostID,
		&f.TargetID,
		&f.WorkspaceID,
		&f.Platform,
		&f.AccountID,
		&f.ErrorCode,
		&f.ErrorMessage,
		&f.RetryCount,
		&f.OccurredAt,
	)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *FailureRepository) Record(ctx context.Context, failure *model.PublishFailure) (*model.PublishFailure, error) {
	start := time.Now()
	occurredAt := failure.OccurredAt
	if !occurredAt.Valid {
		occurredAt = pgtype.Timestamptz{Time: time.Now(), Valid: true}
	}
	query := `
		INSERT INTO publish_failures (attempt_id, post_id, target_id, workspace_id, platform, account_id,
			error_code, error_message, retry_count, occurred_at)
		VALUES (@attempt_id, @post_id, @target_id, @workspace_id, @platform, @account_id,
			@error_code, @error_message, @retry_count, @occurred_at)
		RETURNING ` + failureColumns
	created, err := scanFailure(r.db.QueryRow(ctx, query, pgx.NamedArgs{
		"attempt_id":    failure.AttemptID,
		"post_id":       failure.PostID,
		"target_id":     failure.TargetID,
		"workspace_id":  failure.WorkspaceID,
		"platform":      failure.Platform,
		"account_id":    failure.AccountID,
		"error_code":    failure.ErrorCode,
		"error_message": failure.ErrorMessage,
		"retry_count":   failure.RetryCount,
		"occurred_at":   occurredAt,
	}))
	r.metrics.IncrementDatabaseQueries("failure_record", err == nil)
	r.metrics.RecordDatabaseQueryDuration("failure_record", time.Since(start))
	if err != nil {
		r.log.Error("Failed to record publish failure",
			slog.Int64("post_id", failure.PostID),
			slog.Int64("target_id", failure.TargetID),
			slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	return created, nil
}

func (r *FailureRepository) ListByPost(ctx context.Context, postID int64) ([]*model.PublishFailure, error) {
	start := time.Now()
	rows, err := r.db.Query(ctx,
		`SELECT `+failureColumns+` FROM publish_failures WHERE post_id = @post_id ORDER BY occurred_at DESC, id DESC`,
		pgx.NamedArgs{"post_id": postID})
	if err != nil {
		r.metrics.IncrementDatabaseQueries("failure_list_by_post", false)
		r.log.Error("Failed to list publish failures", slog.Int64("post_id", postID), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	defer rows.Close()

	failures := make([]*model.PublishFailure, 0)
	for rows.Next() {
		f, err := scanFailure(rows)
		if err != nil {
			r.metrics.IncrementDatabaseQueries("failure_list_by_post", false)
			return nil, custom_errors.ErrDatabaseQuery
		}
		failures = append(failures, f)
	}
	if err := rows.Err(); err != nil {
		r.metrics.IncrementDatabaseQueries("failure_list_by_post", false)
		return nil, custom_errors.ErrDatabaseQuery
	}
	r.metrics.IncrementDatabaseQueries("failure_list_by_post", true)
	r.metrics.RecordDatabaseQueryDuration("failure_list_by_post", time.Since(start))
	return failures, nil
}
