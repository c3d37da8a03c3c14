package target_repository_postgres

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"pinstack-publish-service/internal/domain/custom_errors"
	model "pinstack-publish-service/internal/domain/models"
	ports "pinstack-publish-service/internal/domain/ports/output"
	"pinstack-publish-service/internal/infrastructure/outbound/repository/postgres/db"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const targetColumns = `id, post_id, account_id, platform, content_override, status, external_post_id,
	external_post_url, error_code, error_message, retry_count, metrics, published_at, created_at, updated_at`

type TargetRepository struct {
	log     ports.Logger
	db      db.PgDB
	metrics ports.MetricsProvider
}

func NewTargetRepository(db db.PgDB, log ports.Logger, metrics ports.MetricsProvider) *TargetRepository {
	return &TargetRepository{db: db, log: log, metrics: metrics}
}

func (r *TargetRepository) record(queryType string, start time.Time, success bool) {
	r.metrics.IncrementDatabaseQueries(queryType, success)
	r.metrics.RecordDatabaseQueryDuration(queryType, time.Since(start))
}

func scanTarget(row pgx.Row) (*model.PostTarget, error) {
	var t model.PostTarget
	var metrics []byte
	err := row.Scan(
		&t.ID,
		&t.PostID,
		&t.AccountID,
		&t.Platform,
		&t.ContentOverride,
		&t.Status,
		&t.ExternalPostID,
		&t.ExternalPostURL,
		&t.ErrorCode,
		&t.ErrorMessage,
		&t.RetryCount,
		&metrics,
		&t.PublishedAt,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(metrics) > 0 {
		t.Metrics = json.RawMessage(metrics)
	}
	return &t, nil
}

func collectTargets(rows pgx.Rows) ([]*model.PostTarget, error) {
	defer rows.Close()
	var targets []*model.PostTarget
	for rows.Next() {
		t, err := scanTarget(rows)
		if err != nil {
			return nil, err
		}
		targets = append(targets, t)
	}
	return targets, rows.Err()
}

func (r *TargetRepository) CreateBatch(ctx context.Context, postID int64, targets []*model.PostTarget) ([]*model.PostTarget, error) {
	start := time.Now()
	if len(targets) == 0 {
		return []*model.PostTarget{}, nil
	}

	now := pgtype.Timestamptz{Time: time.Now(), Valid: true}
	batch := &pgx.Batch{}
	for _, t := range targets {
		batch.Queue(
			`INSERT INTO post_targets (post_id, account_id, platform, content_override, status, retry_count, created_at, updated_at)
			VALUES (@post_id, @account_id, @platform, @content_override, @status, 0, @now, @now)
			RETURNING `+targetColumns,
			pgx.NamedArgs{
				"post_id":          postID,
				"account_id":       t.AccountID,
				"platform":         t.Platform,
				"content_override": t.ContentOverride,
				"status":           string(model.TargetStatusPending),
				"now":              now,
			},
		)
	}

	results := r.db.SendBatch(ctx, batch)
	defer func(results pgx.BatchResults) {
		if err := results.Close(); err != nil {
			r.log.Error("Failed to close batch result in CreateBatch targets", slog.String("error", err.Error()), slog.Int64("post_id", postID))
		}
	}(results)

	created := make([]*model.PostTarget, 0, len(targets))
	for range targets {
		t, err := scanTarget(results.QueryRow())
		if err != nil {
			r.record("target_create_batch", start, false)
			r.log.Error("Failed to create post target", slog.Int64("post_id", postID), slog.String("error", err.Error()))
			return nil, custom_errors.ErrDatabaseQuery
		}
		created = append(created, t)
	}
	r.record("target_create_batch", start, true)
	r.log.Debug("Created post targets", slog.Int64("post_id", postID), slog.Int("count", len(created)))
	return created, nil
}

func (r *TargetRepository) GetByID(ctx context.Context, id int64) (*model.PostTarget, error) {
	start := time.Now()
	t, err := scanTarget(r.db.QueryRow(ctx, `SELECT `+targetColumns+` FROM post_targets WHERE id = @id`, pgx.NamedArgs{"id": id}))
	if err != nil {
		r.record("target_get_by_id", start, false)
		if errors.Is(err, pgx.ErrNoRows) {
			r.log.Debug("Target not found by id", slog.Int64("id", id))
			return nil, custom_errors.ErrTargetNotFound
		}
		r.log.Error("Error getting target by id", slog.Int64("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	r.record("target_get_by_id", start, true)
	return t, nil
}

func (r *TargetRepository) ListByPost(ctx context.Context, postID int64) ([]*model.PostTarget, error) {
	start := time.Now()
	rows, err := r.db.Query(ctx, `SELECT `+targetColumns+` FROM post_targets WHERE post_id = @post_id ORDER BY id`, pgx.NamedArgs{"post_id": postID})
	if err != nil {
		r.record("target_list_by_post", start, false)
		r.log.Error("Error listing targets", slog.Int64("post_id", postID), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	targets, err := collectTargets(rows)
	if err != nil {
		r.record("target_list_by_post", start, false)
		r.log.Error("Error scanning targets", slog.Int64("post_id", postID), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	r.record("target_list_by_post", start, true)
	return targets, nil
}

func (r *TargetRepository) CountByPost(ctx context.Context, postID int64) (int, error) {
	start := time.Now()
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM post_targets WHERE post_id = @post_id`, pgx.NamedArgs{"post_id": postID}).Scan(&count); err != nil {
		r.record("target_count_by_post", start, false)
		r.log.Error("Error counting targets", slog.Int64("post_id", postID), slog.String("error", err.Error()))
		return 0, custom_errors.ErrDatabaseQuery
	}
	r.record("target_count_by_post", start, true)
	return count, nil
}

func (r *TargetRepository) Update(ctx context.Context, target *model.PostTarget) (*model.PostTarget, error) {
	start := time.Now()
	query := `
		UPDATE post_targets SET
			content_override = @content_override,
			status = @status,
			external_post_id = @external_post_id,
			external_post_url = @external_post_url,
			error_code = @error_code,
			error_message = @error_message,
			retry_count = @retry_count,
			published_at = @published_at,
			updated_at = @updated_at
		WHERE id = @id
		RETURNING ` + targetColumns
	updated, err := scanTarget(r.db.QueryRow(ctx, query, pgx.NamedArgs{
		"id":                target.ID,
		"content_override":  target.ContentOverride,
		"status":            string(target.Status),
		"external_post_id":  target.ExternalPostID,
		"external_post_url": target.ExternalPostURL,
		"error_code":        target.ErrorCode,
		"error_message":     target.ErrorMessage,
		"retry_count":       target.RetryCount,
		"published_at":      target.PublishedAt,
		"updated_at":        pgtype.Timestamptz{Time: time.Now(), Valid: true},
	}))
	if err != nil {
		r.record("target_update", start, false)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, custom_errors.ErrTargetNotFound
		}
		r.log.Error("Error updating target", slog.Int64("id", target.ID), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	r.record("target_update", start, true)
	r.log.Debug("Successfully updated target", slog.Int64("id", updated.ID), slog.String("status", string(updated.Status)))
	return updated, nil
}

func (r *TargetRepository) Claim(ctx context.Context, id int64, now time.Time) (*model.PostTarget, error) {
	start := time.Now()
	query := `
		UPDATE post_targets SET status = @publishing, updated_at = @now
		WHERE id = @id AND status = @pending
		RETURNING ` + targetColumns
	claimed, err := scanTarget(r.db.QueryRow(ctx, query, pgx.NamedArgs{
		"id":         id,
		"publishing": string(model.TargetStatusPublishing),
		"pending":    string(model.TargetStatusPending),
		"now":        pgtype.Timestamptz{Time: now, Valid: true},
	}))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.record("target_claim", start, true)
			if _, getErr := r.GetByID(ctx, id); getErr != nil {
				return nil, getErr
			}
			r.log.Debug("Target already claimed or settled", slog.Int64("id", id))
			return nil, custom_errors.ErrTargetNotPending
		}
		r.record("target_claim", start, false)
		r.log.Error("Error claiming target", slog.Int64("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	r.record("target_claim", start, true)
	return claimed, nil
}

func (r *TargetRepository) ListStale(ctx context.Context, cutoff time.Time, limit int) ([]*model.PostTarget, error) {
	start := time.Now()
	query := `SELECT ` + targetColumns + ` FROM post_targets
		WHERE status = @publishing AND updated_at < @cutoff
		ORDER BY updated_at, id`
	args := pgx.NamedArgs{
		"publishing": string(model.TargetStatusPublishing),
		"cutoff":     pgtype.Timestamptz{Time: cutoff, Valid: true},
	}
	if limit > 0 {
		query += ` LIMIT @limit`
		args["limit"] = limit
	}
	rows, err := r.db.Query(ctx, query, args)
	if err != nil {
		r.record("target_list_stale", start, false)
		r.log.Error("Error listing stale targets", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	targets, err := collectTargets(rows)
	if err != nil {
		r.record("target_list_stale", start, false)
		r.log.Error("Error scanning stale targets", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	r.record("target_list_stale", start, true)
	return targets, nil
}

func (r *TargetRepository) UpdateMetrics(ctx context.Context, id int64, metrics json.RawMessage) error {
	start := time.Now()
	tag, err := r.db.Exec(ctx, `UPDATE post_targets SET metrics = @metrics, updated_at = now() WHERE id = @id`,
		pgx.NamedArgs{"id": id, "metrics": []byte(metrics)})
	if err != nil {
		r.record("target_update_metrics", start, false)
		r.log.Error("Error updating target metrics", slog.Int64("id", id), slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}
	r.record("target_update_metrics", start, true)
	if tag.RowsAffected() == 0 {
		return custom_errors.ErrTargetNotFound
	}
	return nil
}

func (r *TargetRepository) Delete(ctx context.Context, id int64) error {
	start := time.Now()
	tag, err := r.db.Exec(ctx, `DELETE FROM post_targets WHERE id = @id`, pgx.NamedArgs{"id": id})
	if err != nil {
		r.record("target_delete", start, false)
		r.log.Error("Error deleting target", slog.Int64("id", id), slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}
	r.record("target_delete", start, true)
	if tag.RowsAffected() == 0 {
		return custom_errors.ErrTargetNotFound
	}
	return nil
}

func (r *TargetRepository) DeleteByPost(ctx context.Context, postID int64) error {
	start := time.Now()
	if _, err := r.db.Exec(ctx, `DELETE FROM post_targets WHERE post_id = @post_id`, pgx.NamedArgs{"post_id": postID}); err != nil {
		r.record("target_delete_by_post", start, false)
		r.log.Error("Error deleting targets", slog.Int64("post_id", postID), slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}
	r.record("target_delete_by_post", start, true)
	return nil
}
