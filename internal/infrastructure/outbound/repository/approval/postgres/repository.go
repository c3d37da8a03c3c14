package approval_repository_postgres

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
	"github.com/jackc/pgx/v5/pgtype"
)

const decisionColumns = `id, post_id, decider_id, decision, comment, is_active, decided_at`

type ApprovalRepository struct {
	log     ports.Logger
	db      db.PgDB
	metrics ports.MetricsProvider
}

func NewApprovalRepository(db db.PgDB, log ports.Logger, metrics ports.MetricsProvider) *ApprovalRepository {
	return &ApprovalRepository{db: db, log: log, metrics: metrics}
}

func (r *ApprovalRepository) record(queryType string, start time.Time, success bool) {
	r.metrics.IncrementDatabaseQueries(queryType, success)
	r.metrics.RecordDatabaseQueryDuration(queryType, time.Since(start))
}

func scanDecision(row pgx.Row) (*model.ApprovalDecision, error) {
	var d model.ApprovalDecision
	if err := row.Scan(&d.ID, &d.PostID, &d.DeciderID, &d.Decision, &d.Comment, &d.IsActive, &d.DecidedAt); err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *ApprovalRepository) DeactivateActive(ctx context.Context, postID int64) (int64, error) {
	start := time.Now()
	tag, err := r.db.Exec(ctx,
		`UPDATE approval_decisions SET is_active = false WHERE post_id = @post_id AND is_active`,
		pgx.NamedArgs{"post_id": postID})
	if err != nil {
		r.record("approval_deactivate", start, false)
		r.log.Error("Failed to deactivate approval decisions", slog.Int64("post_id", postID), slog.String("error", err.Error()))
		return 0, custom_errors.ErrDatabaseQuery
	}
	r.record("approval_deactivate", start, true)
	return tag.RowsAffected(), nil
}

func (r *ApprovalRepository) Create(ctx context.Context, decision *model.ApprovalDecision) (*model.ApprovalDecision, error) {
	start := time.Now()
	decidedAt := decision.DecidedAt
	if !decidedAt.Valid {
		decidedAt = pgtype.Timestamptz{Time: time.Now(), Valid: true}
	}
	query := `
		INSERT INTO approval_decisions (post_id, decider_id, decision, comment, is_active, decided_at)
		VALUES (@post_id, @decider_id, @decision, @comment, true, @decided_at)
		RETURNING ` + decisionColumns
	created, err := scanDecision(r.db.QueryRow(ctx, query, pgx.NamedArgs{
		"post_id":    decision.PostID,
		"decider_id": decision.DeciderID,
		"decision":   string(decision.Decision),
		"comment":    decision.Comment,
		"decided_at": decidedAt,
	}))
	if err != nil {
		r.record("approval_create", start, false)
		r.log.Error("Failed to record approval decision",
			slog.Int64("post_id", decision.PostID),
			slog.Int64("decider_id", decision.DeciderID),
			slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	r.record("approval_create", start, true)
	r.log.Info("Approval decision recorded",
		slog.Int64("id", created.ID),
		slog.Int64("post_id", created.PostID),
		slog.String("decision", string(created.Decision)))
	return created, nil
}

func (r *ApprovalRepository) GetActive(ctx context.Context, postID int64) (*model.ApprovalDecision, error) {
	start := time.Now()
	d, err := scanDecision(r.db.QueryRow(ctx,
		`SELECT `+decisionColumns+` FROM approval_decisions WHERE post_id = @post_id AND is_active`,
		pgx.NamedArgs{"post_id": postID}))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.record("approval_get_active", start, true)
			return nil, nil
		}
		r.record("approval_get_active", start, false)
		r.log.Error("Failed to get active decision", slog.Int64("post_id", postID), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	r.record("approval_get_active", start, true)
	return d, nil
}

func (r *ApprovalRepository) ListByPost(ctx context.Context, postID int64) ([]*model.ApprovalDecision, error) {
	start := time.Now()
	rows, err := r.db.Query(ctx,
		`SELECT `+decisionColumns+` FROM approval_decisions WHERE post_id = @post_id ORDER BY decided_at DESC, id DESC`,
		pgx.NamedArgs{"post_id": postID})
	if err != nil {
		r.record("approval_list_by_post", start, false)
		r.log.Error("Failed to list approval history", slog.Int64("post_id", postID), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	defer rows.Close()

	decisions := make([]*model.ApprovalDecision, 0)
	for rows.Next() {
		d, err := scanDecision(rows)
		if err != nil {
			r.record("approval_list_by_post", start, false)
			r.log.Error("Failed to scan approval decision", slog.Int64("post_id", postID), slog.String("error", err.Error()))
			return nil, custom_errors.ErrDatabaseQuery
		}
		decisions = append(decisions, d)
	}
	if err := rows.Err(); err != nil {
		r.record("approval_list_by_post", start, false)
		return nil, custom_errors.ErrDatabaseQuery
	}
	r.record("approval_list_by_post", start, true)
	return decisions, nil
}
