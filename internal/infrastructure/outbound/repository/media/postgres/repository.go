package media_repository_postgres

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
	"github.com/jackc/pgx/v5/pgconn"
)

const foreignKeyViolation = "23503"

var mediaColumns = []string{"post_id", "url", "type", "position"}

type MediaRepository struct {
	log     ports.Logger
	db      db.PgDB
	metrics ports.MetricsProvider
}

func NewMediaRepository(db db.PgDB, log ports.Logger, metrics ports.MetricsProvider) *MediaRepository {
	return &MediaRepository{db: db, log: log, metrics: metrics}
}

func (m *MediaRepository) record(queryType string, start time.Time, err error) {
	m.metrics.IncrementDatabaseQueries(queryType, err == nil)
	m.metrics.RecordDatabaseQueryDuration(queryType, time.Since(start))
}

// Attach streams the attachment rows with COPY. A post that does not exist
// surfaces as a foreign key violation.
func (m *MediaRepository) Attach(ctx context.Context, postID int64, media []*model.PostMedia) (err error) {
	if len(media) == 0 {
		return nil
	}
	start := time.Now()
	defer func() { m.record("media_attach", start, err) }()

	rows := make([][]any, 0, len(media))
	for _, md := range media {
		if md.Type.IsValid() != nil {
			return custom_errors.ErrInvalidInput
		}
		rows = append(rows, []any{postID, md.URL, string(md.Type), md.Position})
	}

	copied, err := m.db.CopyFrom(ctx, pgx.Identifier{"post_media"}, mediaColumns, pgx.CopyFromRows(rows))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
			m.log.Warn("Post not found during media attach", slog.Int64("post_id", postID))
			return custom_errors.ErrPostNotFound
		}
		m.log.Error("Media attach failed", slog.Int64("post_id", postID), slog.String("error", err.Error()))
		return custom_errors.ErrMediaAttachFailed
	}
	m.log.Debug("Media attached", slog.Int64("post_id", postID), slog.Int64("count", copied))
	return nil
}

func (m *MediaRepository) DetachAll(ctx context.Context, postID int64) (n int64, err error) {
	start := time.Now()
	defer func() { m.record("media_detach", start, err) }()

	tag, err := m.db.Exec(ctx, `DELETE FROM post_media WHERE post_id = @post_id`, pgx.NamedArgs{"post_id": postID})
	if err != nil {
		m.log.Error("Media detach failed", slog.Int64("post_id", postID), slog.String("error", err.Error()))
		return 0, custom_errors.ErrDatabaseQuery
	}
	return tag.RowsAffected(), nil
}

func (m *MediaRepository) GetByPost(ctx context.Context, postID int64) (media []*model.PostMedia, err error) {
	start := time.Now()
	defer func() { m.record("media_get_by_post", start, err) }()

	rows, err := m.db.Query(ctx,
		`SELECT id, post_id, url, type, position, created_at FROM post_media
		WHERE post_id = @post_id ORDER BY position, id`,
		pgx.NamedArgs{"post_id": postID},
	)
	if err != nil {
		m.log.Error("Media query failed", slog.Int64("post_id", postID), slog.String("error", err.Error()))
		return nil, custom_errors.ErrMediaQueryFailed
	}
	media, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (*model.PostMedia, error) {
		var pm model.PostMedia
		err := row.Scan(&pm.ID, &pm.PostID, &pm.URL, &pm.Type, &pm.Position, &pm.CreatedAt)
		return &pm, err
	})
	if err != nil {
		m.log.Error("Media scan failed", slog.Int64("post_id", postID), slog.String("error", err.Error()))
		return nil, custom_errors.ErrMediaQueryFailed
	}
	return media, nil
}
