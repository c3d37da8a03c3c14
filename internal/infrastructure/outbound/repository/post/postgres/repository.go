package post_repository_postgres

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"pinstack-publish-service/internal/domain/custom_errors"
	model "pinstack-publish-service/internal/domain/models"
	ports "pinstack-publish-service/internal/domain/ports/output"
	"pinstack-publish-service/internal/infrastructure/outbound/repository/postgres/db"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const postColumns = `id, workspace_id, author_id, body, variations, status, scheduled_at, timezone,
	published_at, submitted_at, rejection_reason, deleted_at, created_at, updated_at`

type PostRepository struct {
	log     ports.Logger
	db      db.PgDB
	metrics ports.MetricsProvider
}

func NewPostRepository(db db.PgDB, log ports.Logger, metrics ports.MetricsProvider) *PostRepository {
	return &PostRepository{db: db, log: log, metrics: metrics}
}

func (p *PostRepository) record(queryType string, start time.Time, success bool) {
	p.metrics.IncrementDatabaseQueries(queryType, success)
	p.metrics.RecordDatabaseQueryDuration(queryType, time.Since(start))
}

func scanPost(row pgx.Row) (*model.Post, error) {
	var post model.Post
	err := row.Scan(
		&post.ID,
		&post.WorkspaceID,
		&post.AuthorID,
		&post.Body,
		&post.Variations,
		&post.Status,
		&post.ScheduledAt,
		&post.Timezone,
		&post.PublishedAt,
		&post.SubmittedAt,
		&post.RejectionReason,
		&post.DeletedAt,
		&post.CreatedAt,
		&post.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func variationsArg(v map[string]string) map[string]string {
	if v == nil {
		return map[string]string{}
	}
	return v
}

func (p *PostRepository) Create(ctx context.Context, post *model.Post) (*model.Post, error) {
	start := time.Now()
	p.log.Debug("Creating new post", slog.Int64("workspace_id", post.WorkspaceID), slog.Int64("author_id", post.AuthorID))

	now := pgtype.Timestamptz{Time: time.Now(), Valid: true}
	status := post.Status
	if status == "" {
		status = model.PostStatusDraft
	}

	args := pgx.NamedArgs{
		"workspace_id": post.WorkspaceID,
		"author_id":    post.AuthorID,
		"body":         post.Body,
		"variations":   variationsArg(post.Variations),
		"status":       string(status),
		"created_at":   now,
		"updated_at":   now,
	}

	query := `
		INSERT INTO posts (workspace_id, author_id, body, variations, status, created_at, updated_at)
		VALUES (@workspace_id, @author_id, @body, @variations, @status, @created_at, @updated_at)
		RETURNING ` + postColumns

	created, err := scanPost(p.db.QueryRow(ctx, query, args))
	if err != nil {
		p.record("post_create", start, false)
		p.log.Error("Error creating post", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	p.record("post_create", start, true)
	p.log.Debug("Successfully created post", slog.Int64("id", created.ID), slog.Int64("workspace_id", created.WorkspaceID))
	return created, nil
}

func (p *PostRepository) getOne(ctx context.Context, queryType, query string, id int64) (*model.Post, error) {
	start := time.Now()
	post, err := scanPost(p.db.QueryRow(ctx, query, pgx.NamedArgs{"id": id}))
	if err != nil {
		p.record(queryType, start, false)
		if errors.Is(err, pgx.ErrNoRows) {
			p.log.Debug("Post not found by id", slog.Int64("id", id))
			return nil, custom_errors.ErrPostNotFound
		}
		p.log.Error("Error getting post by id", slog.Int64("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	p.record(queryType, start, true)
	return post, nil
}

func (p *PostRepository) GetByID(ctx context.Context, id int64) (*model.Post, error) {
	p.log.Debug("Getting post by ID", slog.Int64("id", id))
	query := `SELECT ` + postColumns + ` FROM posts WHERE id = @id AND deleted_at IS NULL`
	return p.getOne(ctx, "post_get_by_id", query, id)
}

func (p *PostRepository) GetForUpdate(ctx context.Context, id int64) (*model.Post, error) {
	p.log.Debug("Locking post row", slog.Int64("id", id))
	query := `SELECT ` + postColumns + ` FROM posts WHERE id = @id AND deleted_at IS NULL FOR UPDATE`
	return p.getOne(ctx, "post_get_for_update", query, id)
}

func (p *PostRepository) Update(ctx context.Context, post *model.Post) (*model.Post, error) {
	start := time.Now()
	p.log.Debug("Updating post", slog.Int64("id", post.ID), slog.String("status", string(post.Status)))

	args := pgx.NamedArgs{
		"id":               post.ID,
		"body":             post.Body,
		"variations":       variationsArg(post.Variations),
		"status":           string(post.Status),
		"scheduled_at":     post.ScheduledAt,
		"timezone":         post.Timezone,
		"published_at":     post.PublishedAt,
		"submitted_at":     post.SubmittedAt,
		"rejection_reason": post.RejectionReason,
		"deleted_at":       post.DeletedAt,
		"updated_at":       pgtype.Timestamptz{Time: time.Now(), Valid: true},
	}

	query := `
		UPDATE posts SET
			body = @body,
			variations = @variations,
			status = @status,
			scheduled_at = @scheduled_at,
			timezone = @timezone,
			published_at = @published_at,
			submitted_at = @submitted_at,
			rejection_reason = @rejection_reason,
			deleted_at = @deleted_at,
			updated_at = @updated_at
		WHERE id = @id
		RETURNING ` + postColumns

	updated, err := scanPost(p.db.QueryRow(ctx, query, args))
	if err != nil {
		p.record("post_update", start, false)
		if errors.Is(err, pgx.ErrNoRows) {
			p.log.Debug("Post not found by id during Update", slog.Int64("id", post.ID))
			return nil, custom_errors.ErrPostNotFound
		}
		p.log.Error("Error updating post", slog.Int64("id", post.ID), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	p.record("post_update", start, true)
	p.log.Debug("Successfully updated post", slog.Int64("id", updated.ID), slog.String("status", string(updated.Status)))
	return updated, nil
}

func (p *PostRepository) List(ctx context.Context, filters model.PostFilters) ([]*model.Post, int, error) {
	start := time.Now()
	p.log.Debug("Listing posts with filters",
		slog.Int64("workspace_id", filters.WorkspaceID),
		slog.Any("status", filters.Status),
		slog.Any("limit", filters.Limit),
		slog.Any("offset", filters.Offset))

	whereClauses := []string{"workspace_id = @workspace_id", "deleted_at IS NULL"}
	args := pgx.NamedArgs{"workspace_id": filters.WorkspaceID}
	if filters.Status != nil {
		whereClauses = append(whereClauses, "status = @status")
		args["status"] = string(*filters.Status)
	}
	condition := " WHERE " + strings.Join(whereClauses, " AND ")

	query := `SELECT ` + postColumns + ` FROM posts` + condition + ` ORDER BY created_at DESC, id DESC`
	if filters.Limit != nil {
		query += " LIMIT @limit"
		args["limit"] = *filters.Limit
	}
	if filters.Offset != nil {
		query += " OFFSET @offset"
		args["offset"] = *filters.Offset
	}

	rows, err := p.db.Query(ctx, query, args)
	if err != nil {
		p.record("post_list", start, false)
		p.log.Error("Error listing posts", slog.String("error", err.Error()))
		return nil, 0, custom_errors.ErrDatabaseQuery
	}
	posts, err := collectPosts(rows)
	if err != nil {
		p.record("post_list", start, false)
		p.log.Error("Error scanning posts during List", slog.String("error", err.Error()))
		return nil, 0, custom_errors.ErrDatabaseQuery
	}

	countArgs := make(pgx.NamedArgs)
	for k, v := range args {
		if k != "limit" && k != "offset" {
			countArgs[k] = v
		}
	}
	var total int
	if err := p.db.QueryRow(ctx, `SELECT COUNT(*) FROM posts`+condition, countArgs).Scan(&total); err != nil {
		p.record("post_list", start, false)
		p.log.Error("Error counting posts", slog.String("error", err.Error()))
		return nil, 0, custom_errors.ErrDatabaseQuery
	}

	p.record("post_list", start, true)
	return posts, total, nil
}

func (p *PostRepository) ListDue(ctx context.Context, now time.Time, limit int) ([]*model.Post, error) {
	start := time.Now()
	query := `SELECT ` + postColumns + ` FROM posts
		WHERE status = @status AND scheduled_at <= @now AND deleted_at IS NULL
		ORDER BY scheduled_at ASC, id ASC
		LIMIT @limit`
	rows, err := p.db.Query(ctx, query, pgx.NamedArgs{
		"status": string(model.PostStatusScheduled),
		"now":    now,
		"limit":  limit,
	})
	if err != nil {
		p.record("post_list_due", start, false)
		p.log.Error("Error listing due posts", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	posts, err := collectPosts(rows)
	if err != nil {
		p.record("post_list_due", start, false)
		p.log.Error("Error scanning due posts", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	p.record("post_list_due", start, true)
	p.log.Debug("Retrieved due posts", slog.Int("count", len(posts)), slog.Int("limit", limit))
	return posts, nil
}

func collectPosts(rows pgx.Rows) ([]*model.Post, error) {
	defer rows.Close()
	var posts []*model.Post
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, rows.Err()
}
