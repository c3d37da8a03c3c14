package memory

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"pinstack-publish-service/internal/domain/custom_errors"
	model "pinstack-publish-service/internal/domain/models"

	"github.com/jackc/pgx/v5/pgtype"
)

type PostRepository struct {
	store   *Store
	journal *journal
}

func copyPost(p *model.Post) *model.Post {
	c := *p
	if p.Variations != nil {
		c.Variations = make(map[string]string, len(p.Variations))
		for k, v := range p.Variations {
			c.Variations[k] = v
		}
	}
	return &c
}

func (r *PostRepository) Create(ctx context.Context, post *model.Post) (*model.Post, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	now := pgtype.Timestamptz{Time: time.Now(), Valid: true}
	created := copyPost(post)
	created.ID = s.nextID("posts")
	if created.Status == "" {
		created.Status = model.PostStatusDraft
	}
	if created.Variations == nil {
		created.Variations = map[string]string{}
	}
	created.CreatedAt = now
	created.UpdatedAt = now
	s.posts[created.ID] = created

	id := created.ID
	r.journal.push(func() { delete(s.posts, id) })

	s.log.Debug("Successfully created post (memory impl)", slog.Int64("id", id), slog.Int64("workspace_id", created.WorkspaceID))
	return copyPost(created), nil
}

func (r *PostRepository) get(id int64) (*model.Post, error) {
	p, ok := r.store.posts[id]
	if !ok || p.IsDeleted() {
		return nil, custom_errors.ErrPostNotFound
	}
	return copyPost(p), nil
}

func (r *PostRepository) GetByID(ctx context.Context, id int64) (*model.Post, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return r.get(id)
}

func (r *PostRepository) GetForUpdate(ctx context.Context, id int64) (*model.Post, error) {
	return r.GetByID(ctx, id)
}

func (r *PostRepository) Update(ctx context.Context, post *model.Post) (*model.Post, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, ok := s.posts[post.ID]
	if !ok || prev.IsDeleted() {
		return nil, custom_errors.ErrPostNotFound
	}
	updated := copyPost(post)
	updated.CreatedAt = prev.CreatedAt
	updated.UpdatedAt = pgtype.Timestamptz{Time: time.Now(), Valid: true}
	s.posts[post.ID] = updated
	r.journal.push(func() { s.posts[prev.ID] = prev })
	return copyPost(updated), nil
}

func (r *PostRepository) List(ctx context.Context, filters model.PostFilters) ([]*model.Post, int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var matched []*model.Post
	for _, p := range r.store.posts {
		if p.IsDeleted() {
			continue
		}
		if filters.WorkspaceID != 0 && p.WorkspaceID != filters.WorkspaceID {
			continue
		}
		if filters.Status != nil && p.Status != *filters.Status {
			continue
		}
		matched = append(matched, copyPost(p))
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID > matched[j].ID })

	total := len(matched)
	offset := 0
	if filters.Offset != nil && *filters.Offset > 0 {
		offset = *filters.Offset
	}
	if offset >= total {
		return []*model.Post{}, total, nil
	}
	end := total
	if filters.Limit != nil && *filters.Limit > 0 && offset+*filters.Limit < total {
		end = offset + *filters.Limit
	}
	return matched[offset:end], total, nil
}

func (r *PostRepository) ListDue(ctx context.Context, now time.Time, limit int) ([]*model.Post, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	due := make([]*model.Post, 0)
	for _, p := range r.store.posts {
		if p.IsDeleted() || p.Status != model.PostStatusScheduled || !p.ScheduledAt.Valid {
			continue
		}
		if p.ScheduledAt.Time.After(now) {
			continue
		}
		due = append(due, copyPost(p))
	}
	sort.Slice(due, func(i, j int) bool {
		if !due[i].ScheduledAt.Time.Equal(due[j].ScheduledAt.Time) {
			return due[i].ScheduledAt.Time.Before(due[j].ScheduledAt.Time)
		}
		return due[i].ID < due[j].ID
	})
	if limit > 0 && len(due) > limit {
		due = due[:limit]
	}
	return due, nil
}
