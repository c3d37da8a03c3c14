package memory

import (
	"context"
	"sort"
	"time"

	model "pinstack-publish-service/internal/domain/models"

	"github.com/jackc/pgx/v5/pgtype"
)

type MediaRepository struct {
	store   *Store
	journal *journal
}

func (r *MediaRepository) Attach(ctx context.Context, postID int64, media []*model.PostMedia) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	now := pgtype.Timestamptz{Time: time.Now(), Valid: true}
	for _, m := range media {
		row := *m
		row.ID = s.nextID("post_media")
		row.PostID = postID
		row.CreatedAt = now
		s.media[row.ID] = &row
		id := row.ID
		r.journal.push(func() { delete(s.media, id) })
	}
	return nil
}

func (r *MediaRepository) DetachAll(ctx context.Context, postID int64) (int64, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for id, prev := range s.media {
		if prev.PostID != postID {
			continue
		}
		delete(s.media, id)
		r.journal.push(func() { s.media[prev.ID] = prev })
		n++
	}
	return n, nil
}

func (r *MediaRepository) GetByPost(ctx context.Context, postID int64) ([]*model.PostMedia, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	media := make([]*model.PostMedia, 0)
	for _, m := range r.store.media {
		if m.PostID == postID {
			out := *m
			media = append(media, &out)
		}
	}
	sort.Slice(media, func(i, j int) bool {
		if media[i].Position != media[j].Position {
			return media[i].Position < media[j].Position
		}
		return media[i].ID < media[j].ID
	})
	return media, nil
}
