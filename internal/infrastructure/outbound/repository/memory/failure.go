package memory

import (
	"context"
	"sort"
	"time"

	model "pinstack-publish-service/internal/domain/models"

	"github.com/jackc/pgx/v5/pgtype"
)

type FailureRepository struct {
	store   *Store
	journal *journal
}

func (r *FailureRepository) Record(ctx context.Context, failure *model.PublishFailure) (*model.PublishFailure, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	row := *failure
	row.ID = s.nextID("publish_failures")
	if !row.OccurredAt.Valid {
		row.OccurredAt = pgtype.Timestamptz{Time: time.Now(), Valid: true}
	}
	s.failures[row.ID] = &row
	id := row.ID
	r.journal.push(func() { delete(s.failures, id) })
	out := row
	return &out, nil
}

func (r *FailureRepository) ListByPost(ctx context.Context, postID int64) ([]*model.PublishFailure, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	failures := make([]*model.PublishFailure, 0)
	for _, f := range r.store.failures {
		if f.PostID == postID {
			out := *f
			failures = append(failures, &out)
		}
	}
	sort.Slice(failures, func(i, j int) bool { return failures[i].ID > failures[j].ID })
	return failures, nil
}
