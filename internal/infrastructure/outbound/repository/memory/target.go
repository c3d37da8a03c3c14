package memory

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"pinstack-publish-service/internal/domain/custom_errors"
	"pinstack-publish-service/internal/domain/lifecycle"
	model "pinstack-publish-service/internal/domain/models"

	"github.com/jackc/pgx/v5/pgtype"
)

type TargetRepository struct {
	store   *Store
	journal *journal
}

func copyTarget(t *model.PostTarget) *model.PostTarget {
	c := *t
	if t.Metrics != nil {
		c.Metrics = append(json.RawMessage(nil), t.Metrics...)
	}
	return &c
}

func (r *TargetRepository) CreateBatch(ctx context.Context, postID int64, targets []*model.PostTarget) ([]*model.PostTarget, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	now := pgtype.Timestamptz{Time: time.Now(), Valid: true}
	created := make([]*model.PostTarget, 0, len(targets))
	for _, t := range targets {
		row := &model.PostTarget{
			ID:              s.nextID("post_targets"),
			PostID:          postID,
			AccountID:       t.AccountID,
			Platform:        t.Platform,
			ContentOverride: t.ContentOverride,
			Status:          model.TargetStatusPending,
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		s.targets[row.ID] = row
		id := row.ID
		r.journal.push(func() { delete(s.targets, id) })
		created = append(created, copyTarget(row))
	}
	return created, nil
}

func (r *TargetRepository) GetByID(ctx context.Context, id int64) (*model.PostTarget, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	t, ok := r.store.targets[id]
	if !ok {
		return nil, custom_errors.ErrTargetNotFound
	}
	return copyTarget(t), nil
}

func (r *TargetRepository) ListByPost(ctx context.Context, postID int64) ([]*model.PostTarget, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	targets := make([]*model.PostTarget, 0)
	for _, t := range r.store.targets {
		if t.PostID == postID {
			targets = append(targets, copyTarget(t))
		}
	}
	sort.Slice(targets, func(i, j int) bool { return targets[i].ID < targets[j].ID })
	return targets, nil
}

func (r *TargetRepository) CountByPost(ctx context.Context, postID int64) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	count := 0
	for _, t := range r.store.targets {
		if t.PostID == postID {
			count++
		}
	}
	return count, nil
}

// replace must be called with mu held. next keeps its UpdatedAt when the
// caller stamped one.
func (r *TargetRepository) replace(next *model.PostTarget) *model.PostTarget {
	s := r.store
	prev := s.targets[next.ID]
	if !next.UpdatedAt.Valid || next.UpdatedAt == prev.UpdatedAt {
		next.UpdatedAt = pgtype.Timestamptz{Time: time.Now(), Valid: true}
	}
	s.targets[next.ID] = next
	r.journal.push(func() { s.targets[prev.ID] = prev })
	return copyTarget(next)
}

func (r *TargetRepository) Update(ctx context.Context, target *model.PostTarget) (*model.PostTarget, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	prev, ok := r.store.targets[target.ID]
	if !ok {
		return nil, custom_errors.ErrTargetNotFound
	}
	next := copyTarget(target)
	next.PostID = prev.PostID
	next.AccountID = prev.AccountID
	next.Platform = prev.Platform
	next.Metrics = prev.Metrics
	next.CreatedAt = prev.CreatedAt
	return r.replace(next), nil
}

func (r *TargetRepository) Claim(ctx context.Context, id int64, now time.Time) (*model.PostTarget, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	prev, ok := r.store.targets[id]
	if !ok {
		return nil, custom_errors.ErrTargetNotFound
	}
	next, err := lifecycle.BeginAttempt(*copyTarget(prev), now)
	if err != nil {
		return nil, err
	}
	return r.replace(&next), nil
}

func (r *TargetRepository) ListStale(ctx context.Context, cutoff time.Time, limit int) ([]*model.PostTarget, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	stale := make([]*model.PostTarget, 0)
	for _, t := range r.store.targets {
		if lifecycle.IsStale(*t, cutoff) {
			stale = append(stale, copyTarget(t))
		}
	}
	sort.Slice(stale, func(i, j int) bool {
		if !stale[i].UpdatedAt.Time.Equal(stale[j].UpdatedAt.Time) {
			return stale[i].UpdatedAt.Time.Before(stale[j].UpdatedAt.Time)
		}
		return stale[i].ID < stale[j].ID
	})
	if limit > 0 && len(stale) > limit {
		stale = stale[:limit]
	}
	return stale, nil
}

func (r *TargetRepository) UpdateMetrics(ctx context.Context, id int64, metrics json.RawMessage) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	prev, ok := r.store.targets[id]
	if !ok {
		return custom_errors.ErrTargetNotFound
	}
	next := copyTarget(prev)
	next.Metrics = append(json.RawMessage(nil), metrics...)
	r.replace(next)
	return nil
}

func (r *TargetRepository) Delete(ctx context.Context, id int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	prev, ok := s.targets[id]
	if !ok {
		return custom_errors.ErrTargetNotFound
	}
	delete(s.targets, id)
	r.journal.push(func() { s.targets[id] = prev })
	return nil
}

func (r *TargetRepository) DeleteByPost(ctx context.Context, postID int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, t := range s.targets {
		if t.PostID != postID {
			continue
		}
		prev := t
		delete(s.targets, id)
		r.journal.push(func() { s.targets[prev.ID] = prev })
	}
	return nil
}
