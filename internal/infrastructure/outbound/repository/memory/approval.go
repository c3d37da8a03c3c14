package memory

import (
	"context"
	"sort"
	"time"

	model "pinstack-publish-service/internal/domain/models"

	"github.com/jackc/pgx/v5/pgtype"
)

type ApprovalRepository struct {
	store   *Store
	journal *journal
}

func (r *ApprovalRepository) DeactivateActive(ctx context.Context, postID int64) (int64, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	var flipped int64
	for _, d := range s.decisions {
		if d.PostID != postID || !d.IsActive {
			continue
		}
		d.IsActive = false
		row := d
		r.journal.push(func() { row.IsActive = true })
		flipped++
	}
	return flipped, nil
}

func (r *ApprovalRepository) Create(ctx context.Context, decision *model.ApprovalDecision) (*model.ApprovalDecision, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	row := *decision
	row.ID = s.nextID("approval_decisions")
	row.IsActive = true
	if !row.DecidedAt.Valid {
		row.DecidedAt = pgtype.Timestamptz{Time: time.Now(), Valid: true}
	}
	s.decisions[row.ID] = &row
	id := row.ID
	r.journal.push(func() { delete(s.decisions, id) })
	out := row
	return &out, nil
}

func (r *ApprovalRepository) GetActive(ctx context.Context, postID int64) (*model.ApprovalDecision, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, d := range r.store.decisions {
		if d.PostID == postID && d.IsActive {
			out := *d
			return &out, nil
		}
	}
	return nil, nil
}

func (r *ApprovalRepository) ListByPost(ctx context.Context, postID int64) ([]*model.ApprovalDecision, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	history := make([]*model.ApprovalDecision, 0)
	for _, d := range r.store.decisions {
		if d.PostID == postID {
			out := *d
			history = append(history, &out)
		}
	}
	sort.Slice(history, func(i, j int) bool { return history[i].ID > history[j].ID })
	return history, nil
}
