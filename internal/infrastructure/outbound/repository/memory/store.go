package memory

import (
	"context"
	"sync"

	model "pinstack-publish-service/internal/domain/models"
	ports "pinstack-publish-service/internal/domain/ports/output"
	approval_repository "pinstack-publish-service/internal/domain/ports/output/approval"
	failure_repository "pinstack-publish-service/internal/domain/ports/output/failure"
	media_repository "pinstack-publish-service/internal/domain/ports/output/media"
	post_repository "pinstack-publish-service/internal/domain/ports/output/post"
	target_repository "pinstack-publish-service/internal/domain/ports/output/target"
)

// Store keeps every table in process memory. Repositories returned by the
// accessors operate outside a transaction; the UnitOfWork returned by
// UnitOfWork journals writes so Rollback can undo them.
type Store struct {
	log ports.Logger

	mu        sync.RWMutex
	posts     map[int64]*model.Post
	targets   map[int64]*model.PostTarget
	decisions map[int64]*model.ApprovalDecision
	media     map[int64]*model.PostMedia
	failures  map[int64]*model.PublishFailure
	seq       map[string]int64

	txMu sync.Mutex
}

func NewStore(log ports.Logger) *Store {
	return &Store{
		log:       log,
		posts:     make(map[int64]*model.Post),
		targets:   make(map[int64]*model.PostTarget),
		decisions: make(map[int64]*model.ApprovalDecision),
		media:     make(map[int64]*model.PostMedia),
		failures:  make(map[int64]*model.PublishFailure),
		seq:       make(map[string]int64),
	}
}

// nextID must be called with mu held.
func (s *Store) nextID(table string) int64 {
	s.seq[table]++
	return s.seq[table]
}

func (s *Store) PostRepository() post_repository.Repository {
	return &PostRepository{store: s}
}

func (s *Store) TargetRepository() target_repository.Repository {
	return &TargetRepository{store: s}
}

func (s *Store) ApprovalRepository() approval_repository.Repository {
	return &ApprovalRepository{store: s}
}

func (s *Store) MediaRepository() media_repository.Repository {
	return &MediaRepository{store: s}
}

func (s *Store) FailureRepository() failure_repository.Repository {
	return &FailureRepository{store: s}
}

func (s *Store) UnitOfWork() ports.UnitOfWork {
	return &UnitOfWork{store: s}
}

// journal collects undo steps for one transaction. A nil journal means the
// write is not undoable.
type journal struct {
	undo []func()
}

func (j *journal) push(f func()) {
	if j != nil {
		j.undo = append(j.undo, f)
	}
}

// UnitOfWork serialises transactions so that a row read inside one behaves
// as if it were locked until Commit or Rollback.
type UnitOfWork struct {
	store *Store
}

func (u *UnitOfWork) Begin(ctx context.Context) (ports.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	u.store.txMu.Lock()
	return &Transaction{store: u.store, journal: &journal{}}, nil
}

type Transaction struct {
	store   *Store
	journal *journal
	done    bool
}

func (t *Transaction) PostRepository() post_repository.Repository {
	return &PostRepository{store: t.store, journal: t.journal}
}

func (t *Transaction) TargetRepository() target_repository.Repository {
	return &TargetRepository{store: t.store, journal: t.journal}
}

func (t *Transaction) ApprovalRepository() approval_repository.Repository {
	return &ApprovalRepository{store: t.store, journal: t.journal}
}

func (t *Transaction) MediaRepository() media_repository.Repository {
	return &MediaRepository{store: t.store, journal: t.journal}
}

func (t *Transaction) FailureRepository() failure_repository.Repository {
	return &FailureRepository{store: t.store, journal: t.journal}
}

func (t *Transaction) Commit(ctx context.Context) error {
	if t.done {
		return ErrTxClosed
	}
	t.done = true
	t.journal.undo = nil
	t.store.txMu.Unlock()
	return nil
}

func (t *Transaction) Rollback(ctx context.Context) error {
	if t.done {
		return ErrTxClosed
	}
	t.done = true
	t.store.mu.Lock()
	for i := len(t.journal.undo) - 1; i >= 0; i-- {
		t.journal.undo[i]()
	}
	t.store.mu.Unlock()
	t.journal.undo = nil
	t.store.txMu.Unlock()
	return nil
}
