package postgres

import (
	"context"
	"errors"
	"fmt"

	ports "pinstack-publish-service/internal/domain/ports/output"
	approval_repository "pinstack-publish-service/internal/domain/ports/output/approval"
	failure_repository "pinstack-publish-service/internal/domain/ports/output/failure"
	media_repository "pinstack-publish-service/internal/domain/ports/output/media"
	post_repository "pinstack-publish-service/internal/domain/ports/output/post"
	target_repository "pinstack-publish-service/internal/domain/ports/output/target"
	approval_repository_postgres "pinstack-publish-service/internal/infrastructure/outbound/repository/approval/postgres"
	failure_repository_postgres "pinstack-publish-service/internal/infrastructure/outbound/repository/failure/postgres"
	media_repository_postgres "pinstack-publish-service/internal/infrastructure/outbound/repository/media/postgres"
	post_repository_postgres "pinstack-publish-service/internal/infrastructure/outbound/repository/post/postgres"
	target_repository_postgres "pinstack-publish-service/internal/infrastructure/outbound/repository/target/postgres"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Lifecycle changes lock the post row with SELECT ... FOR UPDATE, so read
// committed is enough to serialize competing writers on one post.
var txOptions = pgx.TxOptions{IsoLevel: pgx.ReadCommitted, AccessMode: pgx.ReadWrite}

type UnitOfWork struct {
	pool    *pgxpool.Pool
	log     ports.Logger
	metrics ports.MetricsProvider
}

func NewUnitOfWork(pool *pgxpool.Pool, log ports.Logger, metrics ports.MetricsProvider) *UnitOfWork {
	return &UnitOfWork{pool: pool, log: log, metrics: metrics}
}

func (u *UnitOfWork) Begin(ctx context.Context) (ports.Transaction, error) {
	tx, err := u.pool.BeginTx(ctx, txOptions)
	if err != nil {
		u.metrics.IncrementTransactions("begin_failed")
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	return &Transaction{tx: tx, log: u.log, metrics: u.metrics}, nil
}

// Transaction hands out repositories bound to one pgx.Tx. Each repository is
// built on first use and reused for the rest of the transaction.
type Transaction struct {
	tx      pgx.Tx
	log     ports.Logger
	metrics ports.MetricsProvider

	posts     *post_repository_postgres.PostRepository
	targets   *target_repository_postgres.TargetRepository
	approvals *approval_repository_postgres.ApprovalRepository
	media     *media_repository_postgres.MediaRepository
	failures  *failure_repository_postgres.FailureRepository
}

func (t *Transaction) Commit(ctx context.Context) error {
	if err := t.tx.Commit(ctx); err != nil {
		t.metrics.IncrementTransactions("commit_failed")
		return err
	}
	t.metrics.IncrementTransactions("committed")
	return nil
}

// Rollback after a commit is a no-op.
func (t *Transaction) Rollback(ctx context.Context) error {
	err := t.tx.Rollback(ctx)
	if errors.Is(err, pgx.ErrTxClosed) {
		return nil
	}
	if err != nil {
		return err
	}
	t.metrics.IncrementTransactions("rolled_back")
	return nil
}

func (t *Transaction) PostRepository() post_repository.Repository {
	if t.posts == nil {
		t.posts = post_repository_postgres.NewPostRepository(t.tx, t.log, t.metrics)
	}
	return t.posts
}

func (t *Transaction) TargetRepository() target_repository.Repository {
	if t.targets == nil {
		t.targets = target_repository_postgres.NewTargetRepository(t.tx, t.log, t.metrics)
	}
	return t.targets
}

func (t *Transaction) ApprovalRepository() approval_repository.Repository {
	if t.approvals == nil {
		t.approvals = approval_repository_postgres.NewApprovalRepository(t.tx, t.log, t.metrics)
	}
	return t.approvals
}

func (t *Transaction) MediaRepository() media_repository.Repository {
	if t.media == nil {
		t.media = media_repository_postgres.NewMediaRepository(t.tx, t.log, t.metrics)
	}
	return t.media
}

func (t *Transaction) FailureRepository() failure_repository.Repository {
	if t.failures == nil {
		t.failures = failure_repository_postgres.NewFailureRepository(t.tx, t.log, t.metrics)
	}
	return t.failures
}
