package ports

import (
	"context"

	approval_repository "pinstack-publish-service/internal/domain/ports/output/approval"
	failure_repository "pinstack-publish-service/internal/domain/ports/output/failure"
	media_repository "pinstack-publish-service/internal/domain/ports/output/media"
	post_repository "pinstack-publish-service/internal/domain/ports/output/post"
	target_repository "pinstack-publish-service/internal/domain/ports/output/target"
)

//go:generate mockery --name UnitOfWork --dir . --output ../../../../mocks/postgres --outpkg mocks --with-expecter --filename UnitOfWork.go
type UnitOfWork interface {
	Begin(ctx context.Context) (Transaction, error)
}

//go:generate mockery --name Transaction --dir . --output ../../../../mocks/postgres --outpkg mocks --with-expecter --filename Transaction.go
type Transaction interface {
	PostRepository() post_repository.Repository
	TargetRepository() target_repository.Repository
	ApprovalRepository() approval_repository.Repository
	MediaRepository() media_repository.Repository
	FailureRepository() failure_repository.Repository
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}
