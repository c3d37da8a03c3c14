package lock

import (
	"context"
	"time"
)

// Locker hands out short-lived exclusive leases shared by every service
// instance. TryLock returns ErrLeaseNotAcquired when another holder owns key.
//
//go:generate mockery --name Locker --dir . --output ../../../../../mocks/lock --outpkg mocks --with-expecter --filename Locker.go
type Locker interface {
	TryLock(ctx context.Context, key string, ttl time.Duration) (Lease, error)
}

//go:generate mockery --name Lease --dir . --output ../../../../../mocks/lock --outpkg mocks --with-expecter --filename Lease.go
type Lease interface {
	Release(ctx context.Context) error
}
