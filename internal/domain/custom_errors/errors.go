package custom_errors

import (
	"errors"
	"fmt"
)

// Infrastructure and lookup errors.
var (
	ErrDatabaseQuery        = errors.New("database query failed")
	ErrCacheMiss            = errors.New("cache miss")
	ErrExternalServiceError = errors.New("external service error")
	ErrInvalidInput         = errors.New("invalid input")
	ErrForbidden            = errors.New("forbidden")
	ErrUnauthenticated      = errors.New("unauthenticated")

	ErrPostNotFound      = errors.New("post not found")
	ErrTargetNotFound    = errors.New("target not found")
	ErrAccountNotFound   = errors.New("account not found")
	ErrUnknownPlatform   = errors.New("unknown platform")
	ErrMediaAttachFailed = errors.New("failed to attach media")
	ErrMediaQueryFailed  = errors.New("failed to query media")
	ErrLeaseNotAcquired  = errors.New("lease not acquired")
)

// ErrGuardViolation is the root of every illegal transition or unmet
// precondition. Guard violations are returned to the caller and never retried.
var ErrGuardViolation = errors.New("guard violation")

var (
	ErrPostCannotTransition    = guard("post cannot transition")
	ErrInvalidStateForApproval = guard("post is not awaiting approval")
	ErrContentMissing          = guard("post has no body or media")
	ErrNoTargets               = guard("post has no targets")
	ErrTimeNotInFuture         = guard("time must be future")
	ErrInvalidTimezone         = guard("invalid timezone")
	ErrPostNotEditable         = guard("post is not editable")
	ErrPostNotDeletable        = guard("post is not deletable")
	ErrNoFailedTargets         = guard("post has no failed targets")
	ErrTargetNotPending        = guard("target is not pending")
	ErrReasonRequired          = guard("rejection reason is required")
	ErrDuplicateTarget         = guard("target account already attached")
	ErrPostNotPublishing       = guard("post is not publishing")
	ErrPostNotDue              = guard("post is not due yet")
)

func guard(msg string) error {
	return fmt.Errorf("%w: %s", ErrGuardViolation, msg)
}

// TransitionError describes a refused post status transition. It matches
// ErrPostCannotTransition and, when set, its Cause.
type TransitionError struct {
	From  string
	To    string
	Cause error
}

func NewTransitionError(from, to string, cause error) *TransitionError {
	return &TransitionError{From: from, To: to, Cause: cause}
}

func (e *TransitionError) Error() string {
	if e.Cause != nil && !errors.Is(e.Cause, ErrPostCannotTransition) {
		return fmt.Sprintf("post cannot transition from %s to %s: %s", e.From, e.To, e.Cause.Error())
	}
	return fmt.Sprintf("post cannot transition from %s to %s", e.From, e.To)
}

func (e *TransitionError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrPostCannotTransition}
	}
	return []error{ErrPostCannotTransition, e.Cause}
}
