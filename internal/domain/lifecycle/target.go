package lifecycle

import (
	"time"

	"pinstack-publish-service/internal/domain/custom_errors"
	model "pinstack-publish-service/internal/domain/models"

	"github.com/jackc/pgx/v5/pgtype"
)

func BeginAttempt(t model.PostTarget, now time.Time) (model.PostTarget, error) {
	if t.Status != model.TargetStatusPending {
		return t, custom_errors.ErrTargetNotPending
	}
	t.Status = model.TargetStatusPublishing
	t.UpdatedAt = ts(now)
	return t, nil
}

// IsStale reports whether t is an attempt that started before cutoff and never
// settled.
func IsStale(t model.PostTarget, cutoff time.Time) bool {
	return t.Status == model.TargetStatusPublishing && t.UpdatedAt.Valid && t.UpdatedAt.Time.Before(cutoff)
}

func MarkPublished(t model.PostTarget, externalID, externalURL *string, now time.Time) model.PostTarget {
	t.Status = model.TargetStatusPublished
	t.ExternalPostID = externalID
	t.ExternalPostURL = externalURL
	t.ErrorCode = nil
	t.ErrorMessage = nil
	t.PublishedAt = ts(now)
	t.UpdatedAt = ts(now)
	return t
}

func MarkFailed(t model.PostTarget, code, message string, now time.Time) model.PostTarget {
	t.Status = model.TargetStatusFailed
	t.ErrorCode = &code
	t.ErrorMessage = &message
	t.UpdatedAt = ts(now)
	return t
}

// ResetForRetry returns a FAILED target to PENDING and counts the retry.
func ResetForRetry(t model.PostTarget, now time.Time) (model.PostTarget, bool) {
	if t.Status != model.TargetStatusFailed {
		return t, false
	}
	t.Status = model.TargetStatusPending
	t.RetryCount++
	t.ErrorCode = nil
	t.ErrorMessage = nil
	t.PublishedAt = pgtype.Timestamptz{}
	t.UpdatedAt = ts(now)
	return t, true
}

// Discard drops an in-flight attempt whose post was cancelled meanwhile.
func Discard(t model.PostTarget, now time.Time) model.PostTarget {
	t.Status = model.TargetStatusPending
	t.UpdatedAt = ts(now)
	return t
}
