// Package lifecycle holds the post and target state machines. Every function
// takes the current value and returns the updated value; persisting it is the
// caller's job.
package lifecycle

import (
	"strings"
	"time"
	_ "time/tzdata"

	"pinstack-publish-service/internal/domain/custom_errors"
	model "pinstack-publish-service/internal/domain/models"

	"github.com/jackc/pgx/v5/pgtype"
)

var transitions = map[model.PostStatus][]model.PostStatus{
	model.PostStatusDraft:      {model.PostStatusSubmitted, model.PostStatusCancelled},
	model.PostStatusSubmitted:  {model.PostStatusApproved, model.PostStatusRejected, model.PostStatusCancelled},
	model.PostStatusApproved:   {model.PostStatusRejected, model.PostStatusScheduled, model.PostStatusPublishing, model.PostStatusCancelled},
	model.PostStatusRejected:   {model.PostStatusDraft, model.PostStatusCancelled},
	model.PostStatusScheduled:  {model.PostStatusScheduled, model.PostStatusPublishing, model.PostStatusCancelled},
	model.PostStatusPublishing: {model.PostStatusPublished, model.PostStatusFailed, model.PostStatusCancelled},
	model.PostStatusFailed:     {model.PostStatusPublishing, model.PostStatusCancelled},
}

// CanTransition reports whether the table allows from -> to. Guards are not
// evaluated.
func CanTransition(from, to model.PostStatus) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

func refuse(from, to model.PostStatus, cause error) error {
	return custom_errors.NewTransitionError(string(from), string(to), cause)
}

func ts(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

// Content describes what a post carries beyond its own fields.
type Content struct {
	Targets int
	Media   int
}

func hasContent(post model.Post, c Content) bool {
	return post.HasBody() || c.Media > 0
}

func Submit(post model.Post, c Content, now time.Time) (model.Post, error) {
	if !CanTransition(post.Status, model.PostStatusSubmitted) {
		return post, refuse(post.Status, model.PostStatusSubmitted, nil)
	}
	if !hasContent(post, c) {
		return post, refuse(post.Status, model.PostStatusSubmitted, custom_errors.ErrContentMissing)
	}
	if c.Targets < 1 {
		return post, refuse(post.Status, model.PostStatusSubmitted, custom_errors.ErrNoTargets)
	}
	post.Status = model.PostStatusSubmitted
	post.SubmittedAt = ts(now)
	post.UpdatedAt = ts(now)
	return post, nil
}

// Decide applies an approval ledger decision. A SUBMITTED post accepts
// either decision; an APPROVED post that has not been scheduled yet can still
// be rejected, which supersedes the approval.
func Decide(post model.Post, decision model.Decision, reason string, now time.Time) (model.Post, error) {
	switch {
	case post.Status == model.PostStatusSubmitted:
	case post.Status == model.PostStatusApproved && decision == model.DecisionRejected:
	default:
		return post, custom_errors.ErrInvalidStateForApproval
	}
	switch decision {
	case model.DecisionApproved:
		post.Status = model.PostStatusApproved
		post.RejectionReason = nil
	case model.DecisionRejected:
		reason = strings.TrimSpace(reason)
		if reason == "" {
			return post, custom_errors.ErrReasonRequired
		}
		post.Status = model.PostStatusRejected
		post.RejectionReason = &reason
	default:
		return post, custom_errors.ErrInvalidInput
	}
	post.UpdatedAt = ts(now)
	return post, nil
}

// Edit guards a content change. A rejected post drops back to DRAFT and loses
// its rejection reason.
func Edit(post model.Post, now time.Time) (model.Post, error) {
	if !post.Status.IsEditable() {
		return post, custom_errors.ErrPostNotEditable
	}
	if post.Status == model.PostStatusRejected {
		post.Status = model.PostStatusDraft
		post.RejectionReason = nil
	}
	post.UpdatedAt = ts(now)
	return post, nil
}

func Delete(post model.Post, now time.Time) (model.Post, error) {
	if !post.Status.IsDeletable() {
		return post, custom_errors.ErrPostNotDeletable
	}
	post.DeletedAt = ts(now)
	post.UpdatedAt = ts(now)
	return post, nil
}

func checkFuture(at, now time.Time, tz string) (*time.Location, error) {
	loc, err := time.LoadLocation(tz)
	if err != nil || tz == "" {
		return nil, custom_errors.ErrInvalidTimezone
	}
	if !at.After(now) {
		return nil, custom_errors.ErrTimeNotInFuture
	}
	return loc, nil
}

func Schedule(post model.Post, c Content, at time.Time, tz string, now time.Time) (model.Post, error) {
	if post.Status != model.PostStatusApproved {
		return post, refuse(post.Status, model.PostStatusScheduled, nil)
	}
	loc, err := checkFuture(at, now, tz)
	if err != nil {
		return post, refuse(post.Status, model.PostStatusScheduled, err)
	}
	if !hasContent(post, c) {
		return post, refuse(post.Status, model.PostStatusScheduled, custom_errors.ErrContentMissing)
	}
	if c.Targets < 1 {
		return post, refuse(post.Status, model.PostStatusScheduled, custom_errors.ErrNoTargets)
	}
	post.Status = model.PostStatusScheduled
	post.ScheduledAt = ts(at.In(loc))
	post.Timezone = &tz
	post.UpdatedAt = ts(now)
	return post, nil
}

// Reschedule keeps SCHEDULED and only moves the time.
func Reschedule(post model.Post, at time.Time, tz string, now time.Time) (model.Post, error) {
	if post.Status != model.PostStatusScheduled {
		return post, refuse(post.Status, model.PostStatusScheduled, nil)
	}
	loc, err := checkFuture(at, now, tz)
	if err != nil {
		return post, refuse(post.Status, model.PostStatusScheduled, err)
	}
	post.ScheduledAt = ts(at.In(loc))
	post.Timezone = &tz
	post.UpdatedAt = ts(now)
	return post, nil
}

// StartPublishing is the entry point into target orchestration.
func StartPublishing(post model.Post, c Content, now time.Time) (model.Post, error) {
	if !CanTransition(post.Status, model.PostStatusPublishing) {
		return post, refuse(post.Status, model.PostStatusPublishing, nil)
	}
	if c.Targets < 1 {
		return post, refuse(post.Status, model.PostStatusPublishing, custom_errors.ErrNoTargets)
	}
	post.Status = model.PostStatusPublishing
	post.PublishedAt = pgtype.Timestamptz{}
	post.UpdatedAt = ts(now)
	return post, nil
}

// ResumePublishing re-enters PUBLISHING for a retry. Besides FAILED it accepts
// a PUBLISHED post that still has failed targets (partial success).
func ResumePublishing(post model.Post, c Content, failedTargets int, now time.Time) (model.Post, error) {
	if post.Status != model.PostStatusFailed && post.Status != model.PostStatusPublished {
		return post, refuse(post.Status, model.PostStatusPublishing, nil)
	}
	if failedTargets < 1 {
		return post, refuse(post.Status, model.PostStatusPublishing, custom_errors.ErrNoFailedTargets)
	}
	if c.Targets < 1 {
		return post, refuse(post.Status, model.PostStatusPublishing, custom_errors.ErrNoTargets)
	}
	post.Status = model.PostStatusPublishing
	post.PublishedAt = pgtype.Timestamptz{}
	post.UpdatedAt = ts(now)
	return post, nil
}

// Complete settles a PUBLISHING post. Only the aggregation step calls it.
func Complete(post model.Post, to model.PostStatus, now time.Time) (model.Post, error) {
	if post.Status != model.PostStatusPublishing ||
		(to != model.PostStatusPublished && to != model.PostStatusFailed) {
		return post, refuse(post.Status, to, nil)
	}
	post.Status = to
	if to == model.PostStatusPublished {
		post.PublishedAt = ts(now)
	}
	post.UpdatedAt = ts(now)
	return post, nil
}

func Cancel(post model.Post, now time.Time) (model.Post, error) {
	if !CanTransition(post.Status, model.PostStatusCancelled) {
		return post, refuse(post.Status, model.PostStatusCancelled, nil)
	}
	post.Status = model.PostStatusCancelled
	post.UpdatedAt = ts(now)
	return post, nil
}
