// Package aggregation derives a post's outcome from its targets.
//
// Partial success (some targets published, some failed) counts as PUBLISHED;
// callers report it with a warning.
package aggregation

import (
	model "pinstack-publish-service/internal/domain/models"
)

type Verdict int

const (
	// VerdictPending means at least one target has not settled; nothing to do.
	VerdictPending Verdict = iota
	VerdictPublished
	VerdictFailed
	VerdictPartial
)

func (v Verdict) String() string {
	switch v {
	case VerdictPublished:
		return "published"
	case VerdictFailed:
		return "failed"
	case VerdictPartial:
		return "partial"
	default:
		return "pending"
	}
}

// PostStatus is the post status a verdict settles on, false for pending.
func (v Verdict) PostStatus() (model.PostStatus, bool) {
	switch v {
	case VerdictPublished, VerdictPartial:
		return model.PostStatusPublished, true
	case VerdictFailed:
		return model.PostStatusFailed, true
	default:
		return "", false
	}
}

type TargetFailure struct {
	TargetID  int64  `json:"target_id"`
	AccountID int64  `json:"account_id"`
	Platform  string `json:"platform"`
	Code      string `json:"error_code"`
	Message   string `json:"error_message"`
}

type Result struct {
	Verdict   Verdict
	Published int
	Failed    int
	Unsettled int
	Failures  []TargetFailure
}

// Evaluate applies the rule in order: any unsettled target -> pending, no
// failures -> published, no successes -> failed, otherwise partial. An empty
// target set is reported as pending.
func Evaluate(targets []*model.PostTarget) Result {
	var res Result
	for _, t := range targets {
		switch t.Status {
		case model.TargetStatusPublished:
			res.Published++
		case model.TargetStatusFailed:
			res.Failed++
			f := TargetFailure{TargetID: t.ID, AccountID: t.AccountID, Platform: t.Platform}
			if t.ErrorCode != nil {
				f.Code = *t.ErrorCode
			}
			if t.ErrorMessage != nil {
				f.Message = *t.ErrorMessage
			}
			res.Failures = append(res.Failures, f)
		default:
			res.Unsettled++
		}
	}

	switch {
	case res.Unsettled > 0 || len(targets) == 0:
		res.Verdict = VerdictPending
	case res.Failed == 0:
		res.Verdict = VerdictPublished
	case res.Published == 0:
		res.Verdict = VerdictFailed
	default:
		res.Verdict = VerdictPartial
	}
	return res
}
