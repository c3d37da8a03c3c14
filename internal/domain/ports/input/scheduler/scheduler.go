package scheduler_service

import (
	"context"
)

type BatchReport struct {
	Due        int     `json:"due"`
	Dispatched []int64 `json:"dispatched"`
	Failed     []int64 `json:"failed"`
	Skipped    bool    `json:"skipped"`
	// Recovered counts targets failed by the stale-attempt sweep.
	Recovered int `json:"recovered"`
}

//go:generate mockery --name DueScheduler --dir . --output ../../../../../mocks/service --outpkg mocks --with-expecter --filename DueScheduler.go
type DueScheduler interface {
	RunDueBatch(ctx context.Context) (*BatchReport, error)
}
