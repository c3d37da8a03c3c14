package platform

import (
	"context"

	model "pinstack-publish-service/internal/domain/models"
	platform_port "pinstack-publish-service/internal/domain/ports/output/platform"

	"golang.org/x/time/rate"
)

// RateLimited holds every call to the wrapped adapter to the configured
// per-platform rate. Waiting honours the caller's context deadline.
type RateLimited struct {
	next    platform_port.Adapter
	limiter *rate.Limiter
}

func NewRateLimited(next platform_port.Adapter, perSecond float64, burst int) *RateLimited {
	if burst <= 0 {
		burst = 1
	}
	limit := rate.Inf
	if perSecond > 0 {
		limit = rate.Limit(perSecond)
	}
	return &RateLimited{next: next, limiter: rate.NewLimiter(limit, burst)}
}

func (r *RateLimited) Publish(ctx context.Context, target *model.PostTarget, post *model.Post, media []*model.PostMedia) (*platform_port.PublishResult, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	return r.next.Publish(ctx, target, post, media)
}
