package platform

import (
	"context"

	model "pinstack-publish-service/internal/domain/models"
)

type PublishResult struct {
	Success         bool    `json:"success"`
	ExternalPostID  *string `json:"external_post_id,omitempty"`
	ExternalPostURL *string `json:"external_post_url,omitempty"`
	ErrorCode       string  `json:"error_code,omitempty"`
	ErrorMessage    string  `json:"error_message,omitempty"`
}

//go:generate mockery --name Adapter --dir . --output ../../../../../mocks/platform --outpkg mocks --with-expecter --filename Adapter.go
type Adapter interface {
	Publish(ctx context.Context, target *model.PostTarget, post *model.Post, media []*model.PostMedia) (*PublishResult, error)
}

// AdapterFactory returns ErrUnknownPlatform for codes it does not serve.
//
//go:generate mockery --name AdapterFactory --dir . --output ../../../../../mocks/platform --outpkg mocks --with-expecter --filename AdapterFactory.go
type AdapterFactory interface {
	Create(platform string) (Adapter, error)
}
