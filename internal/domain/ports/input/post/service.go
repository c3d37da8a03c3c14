package post_service

import (
	"context"

	model "pinstack-publish-service/internal/domain/models"
)

//go:generate mockery --name Service --dir . --output ../../../../../mocks/service --outpkg mocks --with-expecter --filename PostService.go
type Service interface {
	CreatePost(ctx context.Context, actor model.Actor, post *model.CreatePostDTO) (*model.PostDetailed, error)
	GetPost(ctx context.Context, actor model.Actor, id int64) (*model.PostDetailed, error)
	ListPosts(ctx context.Context, actor model.Actor, filters *model.PostFilters) ([]*model.Post, int, error)
	UpdatePost(ctx context.Context, actor model.Actor, id int64, update *model.UpdatePostDTO) (*model.PostDetailed, error)
	SetTargets(ctx context.Context, actor model.Actor, id int64, targets []*model.TargetInput) (*model.PostDetailed, error)
	DeletePost(ctx context.Context, actor model.Actor, id int64) error

	Submit(ctx context.Context, actor model.Actor, id int64) (*model.Post, error)
	Schedule(ctx context.Context, actor model.Actor, id int64, schedule model.ScheduleDTO) (*model.Post, error)
	Reschedule(ctx context.Context, actor model.Actor, id int64, schedule model.ScheduleDTO) (*model.Post, error)
	Cancel(ctx context.Context, actor model.Actor, id int64) (*model.Post, error)
}
