package handler

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	model "pinstack-publish-service/internal/domain/models"
	post_service "pinstack-publish-service/internal/domain/ports/input/post"
	ports "pinstack-publish-service/internal/domain/ports/output"
	"pinstack-publish-service/internal/infrastructure/inbound/http/middleware"
	"pinstack-publish-service/internal/infrastructure/inbound/http/response"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const maxListLimit = 100

type PostHandler struct {
	service  post_service.Service
	validate *validator.Validate
	log      ports.Logger
}

func NewPostHandler(service post_service.Service, validate *validator.Validate, log ports.Logger) *PostHandler {
	return &PostHandler{service: service, validate: validate, log: log}
}

type createPostRequest struct {
	Body       *string                 `json:"body" validate:"omitempty,max=10000"`
	Variations map[string]string       `json:"variations" validate:"omitempty,dive,keys,min=1,max=32,endkeys,max=10000"`
	MediaItems []*model.PostMediaInput `json:"media_items" validate:"omitempty,max=10,dive,required"`
	Targets    []*model.TargetInput    `json:"targets" validate:"omitempty,max=50,dive,required"`
}

type updatePostRequest struct {
	Body       *string                 `json:"body" validate:"omitempty,max=10000"`
	Variations map[string]string       `json:"variations" validate:"omitempty,dive,keys,min=1,max=32,endkeys,max=10000"`
	MediaItems []*model.PostMediaInput `json:"media_items" validate:"omitempty,max=10,dive,required"`
}

type setTargetsRequest struct {
	Targets []*model.TargetInput `json:"targets" validate:"max=50,dive,required"`
}

type scheduleRequest struct {
	At       time.Time `json:"at" validate:"required"`
	Timezone string    `json:"timezone" validate:"required,max=64"`
}

type listPostsQuery struct {
	Status *model.PostStatus `validate:"omitempty,oneof=draft submitted approved rejected scheduled publishing published failed cancelled"`
	Limit  int               `validate:"gte=0,lte=100"`
	Offset int               `validate:"gte=0"`
}

func (h *PostHandler) Create(c *gin.Context) {
	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.log.Debug("CreatePost validation failed", slog.String("error", err.Error()))
		response.BadRequest(c, "invalid request")
		return
	}

	actor := middleware.ActorFrom(c)
	created, err := h.service.CreatePost(c.Request.Context(), actor, &model.CreatePostDTO{
		WorkspaceID: actor.WorkspaceID,
		AuthorID:    actor.UserID,
		Body:        req.Body,
		Variations:  req.Variations,
		MediaItems:  req.MediaItems,
		Targets:     req.Targets,
	})
	if err != nil {
		response.Error(c, h.log, err)
		return
	}
	response.Created(c, created)
}

func (h *PostHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		response.BadRequest(c, "invalid post id")
		return
	}
	post, err := h.service.GetPost(c.Request.Context(), middleware.ActorFrom(c), id)
	if err != nil {
		response.Error(c, h.log, err)
		return
	}
	response.Success(c, post)
}

func (h *PostHandler) List(c *gin.Context) {
	q := listPostsQuery{}
	if s := c.Query("status"); s != "" {
		status := model.PostStatus(s)
		q.Status = &status
	}
	var err error
	if v := c.Query("limit"); v != "" {
		if q.Limit, err = strconv.Atoi(v); err != nil {
			response.BadRequest(c, "invalid limit")
			return
		}
	}
	if v := c.Query("offset"); v != "" {
		if q.Offset, err = strconv.Atoi(v); err != nil {
			response.BadRequest(c, "invalid offset")
			return
		}
	}
	if err := h.validate.Struct(q); err != nil {
		response.BadRequest(c, "invalid query")
		return
	}
	if q.Limit == 0 {
		q.Limit = maxListLimit
	}

	posts, total, err := h.service.ListPosts(c.Request.Context(), middleware.ActorFrom(c), &model.PostFilters{
		Status: q.Status,
		Limit:  &q.Limit,
		Offset: &q.Offset,
	})
	if err != nil {
		response.Error(c, h.log, err)
		return
	}
	response.Success(c, gin.H{"posts": posts, "total": total, "limit": q.Limit, "offset": q.Offset})
}

func (h *PostHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		response.BadRequest(c, "invalid post id")
		return
	}
	var req updatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.log.Debug("UpdatePost validation failed", slog.Int64("post_id", id), slog.String("error", err.Error()))
		response.BadRequest(c, "invalid request")
		return
	}

	updated, err := h.service.UpdatePost(c.Request.Context(), middleware.ActorFrom(c), id, &model.UpdatePostDTO{
		Body:       req.Body,
		Variations: req.Variations,
		MediaItems: req.MediaItems,
	})
	if err != nil {
		response.Error(c, h.log, err)
		return
	}
	response.Success(c, updated)
}

func (h *PostHandler) SetTargets(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		response.BadRequest(c, "invalid post id")
		return
	}
	var req setTargetsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		response.BadRequest(c, "invalid request")
		return
	}
	updated, err := h.service.SetTargets(c.Request.Context(), middleware.ActorFrom(c), id, req.Targets)
	if err != nil {
		response.Error(c, h.log, err)
		return
	}
	response.Success(c, updated)
}

func (h *PostHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		response.BadRequest(c, "invalid post id")
		return
	}
	if err := h.service.DeletePost(c.Request.Context(), middleware.ActorFrom(c), id); err != nil {
		response.Error(c, h.log, err)
		return
	}
	response.NoContent(c)
}

func (h *PostHandler) Submit(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		response.BadRequest(c, "invalid post id")
		return
	}
	post, err := h.service.Submit(c.Request.Context(), middleware.ActorFrom(c), id)
	if err != nil {
		response.Error(c, h.log, err)
		return
	}
	response.Success(c, post)
}

func (h *PostHandler) Schedule(c *gin.Context) {
	h.schedule(c, h.service.Schedule)
}

func (h *PostHandler) Reschedule(c *gin.Context) {
	h.schedule(c, h.service.Reschedule)
}

func (h *PostHandler) schedule(c *gin.Context, call func(ctx context.Context, actor model.Actor, id int64, dto model.ScheduleDTO) (*model.Post, error)) {
	id, ok := parseID(c, "id")
	if !ok {
		response.BadRequest(c, "invalid post id")
		return
	}
	var req scheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		response.BadRequest(c, "invalid request")
		return
	}
	post, err := call(c.Request.Context(), middleware.ActorFrom(c), id, model.ScheduleDTO{At: req.At, Timezone: req.Timezone})
	if err != nil {
		response.Error(c, h.log, err)
		return
	}
	response.Success(c, post)
}

func (h *PostHandler) Cancel(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		response.BadRequest(c, "invalid post id")
		return
	}
	post, err := h.service.Cancel(c.Request.Context(), middleware.ActorFrom(c), id)
	if err != nil {
		response.Error(c, h.log, err)
		return
	}
	response.Success(c, post)
}
