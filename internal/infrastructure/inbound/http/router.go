package http_server

import (
	model "pinstack-publish-service/internal/domain/models"
	approval_service "pinstack-publish-service/internal/domain/ports/input/approval"
	post_service "pinstack-publish-service/internal/domain/ports/input/post"
	publish_service "pinstack-publish-service/internal/domain/ports/input/publish"
	scheduler_service "pinstack-publish-service/internal/domain/ports/input/scheduler"
	ports "pinstack-publish-service/internal/domain/ports/output"
	"pinstack-publish-service/internal/infrastructure/inbound/http/handler"
	"pinstack-publish-service/internal/infrastructure/inbound/http/middleware"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type RouterDeps struct {
	Posts        post_service.Service
	Ledger       approval_service.Ledger
	Orchestrator publish_service.Orchestrator
	Scheduler    scheduler_service.DueScheduler
	Auth         gin.HandlerFunc
	Log          ports.Logger
	Metrics      ports.MetricsProvider
}

func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.Metrics(deps.Metrics), middleware.Logging(deps.Log))

	validate := validator.New()
	posts := handler.NewPostHandler(deps.Posts, validate, deps.Log)
	approvals := handler.NewApprovalHandler(deps.Ledger, validate, deps.Log)
	publish := handler.NewPublishHandler(deps.Orchestrator, deps.Log)
	scheduler := handler.NewSchedulerHandler(deps.Scheduler, deps.Log)

	router.GET("/healthz", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	api := router.Group("/api/v1", deps.Auth)

	p := api.Group("/posts")
	p.POST("", posts.Create)
	p.GET("", posts.List)
	p.GET("/:id", posts.Get)
	p.PATCH("/:id", posts.Update)
	p.DELETE("/:id", posts.Delete)
	p.PUT("/:id/targets", posts.SetTargets)
	p.POST("/:id/submit", posts.Submit)
	p.POST("/:id/schedule", posts.Schedule)
	p.POST("/:id/reschedule", posts.Reschedule)
	p.POST("/:id/cancel", posts.Cancel)

	p.POST("/:id/approve", approvals.Approve)
	p.POST("/:id/reject", approvals.Reject)
	p.GET("/:id/approvals", approvals.History)

	p.POST("/:id/publish", publish.PublishNow)
	p.POST("/:id/retry", publish.RetryFailed)
	p.POST("/:id/refresh-status", publish.RefreshStatus)
	p.GET("/:id/failures", publish.Failures)

	ops := api.Group("", middleware.RequireRole(model.RoleOwner, model.RoleAdmin))
	ops.POST("/targets/:id/process", publish.ProcessTarget)
	ops.PUT("/targets/:id/metrics", publish.UpdateTargetMetrics)
	ops.POST("/scheduler/run", scheduler.RunDueBatch)

	return router
}
