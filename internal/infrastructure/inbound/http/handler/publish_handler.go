package handler

import (
	"encoding/json"
	"io"

	publish_service "pinstack-publish-service/internal/domain/ports/input/publish"
	ports "pinstack-publish-service/internal/domain/ports/output"
	"pinstack-publish-service/internal/infrastructure/inbound/http/middleware"
	"pinstack-publish-service/internal/infrastructure/inbound/http/response"

	"github.com/gin-gonic/gin"
)

const maxMetricsBody = 64 << 10

type PublishHandler struct {
	orchestrator publish_service.Orchestrator
	log          ports.Logger
}

func NewPublishHandler(orchestrator publish_service.Orchestrator, log ports.Logger) *PublishHandler {
	return &PublishHandler{orchestrator: orchestrator, log: log}
}

func (h *PublishHandler) PublishNow(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		response.BadRequest(c, "invalid post id")
		return
	}
	post, err := h.orchestrator.PublishNow(c.Request.Context(), middleware.ActorFrom(c), id)
	if err != nil {
		response.Error(c, h.log, err)
		return
	}
	response.Success(c, post)
}

func (h *PublishHandler) RetryFailed(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		response.BadRequest(c, "invalid post id")
		return
	}
	post, err := h.orchestrator.RetryFailed(c.Request.Context(), middleware.ActorFrom(c), id)
	if err != nil {
		response.Error(c, h.log, err)
		return
	}
	response.Success(c, post)
}

func (h *PublishHandler) RefreshStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		response.BadRequest(c, "invalid post id")
		return
	}
	post, err := h.orchestrator.UpdatePostStatusFromTargets(c.Request.Context(), id)
	if err != nil {
		response.Error(c, h.log, err)
		return
	}
	response.Success(c, post)
}

func (h *PublishHandler) Failures(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		response.BadRequest(c, "invalid post id")
		return
	}
	failures, err := h.orchestrator.ListFailures(c.Request.Context(), middleware.ActorFrom(c), id)
	if err != nil {
		response.Error(c, h.log, err)
		return
	}
	response.Success(c, failures)
}

func (h *PublishHandler) ProcessTarget(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		response.BadRequest(c, "invalid target id")
		return
	}
	target, err := h.orchestrator.ProcessTarget(c.Request.Context(), id)
	if err != nil {
		response.Error(c, h.log, err)
		return
	}
	response.Success(c, target)
}

func (h *PublishHandler) UpdateTargetMetrics(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		response.BadRequest(c, "invalid target id")
		return
	}
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxMetricsBody))
	if err != nil || !json.Valid(body) {
		response.BadRequest(c, "metrics must be a JSON document")
		return
	}
	if err := h.orchestrator.UpdateTargetMetrics(c.Request.Context(), id, json.RawMessage(body)); err != nil {
		response.Error(c, h.log, err)
		return
	}
	response.NoContent(c)
}
