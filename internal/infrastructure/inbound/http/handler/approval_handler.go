package handler

import (
	"log/slog"

	model "pinstack-publish-service/internal/domain/models"
	approval_service "pinstack-publish-service/internal/domain/ports/input/approval"
	ports "pinstack-publish-service/internal/domain/ports/output"
	"pinstack-publish-service/internal/infrastructure/inbound/http/middleware"
	"pinstack-publish-service/internal/infrastructure/inbound/http/response"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type ApprovalHandler struct {
	ledger   approval_service.Ledger
	validate *validator.Validate
	log      ports.Logger
}

func NewApprovalHandler(ledger approval_service.Ledger, validate *validator.Validate, log ports.Logger) *ApprovalHandler {
	return &ApprovalHandler{ledger: ledger, validate: validate, log: log}
}

type approveRequest struct {
	Comment *string `json:"comment" validate:"omitempty,max=2000"`
}

type rejectRequest struct {
	Reason  string  `json:"reason" validate:"required,max=2000"`
	Comment *string `json:"comment" validate:"omitempty,max=2000"`
}

func (h *ApprovalHandler) Approve(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		response.BadRequest(c, "invalid post id")
		return
	}
	var req approveRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.BadRequest(c, "invalid request body")
			return
		}
	}
	if err := h.validate.Struct(req); err != nil {
		response.BadRequest(c, "invalid request")
		return
	}
	decision, err := h.ledger.Approve(c.Request.Context(), middleware.ActorFrom(c), id, req.Comment)
	if err != nil {
		response.Error(c, h.log, err)
		return
	}
	response.Success(c, decision)
}

func (h *ApprovalHandler) Reject(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		response.BadRequest(c, "invalid post id")
		return
	}
	var req rejectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.log.Debug("Reject validation failed", slog.Int64("post_id", id), slog.String("error", err.Error()))
		response.BadRequest(c, "reason is required")
		return
	}
	decision, err := h.ledger.Reject(c.Request.Context(), middleware.ActorFrom(c), id, model.RejectDTO{Reason: req.Reason, Comment: req.Comment})
	if err != nil {
		response.Error(c, h.log, err)
		return
	}
	response.Success(c, decision)
}

func (h *ApprovalHandler) History(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		response.BadRequest(c, "invalid post id")
		return
	}
	history, err := h.ledger.History(c.Request.Context(), middleware.ActorFrom(c), id)
	if err != nil {
		response.Error(c, h.log, err)
		return
	}
	response.Success(c, history)
}
