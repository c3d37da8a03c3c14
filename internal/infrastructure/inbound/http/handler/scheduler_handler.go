package handler

import (
	scheduler_service "pinstack-publish-service/internal/domain/ports/input/scheduler"
	ports "pinstack-publish-service/internal/domain/ports/output"
	"pinstack-publish-service/internal/infrastructure/inbound/http/response"

	"github.com/gin-gonic/gin"
)

type SchedulerHandler struct {
	scheduler scheduler_service.DueScheduler
	log       ports.Logger
}

func NewSchedulerHandler(scheduler scheduler_service.DueScheduler, log ports.Logger) *SchedulerHandler {
	return &SchedulerHandler{scheduler: scheduler, log: log}
}

// RunDueBatch triggers one scheduler run outside the cron cadence.
func (h *SchedulerHandler) RunDueBatch(c *gin.Context) {
	report, err := h.scheduler.RunDueBatch(c.Request.Context())
	if err != nil {
		response.Error(c, h.log, err)
		return
	}
	response.Success(c, report)
}
