package response

import (
	"errors"
	"log/slog"
	"net/http"

	"pinstack-publish-service/internal/domain/custom_errors"
	ports "pinstack-publish-service/internal/domain/ports/output"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Response{Code: 0, Message: "ok", Data: data})
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, Response{Code: 0, Message: "created", Data: data})
}

func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func Fail(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, Response{Code: status, Message: message})
}

func BadRequest(c *gin.Context, message string) {
	Fail(c, http.StatusBadRequest, message)
}

// Error maps a service error onto an HTTP status. Guard violations carry
// their own message so the caller sees why a transition was refused.
func Error(c *gin.Context, log ports.Logger, err error) {
	switch {
	case errors.Is(err, custom_errors.ErrInvalidInput):
		Fail(c, http.StatusBadRequest, "invalid input")
	case errors.Is(err, custom_errors.ErrUnauthenticated):
		Fail(c, http.StatusUnauthorized, "unauthenticated")
	case errors.Is(err, custom_errors.ErrForbidden):
		Fail(c, http.StatusForbidden, "forbidden")
	case errors.Is(err, custom_errors.ErrPostNotFound):
		Fail(c, http.StatusNotFound, "post not found")
	case errors.Is(err, custom_errors.ErrTargetNotFound):
		Fail(c, http.StatusNotFound, "target not found")
	case errors.Is(err, custom_errors.ErrAccountNotFound):
		Fail(c, http.StatusNotFound, "account not found")
	case errors.Is(err, custom_errors.ErrTimeNotInFuture),
		errors.Is(err, custom_errors.ErrInvalidTimezone),
		errors.Is(err, custom_errors.ErrContentMissing),
		errors.Is(err, custom_errors.ErrNoTargets),
		errors.Is(err, custom_errors.ErrReasonRequired),
		errors.Is(err, custom_errors.ErrDuplicateTarget):
		log.Debug("Request failed a precondition", slog.String("path", c.FullPath()), slog.String("error", err.Error()))
		Fail(c, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, custom_errors.ErrGuardViolation):
		log.Debug("Request refused by state machine", slog.String("path", c.FullPath()), slog.String("error", err.Error()))
		Fail(c, http.StatusConflict, err.Error())
	case errors.Is(err, custom_errors.ErrExternalServiceError):
		log.Error("Collaborator failure", slog.String("path", c.FullPath()), slog.String("error", err.Error()))
		Fail(c, http.StatusBadGateway, "external service error")
	default:
		log.Error("Request failed", slog.String("path", c.FullPath()), slog.String("error", err.Error()))
		Fail(c, http.StatusInternalServerError, "internal error")
	}
}
