package middleware

import (
	"log/slog"
	"strconv"
	"time"

	ports "pinstack-publish-service/internal/domain/ports/output"

	"github.com/gin-gonic/gin"
)

func Metrics(metrics ports.MetricsProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())
		metrics.IncrementHTTPRequests(c.Request.Method, path, status)
		metrics.RecordHTTPRequestDuration(c.Request.Method, path, status, time.Since(start))
	}
}

func Logging(log ports.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Debug("HTTP request",
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("duration", time.Since(start)))
	}
}
