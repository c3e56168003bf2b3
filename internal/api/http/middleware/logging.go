package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vitalog/vitalog-server/internal/logger"
)

// Logging logs method, path, status and duration for each request.
func Logging(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start)
		requestLog := log.With(
			"method", c.Request.Method,
			"path", c.FullPath())

		requestLog.Info("HTTP request completed",
			"status", c.Writer.Status(),
			"duration_ms", duration.Milliseconds())

		for _, ginErr := range c.Errors {
			requestLog.Error("HTTP request failed", "error", ginErr.Error())
		}
	}
}
