package http

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

// AccessLog creates middleware that logs each request through slog
func AccessLog(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		logger.Debug("http request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start))
	}
}
