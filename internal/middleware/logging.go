package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/venturelink/venturelink-api/internal/logger"
)

// RequestLoggingMiddleware logs each request with method, path, status and latency
func RequestLoggingMiddleware(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		log.Info("request",
			"method", c.Request.Method,
			"path", path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
			"client_ip", c.ClientIP(),
		)
	}
}
