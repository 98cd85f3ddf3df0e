package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"pgms-be-svc/pkg/logger"
)

// LoggerMiddleware logs each request with its latency and status
func LoggerMiddleware(appLogger *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		appLogger.WithFields(map[string]interface{}{
			"method":     c.Request.Method,
			"path":       path,
			"status":     c.Writer.Status(),
			"latency_ms": time.Since(start).Milliseconds(),
			"client_ip":  c.ClientIP(),
		}).Info("Request handled")
	}
}
