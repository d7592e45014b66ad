package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Logging logs one structured entry per request, grounded on the
// teacher's middleware.LoggingMiddleware.
func Logging(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		duration := time.Since(start)

		level := logger.Info
		if c.Writer.Status() >= 500 {
			level = logger.Error
		} else if c.Writer.Status() >= 400 {
			level = logger.Warn
		}

		level("http request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", duration),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}
