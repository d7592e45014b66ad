package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Recovery converts a panic into a 500 response instead of crashing the
// server, grounded on the teacher's middleware.RecoveryMiddleware. It
// writes the envelope inline rather than importing package api, which
// itself wires this middleware in its router setup.
func Recovery(logger *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error("panic recovered",
			zap.Any("panic", recovered),
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method),
			zap.Stack("stacktrace"),
		)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "internal server error",
			"error": gin.H{
				"code":    "INTERNAL_SERVER_ERROR",
				"message": "internal server error",
			},
			"timestamp":  time.Now(),
			"request_id": c.GetString("request_id"),
		})
		c.Abort()
	})
}
