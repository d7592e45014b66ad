// Package middleware holds escp2renderd's gin middleware stack, adapted
// from the teacher's internal/middleware package.
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestID assigns a UUID to every request and stores it in the gin
// context under "request_id" for api.Response to pick up. The teacher's
// internal/routes.go wires a middleware.RequestIDMiddleware that is
// never defined anywhere in its own package — this supplies it.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}
