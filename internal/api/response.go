// Package api exposes escp2renderd's HTTP surface: submitting render/
// print jobs and checking their status, following the teacher's
// internal/handler + internal/routes layering with gin.
package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Response is the standard API envelope, grounded directly on the
// teacher's utils.APIResponse shape.
type Response struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message"`
	Data      interface{} `json:"data,omitempty"`
	Error     *APIError   `json:"error,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	RequestID string      `json:"request_id,omitempty"`
}

// APIError carries a machine-readable code alongside the message.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// Success writes a successful envelope.
func Success(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Response{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: time.Now(),
		RequestID: requestID(c),
	})
}

// Failure writes an error envelope.
func Failure(c *gin.Context, statusCode int, message string, err error) {
	apiErr := &APIError{Code: errorCode(statusCode), Message: message}
	if err != nil {
		apiErr.Details = err.Error()
	}
	c.JSON(statusCode, Response{
		Success:   false,
		Message:   message,
		Error:     apiErr,
		Timestamp: time.Now(),
		RequestID: requestID(c),
	})
}

func requestID(c *gin.Context) string {
	if v, ok := c.Get("request_id"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func errorCode(statusCode int) string {
	switch statusCode {
	case http.StatusBadRequest:
		return "BAD_REQUEST"
	case http.StatusNotFound:
		return "NOT_FOUND"
	case http.StatusUnprocessableEntity:
		return "UNPROCESSABLE_ENTITY"
	case http.StatusInternalServerError:
		return "INTERNAL_SERVER_ERROR"
	case http.StatusServiceUnavailable:
		return "SERVICE_UNAVAILABLE"
	default:
		return "UNKNOWN_ERROR"
	}
}
