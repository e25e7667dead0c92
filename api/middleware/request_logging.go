package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"bloglist/logger"
)

const headerRequestID = "X-Request-Id"

// RequestLogging assigns every inbound request an id (reusing the caller's
// X-Request-Id when present) and logs method, path, status and duration once
// the response is written.
func RequestLogging() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.Request.Header.Get(headerRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Writer.Header().Set(headerRequestID, requestID)

		c.Next()

		logger.InfoWithFields("completed request", logger.Fields{
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status":      c.Writer.Status(),
			"duration_ms": time.Since(start).Milliseconds(),
			"request_id":  requestID,
		})
	}
}
