package middleware

import (
	"time"

	"moodlens/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-ID"

// RequestLog tags each request with an id (kept from the client when sent)
// and logs one structured line when it completes.
func RequestLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header(RequestIDHeader, id)

		start := time.Now()
		c.Next()

		args := []any{
			"request_id", id,
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
		}
		switch {
		case c.Writer.Status() >= 500:
			logger.Error("http.request", args...)
		case c.Writer.Status() >= 400:
			logger.Warn("http.request", args...)
		default:
			logger.Info("http.request", args...)
		}
	}
}
