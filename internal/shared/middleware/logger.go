package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"library-api/pkg/logger"
)

// Logger records one structured line per request.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		fields := map[string]interface{}{
			"status":     c.Writer.Status(),
			"method":     c.Request.Method,
			"path":       path,
			"ip":         c.ClientIP(),
			"latency_ms": time.Since(start).Milliseconds(),
			"request_id": c.GetString(RequestIDKey),
		}
		if query != "" {
			fields["query"] = query
		}

		logger.Info("request", fields)
	}
}
