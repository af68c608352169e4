package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"library-api/internal/shared/response"
	"library-api/pkg/logger"
)

// Recovery converts panics into a 500 response instead of killing the process.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered", fmt.Errorf("%v", r))
				response.ErrorResponse(c, http.StatusInternalServerError,
					"SYS_001", "Internal server error")
				c.Abort()
			}
		}()
		c.Next()
	}
}
