package middleware

import (
	"github.com/gin-gonic/gin"

	"library-api/internal/domains/auth"
	"library-api/internal/shared/response"
)

const IdentityKey = "identity"

// APIKey guards a route group with the shared-secret credential.
// The Authorization header carries the key verbatim, no scheme prefix.
func APIKey(checker auth.CredentialChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := checker.Check(c.GetHeader("Authorization"))
		if !result.OK {
			response.Unauthorized(c, "AUTH_001", "Invalid API Key")
			c.Abort()
			return
		}

		c.Set(IdentityKey, result.Identity)
		c.Next()
	}
}
