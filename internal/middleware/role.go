package middleware

import (
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"
)

// RequireRole gates a route to the given back-of-house roles. It runs
// after AuthMiddleware, which stashes the verified role on the context;
// a request that never went through token validation has no role and is
// rejected.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("userRole")
		if role == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "no role on request"})
			return
		}

		if !slices.Contains(roles, role) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient role for this route"})
			return
		}

		c.Next()
	}
}
