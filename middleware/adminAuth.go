package middleware

import (
	"net/http"

	"dahabiyat/models"

	"github.com/gin-gonic/gin"
)

// AdminOnlyMiddleware rejects callers without the admin role claim. It runs
// after JWTAuthMiddleware, which populates the role on the context.
func AdminOnlyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("role") != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin role required"})
			return
		}
		c.Next()
	}
}
