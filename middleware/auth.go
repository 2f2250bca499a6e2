package middleware

import (
	"net/http"
	"strings"

	"dahabiyat/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthMiddleware extracts the caller's identity from a Bearer token and
// stores it on the request context. Token issuance lives in the account
// service; this layer only validates and reads claims.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		userID, role, err := utils.ExtractIdentityFromToken(tokenString)
		if err != nil || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		c.Set("userID", userID)
		c.Set("role", role)
		c.Next()
	}
}

// CallerID returns the authenticated user id set by JWTAuthMiddleware.
func CallerID(c *gin.Context) string {
	return c.GetString("userID")
}
