package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"texarea-backend/pkg/token"
)

// AuthMiddleware validates the bearer token against the injected store
// and puts the resolved identity on the request context.
func AuthMiddleware(store token.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "missing authorization header",
			})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "invalid authorization header format",
			})
			c.Abort()
			return
		}

		identity, ok, err := store.Validate(c.Request.Context(), parts[1])
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error":   "failed to validate token",
			})
			c.Abort()
			return
		}
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set("username", identity.Username)
		c.Set("role", identity.Role)
		c.Set("authToken", parts[1])

		c.Next()
	}
}
