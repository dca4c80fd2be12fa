package utils

import (
	"net/http"
	"strings"

	"bangrak/auth"

	"github.com/gin-gonic/gin"
)

// AdminMiddleware guards write endpoints behind the admin session token.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Authorization header required"})
			c.Abort()
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid token format"})
			c.Abort()
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if !auth.Gate.Verify(token) {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid or expired admin session"})
			c.Abort()
			return
		}

		c.Next()
	}
}
