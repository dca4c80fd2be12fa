package controller

import (
	"net/http"
	"strings"

	"bangrak/auth"

	"github.com/gin-gonic/gin"
)

func AdminLogin(c *gin.Context) {
	var req struct {
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Password is required",
		})
		return
	}

	token, ok := auth.Gate.Login(req.Password)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"token":   nil,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   token,
	})
}

// AdminVerify lets the frontend check whether its stored token still belongs
// to the active session. A malformed header is a 401; a well-formed header
// always earns a 200 carrying the verdict.
func AdminVerify(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		c.JSON(http.StatusUnauthorized, gin.H{"valid": false})
		return
	}

	token := strings.TrimPrefix(authHeader, "Bearer ")
	c.JSON(http.StatusOK, gin.H{"valid": auth.Gate.Verify(token)})
}
