package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Health answers uptime probes. Cache-disabling headers keep monitors from
// reading a stale response through an intermediary.
func Health(c *gin.Context) {
	c.Header("Cache-Control", "no-cache, no-store, must-revalidate")
	c.Header("Pragma", "no-cache")
	c.Header("X-Content-Type-Options", "nosniff")

	c.JSON(http.StatusOK, gin.H{
		"status":    "UP",
		"service":   "Bangrak Food Cultures API",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"version":   "1.0.0",
	})
}
