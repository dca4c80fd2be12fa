package controller

import (
	"fmt"
	"net/http"

	"bangrak/database"
	"bangrak/importer"

	"github.com/gin-gonic/gin"
)

// ImportFromFile triggers a bulk import from a server-side CSV or Excel
// file. The whole batch either lands or the call fails; individually broken
// rows are skipped and logged by the importer.
func ImportFromFile(c *gin.Context) {
	var req struct {
		FilePath string `json:"filePath" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "filePath is required",
		})
		return
	}

	count, err := importer.New(database.DB).ImportFile(req.FilePath)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   fmt.Sprintf("Import failed: %v", err),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Data imported successfully",
		"count":   count,
	})
}
