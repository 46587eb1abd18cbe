package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/venturelink/venturelink-api/internal/services"
)

// ImportHandler handles bulk CSV startup import
type ImportHandler struct {
	importService services.ImportService
}

// NewImportHandler creates a new import handler
func NewImportHandler(importService services.ImportService) *ImportHandler {
	return &ImportHandler{importService: importService}
}

// UploadCSV ingests a CSV of startup rows uploaded as multipart form data
func (h *ImportHandler) UploadCSV(c *gin.Context) {
	file, header, err := c.Request.FormFile("csv_file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No CSV file provided"})
		return
	}
	defer file.Close()

	if !strings.HasSuffix(strings.ToLower(header.Filename), ".csv") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File must be a CSV"})
		return
	}

	summary, err := h.importService.ImportCSV(file)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Import completed",
		"filename": header.Filename,
		"summary":  summary,
	})
}
