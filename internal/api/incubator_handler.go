package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/venturelink/venturelink-api/internal/services"
)

// IncubatorHandler handles incubator profile operations
type IncubatorHandler struct {
	incubatorService services.IncubatorService
}

// NewIncubatorHandler creates a new incubator handler
func NewIncubatorHandler(incubatorService services.IncubatorService) *IncubatorHandler {
	return &IncubatorHandler{incubatorService: incubatorService}
}

// GetIncubator returns a single incubator profile
func (h *IncubatorHandler) GetIncubator(c *gin.Context) {
	incubator, err := h.incubatorService.GetByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"incubator": incubator})
}

// GetMyProfile returns the authenticated user's incubator profile
func (h *IncubatorHandler) GetMyProfile(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	incubator, err := h.incubatorService.GetByUser(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"incubator": incubator})
}
