package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/venturelink/venturelink-api/internal/models"
	"github.com/venturelink/venturelink-api/internal/services"
)

// ApplicationHandler handles the incubator application funnel
type ApplicationHandler struct {
	applicationService services.ApplicationService
}

// NewApplicationHandler creates a new application handler
func NewApplicationHandler(applicationService services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{applicationService: applicationService}
}

// CreateApplication submits a startup's application to an incubator
func (h *ApplicationHandler) CreateApplication(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var form models.ApplicationForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	application, err := h.applicationService.Create(userID, &form)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"application": application})
}

// ApplyAction advances an application through the review funnel
func (h *ApplicationHandler) ApplyAction(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var form models.ApplicationActionForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	application, err := h.applicationService.ApplyAction(c.Param("id"), userID, &form)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"application": application})
}

// GetApplications lists applications received by the authenticated incubator
func (h *ApplicationHandler) GetApplications(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	applications, err := h.applicationService.GetByIncubator(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"applications": applications, "count": len(applications)})
}

// GetFunnelAnalytics returns funnel counts and conversion rates for the
// authenticated incubator
func (h *ApplicationHandler) GetFunnelAnalytics(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	analytics, err := h.applicationService.FunnelAnalytics(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, analytics)
}
