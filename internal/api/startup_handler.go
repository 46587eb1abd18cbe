package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/venturelink/venturelink-api/internal/models"
	"github.com/venturelink/venturelink-api/internal/services"
)

// StartupHandler handles startup profile operations
type StartupHandler struct {
	startupService services.StartupService
}

// NewStartupHandler creates a new startup handler
func NewStartupHandler(startupService services.StartupService) *StartupHandler {
	return &StartupHandler{startupService: startupService}
}

// GetStartup returns a single startup profile
func (h *StartupHandler) GetStartup(c *gin.Context) {
	startup, err := h.startupService.GetByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"startup": startup})
}

// GetMyStartups returns the startups owned by the authenticated founder
func (h *StartupHandler) GetMyStartups(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	startups, err := h.startupService.GetByFounder(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"startups": startups, "count": len(startups)})
}

// CreateStartup creates a startup profile for the authenticated founder
func (h *StartupHandler) CreateStartup(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var form models.StartupForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	startup, err := h.startupService.Create(userID, &form)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"startup": startup})
}

// UpdateStartup updates a startup profile owned by the authenticated founder
func (h *StartupHandler) UpdateStartup(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var form models.StartupForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	startup, err := h.startupService.Update(c.Param("id"), userID, &form)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"startup": startup})
}

// GetActivity returns the interaction log for a startup
func (h *StartupHandler) GetActivity(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit parameter"})
			return
		}
		limit = parsed
	}

	interactions, err := h.startupService.GetActivity(c.Param("id"), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"interactions": interactions, "count": len(interactions)})
}

// GetFundraising returns the fundraising history for a startup
func (h *StartupHandler) GetFundraising(c *gin.Context) {
	entries, err := h.startupService.GetFundraising(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries, "count": len(entries)})
}
