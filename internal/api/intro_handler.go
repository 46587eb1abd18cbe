package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/venturelink/venturelink-api/internal/models"
	"github.com/venturelink/venturelink-api/internal/services"
)

// IntroHandler handles the intro-request lifecycle
type IntroHandler struct {
	introService services.IntroService
}

// NewIntroHandler creates a new intro handler
func NewIntroHandler(introService services.IntroService) *IntroHandler {
	return &IntroHandler{introService: introService}
}

// CreateIntroRequest submits an intro request from the authenticated investor
func (h *IntroHandler) CreateIntroRequest(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var form models.IntroRequestForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	req, err := h.introService.Create(userID, &form)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"intro_request": req})
}

// RespondToIntroRequest applies the startup's response to an intro request
func (h *IntroHandler) RespondToIntroRequest(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var form models.IntroResponseForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	req, err := h.introService.Respond(c.Param("id"), userID, &form)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"intro_request": req})
}

// GetMyIntroRequests lists the authenticated investor's intro requests
func (h *IntroHandler) GetMyIntroRequests(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	requests, err := h.introService.GetByInvestor(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"intro_requests": requests, "count": len(requests)})
}
