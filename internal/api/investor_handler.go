package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/venturelink/venturelink-api/internal/models"
	"github.com/venturelink/venturelink-api/internal/services"
)

// InvestorHandler handles investor profile operations
type InvestorHandler struct {
	investorService services.InvestorService
}

// NewInvestorHandler creates a new investor handler
func NewInvestorHandler(investorService services.InvestorService) *InvestorHandler {
	return &InvestorHandler{investorService: investorService}
}

// GetInvestor returns a single investor profile
func (h *InvestorHandler) GetInvestor(c *gin.Context) {
	investor, err := h.investorService.GetByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"investor": investor})
}

// GetMyProfile returns the authenticated investor's profile
func (h *InvestorHandler) GetMyProfile(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	investor, err := h.investorService.GetByUser(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"investor": investor})
}

// CreateInvestor creates an investor profile for the authenticated user
func (h *InvestorHandler) CreateInvestor(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var form models.InvestorForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	investor, err := h.investorService.Create(userID, &form)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"investor": investor})
}

// UpdateInvestor updates the authenticated user's investor profile
func (h *InvestorHandler) UpdateInvestor(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var form models.InvestorForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	investor, err := h.investorService.Update(c.Param("id"), userID, &form)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"investor": investor})
}
