package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/venturelink/venturelink-api/internal/models"
	"github.com/venturelink/venturelink-api/internal/services"
)

// CommitmentHandler handles the soft-commitment lifecycle
type CommitmentHandler struct {
	commitmentService services.CommitmentService
}

// NewCommitmentHandler creates a new commitment handler
func NewCommitmentHandler(commitmentService services.CommitmentService) *CommitmentHandler {
	return &CommitmentHandler{commitmentService: commitmentService}
}

// CreateCommitment records a soft commitment from the authenticated investor
func (h *CommitmentHandler) CreateCommitment(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var form models.CommitmentForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	commitment, err := h.commitmentService.Create(userID, &form)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"commitment": commitment})
}

// RespondToCommitment applies the startup's response to a commitment
func (h *CommitmentHandler) RespondToCommitment(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var form models.CommitmentResponseForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	commitment, err := h.commitmentService.Respond(c.Param("id"), userID, &form)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"commitment": commitment})
}

// WithdrawCommitment withdraws an active commitment before it is answered
func (h *CommitmentHandler) WithdrawCommitment(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	commitment, err := h.commitmentService.Withdraw(c.Param("id"), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"commitment": commitment})
}

// GetMyCommitments lists the authenticated investor's commitments
func (h *CommitmentHandler) GetMyCommitments(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	commitments, err := h.commitmentService.GetByInvestor(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"commitments": commitments, "count": len(commitments)})
}
