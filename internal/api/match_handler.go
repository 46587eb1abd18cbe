package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/venturelink/venturelink-api/internal/services"
)

// MatchHandler handles match scoring and ranking operations
type MatchHandler struct {
	matchService services.MatchService
}

// NewMatchHandler creates a new match handler
func NewMatchHandler(matchService services.MatchService) *MatchHandler {
	return &MatchHandler{matchService: matchService}
}

// GetMatches returns ranked startup matches for the authenticated investor
func (h *MatchHandler) GetMatches(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit parameter"})
			return
		}
		limit = parsed
	}

	matches, err := h.matchService.RankMatches(userID, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"matches": matches, "count": len(matches)})
}

// ScoreStartup returns the score breakdown for one investor-startup pair
func (h *MatchHandler) ScoreStartup(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	result, err := h.matchService.ScoreStartup(userID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
