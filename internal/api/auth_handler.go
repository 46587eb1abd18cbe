package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/venturelink/venturelink-api/internal/models"
	"github.com/venturelink/venturelink-api/internal/services"
)

// authTokenCookieMaxAge matches the access token lifetime
const authTokenCookieMaxAge = 24 * 60 * 60

// AuthHandler handles authentication operations
type AuthHandler struct {
	authService services.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login authenticates a user and sets the auth cookie
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	response, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	setSecureCookie(c, "auth_token", response.Token, authTokenCookieMaxAge)
	c.JSON(http.StatusOK, response)
}

// Register creates a new user account
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	user, err := h.authService.Register(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User created successfully",
		"user":    user,
	})
}

// Activate claims an imported account with an activation token
func (h *AuthHandler) Activate(c *gin.Context) {
	var req models.ActivateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	user, err := h.authService.Activate(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Account activated successfully",
		"user":    user,
	})
}

// RefreshToken generates a new access token from a refresh token
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	type refreshRequest struct {
		RefreshToken string `json:"refresh_token" binding:"required"`
	}

	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	response, err := h.authService.RefreshToken(req.RefreshToken)
	if err != nil {
		respondError(c, err)
		return
	}

	setSecureCookie(c, "auth_token", response.Token, authTokenCookieMaxAge)
	c.JSON(http.StatusOK, response)
}

// Logout clears the auth cookie
func (h *AuthHandler) Logout(c *gin.Context) {
	clearCookie(c, "auth_token")
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

// Me returns the authenticated user's account
func (h *AuthHandler) Me(c *gin.Context) {
	tokenString, err := c.Cookie("auth_token")
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	user, err := h.authService.ValidateToken(tokenString)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}
