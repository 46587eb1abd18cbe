package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/venturelink/venturelink-api/internal/auth"
	apperrors "github.com/venturelink/venturelink-api/internal/errors"
)

// respondError writes an error response with the status derived from the
// application error code. Unknown errors map to 500.
func respondError(c *gin.Context, err error) {
	if appErr := apperrors.AsAppError(err); appErr != nil {
		c.JSON(appErr.HTTPStatus(), gin.H{
			"error": appErr.Message,
			"code":  appErr.Code,
		})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{
		"error": "internal server error",
		"code":  apperrors.ErrCodeInternalError,
	})
}

// currentUserID returns the authenticated user's ID from the request context
func currentUserID(c *gin.Context) (string, bool) {
	raw, exists := c.Get(auth.UserIDKey)
	if !exists {
		return "", false
	}
	id, ok := raw.(uuid.UUID)
	if !ok {
		return "", false
	}
	return id.String(), true
}

// requireUserID aborts with 401 when no authenticated user is present
func requireUserID(c *gin.Context) (string, bool) {
	id, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return "", false
	}
	return id, true
}

// setSecureCookie sets a secure HTTP-only cookie
func setSecureCookie(c *gin.Context, name, value string, maxAge int) {
	secure := c.Request.Header.Get("X-Forwarded-Proto") == "https" || c.Request.TLS != nil
	c.SetCookie(name, value, maxAge, "/", "", secure, true)
}

// clearCookie clears a cookie by setting it to empty with past expiration
func clearCookie(c *gin.Context, name string) {
	secure := c.Request.Header.Get("X-Forwarded-Proto") == "https" || c.Request.TLS != nil
	c.SetCookie(name, "", -1, "/", "", secure, true)
}
