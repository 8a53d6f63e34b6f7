package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/jaredsteven/portfolio-backend/internal/common"
	"github.com/jaredsteven/portfolio-backend/internal/service"
)

// SessionCookie is the cookie carrying the admin session token
const SessionCookie = "auth_token"

// CookieAuth extracts the session cookie and resolves it against the
// auth service. Verification fails open: an absent or invalid token
// leaves the request anonymous and the request continues.
func CookieAuth(auth service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err == nil && token != "" {
			if username, ok := auth.Verify(token); ok {
				c.Set("username", username)
				c.Set("authenticated", true)
			}
		}
		c.Next()
	}
}

// RequireAdmin rejects unauthenticated requests before any handler
// logic runs. Admin-only routes mount this after CookieAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !IsAuthenticated(c) {
			common.ErrorResponse(c, 401, "Authentication required", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}

// IsAuthenticated checks whether the request carries a valid session
func IsAuthenticated(c *gin.Context) bool {
	authenticated, exists := c.Get("authenticated")
	if !exists {
		return false
	}
	if auth, ok := authenticated.(bool); ok {
		return auth
	}
	return false
}

// GetUsername extracts the admin identity from context
func GetUsername(c *gin.Context) string {
	username, exists := c.Get("username")
	if !exists {
		return ""
	}
	if str, ok := username.(string); ok {
		return str
	}
	return ""
}
