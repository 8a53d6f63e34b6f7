package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jaredsteven/portfolio-backend/internal/common"
	"github.com/jaredsteven/portfolio-backend/internal/config"
	"github.com/jaredsteven/portfolio-backend/internal/middleware"
	"github.com/jaredsteven/portfolio-backend/internal/service"
)

// sessionMaxAge is the cookie lifetime in seconds (24 hours, matching
// the token expiry)
const sessionMaxAge = 24 * 60 * 60

// AuthHandler handles authentication requests
type AuthHandler struct {
	service service.AuthService
	config  *config.Config
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(service service.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		service: service,
		config:  cfg,
	}
}

// LoginRequest login request
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login handles POST /api/auth/login
// The session token travels only in an httpOnly cookie, never in the body.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 400, "Invalid request body", err)
		return
	}

	token, err := h.service.Login(req.Username, req.Password)
	if errors.Is(err, common.ErrInvalidCredentials) {
		// Generic rejection; wrong user and wrong password look the same
		common.ErrorResponse(c, 401, "Invalid credentials", err)
		return
	}
	if errors.Is(err, common.ErrMissingServerConfig) {
		common.ErrorResponse(c, 500, "Server configuration error", err)
		return
	}
	if err != nil {
		common.ErrorResponse(c, 500, "Login failed", err)
		return
	}

	h.setSessionCookie(c, token)

	c.JSON(http.StatusOK, common.APIResponse{
		Data: gin.H{
			"success": true,
			"message": "Logged in successfully",
		},
	})
}

// Verify handles GET /api/auth/verify
// Always answers 200; an invalid or absent session resolves to
// authenticated=false rather than an error.
func (h *AuthHandler) Verify(c *gin.Context) {
	if !middleware.IsAuthenticated(c) {
		c.JSON(http.StatusOK, common.APIResponse{
			Data: gin.H{"authenticated": false},
		})
		return
	}

	c.JSON(http.StatusOK, common.APIResponse{
		Data: gin.H{
			"authenticated": true,
			"username":      middleware.GetUsername(c),
		},
	})
}

// Logout handles POST /api/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	h.clearSessionCookie(c)

	c.JSON(http.StatusOK, common.APIResponse{
		Data: gin.H{
			"message": "Logged out successfully",
		},
	})
}

// setSessionCookie stores the session token as an httpOnly cookie
// scoped to the whole site. Secure is dropped in development so the
// cookie works over plain http on localhost.
func (h *AuthHandler) setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		middleware.SessionCookie,
		token,
		sessionMaxAge,
		"/",
		"",
		!h.config.IsDevelopment(), // secure
		true,                      // httpOnly
	)
}

// clearSessionCookie removes the session cookie
func (h *AuthHandler) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		middleware.SessionCookie,
		"",
		-1,
		"/",
		"",
		!h.config.IsDevelopment(),
		true,
	)
}
