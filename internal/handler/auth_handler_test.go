package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/jaredsteven/portfolio-backend/internal/config"
	"github.com/jaredsteven/portfolio-backend/internal/middleware"
	"github.com/jaredsteven/portfolio-backend/internal/service"
	"github.com/jaredsteven/portfolio-backend/pkg/jwt"
)

func setupAuthRouter(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)

	manager := jwt.NewManager("test-secret", time.Hour)
	authService := service.NewAuthService(cfg, manager)
	h := NewAuthHandler(authService, cfg)

	r := gin.New()
	r.Use(middleware.CookieAuth(authService))
	r.POST("/api/auth/login", h.Login)
	r.GET("/api/auth/verify", h.Verify)
	r.POST("/api/auth/logout", h.Logout)
	return r
}

func adminConfig() *config.Config {
	return &config.Config{
		Env:           "local",
		AdminUsername: "admin",
		AdminPassword: "password123",
	}
}

func sessionCookie(t *testing.T, resp *http.Response) *http.Cookie {
	t.Helper()
	for _, c := range resp.Cookies() {
		if c.Name == middleware.SessionCookie {
			return c
		}
	}
	return nil
}

func TestLogin_SetsSessionCookie(t *testing.T) {
	r := setupAuthRouter(adminConfig())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/auth/login",
		strings.NewReader(`{"username":"admin","password":"password123"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	cookie := sessionCookie(t, w.Result())
	assert.NotNil(t, cookie)
	assert.NotEmpty(t, cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, "/", cookie.Path)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	// Dev environment keeps the cookie usable over plain http
	assert.False(t, cookie.Secure)

	// The token never appears in the response body
	assert.NotContains(t, w.Body.String(), cookie.Value)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	r := setupAuthRouter(adminConfig())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/auth/login",
		strings.NewReader(`{"username":"admin","password":"wrong"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid credentials")
	assert.Nil(t, sessionCookie(t, w.Result()))
}

func TestLogin_MissingServerConfig(t *testing.T) {
	cfg := adminConfig()
	cfg.AdminPassword = ""
	r := setupAuthRouter(cfg)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/auth/login",
		strings.NewReader(`{"username":"admin","password":"password123"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	// Misconfiguration is distinguishable from bad credentials
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Server configuration error")
}

func TestVerify_RoundTrip(t *testing.T) {
	r := setupAuthRouter(adminConfig())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/auth/login",
		strings.NewReader(`{"username":"admin","password":"password123"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	cookie := sessionCookie(t, w.Result())
	assert.NotNil(t, cookie)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/api/auth/verify", nil)
	req.AddCookie(cookie)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"authenticated":true`)
	assert.Contains(t, w.Body.String(), `"username":"admin"`)
}

func TestVerify_NoSession(t *testing.T) {
	r := setupAuthRouter(adminConfig())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/auth/verify", nil)
	r.ServeHTTP(w, req)

	// Anonymous resolves to authenticated=false, never an error
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"authenticated":false`)
}

func TestLogout_ClearsCookie(t *testing.T) {
	r := setupAuthRouter(adminConfig())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/auth/logout", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	cookie := sessionCookie(t, w.Result())
	assert.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Less(t, cookie.MaxAge, 0)
}
