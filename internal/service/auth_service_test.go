package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jaredsteven/portfolio-backend/internal/common"
	"github.com/jaredsteven/portfolio-backend/internal/config"
	"github.com/jaredsteven/portfolio-backend/pkg/jwt"
)

func newTestJWTManager() *jwt.Manager {
	return jwt.NewManager("test-secret-key-for-testing-only-32b!", 24*time.Hour)
}

func testAuthConfig() *config.Config {
	return &config.Config{
		AdminUsername: "admin",
		AdminPassword: "hunter2",
	}
}

func TestLogin_Success(t *testing.T) {
	svc := NewAuthService(testAuthConfig(), newTestJWTManager())

	token, err := svc.Login("admin", "hunter2")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	username, ok := svc.Verify(token)
	assert.True(t, ok)
	assert.Equal(t, "admin", username)
}

func TestLogin_TrimsWhitespace(t *testing.T) {
	svc := NewAuthService(testAuthConfig(), newTestJWTManager())

	token, err := svc.Login("  admin  ", " hunter2 ")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	svc := NewAuthService(testAuthConfig(), newTestJWTManager())

	_, err := svc.Login("admin", "wrong")
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)

	// Unknown user gets the same rejection as a wrong password
	_, err = svc.Login("nobody", "hunter2")
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)
}

func TestLogin_MissingServerConfig(t *testing.T) {
	svc := NewAuthService(&config.Config{}, newTestJWTManager())

	_, err := svc.Login("admin", "hunter2")
	assert.ErrorIs(t, err, common.ErrMissingServerConfig)

	// Password alone configured is still a server fault
	svc = NewAuthService(&config.Config{AdminPassword: "hunter2"}, newTestJWTManager())
	_, err = svc.Login("admin", "hunter2")
	assert.ErrorIs(t, err, common.ErrMissingServerConfig)
}

func TestVerify_FailsOpenToAnonymous(t *testing.T) {
	svc := NewAuthService(testAuthConfig(), newTestJWTManager())

	_, ok := svc.Verify("")
	assert.False(t, ok)

	_, ok = svc.Verify("garbage")
	assert.False(t, ok)
}

func TestVerify_ExpiredToken(t *testing.T) {
	// Negative lifetime yields a token that is already expired
	expired := jwt.NewManager("test-secret-key-for-testing-only-32b!", -time.Hour)
	token, err := expired.GenerateToken("admin")
	assert.NoError(t, err)

	svc := NewAuthService(testAuthConfig(), newTestJWTManager())
	_, ok := svc.Verify(token)
	assert.False(t, ok)
}

func TestVerify_DifferentSecret(t *testing.T) {
	other := jwt.NewManager("some-other-secret", 24*time.Hour)
	token, err := other.GenerateToken("admin")
	assert.NoError(t, err)

	svc := NewAuthService(testAuthConfig(), newTestJWTManager())
	_, ok := svc.Verify(token)
	assert.False(t, ok)
}
