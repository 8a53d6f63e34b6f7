package service

import (
	"crypto/subtle"
	"strings"

	"github.com/jaredsteven/portfolio-backend/internal/common"
	"github.com/jaredsteven/portfolio-backend/internal/config"
	"github.com/jaredsteven/portfolio-backend/pkg/jwt"
)

// AuthService is the single-admin authentication gate
type AuthService interface {
	// Login checks the credential pair against the configured admin
	// secrets and returns a signed session token on success.
	Login(username, password string) (string, error)
	// Verify resolves a token to the embedded username. It fails open
	// to anonymous: any invalid, expired or absent token yields
	// ok=false, never an error.
	Verify(token string) (username string, ok bool)
}

type authService struct {
	cfg        *config.Config
	jwtManager *jwt.Manager
}

// NewAuthService creates a new AuthService
func NewAuthService(cfg *config.Config, jwtManager *jwt.Manager) AuthService {
	return &authService{cfg: cfg, jwtManager: jwtManager}
}

// Login authenticates the admin and issues a session token.
// Returns ErrMissingServerConfig when the admin secrets are absent from
// the environment; that is a server fault, not a credential fault.
func (s *authService) Login(username, password string) (string, error) {
	adminUser := strings.TrimSpace(s.cfg.AdminUsername)
	adminPass := strings.TrimSpace(s.cfg.AdminPassword)
	if adminUser == "" || adminPass == "" {
		return "", common.ErrMissingServerConfig
	}

	// Surrounding whitespace is not significant in either input
	userMatch := subtle.ConstantTimeCompare([]byte(strings.TrimSpace(username)), []byte(adminUser))
	passMatch := subtle.ConstantTimeCompare([]byte(strings.TrimSpace(password)), []byte(adminPass))
	if userMatch&passMatch != 1 {
		// Same rejection for wrong user and wrong password
		return "", common.ErrInvalidCredentials
	}

	return s.jwtManager.GenerateToken(strings.TrimSpace(username))
}

// Verify resolves a session token to the admin identity
func (s *authService) Verify(token string) (string, bool) {
	if token == "" {
		return "", false
	}
	claims, err := s.jwtManager.VerifyToken(token)
	if err != nil {
		return "", false
	}
	return claims.Username, true
}
