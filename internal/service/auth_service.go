package service

import (
	"crypto/subtle"
	"errors"
	"strings"

	"fbverify/config"
	"fbverify/internal/auth"
	"fbverify/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCreds    = errors.New("invalid email or password")
	ErrAdminNotEnabled = errors.New("admin login is not configured")
)

// AuthService checks the configured administrator credential.
type AuthService struct {
	cfg *config.Config
}

func NewAuthService(cfg *config.Config) *AuthService {
	return &AuthService{cfg: cfg}
}

// Login returns an access token when email and password match the admin credential.
func (s *AuthService) Login(email, password string) (string, error) {
	admin := s.cfg.Admin
	if admin.PasswordHash == "" {
		return "", ErrAdminNotEnabled
	}
	emailOK := subtle.ConstantTimeCompare(
		[]byte(strings.ToLower(strings.TrimSpace(email))),
		[]byte(strings.ToLower(admin.Email)),
	) == 1
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil || !emailOK {
		return "", ErrInvalidCreds
	}
	return auth.GenerateAccessToken(&s.cfg.JWT, admin.Email, domain.RoleAdmin)
}
