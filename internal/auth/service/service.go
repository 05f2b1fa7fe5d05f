// Package service implements credential verification and bearer token
// issuance. The credential set is a single attorney account sourced from
// configuration; verify-credential → issue-token and verify-token →
// extract-subject are independent of how that set is backed.
package service

import (
	"errors"
	"time"

	"alma_leads_backend/platform/config"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenInvalid       = errors.New("invalid or expired token")
)

const accessTokenType = "access"

// Service issues and verifies access tokens for the single attorney account.
type Service struct {
	cfg config.AuthServiceConfig
}

// New creates the auth service.
func New(cfg config.AuthServiceConfig) *Service {
	return &Service{cfg: cfg}
}

// Login verifies the submitted credentials against the configured account
// and returns a signed access token.
func (s *Service) Login(username, password string) (string, error) {
	if username != s.cfg.GetAttorneyUsername() {
		// Burn a comparison anyway so a wrong username costs the same
		// as a wrong password.
		_ = bcrypt.CompareHashAndPassword([]byte(s.cfg.GetAttorneyPasswordHash()), []byte(password))
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.GetAttorneyPasswordHash()), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.issueAccessToken(username)
}

// VerifyToken checks signature, type, and expiry and returns the subject.
func (s *Service) VerifyToken(rawToken string) (string, error) {
	parsed, err := jwt.Parse(rawToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(s.cfg.GetJWTSecret()), nil
	}, jwt.WithExpirationRequired())
	if err != nil || !parsed.Valid {
		return "", ErrTokenInvalid
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrTokenInvalid
	}
	if tokenType, _ := claims["type"].(string); tokenType != accessTokenType {
		return "", ErrTokenInvalid
	}

	subject, _ := claims["sub"].(string)
	if subject == "" {
		return "", ErrTokenInvalid
	}

	return subject, nil
}

func (s *Service) issueAccessToken(subject string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  subject,
		"type": accessTokenType,
		"iat":  now.Unix(),
		"exp":  now.Add(s.cfg.GetAccessTokenTTL()).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.GetJWTSecret()))
}
