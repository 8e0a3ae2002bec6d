package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/litoflex/quote-service/config"
)

var (
	// ErrInvalidCredentials is returned when username or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrInvalidToken is returned when a token is invalid or expired.
	ErrInvalidToken = errors.New("invalid or expired token")
	// ErrAuthNotConfigured is returned when no admin password hash is set.
	ErrAuthNotConfigured = errors.New("authentication is not configured")
)

// Claims carries the JWT payload for an authenticated operator.
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// AuthService provides authentication operations for the single-operator
// deployment: one admin account configured through the environment.
type AuthService interface {
	Login(username, password string) (token string, expiresIn int64, err error)
	ValidateToken(tokenString string) (*Claims, error)
}

// AuthServiceImpl implements AuthService against the configured admin
// credentials.
type AuthServiceImpl struct {
	cfg config.AuthConfig
}

// NewAuthService creates a new authentication service.
func NewAuthService(cfg config.AuthConfig) *AuthServiceImpl {
	return &AuthServiceImpl{cfg: cfg}
}

// Login verifies the credentials and issues a signed access token.
func (s *AuthServiceImpl) Login(username, password string) (string, int64, error) {
	if s.cfg.AdminPassHash == "" {
		return "", 0, ErrAuthNotConfigured
	}
	if username != s.cfg.AdminUser {
		return "", 0, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.AdminPassHash), []byte(password)); err != nil {
		return "", 0, ErrInvalidCredentials
	}

	ttl := s.cfg.AccessTokenTTL
	now := time.Now()
	claims := Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			Subject:   username,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecretKey))
	if err != nil {
		return "", 0, err
	}
	return signed, int64(ttl.Seconds()), nil
}

// ValidateToken parses and verifies an access token.
func (s *AuthServiceImpl) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(s.cfg.JWTSecretKey), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
