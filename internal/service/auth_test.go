package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/litoflex/quote-service/config"
)

func testAuthConfig(t *testing.T) config.AuthConfig {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	require.NoError(t, err)
	return config.AuthConfig{
		JWTSecretKey:   "test-secret-key",
		AccessTokenTTL: time.Hour,
		AdminUser:      "admin",
		AdminPassHash:  string(hash),
	}
}

func TestAuthService_Login(t *testing.T) {
	svc := NewAuthService(testAuthConfig(t))

	t.Run("valid credentials", func(t *testing.T) {
		token, expiresIn, err := svc.Login("admin", "correct-horse")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, int64(3600), expiresIn)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := svc.Login("admin", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, _, err := svc.Login("intruder", "correct-horse")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("not configured", func(t *testing.T) {
		unconfigured := NewAuthService(config.AuthConfig{AdminUser: "admin"})
		_, _, err := unconfigured.Login("admin", "correct-horse")
		assert.ErrorIs(t, err, ErrAuthNotConfigured)
	})
}

func TestAuthService_ValidateToken(t *testing.T) {
	cfg := testAuthConfig(t)
	svc := NewAuthService(cfg)

	t.Run("round trip", func(t *testing.T) {
		token, _, err := svc.Login("admin", "correct-horse")
		require.NoError(t, err)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, "admin", claims.Username)
		assert.Equal(t, "admin", claims.Subject)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := svc.ValidateToken("not.a.token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong signing key", func(t *testing.T) {
		otherCfg := cfg
		otherCfg.JWTSecretKey = "a-different-secret"
		other := NewAuthService(otherCfg)

		token, _, err := other.Login("admin", "correct-horse")
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired token", func(t *testing.T) {
		shortCfg := cfg
		shortCfg.AccessTokenTTL = -time.Minute
		short := NewAuthService(shortCfg)

		token, _, err := short.Login("admin", "correct-horse")
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
