package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 100, cfg.Server.RateLimit)
	assert.Equal(t, time.Minute, cfg.Server.RateWindow)
	assert.Contains(t, cfg.Server.CORSOrigins, "http://localhost:3000")

	assert.Zero(t, cfg.Engine.MaxMachineWidthMM)
	assert.Zero(t, cfg.Engine.MachineSpeed)
	assert.Nil(t, cfg.Engine.DefaultScales)

	assert.False(t, cfg.Auth.Enabled)
	assert.Equal(t, "admin", cfg.Auth.AdminUser)
	assert.Equal(t, 15*time.Minute, cfg.Auth.AccessTokenTTL)

	assert.False(t, cfg.Database.Enabled)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Database.URI)
	assert.Equal(t, "quote_service", cfg.Database.DatabaseName)
	assert.Equal(t, 30*24*time.Hour, cfg.Database.LogsTTL)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("RATE_LIMIT", "25")
	t.Setenv("RATE_WINDOW", "30s")
	t.Setenv("CORS_ORIGINS", "https://quotes.example.com")
	t.Setenv("ENGINE_MAX_MACHINE_WIDTH_MM", "400")
	t.Setenv("ENGINE_MACHINE_SPEED", "35.5")
	t.Setenv("ENGINE_DEFAULT_SCALES", "1000, 5000,10000")
	t.Setenv("AUTH_ENABLED", "true")
	t.Setenv("API_KEYS", "key-one, key-two")
	t.Setenv("ADMIN_USER", "operator")
	t.Setenv("MONGODB_ENABLED", "true")
	t.Setenv("MONGODB_DATABASE", "litoflex")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 25, cfg.Server.RateLimit)
	assert.Equal(t, 30*time.Second, cfg.Server.RateWindow)
	assert.Contains(t, cfg.Server.CORSOrigins, "https://quotes.example.com")

	assert.Equal(t, 400.0, cfg.Engine.MaxMachineWidthMM)
	assert.Equal(t, 35.5, cfg.Engine.MachineSpeed)
	assert.Equal(t, []int{1000, 5000, 10000}, cfg.Engine.DefaultScales)

	assert.True(t, cfg.Auth.Enabled)
	require.Len(t, cfg.Auth.APIKeys, 2)
	assert.True(t, cfg.Auth.APIKeys["key-one"])
	assert.True(t, cfg.Auth.APIKeys["key-two"])
	assert.Equal(t, "operator", cfg.Auth.AdminUser)

	assert.True(t, cfg.Database.Enabled)
	assert.Equal(t, "litoflex", cfg.Database.DatabaseName)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("RATE_LIMIT", "not-a-number")
	t.Setenv("RATE_WINDOW", "soon")
	t.Setenv("AUTH_ENABLED", "maybe")
	t.Setenv("ENGINE_DEFAULT_SCALES", "abc,-5")

	cfg := Load()

	assert.Equal(t, 100, cfg.Server.RateLimit)
	assert.Equal(t, time.Minute, cfg.Server.RateWindow)
	assert.False(t, cfg.Auth.Enabled)
	assert.Empty(t, cfg.Engine.DefaultScales)
}
