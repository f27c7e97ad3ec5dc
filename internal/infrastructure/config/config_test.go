package config

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWith_Defaults(t *testing.T) {
	cfg, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{}))

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, "http://localhost:5000", cfg.Backend.BaseURL)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 30*time.Second, cfg.Guard.TTL)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Error(t, cfg.ValidateServer(), "JWT secret has no default")
}

func TestLoadWith_Overrides(t *testing.T) {
	cfg, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{
		"ENV":              "production",
		"API_BASE_URL":     "https://api.example.com",
		"JWT_SECRET":       "s3cret",
		"SESSION_TTL":      "90m",
		"ACTION_GUARD_TTL": "5s",
		"REDIS_DB":         "3",
		"SESSION_FILE":     "/tmp/session.json",
	}))

	require.NoError(t, err)
	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, "https://api.example.com", cfg.Backend.BaseURL)
	assert.Equal(t, 90*time.Minute, cfg.SessionTTL)
	assert.Equal(t, 5*time.Second, cfg.Guard.TTL)
	assert.Equal(t, 3, cfg.Redis.DB)
	assert.Equal(t, "/tmp/session.json", cfg.SessionFile)
	assert.NoError(t, cfg.ValidateServer())
}

func TestLoadWith_Malformed(t *testing.T) {
	_, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{
		"SESSION_TTL": "tomorrow",
	}))

	assert.Error(t, err)
}
