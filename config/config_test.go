package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "WS_PORT", "SERVER_TYPE", "REDIS_URL", "REDIS_PASSWORD",
		"SESSION_TTL", "MAX_CAPACITY", "DEFAULT_LANGUAGE", "ALLOWED_ORIGINS",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 8081, cfg.WSPort)
	assert.Equal(t, "http", cfg.ServerType)
	assert.Equal(t, "localhost:6379", cfg.RedisURL)
	assert.Equal(t, time.Hour, cfg.SessionTTL)
	assert.Equal(t, 20, cfg.MaxCapacity)
	assert.Equal(t, "en", cfg.DefaultLanguage)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.Equal(t, time.Tuesday, cfg.Hours.ClosedDay)
	assert.Equal(t, 21, cfg.DinnerCutoff.Hour)
	assert.Equal(t, 30, cfg.DinnerCutoff.Minute)
}

func TestLoadConfig_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("SERVER_TYPE", "both")
	t.Setenv("SESSION_TTL", "120")
	t.Setenv("MAX_CAPACITY", "40")
	t.Setenv("DEFAULT_LANGUAGE", "PT")
	t.Setenv("ALLOWED_ORIGINS", "https://tibino.pt,https://staff.tibino.pt")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "both", cfg.ServerType)
	assert.Equal(t, 2*time.Minute, cfg.SessionTTL)
	assert.Equal(t, 40, cfg.MaxCapacity)
	assert.Equal(t, "pt", cfg.DefaultLanguage)
	assert.Equal(t, []string{"https://tibino.pt", "https://staff.tibino.pt"}, cfg.AllowedOrigins)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"bad port", "PORT", "not-a-number"},
		{"bad ws port", "WS_PORT", "x"},
		{"bad server type", "SERVER_TYPE", "grpc"},
		{"bad ttl", "SESSION_TTL", "soon"},
		{"bad capacity", "MAX_CAPACITY", "many"},
		{"zero capacity", "MAX_CAPACITY", "0"},
		{"negative capacity", "MAX_CAPACITY", "-5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}
