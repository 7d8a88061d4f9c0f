package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[auth]
jwt_secret = "secret"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 15, cfg.Server.ReadTimeout)
	assert.Equal(t, int64(10), cfg.Pricing.CommissionPercent)
	assert.Equal(t, "lenient", cfg.Pricing.ExtrasPolicy)
	assert.Equal(t, "v1.0.0", cfg.Pricing.TermsVersion)
	assert.Equal(t, 168, cfg.Auth.TokenTTLHours)
	assert.False(t, cfg.Redis.Enabled())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("DB_PASSWORD", "pw")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")

	cfg, err := Load(writeConfig(t, "[database]\nhost = \"db\"\n"))
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Auth.JWTSecret)
	assert.Equal(t, "pw", cfg.Database.Password)
	assert.True(t, cfg.Redis.Enabled())
	assert.Contains(t, cfg.Database.DSN(), "host=db")
	assert.Contains(t, cfg.Database.DSN(), "password=pw")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.True(t, errors.Is(err, ErrReadConfig))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"empty secret", func(c *Config) { c.Auth.JWTSecret = "" }},
		{"commission above 100", func(c *Config) { c.Pricing.CommissionPercent = 101 }},
		{"negative commission", func(c *Config) { c.Pricing.CommissionPercent = -1 }},
		{"unknown extras policy", func(c *Config) { c.Pricing.ExtrasPolicy = "maybe" }},
		{"bad port", func(c *Config) { c.Server.HTTPPort = 0 }},
		{"redis without ttl", func(c *Config) { c.Redis.URL = "redis://x"; c.Redis.SearchTTLSec = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Auth.JWTSecret = "secret"
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}

	cfg := Default()
	cfg.Auth.JWTSecret = "secret"
	assert.NoError(t, cfg.Validate())
}
