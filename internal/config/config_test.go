package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.GoEnv)
	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Equal(t, "names.db", cfg.DatabaseURL)
	assert.Equal(t, ".", cfg.BackupDir)
	assert.Equal(t, "", cfg.RedisURL)
	assert.Equal(t, 3600, cfg.CacheTTL)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("DATABASE_URL", "/tmp/library.db")
	t.Setenv("CORS_ORIGINS", "http://localhost:3000, http://localhost:5000")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTPPort)
	assert.Equal(t, "/tmp/library.db", cfg.DatabaseURL)
	assert.Equal(t, []string{"http://localhost:3000", "http://localhost:5000"}, cfg.CORSOrigins)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoadConfig_InvalidInt(t *testing.T) {
	t.Setenv("HTTP_PORT", "not-a-port")

	_, err := LoadConfig()
	assert.Error(t, err)
}
