package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.ServerPort)
	assert.Equal(t, "/api", cfg.ServerBasePath)
	assert.Equal(t, 10*time.Second, cfg.FetchTimeout)
	assert.Equal(t, "Mozilla/5.0", cfg.FetchUserAgent)
	assert.Equal(t, 4, cfg.FetchConcurrency)
	assert.Equal(t, "gpt-3.5-turbo", cfg.AIModel)
	assert.InDelta(t, 0.7, cfg.AITemperature, 1e-6)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.GetAllowedOrigins())
}

func TestLoadConfig_FromEnvFile(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("FETCH_TIMEOUT=3s\nAI_MODEL=gpt-4o-mini\n"), 0o644))
	t.Cleanup(func() {
		os.Unsetenv("FETCH_TIMEOUT")
		os.Unsetenv("AI_MODEL")
	})

	cfg, err := LoadConfig(envFile)
	require.NoError(t, err)
	assert.Equal(t, 3*time.Second, cfg.FetchTimeout)
	assert.Equal(t, "gpt-4o-mini", cfg.AIModel)
}

func TestLoadConfig_InvalidConcurrency(t *testing.T) {
	t.Setenv("FETCH_CONCURRENCY", "0")

	_, err := LoadConfig("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FETCH_CONCURRENCY")
}

func TestGetAllowedOrigins(t *testing.T) {
	cfg := &Config{CORSAllowedOrigins: "http://a.test, http://b.test,,"}
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.GetAllowedOrigins())

	cfg.CORSAllowedOrigins = ""
	assert.Nil(t, cfg.GetAllowedOrigins())
}
