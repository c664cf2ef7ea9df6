package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/reshetovitsme/podcast-feed/internal/modules/feed/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "./feeds", cfg.FeedsPath)
	assert.Equal(t, 300, cfg.CacheTTL)
	assert.Equal(t, domain.AppEnvProduction, cfg.AppEnv)
	assert.Empty(t, cfg.ConfigFile)
}

func TestLoadFrom_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("http_port: \"9000\"\nfeeds_path: /srv/feeds\nbase_url: https://feeds.example.org/\napp_env: Development\n"), 0o644))

	t.Setenv("HTTP_PORT", "9100")

	cfg, err := LoadFrom(filepath.Join(dir, "config.json"), path)
	require.NoError(t, err)

	assert.Equal(t, path, cfg.ConfigFile)
	assert.Equal(t, "9100", cfg.HTTPPort)
	assert.Equal(t, "/srv/feeds", cfg.FeedsPath)
	assert.Equal(t, "https://feeds.example.org", cfg.BaseURL)
	assert.Equal(t, domain.AppEnvDevelopment, cfg.AppEnv)
}

func TestLoadFrom_UnknownAppEnv(t *testing.T) {
	t.Setenv("APP_ENV", "staging")

	cfg, err := LoadFrom()
	require.NoError(t, err)
	assert.Equal(t, domain.AppEnvProduction, cfg.AppEnv)
}

func TestLoadFrom_UnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.ini")
	require.NoError(t, os.WriteFile(path, []byte("x=1"), 0o644))

	_, err := LoadFrom(path)
	assert.Error(t, err)
}
