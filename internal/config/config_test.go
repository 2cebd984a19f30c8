package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "codesieve", cfg.Name)
	assert.Equal(t, "http://localhost:1234/v1", cfg.API.BaseURL)
	assert.Equal(t, 0.7, cfg.API.Temperature)
	assert.Equal(t, 2000, cfg.API.MaxTokens)
	assert.True(t, cfg.Output.CopyToClipboard)
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope", "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().API.BaseURL, cfg.API.BaseURL)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.API.Model = "local-coder"
	cfg.API.MaxTokens = 512
	cfg.Output.CopyToClipboard = false
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "local-coder", loaded.API.Model)
	assert.Equal(t, 512, loaded.API.MaxTokens)
	assert.False(t, loaded.Output.CopyToClipboard)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api:\n  model: partial-model\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "partial-model", cfg.API.Model)
	assert.Equal(t, 2000, cfg.API.MaxTokens)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api: [not\n"), 0644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("CODESIEVE_API_URL", "http://10.0.0.2:1234/v1")
	t.Setenv("CODESIEVE_MODEL", "env-model")
	t.Setenv("CODESIEVE_TEMPERATURE", "0.2")
	t.Setenv("CODESIEVE_MAX_TOKENS", "4096")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "http://10.0.0.2:1234/v1", cfg.API.BaseURL)
	assert.Equal(t, "env-model", cfg.API.Model)
	assert.Equal(t, 0.2, cfg.API.Temperature)
	assert.Equal(t, 4096, cfg.API.MaxTokens)
}

func TestEnvOverridesIgnoreGarbage(t *testing.T) {
	t.Setenv("CODESIEVE_TEMPERATURE", "warm")
	t.Setenv("CODESIEVE_MAX_TOKENS", "-5")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 0.7, cfg.API.Temperature)
	assert.Equal(t, 2000, cfg.API.MaxTokens)
}

func TestAPITimeout(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 120*time.Second, cfg.APITimeout())

	cfg.API.Timeout = "30s"
	assert.Equal(t, 30*time.Second, cfg.APITimeout())

	cfg.API.Timeout = "bogus"
	assert.Equal(t, 120*time.Second, cfg.APITimeout())
}
