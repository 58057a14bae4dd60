package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, "loopback", cfg.Server.Bind)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "http://localhost:8001/v1/chat/completions", cfg.LLM.URL)
	assert.Equal(t, "gemma3-27b", cfg.LLM.Model)
	assert.Equal(t, 0.7, cfg.LLM.Temperature)
	assert.Equal(t, 512, cfg.LLM.MaxTokens)
	assert.Equal(t, 30, cfg.LLM.TimeoutSeconds)
	assert.Equal(t, "debug", cfg.Debug.UserID)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
server:
  port: 9100
  allowedOrigins:
    - https://chat.example.com
llm:
  url: http://inference:8001/v1/chat/completions
  model: qwen3-32b
  maxTokens: 1024
debug:
  userId: ""
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9100, cfg.Server.Port)
	assert.Equal(t, []string{"https://chat.example.com"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "http://inference:8001/v1/chat/completions", cfg.LLM.URL)
	assert.Equal(t, "qwen3-32b", cfg.LLM.Model)
	assert.Equal(t, 1024, cfg.LLM.MaxTokens)
	assert.Equal(t, "debug", cfg.Logging.Level)

	// unset fields fall back to defaults
	assert.Equal(t, "loopback", cfg.Server.Bind)
	assert.Equal(t, 0.7, cfg.LLM.Temperature)
	assert.Equal(t, 30, cfg.LLM.TimeoutSeconds)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [not: valid"), 0o600))

	_, err := Load(path)
	require.Error(t, err)
	var cfgErr *ConfigError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("LLMRELAY_PORT", "9999")
	t.Setenv("LLMRELAY_LLM_URL", "http://other:8001/v1/chat/completions")
	t.Setenv("LLMRELAY_MODEL", "llama3-70b")
	t.Setenv("LLMRELAY_LOG_LEVEL", "DEBUG")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 9999, cfg.Server.Port)
	assert.Equal(t, "http://other:8001/v1/chat/completions", cfg.LLM.URL)
	assert.Equal(t, "llama3-70b", cfg.LLM.Model)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestExpandAPIKey(t *testing.T) {
	t.Setenv("RELAY_TEST_KEY", "sk-secret")

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("llm:\n  apiKey: ${RELAY_TEST_KEY}\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "sk-secret", cfg.LLM.APIKey)
}

func TestExpandUnsetVarLeftAlone(t *testing.T) {
	assert.Equal(t, "${DEFINITELY_NOT_SET_XYZ}", expandEnvVars("${DEFINITELY_NOT_SET_XYZ}"))
}

func TestTimeout(t *testing.T) {
	cfg := Defaults()
	assert.Equal(t, "30s", cfg.LLM.Timeout().String())
}
