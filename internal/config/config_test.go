package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "deepseek/deepseek-r1", cfg.AI.Model)
	assert.Equal(t, "https://openrouter.ai/api/v1", cfg.AI.BaseURL)
	assert.Equal(t, 60, cfg.AI.TimeoutSeconds)
	assert.Equal(t, float64(1), cfg.AI.RPS)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("OPENROUTER_API_KEY", "sk-test")
	t.Setenv("AI_MODEL", "test/model")
	t.Setenv("MOVIES_DIR", "/mnt/media/movies")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "sk-test", cfg.AI.APIKey)
	assert.Equal(t, "test/model", cfg.AI.Model)
	assert.Equal(t, "/mnt/media/movies", cfg.Media.Root)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "deepseek/deepseek-r1", cfg.AI.Model)
	assert.Equal(t, "info", cfg.Logging.Level)
}
