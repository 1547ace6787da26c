// Package config loads application configuration from the environment.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration.
type Config struct {
	AI      AIConfig
	Media   MediaConfig
	Aliases AliasConfig
	Logging LogConfig
}

// AIConfig holds interpreter service configuration.
type AIConfig struct {
	APIKey         string  `envconfig:"OPENROUTER_API_KEY"`
	Model          string  `envconfig:"AI_MODEL" default:"deepseek/deepseek-r1"`
	BaseURL        string  `envconfig:"AI_BASE_URL" default:"https://openrouter.ai/api/v1"`
	TimeoutSeconds int     `envconfig:"AI_TIMEOUT" default:"60"`
	RPS            float64 `envconfig:"AI_RPS" default:"1"`
}

// MediaConfig holds the media root configuration. An empty Root means
// the platform default is applied at startup.
type MediaConfig struct {
	Root string `envconfig:"MOVIES_DIR"`
}

// AliasConfig holds the optional user alias overlay file.
type AliasConfig struct {
	File string `envconfig:"ALIAS_FILE"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		AI: AIConfig{
			Model:          "deepseek/deepseek-r1",
			BaseURL:        "https://openrouter.ai/api/v1",
			TimeoutSeconds: 60,
			RPS:            1,
		},
		Logging: LogConfig{
			Level: "info",
		},
	}
}
