package config

import (
	"fmt"
	"time"
)

// ConfigError represents a configuration error.
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config: %s", e.Message)
}

// Defaults returns a Config with sensible defaults applied.
func Defaults() Config {
	return Config{
		Server: ServerConfig{
			Port:           8000,
			Bind:           "loopback",
			AllowedOrigins: []string{"http://localhost:3000"},
		},
		LLM: LLMConfig{
			URL:            "http://localhost:8001/v1/chat/completions",
			Model:          "gemma3-27b",
			Temperature:    0.7,
			MaxTokens:      512,
			TimeoutSeconds: 30,
		},
		Debug: DebugConfig{
			UserID: "debug",
		},
		Logging: LoggingConfig{
			Level:        "info",
			ConsoleStyle: "pretty",
		},
	}
}

// Timeout returns the downstream call timeout as a duration.
func (c LLMConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}
