package config

import (
	"fmt"
	"net/url"
	"slices"
)

// ValidationIssue describes a problem with a config value.
type ValidationIssue struct {
	Path    string
	Message string
}

func (v ValidationIssue) String() string {
	return fmt.Sprintf("%s: %s", v.Path, v.Message)
}

// Validate checks a Config for issues. Returns nil if valid.
func Validate(cfg *Config) []ValidationIssue {
	var issues []ValidationIssue

	if cfg.Server.Port < 0 || cfg.Server.Port > 65535 {
		issues = append(issues, ValidationIssue{
			Path:    "server.port",
			Message: fmt.Sprintf("port must be 0-65535, got %d", cfg.Server.Port),
		})
	}

	validBinds := []string{"loopback", "lan", "auto", "custom"}
	if cfg.Server.Bind != "" && !slices.Contains(validBinds, cfg.Server.Bind) {
		issues = append(issues, ValidationIssue{
			Path:    "server.bind",
			Message: fmt.Sprintf("must be one of %v, got %q", validBinds, cfg.Server.Bind),
		})
	}

	if cfg.Server.TLS.Enabled {
		if cfg.Server.TLS.CertPath == "" {
			issues = append(issues, ValidationIssue{
				Path:    "server.tls.certPath",
				Message: "required when tls is enabled",
			})
		}
		if cfg.Server.TLS.KeyPath == "" {
			issues = append(issues, ValidationIssue{
				Path:    "server.tls.keyPath",
				Message: "required when tls is enabled",
			})
		}
	}

	if cfg.LLM.URL == "" {
		issues = append(issues, ValidationIssue{
			Path:    "llm.url",
			Message: "downstream completions URL is required",
		})
	} else if u, err := url.Parse(cfg.LLM.URL); err != nil || u.Scheme == "" || u.Host == "" {
		issues = append(issues, ValidationIssue{
			Path:    "llm.url",
			Message: fmt.Sprintf("must be an absolute URL, got %q", cfg.LLM.URL),
		})
	}

	if cfg.LLM.Model == "" {
		issues = append(issues, ValidationIssue{
			Path:    "llm.model",
			Message: "model identifier is required",
		})
	}

	if cfg.LLM.TimeoutSeconds < 0 {
		issues = append(issues, ValidationIssue{
			Path:    "llm.timeoutSeconds",
			Message: fmt.Sprintf("must be non-negative, got %d", cfg.LLM.TimeoutSeconds),
		})
	}

	if cfg.LLM.MaxTokens < 0 {
		issues = append(issues, ValidationIssue{
			Path:    "llm.maxTokens",
			Message: fmt.Sprintf("must be non-negative, got %d", cfg.LLM.MaxTokens),
		})
	}

	if cfg.LLM.Temperature < 0 || cfg.LLM.Temperature > 2 {
		issues = append(issues, ValidationIssue{
			Path:    "llm.temperature",
			Message: fmt.Sprintf("must be in [0, 2], got %g", cfg.LLM.Temperature),
		})
	}

	validLogLevels := []string{"silent", "fatal", "error", "warn", "info", "debug", "trace"}
	if cfg.Logging.Level != "" && !slices.Contains(validLogLevels, cfg.Logging.Level) {
		issues = append(issues, ValidationIssue{
			Path:    "logging.level",
			Message: fmt.Sprintf("must be one of %v, got %q", validLogLevels, cfg.Logging.Level),
		})
	}

	validConsoleStyles := []string{"pretty", "json"}
	if cfg.Logging.ConsoleStyle != "" && !slices.Contains(validConsoleStyles, cfg.Logging.ConsoleStyle) {
		issues = append(issues, ValidationIssue{
			Path:    "logging.consoleStyle",
			Message: fmt.Sprintf("must be one of %v, got %q", validConsoleStyles, cfg.Logging.ConsoleStyle),
		})
	}

	return issues
}
