package config

// Config is the root configuration for llmrelay.
type Config struct {
	Server  ServerConfig  `yaml:"server,omitempty"`
	LLM     LLMConfig     `yaml:"llm,omitempty"`
	Debug   DebugConfig   `yaml:"debug,omitempty"`
	Logging LoggingConfig `yaml:"logging,omitempty"`
}

// ServerConfig controls the relay HTTP server.
type ServerConfig struct {
	Port           int       `yaml:"port,omitempty"`
	Bind           string    `yaml:"bind,omitempty"` // "loopback" | "lan" | "auto" | "custom"
	CustomBindHost string    `yaml:"customBindHost,omitempty"`
	AllowedOrigins []string  `yaml:"allowedOrigins,omitempty"`
	TLS            ServerTLS `yaml:"tls,omitempty"`
}

// ServerTLS configures TLS for the relay server.
type ServerTLS struct {
	Enabled  bool   `yaml:"enabled,omitempty"`
	CertPath string `yaml:"certPath,omitempty"`
	KeyPath  string `yaml:"keyPath,omitempty"`
}

// LLMConfig describes the downstream completions server.
type LLMConfig struct {
	URL            string  `yaml:"url,omitempty"`
	Model          string  `yaml:"model,omitempty"`
	APIKey         string  `yaml:"apiKey,omitempty"` // supports ${ENV_VAR} references
	Temperature    float64 `yaml:"temperature,omitempty"`
	MaxTokens      int     `yaml:"maxTokens,omitempty"`
	TimeoutSeconds int     `yaml:"timeoutSeconds,omitempty"`
}

// DebugConfig controls diagnostic disclosure on chat responses.
// UserID is the sentinel userId value that unlocks the debug block;
// an empty value disables disclosure entirely.
type DebugConfig struct {
	UserID string `yaml:"userId,omitempty"`
}

// LoggingConfig controls logging behavior.
type LoggingConfig struct {
	Level        string `yaml:"level,omitempty"`        // "silent" | "fatal" | "error" | "warn" | "info" | "debug" | "trace"
	ConsoleStyle string `yaml:"consoleStyle,omitempty"` // "pretty" | "json"
}
