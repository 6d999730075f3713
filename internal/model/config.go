package model

import "time"

// Log output formats accepted by Config.LogFormat.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config holds the client configuration
type Config struct {
	// BaseURL is the scheme and host of the news backend shared by every flow
	BaseURL string `json:"base_url"`

	// Timeout bounds a single request; zero disables the limit
	Timeout time.Duration `json:"timeout"`

	// LogLevel is one of debug, info, warn, error
	LogLevel string `json:"log_level"`

	// LogFormat is either text or json
	LogFormat string `json:"log_format"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() Config {
	return Config{
		BaseURL:   "http://localhost:8081",
		Timeout:   30 * time.Second,
		LogLevel:  "warn",
		LogFormat: LogFormatText,
	}
}
