package llm

import (
	"os"
	"strconv"
)

// Config holds all configuration for the generation client. It is
// injected at construction rather than read from ambient state, so tests
// can run against a fake client or a local endpoint.
type Config struct {
	Endpoint    string
	Model       string
	TimeoutMs   int
	Temperature float64
	MaxTokens   int
	LogCalls    bool
}

// DefaultConfig returns a Config with sensible defaults. Plan generation
// is a long single call, hence the generous timeout.
func DefaultConfig() Config {
	return Config{
		Endpoint:    "http://localhost:11434",
		Model:       "llama3.2",
		TimeoutMs:   120000,
		Temperature: 0.4,
		MaxTokens:   4096,
		LogCalls:    false,
	}
}

// LoadConfig reads generation configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("FITPLAN_LLM_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("FITPLAN_LLM_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("FITPLAN_LLM_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("FITPLAN_LLM_TEMPERATURE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 {
			cfg.Temperature = f
		}
	}
	if v := os.Getenv("FITPLAN_LLM_MAX_TOKENS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxTokens = n
		}
	}
	if v := os.Getenv("FITPLAN_LLM_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}

	return cfg
}
