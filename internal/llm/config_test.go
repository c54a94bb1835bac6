package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg := LoadConfig()
	assert.Equal(t, "http://localhost:11434", cfg.Endpoint)
	assert.Equal(t, 120000, cfg.TimeoutMs)
	assert.False(t, cfg.LogCalls)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("FITPLAN_LLM_ENDPOINT", "http://gpu-box:11434")
	t.Setenv("FITPLAN_LLM_MODEL", "qwen2.5")
	t.Setenv("FITPLAN_LLM_TIMEOUT_MS", "30000")
	t.Setenv("FITPLAN_LLM_LOG_CALLS", "true")

	cfg := LoadConfig()
	assert.Equal(t, "http://gpu-box:11434", cfg.Endpoint)
	assert.Equal(t, "qwen2.5", cfg.Model)
	assert.Equal(t, 30000, cfg.TimeoutMs)
	assert.True(t, cfg.LogCalls)
}

func TestLoadConfig_IgnoresInvalidTimeout(t *testing.T) {
	t.Setenv("FITPLAN_LLM_TIMEOUT_MS", "-5")
	assert.Equal(t, 120000, LoadConfig().TimeoutMs)
}
