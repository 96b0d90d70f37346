package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validAgentConfig() *Config {
	return &Config{
		AgentEnabled:        true,
		AnthropicAPIKey:     "sk-test",
		MaxToolCalls:        5,
		SimilarityThreshold: 0.3,
	}
}

func TestValidate(t *testing.T) {
	require.NoError(t, validAgentConfig().Validate())
}

func TestValidateRequiresToolBudgetWhenAgentEnabled(t *testing.T) {
	cfg := validAgentConfig()
	cfg.MaxToolCalls = 0
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AGENT_MAX_TOOL_CALLS")

	cfg.MaxToolCalls = -3
	assert.Error(t, cfg.Validate())
}

func TestValidateRequiresAPIKeyWhenAgentEnabled(t *testing.T) {
	cfg := validAgentConfig()
	cfg.AnthropicAPIKey = ""
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ANTHROPIC_API_KEY")
}

func TestValidateAgentDisabledSkipsAgentChecks(t *testing.T) {
	cfg := &Config{AgentEnabled: false, SimilarityThreshold: 0.3}
	assert.NoError(t, cfg.Validate())
}

func TestValidateThresholdRange(t *testing.T) {
	cfg := validAgentConfig()
	cfg.SimilarityThreshold = 1.5
	assert.Error(t, cfg.Validate())

	cfg.SimilarityThreshold = -0.1
	assert.Error(t, cfg.Validate())

	cfg.SimilarityThreshold = 0
	assert.NoError(t, cfg.Validate())
}

func TestParseCORSOrigins(t *testing.T) {
	assert.Equal(t,
		[]string{"http://localhost:5173", "http://localhost:3000"},
		parseCORSOrigins("http://localhost:5173, http://localhost:3000"))

	assert.Equal(t,
		[]string{"https://example.com"},
		parseCORSOrigins(`["https://example.com"]`))

	assert.Empty(t, parseCORSOrigins(""))
}
