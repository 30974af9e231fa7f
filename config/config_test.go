package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetSessionTokens(t *testing.T) {
	cfg := &Config{SessionTokens: "alpha, beta ,,gamma"}

	tokens := cfg.GetSessionTokens()
	assert.Len(t, tokens, 3)
	assert.True(t, tokens["alpha"])
	assert.True(t, tokens["beta"])
	assert.True(t, tokens["gamma"])
}

func TestValidateSession(t *testing.T) {
	cfg := &Config{AuthRequired: true, SessionTokens: "secret"}

	assert.True(t, cfg.ValidateSession("secret"))
	assert.False(t, cfg.ValidateSession("wrong"))
	assert.False(t, cfg.ValidateSession(""))
}

func TestValidateSessionAuthDisabled(t *testing.T) {
	cfg := &Config{AuthRequired: false}
	assert.True(t, cfg.ValidateSession("anything"))
}

func TestValidateSessionNoTokensConfigured(t *testing.T) {
	// Auth on but no local tokens: access control is deferred to an
	// upstream collaborator, so everything passes here.
	cfg := &Config{AuthRequired: true}
	assert.True(t, cfg.ValidateSession(""))
}

func TestValidateChatMode(t *testing.T) {
	cfg := &Config{ChatMode: "heuristic", ServerPort: 8080}
	assert.NoError(t, cfg.Validate())

	cfg.ChatMode = "llm"
	cfg.AnthropicAPIKey = "key"
	assert.NoError(t, cfg.Validate())

	cfg.ChatMode = "telepathy"
	assert.Error(t, cfg.Validate())
}

func TestValidatePort(t *testing.T) {
	cfg := &Config{ChatMode: "heuristic", ServerPort: 0}
	assert.Error(t, cfg.Validate())

	cfg.ServerPort = 70000
	assert.Error(t, cfg.Validate())
}
