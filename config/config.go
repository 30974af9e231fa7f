package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"

	"concierge/internal/credentials"
)

type ChatMode string

const (
	ModeHeuristic ChatMode = "heuristic"
	ModeLLM       ChatMode = "llm"
)

type Config struct {
	OpenWeatherAPIKey  string `envconfig:"OPENWEATHER_API_KEY"`
	AlphaVantageAPIKey string `envconfig:"ALPHA_VANTAGE_API_KEY"`
	AnthropicAPIKey    string `envconfig:"ANTHROPIC_API_KEY"`

	OpenWeatherURL  string `envconfig:"OPENWEATHER_URL" default:"https://api.openweathermap.org"`
	AlphaVantageURL string `envconfig:"ALPHA_VANTAGE_URL" default:"https://www.alphavantage.co"`
	ErgastURL       string `envconfig:"ERGAST_URL" default:"https://ergast.com"`

	OllamaURL   string `envconfig:"OLLAMA_URL" default:"http://localhost:11434"`
	OllamaModel string `envconfig:"OLLAMA_MODEL" default:"qwen2.5:7b"`
	PreferLocal bool   `envconfig:"PREFER_LOCAL" default:"false"`

	ChatMode      string `envconfig:"CHAT_MODE" default:"heuristic"`
	LogLevel      string `envconfig:"LOG_LEVEL" default:"info"`
	ServerPort    int    `envconfig:"SERVER_PORT" default:"8080"`
	AuthRequired  bool   `envconfig:"AUTH_REQUIRED" default:"true"`
	SessionTokens string `envconfig:"SESSION_TOKENS"`
}

// Load reads configuration from the environment, then fills API keys that are
// still empty from the OS keychain.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	cfg.OpenWeatherAPIKey = credentials.GetOrEnv(credentials.KeyOpenWeather, cfg.OpenWeatherAPIKey)
	cfg.AlphaVantageAPIKey = credentials.GetOrEnv(credentials.KeyAlphaVantage, cfg.AlphaVantageAPIKey)
	cfg.AnthropicAPIKey = credentials.GetOrEnv(credentials.KeyAnthropic, cfg.AnthropicAPIKey)

	return &cfg, nil
}

// Validate checks the configuration needed before serving traffic. Provider
// keys are intentionally not required here: an adapter with a missing key
// reports a configuration failure on use instead of crashing the process.
func (c *Config) Validate() error {
	switch ChatMode(c.ChatMode) {
	case ModeHeuristic:
	case ModeLLM:
		if c.AnthropicAPIKey == "" && c.OllamaURL == "" {
			return fmt.Errorf("CHAT_MODE=llm requires ANTHROPIC_API_KEY or a reachable OLLAMA_URL")
		}
	default:
		return fmt.Errorf("unknown CHAT_MODE: %s (valid: heuristic, llm)", c.ChatMode)
	}

	if c.ServerPort <= 0 || c.ServerPort > 65535 {
		return fmt.Errorf("invalid SERVER_PORT: %d", c.ServerPort)
	}

	return nil
}

func (c *Config) Mode() ChatMode {
	return ChatMode(c.ChatMode)
}

// GetSessionTokens parses SESSION_TOKENS into a lookup set.
func (c *Config) GetSessionTokens() map[string]bool {
	tokens := make(map[string]bool)
	if c.SessionTokens == "" {
		return tokens
	}
	for _, tok := range strings.Split(c.SessionTokens, ",") {
		tok = strings.TrimSpace(tok)
		if tok != "" {
			tokens[tok] = true
		}
	}
	return tokens
}

// ValidateSession reports whether the presented session token grants access.
// With auth disabled, or enabled but no tokens configured, everything passes;
// the service then relies on an upstream auth collaborator.
func (c *Config) ValidateSession(token string) bool {
	if !c.AuthRequired {
		return true
	}
	tokens := c.GetSessionTokens()
	if len(tokens) == 0 {
		return true
	}
	return tokens[token]
}
