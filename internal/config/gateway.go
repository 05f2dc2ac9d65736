package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/navigatehome/waypoint/internal/gateway"
)

const (
	EnvAssistantAPIKey       = "WAYPOINT_ASSISTANT_API_KEY"
	EnvAssistantBaseURL      = "WAYPOINT_ASSISTANT_BASE_URL"
	EnvAssistantModel        = "WAYPOINT_ASSISTANT_MODEL"
	EnvAssistantMaxTokens    = "WAYPOINT_ASSISTANT_MAX_TOKENS"
	EnvAssistantTemperature  = "WAYPOINT_ASSISTANT_TEMPERATURE"
	EnvTranslatorBaseURL     = "WAYPOINT_TRANSLATOR_BASE_URL"
	EnvTranslatorAPIKey      = "WAYPOINT_TRANSLATOR_API_KEY"
	EnvGatewayFallbackPolicy = "WAYPOINT_GATEWAY_FALLBACK_POLICY"
)

// GatewayConfig holds external assistant and translator parameters plus
// the fallback policy applied when live calls fail.
type GatewayConfig struct {
	APIKey         string  `toml:"api_key"`
	BaseURL        string  `toml:"base_url"`
	Model          string  `toml:"model"`
	MaxTokens      int     `toml:"max_tokens"`
	Temperature    float64 `toml:"temperature"`
	TranslatorURL  string  `toml:"translator_url"`
	TranslatorKey  string  `toml:"translator_key"`
	FallbackPolicy string  `toml:"fallback_policy"`
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *GatewayConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *GatewayConfig) Merge(overlay *GatewayConfig) {
	if overlay.APIKey != "" {
		c.APIKey = overlay.APIKey
	}
	if overlay.BaseURL != "" {
		c.BaseURL = overlay.BaseURL
	}
	if overlay.Model != "" {
		c.Model = overlay.Model
	}
	if overlay.MaxTokens != 0 {
		c.MaxTokens = overlay.MaxTokens
	}
	if overlay.Temperature != 0 {
		c.Temperature = overlay.Temperature
	}
	if overlay.TranslatorURL != "" {
		c.TranslatorURL = overlay.TranslatorURL
	}
	if overlay.TranslatorKey != "" {
		c.TranslatorKey = overlay.TranslatorKey
	}
	if overlay.FallbackPolicy != "" {
		c.FallbackPolicy = overlay.FallbackPolicy
	}
}

func (c *GatewayConfig) loadDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = "https://api.openai.com"
	}
	if c.Model == "" {
		c.Model = "gpt-4"
	}
	if c.MaxTokens == 0 {
		c.MaxTokens = 500
	}
	if c.Temperature == 0 {
		c.Temperature = 0.3
	}
	if c.TranslatorURL == "" {
		c.TranslatorURL = "http://localhost:5000"
	}
	if c.FallbackPolicy == "" {
		c.FallbackPolicy = "lenient"
	}
}

func (c *GatewayConfig) loadEnv() {
	if v := os.Getenv(EnvAssistantAPIKey); v != "" {
		c.APIKey = v
	}
	if v := os.Getenv(EnvAssistantBaseURL); v != "" {
		c.BaseURL = v
	}
	if v := os.Getenv(EnvAssistantModel); v != "" {
		c.Model = v
	}
	if v := os.Getenv(EnvAssistantMaxTokens); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.MaxTokens = n
		}
	}
	if v := os.Getenv(EnvAssistantTemperature); v != "" {
		if t, err := strconv.ParseFloat(v, 64); err == nil {
			c.Temperature = t
		}
	}
	if v := os.Getenv(EnvTranslatorBaseURL); v != "" {
		c.TranslatorURL = v
	}
	if v := os.Getenv(EnvTranslatorAPIKey); v != "" {
		c.TranslatorKey = v
	}
	if v := os.Getenv(EnvGatewayFallbackPolicy); v != "" {
		c.FallbackPolicy = v
	}
}

func (c *GatewayConfig) validate() error {
	if _, err := gateway.ParsePolicy(c.FallbackPolicy); err != nil {
		return fmt.Errorf("invalid fallback_policy: %w", err)
	}
	if c.MaxTokens < 1 {
		return fmt.Errorf("max_tokens must be positive")
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		return fmt.Errorf("temperature out of range: %v", c.Temperature)
	}
	return nil
}
