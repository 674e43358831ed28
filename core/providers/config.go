package providers

import "fmt"

// Config is the configuration shared by both providers.
type Config struct {
	// APIKey is the authentication key for the provider.
	APIKey string `json:"api_key" yaml:"api_key"`

	// Model is the default model to use.
	Model string `json:"model" yaml:"model"`

	// MaxTokens is the default maximum tokens to generate.
	MaxTokens int `json:"max_tokens" yaml:"max_tokens"`

	// Temperature is the default sampling temperature.
	Temperature float64 `json:"temperature" yaml:"temperature"`

	// BaseURL overrides the default API endpoint.
	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty"`
}

const (
	defaultAnthropicModel = "claude-sonnet-4-5-20250901"
	defaultOpenAIModel    = "gpt-5.2-codex"
)

// DefaultAnthropicConfig returns Anthropic defaults.
func DefaultAnthropicConfig() Config {
	return Config{
		Model:       defaultAnthropicModel,
		MaxTokens:   8192,
		Temperature: 0.2,
	}
}

// DefaultOpenAIConfig returns OpenAI defaults.
func DefaultOpenAIConfig() Config {
	return Config{
		Model:       defaultOpenAIModel,
		MaxTokens:   8192,
		Temperature: 0.2,
	}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("api_key is required")
	}
	if c.MaxTokens <= 0 {
		return fmt.Errorf("max_tokens must be positive")
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		return fmt.Errorf("temperature must be between 0 and 2")
	}
	return nil
}
