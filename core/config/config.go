// Package config loads figgen settings. Configuration is read fresh on
// every invocation; nothing is cached between runs.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the full figgen configuration.
type Config struct {
	Figma     FigmaConfig     `yaml:"figma"`
	Generator GeneratorConfig `yaml:"generator"`
	License   LicenseConfig   `yaml:"license"`
}

// FigmaConfig configures the layout source.
type FigmaConfig struct {
	Token string `yaml:"token"`
}

// GeneratorConfig configures the generative backend.
type GeneratorConfig struct {
	// Provider selects the backend: anthropic or openai.
	Provider string `yaml:"provider"`

	Model       string  `yaml:"model"`
	Temperature float64 `yaml:"temperature"`
	MaxTokens   int     `yaml:"max_tokens"`

	AnthropicAPIKey string `yaml:"anthropic_api_key"`
	OpenAIAPIKey    string `yaml:"openai_api_key"`
}

// LicenseConfig carries the entitlement key consumed by the external
// license check. Nothing in this tool validates it.
type LicenseConfig struct {
	Key string `yaml:"key"`
}

// Default returns the built-in defaults.
func Default() *Config {
	return &Config{
		Generator: GeneratorConfig{
			Provider:    "anthropic",
			Temperature: 0.2,
			MaxTokens:   8192,
		},
	}
}

const (
	userConfigDir  = ".figgen"
	userConfigFile = "config.yaml"
	credsFile      = "credentials.yaml"
	localConfig    = ".figgen.yaml"
)

// Load builds the effective configuration: defaults, then the user
// config, then stored credentials, then a project-local file, then a
// .env file and process environment. Later sources win.
func Load(projectRoot string) (*Config, error) {
	cfg := Default()

	home, err := os.UserHomeDir()
	if err == nil {
		if err := loadYAML(filepath.Join(home, userConfigDir, userConfigFile), cfg); err != nil {
			return nil, fmt.Errorf("user config: %w", err)
		}
		if err := loadCredentials(filepath.Join(home, userConfigDir, credsFile), cfg); err != nil {
			return nil, fmt.Errorf("credentials: %w", err)
		}
	}

	if err := loadYAML(filepath.Join(projectRoot, localConfig), cfg); err != nil {
		return nil, fmt.Errorf("project config: %w", err)
	}

	// Best-effort .env so project-local secrets reach the environment
	// lookups below.
	_ = godotenv.Load(filepath.Join(projectRoot, ".env"))

	applyEnvironment(cfg)
	return cfg, nil
}

func loadYAML(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// loadCredentials merges the `figgen auth` store, which maps service
// names to keys.
func loadCredentials(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}

	var file struct {
		Credentials map[string]string `yaml:"credentials"`
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return err
	}

	if v := file.Credentials["figma"]; v != "" {
		cfg.Figma.Token = v
	}
	if v := file.Credentials["anthropic"]; v != "" {
		cfg.Generator.AnthropicAPIKey = v
	}
	if v := file.Credentials["openai"]; v != "" {
		cfg.Generator.OpenAIAPIKey = v
	}
	return nil
}

func applyEnvironment(cfg *Config) {
	if v := os.Getenv("FIGMA_TOKEN"); v != "" {
		cfg.Figma.Token = v
	}
	if v := os.Getenv("ANTHROPIC_API_KEY"); v != "" {
		cfg.Generator.AnthropicAPIKey = v
	}
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		cfg.Generator.OpenAIAPIKey = v
	}
	if v := os.Getenv("FIGGEN_PROVIDER"); v != "" {
		cfg.Generator.Provider = v
	}
	if v := os.Getenv("FIGGEN_MODEL"); v != "" {
		cfg.Generator.Model = v
	}
	if v := os.Getenv("FIGGEN_MAX_TOKENS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Generator.MaxTokens = n
		}
	}
	if v := os.Getenv("FIGGEN_LICENSE_KEY"); v != "" {
		cfg.License.Key = v
	}
}

// CredentialsPath returns the location of the `figgen auth` store.
func CredentialsPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, userConfigDir, credsFile), nil
}

// EnsureConfigDir creates ~/.figgen with owner-only permissions.
func EnsureConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	dir := filepath.Join(home, userConfigDir)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", fmt.Errorf("creating config directory: %w", err)
	}
	return dir, nil
}
