package config

import (
	"os"
	"path/filepath"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"FIGMA_TOKEN", "ANTHROPIC_API_KEY", "OPENAI_API_KEY",
		"FIGGEN_PROVIDER", "FIGGEN_MODEL", "FIGGEN_MAX_TOKENS", "FIGGEN_LICENSE_KEY",
	} {
		// t.Setenv registers the restore; the unset makes the variable
		// truly absent so godotenv may populate it.
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Generator.Provider != "anthropic" {
		t.Errorf("Provider: got %s, want anthropic", cfg.Generator.Provider)
	}
	if cfg.Generator.MaxTokens != 8192 {
		t.Errorf("MaxTokens: got %d, want 8192", cfg.Generator.MaxTokens)
	}
	if cfg.Figma.Token != "" {
		t.Error("no default token expected")
	}
}

func TestLoadProjectLocalConfig(t *testing.T) {
	clearEnv(t)
	t.Setenv("HOME", t.TempDir())

	root := t.TempDir()
	content := `
figma:
  token: project-token
generator:
  provider: openai
  model: gpt-5.2-codex
`
	if err := os.WriteFile(filepath.Join(root, ".figgen.yaml"), []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(root)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Figma.Token != "project-token" {
		t.Errorf("Token: got %s, want project-token", cfg.Figma.Token)
	}
	if cfg.Generator.Provider != "openai" {
		t.Errorf("Provider: got %s, want openai", cfg.Generator.Provider)
	}
	if cfg.Generator.MaxTokens != 8192 {
		t.Errorf("MaxTokens default should survive partial config, got %d", cfg.Generator.MaxTokens)
	}
}

func TestLoadEnvironmentWinsOverFiles(t *testing.T) {
	clearEnv(t)
	t.Setenv("HOME", t.TempDir())

	root := t.TempDir()
	content := "figma:\n  token: file-token\n"
	if err := os.WriteFile(filepath.Join(root, ".figgen.yaml"), []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("FIGMA_TOKEN", "env-token")
	t.Setenv("FIGGEN_MAX_TOKENS", "2048")

	cfg, err := Load(root)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Figma.Token != "env-token" {
		t.Errorf("Token: got %s, want env-token", cfg.Figma.Token)
	}
	if cfg.Generator.MaxTokens != 2048 {
		t.Errorf("MaxTokens: got %d, want 2048", cfg.Generator.MaxTokens)
	}
}

func TestLoadCredentialsStore(t *testing.T) {
	clearEnv(t)
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".figgen")
	if err := os.MkdirAll(dir, 0700); err != nil {
		t.Fatal(err)
	}
	creds := "credentials:\n  figma: stored-token\n  anthropic: sk-ant-xxx\n"
	if err := os.WriteFile(filepath.Join(dir, "credentials.yaml"), []byte(creds), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Figma.Token != "stored-token" {
		t.Errorf("Token: got %s, want stored-token", cfg.Figma.Token)
	}
	if cfg.Generator.AnthropicAPIKey != "sk-ant-xxx" {
		t.Errorf("AnthropicAPIKey: got %s", cfg.Generator.AnthropicAPIKey)
	}
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("HOME", t.TempDir())

	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, ".env"), []byte("FIGMA_TOKEN=dotenv-token\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(root)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Figma.Token != "dotenv-token" {
		t.Errorf("Token: got %s, want dotenv-token", cfg.Figma.Token)
	}
}
