package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	t.Setenv("SERPER_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.ListenAddr != ":8080" {
		t.Fatalf("unexpected listen addr: %q", cfg.Server.ListenAddr)
	}
	if cfg.Research.Serper.MaxResults != 5 || cfg.Research.Fetch.TimeoutSecs != 10 {
		t.Fatalf("unexpected research defaults: %#v", cfg.Research)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("unexpected log level: %q", cfg.LogLevel)
	}
}

func TestLoadReadsFile(t *testing.T) {
	path := writeConfigFile(t, `
research:
  serper:
    api_key: file-key
agents:
  model: test-model
server:
  listen_addr: ":9999"
log_level: debug
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Research.Serper.APIKey != "file-key" {
		t.Fatalf("api key not read from file: %#v", cfg.Research.Serper)
	}
	if cfg.Agents.Model != "test-model" {
		t.Fatalf("model not read from file: %q", cfg.Agents.Model)
	}
	if cfg.Server.ListenAddr != ":9999" || cfg.LogLevel != "debug" {
		t.Fatalf("unexpected server config: %#v", cfg.Server)
	}
}

func TestLoadEnvFillsEmptyFields(t *testing.T) {
	t.Setenv("SERPER_API_KEY", "env-key")
	t.Setenv("OPENAI_API_KEY", "env-llm-key")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Research.Serper.APIKey != "env-key" {
		t.Fatalf("env api key not applied: %#v", cfg.Research.Serper)
	}
	if cfg.Agents.APIKey != "env-llm-key" {
		t.Fatalf("env llm key not applied: %#v", cfg.Agents)
	}
}

func TestLoadFilePrecedesEnv(t *testing.T) {
	t.Setenv("SERPER_API_KEY", "env-key")
	path := writeConfigFile(t, `
research:
  serper:
    api_key: file-key
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Research.Serper.APIKey != "file-key" {
		t.Fatalf("file value must win over env: %q", cfg.Research.Serper.APIKey)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatalf("expected error for missing config file")
	}
}
