package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/blogforge/blogforge/pkg/agents"
	"github.com/blogforge/blogforge/pkg/server"
	"github.com/blogforge/blogforge/pkg/shared/stringutil"
	"github.com/blogforge/blogforge/pkg/webresearch"
)

// Config is the root service configuration: an optional YAML file overlaid
// with environment variables. Env values only fill fields the file left
// empty.
type Config struct {
	Research webresearch.Config `yaml:"research"`
	Agents   agents.Config      `yaml:"agents"`
	Server   server.Config      `yaml:"server"`
	LogLevel string             `yaml:"log_level"`
}

// Load reads the YAML file at path (skipped when path is empty) and
// resolves defaults and env overrides for every section.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.Research = *webresearch.ApplyEnvDefaults(&cfg.Research)
	cfg.Agents = *agents.ApplyEnvDefaults(&cfg.Agents)
	cfg.Server = *server.ApplyEnvDefaults(&cfg.Server)
	cfg.LogLevel = stringutil.FirstNonEmpty(cfg.LogLevel, os.Getenv("BLOGFORGE_LOG_LEVEL"), "info")
	return cfg, nil
}
