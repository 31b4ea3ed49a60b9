package agents

import (
	"os"

	"github.com/blogforge/blogforge/pkg/shared/stringutil"
)

// ConfigFromEnv builds an agents config from environment variables.
func ConfigFromEnv() *Config {
	cfg := &Config{}
	cfg.APIKey = stringutil.EnvOr(cfg.APIKey, os.Getenv("OPENAI_API_KEY"))
	cfg.BaseURL = stringutil.EnvOr(cfg.BaseURL, os.Getenv("OPENAI_BASE_URL"))
	cfg.Model = stringutil.EnvOr(cfg.Model, os.Getenv("BLOGFORGE_MODEL"))
	return cfg.WithDefaults()
}

// ApplyEnvDefaults fills empty config fields from environment variables.
func ApplyEnvDefaults(cfg *Config) *Config {
	if cfg == nil {
		return ConfigFromEnv()
	}
	current := cfg.WithDefaults()
	envCfg := ConfigFromEnv()
	if current.APIKey == "" {
		current.APIKey = envCfg.APIKey
	}
	if current.BaseURL == "" {
		current.BaseURL = envCfg.BaseURL
	}
	if current.Model == DefaultModel && envCfg.Model != DefaultModel {
		current.Model = envCfg.Model
	}
	return current
}
