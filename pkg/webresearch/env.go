package webresearch

import (
	"os"

	"github.com/blogforge/blogforge/pkg/shared/stringutil"
)

// ConfigFromEnv builds a research config from environment variables.
func ConfigFromEnv() *Config {
	cfg := &Config{}
	cfg.Serper.APIKey = stringutil.EnvOr(cfg.Serper.APIKey, os.Getenv("SERPER_API_KEY"))
	cfg.Serper.BaseURL = stringutil.EnvOr(cfg.Serper.BaseURL, os.Getenv("SERPER_BASE_URL"))
	return cfg.WithDefaults()
}

// ApplyEnvDefaults fills empty config fields from environment variables.
func ApplyEnvDefaults(cfg *Config) *Config {
	if cfg == nil {
		return ConfigFromEnv()
	}
	current := cfg.WithDefaults()
	envCfg := ConfigFromEnv()
	if current.Serper.APIKey == "" {
		current.Serper.APIKey = envCfg.Serper.APIKey
	}
	if current.Serper.BaseURL == DefaultSerperBaseURL && envCfg.Serper.BaseURL != DefaultSerperBaseURL {
		current.Serper.BaseURL = envCfg.Serper.BaseURL
	}
	return current
}
