package server

import (
	"os"

	"github.com/blogforge/blogforge/pkg/shared/stringutil"
)

// ApplyEnvDefaults fills empty config fields from environment variables.
func ApplyEnvDefaults(cfg *Config) *Config {
	current := cfg.WithDefaults()
	if addr := stringutil.FirstNonEmpty(os.Getenv("BLOGFORGE_LISTEN_ADDR")); addr != "" && current.ListenAddr == DefaultListenAddr {
		current.ListenAddr = addr
	}
	return current
}
