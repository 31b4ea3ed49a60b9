package server

const (
	DefaultListenAddr       = ":8080"
	DefaultJobRetentionMins = 60
	DefaultPruneSchedule    = "@every 10m"
)

// Config controls the HTTP listener and job housekeeping.
type Config struct {
	ListenAddr       string `yaml:"listen_addr"`
	JobRetentionMins int    `yaml:"job_retention_minutes"`
	PruneSchedule    string `yaml:"prune_schedule"`
}

func (c *Config) WithDefaults() *Config {
	if c == nil {
		c = &Config{}
	}
	if c.ListenAddr == "" {
		c.ListenAddr = DefaultListenAddr
	}
	if c.JobRetentionMins <= 0 {
		c.JobRetentionMins = DefaultJobRetentionMins
	}
	if c.PruneSchedule == "" {
		c.PruneSchedule = DefaultPruneSchedule
	}
	return c
}
