package webresearch

const (
	DefaultSerperBaseURL     = "https://google.serper.dev/search"
	DefaultSearchTimeoutSecs = 15
	DefaultFetchTimeoutSecs  = 10
	MaxSearchResults         = 5
	DefaultMaxBodyBytes      = 10 * 1024 * 1024
)

// Config controls the search provider and page fetcher.
type Config struct {
	Serper SerperConfig `yaml:"serper"`
	Fetch  FetchConfig  `yaml:"fetch"`
}

// SerperConfig holds credentials and limits for the serper.dev search API.
type SerperConfig struct {
	APIKey      string `yaml:"api_key"`
	BaseURL     string `yaml:"base_url"`
	TimeoutSecs int    `yaml:"timeout_seconds"`
	MaxResults  int    `yaml:"max_results"`
}

// FetchConfig bounds individual page downloads.
type FetchConfig struct {
	TimeoutSecs  int   `yaml:"timeout_seconds"`
	MaxBodyBytes int64 `yaml:"max_body_bytes"`
}

func (c *Config) WithDefaults() *Config {
	if c == nil {
		c = &Config{}
	}
	c.Serper = c.Serper.withDefaults()
	c.Fetch = c.Fetch.withDefaults()
	return c
}

func (c SerperConfig) withDefaults() SerperConfig {
	if c.BaseURL == "" {
		c.BaseURL = DefaultSerperBaseURL
	}
	if c.TimeoutSecs <= 0 {
		c.TimeoutSecs = DefaultSearchTimeoutSecs
	}
	if c.MaxResults <= 0 || c.MaxResults > MaxSearchResults {
		c.MaxResults = MaxSearchResults
	}
	return c
}

func (c FetchConfig) withDefaults() FetchConfig {
	if c.TimeoutSecs <= 0 {
		c.TimeoutSecs = DefaultFetchTimeoutSecs
	}
	if c.MaxBodyBytes <= 0 {
		c.MaxBodyBytes = DefaultMaxBodyBytes
	}
	return c
}
