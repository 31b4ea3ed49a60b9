package agents

const (
	DefaultModel             = "gpt-4o-mini"
	DefaultTimeoutSecs       = 120
	DefaultMaxResearchTokens = 24000
)

// Config holds the LLM connection settings for the writing crew.
type Config struct {
	APIKey            string `yaml:"api_key"`
	BaseURL           string `yaml:"base_url"`
	Model             string `yaml:"model"`
	TimeoutSecs       int    `yaml:"timeout_seconds"`
	MaxResearchTokens int    `yaml:"max_research_tokens"`
}

func (c *Config) WithDefaults() *Config {
	if c == nil {
		c = &Config{}
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.TimeoutSecs <= 0 {
		c.TimeoutSecs = DefaultTimeoutSecs
	}
	if c.MaxResearchTokens <= 0 {
		c.MaxResearchTokens = DefaultMaxResearchTokens
	}
	return c
}
