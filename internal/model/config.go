package model

import (
	"fmt"
	"time"
)

// Config is the full runtime configuration. Populated from (highest to
// lowest priority) CLI flags, PRECEDENT_* environment variables, the config
// file, and DefaultConfig.
type Config struct {
	API     APIConfig    `yaml:"api" mapstructure:"api"`
	Cache   CacheConfig  `yaml:"cache" mapstructure:"cache"`
	Search  SearchConfig `yaml:"search" mapstructure:"search"`
	HTTP    HTTPConfig   `yaml:"http" mapstructure:"http"`
	LLM     LLMConfig    `yaml:"llm" mapstructure:"llm"`
	Verbose bool         `yaml:"verbose" mapstructure:"verbose"`
}

// APIConfig configures the IndianKanoon client.
type APIConfig struct {
	// Token is the API key. Required for network tools; never logged.
	Token string `yaml:"token,omitempty" mapstructure:"token"`
	// RequestDelay is the minimum spacing between physical API calls.
	RequestDelay time.Duration `yaml:"request_delay" mapstructure:"request_delay"`
	// MaxRetries bounds retry attempts for rate-limit and network failures.
	MaxRetries int `yaml:"max_retries" mapstructure:"max_retries"`
}

// CacheConfig configures the response cache.
type CacheConfig struct {
	Enabled        bool   `yaml:"enabled" mapstructure:"enabled"`
	TimeoutMinutes int    `yaml:"timeout_minutes" mapstructure:"timeout_minutes"`
	Dir            string `yaml:"dir,omitempty" mapstructure:"dir"` // Non-empty enables the disk layer
}

// TTL returns the cache timeout as a duration.
func (c CacheConfig) TTL() time.Duration {
	return time.Duration(c.TimeoutMinutes) * time.Minute
}

// SearchConfig holds defaults for search-shaped tools.
type SearchConfig struct {
	DefaultCourt string  `yaml:"default_court,omitempty" mapstructure:"default_court"`
	MaxResults   int     `yaml:"max_results" mapstructure:"max_results"`
	Threshold    float64 `yaml:"threshold" mapstructure:"threshold"`
	DefaultStyle string  `yaml:"default_style" mapstructure:"default_style"`
	MinResults   int     `yaml:"min_results" mapstructure:"min_results"` // Below this, variant searches fire
}

// HTTPConfig configures outbound transport behavior.
type HTTPConfig struct {
	Timeout      time.Duration `yaml:"timeout" mapstructure:"timeout"`
	MaxBodyBytes int64         `yaml:"max_body_bytes" mapstructure:"max_body_bytes"`
	HTTPProxy    string        `yaml:"http_proxy,omitempty" mapstructure:"http_proxy"`
	HTTPSProxy   string        `yaml:"https_proxy,omitempty" mapstructure:"https_proxy"`
	NoProxy      string        `yaml:"no_proxy,omitempty" mapstructure:"no_proxy"`
}

// LLMConfig configures the optional memo summarizer. Disabled unless a
// provider is set; never affects deterministic tool output.
type LLMConfig struct {
	Provider  string `yaml:"provider,omitempty" mapstructure:"provider"`
	Model     string `yaml:"model,omitempty" mapstructure:"model"`
	APIKey    string `yaml:"-" mapstructure:"-"` // Environment only, never written to file
	BaseURL   string `yaml:"base_url,omitempty" mapstructure:"base_url"`
	MaxTokens int    `yaml:"max_tokens,omitempty" mapstructure:"max_tokens"`
}

// CourtFilters maps accepted court-filter codes to the upstream doctypes
// parameter values.
var CourtFilters = map[string]string{
	"all":          "",
	"supremecourt": "supremecourt",
	"highcourts":   "highcourts",
	"tribunals":    "tribunals",
	"district":     "district",
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			RequestDelay: 500 * time.Millisecond,
			MaxRetries:   3,
		},
		Cache: CacheConfig{
			Enabled:        true,
			TimeoutMinutes: 30,
		},
		Search: SearchConfig{
			DefaultCourt: "all",
			MaxResults:   10,
			Threshold:    1.0,
			DefaultStyle: "scc",
			MinResults:   3,
		},
		HTTP: HTTPConfig{
			Timeout:      30 * time.Second,
			MaxBodyBytes: 4_000_000,
		},
		LLM: LLMConfig{
			MaxTokens: 1000,
		},
	}
}

// Validate checks bounds and enumerations before any tool executes.
func (c *Config) Validate() error {
	if c.Search.MaxResults < 1 || c.Search.MaxResults > 100 {
		return fmt.Errorf("search.max_results must be between 1 and 100, got %d", c.Search.MaxResults)
	}
	if c.Cache.TimeoutMinutes < 1 || c.Cache.TimeoutMinutes > 1440 {
		return fmt.Errorf("cache.timeout_minutes must be between 1 and 1440, got %d", c.Cache.TimeoutMinutes)
	}
	if _, ok := CourtFilters[c.Search.DefaultCourt]; !ok {
		return fmt.Errorf("search.default_court must be one of all, supremecourt, highcourts, tribunals, district; got %q", c.Search.DefaultCourt)
	}
	if !ValidStyle(c.Search.DefaultStyle) {
		return fmt.Errorf("search.default_style must be one of scc, air, neutral, indiankanoon; got %q", c.Search.DefaultStyle)
	}
	if c.API.MaxRetries < 0 || c.API.MaxRetries > 10 {
		return fmt.Errorf("api.max_retries must be between 0 and 10, got %d", c.API.MaxRetries)
	}
	if c.API.RequestDelay < 0 {
		return fmt.Errorf("api.request_delay must not be negative")
	}
	return nil
}
