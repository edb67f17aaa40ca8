package model

import (
	"testing"
	"time"
)

func TestDefaultConfig_Valid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("Default configuration is invalid: %v", err)
	}
}

func TestDefaultConfig_Values(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.API.RequestDelay != 500*time.Millisecond {
		t.Errorf("RequestDelay = %v", cfg.API.RequestDelay)
	}
	if !cfg.Cache.Enabled || cfg.Cache.TTL() != 30*time.Minute {
		t.Errorf("Cache defaults wrong: %+v", cfg.Cache)
	}
	if cfg.Search.DefaultCourt != "all" || cfg.Search.MaxResults != 10 {
		t.Errorf("Search defaults wrong: %+v", cfg.Search)
	}
}

func TestConfigValidate_Bounds(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"max_results too high", func(c *Config) { c.Search.MaxResults = 101 }},
		{"max_results zero", func(c *Config) { c.Search.MaxResults = 0 }},
		{"cache ttl too long", func(c *Config) { c.Cache.TimeoutMinutes = 2000 }},
		{"bad court", func(c *Config) { c.Search.DefaultCourt = "moon" }},
		{"bad style", func(c *Config) { c.Search.DefaultStyle = "bluebook" }},
		{"negative delay", func(c *Config) { c.API.RequestDelay = -time.Second }},
		{"too many retries", func(c *Config) { c.API.MaxRetries = 11 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Expected validation error")
			}
		})
	}
}

func TestValidStyle(t *testing.T) {
	for _, s := range CitationStyles {
		if !ValidStyle(string(s)) {
			t.Errorf("Style %s should be valid", s)
		}
	}
	if ValidStyle("bluebook") {
		t.Error("bluebook is not a supported style")
	}
}

func TestCourtFilters_AllMapsToEmpty(t *testing.T) {
	if CourtFilters["all"] != "" {
		t.Errorf("Court filter 'all' must not constrain doctypes, got %q", CourtFilters["all"])
	}
	if CourtFilters["supremecourt"] != "supremecourt" {
		t.Errorf("supremecourt filter wrong: %q", CourtFilters["supremecourt"])
	}
}
