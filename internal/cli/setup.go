package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/lexindia/precedent/internal/cache"
	"github.com/lexindia/precedent/internal/kanoon"
	"github.com/lexindia/precedent/internal/memo"
	"github.com/lexindia/precedent/internal/model"
	"github.com/lexindia/precedent/internal/tools"
)

// loadConfig assembles the effective configuration: defaults, then config
// file and environment through viper, then flag-level overrides done by
// each command.
func loadConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parse configuration: %w", err)
	}

	// The token also travels under the upstream's conventional variable.
	if cfg.API.Token == "" {
		cfg.API.Token = os.Getenv("IKANOON_API_TOKEN")
	}
	if cfg.LLM.Provider != "" && cfg.LLM.APIKey == "" {
		cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
	}
	if noCache {
		cfg.Cache.Enabled = false
	}
	if cacheDir != "" {
		cfg.Cache.Dir = cacheDir
	}
	cfg.Verbose = cfg.Verbose || verbose

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// newRegistry builds the tool registry with its cache, API client, and
// optional LLM provider.
func newRegistry(cfg *model.Config) (*tools.Registry, error) {
	var store cache.Cache
	if cfg.Cache.Enabled {
		if cfg.Cache.Dir != "" {
			store = cache.NewLayeredCache(cfg.Cache.TTL(), cfg.Cache.Dir, cfg.Cache.TTL())
		} else {
			store = cache.NewMemoryCache(cfg.Cache.TTL(), 10*cfg.Cache.TTL())
		}
	}

	client := kanoon.NewClient(cfg, kanoon.WithCache(store, cfg.Cache.TTL()))

	provider, err := memo.NewProvider(cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("configure llm provider: %w", err)
	}

	return tools.NewRegistry(cfg, client, provider), nil
}

// requireToken guards the commands that reach the network.
func requireToken(cfg *model.Config) error {
	if cfg.API.Token == "" {
		return fmt.Errorf("no API token configured: set api.token in the config file, or the PRECEDENT_API_TOKEN or IKANOON_API_TOKEN environment variable")
	}
	return nil
}

// printEnvelope writes a tool response as indented JSON on stdout.
func printEnvelope(resp *model.ToolResponse) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(resp); err != nil {
		return fmt.Errorf("encode response: %w", err)
	}
	if !resp.OK {
		return fmt.Errorf("%s: %s", resp.Error.Kind, resp.Error.Message)
	}
	return nil
}
