package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

// resetViper gives each test a clean viper instance. initConfig re-registers
// the config keys, so tests call it after setting cfgFile and environment.
func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
}

func TestLoadConfig_EnvOverridesDefaults(t *testing.T) {
	resetViper(t)
	cfgFile = filepath.Join(t.TempDir(), "absent.yaml")
	t.Cleanup(func() { cfgFile = "" })

	t.Setenv("PRECEDENT_API_TOKEN", "from-env")
	t.Setenv("PRECEDENT_SEARCH_MAX_RESULTS", "25")

	initConfig()
	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}
	if cfg.API.Token != "from-env" {
		t.Errorf("PRECEDENT_API_TOKEN not applied: token = %q", cfg.API.Token)
	}
	if cfg.Search.MaxResults != 25 {
		t.Errorf("PRECEDENT_SEARCH_MAX_RESULTS not applied: max_results = %d", cfg.Search.MaxResults)
	}
}

func TestLoadConfig_EnvBeatsFileBeatsDefaults(t *testing.T) {
	resetViper(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "api:\n  token: from-file\nsearch:\n  max_results: 50\n  default_court: supremecourt\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	cfgFile = path
	t.Cleanup(func() { cfgFile = "" })

	t.Setenv("PRECEDENT_SEARCH_MAX_RESULTS", "25")

	initConfig()
	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}
	if cfg.Search.MaxResults != 25 {
		t.Errorf("Environment should beat the file: max_results = %d", cfg.Search.MaxResults)
	}
	if cfg.API.Token != "from-file" {
		t.Errorf("File should beat the defaults: token = %q", cfg.API.Token)
	}
	if cfg.Search.DefaultCourt != "supremecourt" {
		t.Errorf("File value not applied: default_court = %q", cfg.Search.DefaultCourt)
	}
	if cfg.Search.Threshold != 1.0 {
		t.Errorf("Untouched default changed: threshold = %v", cfg.Search.Threshold)
	}
}

func TestLoadConfig_TokenFallbackVariable(t *testing.T) {
	resetViper(t)
	cfgFile = filepath.Join(t.TempDir(), "absent.yaml")
	t.Cleanup(func() { cfgFile = "" })

	t.Setenv("PRECEDENT_API_TOKEN", "")
	t.Setenv("IKANOON_API_TOKEN", "fallback-token")

	initConfig()
	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}
	if cfg.API.Token != "fallback-token" {
		t.Errorf("IKANOON_API_TOKEN fallback not applied: token = %q", cfg.API.Token)
	}
}

func TestCiteStyleFlagsAreIndependent(t *testing.T) {
	format := citeFormatCmd.Flags().Lookup("style")
	validate := citeValidateCmd.Flags().Lookup("style")
	if format == nil || validate == nil {
		t.Fatal("Both cite subcommands must register a style flag")
	}
	if format.DefValue != "" {
		t.Errorf("cite format --style must default empty so the configured style applies, got %q", format.DefValue)
	}
	if validate.DefValue != "scc" {
		t.Errorf("cite validate --style must default to scc, got %q", validate.DefValue)
	}

	if err := validate.Value.Set("air"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	t.Cleanup(func() {
		_ = validate.Value.Set("scc")
		citeValidateStyle = "scc"
	})
	if citeFormatStyle != "" {
		t.Errorf("cite validate --style leaked into cite format: %q", citeFormatStyle)
	}
}
