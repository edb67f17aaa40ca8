package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage Precedent configuration",
	Long: `Manage Precedent configuration files and settings.

Configuration hierarchy (highest to lowest priority):
1. CLI flags
2. Environment variables (PRECEDENT_*, IKANOON_API_TOKEN, OPENAI_API_KEY)
3. Config file (~/.precedent/config.yaml)
4. Defaults`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		if configFile := viper.ConfigFileUsed(); configFile != "" {
			fmt.Fprintf(os.Stderr, "Configuration file: %s\n\n", configFile)
		} else {
			fmt.Fprintf(os.Stderr, "No configuration file found (using defaults)\n\n")
		}

		// The token never leaves the process, not even masked.
		cfg.API.Token = ""

		yamlData, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("marshal config: %w", err)
		}
		fmt.Println(string(yamlData))

		fmt.Println("Configuration hierarchy (highest to lowest priority):")
		fmt.Println("  1. CLI flags")
		fmt.Println("  2. Environment variables (PRECEDENT_*, IKANOON_API_TOKEN, OPENAI_API_KEY)")
		fmt.Println("  3. Config file (~/.precedent/config.yaml)")
		fmt.Println("  4. Defaults")
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a default configuration file",
	Long:  `Create a default configuration file at ~/.precedent/config.yaml with the available options documented.`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("find home directory: %w", err)
		}

		configDir := home + "/.precedent"
		configPath := configDir + "/config.yaml"

		if _, err := os.Stat(configPath); err == nil {
			return fmt.Errorf("config file already exists: %s\nUse 'precedent config show' to view it, or delete it first to recreate", configPath)
		}

		if err := os.MkdirAll(configDir, 0755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}

		f, err := os.Create(configPath)
		if err != nil {
			return fmt.Errorf("create config file: %w", err)
		}
		defer func() {
			if closeErr := f.Close(); closeErr != nil && err == nil {
				err = fmt.Errorf("close config file: %w", closeErr)
			}
		}()

		printf := func(format string, a ...interface{}) {
			if err != nil {
				return
			}
			_, err = fmt.Fprintf(f, format, a...)
		}

		printf("# Precedent Configuration File\n")
		printf("#\n")
		printf("# Configuration hierarchy (highest to lowest priority):\n")
		printf("#   1. CLI flags\n")
		printf("#   2. Environment variables (PRECEDENT_*)\n")
		printf("#   3. This config file\n")
		printf("#   4. Built-in defaults\n\n")

		printf("api:\n")
		printf("  # IndianKanoon API token. Prefer the IKANOON_API_TOKEN or\n")
		printf("  # PRECEDENT_API_TOKEN environment variable over storing it here.\n")
		printf("  # token: \"\"\n")
		printf("  request_delay: 500ms    # minimum spacing between API calls\n")
		printf("  max_retries: 3          # retries on rate-limit and network errors\n\n")

		printf("cache:\n")
		printf("  enabled: true\n")
		printf("  timeout_minutes: 30     # response TTL\n")
		printf("  # dir: ~/.precedent/cache   # uncomment to add a disk layer\n\n")

		printf("search:\n")
		printf("  default_court: all      # all, supremecourt, highcourts, district, tribunals\n")
		printf("  max_results: 10\n")
		printf("  threshold: 1.0          # minimum relevance score\n")
		printf("  default_style: scc      # scc, air, neutral, indiankanoon\n")
		printf("  min_results: 3          # below this, variant searches fire\n\n")

		printf("http:\n")
		printf("  timeout: 30s\n")
		printf("  max_body_bytes: 4000000\n")
		printf("  # http_proxy: \"\"\n")
		printf("  # https_proxy: \"\"\n")
		printf("  # no_proxy: \"\"\n\n")

		printf("llm:\n")
		printf("  # provider: openai      # enables memo summaries; key from OPENAI_API_KEY\n")
		printf("  # model: gpt-4o-mini\n")
		printf("  max_tokens: 1000\n")

		if err != nil {
			return fmt.Errorf("write config file: %w", err)
		}

		fmt.Printf("Configuration file created: %s\n", configPath)
		fmt.Println("Edit it to customize, or set PRECEDENT_* environment variables.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
}
