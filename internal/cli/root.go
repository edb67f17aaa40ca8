package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lexindia/precedent/internal/model"
)

var (
	cfgFile  string
	verbose  bool
	noCache  bool
	cacheDir string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "precedent",
	Short: "Precedent - Indian case-law research from the command line",
	Long: `Precedent adapts the IndianKanoon legal-database API into a set of
typed research tools: ranked case search, judgment retrieval,
legal-principle extraction, citation formatting and validation, and
research memos.

Searches are cached, paced to respect the API's rate limits, and retried
with backoff. Results are ranked by court hierarchy, recency, citation
count, and how well they match the query.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("precedent v0.1.0")
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.precedent/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&noCache, "no-cache", false, "disable the response cache (force fresh fetches)")
	rootCmd.PersistentFlags().StringVar(&cacheDir, "cache-dir", "", "add a disk cache layer at this directory")

	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	rootCmd.AddCommand(versionCmd)
}

// initConfig reads in config file and ENV variables
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			return
		}

		viper.AddConfigPath(home + "/.precedent")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// PRECEDENT_API_TOKEN -> api.token, etc. AutomaticEnv only resolves
	// keys viper already knows, so every key is registered first.
	registerConfigKeys()
	viper.SetEnvPrefix("PRECEDENT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

// registerConfigKeys seeds viper with every config key and its built-in
// default. Without this, environment-only overrides never reach Unmarshal.
func registerConfigKeys() {
	d := model.DefaultConfig()

	viper.SetDefault("api.token", "")
	viper.SetDefault("api.request_delay", d.API.RequestDelay)
	viper.SetDefault("api.max_retries", d.API.MaxRetries)

	viper.SetDefault("cache.enabled", d.Cache.Enabled)
	viper.SetDefault("cache.timeout_minutes", d.Cache.TimeoutMinutes)
	viper.SetDefault("cache.dir", "")

	viper.SetDefault("search.default_court", d.Search.DefaultCourt)
	viper.SetDefault("search.max_results", d.Search.MaxResults)
	viper.SetDefault("search.threshold", d.Search.Threshold)
	viper.SetDefault("search.default_style", d.Search.DefaultStyle)
	viper.SetDefault("search.min_results", d.Search.MinResults)

	viper.SetDefault("http.timeout", d.HTTP.Timeout)
	viper.SetDefault("http.max_body_bytes", d.HTTP.MaxBodyBytes)
	viper.SetDefault("http.http_proxy", "")
	viper.SetDefault("http.https_proxy", "")
	viper.SetDefault("http.no_proxy", "")

	viper.SetDefault("llm.provider", "")
	viper.SetDefault("llm.model", "")
	viper.SetDefault("llm.base_url", "")
	viper.SetDefault("llm.max_tokens", d.LLM.MaxTokens)

	viper.SetDefault("verbose", false)
}
