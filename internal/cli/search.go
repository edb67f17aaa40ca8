package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/lexindia/precedent/internal/tools"
)

var (
	searchCourt    string
	searchMax      int
	searchPage     int
	searchMin      float64
	searchFromDate string
	searchToDate   string
	searchTimeout  time.Duration
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search Indian case law with relevance ranking",
	Long: `Search runs a free-text query against IndianKanoon and ranks the
results by court hierarchy, recency, citation count, and query match.
Statutory section references in the query (e.g. "Section 302 IPC") are
validated and turned into focused search variants.

Example:
  precedent search "anticipatory bail under Section 438 CrPC"
  precedent search "Section 302 IPC murder" --court supremecourt
  precedent search "freedom of speech" --from-date 01-01-2015 --max-results 20`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().StringVar(&searchCourt, "court", "", "court filter (all, supremecourt, highcourts, district, tribunals)")
	searchCmd.Flags().IntVar(&searchMax, "max-results", 0, "maximum number of ranked results")
	searchCmd.Flags().IntVar(&searchPage, "page", 0, "result page (zero-based)")
	searchCmd.Flags().Float64Var(&searchMin, "threshold", -1, "minimum relevance score")
	searchCmd.Flags().StringVar(&searchFromDate, "from-date", "", "earliest decision date (DD-MM-YYYY)")
	searchCmd.Flags().StringVar(&searchToDate, "to-date", "", "latest decision date (DD-MM-YYYY)")
	searchCmd.Flags().DurationVar(&searchTimeout, "timeout", 2*time.Minute, "overall search timeout")
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")
	ctx, cancel := context.WithTimeout(context.Background(), searchTimeout)
	defer cancel()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := requireToken(cfg); err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Searching: %s\n", query)
		fmt.Fprintf(os.Stderr, "Court: %s\n", firstNonEmpty(searchCourt, cfg.Search.DefaultCourt))
		fmt.Fprintln(os.Stderr)
	}

	registry, err := newRegistry(cfg)
	if err != nil {
		return err
	}

	params := tools.Params{"query": query}
	if searchCourt != "" {
		params["court"] = searchCourt
	}
	if searchMax > 0 {
		params["max_results"] = searchMax
	}
	if searchPage > 0 {
		params["page"] = searchPage
	}
	if searchMin >= 0 {
		params["threshold"] = searchMin
	}
	if searchFromDate != "" {
		params["from_date"] = searchFromDate
	}
	if searchToDate != "" {
		params["to_date"] = searchToDate
	}

	return printEnvelope(registry.Invoke(ctx, "search_cases", params))
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
