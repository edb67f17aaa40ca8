package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/lexindia/precedent/internal/tools"
	"github.com/lexindia/precedent/internal/worker"
)

var (
	batchConcurrency int
	batchOutputDir   string
	batchCourt       string
	batchMax         int
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Research multiple queries from a file in parallel",
	Long: `Batch runs a ranked case search for every query in the input file
(one per line, # comments skipped) and writes one JSON result per query.
Worker-level concurrency is safe: request pacing toward the API is
enforced in the client, so parallel queries never exceed the rate limit.

Example:
  precedent batch queries.txt
  precedent batch queries.txt --concurrency 5 --output-dir ./research
  precedent batch queries.txt --court supremecourt`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 3, "number of concurrent research workers")
	batchCmd.Flags().StringVar(&batchOutputDir, "output-dir", "./precedent-results", "output directory for per-query results")
	batchCmd.Flags().StringVar(&batchCourt, "court", "", "court filter applied to every query")
	batchCmd.Flags().IntVar(&batchMax, "max-results", 0, "maximum ranked results per query")
}

func runBatch(cmd *cobra.Command, args []string) error {
	file := args[0]

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := requireToken(cfg); err != nil {
		return err
	}

	queries, err := worker.ReadQueries(file)
	if err != nil {
		return err
	}
	if len(queries) == 0 {
		return fmt.Errorf("no queries found in %s", file)
	}

	if err := os.MkdirAll(batchOutputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Input file:  %s\n", file)
	fmt.Fprintf(os.Stderr, "Queries:     %d\n", len(queries))
	fmt.Fprintf(os.Stderr, "Workers:     %d\n", batchConcurrency)
	fmt.Fprintf(os.Stderr, "Output dir:  %s\n", batchOutputDir)
	fmt.Fprintln(os.Stderr)

	registry, err := newRegistry(cfg)
	if err != nil {
		return err
	}

	shared := tools.Params{}
	if batchCourt != "" {
		shared["court"] = batchCourt
	}
	if batchMax > 0 {
		shared["max_results"] = batchMax
	}

	start := time.Now()
	processor := worker.NewBatchProcessor(registry, batchConcurrency)
	results := processor.Process(queries, shared)

	var failed int
	for i, res := range results {
		if res.GetError() != nil {
			failed++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", res.Query, res.GetError())
		} else if verbose {
			fmt.Fprintf(os.Stderr, "✓ %s\n", res.Query)
		}

		path := filepath.Join(batchOutputDir, fmt.Sprintf("result-%03d.json", i+1))
		raw, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return fmt.Errorf("encode result for %q: %w", res.Query, err)
		}
		if err := os.WriteFile(path, raw, 0644); err != nil {
			return fmt.Errorf("write result for %q: %w", res.Query, err)
		}
	}

	fmt.Fprintln(os.Stderr)
	fmt.Fprintf(os.Stderr, "Done: %d queries, %d failed, %v elapsed\n",
		len(results), failed, time.Since(start).Round(time.Millisecond))

	if failed == len(results) {
		return fmt.Errorf("all %d queries failed", failed)
	}
	return nil
}
