package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/lexindia/precedent/internal/tools"
)

var (
	prMaxFragments  int
	prContextLength int
	prTimeout       time.Duration
)

// principlesCmd represents the principles command
var principlesCmd = &cobra.Command{
	Use:   "principles <doc-id> <query>",
	Short: "Extract legal principles from a judgment",
	Long: `Principles mines a judgment for passages relevant to a legal issue
and classifies each by precedential weight: ratio decidendi, obiter
dictum, statutory interpretation, and so on, with a confidence score.

Example:
  precedent principles 1596139 "basic structure doctrine"
  precedent principles 1596139 "anticipatory bail conditions" --max-fragments 5`,
	Args: cobra.MinimumNArgs(2),
	RunE: runPrinciples,
}

func init() {
	rootCmd.AddCommand(principlesCmd)

	principlesCmd.Flags().IntVar(&prMaxFragments, "max-fragments", 0, "maximum fragments to return")
	principlesCmd.Flags().IntVar(&prContextLength, "context-length", 0, "surrounding context per fragment, in bytes")
	principlesCmd.Flags().DurationVar(&prTimeout, "timeout", 2*time.Minute, "extraction timeout")
}

func runPrinciples(cmd *cobra.Command, args []string) error {
	docID, err := strconv.Atoi(args[0])
	if err != nil || docID <= 0 {
		return fmt.Errorf("invalid document id %q: expected a positive integer", args[0])
	}
	query := strings.Join(args[1:], " ")

	ctx, cancel := context.WithTimeout(context.Background(), prTimeout)
	defer cancel()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := requireToken(cfg); err != nil {
		return err
	}

	registry, err := newRegistry(cfg)
	if err != nil {
		return err
	}

	params := tools.Params{"doc_id": docID, "query": query}
	if prMaxFragments > 0 {
		params["max_fragments"] = prMaxFragments
	}
	if prContextLength > 0 {
		params["context_length"] = prContextLength
	}

	return printEnvelope(registry.Invoke(ctx, "extract_legal_principles", params))
}
