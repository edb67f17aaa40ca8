package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/lexindia/precedent/internal/memo"
	"github.com/lexindia/precedent/internal/tools"
)

var (
	memoCourt    string
	memoMax      int
	memoMin      float64
	memoCases    int
	memoOut      string
	memoTimeout  time.Duration
	memoLLM      bool
	memoLLMModel string
)

// memoCmd represents the memo command
var memoCmd = &cobra.Command{
	Use:   "memo <question>",
	Short: "Build a research memo for a legal question",
	Long: `Memo researches a legal question end to end: it searches and ranks
the case law, mines the leading authorities for principles, and renders
a structured Markdown memo with citations. With --llm the memo gains an
LLM-written executive summary grounded in the memo's own content.

Example:
  precedent memo "When can anticipatory bail be granted under Section 438 CrPC?"
  precedent memo "scope of Article 21" --court supremecourt --md memo.md
  precedent memo "dying declaration evidentiary value" --llm --llm-model gpt-4o-mini`,
	Args: cobra.MinimumNArgs(1),
	RunE: runMemo,
}

func init() {
	rootCmd.AddCommand(memoCmd)

	memoCmd.Flags().StringVar(&memoCourt, "court", "", "court filter (all, supremecourt, highcourts, district, tribunals)")
	memoCmd.Flags().IntVar(&memoMax, "max-results", 0, "maximum authorities to consider")
	memoCmd.Flags().Float64Var(&memoMin, "threshold", -1, "minimum relevance score")
	memoCmd.Flags().IntVar(&memoCases, "principle-cases", -1, "top cases to mine for principles")
	memoCmd.Flags().StringVar(&memoOut, "md", "", "write the memo Markdown to this path")
	memoCmd.Flags().DurationVar(&memoTimeout, "timeout", 5*time.Minute, "overall memo timeout")

	memoCmd.Flags().BoolVar(&memoLLM, "llm", false, "enable LLM summary generation")
	memoCmd.Flags().StringVar(&memoLLMModel, "llm-model", "gpt-4o-mini", "LLM model name")
}

func runMemo(cmd *cobra.Command, args []string) error {
	question := strings.Join(args, " ")
	ctx, cancel := context.WithTimeout(context.Background(), memoTimeout)
	defer cancel()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := requireToken(cfg); err != nil {
		return err
	}

	if memoLLM {
		cfg.LLM.Provider = "openai"
		cfg.LLM.Model = memoLLMModel
		cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.LLM.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	}

	registry, err := newRegistry(cfg)
	if err != nil {
		return err
	}

	params := tools.Params{"question": question}
	if memoCourt != "" {
		params["court"] = memoCourt
	}
	if memoMax > 0 {
		params["max_results"] = memoMax
	}
	if memoMin >= 0 {
		params["threshold"] = memoMin
	}
	if memoCases >= 0 {
		params["principle_cases"] = memoCases
	}

	resp := registry.Invoke(ctx, "build_research_memo", params)

	if memoOut != "" && resp.OK {
		if m, ok := resp.Data.(*memo.Memo); ok {
			if err := os.WriteFile(memoOut, []byte(m.Markdown), 0644); err != nil {
				return fmt.Errorf("write memo: %w", err)
			}
			if verbose {
				fmt.Fprintf(os.Stderr, "Memo written: %s\n", memoOut)
			}
		}
	}

	return printEnvelope(resp)
}
