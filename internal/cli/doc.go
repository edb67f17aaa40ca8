package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/lexindia/precedent/internal/tools"
)

var (
	docMaxLength  int
	docMaxCites   int
	docMaxCitedBy int
	docMetadata   bool
	docTimeout    time.Duration
)

// docCmd represents the doc command
var docCmd = &cobra.Command{
	Use:   "doc <doc-id>",
	Short: "Fetch a judgment as clean text",
	Long: `Doc retrieves a judgment by its IndianKanoon document id, strips the
HTML, and truncates long texts at a sentence boundary. Citation lists and
court metadata can be included alongside the body.

Example:
  precedent doc 1596139
  precedent doc 1596139 --max-length 50000 --metadata
  precedent doc 1596139 --max-cites 20 --max-cited-by 20`,
	Args: cobra.ExactArgs(1),
	RunE: runDoc,
}

func init() {
	rootCmd.AddCommand(docCmd)

	docCmd.Flags().IntVar(&docMaxLength, "max-length", 0, "maximum body length in bytes")
	docCmd.Flags().IntVar(&docMaxCites, "max-cites", 0, "maximum outgoing citations to include")
	docCmd.Flags().IntVar(&docMaxCitedBy, "max-cited-by", 0, "maximum incoming citations to include")
	docCmd.Flags().BoolVar(&docMetadata, "metadata", false, "include court metadata")
	docCmd.Flags().DurationVar(&docTimeout, "timeout", time.Minute, "fetch timeout")
}

func runDoc(cmd *cobra.Command, args []string) error {
	docID, err := strconv.Atoi(args[0])
	if err != nil || docID <= 0 {
		return fmt.Errorf("invalid document id %q: expected a positive integer", args[0])
	}

	ctx, cancel := context.WithTimeout(context.Background(), docTimeout)
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

	params := tools.Params{"doc_id": docID}
	if docMaxLength > 0 {
		params["max_length"] = docMaxLength
	}
	if docMaxCites > 0 {
		params["max_cites"] = docMaxCites
	}
	if docMaxCitedBy > 0 {
		params["max_cited_by"] = docMaxCitedBy
	}
	if docMetadata {
		params["include_metadata"] = true
	}

	return printEnvelope(registry.Invoke(ctx, "get_case_document", params))
}
