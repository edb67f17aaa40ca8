package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/lexindia/precedent/internal/tools"
)

var (
	citeTitle      string
	citePartyA     string
	citePartyB     string
	citeCourt      string
	citeYear       int
	citeVolume     int
	citePage       int
	citeCaseNumber string
	citeDocID      int
	citeParagraph  int

	citeFormatStyle   string
	citeValidateStyle string
)

// citeCmd represents the cite command
var citeCmd = &cobra.Command{
	Use:   "cite",
	Short: "Format and validate Indian legal citations",
	Long: `Cite works with the four citation styles used in Indian legal
writing: SCC, AIR, neutral (e.g. 2019 INSC 123), and IndianKanoon
document references. Citations produced by format always pass validate.`,
}

var citeFormatCmd = &cobra.Command{
	Use:   "format",
	Short: "Format a citation in one or all styles",
	Long: `Format builds full, short, in-text, footnote, and bibliography
renderings of a citation from its elements.

Example:
  precedent cite format --title "Kesavananda Bharati v. State of Kerala" --year 1973 --volume 4 --page 225 --style scc
  precedent cite format --party-a "Maneka Gandhi" --party-b "Union of India" --year 1978 --court SC --style all`,
	RunE: runCiteFormat,
}

var citeValidateCmd = &cobra.Command{
	Use:   "validate <citation>",
	Short: "Validate a citation against a style",
	Long: `Validate checks a citation string against a style's format and
suggests a correction for common typos (SSC for SCC, AER for AIR).

Example:
  precedent cite validate "(1973) 4 SCC 225" --style scc
  precedent cite validate "AIR 1978 SC 597" --style air`,
	Args: cobra.ExactArgs(1),
	RunE: runCiteValidate,
}

func init() {
	rootCmd.AddCommand(citeCmd)
	citeCmd.AddCommand(citeFormatCmd)
	citeCmd.AddCommand(citeValidateCmd)

	citeFormatCmd.Flags().StringVar(&citeTitle, "title", "", "case title (split on the versus marker)")
	citeFormatCmd.Flags().StringVar(&citePartyA, "party-a", "", "first party name")
	citeFormatCmd.Flags().StringVar(&citePartyB, "party-b", "", "second party name")
	citeFormatCmd.Flags().StringVar(&citeCourt, "court", "", "court abbreviation (SC, Bom, Del, ...)")
	citeFormatCmd.Flags().IntVar(&citeYear, "year", 0, "decision year (required)")
	citeFormatCmd.Flags().IntVar(&citeVolume, "volume", 0, "reporter volume")
	citeFormatCmd.Flags().IntVar(&citePage, "page", 0, "reporter page")
	citeFormatCmd.Flags().StringVar(&citeCaseNumber, "case-number", "", "neutral citation serial")
	citeFormatCmd.Flags().IntVar(&citeDocID, "doc-id", 0, "IndianKanoon document id")
	citeFormatCmd.Flags().IntVar(&citeParagraph, "paragraph", 0, "pinpoint paragraph")
	citeFormatCmd.Flags().StringVar(&citeFormatStyle, "style", "", "citation style (scc, air, neutral, indiankanoon, all)")
	_ = citeFormatCmd.MarkFlagRequired("year")

	citeValidateCmd.Flags().StringVar(&citeValidateStyle, "style", "scc", "citation style to validate against")
}

func runCiteFormat(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	registry, err := newRegistry(cfg)
	if err != nil {
		return err
	}

	params := tools.Params{"year": citeYear}
	if citeTitle != "" {
		params["title"] = citeTitle
	}
	if citePartyA != "" {
		params["party_a"] = citePartyA
	}
	if citePartyB != "" {
		params["party_b"] = citePartyB
	}
	if citeCourt != "" {
		params["court"] = citeCourt
	}
	if citeVolume > 0 {
		params["volume"] = citeVolume
	}
	if citePage > 0 {
		params["page"] = citePage
	}
	if citeCaseNumber != "" {
		params["case_number"] = citeCaseNumber
	}
	if citeDocID > 0 {
		params["doc_id"] = citeDocID
	}
	if citeParagraph > 0 {
		params["paragraph"] = citeParagraph
	}
	if citeFormatStyle != "" {
		params["style"] = citeFormatStyle
	}

	return printEnvelope(registry.Invoke(context.Background(), "format_citation", params))
}

func runCiteValidate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	registry, err := newRegistry(cfg)
	if err != nil {
		return err
	}

	params := tools.Params{
		"citation": args[0],
		"style":    citeValidateStyle,
	}
	return printEnvelope(registry.Invoke(context.Background(), "validate_citation", params))
}
