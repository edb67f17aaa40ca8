package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var toolsJSON bool

// toolsCmd represents the tools command
var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the available research tools and their parameters",
	Long: `Tools prints the registered tool set with each tool's parameter
schema: name, type, whether it is required, allowed values, and bounds.

Example:
  precedent tools
  precedent tools --json`,
	RunE: runTools,
}

func init() {
	rootCmd.AddCommand(toolsCmd)

	toolsCmd.Flags().BoolVar(&toolsJSON, "json", false, "print the schemas as JSON")
}

func runTools(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	registry, err := newRegistry(cfg)
	if err != nil {
		return err
	}

	if toolsJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(registry.Tools())
	}

	for _, t := range registry.Tools() {
		fmt.Printf("%s\n", t.Name)
		fmt.Printf("  %s\n", t.Description)
		for _, f := range t.Fields {
			line := fmt.Sprintf("  --%-16s %s", f.Name, f.Type)
			if f.Required {
				line += "  (required)"
			}
			if len(f.Enum) > 0 {
				line += fmt.Sprintf("  one of %v", f.Enum)
			}
			if f.Bounded {
				line += fmt.Sprintf("  [%g..%g]", f.Min, f.Max)
			}
			fmt.Println(line)
			if f.Help != "" {
				fmt.Printf("      %s\n", f.Help)
			}
		}
		fmt.Println()
	}
	return nil
}
