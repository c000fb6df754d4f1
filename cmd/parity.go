package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/langlint/langlint/internal/config"
	"github.com/langlint/langlint/internal/dictionary"
)

var parityFormat string

// parityCmd represents the parity command.
var parityCmd = &cobra.Command{
	Use:   "parity",
	Short: "Check that all locales expose an identical key structure",
	Long: `Derive the key-path vocabulary of every loaded locale and compare each
pair. A path present in one locale's dictionary and missing from another's is
reported as a discrepancy; the check always completes and reports everything
it found.

Examples:
  langlint parity                  # Compare all locales in the locales dir
  langlint parity --format json    # Output discrepancies as JSON`,
	RunE: runParityCommand,
}

func init() {
	rootCmd.AddCommand(parityCmd)

	parityCmd.Flags().StringVarP(&parityFormat, "format", "f", "", "Output format (text, json)")
}

type parityOutput struct {
	Locales       []string                 `json:"locales"`
	Discrepancies []dictionary.Discrepancy `json:"discrepancies"`
}

func runParityCommand(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	reg, err := loadRegistry(cfg)
	if err != nil {
		return err
	}
	if reg.Count() < 2 {
		return fmt.Errorf("parity needs at least two locales, found %d in %s", reg.Count(), cfg.Locales.Dir)
	}

	findings, err := dictionary.CheckParity(reg.Dictionaries())
	if err != nil {
		return err
	}

	tags := make([]string, 0, reg.Count())
	for tag := range reg.GetAll() {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	out := parityOutput{Locales: tags, Discrepancies: findings}

	format := parityFormat
	if format == "" {
		format = cfg.Output.Format
	}
	switch format {
	case "json", "yaml":
		if err := outputMarshalled(out, format); err != nil {
			return err
		}
	case "text", "":
		printParityText(out)
	default:
		return fmt.Errorf("unsupported format: %s (supported: text, json)", format)
	}

	if len(findings) > 0 {
		os.Exit(1)
	}
	return nil
}

func printParityText(out parityOutput) {
	fmt.Printf("Compared %d locale(s)\n", len(out.Locales))

	if len(out.Discrepancies) == 0 {
		fmt.Println("All locales expose an identical key structure")
		return
	}

	for _, d := range out.Discrepancies {
		fmt.Printf("  ✗ %q present in %s, missing in %s\n", d.Path, d.PresentIn, d.MissingIn)
	}
	fmt.Printf("%d discrepancy(ies) found\n", len(out.Discrepancies))
}
