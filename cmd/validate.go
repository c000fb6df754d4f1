package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/langlint/langlint/internal/config"
)

var (
	validateFormat string
	validateStrict bool
)

// validateCmd represents the validate command.
var validateCmd = &cobra.Command{
	Use:   "validate [path...]",
	Short: "Validate translation-key references against the locale dictionary",
	Long: `Validate translation-key references for various issues including:

- References to keys absent from the default locale's dictionary
- Malformed dotted paths (empty segments from doubled or stray separators)
- Dictionary key names outside the configured character set (--strict)

References are collected from Go call sites of the configured translation
functions and from i18n attributes in HTML templates.

Examples:
  langlint validate                  # Scan configured paths
  langlint validate ./web ./cmd      # Scan specific paths
  langlint validate --strict         # Also enforce key-name rules
  langlint validate --format json    # Output results as JSON`,
	RunE: runValidateCommand,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().
		StringVarP(&validateFormat, "format", "f", "", "Output format (text, json)")
	validateCmd.Flags().
		BoolVar(&validateStrict, "strict", false, "Enforce the configured key-name pattern")
}

func runValidateCommand(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if validateStrict {
		cfg.Keys.Enforce = true
	}

	reg, err := loadRegistry(cfg)
	if err != nil {
		return err
	}

	scanPaths := cfg.Scan.Paths
	if len(args) > 0 {
		scanPaths = args
	}

	summary, err := runValidation(cfg, reg, scanPaths)
	if err != nil {
		return err
	}

	format := validateFormat
	if format == "" {
		format = cfg.Output.Format
	}
	if err := outputSummary(summary, format); err != nil {
		return err
	}

	if !summary.Clean() {
		os.Exit(1)
	}
	return nil
}

func outputSummary(summary *ValidationSummary, format string) error {
	switch format {
	case "json", "yaml":
		return outputMarshalled(summary, format)
	case "text", "":
		printSummaryText(summary)
		return nil
	default:
		return fmt.Errorf("unsupported format: %s (supported: text, json)", format)
	}
}

func printSummaryText(summary *ValidationSummary) {
	fmt.Printf("Checked %d reference(s) against %d key path(s) in locale %q\n",
		summary.References, summary.KnownPaths, summary.Locale)

	for _, finding := range summary.Findings {
		location := finding.File
		if finding.Line > 0 {
			location = fmt.Sprintf("%s:%d", finding.File, finding.Line)
		}
		fmt.Printf("  ✗ %s: %q %s\n", location, finding.Path, finding.Problem)
	}
	for _, violation := range summary.KeyViolations {
		fmt.Printf("  ✗ locale %s: key %q at %q violates the key-name pattern\n",
			violation.Locale, violation.Key, violation.Path)
	}

	if summary.Clean() {
		fmt.Println("No problems found")
	} else {
		fmt.Printf("%d problem(s) found\n", len(summary.Findings)+len(summary.KeyViolations))
	}
}

func outputMarshalled(v interface{}, format string) error {
	if format == "yaml" {
		return outputYAML(v)
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
