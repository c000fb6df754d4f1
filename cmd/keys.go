package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	yaml "gopkg.in/yaml.v3"

	"github.com/langlint/langlint/internal/config"
)

var keysFormat string

// keysCmd represents the keys command.
var keysCmd = &cobra.Command{
	Use:   "keys [locale]",
	Short: "List the derived key paths of a locale dictionary",
	Long: `Derive and print every dotted key path addressable in a locale's
dictionary, one per reachable node: branches and leaves both yield a path,
array-valued entries yield their own path without indexing into elements.

Defaults to the configured default locale.

Examples:
  langlint keys                  # Paths of the default locale
  langlint keys de               # Paths of the German dictionary
  langlint keys --format json    # Output as JSON
  langlint keys --format yaml    # Output as YAML`,
	Args: cobra.MaximumNArgs(1),
	RunE: runKeysCommand,
}

func init() {
	rootCmd.AddCommand(keysCmd)

	keysCmd.Flags().StringVarP(&keysFormat, "format", "f", "", "Output format (text, json, yaml)")
}

type keysOutput struct {
	Locale string   `json:"locale" yaml:"locale"`
	Count  int      `json:"count" yaml:"count"`
	Paths  []string `json:"paths" yaml:"paths"`
}

func runKeysCommand(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	reg, err := loadRegistry(cfg)
	if err != nil {
		return err
	}

	tag := cfg.Locales.Default
	if len(args) == 1 {
		tag = args[0]
	}

	info, ok := reg.Get(tag)
	if !ok {
		return fmt.Errorf("locale %q is not present in %s", tag, cfg.Locales.Dir)
	}

	out := keysOutput{
		Locale: info.Tag,
		Count:  len(info.Paths),
		Paths:  info.Paths.Sorted(),
	}

	format := keysFormat
	if format == "" {
		format = cfg.Output.Format
	}
	switch format {
	case "json", "yaml":
		return outputMarshalled(out, format)
	case "text", "":
		for _, path := range out.Paths {
			fmt.Println(path)
		}
		return nil
	default:
		return fmt.Errorf("unsupported format: %s (supported: text, json, yaml)", format)
	}
}

func outputYAML(v interface{}) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	fmt.Print(string(data))
	return nil
}
