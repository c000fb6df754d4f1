package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/langlint/langlint/internal/config"
	"github.com/langlint/langlint/internal/translator"
)

var (
	resolveLocale string
	resolveParams []string
)

// resolveCmd represents the resolve command.
var resolveCmd = &cobra.Command{
	Use:   "resolve <path>",
	Short: "Resolve a key path to its translation text",
	Long: `Look up a dotted key path in a locale dictionary and print the string
it resolves to. Paths that do not resolve, or that stop at a container node
instead of a displayable entry, are reported as errors rather than papered
over with a fallback.

Array-valued entries print one element per line.

Examples:
  langlint resolve menu.items.save
  langlint resolve greeting --locale de
  langlint resolve welcome.body --param name=Ada --param product=langlint`,
	Args: cobra.ExactArgs(1),
	RunE: runResolveCommand,
}

func init() {
	rootCmd.AddCommand(resolveCmd)

	resolveCmd.Flags().StringVar(&resolveLocale, "locale", "", "Locale to resolve in (defaults to the configured default)")
	resolveCmd.Flags().StringArrayVarP(&resolveParams, "param", "p", nil, "Placeholder substitution as name=value (repeatable)")
}

func runResolveCommand(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	reg, err := loadRegistry(cfg)
	if err != nil {
		return err
	}

	tag := resolveLocale
	if tag == "" {
		tag = cfg.Locales.Default
	}

	params, err := parseParams(resolveParams)
	if err != nil {
		return err
	}

	lines, err := translator.New(reg).Lines(tag, args[0], params)
	if err != nil {
		return err
	}
	for _, line := range lines {
		fmt.Println(line)
	}
	return nil
}

func parseParams(pairs []string) (translator.Params, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	params := make(translator.Params, len(pairs))
	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid --param %q, expected name=value", pair)
		}
		params[name] = value
	}
	return params, nil
}
