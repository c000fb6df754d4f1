// Package cmd provides the command-line interface for langlint with
// configuration management supporting multiple configuration sources.
//
// Configuration System:
//
//	The CLI supports flexible configuration through multiple sources with clear precedence:
//	1. Command-line flags (--config, --locales, etc.) - highest priority
//	2. LANGLINT_CONFIG_FILE environment variable - custom config file path
//	3. Individual environment variables (LANGLINT_LOCALES_DIR, etc.)
//	4. Configuration files (.langlint.yml) - lowest priority
//
// Environment Variables:
//
//	LANGLINT_CONFIG_FILE: Path to custom configuration file
//	LANGLINT_LOCALES_DIR: Override locales directory
//	LANGLINT_LOCALES_DEFAULT: Override default locale
//	LANGLINT_OUTPUT_FORMAT: Override output format
//	And more following the LANGLINT_<SECTION>_<OPTION> pattern
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "langlint",
	Short: "A linter for nested translation dictionaries",
	Long: `Langlint derives the complete dotted key-path vocabulary of your locale
files, validates every translation-key reference in your codebase against it,
and checks that all locales expose an identical key structure.

Key Features:
  • Key-path derivation from YAML/JSON locale files
  • Reference validation for Go call sites and HTML i18n attributes
  • Cross-locale parity checking
  • Watch mode for continuous validation

Quick Start:
  langlint keys                   List the derived key paths
  langlint validate               Check codebase references against the dictionary
  langlint parity                 Compare all locales' key structures
  langlint resolve menu.save      Look up one key's translation text
  langlint watch                  Re-validate on file changes`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Accept snake_case spellings of multi-word flags
	rootCmd.PersistentFlags().SetNormalizeFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .langlint.yml, can also use LANGLINT_CONFIG_FILE env var)")
	rootCmd.PersistentFlags().String("locales", "", "locales directory (overrides config)")
	rootCmd.PersistentFlags().StringP("log-level", "l", "info", "log level (debug, info, warn, error)")
	viper.BindPFlag("locales.dir", rootCmd.PersistentFlags().Lookup("locales"))
	viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
}

// initConfig initializes the configuration system with support for multiple
// config sources.
//
// Configuration Loading Priority (highest to lowest):
//  1. --config flag: Explicitly specified config file path
//  2. LANGLINT_CONFIG_FILE environment variable: Custom config file path
//  3. Default: .langlint.yml in current directory
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if envConfigFile := os.Getenv("LANGLINT_CONFIG_FILE"); envConfigFile != "" {
		viper.SetConfigFile(envConfigFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".langlint")
	}

	// Enable automatic environment variable binding with LANGLINT_ prefix
	viper.SetEnvPrefix("LANGLINT")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// If the file doesn't exist, Viper falls back to defaults without failing
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
