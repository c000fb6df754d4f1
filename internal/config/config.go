// Package config provides configuration management for langlint using Viper
// for flexible configuration loading from files, environment variables, and
// command-line flags.
//
// The configuration system supports YAML files, environment variable
// overrides with LANGLINT_ prefix, and validation. It manages the locales
// directory, key-name rules, reference scanning paths, and output options.
package config

import (
	"fmt"
	"regexp"

	"github.com/spf13/viper"

	lerr "github.com/langlint/langlint/internal/errors"
)

type Config struct {
	Locales LocalesConfig `yaml:"locales"`
	Keys    KeysConfig    `yaml:"keys"`
	Scan    ScanConfig    `yaml:"scan"`
	Output  OutputConfig  `yaml:"output"`
}

type LocalesConfig struct {
	Dir     string `yaml:"dir"`
	Default string `yaml:"default"`
}

type KeysConfig struct {
	// Pattern restricts key names; derived paths stay round-trippable only
	// when key names cannot contain the dot separator.
	Pattern string `yaml:"pattern"`
	Enforce bool   `yaml:"enforce"`
}

type ScanConfig struct {
	Paths           []string `yaml:"paths"`
	Functions       []string `yaml:"functions"`
	Attributes      []string `yaml:"attributes"`
	ExcludePatterns []string `yaml:"exclude_patterns"`
}

type OutputConfig struct {
	Format string `yaml:"format"`
}

// DefaultKeyPattern is the recommended key-name character set: letters,
// digits, and underscore, so dots never appear inside a key name.
const DefaultKeyPattern = `^[A-Za-z0-9_]+$`

func Load() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	// Apply defaults only when not explicitly set
	if config.Locales.Dir == "" {
		config.Locales.Dir = "./locales"
	}
	if config.Locales.Default == "" {
		config.Locales.Default = "en"
	}
	if config.Keys.Pattern == "" {
		config.Keys.Pattern = DefaultKeyPattern
	}

	// Handle slice values set via viper (workaround for viper slice handling)
	if viper.IsSet("scan.paths") && len(config.Scan.Paths) == 0 {
		config.Scan.Paths = viper.GetStringSlice("scan.paths")
	}
	if viper.IsSet("scan.functions") && len(config.Scan.Functions) == 0 {
		config.Scan.Functions = viper.GetStringSlice("scan.functions")
	}
	if viper.IsSet("scan.attributes") && len(config.Scan.Attributes) == 0 {
		config.Scan.Attributes = viper.GetStringSlice("scan.attributes")
	}
	if viper.IsSet("scan.exclude_patterns") && len(config.Scan.ExcludePatterns) == 0 {
		config.Scan.ExcludePatterns = viper.GetStringSlice("scan.exclude_patterns")
	}

	if len(config.Scan.Paths) == 0 {
		config.Scan.Paths = []string{"."}
	}
	if len(config.Scan.Functions) == 0 {
		config.Scan.Functions = []string{"T", "Translate"}
	}
	if len(config.Scan.Attributes) == 0 {
		config.Scan.Attributes = []string{"data-i18n"}
	}
	if len(config.Scan.ExcludePatterns) == 0 {
		config.Scan.ExcludePatterns = []string{"node_modules", ".git", "vendor"}
	}

	if config.Output.Format == "" {
		config.Output.Format = "text"
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// validateConfig validates configuration values for correctness
func validateConfig(config *Config) error {
	if config.Locales.Dir == "" {
		return lerr.NewConfigError(lerr.CodeConfigInvalid, "locales dir must not be empty")
	}

	if _, err := regexp.Compile(config.Keys.Pattern); err != nil {
		return lerr.NewConfigError(lerr.CodeKeyPattern, "keys pattern does not compile").WithCause(err)
	}

	switch config.Output.Format {
	case "text", "json", "yaml":
	default:
		return lerr.NewConfigError(lerr.CodeConfigInvalid,
			fmt.Sprintf("output format must be text, json, or yaml, got %q", config.Output.Format))
	}

	for _, path := range config.Scan.Paths {
		if path == "" {
			return lerr.NewConfigError(lerr.CodeConfigInvalid, "scan paths must not contain empty entries")
		}
	}

	return nil
}

// KeyPattern compiles the configured key-name pattern. Load has already
// verified it compiles.
func (c *Config) KeyPattern() *regexp.Regexp {
	return regexp.MustCompile(c.Keys.Pattern)
}
