package config

import (
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	lerr "github.com/langlint/langlint/internal/errors"
)

func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
}

func TestLoad_Defaults(t *testing.T) {
	resetViper(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "./locales", cfg.Locales.Dir)
	assert.Equal(t, "en", cfg.Locales.Default)
	assert.Equal(t, DefaultKeyPattern, cfg.Keys.Pattern)
	assert.False(t, cfg.Keys.Enforce)
	assert.Equal(t, []string{"T", "Translate"}, cfg.Scan.Functions)
	assert.Equal(t, []string{"data-i18n"}, cfg.Scan.Attributes)
	assert.Equal(t, "text", cfg.Output.Format)
}

func TestLoad_ViperOverrides(t *testing.T) {
	resetViper(t)

	viper.Set("locales.dir", "./translations")
	viper.Set("locales.default", "de")
	viper.Set("scan.paths", []string{"./web", "./cmd"})
	viper.Set("scan.functions", []string{"Tr"})
	viper.Set("output.format", "json")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "./translations", cfg.Locales.Dir)
	assert.Equal(t, "de", cfg.Locales.Default)
	assert.Equal(t, []string{"./web", "./cmd"}, cfg.Scan.Paths)
	assert.Equal(t, []string{"Tr"}, cfg.Scan.Functions)
	assert.Equal(t, "json", cfg.Output.Format)
}

func TestLoad_AttributeOverride(t *testing.T) {
	resetViper(t)

	viper.Set("scan.attributes", []string{"data-translate"})

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"data-translate"}, cfg.Scan.Attributes)
}

func TestLoad_AttributeEnvOverride(t *testing.T) {
	resetViper(t)

	// The CLI's env binding: Unmarshal misses automatic env values for
	// slice keys, so Load must fall back to GetStringSlice.
	viper.SetEnvPrefix("LANGLINT")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	t.Setenv("LANGLINT_SCAN_ATTRIBUTES", "data-translate")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"data-translate"}, cfg.Scan.Attributes)
}

func TestLoad_RejectsBadPattern(t *testing.T) {
	resetViper(t)

	viper.Set("keys.pattern", "[unclosed")

	_, err := Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, lerr.NewConfigError(lerr.CodeKeyPattern, ""))
}

func TestLoad_RejectsBadFormat(t *testing.T) {
	resetViper(t)

	viper.Set("output.format", "xml")

	_, err := Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, lerr.NewConfigError(lerr.CodeConfigInvalid, ""))
}

func TestKeyPattern_MatchesRecommendedNames(t *testing.T) {
	resetViper(t)

	cfg, err := Load()
	require.NoError(t, err)

	pattern := cfg.KeyPattern()
	assert.True(t, pattern.MatchString("USED_KEY"))
	assert.True(t, pattern.MatchString("menu2"))
	assert.False(t, pattern.MatchString("has.dot"))
	assert.False(t, pattern.MatchString("has space"))
	assert.False(t, pattern.MatchString(""))
}
