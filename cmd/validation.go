package cmd

import (
	"fmt"
	"os"
	"regexp"
	"sort"

	"github.com/langlint/langlint/internal/config"
	"github.com/langlint/langlint/internal/dictionary"
	lerr "github.com/langlint/langlint/internal/errors"
	"github.com/langlint/langlint/internal/locales"
	"github.com/langlint/langlint/internal/registry"
	"github.com/langlint/langlint/internal/scanner"
)

// ReferenceFinding is one broken translation-key reference. Code carries the
// machine-readable reason, Problem the human-readable one.
type ReferenceFinding struct {
	Path    string `json:"path"`
	File    string `json:"file"`
	Line    int    `json:"line,omitempty"`
	Code    string `json:"code"`
	Problem string `json:"problem"`
}

// KeyViolation is one dictionary key name outside the configured pattern.
type KeyViolation struct {
	Locale string `json:"locale"`
	Path   string `json:"path"`
	Key    string `json:"key"`
}

// ValidationSummary aggregates one validation run.
type ValidationSummary struct {
	Locale        string             `json:"locale"`
	KnownPaths    int                `json:"known_paths"`
	References    int                `json:"references"`
	Findings      []ReferenceFinding `json:"findings"`
	KeyViolations []KeyViolation     `json:"key_violations,omitempty"`
}

// Clean reports whether the run produced no findings.
func (s *ValidationSummary) Clean() bool {
	return len(s.Findings) == 0 && len(s.KeyViolations) == 0
}

// loadRegistry loads every locale under the configured directory into a
// fresh registry.
func loadRegistry(cfg *config.Config) (*registry.LocaleRegistry, error) {
	reg := registry.NewLocaleRegistry()
	if err := reloadLocales(reg, cfg); err != nil {
		return nil, err
	}
	return reg, nil
}

// reloadLocales synchronizes reg with the locales directory: every locale on
// disk is (re-)registered and tags whose files are gone are dropped. Watch
// mode calls this against a persistent registry so subscribers see the
// resulting Added/Updated/Removed events.
func reloadLocales(reg *registry.LocaleRegistry, cfg *config.Config) error {
	set, err := locales.LoadDir(cfg.Locales.Dir)
	if err != nil {
		return err
	}

	seen := make(map[string]bool, set.Len())
	for _, tag := range set.Tags() {
		root, _ := set.Dictionary(tag)
		if err := reg.Register(tag, set.FilePath(tag), root); err != nil {
			return fmt.Errorf("locale %q: %w", tag, err)
		}
		seen[tag] = true
	}
	for tag := range reg.GetAll() {
		if !seen[tag] {
			reg.Remove(tag)
		}
	}
	return nil
}

// runValidation scans scanPaths for references and checks each against the
// default locale's derived vocabulary.
func runValidation(cfg *config.Config, reg *registry.LocaleRegistry, scanPaths []string) (*ValidationSummary, error) {
	info, ok := reg.Get(cfg.Locales.Default)
	if !ok {
		return nil, fmt.Errorf("default locale %q is not present in %s", cfg.Locales.Default, cfg.Locales.Dir)
	}

	summary := &ValidationSummary{
		Locale:     info.Tag,
		KnownPaths: len(info.Paths),
	}

	refScanner := scanner.NewReferenceScanner(cfg.Scan.Functions, cfg.Scan.Attributes, cfg.Scan.ExcludePatterns)
	for _, path := range scanPaths {
		refs, err := refScanner.ScanDirectory(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to scan %s: %v\n", path, err)
			continue
		}
		summary.References += len(refs)
		for _, ref := range refs {
			summary.Findings = append(summary.Findings, checkReference(info, ref)...)
		}
	}

	if cfg.Keys.Enforce {
		summary.KeyViolations = checkKeyNames(reg, cfg.KeyPattern())
	}
	return summary, nil
}

// checkReference validates a single reference against the derived path set.
func checkReference(info *registry.LocaleInfo, ref scanner.Reference) []ReferenceFinding {
	if _, err := dictionary.SplitPath(ref.Path); err != nil {
		return []ReferenceFinding{{
			Path:    ref.Path,
			File:    ref.File,
			Line:    ref.Line,
			Code:    lerr.CodeMalformedRef,
			Problem: "malformed path",
		}}
	}
	if !info.Paths.Contains(ref.Path) {
		return []ReferenceFinding{{
			Path:    ref.Path,
			File:    ref.File,
			Line:    ref.Line,
			Code:    lerr.CodeUnknownRef,
			Problem: fmt.Sprintf("not found in locale %q", info.Tag),
		}}
	}
	return nil
}

// checkKeyNames walks every locale's derived paths and reports key names
// outside the configured pattern. The final segment of each derived path is
// exactly one key name, so the set covers every key in the tree.
func checkKeyNames(reg *registry.LocaleRegistry, pattern *regexp.Regexp) []KeyViolation {
	var out []KeyViolation
	all := reg.GetAll()

	tags := make([]string, 0, len(all))
	for tag := range all {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	for _, tag := range tags {
		info := all[tag]
		for _, path := range info.Paths.Sorted() {
			segments, err := dictionary.SplitPath(path)
			if err != nil {
				continue
			}
			key := segments[len(segments)-1]
			if !pattern.MatchString(key) {
				out = append(out, KeyViolation{Locale: tag, Path: path, Key: key})
			}
		}
	}
	return out
}
