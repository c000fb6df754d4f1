package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/langlint/langlint/internal/config"
	"github.com/langlint/langlint/internal/dictionary"
	lerr "github.com/langlint/langlint/internal/errors"
	"github.com/langlint/langlint/internal/locales"
	"github.com/langlint/langlint/internal/logging"
	"github.com/langlint/langlint/internal/registry"
	"github.com/langlint/langlint/internal/watcher"
)

var watchVerbose bool

// watchCmd represents the watch command.
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-run validation and parity checks on file changes",
	Long: `Watch the locales directory and the configured scan paths, re-running
reference validation and the cross-locale parity check whenever a locale file
or source file changes. Useful during translation work: a key removed from
one locale surfaces immediately instead of at the next CI run.

Examples:
  langlint watch                  # Watch configured paths
  langlint watch --verbose        # Log every file change`,
	RunE: runWatchCommand,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().BoolVarP(&watchVerbose, "verbose", "v", false, "Verbose output")
}

func runWatchCommand(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	level := logging.ParseLevel(viper.GetString("log-level"))
	if watchVerbose {
		level = logging.LevelDebug
	}
	logger := logging.NewLogger(&logging.LoggerConfig{
		Level:     level,
		Format:    "text",
		Output:    os.Stderr,
		Component: "watch",
	})

	fileWatcher, err := watcher.NewFileWatcher(300 * time.Millisecond)
	if err != nil {
		return lerr.NewInternalError("failed to create file watcher", err)
	}
	defer fileWatcher.Stop()

	fileWatcher.AddFilter(watcher.OrFilter(watcher.LocaleFilter, watcher.SourceFilter))
	fileWatcher.AddFilter(watcher.NoVendorFilter)
	fileWatcher.AddFilter(watcher.NoGitFilter)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// One registry lives for the whole watch session. Locale-file changes
	// re-register single dictionaries in place and the resulting registry
	// events drive re-validation.
	reg := registry.NewLocaleRegistry()
	if err := reloadLocales(reg, cfg); err != nil {
		logger.Error(ctx, err, "failed to load locales")
	}

	runChecks := func() {
		summary, err := runValidation(cfg, reg, cfg.Scan.Paths)
		if err != nil {
			logger.Error(ctx, err, "validation failed")
			return
		}

		findings, err := dictionary.CheckParity(reg.Dictionaries())
		if err != nil {
			logger.Error(ctx, err, "parity check failed")
			return
		}

		if summary.Clean() && len(findings) == 0 {
			logger.Info(ctx, "all checks passed",
				"references", summary.References,
				"paths", summary.KnownPaths,
				"locales", reg.Count())
			return
		}

		for _, finding := range summary.Findings {
			logger.Warn(ctx, nil, "broken reference",
				"path", finding.Path,
				"file", finding.File,
				"line", finding.Line,
				"problem", finding.Problem)
		}
		for _, violation := range summary.KeyViolations {
			logger.Warn(ctx, nil, "key-name violation",
				"locale", violation.Locale,
				"path", violation.Path)
		}
		for _, d := range findings {
			logger.Warn(ctx, nil, "parity discrepancy",
				"path", d.Path,
				"present_in", d.PresentIn,
				"missing_in", d.MissingIn)
		}
	}

	// Registry events drive the locale-change side: each batch of updates
	// coalesces into one check run.
	locale := reg.Watch()
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case event := <-locale:
				logger.Debug(ctx, "locale changed",
					"tag", event.Locale.Tag, "event", event.Type.String())
			drain:
				for {
					select {
					case <-locale:
					default:
						break drain
					}
				}
				runChecks()
			}
		}
	}()

	fileWatcher.AddHandler(func(events []watcher.ChangeEvent) error {
		localeChanged := false
		for _, event := range events {
			logger.Debug(ctx, "file changed", "type", event.Type.String(), "path", event.Path)
			if !isLocaleFile(cfg, event.Path) {
				continue
			}
			localeChanged = true
			if err := syncLocaleFile(reg, event); err != nil {
				logger.Warn(ctx, err, "failed to reload locale", "path", event.Path)
			}
		}
		logger.Info(ctx, "changes detected", "files", len(events))

		// Source-only batches never touch the registry, so no locale
		// event will trigger the checks; run them directly.
		if !localeChanged {
			runChecks()
		}
		return nil
	})

	if err := fileWatcher.AddRecursive(cfg.Locales.Dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", cfg.Locales.Dir, err)
	}
	for _, path := range cfg.Scan.Paths {
		if err := fileWatcher.AddRecursive(path); err != nil {
			logger.Warn(ctx, err, "failed to watch scan path", "path", path)
		}
	}

	if err := fileWatcher.Start(ctx); err != nil {
		return fmt.Errorf("failed to start file watcher: %w", err)
	}

	// Initial run so the terminal shows the current state immediately
	runChecks()
	logger.Info(ctx, "watching for changes", "locales_dir", cfg.Locales.Dir)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	logger.Info(ctx, "shutting down")
	return nil
}

// isLocaleFile reports whether path names a locale dictionary file, directly
// under the configured locales directory.
func isLocaleFile(cfg *config.Config, path string) bool {
	return watcher.LocaleFilter(path) && filepath.Dir(path) == filepath.Clean(cfg.Locales.Dir)
}

// syncLocaleFile applies one locale-file change to the registry: deletions
// drop the tag, everything else re-registers the single dictionary in place.
func syncLocaleFile(reg *registry.LocaleRegistry, event watcher.ChangeEvent) error {
	if event.Type == watcher.EventTypeDeleted || event.Type == watcher.EventTypeRenamed {
		tag, err := locales.Tag(event.Path)
		if err != nil {
			return err
		}
		reg.Remove(tag)
		return nil
	}

	tag, root, err := locales.LoadFile(event.Path)
	if err != nil {
		return err
	}
	return reg.Register(tag, event.Path, root)
}
