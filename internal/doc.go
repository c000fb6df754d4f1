// Package internal contains the core implementation packages for langlint.
//
// This package follows Go's internal package convention, making these
// packages unavailable for import by external modules while providing
// all the core functionality for the langlint CLI tool.
//
// # Package Organization
//
// The internal packages are organized by functional domain:
//
//   - dictionary: Key-path derivation, resolution, and cross-locale parity
//   - locales: Locale file loading (YAML/JSON) with language-tag validation
//   - registry: Locale registry and event broadcasting system
//   - scanner: Translation-key reference extraction from Go and HTML sources
//   - translator: Validated display lookups with placeholder substitution
//   - watcher: File system monitoring with debouncing
//   - config: Configuration management with validation
//   - errors: Structured error types with file context
//   - logging: Structured logging over log/slog
//   - version: Build and version information
//
// # Inter-Package Communication
//
// Packages communicate through well-defined interfaces:
//
//   - Registry acts as the central hub for loaded locale dictionaries
//   - Locales loader materializes immutable trees for the dictionary core
//   - Scanner produces references that validation checks against derived paths
//   - Watcher monitors file systems and triggers reload and re-validation
//   - Translator resolves through the dictionary core before formatting
//
// For detailed documentation, see the individual package documentation.
package internal
