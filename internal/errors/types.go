// Package errors provides structured error types for langlint's loading,
// configuration, and reporting layers. The dictionary core keeps its own
// sentinel errors; this package wraps failures that carry file context so
// the CLI can point at the offending locale file or source location.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorType represents different categories of errors.
type ErrorType string

const (
	ErrorTypeConfig     ErrorType = "config"
	ErrorTypeIO         ErrorType = "io"
	ErrorTypeParse      ErrorType = "parse"
	ErrorTypeValidation ErrorType = "validation"
	ErrorTypeInternal   ErrorType = "internal"
)

// LintError is a structured error type with file context.
type LintError struct {
	Type     ErrorType
	Code     string
	Message  string
	Cause    error
	FilePath string
	Line     int
}

// Error implements the error interface.
func (e *LintError) Error() string {
	var parts []string

	if e.Code != "" {
		parts = append(parts, fmt.Sprintf("[%s]", e.Code))
	}

	if e.FilePath != "" {
		location := e.FilePath
		if e.Line > 0 {
			location += fmt.Sprintf(":%d", e.Line)
		}
		parts = append(parts, location)
	}

	parts = append(parts, e.Message)

	result := strings.Join(parts, " ")

	if e.Cause != nil {
		result += fmt.Sprintf(": %v", e.Cause)
	}

	return result
}

// Unwrap returns the underlying cause error.
func (e *LintError) Unwrap() error {
	return e.Cause
}

// Is implements error comparison by type and code.
func (e *LintError) Is(target error) bool {
	var t *LintError
	if errors.As(target, &t) {
		return e.Type == t.Type && e.Code == t.Code
	}

	return false
}

// WithLocation adds file location information.
func (e *LintError) WithLocation(filePath string, line int) *LintError {
	e.FilePath = filePath
	e.Line = line

	return e
}

// WithCause attaches the underlying error.
func (e *LintError) WithCause(cause error) *LintError {
	e.Cause = cause

	return e
}

// Error creation functions

// NewConfigError creates a configuration error.
func NewConfigError(code, message string) *LintError {
	return &LintError{
		Type:    ErrorTypeConfig,
		Code:    code,
		Message: message,
	}
}

// NewIOError creates an I/O error for a file operation.
func NewIOError(code, message string, cause error) *LintError {
	return &LintError{
		Type:    ErrorTypeIO,
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// NewParseError creates a parse error for a locale or source file.
func NewParseError(code, message string, cause error) *LintError {
	return &LintError{
		Type:    ErrorTypeParse,
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// NewValidationError creates a validation error.
func NewValidationError(code, message string) *LintError {
	return &LintError{
		Type:    ErrorTypeValidation,
		Code:    code,
		Message: message,
	}
}

// NewInternalError creates an internal error.
func NewInternalError(message string, cause error) *LintError {
	return &LintError{
		Type:    ErrorTypeInternal,
		Code:    "INTERNAL",
		Message: message,
		Cause:   cause,
	}
}

// Common error codes used across the loading and validation layers.
const (
	CodeLocaleRead    = "LOCALE_READ"
	CodeLocaleParse   = "LOCALE_PARSE"
	CodeLocaleTag     = "LOCALE_TAG"
	CodeLocaleEmpty   = "LOCALE_EMPTY"
	CodeKeyPattern    = "KEY_PATTERN"
	CodeUnknownRef    = "UNKNOWN_REF"
	CodeMalformedRef  = "MALFORMED_REF"
	CodeConfigInvalid = "CONFIG_INVALID"
)
