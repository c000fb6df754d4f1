package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLintError_Error(t *testing.T) {
	err := NewParseError(CodeLocaleParse, "invalid locale file", fmt.Errorf("yaml: line 3")).
		WithLocation("locales/de.yaml", 3)

	msg := err.Error()
	assert.Contains(t, msg, "[LOCALE_PARSE]")
	assert.Contains(t, msg, "locales/de.yaml:3")
	assert.Contains(t, msg, "invalid locale file")
	assert.Contains(t, msg, "yaml: line 3")
}

func TestLintError_Unwrap(t *testing.T) {
	cause := errors.New("permission denied")
	err := NewIOError(CodeLocaleRead, "cannot read locale file", cause)

	assert.ErrorIs(t, err, cause)
}

func TestLintError_IsMatchesTypeAndCode(t *testing.T) {
	a := NewValidationError(CodeKeyPattern, "bad key name")
	b := NewValidationError(CodeKeyPattern, "different message")
	c := NewValidationError(CodeUnknownRef, "bad key name")

	assert.True(t, errors.Is(a, b))
	assert.False(t, errors.Is(a, c))
}
