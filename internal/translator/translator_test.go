package translator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/langlint/langlint/internal/dictionary"
	"github.com/langlint/langlint/internal/registry"
)

func newTranslator(t *testing.T) *Translator {
	t.Helper()
	root, err := dictionary.FromValue(map[string]interface{}{
		"greeting": "hello {name}",
		"menu": map[string]interface{}{
			"open": "Open",
		},
		"steps": []interface{}{"first {n}", "second {n}"},
	})
	require.NoError(t, err)

	reg := registry.NewLocaleRegistry()
	require.NoError(t, reg.Register("en", "en.yaml", root))
	return New(reg)
}

func TestTranslate_WithParams(t *testing.T) {
	tr := newTranslator(t)

	got, err := tr.Translate("en", "greeting", Params{"name": "Ada"})
	require.NoError(t, err)
	assert.Equal(t, "hello Ada", got)
}

func TestTranslate_UnknownPlaceholderStays(t *testing.T) {
	tr := newTranslator(t)

	got, err := tr.Translate("en", "greeting", Params{"other": "x"})
	require.NoError(t, err)
	assert.Equal(t, "hello {name}", got)
}

func TestTranslate_MissingPathSurfacesError(t *testing.T) {
	tr := newTranslator(t)

	_, err := tr.Translate("en", "missing", nil)
	assert.ErrorIs(t, err, dictionary.ErrPathNotFound)
}

func TestTranslate_BranchPathSurfacesNotALeaf(t *testing.T) {
	tr := newTranslator(t)

	_, err := tr.Translate("en", "menu", nil)
	assert.ErrorIs(t, err, dictionary.ErrNotALeaf)
}

func TestTranslate_MalformedPathRejected(t *testing.T) {
	tr := newTranslator(t)

	_, err := tr.Translate("en", "menu..open", nil)
	assert.ErrorIs(t, err, dictionary.ErrMalformedPath)
}

func TestTranslate_ArrayValueNeedsLines(t *testing.T) {
	tr := newTranslator(t)

	_, err := tr.Translate("en", "steps", nil)
	assert.Error(t, err)

	lines, err := tr.Lines("en", "steps", Params{"n": "1"})
	require.NoError(t, err)
	assert.Equal(t, []string{"first 1", "second 1"}, lines)
}

func TestTranslate_UnloadedLocale(t *testing.T) {
	tr := newTranslator(t)

	_, err := tr.Translate("fr", "greeting", nil)
	assert.Error(t, err)
}

func TestHas(t *testing.T) {
	tr := newTranslator(t)

	assert.True(t, tr.Has("en", "menu.open"))
	assert.True(t, tr.Has("en", "menu"))
	assert.False(t, tr.Has("en", "menu.missing"))
	assert.False(t, tr.Has("fr", "menu.open"))
}
