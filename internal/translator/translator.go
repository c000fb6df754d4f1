// Package translator is the display-lookup surface over validated
// dictionaries: it resolves a dotted path through the dictionary core first
// and only formats on success, so callers can tell a missing key from a
// container key instead of silently receiving a fallback string.
package translator

import (
	"fmt"
	"strings"

	"github.com/langlint/langlint/internal/dictionary"
	"github.com/langlint/langlint/internal/registry"
)

// Params holds substitution arguments for {name} placeholders.
type Params map[string]string

// Translator wraps a locale registry with validated lookups. There is no
// implicit fallback: unresolved paths surface their error to the caller,
// whose policy that is.
type Translator struct {
	registry *registry.LocaleRegistry
}

// New creates a translator over the given registry.
func New(reg *registry.LocaleRegistry) *Translator {
	return &Translator{registry: reg}
}

// Translate resolves path in the tagged locale, requires a leaf, and
// substitutes params into {name} placeholders. Array-valued entries are not
// displayable as a single string; use Lines for those.
func (t *Translator) Translate(tag, path string, params Params) (string, error) {
	node, err := t.resolveLeaf(tag, path)
	if err != nil {
		return "", err
	}

	value, ok := node.Value()
	if !ok {
		return "", fmt.Errorf("path %q in locale %q holds an array value, not a string", path, tag)
	}
	return substitute(value, params), nil
}

// Lines resolves an array-valued entry and substitutes params into each
// element. Plain string leaves come back as a single-element slice.
func (t *Translator) Lines(tag, path string, params Params) ([]string, error) {
	node, err := t.resolveLeaf(tag, path)
	if err != nil {
		return nil, err
	}

	if value, ok := node.Value(); ok {
		return []string{substitute(value, params)}, nil
	}
	values, _ := node.Values()
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = substitute(v, params)
	}
	return out, nil
}

// Has reports whether path is in the tagged locale's derived vocabulary.
func (t *Translator) Has(tag, path string) bool {
	info, ok := t.registry.Get(tag)
	if !ok {
		return false
	}
	return info.Paths.Contains(path)
}

func (t *Translator) resolveLeaf(tag, path string) (*dictionary.Node, error) {
	info, ok := t.registry.Get(tag)
	if !ok {
		return nil, fmt.Errorf("locale %q is not loaded", tag)
	}
	return dictionary.ResolveLeaf(info.Root, path)
}

// substitute replaces {name} placeholders with their parameter values.
// Unknown placeholders stay as written so the gap is visible in output.
func substitute(value string, params Params) string {
	if len(params) == 0 {
		return value
	}
	pairs := make([]string, 0, len(params)*2)
	for name, v := range params {
		pairs = append(pairs, "{"+name+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(value)
}
