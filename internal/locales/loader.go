// Package locales loads a set of locale dictionaries from a directory of
// translation files.
//
// Each file in the directory names one locale: the base name (without
// extension) must be a valid BCP 47 language tag, and the contents a nested
// string-keyed mapping. YAML files are parsed into yaml.MapSlice so branch
// iteration preserves the order keys appear in the file; JSON files carry no
// order and fall back to sorted keys. Loading is the only I/O boundary of
// the tool; the dictionary core operates on the materialized trees.
package locales

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/language"
	yaml "gopkg.in/yaml.v2"

	"github.com/langlint/langlint/internal/dictionary"
	lerr "github.com/langlint/langlint/internal/errors"
)

// Set is a loaded locale set: one immutable dictionary per locale tag.
type Set struct {
	dictionaries map[string]*dictionary.Node
	files        map[string]string
}

// Tags returns the loaded locale tags in lexical order.
func (s *Set) Tags() []string {
	tags := make([]string, 0, len(s.dictionaries))
	for tag := range s.dictionaries {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// Dictionary returns the dictionary for tag.
func (s *Set) Dictionary(tag string) (*dictionary.Node, bool) {
	d, ok := s.dictionaries[tag]
	return d, ok
}

// Dictionaries returns the tag-to-dictionary mapping for the parity check.
func (s *Set) Dictionaries() map[string]*dictionary.Node {
	out := make(map[string]*dictionary.Node, len(s.dictionaries))
	for tag, d := range s.dictionaries {
		out[tag] = d
	}
	return out
}

// FilePath returns the file a tag was loaded from.
func (s *Set) FilePath(tag string) string {
	return s.files[tag]
}

// Len returns the number of loaded locales.
func (s *Set) Len() int {
	return len(s.dictionaries)
}

// supported file extensions, mapped to their parser
var parsers = map[string]func([]byte) (interface{}, error){
	".yaml": parseYAML,
	".yml":  parseYAML,
	".json": parseJSON,
}

// LoadDir loads every locale file directly under dir. Files with unsupported
// extensions are skipped; an empty result is an error since every operation
// downstream needs at least one dictionary.
func LoadDir(dir string) (*Set, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, lerr.NewIOError(lerr.CodeLocaleRead, "cannot read locales directory", err).
			WithLocation(dir, 0)
	}

	set := &Set{
		dictionaries: make(map[string]*dictionary.Node),
		files:        make(map[string]string),
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		parse, ok := parsers[strings.ToLower(filepath.Ext(entry.Name()))]
		if !ok {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		tag, err := localeTag(entry.Name())
		if err != nil {
			return nil, err
		}

		root, err := loadFile(path, parse)
		if err != nil {
			return nil, err
		}
		set.dictionaries[tag] = root
		set.files[tag] = path
	}

	if set.Len() == 0 {
		return nil, lerr.NewValidationError(lerr.CodeLocaleEmpty,
			"no locale files found").WithLocation(dir, 0)
	}
	return set, nil
}

// LoadFile loads a single locale file, deriving the tag from its name.
func LoadFile(path string) (string, *dictionary.Node, error) {
	parse, ok := parsers[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return "", nil, lerr.NewParseError(lerr.CodeLocaleParse,
			"unsupported locale file extension", nil).WithLocation(path, 0)
	}
	tag, err := localeTag(filepath.Base(path))
	if err != nil {
		return "", nil, err
	}
	root, err := loadFile(path, parse)
	if err != nil {
		return "", nil, err
	}
	return tag, root, nil
}

func loadFile(path string, parse func([]byte) (interface{}, error)) (*dictionary.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, lerr.NewIOError(lerr.CodeLocaleRead, "cannot read locale file", err).
			WithLocation(path, 0)
	}

	value, err := parse(data)
	if err != nil {
		return nil, lerr.NewParseError(lerr.CodeLocaleParse, "cannot parse locale file", err).
			WithLocation(path, 0)
	}

	root, err := dictionary.FromValue(value)
	if err != nil {
		return nil, lerr.NewParseError(lerr.CodeLocaleParse, "invalid dictionary structure", err).
			WithLocation(path, 0)
	}
	return root, nil
}

// Tag derives the locale tag a file path names, without reading the file.
// Used for removals, where the file is already gone.
func Tag(path string) (string, error) {
	return localeTag(filepath.Base(path))
}

// localeTag validates the file's base name as a BCP 47 tag and returns its
// canonical string form.
func localeTag(fileName string) (string, error) {
	base := strings.TrimSuffix(fileName, filepath.Ext(fileName))
	tag, err := language.Parse(base)
	if err != nil {
		return "", lerr.NewValidationError(lerr.CodeLocaleTag,
			"locale file name is not a valid language tag").
			WithLocation(fileName, 0).WithCause(err)
	}
	return tag.String(), nil
}

func parseYAML(data []byte) (interface{}, error) {
	var value yaml.MapSlice
	if err := yaml.UnmarshalStrict(data, &value); err != nil {
		return nil, err
	}
	return value, nil
}

func parseJSON(data []byte) (interface{}, error) {
	var value map[string]interface{}
	if err := json.Unmarshal(data, &value); err != nil {
		return nil, err
	}
	return value, nil
}
