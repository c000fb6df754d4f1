package dictionary

import (
	"fmt"
	"sort"
)

// Discrepancy reports one path present in one locale's dictionary and
// missing from another's. Findings, not errors: the parity check always
// completes and reports everything it found.
type Discrepancy struct {
	Path      string `json:"path"`
	PresentIn string `json:"present_in"`
	MissingIn string `json:"missing_in"`
}

// CheckParity derives the path vocabulary of every locale and compares each
// unordered pair, reporting every path present on exactly one side. An empty
// result means all locales expose an identical path set. Output order is
// deterministic: locale pairs in lexical order, paths sorted within a pair.
// A locale whose dictionary root is not a branch fails derivation and
// surfaces that error instead of a partial report.
func CheckParity(locales map[string]*Node) ([]Discrepancy, error) {
	ids := make([]string, 0, len(locales))
	for id := range locales {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	sets := make(map[string]PathSet, len(ids))
	for _, id := range ids {
		set, err := DerivePaths(locales[id])
		if err != nil {
			return nil, fmt.Errorf("locale %q: %w", id, err)
		}
		sets[id] = set
	}

	var out []Discrepancy
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			a, b := ids[i], ids[j]
			for _, path := range sets[a].Diff(sets[b]) {
				out = append(out, Discrepancy{Path: path, PresentIn: a, MissingIn: b})
			}
			for _, path := range sets[b].Diff(sets[a]) {
				out = append(out, Discrepancy{Path: path, PresentIn: b, MissingIn: a})
			}
		}
	}
	return out, nil
}
