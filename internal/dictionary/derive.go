package dictionary

import "sort"

// PathSet is the derived vocabulary of a dictionary: every dotted path that
// addresses a node in the tree.
type PathSet map[string]struct{}

// Contains reports whether path is in the set.
func (s PathSet) Contains(path string) bool {
	_, ok := s[path]
	return ok
}

// Sorted returns the paths in lexical order for deterministic output.
func (s PathSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for path := range s {
		out = append(out, path)
	}
	sort.Strings(out)
	return out
}

// Diff returns the paths present in s and absent from other, sorted.
func (s PathSet) Diff(other PathSet) []string {
	var out []string
	for path := range s {
		if !other.Contains(path) {
			out = append(out, path)
		}
	}
	sort.Strings(out)
	return out
}

// Equal reports whether both sets contain exactly the same paths.
func (s PathSet) Equal(other PathSet) bool {
	if len(s) != len(other) {
		return false
	}
	for path := range s {
		if !other.Contains(path) {
			return false
		}
	}
	return true
}

// DerivePaths walks the tree and returns the set of every dotted path that
// addresses a node, one path per branch and per leaf. Array nodes contribute
// their own path only; their elements are not indexed. A terminal root has
// no named paths to derive and fails with ErrInvalidRoot.
func DerivePaths(root *Node) (PathSet, error) {
	if root == nil || !root.IsBranch() {
		return nil, ErrInvalidRoot
	}
	set := make(PathSet)
	derive(root, "", set)
	return set, nil
}

func derive(branch *Node, prefix string, set PathSet) {
	for _, key := range branch.keys {
		path := joinPath(prefix, key)
		set[path] = struct{}{}
		child := branch.children[key]
		if child.IsBranch() {
			derive(child, path, set)
		}
	}
}
