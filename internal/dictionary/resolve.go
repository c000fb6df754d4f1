package dictionary

import "strings"

// SplitPath splits a dotted path into its segments, failing with
// ErrMalformedPath when the path is empty or any segment is empty (leading,
// trailing, or doubled separators). No traversal happens here.
func SplitPath(path string) ([]string, error) {
	if path == "" {
		return nil, malformed(path)
	}
	segments := strings.Split(path, Separator)
	for _, segment := range segments {
		if segment == "" {
			return nil, malformed(path)
		}
	}
	return segments, nil
}

// Resolve follows path from the root one segment at a time and returns the
// addressed node. Stepping into or through a terminal node, or naming a key
// absent from the current branch, fails with ErrPathNotFound carrying the
// longest prefix that did resolve. Pure function of its inputs.
func Resolve(root *Node, path string) (*Node, error) {
	if root == nil || !root.IsBranch() {
		return nil, ErrInvalidRoot
	}
	segments, err := SplitPath(path)
	if err != nil {
		return nil, err
	}

	current := root
	prefix := ""
	for _, segment := range segments {
		child, ok := current.Child(segment)
		if !ok {
			return nil, notFound(path, prefix)
		}
		prefix = joinPath(prefix, segment)
		current = child
	}
	return current, nil
}

// ResolveLeaf resolves path and requires the result to carry a displayable
// value. Resolving to a branch fails with ErrNotALeaf. Array nodes count as
// leaves here; callers read their entries through Values.
func ResolveLeaf(root *Node, path string) (*Node, error) {
	node, err := Resolve(root, path)
	if err != nil {
		return nil, err
	}
	if node.IsBranch() {
		return nil, notALeaf(path)
	}
	return node, nil
}
