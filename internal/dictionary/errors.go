package dictionary

import (
	"errors"
	"fmt"
)

// Sentinel errors for the path operations. Callers match them with
// errors.Is; PathError carries the offending path and failing prefix.
var (
	// ErrInvalidRoot reports a dictionary whose root is not a branch.
	ErrInvalidRoot = errors.New("dictionary root must be a branch")

	// ErrMalformedPath reports a path with an empty segment (leading,
	// trailing, or doubled separator) or an empty path. Raised before
	// any traversal.
	ErrMalformedPath = errors.New("malformed path")

	// ErrPathNotFound reports a path segment missing from the tree.
	ErrPathNotFound = errors.New("path not found")

	// ErrNotALeaf reports a path that resolves to a branch where a leaf
	// value was required. Distinct from ErrPathNotFound so callers can
	// tell "does not exist" from "exists but is a container".
	ErrNotALeaf = errors.New("path resolves to a branch, not a leaf")
)

// PathError wraps one of the path sentinels with the path being resolved
// and, for not-found failures, the longest prefix that did resolve.
type PathError struct {
	Path   string
	Prefix string
	Err    error
}

// Error implements the error interface.
func (e *PathError) Error() string {
	if e.Prefix != "" {
		return fmt.Sprintf("path %q: %v (at %q)", e.Path, e.Err, e.Prefix)
	}
	return fmt.Sprintf("path %q: %v", e.Path, e.Err)
}

// Unwrap returns the sentinel error.
func (e *PathError) Unwrap() error {
	return e.Err
}

func malformed(path string) error {
	return &PathError{Path: path, Err: ErrMalformedPath}
}

func notFound(path, prefix string) error {
	return &PathError{Path: path, Prefix: prefix, Err: ErrPathNotFound}
}

func notALeaf(path string) error {
	return &PathError{Path: path, Err: ErrNotALeaf}
}
