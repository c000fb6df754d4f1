// Package dictionary implements the core key-path model for nested
// translation dictionaries.
//
// A dictionary is an immutable tree of named nodes: branches hold
// insertion-ordered child maps, leaves hold a displayable string (or a slice
// of strings for array-valued entries). The package derives the complete
// dotted key-path vocabulary of a tree, resolves candidate paths against it,
// and compares the derived vocabularies of locale variants for parity.
// All operations are pure and safe for concurrent use on a constructed tree.
package dictionary

import (
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v2"
)

// Separator joins key names into dotted paths.
const Separator = "."

// Kind discriminates the node variants of a dictionary tree.
type Kind int

const (
	// KindBranch is an internal node holding named children.
	KindBranch Kind = iota
	// KindLeaf is a terminal node holding one string value.
	KindLeaf
	// KindArray is a terminal node holding a slice of string values.
	// Array entries are addressed by the node's own path and never
	// descended into.
	KindArray
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindBranch:
		return "branch"
	case KindLeaf:
		return "leaf"
	case KindArray:
		return "array"
	default:
		return "unknown"
	}
}

// Node is one node of a dictionary tree. Nodes are built once via the
// constructors or FromValue and treated as immutable afterwards.
type Node struct {
	kind     Kind
	value    string
	values   []string
	keys     []string
	children map[string]*Node
}

// NewBranch creates an empty branch node.
func NewBranch() *Node {
	return &Node{
		kind:     KindBranch,
		children: make(map[string]*Node),
	}
}

// NewLeaf creates a leaf node holding value.
func NewLeaf(value string) *Node {
	return &Node{kind: KindLeaf, value: value}
}

// NewArray creates a terminal node holding a slice of values.
func NewArray(values []string) *Node {
	copied := make([]string, len(values))
	copy(copied, values)
	return &Node{kind: KindArray, values: copied}
}

// Kind returns the node's variant.
func (n *Node) Kind() Kind {
	return n.kind
}

// IsBranch reports whether the node holds named children.
func (n *Node) IsBranch() bool {
	return n.kind == KindBranch
}

// Value returns the leaf's string value. The second return is false for
// branches and array nodes.
func (n *Node) Value() (string, bool) {
	if n.kind != KindLeaf {
		return "", false
	}
	return n.value, true
}

// Values returns the array node's values. The second return is false for
// branches and plain leaves.
func (n *Node) Values() ([]string, bool) {
	if n.kind != KindArray {
		return nil, false
	}
	out := make([]string, len(n.values))
	copy(out, n.values)
	return out, true
}

// Keys returns the branch's key names in insertion order. Terminal nodes
// return nil.
func (n *Node) Keys() []string {
	if n.kind != KindBranch {
		return nil
	}
	out := make([]string, len(n.keys))
	copy(out, n.keys)
	return out
}

// Child returns the named child of a branch.
func (n *Node) Child(key string) (*Node, bool) {
	if n.kind != KindBranch {
		return nil, false
	}
	child, ok := n.children[key]
	return child, ok
}

// Len returns the number of children of a branch, zero for terminal nodes.
func (n *Node) Len() int {
	return len(n.keys)
}

// add appends a child during construction. Duplicate and empty keys are
// construction errors, never silently merged.
func (n *Node) add(key string, child *Node) error {
	if key == "" {
		return fmt.Errorf("empty key name in branch")
	}
	// A separator inside a key name would make derived paths ambiguous:
	// the path could no longer be split back into its key names.
	if strings.Contains(key, Separator) {
		return fmt.Errorf("key %q contains the path separator", key)
	}
	if _, exists := n.children[key]; exists {
		return fmt.Errorf("duplicate key %q in branch", key)
	}
	n.keys = append(n.keys, key)
	n.children[key] = child
	return nil
}

// FromValue materializes a dictionary tree from a parsed YAML or JSON value.
//
// Mappings become branches, strings and scalar numbers become leaves, and
// slices of scalars become array nodes. yaml.MapSlice inputs preserve the
// source file's key order; plain map inputs fall back to sorted key order so
// construction stays deterministic. Unsupported value kinds (nested slices,
// nil values, non-string keys) fail construction.
func FromValue(v interface{}) (*Node, error) {
	node, err := fromValue(v, "")
	if err != nil {
		return nil, err
	}
	if !node.IsBranch() {
		return nil, ErrInvalidRoot
	}
	return node, nil
}

func fromValue(v interface{}, at string) (*Node, error) {
	switch value := v.(type) {
	case yaml.MapSlice:
		branch := NewBranch()
		for _, item := range value {
			key, err := scalarKey(item.Key, at)
			if err != nil {
				return nil, err
			}
			child, err := fromValue(item.Value, joinPath(at, key))
			if err != nil {
				return nil, err
			}
			if err := branch.add(key, child); err != nil {
				return nil, wrapAt(err, at)
			}
		}
		return branch, nil
	case map[string]interface{}:
		branch := NewBranch()
		keys := make([]string, 0, len(value))
		for key := range value {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			child, err := fromValue(value[key], joinPath(at, key))
			if err != nil {
				return nil, err
			}
			if err := branch.add(key, child); err != nil {
				return nil, wrapAt(err, at)
			}
		}
		return branch, nil
	case map[interface{}]interface{}:
		// yaml.v2 produces interface-keyed maps for nested mappings
		// outside a MapSlice.
		branch := NewBranch()
		keys := make([]string, 0, len(value))
		byKey := make(map[string]interface{}, len(value))
		for rawKey, rawValue := range value {
			key, err := scalarKey(rawKey, at)
			if err != nil {
				return nil, err
			}
			keys = append(keys, key)
			byKey[key] = rawValue
		}
		sort.Strings(keys)
		for _, key := range keys {
			child, err := fromValue(byKey[key], joinPath(at, key))
			if err != nil {
				return nil, err
			}
			if err := branch.add(key, child); err != nil {
				return nil, wrapAt(err, at)
			}
		}
		return branch, nil
	case []interface{}:
		values := make([]string, 0, len(value))
		for i, item := range value {
			s, ok := scalarString(item)
			if !ok {
				return nil, fmt.Errorf("at %q: array element %d is not a scalar", at, i)
			}
			values = append(values, s)
		}
		return NewArray(values), nil
	case []string:
		return NewArray(value), nil
	default:
		s, ok := scalarString(v)
		if !ok {
			return nil, fmt.Errorf("at %q: unsupported value of type %T", at, v)
		}
		return NewLeaf(s), nil
	}
}

func scalarKey(v interface{}, at string) (string, error) {
	s, ok := scalarString(v)
	if !ok || s == "" {
		return "", fmt.Errorf("at %q: key %v is not a non-empty string", at, v)
	}
	return s, nil
}

func scalarString(v interface{}) (string, bool) {
	switch value := v.(type) {
	case string:
		return value, true
	case bool:
		return fmt.Sprintf("%t", value), true
	case int:
		return fmt.Sprintf("%d", value), true
	case int64:
		return fmt.Sprintf("%d", value), true
	case uint64:
		return fmt.Sprintf("%d", value), true
	case float64:
		return fmt.Sprintf("%g", value), true
	default:
		return "", false
	}
}

func joinPath(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + Separator + key
}

func wrapAt(err error, at string) error {
	if at == "" {
		return err
	}
	return fmt.Errorf("at %q: %w", at, err)
}
