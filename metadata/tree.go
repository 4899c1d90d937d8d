package metadata

import (
	"iter"
	"slices"
	"strings"
)

// Value is an ordered list of nodes for one predicate.
//
// Elements are usually string scalars or *Tree blank nodes. A nested Value
// (or []any) is flattened in place. Any other element is rendered with its
// default fmt representation, so numbers can be passed as-is.
type Value []any

// Entry is a single predicate with its value.
type Entry struct {
	Predicate string
	Value     Value
}

// Tree is an ordered predicate → value mapping.
//
// The root tree of a document carries the SubjectURI it describes. Nested
// trees are anonymous blank nodes and leave SubjectURI empty.
type Tree struct {
	SubjectURI string

	entries []Entry
}

// New creates an empty root tree for the given subject.
func New(subjectURI string) *Tree {
	return &Tree{SubjectURI: subjectURI}
}

// NewNode creates an empty blank node.
func NewNode() *Tree {
	return &Tree{}
}

// Add appends a predicate with the given nodes and returns the tree so calls
// can be chained. Adding a predicate twice is not rejected here; Validate
// reports it.
func (t *Tree) Add(predicate string, nodes ...any) *Tree {
	t.entries = append(t.entries, Entry{Predicate: predicate, Value: Value(nodes)})
	return t
}

// Get returns the value of the first entry for predicate.
func (t *Tree) Get(predicate string) (Value, bool) {
	if t == nil {
		return nil, false
	}
	for _, e := range t.entries {
		if e.Predicate == predicate {
			return e.Value, true
		}
	}
	return nil, false
}

// Len returns the number of entries.
func (t *Tree) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// Entries returns a copy of the entries in insertion order.
func (t *Tree) Entries() []Entry {
	if t == nil {
		return nil
	}
	return slices.Clone(t.entries)
}

// All iterates over the entries in insertion order.
func (t *Tree) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		if t == nil {
			return
		}
		for _, e := range t.entries {
			if !yield(e.Predicate, e.Value) {
				return
			}
		}
	}
}

// Validate checks the root invariants: a non-empty subject URI and unique
// predicates in this tree and in every nested blank node.
func (t *Tree) Validate() error {
	if t == nil || strings.TrimSpace(t.SubjectURI) == "" {
		return &InvalidMetadataError{Reason: "missing subject URI"}
	}
	return validateEntries(t)
}

func validateEntries(t *Tree) error {
	seen := make(map[string]struct{}, len(t.entries))
	for _, e := range t.entries {
		if _, dup := seen[e.Predicate]; dup {
			return &InvalidMetadataError{Predicate: e.Predicate, Reason: "duplicate predicate"}
		}
		seen[e.Predicate] = struct{}{}
		if err := validateValue(e.Value); err != nil {
			return err
		}
	}
	return nil
}

func validateValue(v []any) error {
	for _, node := range v {
		switch n := node.(type) {
		case *Tree:
			if n == nil {
				continue
			}
			if err := validateEntries(n); err != nil {
				return err
			}
		case Tree:
			if err := validateEntries(&n); err != nil {
				return err
			}
		case Value:
			if err := validateValue(n); err != nil {
				return err
			}
		case []any:
			if err := validateValue(n); err != nil {
				return err
			}
		}
	}
	return nil
}
