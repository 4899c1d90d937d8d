// Package vocabulary provides the prefix registry used to declare the
// namespaces of compact identifiers in generated Turtle documents.
//
// A Registry is immutable once built. Embedding applications extend it with
// With, which returns a new registry and leaves the receiver untouched, so a
// single registry can be shared by concurrent renderers.
package vocabulary

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"dario.cat/mergo"

	"github.com/c360studio/lv2ttl/vocabulary/lv2"
)

// ErrInvalidPrefix is returned when a prefix or namespace cannot be declared.
var ErrInvalidPrefix = errors.New("invalid prefix")

// Registry maps prefixes to namespace IRIs.
type Registry struct {
	namespaces map[string]string
}

var defaultRegistry = mustRegistry(lv2.Prefixes)

// Default returns the built-in registry with the LV2 manifest vocabularies.
func Default() *Registry {
	return defaultRegistry
}

// NewRegistry creates a registry from a prefix → namespace map. The map is
// copied.
func NewRegistry(namespaces map[string]string) (*Registry, error) {
	for prefix, ns := range namespaces {
		if err := checkPrefix(prefix, ns); err != nil {
			return nil, err
		}
	}
	return &Registry{namespaces: maps.Clone(namespaces)}, nil
}

func mustRegistry(namespaces map[string]string) *Registry {
	r, err := NewRegistry(namespaces)
	if err != nil {
		panic(err)
	}
	return r
}

// Namespace returns the namespace IRI declared for prefix.
func (r *Registry) Namespace(prefix string) (string, bool) {
	if r == nil {
		return "", false
	}
	ns, ok := r.namespaces[prefix]
	return ns, ok
}

// Prefixes returns the registered prefixes in sorted order.
func (r *Registry) Prefixes() []string {
	if r == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(r.namespaces))
}

// Len returns the number of registered prefixes.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.namespaces)
}

// With returns a new registry holding the receiver's entries overridden by
// extra.
func (r *Registry) With(extra map[string]string) (*Registry, error) {
	for prefix, ns := range extra {
		if err := checkPrefix(prefix, ns); err != nil {
			return nil, err
		}
	}

	merged := make(map[string]string, r.Len()+len(extra))
	if r != nil {
		maps.Copy(merged, r.namespaces)
	}
	if err := mergo.Merge(&merged, extra, mergo.WithOverride); err != nil {
		return nil, fmt.Errorf("merge prefixes: %w", err)
	}
	return &Registry{namespaces: merged}, nil
}

// checkPrefix accepts the empty prefix, which Turtle allows as ":".
func checkPrefix(prefix, ns string) error {
	if strings.ContainsAny(prefix, ": \t\n<>\"") {
		return fmt.Errorf("%w: %q", ErrInvalidPrefix, prefix)
	}
	if ns == "" || strings.ContainsAny(ns, " \t\n<>\"") {
		return fmt.Errorf("%w: namespace %q for prefix %q", ErrInvalidPrefix, ns, prefix)
	}
	return nil
}
