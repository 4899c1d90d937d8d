package vocabulary_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/lv2ttl/vocabulary"
	"github.com/c360studio/lv2ttl/vocabulary/lv2"
)

func TestDefaultRegistry(t *testing.T) {
	reg := vocabulary.Default()

	tests := []struct {
		prefix string
		want   string
	}{
		{"lv2", "http://lv2plug.in/ns/lv2core#"},
		{"doap", "http://usefulinc.com/ns/doap#"},
		{"foaf", "http://xmlns.com/foaf/0.1/"},
		{"rdfs", "http://www.w3.org/2000/01/rdf-schema#"},
	}

	for _, tc := range tests {
		t.Run(tc.prefix, func(t *testing.T) {
			got, ok := reg.Namespace(tc.prefix)
			if !ok {
				t.Fatalf("prefix %q not registered", tc.prefix)
			}
			if got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}

	assert.Equal(t, len(lv2.Prefixes), reg.Len())
	assert.IsIncreasing(t, reg.Prefixes())
}

func TestRegistryWithDoesNotMutate(t *testing.T) {
	base := vocabulary.Default()
	before := base.Len()

	extended, err := base.With(map[string]string{
		"ex":  "http://example.org/ns#",
		"lv2": "http://example.org/lv2#",
	})
	require.NoError(t, err)

	ns, ok := extended.Namespace("ex")
	require.True(t, ok)
	assert.Equal(t, "http://example.org/ns#", ns)

	ns, _ = extended.Namespace("lv2")
	assert.Equal(t, "http://example.org/lv2#", ns, "extra entries override")

	ns, _ = base.Namespace("lv2")
	assert.Equal(t, lv2.Namespace, ns)
	assert.Equal(t, before, base.Len())
	_, ok = base.Namespace("ex")
	assert.False(t, ok)
}

func TestNewRegistryCopiesInput(t *testing.T) {
	src := map[string]string{"ex": "http://example.org/"}
	reg, err := vocabulary.NewRegistry(src)
	require.NoError(t, err)

	src["ex"] = "http://changed.example.org/"
	ns, _ := reg.Namespace("ex")
	assert.Equal(t, "http://example.org/", ns)
}

func TestRegistryRejectsInvalidPrefixes(t *testing.T) {
	tests := []struct {
		name  string
		input map[string]string
	}{
		{"colon in prefix", map[string]string{"a:b": "http://example.org/"}},
		{"space in prefix", map[string]string{"a b": "http://example.org/"}},
		{"empty namespace", map[string]string{"ex": ""}},
		{"bracket in namespace", map[string]string{"ex": "<http://example.org/>"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := vocabulary.NewRegistry(tc.input)
			assert.True(t, errors.Is(err, vocabulary.ErrInvalidPrefix), "NewRegistry: %v", err)

			_, err = vocabulary.Default().With(tc.input)
			assert.True(t, errors.Is(err, vocabulary.ErrInvalidPrefix), "With: %v", err)
		})
	}
}

func TestEmptyPrefixAllowed(t *testing.T) {
	reg, err := vocabulary.NewRegistry(map[string]string{"": "http://example.org/base#"})
	require.NoError(t, err)

	ns, ok := reg.Namespace("")
	assert.True(t, ok)
	assert.Equal(t, "http://example.org/base#", ns)
}

func TestNilRegistry(t *testing.T) {
	var reg *vocabulary.Registry
	_, ok := reg.Namespace("lv2")
	assert.False(t, ok)
	assert.Zero(t, reg.Len())
	assert.Nil(t, reg.Prefixes())

	extended, err := reg.With(map[string]string{"ex": "http://example.org/"})
	require.NoError(t, err)
	assert.Equal(t, 1, extended.Len())
}
