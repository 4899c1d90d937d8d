package export_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/lv2ttl/export"
)

func TestStreamPeekDoesNotConsume(t *testing.T) {
	s := export.NewStream(slices.Values([]string{"a", "b"}))
	defer s.Close()

	tok, ok := s.Peek()
	require.True(t, ok)
	assert.Equal(t, "a", tok)

	tok, ok = s.Peek()
	require.True(t, ok)
	assert.Equal(t, "a", tok)

	tok, ok = s.Next()
	require.True(t, ok)
	assert.Equal(t, "a", tok)

	tok, ok = s.Next()
	require.True(t, ok)
	assert.Equal(t, "b", tok)

	_, ok = s.Peek()
	assert.False(t, ok)
	_, ok = s.Next()
	assert.False(t, ok)
}

func TestStreamPullsLazily(t *testing.T) {
	pulled := 0
	seq := func(yield func(string) bool) {
		for _, tok := range []string{"a", "b", "c", "d"} {
			pulled++
			if !yield(tok) {
				return
			}
		}
	}

	s := export.NewStream(seq)
	_, _ = s.Next()
	_, _ = s.Peek()
	assert.Equal(t, 2, pulled)

	s.Close()
	assert.Equal(t, 2, pulled)
}

func TestStreamEmpty(t *testing.T) {
	s := export.NewStream(slices.Values([]string(nil)))
	defer s.Close()

	_, ok := s.Peek()
	assert.False(t, ok)
	_, ok = s.Next()
	assert.False(t, ok)
}
