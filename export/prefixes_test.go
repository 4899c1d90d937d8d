package export_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/c360studio/lv2ttl/export"
	"github.com/c360studio/lv2ttl/metadata"
)

func TestCollectPrefixes(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		want   []string
	}{
		{
			name:   "first appearance without duplicates",
			tokens: []string{"1", "3:pref", "a:text", "a:string"},
			want:   []string{"3", "a"},
		},
		{
			name:   "quoted and bracketed tokens are skipped",
			tokens: []string{`"x:y"`, "<mailto:someone@example.org>", `"""a:b"""`, "doap:name"},
			want:   []string{"doap"},
		},
		{
			name:   "empty tokens and punctuation",
			tokens: []string{"", ";", ",", "[", "]", "."},
			want:   nil,
		},
		{
			name:   "empty prefix",
			tokens: []string{":local", "ex:a"},
			want:   []string{"", "ex"},
		},
		{
			name:   "prefix stops at first colon",
			tokens: []string{"ex:a:b"},
			want:   []string{"ex"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, export.CollectPrefixes(slices.Values(tt.tokens)))
		})
	}
}

func TestCollectPrefixesFromTree(t *testing.T) {
	tree := metadata.New("http://example.org/p").
		Add("a", "lv2:Plugin").
		Add("doap:maintainer", metadata.NewNode().
			Add("foaf:mbox", "<mailto:someone@example.org>").
			Add("foaf:name", `"Someone"`)).
		Add("rdfs:comment", `"lv2:not a prefix"`).
		Add("lv2:binary", "<p.so>")

	assert.Equal(t, []string{"lv2", "doap", "foaf", "rdfs"}, export.CollectPrefixes(export.Tokens(tree)))
}

func TestPrefixOf(t *testing.T) {
	prefix, ok := export.PrefixOf("lv2:index")
	assert.True(t, ok)
	assert.Equal(t, "lv2", prefix)

	_, ok = export.PrefixOf("<urn:x>")
	assert.False(t, ok)

	_, ok = export.PrefixOf("a")
	assert.False(t, ok)
}
