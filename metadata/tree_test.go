package metadata

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTreeKeepsInsertionOrder(t *testing.T) {
	tree := New("http://example.org/p").
		Add("z", "1").
		Add("a", "2").
		Add("m", "3")

	var got []string
	for predicate := range tree.All() {
		got = append(got, predicate)
	}
	assert.Equal(t, []string{"z", "a", "m"}, got)
	assert.Equal(t, 3, tree.Len())

	v, ok := tree.Get("a")
	require.True(t, ok)
	assert.Equal(t, Value{"2"}, v)

	_, ok = tree.Get("missing")
	assert.False(t, ok)
}

func TestEntriesReturnsCopy(t *testing.T) {
	tree := New("http://example.org/p").Add("a", "1")
	entries := tree.Entries()
	entries[0].Predicate = "changed"

	_, ok := tree.Get("a")
	assert.True(t, ok)
}

func TestAllStopsEarly(t *testing.T) {
	tree := New("s").Add("a").Add("b").Add("c")
	n := 0
	for range tree.All() {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		tree      *Tree
		wantErr   bool
		predicate string
	}{
		{
			name: "valid tree",
			tree: New("http://example.org/p").Add("a", "lv2:Plugin").Add("lv2:port", NewNode().Add("lv2:index", 0)),
		},
		{
			name:    "nil tree",
			tree:    nil,
			wantErr: true,
		},
		{
			name:    "missing subject",
			tree:    New("").Add("a", "lv2:Plugin"),
			wantErr: true,
		},
		{
			name:    "blank subject",
			tree:    New("   "),
			wantErr: true,
		},
		{
			name:      "duplicate root predicate",
			tree:      New("s").Add("a", "x").Add("b", "y").Add("a", "z"),
			wantErr:   true,
			predicate: "a",
		},
		{
			name:      "duplicate nested predicate",
			tree:      New("s").Add("lv2:port", NewNode().Add("lv2:index", 0).Add("lv2:index", 1)),
			wantErr:   true,
			predicate: "lv2:index",
		},
		{
			name:      "duplicate inside nested list",
			tree:      New("s").Add("p", Value{"x", Value{NewNode().Add("q", 1).Add("q", 2)}}),
			wantErr:   true,
			predicate: "q",
		},
		{
			name: "empty value is legal",
			tree: New("s").Add("p"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.tree.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidMetadata))

			var invalid *InvalidMetadataError
			require.True(t, errors.As(err, &invalid))
			assert.Equal(t, tt.predicate, invalid.Predicate)
		})
	}
}

func TestLexicalHelpers(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"literal", Literal("Diff"), `"Diff"`},
		{"literal with quotes and newline", Literal("say \"hi\"\n"), `"say \"hi\"\n"`},
		{"long literal keeps line breaks", LongLiteral("\nline\n"), "\"\"\"\nline\n\"\"\""},
		{"long literal ending in quote", LongLiteral(`A "quoted"`), `"""A \"quoted\""""`},
		{"long literal ending in two quotes", LongLiteral(`x""`), `"""x\"\""""`},
		{"long literal with triple quotes", LongLiteral(`a"""b`), `"""a\"\"\"b"""`},
		{"long literal backslash", LongLiteral(`C:\dir`), `"""C:\\dir"""`},
		{"iri", IRI("diff.so"), `<diff.so>`},
		{"mailto", Mailto("someone@example.org"), `<mailto:someone@example.org>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}
