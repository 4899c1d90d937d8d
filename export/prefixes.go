package export

import (
	"iter"
	"strings"
)

// PrefixOf returns the namespace prefix of a compact identifier token.
// Quoted literals and bracketed IRIs never carry a prefix.
func PrefixOf(token string) (string, bool) {
	if token == "" || token[0] == '"' || token[0] == '<' {
		return "", false
	}
	prefix, _, found := strings.Cut(token, ":")
	return prefix, found
}

// CollectPrefixes returns the distinct prefixes used by tokens in the order
// they first appear.
func CollectPrefixes(tokens iter.Seq[string]) []string {
	var prefixes []string
	seen := make(map[string]struct{})
	for tok := range tokens {
		prefix, ok := PrefixOf(tok)
		if !ok {
			continue
		}
		if _, dup := seen[prefix]; dup {
			continue
		}
		seen[prefix] = struct{}{}
		prefixes = append(prefixes, prefix)
	}
	return prefixes
}
