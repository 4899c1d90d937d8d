package export

import (
	"fmt"
	"iter"

	"github.com/c360studio/lv2ttl/metadata"
)

// Punctuation tokens.
const (
	TokenOpen       = "["
	TokenClose      = "]"
	TokenSeparator  = ";"
	TokenComma      = ","
	TokenTerminator = "."
)

// Tokens yields the tokens of a root tree: every predicate followed by its
// value, separated by ";" and terminated by ".". No brackets surround the
// root.
func Tokens(tree *metadata.Tree) iter.Seq[string] {
	return func(yield func(string) bool) {
		emitTree(tree, true, yield)
	}
}

// NodeTokens yields the tokens of a single value node. A *metadata.Tree is
// treated as a blank node and bracketed.
func NodeTokens(node any) iter.Seq[string] {
	return func(yield func(string) bool) {
		emitNode(node, yield)
	}
}

// The emit functions return false once the consumer stops.

func emitNode(node any, yield func(string) bool) bool {
	switch n := node.(type) {
	case string:
		return yield(n)
	case *metadata.Tree:
		return emitTree(n, false, yield)
	case metadata.Tree:
		return emitTree(&n, false, yield)
	case metadata.Value:
		return emitValue(n, yield)
	case []any:
		return emitValue(n, yield)
	case []string:
		for i, s := range n {
			if i > 0 && !yield(TokenComma) {
				return false
			}
			if !yield(s) {
				return false
			}
		}
		return true
	default:
		return yield(fmt.Sprint(n))
	}
}

func emitValue(v []any, yield func(string) bool) bool {
	for i, node := range v {
		if i > 0 && !yield(TokenComma) {
			return false
		}
		if !emitNode(node, yield) {
			return false
		}
	}
	return true
}

func emitTree(t *metadata.Tree, main bool, yield func(string) bool) bool {
	if !main && !yield(TokenOpen) {
		return false
	}

	size := t.Len()
	idx := 0
	for predicate, value := range t.All() {
		idx++
		if !yield(predicate) || !emitValue(value, yield) {
			return false
		}
		if main && idx == size {
			break
		}
		if !yield(TokenSeparator) {
			return false
		}
	}

	if main {
		return yield(TokenTerminator)
	}
	return yield(TokenClose)
}
