// Package metadata provides the ordered tree that describes a single RDF
// subject before it is serialized to Turtle.
//
// A Tree maps predicates (compact identifiers such as "lv2:port") to values.
// Insertion order is preserved and is the order in which predicates are
// emitted. A Value is a list of nodes; each node is either a scalar string
// holding an already-formed Turtle lexical form, a nested *Tree rendered as an
// anonymous blank node, or another Value which is flattened into the list.
//
// # Usage
//
//	tree := metadata.New("http://example.org/plugins/gain").
//	    Add("a", "lv2:Plugin").
//	    Add("doap:name", metadata.Literal("Gain")).
//	    Add("lv2:port", metadata.NewNode().Add("lv2:index", 0))
//
//	if err := tree.Validate(); err != nil {
//	    return err
//	}
//
// Scalars are never escaped or checked by the serializer. Use Literal,
// LongLiteral, IRI and Mailto to build valid lexical forms.
package metadata
