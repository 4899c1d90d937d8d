// Package export serializes metadata trees to Turtle.
//
// The pipeline is lazy end to end:
//
//	Tokens(tree)                 → iter.Seq[string] of lexical tokens
//	Layout(tokens, opts)         → iter.Seq[string] of text fragments
//	CollectPrefixes(tokens)      → prefixes in first-appearance order
//	Renderer.Render(tree)        → prefix declarations + subject + body
//
// The token sequence fixes all punctuation. Layout only decides spacing,
// line breaks and indentation, looking one token ahead through a Stream.
//
// # Output
//
// With the default options a tree renders as:
//
//	@prefix lv2: <http://lv2plug.in/ns/lv2core#>.
//
//	<http://example.org/plugins/gain>
//	  a lv2:Plugin;
//
//	  lv2:port [
//	    a lv2:AudioPort, lv2:InputPort;
//	    lv2:index 0;
//	  ].
//
// Every function in this package is pure and safe for concurrent use.
package export
