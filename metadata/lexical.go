package metadata

import "strings"

var literalEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

// Literal returns s as a short quoted Turtle string.
func Literal(s string) string {
	return `"` + literalEscaper.Replace(s) + `"`
}

var longLiteralEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
)

// LongLiteral returns s as a triple-quoted Turtle string. Line breaks are
// kept as they are; quotes and backslashes are escaped.
func LongLiteral(s string) string {
	return `"""` + longLiteralEscaper.Replace(s) + `"""`
}

// IRI returns iri wrapped in angle brackets.
func IRI(iri string) string {
	return "<" + iri + ">"
}

// Mailto returns a mailto IRI for the given address.
func Mailto(address string) string {
	return IRI("mailto:" + address)
}
