package export

import (
	"iter"
	"strings"
)

// Layout turns a root token sequence into text fragments whose concatenation
// is the indented Turtle body.
//
// Indentation grows on "[" and shrinks after the matching "]". A ";" ends the
// line; when the next token is "]" the following indentation is one level
// shallower so the bracket closes in line with its predicate.
func Layout(tokens iter.Seq[string], opts Options) iter.Seq[string] {
	return func(yield func(string) bool) {
		s := NewStream(tokens)
		defer s.Close()

		if _, ok := s.Peek(); !ok {
			return
		}

		p := &printer{opts: opts, level: opts.StartIndentLevel, newLine: true}
		if !yield(p.indent(p.level)) {
			return
		}

		for {
			tok, ok := s.Next()
			if !ok {
				return
			}
			next, _ := s.Peek()
			for _, frag := range p.layout(tok, next) {
				if !yield(frag) {
					return
				}
			}
		}
	}
}

// printer holds the layout state between tokens.
type printer struct {
	opts    Options
	level   int
	newLine bool // last fragment ended a line
	frags   []string
}

func (p *printer) indent(level int) string {
	return strings.Repeat(" ", max(p.opts.IndentSize*level, 0))
}

// layout returns the fragments for tok. The returned slice is reused by the
// next call.
func (p *printer) layout(tok, next string) []string {
	frags := p.frags[:0]

	switch tok {
	case TokenOpen:
		if !p.newLine {
			frags = append(frags, " ")
		}
		frags = append(frags, tok)
		p.level++
		if next != TokenClose {
			frags = append(frags, "\n", p.indent(p.level))
		}
		p.newLine = true

	case TokenSeparator:
		frags = append(frags, tok, "\n")
		if p.opts.BlankLineBetweenStatements && p.level == p.opts.StartIndentLevel {
			frags = append(frags, "\n")
		}
		level := p.level
		if next == TokenClose {
			level--
		}
		frags = append(frags, p.indent(level))
		p.newLine = true

	case TokenComma, TokenTerminator:
		frags = append(frags, tok)
		p.newLine = false

	default:
		if !p.newLine {
			frags = append(frags, " ")
		}
		frags = append(frags, tok)
		if tok == TokenClose {
			p.level--
		}
		p.newLine = false
	}

	p.frags = frags
	return frags
}
