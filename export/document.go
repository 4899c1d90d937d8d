package export

import (
	"fmt"
	"strings"

	"github.com/c360studio/lv2ttl/metadata"
	"github.com/c360studio/lv2ttl/vocabulary"
)

// Renderer assembles complete Turtle documents against a prefix registry.
type Renderer struct {
	registry *vocabulary.Registry
	opts     Options
}

// NewRenderer creates a renderer. A nil registry selects vocabulary.Default.
func NewRenderer(registry *vocabulary.Registry, opts Options) (*Renderer, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if registry == nil {
		registry = vocabulary.Default()
	}
	return &Renderer{registry: registry, opts: opts}, nil
}

// Render renders tree with the default registry.
func Render(tree *metadata.Tree, opts Options) (string, error) {
	r, err := NewRenderer(nil, opts)
	if err != nil {
		return "", err
	}
	return r.Render(tree)
}

// Options returns the layout options of the renderer.
func (r *Renderer) Options() Options {
	return r.opts
}

// Prefixes validates tree and returns the prefixes its document declares.
func (r *Renderer) Prefixes(tree *metadata.Tree) ([]string, error) {
	if err := tree.Validate(); err != nil {
		return nil, err
	}
	prefixes := CollectPrefixes(Tokens(tree))
	for _, prefix := range prefixes {
		if _, ok := r.registry.Namespace(prefix); !ok {
			return nil, &UnresolvedPrefixError{Prefix: prefix}
		}
	}
	return prefixes, nil
}

// Document is a rendered Turtle document with the prefixes it declares.
type Document struct {
	Text     string
	Prefixes []string
}

// Render returns the document for tree: one @prefix line per used prefix, a
// blank line, the subject IRI and the indented predicate statements. Nothing
// is returned on error.
func (r *Renderer) Render(tree *metadata.Tree) (string, error) {
	doc, err := r.RenderDocument(tree)
	if err != nil {
		return "", err
	}
	return doc.Text, nil
}

// RenderDocument is Render that also reports the declared prefixes.
func (r *Renderer) RenderDocument(tree *metadata.Tree) (Document, error) {
	prefixes, err := r.Prefixes(tree)
	if err != nil {
		return Document{}, err
	}

	var sb strings.Builder
	for _, prefix := range prefixes {
		ns, _ := r.registry.Namespace(prefix)
		fmt.Fprintf(&sb, "@prefix %s: <%s>.\n", prefix, ns)
	}
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "<%s>\n", tree.SubjectURI)

	for frag := range Layout(Tokens(tree), r.opts) {
		sb.WriteString(frag)
	}
	return Document{Text: sb.String(), Prefixes: prefixes}, nil
}
