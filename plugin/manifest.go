package plugin

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/c360studio/lv2ttl/metadata"
	"github.com/c360studio/lv2ttl/vocabulary/lv2"
)

// BinaryName returns the shared object name for a description loaded from
// sourcePath.
func (d *Description) BinaryName(sourcePath string) string {
	if d.Binary != "" {
		return d.Binary
	}
	base := filepath.Base(sourcePath)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".so"
}

// Metadata builds the manifest tree for the plugin. Predicates are added in
// the order they appear in the manifest; author, license and comment are
// only present when set.
func (d *Description) Metadata(sourcePath string) *metadata.Tree {
	tree := metadata.New(d.URI).
		Add(lv2.Type, lv2.ClassPlugin).
		Add(lv2.Binary, metadata.IRI(d.BinaryName(sourcePath)))

	ports := d.Ports
	if len(ports) == 0 {
		ports = DefaultPorts()
	}
	nodes := make([]any, 0, len(ports))
	for i, p := range ports {
		nodes = append(nodes, p.node(i))
	}
	tree.Add(lv2.Port, nodes...)

	tree.Add(lv2.DOAPName, metadata.Literal(d.Name))

	// The author is both developer and maintainer.
	if person := d.person(); person != nil {
		tree.Add(lv2.DOAPDeveloper, person)
		tree.Add(lv2.DOAPMaintainer, d.person())
	}

	if d.License != "" {
		tree.Add(lv2.DOAPLicense, metadata.IRI(d.License))
	}
	if d.Comment != "" {
		tree.Add(lv2.RDFSComment, metadata.LongLiteral(d.Comment))
	}
	return tree
}

func (d *Description) person() *metadata.Tree {
	if d.Author == "" && d.AuthorHomepage == "" && d.AuthorEmail == "" {
		return nil
	}
	node := metadata.NewNode()
	if d.Author != "" {
		node.Add(lv2.FOAFName, metadata.Literal(d.Author))
	}
	if d.AuthorHomepage != "" {
		node.Add(lv2.FOAFHomepage, metadata.IRI(d.AuthorHomepage))
	}
	if d.AuthorEmail != "" {
		node.Add(lv2.FOAFMbox, metadata.Mailto(d.AuthorEmail))
	}
	return node
}

func (p Port) node(index int) *metadata.Tree {
	name := p.Name
	if name == "" {
		name = p.Symbol
	}

	node := metadata.NewNode().
		Add(lv2.Type, p.class(), p.directionClass()).
		Add(lv2.Index, index).
		Add(lv2.Symbol, metadata.Literal(p.Symbol)).
		Add(lv2.Name, metadata.Literal(name))

	if p.Type != PortControl {
		return node
	}
	if p.Default != nil {
		node.Add(lv2.Default, decimal(*p.Default))
	}
	if p.Minimum != nil {
		node.Add(lv2.Minimum, decimal(*p.Minimum))
	}
	if p.Maximum != nil {
		node.Add(lv2.Maximum, decimal(*p.Maximum))
	}
	return node
}

func (p Port) class() string {
	switch p.Type {
	case PortControl:
		return lv2.ClassControlPort
	case PortCV:
		return lv2.ClassCVPort
	default:
		return lv2.ClassAudioPort
	}
}

func (p Port) directionClass() string {
	if p.Direction == DirectionOutput {
		return lv2.ClassOutputPort
	}
	return lv2.ClassInputPort
}

// decimal formats f as a Turtle decimal so it is never read as an integer.
func decimal(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
