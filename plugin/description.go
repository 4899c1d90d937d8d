package plugin

import (
	"fmt"
	"math"
	"strings"
)

// PortType is the kind of data a port carries.
type PortType string

const (
	PortAudio   PortType = "audio"
	PortControl PortType = "control"
	PortCV      PortType = "cv"
)

// Direction tells whether the plugin reads or writes a port.
type Direction string

const (
	DirectionInput  Direction = "input"
	DirectionOutput Direction = "output"
)

// Description is the declarative source of a plugin manifest.
type Description struct {
	Name           string `yaml:"name" toml:"name"`
	URI            string `yaml:"uri" toml:"uri"`
	Author         string `yaml:"author,omitempty" toml:"author"`
	AuthorHomepage string `yaml:"author_homepage,omitempty" toml:"author_homepage"`
	AuthorEmail    string `yaml:"author_email,omitempty" toml:"author_email"`
	License        string `yaml:"license,omitempty" toml:"license"`
	Comment        string `yaml:"comment,omitempty" toml:"comment"`

	// Binary is the shared object name; empty means <source name>.so.
	Binary string `yaml:"binary,omitempty" toml:"binary"`

	// Ports lists the plugin ports in index order; empty means DefaultPorts.
	Ports []Port `yaml:"ports,omitempty" toml:"ports"`
}

// Port describes one plugin port.
type Port struct {
	Type      PortType  `yaml:"type" toml:"type"`
	Direction Direction `yaml:"direction" toml:"direction"`
	Symbol    string    `yaml:"symbol" toml:"symbol"`
	Name      string    `yaml:"name,omitempty" toml:"name"`

	// Control port range, ignored for other port types.
	Default *float64 `yaml:"default,omitempty" toml:"default"`
	Minimum *float64 `yaml:"minimum,omitempty" toml:"minimum"`
	Maximum *float64 `yaml:"maximum,omitempty" toml:"maximum"`
}

// DefaultPorts returns a mono audio input and output.
func DefaultPorts() []Port {
	return []Port{
		{Type: PortAudio, Direction: DirectionInput, Symbol: "In", Name: "In"},
		{Type: PortAudio, Direction: DirectionOutput, Symbol: "Out", Name: "Out"},
	}
}

// Validate checks the required fields and the port list.
func (d *Description) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidDescription)
	}
	if strings.TrimSpace(d.URI) == "" {
		return fmt.Errorf("%w: uri is required", ErrInvalidDescription)
	}

	symbols := make(map[string]struct{}, len(d.Ports))
	for i, p := range d.Ports {
		if err := p.validate(); err != nil {
			return fmt.Errorf("%w: port %d: %s", ErrInvalidDescription, i, err)
		}
		if _, dup := symbols[p.Symbol]; dup {
			return fmt.Errorf("%w: port %d: duplicate symbol %q", ErrInvalidDescription, i, p.Symbol)
		}
		symbols[p.Symbol] = struct{}{}
	}
	return nil
}

func (p Port) validate() error {
	switch p.Type {
	case PortAudio, PortControl, PortCV:
	default:
		return fmt.Errorf("unknown type %q", p.Type)
	}
	switch p.Direction {
	case DirectionInput, DirectionOutput:
	default:
		return fmt.Errorf("unknown direction %q", p.Direction)
	}
	if p.Symbol == "" {
		return fmt.Errorf("symbol is required")
	}
	for _, v := range []*float64{p.Default, p.Minimum, p.Maximum} {
		if v != nil && (math.IsNaN(*v) || math.IsInf(*v, 0)) {
			return fmt.Errorf("range values must be finite")
		}
	}
	if p.Minimum != nil && p.Maximum != nil && *p.Minimum > *p.Maximum {
		return fmt.Errorf("minimum %v above maximum %v", *p.Minimum, *p.Maximum)
	}
	return nil
}
