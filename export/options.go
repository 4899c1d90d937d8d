package export

import "fmt"

// Options controls the layout of the Turtle body.
type Options struct {
	// StartIndentLevel is the indentation level of top-level predicates.
	StartIndentLevel int `yaml:"start_indent_level" json:"start_indent_level"`

	// IndentSize is the number of spaces per indentation level.
	IndentSize int `yaml:"indent_size" json:"indent_size"`

	// BlankLineBetweenStatements adds an empty line after each top-level
	// predicate statement. Nested blank nodes are never affected.
	BlankLineBetweenStatements bool `yaml:"blank_line_between_statements" json:"blank_line_between_statements"`
}

// DefaultOptions returns the layout used for LV2 manifests.
func DefaultOptions() Options {
	return Options{
		StartIndentLevel:           1,
		IndentSize:                 2,
		BlankLineBetweenStatements: true,
	}
}

// Validate checks that the options describe a usable layout.
func (o Options) Validate() error {
	if o.StartIndentLevel < 0 {
		return fmt.Errorf("%w: start indent level must be >= 0, got %d", ErrInvalidOptions, o.StartIndentLevel)
	}
	if o.IndentSize <= 0 {
		return fmt.Errorf("%w: indent size must be > 0, got %d", ErrInvalidOptions, o.IndentSize)
	}
	return nil
}
