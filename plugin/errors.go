package plugin

import "errors"

var (
	// ErrInvalidDescription is returned when a description misses required
	// fields or declares inconsistent ports.
	ErrInvalidDescription = errors.New("invalid plugin description")

	// ErrUnsupportedFormat is returned for description files that are neither
	// YAML nor TOML.
	ErrUnsupportedFormat = errors.New("unsupported description format")
)
