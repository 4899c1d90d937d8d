package metadata

import (
	"errors"
	"fmt"
)

// ErrInvalidMetadata is matched by every *InvalidMetadataError.
var ErrInvalidMetadata = errors.New("invalid metadata")

// InvalidMetadataError reports a tree that breaks the model invariants.
type InvalidMetadataError struct {
	// Predicate is the offending predicate, empty when the problem is the
	// subject itself.
	Predicate string

	// Reason describes what is wrong.
	Reason string
}

func (e *InvalidMetadataError) Error() string {
	if e.Predicate == "" {
		return fmt.Sprintf("invalid metadata: %s", e.Reason)
	}
	return fmt.Sprintf("invalid metadata: predicate %q: %s", e.Predicate, e.Reason)
}

// Is reports whether target is ErrInvalidMetadata.
func (e *InvalidMetadataError) Is(target error) bool {
	return target == ErrInvalidMetadata
}
