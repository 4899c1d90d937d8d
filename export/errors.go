package export

import (
	"errors"
	"fmt"
)

var (
	// ErrUnresolvedPrefix is matched by every *UnresolvedPrefixError.
	ErrUnresolvedPrefix = errors.New("unresolved prefix")

	// ErrInvalidOptions is returned for layout options out of range.
	ErrInvalidOptions = errors.New("invalid options")
)

// UnresolvedPrefixError reports a compact identifier whose prefix has no
// namespace in the registry.
type UnresolvedPrefixError struct {
	Prefix string
}

func (e *UnresolvedPrefixError) Error() string {
	return fmt.Sprintf("unresolved prefix %q: no namespace registered", e.Prefix)
}

// Is reports whether target is ErrUnresolvedPrefix.
func (e *UnresolvedPrefixError) Is(target error) bool {
	return target == ErrUnresolvedPrefix
}
