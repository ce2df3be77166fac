package skincfg

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by decoding and lookup operations.
var (
	// ErrNotConvertible reports that a stored raw value exists but cannot be
	// parsed into the requested type. The resolution chain swallows this and
	// moves on to the next source; it is never surfaced to GetConfig callers.
	ErrNotConvertible = errors.New("stored value not convertible to requested type")

	// ErrSkinNotFound reports that the skin definition file does not exist.
	ErrSkinNotFound = errors.New("skin definition file not found")

	// ErrUnknownFormat reports that the skin definition format could not be
	// determined from the file extension or content.
	ErrUnknownFormat = errors.New("unable to determine skin definition format")
)

// ContractError reports a structurally impossible (lookup, value type)
// pairing, e.g. requesting a named colour as an int. This is a caller bug
// rather than a data problem, so it is raised as a panic instead of flowing
// through the ordinary not-convertible path.
type ContractError struct {
	Lookup Lookup
	Target string
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("lookup %v cannot produce a value of type %s", e.Lookup, e.Target)
}

// contractViolation panics with a ContractError for the given pairing.
func contractViolation(lookup Lookup, target string) {
	panic(&ContractError{Lookup: lookup, Target: target})
}
