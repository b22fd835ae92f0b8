package radix

import "errors"

var (
	// ErrInvalidKey signals an empty key passed to a mutating or lookup operation.
	ErrInvalidKey = errors.New("radix: invalid key")
	// ErrKeyNotFound signals that no inserted key terminates at the requested word.
	ErrKeyNotFound = errors.New("radix: key not found")
	// ErrInvariant marks a structural invariant violation detected by Check.
	ErrInvariant = errors.New("radix: invariant violation")
)
