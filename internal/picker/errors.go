package picker

import "errors"

// Sentinel errors returned by the picker. Callers match them with errors.Is;
// wrapped errors carry the underlying cause.
var (
	// ErrConfiguration reports an invalid or unusable configuration.
	ErrConfiguration = errors.New("invalid configuration")

	// ErrExhausted reports that every image in the pool has been used.
	ErrExhausted = errors.New("image pool exhausted")

	// ErrWrite reports a failure to encode or store a destination image.
	ErrWrite = errors.New("cannot write image")
)
