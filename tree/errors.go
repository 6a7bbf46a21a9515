package tree

import "errors"

// Sentinel errors returned by Parse, wrapped with position detail.
var (
	// ErrUnbalanced indicates a close bracket with no open bracket, or
	// open brackets left at the end of the line.
	ErrUnbalanced = errors.New("tree: unbalanced brackets")

	// ErrMalformed indicates text that is not bracket notation.
	ErrMalformed = errors.New("tree: malformed bracket notation")
)
