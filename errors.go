package evalb

import (
	"errors"

	"github.com/jamesainslie/go-evalb/internal/corpus"
)

// Sentinel errors for conditions callers may need to handle differently.
var (
	// ErrLengthMismatch indicates gold and test have different terminal counts.
	ErrLengthMismatch = errors.New("evalb: length unmatch")

	// ErrWordMismatch indicates an aligned terminal pair has different words.
	ErrWordMismatch = errors.New("evalb: words unmatch")

	// ErrCorpusMismatch indicates the gold and test files have different
	// numbers of lines. It ends the run.
	ErrCorpusMismatch = corpus.ErrLineCountMismatch

	// ErrTooManyErrors indicates the run stopped after exceeding Config.MaxErrors.
	ErrTooManyErrors = errors.New("evalb: too many errors")
)
