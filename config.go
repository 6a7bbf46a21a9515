package evalb

import (
	"github.com/jamesainslie/go-evalb/equiv"
	"github.com/jamesainslie/go-evalb/tree"
)

const (
	// DefaultLengthCutoff is the historical sentence-length cutoff for the
	// secondary statistics.
	DefaultLengthCutoff = 40

	// DefaultMaxErrors is the number of errors tolerated before a run stops.
	DefaultMaxErrors = 10
)

// Config holds scoring parameters.
type Config struct {
	// Labeled requires matching brackets to carry equivalent labels.
	// When false only spans are compared.
	Labeled bool
	// DeleteLabels are excluded from scoring. Pre-terminals with these
	// labels are dropped with their words; non-terminals lose only their
	// bracket.
	DeleteLabels []string
	// DeleteLabelsForLength are pre-terminal labels not counted toward
	// the sentence length used by the cutoff statistics.
	DeleteLabelsForLength []string
	LabelEquiv            *equiv.Registry
	WordEquiv             *equiv.Registry
	LengthCutoff          int
	MaxErrors             int
	// Debug asks for per-sentence terminal and bracket dumps.
	Debug bool
}

// DefaultConfig returns the default scoring configuration.
func DefaultConfig() Config {
	return Config{
		Labeled:      true,
		LabelEquiv:   equiv.New(),
		WordEquiv:    equiv.New(),
		LengthCutoff: DefaultLengthCutoff,
		MaxErrors:    DefaultMaxErrors,
	}
}

func (c Config) parser() *tree.Parser {
	return tree.NewParser(
		tree.NewLabelSet(c.DeleteLabels...),
		tree.NewLabelSet(c.DeleteLabelsForLength...),
	)
}
