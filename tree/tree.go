// Package tree parses one-line bracketed constituency trees into a flat
// terminal sequence and a flat list of labeled bracket spans.
package tree

// State is the scoring state of a terminal or bracket.
type State int

const (
	Undefined State = iota
	Unmatched
	Matched
	Deleted
)

// String returns the one-letter code used in debug listings.
func (s State) String() string {
	switch s {
	case Unmatched:
		return "0"
	case Matched:
		return "1"
	case Deleted:
		return "5"
	default:
		return "9"
	}
}

// Terminal is a word with its pre-terminal label.
type Terminal struct {
	Word  string
	Label string
	State State
}

// Bracket covers terminals [Start, End).
type Bracket struct {
	Start int
	End   int
	Label string
	State State
}

// Len returns the number of terminals covered by the bracket.
func (b Bracket) Len() int { return b.End - b.Start }

// Crosses reports whether b and o overlap without either containing the other.
func (b Bracket) Crosses(o Bracket) bool {
	return (b.Start < o.Start && o.Start < b.End && b.End < o.End) ||
		(o.Start < b.Start && b.Start < o.End && o.End < b.End)
}

// Sentence is one parsed line.
type Sentence struct {
	Terminals []Terminal
	Brackets  []Bracket
	// Length counts terminals whose label is not excluded for length,
	// including terminals dropped as deleted pre-terminals.
	Length int
}

// LabelSet is a set of labels.
type LabelSet map[string]struct{}

// NewLabelSet builds a LabelSet from labels.
func NewLabelSet(labels ...string) LabelSet {
	s := make(LabelSet, len(labels))
	for _, l := range labels {
		s[l] = struct{}{}
	}
	return s
}

// Has reports whether label is in the set. A nil set is empty.
func (s LabelSet) Has(label string) bool {
	_, ok := s[label]
	return ok
}
