package tree

import "fmt"

// Parser converts lines of bracket notation into Sentences.
//
// A pre-terminal is a bracket holding exactly one bare word: "(NN pen)".
// Any other bracket is a non-terminal and becomes a Bracket spanning the
// terminals read between its open and close.
type Parser struct {
	// Delete lists pre-terminal labels whose terminals are dropped
	// entirely. Compared against the label as written.
	Delete LabelSet
	// DeleteForLength lists pre-terminal labels not counted in
	// Sentence.Length.
	DeleteForLength LabelSet
}

// NewParser creates a Parser with the given deletion sets.
func NewParser(del, delForLength LabelSet) *Parser {
	return &Parser{Delete: del, DeleteForLength: delForLength}
}

// Parse reads one line. Brackets are listed in the order they are opened.
// A bracket whose children were all deleted, or that holds nothing at
// all as in "(X )", gets Start == End.
func (p *Parser) Parse(line string) (*Sentence, error) {
	s := &Sentence{}
	var stack []int

	for i := 0; i < len(line); {
		c := line[i]
		switch {
		case isSpace(c):
			i++

		case c == '(':
			i++
			start := i
			for i < len(line) && !isTerminator(line[i]) {
				i++
			}
			label := line[start:i]

			if i < len(line) && isSpace(line[i]) {
				j := i
				for j < len(line) && isSpace(line[j]) {
					j++
				}
				wordStart := j
				for j < len(line) && !isTerminator(line[j]) {
					j++
				}
				word := line[wordStart:j]

				if j < len(line) && line[j] == ')' && word != "" {
					if !p.DeleteForLength.Has(label) {
						s.Length++
					}
					if !p.Delete.Has(label) {
						s.Terminals = append(s.Terminals, Terminal{Word: word, Label: label})
					}
					i = j + 1
					continue
				}
				if word != "" {
					return nil, fmt.Errorf("%w: more than two elements in bracket %q at offset %d", ErrMalformed, label, start-1)
				}
			}

			stack = append(stack, len(s.Brackets))
			s.Brackets = append(s.Brackets, Bracket{
				Start: len(s.Terminals),
				End:   -1,
				Label: label,
			})

		case c == ')':
			if len(stack) == 0 {
				return nil, fmt.Errorf("%w: too many close brackets at offset %d", ErrUnbalanced, i)
			}
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			s.Brackets[top].End = len(s.Terminals)
			i++

		default:
			return nil, fmt.Errorf("%w: unexpected %q at offset %d", ErrMalformed, c, i)
		}
	}

	if len(stack) > 0 {
		return nil, fmt.Errorf("%w: %d open brackets at end of line", ErrUnbalanced, len(stack))
	}
	return s, nil
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

func isTerminator(c byte) bool {
	return isSpace(c) || c == '(' || c == ')'
}
