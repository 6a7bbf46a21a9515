package report

import (
	"strings"

	evalb "github.com/jamesainslie/go-evalb"
	"github.com/jamesainslie/go-evalb/tree"
)

var (
	blankTerminal = strings.Repeat(" ", 40)
	blankBracket  = strings.Repeat(" ", 32)
)

// dump writes the gold and test terminals and brackets side by side.
func (t *Text) dump(r *evalb.SentenceResult) {
	gold, test := r.Gold, r.Test
	if gold == nil {
		gold = &tree.Sentence{}
	}
	if test == nil {
		test = &tree.Sentence{}
	}

	t.printf("-<1>---(wn1=%3d, bn1=%3d)-           ", len(gold.Terminals), len(gold.Brackets))
	t.printf("-<2>---(wn2=%3d, bn2=%3d)-\n", len(test.Terminals), len(test.Brackets))

	for i := range max(len(gold.Terminals), len(test.Terminals)) {
		if i < len(gold.Terminals) {
			g := gold.Terminals[i]
			t.printf("%3d : %s : %-6s  %-16s      ", i, g.State, g.Label, g.Word)
		} else {
			t.printf("%s", blankTerminal)
		}
		if i < len(test.Terminals) {
			s := test.Terminals[i]
			t.printf("%3d : %s : %-6s  %-16s\n", i, s.State, s.Label, s.Word)
		} else {
			t.printf("\n")
		}
	}
	t.printf("\n")

	for i := range max(len(gold.Brackets), len(test.Brackets)) {
		if i < len(gold.Brackets) {
			b := gold.Brackets[i]
			t.printf("%3d : %s : %3d  %3d  %-6s      ", i, b.State, b.Start, b.End, b.Label)
		} else {
			t.printf("%s", blankBracket)
		}
		if i < len(test.Brackets) {
			b := test.Brackets[i]
			t.printf("%3d : %s : %3d  %3d  %-6s\n", i, b.State, b.Start, b.End, b.Label)
		} else {
			t.printf("\n")
		}
	}
	t.printf("\n")
	t.printf("========\n")
}
