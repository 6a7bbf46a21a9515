// Package report renders scoring results: the fixed-width sentence
// table with its summary, the debug dump, the unmatched-bracket listing
// and a structured export of the corpus totals.
package report

import (
	"fmt"
	"io"

	evalb "github.com/jamesainslie/go-evalb"
	"github.com/jamesainslie/go-evalb/tree"
)

const rule = "============================================================================"

// Text writes the classic fixed-width report. Write errors are sticky:
// after the first one every call is a no-op and Err returns it.
type Text struct {
	w   io.Writer
	err error

	// Debug adds the terminal and bracket dump after each row. It needs
	// results with retained trees.
	Debug bool
	// ShowUnmatched lists spurious test brackets and unrecalled gold
	// brackets after each row. It needs results with retained trees.
	ShowUnmatched bool
}

// NewText returns a Text writing to w.
func NewText(w io.Writer) *Text {
	return &Text{w: w}
}

// Err returns the first write error.
func (t *Text) Err() error { return t.err }

func (t *Text) printf(format string, args ...any) {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintf(t.w, format, args...)
}

// Header writes the column headings.
func (t *Text) Header() {
	t.printf("  Sent.                        Matched  Bracket   Cross        Correct Tag\n")
	t.printf(" ID  Len.  Stat. Recal  Prec.  Bracket gold test Bracket Words  Tags Accracy\n")
	t.printf("%s\n", rule)
}

// Sentence writes one row, followed by the unmatched listing and the
// debug dump when enabled.
func (t *Text) Sentence(r *evalb.SentenceResult) {
	t.printf("%4d  %3d    %d  ", r.ID, r.Length, int(r.Status))
	t.printf("%6.2f %6.2f   %3d    %3d  %3d    %3d",
		r.Recall(), r.Precision(), r.Matched, r.GoldBrackets, r.TestBrackets, r.Crossing)
	t.printf("   %4d  %4d   %6.2f\n", r.Words, r.CorrectTags, r.TagAccuracy())

	if t.ShowUnmatched {
		t.unmatched(r)
	}
	if t.Debug {
		t.dump(r)
	}
}

// Totals writes the closing rule and the corpus totals row. The bracket
// columns are left out when either side has no brackets; the Cross
// column holds the number of sentences without crossing brackets.
func (t *Text) Totals(a evalb.Aggregate) {
	t.printf("%s\n", rule)
	if a.GoldBrackets > 0 && a.TestBrackets > 0 {
		t.printf("                %6.2f %6.2f %6d %5d %5d  %5d",
			a.Recall(), a.Precision(), a.Matched, a.GoldBrackets, a.TestBrackets, a.NoCrossing)
	}
	t.printf("  %5d %5d   %6.2f\n", a.Words, a.CorrectTags, a.TagAccuracy())
}

// Summary writes the "All" and "len<=N" blocks.
func (t *Text) Summary(s *evalb.Summary) {
	t.printf("=== Summary ===\n")
	t.block("All", s.All)
	t.block(fmt.Sprintf("len<=%d", s.CutoffLength), s.Cutoff)
}

func (t *Text) block(title string, a evalb.Aggregate) {
	t.printf("\n-- %s --\n", title)
	t.printf("Number of sentence        = %6d\n", a.Sentences)
	t.printf("Number of Error sentence  = %6d\n", a.ErrorSentences)
	t.printf("Number of Skip  sentence  = %6d\n", a.SkipSentences)
	t.printf("Number of Valid sentence  = %6d\n", a.ValidSentences())
	t.printf("Bracketing Recall         = %6.2f\n", a.Recall())
	t.printf("Bracketing Precision      = %6.2f\n", a.Precision())
	t.printf("Bracketing FMeasure       = %6.2f\n", a.FMeasure())
	t.printf("Complete match            = %6.2f\n", a.CompleteMatch())
	t.printf("Average crossing          = %6.2f\n", a.AverageCrossing())
	t.printf("No crossing               = %6.2f\n", a.NoCrossingRate())
	t.printf("2 or less crossing        = %6.2f\n", a.TwoOrLessCrossingRate())
	t.printf("Tagging accuracy          = %6.2f\n", a.TagAccuracy())
}

// unmatched lists brackets left Unmatched after matching. Ends are
// printed inclusive.
func (t *Text) unmatched(r *evalb.SentenceResult) {
	if r.Status != evalb.StatusOK || r.Gold == nil || r.Test == nil {
		return
	}
	for _, b := range r.Test.Brackets {
		if b.State == tree.Unmatched {
			t.printf("produced spurious bracket %s %d %d\n", b.Label, b.Start, b.End-1)
		}
	}
	for _, b := range r.Gold.Brackets {
		if b.State == tree.Unmatched {
			t.printf("didn't recall gold bracket %s %d %d\n", b.Label, b.Start, b.End-1)
		}
	}
}
