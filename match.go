package evalb

import (
	"github.com/jamesainslie/go-evalb/equiv"
	"github.com/jamesainslie/go-evalb/tree"
)

// Match pairs gold brackets with test brackets and returns the number of
// pairs. Both slices must have been massaged.
//
// Matching is greedy: each gold bracket, in order, takes the first
// Unmatched test bracket with the same span and, when labeled is set, an
// equivalent label. Matched brackets on both sides are marked Matched.
func Match(gold, test []tree.Bracket, labeled bool, labels *equiv.Registry) int {
	match := 0
	for i := range gold {
		g := &gold[i]
		if g.State == tree.Deleted {
			continue
		}
		for j := range test {
			t := &test[j]
			if t.State != tree.Unmatched ||
				g.Start != t.Start || g.End != t.End {
				continue
			}
			if labeled && !labels.Equal(g.Label, t.Label) {
				continue
			}
			g.State = tree.Matched
			t.State = tree.Matched
			match++
			break
		}
	}
	return match
}

// Crossing counts test brackets that cross at least one gold bracket.
// Deleted brackets on either side are ignored. Each test bracket counts
// at most once.
func Crossing(gold, test []tree.Bracket) int {
	crossing := 0
	for _, t := range test {
		if t.State == tree.Deleted {
			continue
		}
		for _, g := range gold {
			if g.State != tree.Deleted && g.Crosses(t) {
				crossing++
				break
			}
		}
	}
	return crossing
}

// Tag compares aligned pre-terminal labels as written and marks both
// terminals Matched or Unmatched. gold and test must have equal length.
func Tag(gold, test []tree.Terminal, labels *equiv.Registry) int {
	correct := 0
	for i := range gold {
		if labels.Equal(gold[i].Label, test[i].Label) {
			gold[i].State = tree.Matched
			test[i].State = tree.Matched
			correct++
		} else {
			gold[i].State = tree.Unmatched
			test[i].State = tree.Unmatched
		}
	}
	return correct
}
