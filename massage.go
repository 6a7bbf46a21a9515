package evalb

import (
	"github.com/jamesainslie/go-evalb/equiv"
	"github.com/jamesainslie/go-evalb/tree"
)

// Massage normalizes bracket labels and marks brackets that take no part
// in scoring as Deleted: zero-width brackets, and brackets whose label
// (normalized or as written) is in del or equivalent under eq to a label
// in del. All other brackets become Unmatched. It returns the number of
// brackets left for scoring.
func Massage(brackets []tree.Bracket, del tree.LabelSet, eq *equiv.Registry) int {
	n := 0
	for i := range brackets {
		b := &brackets[i]

		if b.Start == b.End {
			b.State = tree.Deleted
			continue
		}

		raw := b.Label
		b.Label = tree.NormalizeLabel(raw)
		if isDeleted(b.Label, del, eq) || isDeleted(raw, del, eq) {
			b.State = tree.Deleted
			continue
		}

		b.State = tree.Unmatched
		n++
	}
	return n
}

func isDeleted(label string, del tree.LabelSet, eq *equiv.Registry) bool {
	if del.Has(label) {
		return true
	}
	if eq.Len() == 0 {
		return false
	}
	for d := range del {
		if eq.Equal(label, d) {
			return true
		}
	}
	return false
}
