package evalb

import (
	"sort"

	"github.com/samber/lo"
)

// SweepResult holds the aggregate for one length cutoff.
type SweepResult struct {
	Cutoff    int
	Aggregate Aggregate
}

// SweepCutoffs generates cutoffs from min up to and including max with the given step.
func SweepCutoffs(min, max, step int) []int {
	if step <= 0 {
		return nil
	}
	var cutoffs []int
	for c := min; c <= max; c += step {
		cutoffs = append(cutoffs, c)
	}
	return cutoffs
}

// Sweep aggregates the same sentence results under each cutoff. Cutoffs
// are deduplicated and returned in ascending order.
func Sweep(results []*SentenceResult, cutoffs []int) []SweepResult {
	cutoffs = lo.Uniq(cutoffs)
	sort.Ints(cutoffs)

	// bands[i] holds sentences longer than cutoffs[i-1] and within cutoffs[i].
	bands := make([]Aggregate, len(cutoffs))
	for _, r := range results {
		if i := sort.SearchInts(cutoffs, r.Length); i < len(cutoffs) {
			bands[i].Add(r)
		}
	}

	var running Aggregate
	return lo.Map(bands, func(band Aggregate, i int) SweepResult {
		running.Merge(band)
		return SweepResult{Cutoff: cutoffs[i], Aggregate: running}
	})
}
