// Package equiv holds the label and word equivalence tables used when
// comparing gold and test sentences.
package equiv

import "sort"

// Pair is an unordered pair of strings treated as equivalent.
type Pair struct {
	A string
	B string
}

// Registry is a set of unordered equivalence pairs.
// Equivalence is not transitive: a~b and b~c does not make a~c.
// A nil *Registry is valid and only reports identical strings as equal.
type Registry struct {
	pairs map[Pair]struct{}
}

// New creates a Registry containing the given pairs.
func New(pairs ...Pair) *Registry {
	r := &Registry{pairs: make(map[Pair]struct{}, len(pairs))}
	for _, p := range pairs {
		r.Add(p.A, p.B)
	}
	return r
}

// Add registers a and b as equivalent.
func (r *Registry) Add(a, b string) {
	if r.pairs == nil {
		r.pairs = make(map[Pair]struct{})
	}
	r.pairs[key(a, b)] = struct{}{}
}

// Equal reports whether a and b are identical or registered together.
func (r *Registry) Equal(a, b string) bool {
	if a == b {
		return true
	}
	if r == nil || len(r.pairs) == 0 {
		return false
	}
	_, ok := r.pairs[key(a, b)]
	return ok
}

// Len returns the number of registered pairs.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.pairs)
}

// Pairs returns the registered pairs in a stable order.
func (r *Registry) Pairs() []Pair {
	if r == nil {
		return nil
	}
	out := make([]Pair, 0, len(r.pairs))
	for p := range r.pairs {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].A != out[j].A {
			return out[i].A < out[j].A
		}
		return out[i].B < out[j].B
	})
	return out
}

// key orders the pair so that lookups are symmetric.
func key(a, b string) Pair {
	if b < a {
		a, b = b, a
	}
	return Pair{A: a, B: b}
}
