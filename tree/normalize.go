package tree

import "strings"

// NormalizeLabel strips function tags and coindexation from a label by
// truncating at the first '-' or '='. "NP-SBJ-1" becomes "NP", "PP=2"
// becomes "PP". A label starting with '-' normalizes to "".
func NormalizeLabel(label string) string {
	if i := strings.IndexAny(label, "-="); i >= 0 {
		return label[:i]
	}
	return label
}
