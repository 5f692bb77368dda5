package search

import (
	"sort"
	"strings"

	"github.com/900robman/competitor-compass/internal/domain/search/result"
)

// scoredResult pairs a result with its precomputed ranking keys. The keys are
// computed once per result rather than inside the comparator; the observable
// ordering is identical and the sort stays O(n log n).
type scoredResult struct {
	res         result.Result
	titleMatch  bool
	occurrences int
}

// rankResults orders matches in place: title matches first, then by summed
// term-occurrence count in the markdown content. The sort is stable, so ties
// keep the retrieval order (most-recently-updated first). Intentionally a
// simple heuristic, not TF-IDF.
func rankResults(matches []scoredResult) {
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].titleMatch != matches[j].titleMatch {
			return matches[i].titleMatch
		}
		return matches[i].occurrences > matches[j].occurrences
	})
}

// anyTermIn reports whether any term is a substring of the lower-cased text.
func anyTermIn(lower string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(lower, t) {
			return true
		}
	}
	return false
}

// countOccurrences sums the substring occurrence count of every term within
// the lower-cased text.
func countOccurrences(lower string, terms []string) int {
	total := 0
	for _, t := range terms {
		total += strings.Count(lower, t)
	}
	return total
}
