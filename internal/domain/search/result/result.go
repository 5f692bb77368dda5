package result

import "github.com/900robman/competitor-compass/internal/domain/page"

// Result is a single search hit: the matched page plus presentation context.
// It is derived per query and discarded after rendering.
type Result struct {
	page           page.Page
	snippet        string
	matchPositions []int
}

// New creates a search result.
func New(p page.Page, snippet string, matchPositions []int) Result {
	return Result{page: p, snippet: snippet, matchPositions: matchPositions}
}

// Page returns the matched page record.
func (r *Result) Page() page.Page { return r.page }

// Snippet returns the bounded excerpt around the first matching term.
func (r *Result) Snippet() string { return r.snippet }

// MatchPositions returns the first index of each query term within the page's
// combined searchable text. Duplicates across terms are kept.
func (r *Result) MatchPositions() []int { return r.matchPositions }
