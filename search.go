package compass

import (
	"context"
	"fmt"

	searchuc "github.com/900robman/competitor-compass/internal/usecase/search"
)

// SearchQuery is a fluent builder for full-text queries over tracked pages.
// Matching is case-insensitive AND-of-substrings; results are ranked by
// title match first, then by term frequency in the page body.
type SearchQuery struct {
	svc *searchuc.Service

	query         string
	category      string
	competitorIDs []string
}

// Query sets the search terms. A blank query yields no results.
func (q *SearchQuery) Query(text string) *SearchQuery {
	q.query = text
	return q
}

// Category restricts results to one effective category ("Uncategorized"
// matches pages without one).
func (q *SearchQuery) Category(category string) *SearchQuery {
	q.category = category
	return q
}

// Competitors restricts results to the given competitor IDs.
func (q *SearchQuery) Competitors(ids ...string) *SearchQuery {
	q.competitorIDs = append(q.competitorIDs, ids...)
	return q
}

// Do executes the search and returns ranked results.
func (q *SearchQuery) Do(ctx context.Context) ([]SearchResult, error) {
	results, err := q.svc.Search(ctx, q.query, searchuc.Filters{
		CompetitorIDs: q.competitorIDs,
		Category:      q.category,
	})
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	return fromSearchResults(results), nil
}
