package search

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/900robman/competitor-compass/internal/domain/page"
	"github.com/900robman/competitor-compass/internal/domain/search/result"
	"github.com/900robman/competitor-compass/internal/metrics"
)

// Filters narrows a search to a competitor scope and/or an exact category.
type Filters struct {
	CompetitorIDs []string
	Category      string
}

// Service performs in-memory full-text search over page records: AND-of-
// substrings term matching, title-boost ranking and snippet extraction.
// Matching is deliberately substring-based rather than word-boundary based,
// so the term "art" matches "start"; this mirrors the dashboard's observable
// behavior.
type Service struct {
	pages PageLister
}

// New creates a search service.
func New(pages PageLister) *Service {
	return &Service{pages: pages}
}

// Search returns ranked results for a query. A whitespace-only query yields
// an empty result list without touching the repository. Fetch errors
// propagate to the caller; there is no retry and no partial result.
func (s *Service) Search(ctx context.Context, query string, f Filters) ([]result.Result, error) {
	terms := splitTerms(query)
	if len(terms) == 0 {
		return nil, nil
	}

	start := time.Now()

	pages, err := s.pages.List(ctx, f.CompetitorIDs)
	if err != nil {
		metrics.SearchQueriesTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("list pages: %w", err)
	}

	matches := make([]scoredResult, 0, len(pages))
	for i := range pages {
		p := pages[i]

		if f.Category != "" && p.EffectiveCategory() != f.Category {
			continue
		}

		combined := strings.ToLower(p.SearchableText())
		if !matchesAll(combined, terms) {
			continue
		}

		matches = append(matches, scoredResult{
			res: result.New(
				p,
				makeSnippet(snippetSource(&p), terms),
				termPositions(combined, terms),
			),
			titleMatch:  anyTermIn(strings.ToLower(p.Title()), terms),
			occurrences: countOccurrences(strings.ToLower(p.Markdown()), terms),
		})
	}

	rankResults(matches)

	out := make([]result.Result, len(matches))
	for i, m := range matches {
		out[i] = m.res
	}

	metrics.SearchQueriesTotal.WithLabelValues("success").Inc()
	metrics.SearchDurationSeconds.Observe(time.Since(start).Seconds())
	metrics.SearchResultCount.Observe(float64(len(out)))

	return out, nil
}

// splitTerms lower-cases the query and splits it on whitespace into non-empty
// terms. A trimmed-empty query yields nil.
func splitTerms(query string) []string {
	return strings.Fields(strings.ToLower(query))
}

// matchesAll reports whether every term is a substring of the combined text.
func matchesAll(combined string, terms []string) bool {
	for _, t := range terms {
		if !strings.Contains(combined, t) {
			return false
		}
	}
	return true
}

// termPositions returns the first index of each term within the combined
// text, keeping only non-negative indices. Duplicate positions across terms
// are kept.
func termPositions(combined string, terms []string) []int {
	positions := make([]int, 0, len(terms))
	for _, t := range terms {
		if idx := strings.Index(combined, t); idx >= 0 {
			positions = append(positions, idx)
		}
	}
	return positions
}

// snippetSource picks the field the snippet is extracted from: markdown
// content, else description, else the raw URL.
func snippetSource(p *page.Page) string {
	if p.Markdown() != "" {
		return p.Markdown()
	}
	if p.Description() != "" {
		return p.Description()
	}
	return p.URL()
}
