package search

import (
	"context"

	"github.com/900robman/competitor-compass/internal/domain/page"
)

// PageLister fetches candidate page records, optionally pre-scoped to a set
// of competitor ids, ordered most-recently-updated first.
type PageLister interface {
	List(ctx context.Context, competitorIDs []string) ([]page.Page, error)
}
