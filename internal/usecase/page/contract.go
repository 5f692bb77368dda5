package page

import (
	"context"

	domcomp "github.com/900robman/competitor-compass/internal/domain/competitor"
	dompage "github.com/900robman/competitor-compass/internal/domain/page"
)

// Repository is the page persistence contract.
type Repository interface {
	Upsert(ctx context.Context, p *dompage.Page) (bool, error)
	Get(ctx context.Context, id string) (dompage.Page, error)
	List(ctx context.Context, competitorIDs []string) ([]dompage.Page, error)
	Delete(ctx context.Context, id string) error
}

// CompetitorReader resolves the competitors a page belongs to.
type CompetitorReader interface {
	Get(ctx context.Context, id string) (domcomp.Competitor, error)
	ListByProject(ctx context.Context, projectID string) ([]domcomp.Competitor, error)
}
