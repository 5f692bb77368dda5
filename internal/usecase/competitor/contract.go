package competitor

import (
	"context"

	domcomp "github.com/900robman/competitor-compass/internal/domain/competitor"
	dompage "github.com/900robman/competitor-compass/internal/domain/page"
	domproj "github.com/900robman/competitor-compass/internal/domain/project"
)

// Repository is the competitor persistence contract.
type Repository interface {
	Upsert(ctx context.Context, c *domcomp.Competitor) (bool, error)
	Get(ctx context.Context, id string) (domcomp.Competitor, error)
	ListByProject(ctx context.Context, projectID string) ([]domcomp.Competitor, error)
	Delete(ctx context.Context, id string) error
}

// ProjectReader checks project existence when attaching competitors.
type ProjectReader interface {
	Get(ctx context.Context, id string) (domproj.Project, error)
}

// PageRepository is the slice of page persistence the competitor flow needs:
// cascade deletes and flipping scrape statuses when a scrape is triggered.
type PageRepository interface {
	List(ctx context.Context, competitorIDs []string) ([]dompage.Page, error)
	Upsert(ctx context.Context, p *dompage.Page) (bool, error)
	DeleteByCompetitor(ctx context.Context, competitorID string) (int, error)
}

// WorkflowTrigger fires the external workflow webhook that performs the
// actual crawling and scraping.
type WorkflowTrigger interface {
	Trigger(ctx context.Context, trigger, competitorID, siteURL string) error
}
