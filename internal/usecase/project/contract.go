package project

import (
	"context"

	domcomp "github.com/900robman/competitor-compass/internal/domain/competitor"
	domproj "github.com/900robman/competitor-compass/internal/domain/project"
)

// Repository is the project persistence contract.
type Repository interface {
	Upsert(ctx context.Context, p *domproj.Project) (bool, error)
	Get(ctx context.Context, id string) (domproj.Project, error)
	List(ctx context.Context) ([]domproj.Project, error)
	Delete(ctx context.Context, id string) error
}

// CompetitorRemover is the slice of the competitor flow used by cascade
// deletes. Deleting through the competitor service keeps the page cascade in
// one place.
type CompetitorRemover interface {
	ListByProject(ctx context.Context, projectID string) ([]domcomp.Competitor, error)
	Delete(ctx context.Context, id string) error
}
