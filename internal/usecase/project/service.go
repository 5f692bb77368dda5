// Package project implements project management. A project is the top-level
// grouping: deleting one removes its competitors and, through the competitor
// flow, their pages.
package project

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/900robman/competitor-compass/internal/domain"
	domproj "github.com/900robman/competitor-compass/internal/domain/project"
)

// Service implements project operations.
type Service struct {
	projects    Repository
	competitors CompetitorRemover
	newID       func() string
}

// New creates a project service.
func New(projects Repository, competitors CompetitorRemover) *Service {
	return &Service{
		projects:    projects,
		competitors: competitors,
		newID:       uuid.NewString,
	}
}

// WithIDGenerator overrides the ID source.
func (s *Service) WithIDGenerator(fn func() string) *Service {
	s.newID = fn
	return s
}

// Create registers a new project.
func (s *Service) Create(ctx context.Context, name, description string) (domproj.Project, error) {
	p, err := domproj.New(s.newID(), name, description)
	if err != nil {
		return domproj.Project{}, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}
	if _, err := s.projects.Upsert(ctx, &p); err != nil {
		return domproj.Project{}, fmt.Errorf("upsert project: %w", err)
	}
	return p, nil
}

// Get returns one project by id.
func (s *Service) Get(ctx context.Context, id string) (domproj.Project, error) {
	return s.projects.Get(ctx, id)
}

// List returns all projects newest first.
func (s *Service) List(ctx context.Context) ([]domproj.Project, error) {
	return s.projects.List(ctx)
}

// Update changes the name and description of a project.
func (s *Service) Update(ctx context.Context, id, name, description string) (domproj.Project, error) {
	p, err := s.projects.Get(ctx, id)
	if err != nil {
		return domproj.Project{}, err
	}
	updated := p.WithDetails(name, description)
	if _, err := s.projects.Upsert(ctx, &updated); err != nil {
		return domproj.Project{}, fmt.Errorf("upsert project: %w", err)
	}
	return updated, nil
}

// Delete removes a project and cascades over its competitors. The cascade
// runs before the project record goes away so a mid-cascade failure leaves a
// retryable project, not orphaned competitors.
func (s *Service) Delete(ctx context.Context, id string) error {
	comps, err := s.competitors.ListByProject(ctx, id)
	if err != nil {
		return fmt.Errorf("list competitors for project %s: %w", id, err)
	}
	for i := range comps {
		if err := s.competitors.Delete(ctx, comps[i].ID()); err != nil {
			return fmt.Errorf("cascade competitor %s: %w", comps[i].ID(), err)
		}
	}

	if err := s.projects.Delete(ctx, id); err != nil && !errors.Is(err, domain.ErrProjectNotFound) {
		return err
	}
	return nil
}
