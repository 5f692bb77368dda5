// Package competitor implements competitor management and the crawl/scrape
// trigger flow. All heavy lifting (crawling, scraping, AI summarization)
// happens in the external workflow engine; this service only fires the
// webhook and tracks the resulting page lifecycle.
package competitor

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/900robman/competitor-compass/internal/domain"
	domcomp "github.com/900robman/competitor-compass/internal/domain/competitor"
	dompage "github.com/900robman/competitor-compass/internal/domain/page"
	"github.com/900robman/competitor-compass/internal/logger"
)

// Trigger labels sent to the workflow webhook.
const (
	TriggerCrawl  = "crawl"
	TriggerScrape = "scrape"
)

// Service implements competitor operations.
type Service struct {
	competitors Repository
	projects    ProjectReader
	pages       PageRepository
	workflow    WorkflowTrigger
	newID       func() string
}

// New creates a competitor service.
func New(competitors Repository, projects ProjectReader, pages PageRepository, workflow WorkflowTrigger) *Service {
	return &Service{
		competitors: competitors,
		projects:    projects,
		pages:       pages,
		workflow:    workflow,
		newID:       uuid.NewString,
	}
}

// WithIDGenerator overrides the ID source.
func (s *Service) WithIDGenerator(fn func() string) *Service {
	s.newID = fn
	return s
}

// Create registers a competitor under an existing project.
func (s *Service) Create(ctx context.Context, projectID, name, siteURL, companyType, notes string) (domcomp.Competitor, error) {
	if _, err := s.projects.Get(ctx, projectID); err != nil {
		return domcomp.Competitor{}, err
	}

	c, err := domcomp.New(s.newID(), projectID, name, siteURL, companyType, notes)
	if err != nil {
		return domcomp.Competitor{}, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}

	if _, err := s.competitors.Upsert(ctx, &c); err != nil {
		return domcomp.Competitor{}, fmt.Errorf("upsert competitor: %w", err)
	}
	return c, nil
}

// Get returns one competitor by id.
func (s *Service) Get(ctx context.Context, id string) (domcomp.Competitor, error) {
	return s.competitors.Get(ctx, id)
}

// ListByProject returns a project's competitors sorted by name.
func (s *Service) ListByProject(ctx context.Context, projectID string) ([]domcomp.Competitor, error) {
	return s.competitors.ListByProject(ctx, projectID)
}

// Update changes the mutable details of a competitor.
func (s *Service) Update(ctx context.Context, id, name, companyType, notes string) (domcomp.Competitor, error) {
	if name == "" {
		return domcomp.Competitor{}, fmt.Errorf("%w: competitor name is required", domain.ErrInvalidInput)
	}

	c, err := s.competitors.Get(ctx, id)
	if err != nil {
		return domcomp.Competitor{}, err
	}

	updated := c.WithDetails(name, companyType, notes)
	if _, err := s.competitors.Upsert(ctx, &updated); err != nil {
		return domcomp.Competitor{}, fmt.Errorf("upsert competitor: %w", err)
	}
	return updated, nil
}

// Delete removes a competitor and all its tracked pages.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.competitors.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrCompetitorNotFound) {
			return nil
		}
		return err
	}

	removed, err := s.pages.DeleteByCompetitor(ctx, id)
	if err != nil {
		return fmt.Errorf("cascade pages for competitor %s: %w", id, err)
	}
	logger.FromContext(ctx).Debug("competitor deleted",
		zap.String("competitor_id", id),
		zap.Int("pages_removed", removed))
	return nil
}

// RequestCrawl asks the workflow engine to discover pages on the competitor's
// site. Discovery results arrive later through the page endpoints.
func (s *Service) RequestCrawl(ctx context.Context, id string) error {
	c, err := s.competitors.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.workflow.Trigger(ctx, TriggerCrawl, c.ID(), c.SiteURL()); err != nil {
		return err
	}
	return nil
}

// RequestScrape asks the workflow engine to (re)scrape the competitor's known
// pages and flips them to pending. The status flip is best effort: a page
// that fails to update keeps its old label and the trigger still counts as
// fired.
func (s *Service) RequestScrape(ctx context.Context, id string) error {
	c, err := s.competitors.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.workflow.Trigger(ctx, TriggerScrape, c.ID(), c.SiteURL()); err != nil {
		return err
	}

	pages, err := s.pages.List(ctx, []string{id})
	if err != nil {
		logger.FromContext(ctx).Warn("scrape triggered but page listing failed",
			zap.String("competitor_id", id), zap.Error(err))
		return nil
	}
	for i := range pages {
		p := pages[i].WithScrapeStatus(dompage.StatusPending)
		if _, err := s.pages.Upsert(ctx, &p); err != nil {
			logger.FromContext(ctx).Warn("page status flip failed",
				zap.String("page_id", p.ID()), zap.Error(err))
		}
	}
	return nil
}
