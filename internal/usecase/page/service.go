// Package page implements tracked-page management: CRUD, category listing and
// scrape-status transitions driven by the external workflow engine callbacks.
package page

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/900robman/competitor-compass/internal/domain"
	dompage "github.com/900robman/competitor-compass/internal/domain/page"
)

// Service implements page operations.
type Service struct {
	pages       Repository
	competitors CompetitorReader
	newID       func() string
	now         func() time.Time
}

// New creates a page service.
func New(pages Repository, competitors CompetitorReader) *Service {
	return &Service{
		pages:       pages,
		competitors: competitors,
		newID:       uuid.NewString,
		now:         time.Now,
	}
}

// WithIDGenerator overrides the ID source.
func (s *Service) WithIDGenerator(fn func() string) *Service {
	s.newID = fn
	return s
}

// Create registers a new page under an existing competitor. The stored record
// carries the competitor name denormalized for search display.
func (s *Service) Create(ctx context.Context, competitorID, pageURL string, metadata map[string]string) (dompage.Page, error) {
	comp, err := s.competitors.Get(ctx, competitorID)
	if err != nil {
		return dompage.Page{}, err
	}

	p, err := dompage.New(s.newID(), pageURL, competitorID, metadata)
	if err != nil {
		return dompage.Page{}, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}
	p = p.WithCompetitorName(comp.Name())

	if _, err := s.pages.Upsert(ctx, &p); err != nil {
		return dompage.Page{}, fmt.Errorf("upsert page: %w", err)
	}
	return p, nil
}

// Get returns one page by id.
func (s *Service) Get(ctx context.Context, id string) (dompage.Page, error) {
	return s.pages.Get(ctx, id)
}

// List returns pages most-recently-updated first. A non-empty projectID
// narrows to that project's competitors; explicit competitorIDs narrow
// further (the intersection when both are given).
func (s *Service) List(ctx context.Context, projectID string, competitorIDs []string) ([]dompage.Page, error) {
	scope := competitorIDs
	if projectID != "" {
		comps, err := s.competitors.ListByProject(ctx, projectID)
		if err != nil {
			return nil, err
		}
		allowed := make(map[string]bool, len(comps))
		for i := range comps {
			allowed[comps[i].ID()] = true
		}
		if len(competitorIDs) == 0 {
			scope = make([]string, 0, len(comps))
			for i := range comps {
				scope = append(scope, comps[i].ID())
			}
		} else {
			scope = scope[:0:0]
			for _, id := range competitorIDs {
				if allowed[id] {
					scope = append(scope, id)
				}
			}
		}
		if len(scope) == 0 {
			return []dompage.Page{}, nil
		}
	}
	return s.pages.List(ctx, scope)
}

// Update replaces the scraped content of a page and marks the scrape
// successful. The workflow engine calls this when a scrape completes.
func (s *Service) Update(ctx context.Context, id, title, description, markdown string, metadata map[string]string) (dompage.Page, error) {
	p, err := s.pages.Get(ctx, id)
	if err != nil {
		return dompage.Page{}, err
	}

	updated := p.WithContent(title, description, markdown, s.now().UTC())
	for k, v := range metadata {
		updated = updated.WithMetadata(k, v)
	}

	if _, err := s.pages.Upsert(ctx, &updated); err != nil {
		return dompage.Page{}, fmt.Errorf("upsert page: %w", err)
	}
	return updated, nil
}

// SetScrapeStatus transitions the scrape lifecycle label of a page.
func (s *Service) SetScrapeStatus(ctx context.Context, id string, status dompage.ScrapeStatus) (dompage.Page, error) {
	if !status.IsValid() {
		return dompage.Page{}, fmt.Errorf("%w: unknown scrape status %q", domain.ErrInvalidInput, status)
	}

	p, err := s.pages.Get(ctx, id)
	if err != nil {
		return dompage.Page{}, err
	}

	updated := p.WithScrapeStatus(status)
	if _, err := s.pages.Upsert(ctx, &updated); err != nil {
		return dompage.Page{}, fmt.Errorf("upsert page: %w", err)
	}
	return updated, nil
}

// Delete removes a page. Deleting an unknown page is not an error.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.pages.Delete(ctx, id); err != nil && !errors.Is(err, domain.ErrPageNotFound) {
		return err
	}
	return nil
}

// Categories returns the distinct effective categories across all pages,
// sorted alphabetically. Pages without category metadata contribute the
// default category.
func (s *Service) Categories(ctx context.Context) ([]string, error) {
	pages, err := s.pages.List(ctx, nil)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	for i := range pages {
		seen[pages[i].EffectiveCategory()] = true
	}

	out := make([]string, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Strings(out)
	return out, nil
}
