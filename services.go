package compass

import (
	"context"
	"fmt"

	dompage "github.com/900robman/competitor-compass/internal/domain/page"
	competitoruc "github.com/900robman/competitor-compass/internal/usecase/competitor"
	interviewuc "github.com/900robman/competitor-compass/internal/usecase/interview"
	pageuc "github.com/900robman/competitor-compass/internal/usecase/page"
	projectuc "github.com/900robman/competitor-compass/internal/usecase/project"
	savedsearchuc "github.com/900robman/competitor-compass/internal/usecase/savedsearch"
)

// ProjectService manages projects.
type ProjectService struct {
	svc *projectuc.Service
}

// Create registers a new project.
func (s *ProjectService) Create(ctx context.Context, name, description string) (Project, error) {
	p, err := s.svc.Create(ctx, name, description)
	if err != nil {
		return Project{}, fmt.Errorf("create project: %w", err)
	}
	return fromInternalProject(p), nil
}

// Get retrieves a project by ID.
func (s *ProjectService) Get(ctx context.Context, id string) (Project, error) {
	p, err := s.svc.Get(ctx, id)
	if err != nil {
		return Project{}, fmt.Errorf("get project: %w", err)
	}
	return fromInternalProject(p), nil
}

// List returns all projects.
func (s *ProjectService) List(ctx context.Context) ([]Project, error) {
	list, err := s.svc.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return fromInternalProjects(list), nil
}

// Update changes a project's name and description.
func (s *ProjectService) Update(ctx context.Context, id, name, description string) (Project, error) {
	p, err := s.svc.Update(ctx, id, name, description)
	if err != nil {
		return Project{}, fmt.Errorf("update project: %w", err)
	}
	return fromInternalProject(p), nil
}

// Delete removes a project and cascades to its competitors and their pages.
// Deleting an unknown project is not an error.
func (s *ProjectService) Delete(ctx context.Context, id string) error {
	return s.svc.Delete(ctx, id)
}

// CompetitorService manages competitors.
type CompetitorService struct {
	svc *competitoruc.Service
}

// Create registers a competitor under an existing project.
func (s *CompetitorService) Create(
	ctx context.Context, projectID, name, siteURL, companyType, notes string,
) (Competitor, error) {
	c, err := s.svc.Create(ctx, projectID, name, siteURL, companyType, notes)
	if err != nil {
		return Competitor{}, fmt.Errorf("create competitor: %w", err)
	}
	return fromInternalCompetitor(c), nil
}

// Get retrieves a competitor by ID.
func (s *CompetitorService) Get(ctx context.Context, id string) (Competitor, error) {
	c, err := s.svc.Get(ctx, id)
	if err != nil {
		return Competitor{}, fmt.Errorf("get competitor: %w", err)
	}
	return fromInternalCompetitor(c), nil
}

// ListByProject returns the competitors of one project.
func (s *CompetitorService) ListByProject(ctx context.Context, projectID string) ([]Competitor, error) {
	list, err := s.svc.ListByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("list competitors: %w", err)
	}
	return fromInternalCompetitors(list), nil
}

// Update changes a competitor's details. The site URL is immutable.
func (s *CompetitorService) Update(
	ctx context.Context, id, name, companyType, notes string,
) (Competitor, error) {
	c, err := s.svc.Update(ctx, id, name, companyType, notes)
	if err != nil {
		return Competitor{}, fmt.Errorf("update competitor: %w", err)
	}
	return fromInternalCompetitor(c), nil
}

// Delete removes a competitor and its pages. Deleting an unknown competitor
// is not an error.
func (s *CompetitorService) Delete(ctx context.Context, id string) error {
	return s.svc.Delete(ctx, id)
}

// PageService manages tracked pages.
type PageService struct {
	svc *pageuc.Service
}

// Create registers a page under an existing competitor.
func (s *PageService) Create(
	ctx context.Context, competitorID, pageURL string, metadata map[string]string,
) (Page, error) {
	p, err := s.svc.Create(ctx, competitorID, pageURL, metadata)
	if err != nil {
		return Page{}, fmt.Errorf("create page: %w", err)
	}
	return fromInternalPage(p), nil
}

// Get retrieves a page by ID.
func (s *PageService) Get(ctx context.Context, id string) (Page, error) {
	p, err := s.svc.Get(ctx, id)
	if err != nil {
		return Page{}, fmt.Errorf("get page: %w", err)
	}
	return fromInternalPage(p), nil
}

// List returns pages, optionally scoped to a project and/or a set of
// competitor IDs.
func (s *PageService) List(ctx context.Context, projectID string, competitorIDs []string) ([]Page, error) {
	list, err := s.svc.List(ctx, projectID, competitorIDs)
	if err != nil {
		return nil, fmt.Errorf("list pages: %w", err)
	}
	return fromInternalPages(list), nil
}

// Update replaces a page's scraped content and merges metadata. The page is
// marked successfully scraped.
func (s *PageService) Update(
	ctx context.Context, id, title, description, markdown string, metadata map[string]string,
) (Page, error) {
	p, err := s.svc.Update(ctx, id, title, description, markdown, metadata)
	if err != nil {
		return Page{}, fmt.Errorf("update page: %w", err)
	}
	return fromInternalPage(p), nil
}

// SetScrapeStatus transitions the page's scrape lifecycle status. Valid
// values: not_scraped, pending, processing, success, failed.
func (s *PageService) SetScrapeStatus(ctx context.Context, id, status string) (Page, error) {
	p, err := s.svc.SetScrapeStatus(ctx, id, dompage.ScrapeStatus(status))
	if err != nil {
		return Page{}, fmt.Errorf("set scrape status: %w", err)
	}
	return fromInternalPage(p), nil
}

// Delete removes a page. Deleting an unknown page is not an error.
func (s *PageService) Delete(ctx context.Context, id string) error {
	return s.svc.Delete(ctx, id)
}

// Categories returns the distinct effective categories across all pages,
// sorted alphabetically.
func (s *PageService) Categories(ctx context.Context) ([]string, error) {
	return s.svc.Categories(ctx)
}

// SavedSearchService manages the bounded saved-search list.
type SavedSearchService struct {
	svc *savedsearchuc.Service
}

// List returns saved searches newest first.
func (s *SavedSearchService) List(ctx context.Context) ([]SavedSearch, error) {
	list, err := s.svc.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list saved searches: %w", err)
	}
	return fromInternalSavedList(list), nil
}

// Save stores a query configuration at the head of the list. The list is
// capped; the oldest entry falls off when full.
func (s *SavedSearchService) Save(
	ctx context.Context, query, category string, competitorIDs []string,
) (SavedSearch, error) {
	entry, err := s.svc.Save(ctx, query, category, competitorIDs)
	if err != nil {
		return SavedSearch{}, fmt.Errorf("save search: %w", err)
	}
	return fromInternalSaved(entry), nil
}

// Delete removes a saved search by ID. Unknown IDs are ignored.
func (s *SavedSearchService) Delete(ctx context.Context, id string) error {
	return s.svc.Delete(ctx, id)
}

// InterviewService manages AI-led requirements interviews.
type InterviewService struct {
	svc *interviewuc.Service
}

// Start opens a new interview under a project.
func (s *InterviewService) Start(ctx context.Context, projectID string) (Interview, error) {
	iv, err := s.svc.Start(ctx, projectID)
	if err != nil {
		return Interview{}, fmt.Errorf("start interview: %w", err)
	}
	return fromInternalInterview(iv), nil
}

// Answer records a client answer and asks the provider for the next
// question. The interview completes when the provider is done or the
// question cap is reached.
func (s *InterviewService) Answer(ctx context.Context, id, answer string) (Interview, error) {
	iv, err := s.svc.Answer(ctx, id, answer)
	if err != nil {
		return Interview{}, fmt.Errorf("answer interview: %w", err)
	}
	return fromInternalInterview(iv), nil
}

// Insights distills the transcript into requirement bullets and stores them
// on the session.
func (s *InterviewService) Insights(ctx context.Context, id string) (Interview, error) {
	iv, err := s.svc.Insights(ctx, id)
	if err != nil {
		return Interview{}, fmt.Errorf("extract interview insights: %w", err)
	}
	return fromInternalInterview(iv), nil
}

// Get retrieves an interview by ID.
func (s *InterviewService) Get(ctx context.Context, id string) (Interview, error) {
	iv, err := s.svc.Get(ctx, id)
	if err != nil {
		return Interview{}, fmt.Errorf("get interview: %w", err)
	}
	return fromInternalInterview(iv), nil
}

// ListByProject returns the interviews of one project.
func (s *InterviewService) ListByProject(ctx context.Context, projectID string) ([]Interview, error) {
	list, err := s.svc.ListByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("list interviews: %w", err)
	}
	return fromInternalInterviews(list), nil
}

// Delete removes an interview session.
func (s *InterviewService) Delete(ctx context.Context, id string) error {
	return s.svc.Delete(ctx, id)
}
