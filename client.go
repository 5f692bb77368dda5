package compass

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	dbRedis "github.com/900robman/competitor-compass/internal/db/redis"
	"github.com/900robman/competitor-compass/internal/domain"
	dominterview "github.com/900robman/competitor-compass/internal/domain/interview"
	competitorrepo "github.com/900robman/competitor-compass/internal/repository/competitor"
	interviewrepo "github.com/900robman/competitor-compass/internal/repository/interview"
	pagerepo "github.com/900robman/competitor-compass/internal/repository/page"
	projectrepo "github.com/900robman/competitor-compass/internal/repository/project"
	savedsearchrepo "github.com/900robman/competitor-compass/internal/repository/savedsearch"
	"github.com/900robman/competitor-compass/internal/transport/workflow"
	competitoruc "github.com/900robman/competitor-compass/internal/usecase/competitor"
	healthuc "github.com/900robman/competitor-compass/internal/usecase/health"
	interviewuc "github.com/900robman/competitor-compass/internal/usecase/interview"
	pageuc "github.com/900robman/competitor-compass/internal/usecase/page"
	projectuc "github.com/900robman/competitor-compass/internal/usecase/project"
	savedsearchuc "github.com/900robman/competitor-compass/internal/usecase/savedsearch"
	searchuc "github.com/900robman/competitor-compass/internal/usecase/search"
)

const defaultReadinessTimeout = 10 * time.Second

// Client is the compass SDK entry point.
type Client struct {
	store *dbRedis.Store

	projectSvc    *projectuc.Service
	competitorSvc *competitoruc.Service
	pageSvc       *pageuc.Service
	searchSvc     *searchuc.Service
	savedSvc      *savedsearchuc.Service
	interviewSvc  *interviewuc.Service
	healthSvc     *healthuc.Service
}

// New creates a compass Client and connects to the database.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := &clientConfig{}
	for _, o := range opts {
		o(cfg)
	}

	if len(cfg.addrs) == 0 {
		return nil, errors.New("compass: database address required (use WithRedis)")
	}
	if cfg.logger == nil {
		cfg.logger = zap.NewNop()
	}
	if cfg.keyPrefix != "" {
		domain.KeyPrefix = cfg.keyPrefix
	}

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.addrs,
		Username: cfg.username,
		Password: cfg.password,
		DB:       cfg.db,
	})
	if err != nil {
		return nil, fmt.Errorf("compass: create store: %w", err)
	}

	if err := store.WaitForReady(ctx, defaultReadinessTimeout); err != nil {
		store.Close()
		return nil, fmt.Errorf("compass: database not ready: %w", err)
	}

	return wireClient(store, cfg), nil
}

func wireClient(store *dbRedis.Store, cfg *clientConfig) *Client {
	projectRepo := projectrepo.New(store)
	competitorRepo := competitorrepo.New(store)
	pageRepo := pagerepo.New(store)
	savedRepo := savedsearchrepo.New(store)
	interviewRepo := interviewrepo.New(store)

	workflowClient := workflow.NewClient(workflow.Config{
		WebhookURL: cfg.workflowURL,
		Token:      cfg.workflowToken,
	}, cfg.logger)

	// Provider: noop when not configured (search and CRUD work, interviews
	// return an error).
	var questions interviewuc.QuestionGenerator = noopProvider{}
	var insights interviewuc.InsightExtractor = noopProvider{}
	var checker healthuc.ProviderChecker
	if cfg.provider != nil {
		adapter := &providerAdapter{inner: cfg.provider}
		questions = adapter
		insights = adapter
	}

	competitorSvc := competitoruc.New(competitorRepo, projectRepo, pageRepo, workflowClient)
	projectSvc := projectuc.New(projectRepo, competitorSvc)
	pageSvc := pageuc.New(pageRepo, competitorRepo)
	searchSvc := searchuc.New(pageRepo)
	savedSvc := savedsearchuc.New(savedRepo)
	interviewSvc := interviewuc.New(interviewRepo, projectRepo, questions, insights)
	healthSvc := healthuc.New(store, checker)

	if cfg.newID != nil {
		projectSvc.WithIDGenerator(cfg.newID)
		competitorSvc.WithIDGenerator(cfg.newID)
		pageSvc.WithIDGenerator(cfg.newID)
		savedSvc.WithIDGenerator(cfg.newID)
		interviewSvc.WithIDGenerator(cfg.newID)
	}

	return &Client{
		store:         store,
		projectSvc:    projectSvc,
		competitorSvc: competitorSvc,
		pageSvc:       pageSvc,
		searchSvc:     searchSvc,
		savedSvc:      savedSvc,
		interviewSvc:  interviewSvc,
		healthSvc:     healthSvc,
	}
}

// Close releases all resources.
func (c *Client) Close() {
	if c.store != nil {
		c.store.Close()
	}
}

// Health runs the component health checks.
func (c *Client) Health(ctx context.Context) HealthReport {
	return fromInternalReport(c.healthSvc.Check(ctx))
}

// Projects returns the project management service.
func (c *Client) Projects() *ProjectService {
	return &ProjectService{svc: c.projectSvc}
}

// Competitors returns the competitor management service.
func (c *Client) Competitors() *CompetitorService {
	return &CompetitorService{svc: c.competitorSvc}
}

// Pages returns the tracked-page service.
func (c *Client) Pages() *PageService {
	return &PageService{svc: c.pageSvc}
}

// SavedSearches returns the saved-search service.
func (c *Client) SavedSearches() *SavedSearchService {
	return &SavedSearchService{svc: c.savedSvc}
}

// Interviews returns the requirements-interview service.
func (c *Client) Interviews() *InterviewService {
	return &InterviewService{svc: c.interviewSvc}
}

// Search returns a fluent query builder.
func (c *Client) Search() *SearchQuery {
	return &SearchQuery{svc: c.searchSvc}
}

// TriggerCrawl asks the workflow engine to discover pages on the
// competitor's site.
func (c *Client) TriggerCrawl(ctx context.Context, competitorID string) error {
	return c.competitorSvc.RequestCrawl(ctx, competitorID)
}

// TriggerScrape asks the workflow engine to re-scrape the competitor's
// tracked pages.
func (c *Client) TriggerScrape(ctx context.Context, competitorID string) error {
	return c.competitorSvc.RequestScrape(ctx, competitorID)
}

// providerAdapter wraps the public InterviewProvider to satisfy the internal
// interview contracts.
type providerAdapter struct {
	inner InterviewProvider
}

func (a *providerAdapter) OpeningQuestion(ctx context.Context, projectName string) (string, error) {
	q, err := a.inner.OpeningQuestion(ctx, projectName)
	if err != nil {
		return "", fmt.Errorf("opening question: %w", err)
	}
	return q, nil
}

func (a *providerAdapter) NextQuestion(ctx context.Context, transcript []dominterview.Message) (string, error) {
	q, err := a.inner.NextQuestion(ctx, fromInternalMessages(transcript))
	if err != nil {
		return "", fmt.Errorf("next question: %w", err)
	}
	return q, nil
}

func (a *providerAdapter) ExtractInsights(ctx context.Context, transcript []dominterview.Message) ([]string, error) {
	out, err := a.inner.ExtractInsights(ctx, fromInternalMessages(transcript))
	if err != nil {
		return nil, fmt.Errorf("extract insights: %w", err)
	}
	return out, nil
}

// noopProvider returns an error on every call (used when no provider
// configured).
type noopProvider struct{}

func (noopProvider) OpeningQuestion(_ context.Context, _ string) (string, error) {
	return "", errNoProvider()
}

func (noopProvider) NextQuestion(_ context.Context, _ []dominterview.Message) (string, error) {
	return "", errNoProvider()
}

func (noopProvider) ExtractInsights(_ context.Context, _ []dominterview.Message) ([]string, error) {
	return nil, errNoProvider()
}

func errNoProvider() error {
	return fmt.Errorf("%w: no interview provider configured (use WithInterviewProvider)",
		domain.ErrInterviewProviderError)
}
