// Package chi exposes the dashboard REST API.
package chi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/900robman/competitor-compass/internal/domain"
	dompage "github.com/900robman/competitor-compass/internal/domain/page"
	companytypeuc "github.com/900robman/competitor-compass/internal/usecase/companytype"
	competitoruc "github.com/900robman/competitor-compass/internal/usecase/competitor"
	healthuc "github.com/900robman/competitor-compass/internal/usecase/health"
	interviewuc "github.com/900robman/competitor-compass/internal/usecase/interview"
	pageuc "github.com/900robman/competitor-compass/internal/usecase/page"
	projectuc "github.com/900robman/competitor-compass/internal/usecase/project"
	savedsearchuc "github.com/900robman/competitor-compass/internal/usecase/savedsearch"
	searchuc "github.com/900robman/competitor-compass/internal/usecase/search"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server holds the use case services behind the REST routes.
type Server struct {
	projects      *projectuc.Service
	competitors   *competitoruc.Service
	pages         *pageuc.Service
	search        *searchuc.Service
	savedSearches *savedsearchuc.Service
	companyTypes  *companytypeuc.Service
	interviews    *interviewuc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	projects *projectuc.Service,
	competitors *competitoruc.Service,
	pages *pageuc.Service,
	search *searchuc.Service,
	savedSearches *savedsearchuc.Service,
	companyTypes *companytypeuc.Service,
	interviews *interviewuc.Service,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	s := &Server{
		projects:      projects,
		competitors:   competitors,
		pages:         pages,
		search:        search,
		savedSearches: savedSearches,
		companyTypes:  companyTypes,
		interviews:    interviews,
		health:        health,
		logger:        logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrProjectNotFound, http.StatusNotFound, codeNotFound),
		sentinelHandler(domain.ErrCompetitorNotFound, http.StatusNotFound, codeNotFound),
		sentinelHandler(domain.ErrPageNotFound, http.StatusNotFound, codeNotFound),
		sentinelHandler(domain.ErrInterviewNotFound, http.StatusNotFound, codeNotFound),
		sentinelHandler(domain.ErrNotFound, http.StatusNotFound, codeNotFound),
		sentinelHandler(domain.ErrAlreadyExists, http.StatusConflict, codeAlreadyExists),
		sentinelHandler(domain.ErrInvalidInput, http.StatusBadRequest, codeValidationFailed),
		sentinelHandler(domain.ErrInterviewCompleted, http.StatusConflict, codeInterviewCompleted),
		sentinelHandler(domain.ErrWorkflowUnavailable, http.StatusBadGateway, codeWorkflowUnavailable),
		sentinelHandler(domain.ErrInterviewProviderError, http.StatusBadGateway, codeProviderError),
	}
	return s
}

// Register mounts all routes on the router. Health and metrics stay outside
// the /api/v1 prefix so probes and scrapers keep short paths.
func (s *Server) Register(r chi.Router) {
	r.Get("/health", s.handleHealth)
	r.Get("/metrics", s.handleMetrics)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/projects", func(r chi.Router) {
			r.Get("/", s.handleListProjects)
			r.Post("/", s.handleCreateProject)
			r.Route("/{projectID}", func(r chi.Router) {
				r.Get("/", s.handleGetProject)
				r.Put("/", s.handleUpdateProject)
				r.Delete("/", s.handleDeleteProject)
				r.Get("/competitors", s.handleListCompetitors)
				r.Post("/competitors", s.handleCreateCompetitor)
				r.Get("/interviews", s.handleListInterviews)
				r.Post("/interviews", s.handleStartInterview)
			})
		})

		r.Route("/competitors/{competitorID}", func(r chi.Router) {
			r.Get("/", s.handleGetCompetitor)
			r.Put("/", s.handleUpdateCompetitor)
			r.Delete("/", s.handleDeleteCompetitor)
			r.Post("/crawl", s.handleTriggerCrawl)
			r.Post("/scrape", s.handleTriggerScrape)
		})

		r.Route("/pages", func(r chi.Router) {
			r.Get("/", s.handleListPages)
			r.Post("/", s.handleCreatePage)
			r.Route("/{pageID}", func(r chi.Router) {
				r.Get("/", s.handleGetPage)
				r.Put("/", s.handleUpdatePage)
				r.Patch("/status", s.handleSetPageStatus)
				r.Delete("/", s.handleDeletePage)
			})
		})

		r.Get("/categories", s.handleListCategories)
		r.Get("/search", s.handleSearch)

		r.Route("/saved-searches", func(r chi.Router) {
			r.Get("/", s.handleListSavedSearches)
			r.Post("/", s.handleSaveSearch)
			r.Delete("/{savedSearchID}", s.handleDeleteSavedSearch)
		})

		r.Route("/company-types", func(r chi.Router) {
			r.Get("/", s.handleListCompanyTypes)
			r.Post("/", s.handleCreateCompanyType)
			r.Put("/{companyTypeID}", s.handleUpdateCompanyType)
			r.Delete("/{companyTypeID}", s.handleDeleteCompanyType)
		})

		r.Route("/interviews/{interviewID}", func(r chi.Router) {
			r.Get("/", s.handleGetInterview)
			r.Delete("/", s.handleDeleteInterview)
			r.Post("/answers", s.handleAnswerInterview)
			r.Post("/insights", s.handleExtractInsights)
		})
	})
}

// --- Projects ---

func (s *Server) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	var req projectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "invalid request body: "+err.Error())
		return
	}

	p, err := s.projects.Create(r.Context(), req.Name, req.Description)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, projectToResponse(&p))
}

func (s *Server) handleListProjects(w http.ResponseWriter, r *http.Request) {
	list, err := s.projects.List(r.Context())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	items := make([]projectResponse, len(list))
	for i := range list {
		items[i] = projectToResponse(&list[i])
	}
	writeJSON(w, http.StatusOK, items)
}

func (s *Server) handleGetProject(w http.ResponseWriter, r *http.Request) {
	p, err := s.projects.Get(r.Context(), chi.URLParam(r, "projectID"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, projectToResponse(&p))
}

func (s *Server) handleUpdateProject(w http.ResponseWriter, r *http.Request) {
	var req projectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "invalid request body: "+err.Error())
		return
	}

	p, err := s.projects.Update(r.Context(), chi.URLParam(r, "projectID"), req.Name, req.Description)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, projectToResponse(&p))
}

func (s *Server) handleDeleteProject(w http.ResponseWriter, r *http.Request) {
	if err := s.projects.Delete(r.Context(), chi.URLParam(r, "projectID")); err != nil {
		s.handleDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- Competitors ---

func (s *Server) handleCreateCompetitor(w http.ResponseWriter, r *http.Request) {
	var req competitorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "invalid request body: "+err.Error())
		return
	}

	c, err := s.competitors.Create(r.Context(), chi.URLParam(r, "projectID"),
		req.Name, req.SiteURL, req.CompanyType, req.Notes)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, competitorToResponse(&c))
}

func (s *Server) handleListCompetitors(w http.ResponseWriter, r *http.Request) {
	list, err := s.competitors.ListByProject(r.Context(), chi.URLParam(r, "projectID"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	items := make([]competitorResponse, len(list))
	for i := range list {
		items[i] = competitorToResponse(&list[i])
	}
	writeJSON(w, http.StatusOK, items)
}

func (s *Server) handleGetCompetitor(w http.ResponseWriter, r *http.Request) {
	c, err := s.competitors.Get(r.Context(), chi.URLParam(r, "competitorID"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, competitorToResponse(&c))
}

func (s *Server) handleUpdateCompetitor(w http.ResponseWriter, r *http.Request) {
	var req competitorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "invalid request body: "+err.Error())
		return
	}

	c, err := s.competitors.Update(r.Context(), chi.URLParam(r, "competitorID"),
		req.Name, req.CompanyType, req.Notes)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, competitorToResponse(&c))
}

func (s *Server) handleDeleteCompetitor(w http.ResponseWriter, r *http.Request) {
	if err := s.competitors.Delete(r.Context(), chi.URLParam(r, "competitorID")); err != nil {
		s.handleDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleTriggerCrawl(w http.ResponseWriter, r *http.Request) {
	if err := s.competitors.RequestCrawl(r.Context(), chi.URLParam(r, "competitorID")); err != nil {
		s.handleDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}

func (s *Server) handleTriggerScrape(w http.ResponseWriter, r *http.Request) {
	if err := s.competitors.RequestScrape(r.Context(), chi.URLParam(r, "competitorID")); err != nil {
		s.handleDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}

// --- Pages ---

func (s *Server) handleCreatePage(w http.ResponseWriter, r *http.Request) {
	var req createPageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "invalid request body: "+err.Error())
		return
	}

	p, err := s.pages.Create(r.Context(), req.CompetitorID, req.URL, req.Metadata)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, pageToResponse(&p))
}

func (s *Server) handleListPages(w http.ResponseWriter, r *http.Request) {
	var projectID string
	var competitorIDs []string
	q := r.URL.Query()
	if err := runtime.BindQueryParameter("form", true, false, "project_id", q, &projectID); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "invalid project_id: "+err.Error())
		return
	}
	if err := runtime.BindQueryParameter("form", true, false, "competitor_id", q, &competitorIDs); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "invalid competitor_id: "+err.Error())
		return
	}

	list, err := s.pages.List(r.Context(), projectID, competitorIDs)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	items := make([]pageResponse, len(list))
	for i := range list {
		items[i] = pageToResponse(&list[i])
	}
	writeJSON(w, http.StatusOK, items)
}

func (s *Server) handleGetPage(w http.ResponseWriter, r *http.Request) {
	p, err := s.pages.Get(r.Context(), chi.URLParam(r, "pageID"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pageToResponse(&p))
}

func (s *Server) handleUpdatePage(w http.ResponseWriter, r *http.Request) {
	var req updatePageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "invalid request body: "+err.Error())
		return
	}

	p, err := s.pages.Update(r.Context(), chi.URLParam(r, "pageID"),
		req.Title, req.Description, req.Markdown, req.Metadata)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pageToResponse(&p))
}

func (s *Server) handleSetPageStatus(w http.ResponseWriter, r *http.Request) {
	var req pageStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "invalid request body: "+err.Error())
		return
	}

	p, err := s.pages.SetScrapeStatus(r.Context(), chi.URLParam(r, "pageID"),
		dompage.ScrapeStatus(req.ScrapeStatus))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pageToResponse(&p))
}

func (s *Server) handleDeletePage(w http.ResponseWriter, r *http.Request) {
	if err := s.pages.Delete(r.Context(), chi.URLParam(r, "pageID")); err != nil {
		s.handleDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := s.pages.Categories(r.Context())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cats)
}

// --- Search ---

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var query, category string
	var competitorIDs []string
	q := r.URL.Query()
	if err := runtime.BindQueryParameter("form", true, false, "q", q, &query); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "invalid q: "+err.Error())
		return
	}
	if err := runtime.BindQueryParameter("form", true, false, "category", q, &category); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "invalid category: "+err.Error())
		return
	}
	if err := runtime.BindQueryParameter("form", true, false, "competitor_id", q, &competitorIDs); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "invalid competitor_id: "+err.Error())
		return
	}

	results, err := s.search.Search(r.Context(), query, searchuc.Filters{
		CompetitorIDs: competitorIDs,
		Category:      category,
	})
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	resp := searchResponse{
		Query:   query,
		Results: make([]searchResultResponse, len(results)),
		Total:   len(results),
	}
	for i := range results {
		resp.Results[i] = resultToResponse(&results[i])
	}
	writeJSON(w, http.StatusOK, resp)
}

// --- Saved searches ---

func (s *Server) handleListSavedSearches(w http.ResponseWriter, r *http.Request) {
	list, err := s.savedSearches.List(r.Context())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleSaveSearch(w http.ResponseWriter, r *http.Request) {
	var req saveSearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "invalid request body: "+err.Error())
		return
	}

	entry, err := s.savedSearches.Save(r.Context(), req.Query, req.Category, req.CompetitorIDs)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, entry)
}

func (s *Server) handleDeleteSavedSearch(w http.ResponseWriter, r *http.Request) {
	if err := s.savedSearches.Delete(r.Context(), chi.URLParam(r, "savedSearchID")); err != nil {
		s.handleDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- Company types ---

func (s *Server) handleListCompanyTypes(w http.ResponseWriter, r *http.Request) {
	list, err := s.companyTypes.List(r.Context())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleCreateCompanyType(w http.ResponseWriter, r *http.Request) {
	var req companyTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "invalid request body: "+err.Error())
		return
	}

	entry, err := s.companyTypes.Save(r.Context(), req.Label, req.Color)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, entry)
}

func (s *Server) handleUpdateCompanyType(w http.ResponseWriter, r *http.Request) {
	var req companyTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "invalid request body: "+err.Error())
		return
	}

	entry, err := s.companyTypes.Update(r.Context(), chi.URLParam(r, "companyTypeID"), req.Label, req.Color)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

func (s *Server) handleDeleteCompanyType(w http.ResponseWriter, r *http.Request) {
	if err := s.companyTypes.Delete(r.Context(), chi.URLParam(r, "companyTypeID")); err != nil {
		s.handleDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- Interviews ---

func (s *Server) handleStartInterview(w http.ResponseWriter, r *http.Request) {
	iv, err := s.interviews.Start(r.Context(), chi.URLParam(r, "projectID"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, interviewToResponse(&iv))
}

func (s *Server) handleListInterviews(w http.ResponseWriter, r *http.Request) {
	list, err := s.interviews.ListByProject(r.Context(), chi.URLParam(r, "projectID"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	items := make([]interviewResponse, len(list))
	for i := range list {
		items[i] = interviewToResponse(&list[i])
	}
	writeJSON(w, http.StatusOK, items)
}

func (s *Server) handleGetInterview(w http.ResponseWriter, r *http.Request) {
	iv, err := s.interviews.Get(r.Context(), chi.URLParam(r, "interviewID"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, interviewToResponse(&iv))
}

func (s *Server) handleAnswerInterview(w http.ResponseWriter, r *http.Request) {
	var req answerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "invalid request body: "+err.Error())
		return
	}

	iv, err := s.interviews.Answer(r.Context(), chi.URLParam(r, "interviewID"), req.Answer)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, interviewToResponse(&iv))
}

func (s *Server) handleDeleteInterview(w http.ResponseWriter, r *http.Request) {
	if err := s.interviews.Delete(r.Context(), chi.URLParam(r, "interviewID")); err != nil {
		s.handleDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleExtractInsights(w http.ResponseWriter, r *http.Request) {
	iv, err := s.interviews.Insights(r.Context(), chi.URLParam(r, "interviewID"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, interviewToResponse(&iv))
}

// --- Health & metrics ---

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}
	writeJSON(w, httpStatus, healthResponse{
		Status: string(report.Status),
		Checks: checks,
	})
}

func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

// --- Helpers ---

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code ErrorCode, message string) {
	writeJSON(w, status, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns err's message only when it wraps a known
// sentinel. Anything else may carry internals and is masked.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrProjectNotFound,
		domain.ErrCompetitorNotFound,
		domain.ErrPageNotFound,
		domain.ErrInterviewNotFound,
		domain.ErrNotFound,
		domain.ErrAlreadyExists,
		domain.ErrInvalidInput,
		domain.ErrInterviewCompleted,
		domain.ErrWorkflowUnavailable,
		domain.ErrInterviewProviderError,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

func sentinelHandler(sentinel error, status int, code ErrorCode) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
}
