package chi

import (
	"time"

	domcomp "github.com/900robman/competitor-compass/internal/domain/competitor"
	dominterview "github.com/900robman/competitor-compass/internal/domain/interview"
	dompage "github.com/900robman/competitor-compass/internal/domain/page"
	domproj "github.com/900robman/competitor-compass/internal/domain/project"
	"github.com/900robman/competitor-compass/internal/domain/search/result"
)

// ErrorCode classifies API errors for clients.
type ErrorCode string

const (
	codeBadRequest          ErrorCode = "bad_request"
	codeValidationFailed    ErrorCode = "validation_failed"
	codeNotFound            ErrorCode = "not_found"
	codeAlreadyExists       ErrorCode = "already_exists"
	codeWorkflowUnavailable ErrorCode = "workflow_unavailable"
	codeProviderError       ErrorCode = "interview_provider_error"
	codeInterviewCompleted  ErrorCode = "interview_completed"
	codeInternalError       ErrorCode = "internal_error"
)

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

type projectResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type projectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type competitorResponse struct {
	ID          string    `json:"id"`
	ProjectID   string    `json:"project_id"`
	Name        string    `json:"name"`
	SiteURL     string    `json:"site_url"`
	CompanyType string    `json:"company_type,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type competitorRequest struct {
	Name        string `json:"name"`
	SiteURL     string `json:"site_url"`
	CompanyType string `json:"company_type"`
	Notes       string `json:"notes"`
}

type pageResponse struct {
	ID             string            `json:"id"`
	URL            string            `json:"url"`
	Title          string            `json:"title,omitempty"`
	Description    string            `json:"description,omitempty"`
	Markdown       string            `json:"markdown_content,omitempty"`
	Metadata       map[string]string `json:"metadata,omitempty"`
	Category       string            `json:"category"`
	CompetitorID   string            `json:"competitor_id"`
	CompetitorName string            `json:"competitor_name,omitempty"`
	ScrapeStatus   string            `json:"scrape_status"`
	LastScrapedAt  *time.Time        `json:"last_scraped_at,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

type createPageRequest struct {
	CompetitorID string            `json:"competitor_id"`
	URL          string            `json:"url"`
	Metadata     map[string]string `json:"metadata"`
}

type updatePageRequest struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Markdown    string            `json:"markdown_content"`
	Metadata    map[string]string `json:"metadata"`
}

type pageStatusRequest struct {
	ScrapeStatus string `json:"scrape_status"`
}

type searchResultResponse struct {
	Page           pageResponse `json:"page"`
	Snippet        string       `json:"snippet"`
	MatchPositions []int        `json:"match_positions"`
}

type searchResponse struct {
	Query   string                 `json:"query"`
	Results []searchResultResponse `json:"results"`
	Total   int                    `json:"total"`
}

type saveSearchRequest struct {
	Query         string   `json:"query"`
	Category      string   `json:"category"`
	CompetitorIDs []string `json:"competitor_ids"`
}

type companyTypeRequest struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

type interviewMessageResponse struct {
	Role    string    `json:"role"`
	Content string    `json:"content"`
	At      time.Time `json:"at"`
}

type interviewResponse struct {
	ID        string                     `json:"id"`
	ProjectID string                     `json:"project_id"`
	Status    string                     `json:"status"`
	Messages  []interviewMessageResponse `json:"messages"`
	Insights  []string                   `json:"insights,omitempty"`
	CreatedAt time.Time                  `json:"created_at"`
	UpdatedAt time.Time                  `json:"updated_at"`
}

type answerRequest struct {
	Answer string `json:"answer"`
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

func projectToResponse(p *domproj.Project) projectResponse {
	return projectResponse{
		ID:          p.ID(),
		Name:        p.Name(),
		Description: p.Description(),
		CreatedAt:   p.CreatedAt(),
		UpdatedAt:   p.UpdatedAt(),
	}
}

func competitorToResponse(c *domcomp.Competitor) competitorResponse {
	return competitorResponse{
		ID:          c.ID(),
		ProjectID:   c.ProjectID(),
		Name:        c.Name(),
		SiteURL:     c.SiteURL(),
		CompanyType: c.CompanyType(),
		Notes:       c.Notes(),
		CreatedAt:   c.CreatedAt(),
		UpdatedAt:   c.UpdatedAt(),
	}
}

func pageToResponse(p *dompage.Page) pageResponse {
	return pageResponse{
		ID:             p.ID(),
		URL:            p.URL(),
		Title:          p.Title(),
		Description:    p.Description(),
		Markdown:       p.Markdown(),
		Metadata:       p.Metadata(),
		Category:       p.EffectiveCategory(),
		CompetitorID:   p.CompetitorID(),
		CompetitorName: p.CompetitorName(),
		ScrapeStatus:   string(p.ScrapeStatus()),
		LastScrapedAt:  p.LastScrapedAt(),
		CreatedAt:      p.CreatedAt(),
		UpdatedAt:      p.UpdatedAt(),
	}
}

func resultToResponse(r *result.Result) searchResultResponse {
	p := r.Page()
	return searchResultResponse{
		Page:           pageToResponse(&p),
		Snippet:        r.Snippet(),
		MatchPositions: r.MatchPositions(),
	}
}

func interviewToResponse(iv *dominterview.Interview) interviewResponse {
	msgs := iv.Messages()
	out := interviewResponse{
		ID:        iv.ID(),
		ProjectID: iv.ProjectID(),
		Status:    string(iv.Status()),
		Messages:  make([]interviewMessageResponse, len(msgs)),
		Insights:  iv.Insights(),
		CreatedAt: iv.CreatedAt(),
		UpdatedAt: iv.UpdatedAt(),
	}
	for i, m := range msgs {
		out.Messages[i] = interviewMessageResponse{
			Role:    string(m.Role),
			Content: m.Content,
			At:      m.At,
		}
	}
	return out
}
