package compass

import (
	domcomp "github.com/900robman/competitor-compass/internal/domain/competitor"
	dominterview "github.com/900robman/competitor-compass/internal/domain/interview"
	dompage "github.com/900robman/competitor-compass/internal/domain/page"
	domproj "github.com/900robman/competitor-compass/internal/domain/project"
	domsaved "github.com/900robman/competitor-compass/internal/domain/savedsearch"
	"github.com/900robman/competitor-compass/internal/domain/search/result"
	healthuc "github.com/900robman/competitor-compass/internal/usecase/health"
)

func fromInternalProject(p domproj.Project) Project {
	return Project{
		ID:          p.ID(),
		Name:        p.Name(),
		Description: p.Description(),
		CreatedAt:   p.CreatedAt(),
		UpdatedAt:   p.UpdatedAt(),
	}
}

func fromInternalProjects(list []domproj.Project) []Project {
	out := make([]Project, len(list))
	for i := range list {
		out[i] = fromInternalProject(list[i])
	}
	return out
}

func fromInternalCompetitor(c domcomp.Competitor) Competitor {
	return Competitor{
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

func fromInternalCompetitors(list []domcomp.Competitor) []Competitor {
	out := make([]Competitor, len(list))
	for i := range list {
		out[i] = fromInternalCompetitor(list[i])
	}
	return out
}

func fromInternalPage(p dompage.Page) Page {
	return Page{
		ID:             p.ID(),
		CompetitorID:   p.CompetitorID(),
		CompetitorName: p.CompetitorName(),
		URL:            p.URL(),
		Title:          p.Title(),
		Description:    p.Description(),
		Markdown:       p.Markdown(),
		Category:       p.EffectiveCategory(),
		Metadata:       p.Metadata(),
		ScrapeStatus:   string(p.ScrapeStatus()),
		LastScrapedAt:  p.LastScrapedAt(),
		CreatedAt:      p.CreatedAt(),
		UpdatedAt:      p.UpdatedAt(),
	}
}

func fromInternalPages(list []dompage.Page) []Page {
	out := make([]Page, len(list))
	for i := range list {
		out[i] = fromInternalPage(list[i])
	}
	return out
}

func fromSearchResults(results []result.Result) []SearchResult {
	out := make([]SearchResult, len(results))
	for i := range results {
		r := &results[i]
		out[i] = SearchResult{
			Page:           fromInternalPage(r.Page()),
			Snippet:        r.Snippet(),
			MatchPositions: r.MatchPositions(),
		}
	}
	return out
}

func fromInternalSaved(s domsaved.SavedSearch) SavedSearch {
	return SavedSearch{
		ID:            s.ID,
		Query:         s.Query,
		Category:      s.Category,
		CompetitorIDs: s.CompetitorIDs,
		CreatedAt:     s.CreatedAt,
	}
}

func fromInternalSavedList(list []domsaved.SavedSearch) []SavedSearch {
	out := make([]SavedSearch, len(list))
	for i := range list {
		out[i] = fromInternalSaved(list[i])
	}
	return out
}

func fromInternalMessages(msgs []dominterview.Message) []InterviewMessage {
	out := make([]InterviewMessage, len(msgs))
	for i, m := range msgs {
		out[i] = InterviewMessage{
			Role:    string(m.Role),
			Content: m.Content,
			At:      m.At,
		}
	}
	return out
}

func fromInternalInterview(iv dominterview.Interview) Interview {
	return Interview{
		ID:        iv.ID(),
		ProjectID: iv.ProjectID(),
		Messages:  fromInternalMessages(iv.Messages()),
		Insights:  iv.Insights(),
		Status:    string(iv.Status()),
		CreatedAt: iv.CreatedAt(),
		UpdatedAt: iv.UpdatedAt(),
	}
}

func fromInternalInterviews(list []dominterview.Interview) []Interview {
	out := make([]Interview, len(list))
	for i := range list {
		out[i] = fromInternalInterview(list[i])
	}
	return out
}

func fromInternalReport(r healthuc.Report) HealthReport {
	checks := make(map[string]string, len(r.Checks))
	for name, res := range r.Checks {
		checks[name] = string(res)
	}
	return HealthReport{Status: string(r.Status), Checks: checks}
}
