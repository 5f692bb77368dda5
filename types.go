package compass

import "time"

// Project is a top-level grouping of competitors.
type Project struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Competitor is a tracked company inside a project.
type Competitor struct {
	ID          string
	ProjectID   string
	Name        string
	SiteURL     string
	CompanyType string
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Page is a tracked page on a competitor's site. Category is the effective
// category: the "category" metadata entry, or "Uncategorized" when unset.
type Page struct {
	ID             string
	CompetitorID   string
	CompetitorName string
	URL            string
	Title          string
	Description    string
	Markdown       string
	Category       string
	Metadata       map[string]string
	ScrapeStatus   string
	LastScrapedAt  *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// SearchResult is one ranked search hit.
type SearchResult struct {
	Page Page
	// Snippet is a whitespace-collapsed excerpt around the first matched
	// term, with ellipses marking truncation.
	Snippet string
	// MatchPositions holds the first byte index of each matched query term.
	MatchPositions []int
}

// SavedSearch is one saved query configuration.
type SavedSearch struct {
	ID            string
	Query         string
	Category      string
	CompetitorIDs []string
	CreatedAt     time.Time
}

// InterviewMessage is one transcript entry. Role is "interviewer" or
// "client".
type InterviewMessage struct {
	Role    string
	Content string
	At      time.Time
}

// Interview is a requirements interview session.
type Interview struct {
	ID        string
	ProjectID string
	Messages  []InterviewMessage
	Insights  []string
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HealthReport aggregates component check outcomes. Status is "ok",
// "degraded" or "error"; Checks maps component name to "ok" or "error".
type HealthReport struct {
	Status string
	Checks map[string]string
}
