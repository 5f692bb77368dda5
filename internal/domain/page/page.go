package page

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// DefaultCategory is the effective category for pages without category metadata.
const DefaultCategory = "Uncategorized"

// ScrapeStatus is the scrape lifecycle label of a page.
type ScrapeStatus string

const (
	// StatusNotScraped marks a discovered page that was never scraped.
	StatusNotScraped ScrapeStatus = "not_scraped"
	// StatusPending marks a page queued in the external workflow engine.
	StatusPending ScrapeStatus = "pending"
	// StatusProcessing marks a page the workflow engine is scraping right now.
	StatusProcessing ScrapeStatus = "processing"
	// StatusSuccess marks a successfully scraped page.
	StatusSuccess ScrapeStatus = "success"
	// StatusFailed marks a page whose last scrape failed.
	StatusFailed ScrapeStatus = "failed"
)

// IsValid checks if the scrape status is a known lifecycle label.
func (s ScrapeStatus) IsValid() bool {
	switch s {
	case StatusNotScraped, StatusPending, StatusProcessing, StatusSuccess, StatusFailed:
		return true
	}
	return false
}

// Page is a tracked page record (immutable value object). Title, description
// and markdown content may be empty: the workflow engine fills them in as the
// scrape pipeline progresses.
type Page struct {
	id             string
	url            string
	title          string
	description    string
	markdown       string
	metadata       map[string]string
	competitorID   string
	competitorName string
	scrapeStatus   ScrapeStatus
	lastScrapedAt  *time.Time
	createdAt      time.Time
	updatedAt      time.Time
}

// New validates and creates a Page.
func New(id, pageURL, competitorID string, metadata map[string]string) (Page, error) {
	if id == "" {
		return Page{}, fmt.Errorf("page ID is required")
	}
	if competitorID == "" {
		return Page{}, fmt.Errorf("competitor ID is required")
	}
	u, err := url.Parse(pageURL)
	if err != nil || u.Scheme != "http" && u.Scheme != "https" || u.Host == "" {
		return Page{}, fmt.Errorf("page URL must be absolute http(s): %q", pageURL)
	}

	now := time.Now().UTC()
	return Page{
		id:           id,
		url:          pageURL,
		metadata:     cloneMap(metadata),
		competitorID: competitorID,
		scrapeStatus: StatusNotScraped,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// Reconstruct creates a Page without validation (storage hydration).
func Reconstruct(
	id, pageURL, title, description, markdown string,
	metadata map[string]string,
	competitorID, competitorName string,
	scrapeStatus ScrapeStatus,
	lastScrapedAt *time.Time,
	createdAt, updatedAt time.Time,
) Page {
	return Page{
		id:             id,
		url:            pageURL,
		title:          title,
		description:    description,
		markdown:       markdown,
		metadata:       metadata,
		competitorID:   competitorID,
		competitorName: competitorName,
		scrapeStatus:   scrapeStatus,
		lastScrapedAt:  lastScrapedAt,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

// ID returns the page identifier.
func (p *Page) ID() string { return p.id }

// URL returns the page URL.
func (p *Page) URL() string { return p.url }

// Title returns the page title ("" when not yet scraped).
func (p *Page) Title() string { return p.title }

// Description returns the meta description ("" when absent).
func (p *Page) Description() string { return p.description }

// Markdown returns the scraped page content as markdown ("" when absent).
func (p *Page) Markdown() string { return p.markdown }

// Metadata returns the free-form metadata fields.
func (p *Page) Metadata() map[string]string { return p.metadata }

// CompetitorID returns the owning competitor identifier.
func (p *Page) CompetitorID() string { return p.competitorID }

// CompetitorName returns the denormalized competitor name.
func (p *Page) CompetitorName() string { return p.competitorName }

// ScrapeStatus returns the scrape lifecycle label.
func (p *Page) ScrapeStatus() ScrapeStatus { return p.scrapeStatus }

// LastScrapedAt returns the last successful scrape time (nil if never).
func (p *Page) LastScrapedAt() *time.Time { return p.lastScrapedAt }

// CreatedAt returns the record creation time.
func (p *Page) CreatedAt() time.Time { return p.createdAt }

// UpdatedAt returns the last mutation time.
func (p *Page) UpdatedAt() time.Time { return p.updatedAt }

// EffectiveCategory returns the category metadata field, or DefaultCategory
// when the page carries none.
func (p *Page) EffectiveCategory() string {
	if c := p.metadata["category"]; c != "" {
		return c
	}
	return DefaultCategory
}

// SearchableText returns the concatenation of title, URL, markdown content and
// description joined with single spaces. Absent fields contribute empty
// strings, so term positions stay comparable across pages.
func (p *Page) SearchableText() string {
	return strings.Join([]string{p.title, p.url, p.markdown, p.description}, " ")
}

// WithContent returns a copy with scraped content fields set and the update
// time advanced.
func (p *Page) WithContent(title, description, markdown string, scrapedAt time.Time) Page {
	out := *p
	out.title = title
	out.description = description
	out.markdown = markdown
	out.scrapeStatus = StatusSuccess
	t := scrapedAt.UTC()
	out.lastScrapedAt = &t
	out.updatedAt = time.Now().UTC()
	return out
}

// WithScrapeStatus returns a copy with the scrape status replaced.
func (p *Page) WithScrapeStatus(s ScrapeStatus) Page {
	out := *p
	out.scrapeStatus = s
	out.updatedAt = time.Now().UTC()
	return out
}

// WithCompetitorName returns a copy with the denormalized competitor name set.
func (p *Page) WithCompetitorName(name string) Page {
	out := *p
	out.competitorName = name
	return out
}

// WithMetadata returns a copy with a metadata field set ("" deletes it).
func (p *Page) WithMetadata(key, value string) Page {
	out := *p
	out.metadata = cloneMap(p.metadata)
	if out.metadata == nil {
		out.metadata = make(map[string]string, 1)
	}
	if value == "" {
		delete(out.metadata, key)
	} else {
		out.metadata[key] = value
	}
	out.updatedAt = time.Now().UTC()
	return out
}

func cloneMap(m map[string]string) map[string]string {
	if m == nil {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
