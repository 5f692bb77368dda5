package page

import (
	"encoding/json"
	"fmt"
	"time"

	dompage "github.com/900robman/competitor-compass/internal/domain/page"
)

// pageDoc is the JSON storage shape of a page record. Field names follow the
// external data-store schema the workflow engine writes into.
type pageDoc struct {
	ID             string            `json:"id"`
	URL            string            `json:"url"`
	Title          string            `json:"title,omitempty"`
	Description    string            `json:"description,omitempty"`
	Markdown       string            `json:"markdown_content,omitempty"`
	Metadata       map[string]string `json:"metadata,omitempty"`
	CompetitorID   string            `json:"competitor_id"`
	CompetitorName string            `json:"competitor_name,omitempty"`
	ScrapeStatus   string            `json:"scrape_status"`
	LastScrapedAt  *time.Time        `json:"last_scraped_at,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

// buildDoc converts a domain Page into its storage shape.
func buildDoc(p *dompage.Page) pageDoc {
	return pageDoc{
		ID:             p.ID(),
		URL:            p.URL(),
		Title:          p.Title(),
		Description:    p.Description(),
		Markdown:       p.Markdown(),
		Metadata:       p.Metadata(),
		CompetitorID:   p.CompetitorID(),
		CompetitorName: p.CompetitorName(),
		ScrapeStatus:   string(p.ScrapeStatus()),
		LastScrapedAt:  p.LastScrapedAt(),
		CreatedAt:      p.CreatedAt(),
		UpdatedAt:      p.UpdatedAt(),
	}
}

// parseDoc converts a JSON.GET "$" answer (array-wrapped document) back into
// a domain Page.
func parseDoc(raw []byte) (dompage.Page, error) {
	var docs []pageDoc
	if err := json.Unmarshal(raw, &docs); err != nil {
		return dompage.Page{}, fmt.Errorf("unmarshal page: %w", err)
	}
	if len(docs) == 0 {
		return dompage.Page{}, fmt.Errorf("unmarshal page: empty JSONPath result")
	}

	d := docs[0]
	status := dompage.ScrapeStatus(d.ScrapeStatus)
	if !status.IsValid() {
		status = dompage.StatusNotScraped
	}

	return dompage.Reconstruct(
		d.ID, d.URL, d.Title, d.Description, d.Markdown,
		d.Metadata,
		d.CompetitorID, d.CompetitorName,
		status,
		d.LastScrapedAt,
		d.CreatedAt, d.UpdatedAt,
	), nil
}
