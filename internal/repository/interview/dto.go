package interview

import (
	"encoding/json"
	"fmt"
	"time"

	dominterview "github.com/900robman/competitor-compass/internal/domain/interview"
)

// interviewDoc is the JSON storage shape of an interview session.
type interviewDoc struct {
	ID        string                  `json:"id"`
	ProjectID string                  `json:"project_id"`
	Messages  []dominterview.Message  `json:"messages"`
	Insights  []string                `json:"insights,omitempty"`
	Status    string                  `json:"status"`
	CreatedAt time.Time               `json:"created_at"`
	UpdatedAt time.Time               `json:"updated_at"`
}

func buildDoc(iv *dominterview.Interview) interviewDoc {
	return interviewDoc{
		ID:        iv.ID(),
		ProjectID: iv.ProjectID(),
		Messages:  iv.Messages(),
		Insights:  iv.Insights(),
		Status:    string(iv.Status()),
		CreatedAt: iv.CreatedAt(),
		UpdatedAt: iv.UpdatedAt(),
	}
}

func parseDoc(raw []byte) (dominterview.Interview, error) {
	var docs []interviewDoc
	if err := json.Unmarshal(raw, &docs); err != nil {
		return dominterview.Interview{}, fmt.Errorf("unmarshal interview: %w", err)
	}
	if len(docs) == 0 {
		return dominterview.Interview{}, fmt.Errorf("unmarshal interview: empty JSONPath result")
	}

	d := docs[0]
	status := dominterview.Status(d.Status)
	if status != dominterview.StatusCompleted {
		status = dominterview.StatusActive
	}

	return dominterview.Reconstruct(
		d.ID, d.ProjectID, d.Messages, d.Insights, status, d.CreatedAt, d.UpdatedAt,
	), nil
}
