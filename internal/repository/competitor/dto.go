package competitor

import (
	"time"

	domcomp "github.com/900robman/competitor-compass/internal/domain/competitor"
)

// buildFields converts a domain Competitor into a flat map[string]string for HSET.
func buildFields(c *domcomp.Competitor) map[string]string {
	return map[string]string{
		"project_id":   c.ProjectID(),
		"name":         c.Name(),
		"url":          c.SiteURL(),
		"company_type": c.CompanyType(),
		"notes":        c.Notes(),
		"created_at":   c.CreatedAt().Format(time.RFC3339Nano),
		"updated_at":   c.UpdatedAt().Format(time.RFC3339Nano),
	}
}

// parseFields converts a flat hash map back into a domain Competitor.
func parseFields(id string, m map[string]string) domcomp.Competitor {
	createdAt, _ := time.Parse(time.RFC3339Nano, m["created_at"])
	updatedAt, _ := time.Parse(time.RFC3339Nano, m["updated_at"])
	return domcomp.Reconstruct(
		id,
		m["project_id"],
		m["name"],
		m["url"],
		m["company_type"],
		m["notes"],
		createdAt, updatedAt,
	)
}
