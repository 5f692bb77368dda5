package competitor

import (
	"fmt"
	"net/url"
	"time"
)

// Competitor is a tracked company inside a project (immutable value object).
type Competitor struct {
	id          string
	projectID   string
	name        string
	siteURL     string
	companyType string
	notes       string
	createdAt   time.Time
	updatedAt   time.Time
}

// New validates and creates a Competitor.
func New(id, projectID, name, siteURL, companyType, notes string) (Competitor, error) {
	if id == "" {
		return Competitor{}, fmt.Errorf("competitor ID is required")
	}
	if projectID == "" {
		return Competitor{}, fmt.Errorf("project ID is required")
	}
	if name == "" {
		return Competitor{}, fmt.Errorf("competitor name is required")
	}
	u, err := url.Parse(siteURL)
	if err != nil || u.Scheme != "http" && u.Scheme != "https" || u.Host == "" {
		return Competitor{}, fmt.Errorf("competitor site URL must be absolute http(s): %q", siteURL)
	}

	now := time.Now().UTC()
	return Competitor{
		id:          id,
		projectID:   projectID,
		name:        name,
		siteURL:     siteURL,
		companyType: companyType,
		notes:       notes,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// Reconstruct creates a Competitor without validation (storage hydration).
func Reconstruct(
	id, projectID, name, siteURL, companyType, notes string,
	createdAt, updatedAt time.Time,
) Competitor {
	return Competitor{
		id:          id,
		projectID:   projectID,
		name:        name,
		siteURL:     siteURL,
		companyType: companyType,
		notes:       notes,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// ID returns the competitor identifier.
func (c *Competitor) ID() string { return c.id }

// ProjectID returns the owning project identifier.
func (c *Competitor) ProjectID() string { return c.projectID }

// Name returns the company display name.
func (c *Competitor) Name() string { return c.name }

// SiteURL returns the tracked website URL.
func (c *Competitor) SiteURL() string { return c.siteURL }

// CompanyType returns the configured company type label ("" when unset).
func (c *Competitor) CompanyType() string { return c.companyType }

// Notes returns free-form analyst notes.
func (c *Competitor) Notes() string { return c.notes }

// CreatedAt returns the record creation time.
func (c *Competitor) CreatedAt() time.Time { return c.createdAt }

// UpdatedAt returns the last mutation time.
func (c *Competitor) UpdatedAt() time.Time { return c.updatedAt }

// WithDetails returns a copy with mutable fields replaced and the update time
// advanced. Empty name keeps the current one.
func (c *Competitor) WithDetails(name, companyType, notes string) Competitor {
	out := *c
	if name != "" {
		out.name = name
	}
	out.companyType = companyType
	out.notes = notes
	out.updatedAt = time.Now().UTC()
	return out
}
