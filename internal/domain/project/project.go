package project

import (
	"fmt"
	"time"
)

// Project groups the competitors tracked for one client engagement
// (immutable value object).
type Project struct {
	id          string
	name        string
	description string
	createdAt   time.Time
	updatedAt   time.Time
}

// New validates and creates a Project.
func New(id, name, description string) (Project, error) {
	if id == "" {
		return Project{}, fmt.Errorf("project ID is required")
	}
	if name == "" {
		return Project{}, fmt.Errorf("project name is required")
	}
	if len(name) > 128 {
		return Project{}, fmt.Errorf("project name too long (max 128)")
	}

	now := time.Now().UTC()
	return Project{
		id:          id,
		name:        name,
		description: description,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// Reconstruct creates a Project without validation (storage hydration).
func Reconstruct(id, name, description string, createdAt, updatedAt time.Time) Project {
	return Project{
		id:          id,
		name:        name,
		description: description,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// ID returns the project identifier.
func (p *Project) ID() string { return p.id }

// Name returns the project display name.
func (p *Project) Name() string { return p.name }

// Description returns the project description.
func (p *Project) Description() string { return p.description }

// CreatedAt returns the record creation time.
func (p *Project) CreatedAt() time.Time { return p.createdAt }

// UpdatedAt returns the last mutation time.
func (p *Project) UpdatedAt() time.Time { return p.updatedAt }

// WithDetails returns a copy with name/description replaced and the update
// time advanced. Empty name keeps the current one.
func (p *Project) WithDetails(name, description string) Project {
	out := *p
	if name != "" {
		out.name = name
	}
	out.description = description
	out.updatedAt = time.Now().UTC()
	return out
}
