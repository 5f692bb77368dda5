package project

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/900robman/competitor-compass/internal/domain"
	domproj "github.com/900robman/competitor-compass/internal/domain/project"
)

// store is the consumer interface for projects (ISP).
type store interface {
	HSet(ctx context.Context, key string, fields map[string]string) error
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	HGetAllMulti(ctx context.Context, keys []string) ([]map[string]string, error)
	Del(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	SAdd(ctx context.Context, key string, members ...string) error
	SRem(ctx context.Context, key string, members ...string) error
	SMembers(ctx context.Context, key string) ([]string, error)
}

// Repo implements the project storage contracts of the use case layer.
type Repo struct {
	store store
}

// New creates a project repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// Upsert creates or updates a project. Returns true if created.
func (r *Repo) Upsert(ctx context.Context, p *domproj.Project) (bool, error) {
	key := projectKey(p.ID())

	exists, err := r.store.Exists(ctx, key)
	if err != nil {
		return false, fmt.Errorf("check exists %s: %w", key, err)
	}

	if err := r.store.HSet(ctx, key, buildFields(p)); err != nil {
		return false, fmt.Errorf("hset %s: %w", key, err)
	}
	if err := r.store.SAdd(ctx, allProjectsKey(), p.ID()); err != nil {
		return false, fmt.Errorf("index project %s: %w", p.ID(), err)
	}

	return !exists, nil
}

// Get returns a project by ID.
func (r *Repo) Get(ctx context.Context, id string) (domproj.Project, error) {
	m, err := r.store.HGetAll(ctx, projectKey(id))
	if err != nil {
		return domproj.Project{}, fmt.Errorf("hgetall %s: %w", projectKey(id), err)
	}
	if len(m) == 0 {
		return domproj.Project{}, domain.ErrProjectNotFound
	}
	return parseFields(id, m), nil
}

// List returns all projects, newest first.
func (r *Repo) List(ctx context.Context) ([]domproj.Project, error) {
	ids, err := r.store.SMembers(ctx, allProjectsKey())
	if err != nil {
		return nil, fmt.Errorf("list project ids: %w", err)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = projectKey(id)
	}

	maps, err := r.store.HGetAllMulti(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("fetch projects: %w", err)
	}

	out := make([]domproj.Project, 0, len(maps))
	for i, m := range maps {
		if len(m) == 0 {
			continue
		}
		out = append(out, parseFields(ids[i], m))
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt().After(out[j].CreatedAt())
	})
	return out, nil
}

// Delete removes a project record and its index membership.
func (r *Repo) Delete(ctx context.Context, id string) error {
	exists, err := r.store.Exists(ctx, projectKey(id))
	if err != nil {
		return fmt.Errorf("check exists %s: %w", projectKey(id), err)
	}
	if !exists {
		return domain.ErrProjectNotFound
	}

	if err := r.store.Del(ctx, projectKey(id)); err != nil {
		return fmt.Errorf("del %s: %w", projectKey(id), err)
	}
	if err := r.store.SRem(ctx, allProjectsKey(), id); err != nil {
		return fmt.Errorf("unindex project %s: %w", id, err)
	}
	return nil
}

func projectKey(id string) string {
	return domain.KeyPrefix + "project:" + id
}

func allProjectsKey() string {
	return domain.KeyPrefix + "projects"
}

// buildFields converts a domain Project into a flat map[string]string for HSET.
func buildFields(p *domproj.Project) map[string]string {
	return map[string]string{
		"name":        p.Name(),
		"description": p.Description(),
		"created_at":  p.CreatedAt().Format(time.RFC3339Nano),
		"updated_at":  p.UpdatedAt().Format(time.RFC3339Nano),
	}
}

// parseFields converts a flat hash map back into a domain Project.
func parseFields(id string, m map[string]string) domproj.Project {
	createdAt, _ := time.Parse(time.RFC3339Nano, m["created_at"])
	updatedAt, _ := time.Parse(time.RFC3339Nano, m["updated_at"])
	return domproj.Reconstruct(id, m["name"], m["description"], createdAt, updatedAt)
}
