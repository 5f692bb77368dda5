package competitor

import (
	"context"
	"fmt"
	"sort"

	"github.com/900robman/competitor-compass/internal/domain"
	domcomp "github.com/900robman/competitor-compass/internal/domain/competitor"
)

// store is the consumer interface for competitors (ISP).
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

// Repo implements the competitor storage contracts of the use case layer.
type Repo struct {
	store store
}

// New creates a competitor repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// Upsert creates or updates a competitor. Returns true if created.
func (r *Repo) Upsert(ctx context.Context, c *domcomp.Competitor) (bool, error) {
	key := competitorKey(c.ID())

	exists, err := r.store.Exists(ctx, key)
	if err != nil {
		return false, fmt.Errorf("check exists %s: %w", key, err)
	}

	if err := r.store.HSet(ctx, key, buildFields(c)); err != nil {
		return false, fmt.Errorf("hset %s: %w", key, err)
	}
	if err := r.store.SAdd(ctx, projectCompetitorsKey(c.ProjectID()), c.ID()); err != nil {
		return false, fmt.Errorf("index competitor %s for project %s: %w", c.ID(), c.ProjectID(), err)
	}

	return !exists, nil
}

// Get returns a competitor by ID.
func (r *Repo) Get(ctx context.Context, id string) (domcomp.Competitor, error) {
	m, err := r.store.HGetAll(ctx, competitorKey(id))
	if err != nil {
		return domcomp.Competitor{}, fmt.Errorf("hgetall %s: %w", competitorKey(id), err)
	}
	if len(m) == 0 {
		return domcomp.Competitor{}, domain.ErrCompetitorNotFound
	}
	return parseFields(id, m), nil
}

// ListByProject returns a project's competitors ordered by name.
func (r *Repo) ListByProject(ctx context.Context, projectID string) ([]domcomp.Competitor, error) {
	ids, err := r.store.SMembers(ctx, projectCompetitorsKey(projectID))
	if err != nil {
		return nil, fmt.Errorf("list competitor ids of project %s: %w", projectID, err)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = competitorKey(id)
	}

	maps, err := r.store.HGetAllMulti(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("fetch competitors: %w", err)
	}

	out := make([]domcomp.Competitor, 0, len(maps))
	for i, m := range maps {
		if len(m) == 0 {
			continue
		}
		out = append(out, parseFields(ids[i], m))
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Name() < out[j].Name()
	})
	return out, nil
}

// Delete removes a competitor and its project membership.
func (r *Repo) Delete(ctx context.Context, id string) error {
	c, err := r.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := r.store.Del(ctx, competitorKey(id)); err != nil {
		return fmt.Errorf("del %s: %w", competitorKey(id), err)
	}
	if err := r.store.SRem(ctx, projectCompetitorsKey(c.ProjectID()), id); err != nil {
		return fmt.Errorf("unindex competitor %s: %w", id, err)
	}
	return nil
}

func competitorKey(id string) string {
	return domain.KeyPrefix + "competitor:" + id
}

func projectCompetitorsKey(projectID string) string {
	return domain.KeyPrefix + "project:" + projectID + ":competitors"
}
