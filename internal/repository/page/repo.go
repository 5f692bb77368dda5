package page

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/900robman/competitor-compass/internal/db"
	"github.com/900robman/competitor-compass/internal/domain"
	dompage "github.com/900robman/competitor-compass/internal/domain/page"
)

// store is the consumer interface for pages (ISP).
type store interface {
	JSONSet(ctx context.Context, key string, data []byte) error
	JSONGet(ctx context.Context, key string) ([]byte, error)
	JSONGetMulti(ctx context.Context, keys []string) ([][]byte, error)
	Del(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	SAdd(ctx context.Context, key string, members ...string) error
	SRem(ctx context.Context, key string, members ...string) error
	SMembers(ctx context.Context, key string) ([]string, error)
}

// Repo implements the page storage contracts of the use case layer.
type Repo struct {
	store store
}

// New creates a page repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// Upsert creates or updates a page. Returns true if created.
func (r *Repo) Upsert(ctx context.Context, p *dompage.Page) (bool, error) {
	key := pageKey(p.ID())
	data, err := json.Marshal(buildDoc(p))
	if err != nil {
		return false, fmt.Errorf("marshal page: %w", err)
	}

	exists, err := r.store.Exists(ctx, key)
	if err != nil {
		return false, fmt.Errorf("check exists %s: %w", key, err)
	}

	if err := r.store.JSONSet(ctx, key, data); err != nil {
		return false, fmt.Errorf("json.set %s: %w", key, err)
	}
	if err := r.store.SAdd(ctx, allPagesKey(), p.ID()); err != nil {
		return false, fmt.Errorf("index page %s: %w", p.ID(), err)
	}
	if err := r.store.SAdd(ctx, competitorPagesKey(p.CompetitorID()), p.ID()); err != nil {
		return false, fmt.Errorf("index page %s for competitor %s: %w", p.ID(), p.CompetitorID(), err)
	}

	return !exists, nil
}

// Get returns a page by ID.
func (r *Repo) Get(ctx context.Context, id string) (dompage.Page, error) {
	raw, err := r.store.JSONGet(ctx, pageKey(id))
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return dompage.Page{}, domain.ErrPageNotFound
		}
		return dompage.Page{}, fmt.Errorf("json.get %s: %w", pageKey(id), err)
	}
	return parseDoc(raw)
}

// Delete removes a page and its set memberships.
func (r *Repo) Delete(ctx context.Context, id string) error {
	p, err := r.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := r.store.Del(ctx, pageKey(id)); err != nil {
		return fmt.Errorf("del %s: %w", pageKey(id), err)
	}
	if err := r.store.SRem(ctx, allPagesKey(), id); err != nil {
		return fmt.Errorf("unindex page %s: %w", id, err)
	}
	if err := r.store.SRem(ctx, competitorPagesKey(p.CompetitorID()), id); err != nil {
		return fmt.Errorf("unindex page %s for competitor %s: %w", id, p.CompetitorID(), err)
	}
	return nil
}

// List returns pages, optionally scoped to the given competitor ids, ordered
// most-recently-updated first. This retrieval order is the default dashboard
// ordering; search re-ranks matches afterwards.
func (r *Repo) List(ctx context.Context, competitorIDs []string) ([]dompage.Page, error) {
	ids, err := r.memberIDs(ctx, competitorIDs)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = pageKey(id)
	}

	raws, err := r.store.JSONGetMulti(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("fetch pages: %w", err)
	}

	pages := make([]dompage.Page, 0, len(raws))
	for _, raw := range raws {
		if raw == nil {
			// Set membership can outlive the document briefly; skip strays.
			continue
		}
		p, err := parseDoc(raw)
		if err != nil {
			return nil, err
		}
		pages = append(pages, p)
	}

	sort.SliceStable(pages, func(i, j int) bool {
		return pages[i].UpdatedAt().After(pages[j].UpdatedAt())
	})
	return pages, nil
}

// DeleteByCompetitor removes every page of a competitor. Returns the number
// of pages removed.
func (r *Repo) DeleteByCompetitor(ctx context.Context, competitorID string) (int, error) {
	ids, err := r.store.SMembers(ctx, competitorPagesKey(competitorID))
	if err != nil {
		return 0, fmt.Errorf("list pages of competitor %s: %w", competitorID, err)
	}

	for _, id := range ids {
		if err := r.store.Del(ctx, pageKey(id)); err != nil {
			return 0, fmt.Errorf("del %s: %w", pageKey(id), err)
		}
		if err := r.store.SRem(ctx, allPagesKey(), id); err != nil {
			return 0, fmt.Errorf("unindex page %s: %w", id, err)
		}
	}
	if err := r.store.Del(ctx, competitorPagesKey(competitorID)); err != nil {
		return 0, fmt.Errorf("del %s: %w", competitorPagesKey(competitorID), err)
	}
	return len(ids), nil
}

// memberIDs resolves the candidate page id set for an optional competitor scope.
func (r *Repo) memberIDs(ctx context.Context, competitorIDs []string) ([]string, error) {
	if len(competitorIDs) == 0 {
		ids, err := r.store.SMembers(ctx, allPagesKey())
		if err != nil {
			return nil, fmt.Errorf("list page ids: %w", err)
		}
		return ids, nil
	}

	seen := make(map[string]bool)
	var ids []string
	for _, cid := range competitorIDs {
		members, err := r.store.SMembers(ctx, competitorPagesKey(cid))
		if err != nil {
			return nil, fmt.Errorf("list page ids of competitor %s: %w", cid, err)
		}
		for _, id := range members {
			if !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
	}
	return ids, nil
}

func pageKey(id string) string {
	return domain.KeyPrefix + "page:" + id
}

func allPagesKey() string {
	return domain.KeyPrefix + "pages"
}

func competitorPagesKey(competitorID string) string {
	return domain.KeyPrefix + "competitor:" + competitorID + ":pages"
}
