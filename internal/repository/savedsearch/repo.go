// Package savedsearch persists the saved-search list as one JSON blob in a
// single key-value slot, mirroring the browser-storage model it replaces.
// The list is small (capped upstream) so read-modify-write of the whole blob
// is fine; two concurrent writers race and last-write-wins, which is the
// documented behavior of this feature.
package savedsearch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/900robman/competitor-compass/internal/db"
	"github.com/900robman/competitor-compass/internal/domain"
	domsaved "github.com/900robman/competitor-compass/internal/domain/savedsearch"
)

// store is the consumer interface for the saved-search slot (ISP).
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

// Repo implements the saved-search storage contract of the use case layer.
type Repo struct {
	store store
}

// New creates a saved-search repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// Load returns the persisted list. A missing slot or corrupt JSON yields an
// empty list, never an error: saved searches are a convenience feature and a
// damaged blob must not break the dashboard.
func (r *Repo) Load(ctx context.Context) ([]domsaved.SavedSearch, error) {
	raw, err := r.store.Get(ctx, slotKey())
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return []domsaved.SavedSearch{}, nil
		}
		return nil, fmt.Errorf("get %s: %w", slotKey(), err)
	}

	var list []domsaved.SavedSearch
	if err := json.Unmarshal(raw, &list); err != nil {
		return []domsaved.SavedSearch{}, nil
	}
	return list, nil
}

// Store persists the full list, replacing the previous blob.
func (r *Repo) Store(ctx context.Context, list []domsaved.SavedSearch) error {
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("marshal saved searches: %w", err)
	}
	if err := r.store.Set(ctx, slotKey(), data); err != nil {
		return fmt.Errorf("set %s: %w", slotKey(), err)
	}
	return nil
}

func slotKey() string {
	return domain.KeyPrefix + "saved_searches"
}
