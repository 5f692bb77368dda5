// Package companytype persists the company-type configuration as one JSON
// blob in a single key-value slot, the same shape as the saved-search store.
package companytype

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/900robman/competitor-compass/internal/db"
	"github.com/900robman/competitor-compass/internal/domain"
	domct "github.com/900robman/competitor-compass/internal/domain/companytype"
)

// store is the consumer interface for the company-type slot (ISP).
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

// Repo implements the company-type storage contract of the use case layer.
type Repo struct {
	store store
}

// New creates a company-type repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// Load returns the persisted list; missing slot or corrupt JSON yields an
// empty list.
func (r *Repo) Load(ctx context.Context) ([]domct.CompanyType, error) {
	raw, err := r.store.Get(ctx, slotKey())
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return []domct.CompanyType{}, nil
		}
		return nil, fmt.Errorf("get %s: %w", slotKey(), err)
	}

	var list []domct.CompanyType
	if err := json.Unmarshal(raw, &list); err != nil {
		return []domct.CompanyType{}, nil
	}
	return list, nil
}

// Store persists the full list, replacing the previous blob.
func (r *Repo) Store(ctx context.Context, list []domct.CompanyType) error {
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("marshal company types: %w", err)
	}
	if err := r.store.Set(ctx, slotKey(), data); err != nil {
		return fmt.Errorf("set %s: %w", slotKey(), err)
	}
	return nil
}

func slotKey() string {
	return domain.KeyPrefix + "company_types"
}
