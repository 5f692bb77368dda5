package savedsearch

import (
	"context"

	domsaved "github.com/900robman/competitor-compass/internal/domain/savedsearch"
)

// Store is the persistence contract: the full list is loaded and stored as a
// unit.
type Store interface {
	Load(ctx context.Context) ([]domsaved.SavedSearch, error)
	Store(ctx context.Context, list []domsaved.SavedSearch) error
}
