// Package savedsearch manages the bounded list of saved query configurations.
package savedsearch

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/900robman/competitor-compass/internal/domain"
	domsaved "github.com/900robman/competitor-compass/internal/domain/savedsearch"
)

// Service implements saved-search management: newest-first list, capped at
// MaxEntries, duplicates allowed.
type Service struct {
	store Store
	newID func() string
	now   func() time.Time
}

// New creates a saved-search service.
func New(store Store) *Service {
	return &Service{
		store: store,
		newID: uuid.NewString,
		now:   time.Now,
	}
}

// WithIDGenerator overrides the ID source.
func (s *Service) WithIDGenerator(fn func() string) *Service {
	s.newID = fn
	return s
}

// List returns saved searches newest first.
func (s *Service) List(ctx context.Context) ([]domsaved.SavedSearch, error) {
	return s.store.Load(ctx)
}

// Save prepends a new entry and trims the list to MaxEntries. The query must
// be non-blank; category and competitor scope are optional. Two saves of the
// same query produce two entries with distinct IDs.
func (s *Service) Save(ctx context.Context, query, category string, competitorIDs []string) (domsaved.SavedSearch, error) {
	if strings.TrimSpace(query) == "" {
		return domsaved.SavedSearch{}, fmt.Errorf("%w: query must not be blank", domain.ErrInvalidInput)
	}

	list, err := s.store.Load(ctx)
	if err != nil {
		return domsaved.SavedSearch{}, fmt.Errorf("load saved searches: %w", err)
	}

	entry := domsaved.SavedSearch{
		ID:            s.newID(),
		Query:         query,
		Category:      category,
		CompetitorIDs: append([]string(nil), competitorIDs...),
		CreatedAt:     s.now().UTC(),
	}

	list = append([]domsaved.SavedSearch{entry}, list...)
	if len(list) > domsaved.MaxEntries {
		list = list[:domsaved.MaxEntries]
	}

	if err := s.store.Store(ctx, list); err != nil {
		return domsaved.SavedSearch{}, fmt.Errorf("store saved searches: %w", err)
	}
	return entry, nil
}

// Delete removes the entry with the given id. Deleting an unknown id is a
// no-op, not an error; the list is rewritten either way only when something
// changed.
func (s *Service) Delete(ctx context.Context, id string) error {
	list, err := s.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("load saved searches: %w", err)
	}

	kept := list[:0]
	for _, e := range list {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(list) {
		return nil
	}

	if err := s.store.Store(ctx, kept); err != nil {
		return fmt.Errorf("store saved searches: %w", err)
	}
	return nil
}
