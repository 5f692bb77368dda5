// Package companytype manages the configurable company-type labels and lets
// other components observe changes through an explicit subscription handle.
package companytype

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/900robman/competitor-compass/internal/domain"
	domct "github.com/900robman/competitor-compass/internal/domain/companytype"
)

// Store is the persistence contract: the full list is loaded and stored as a
// unit.
type Store interface {
	Load(ctx context.Context) ([]domct.CompanyType, error)
	Store(ctx context.Context, list []domct.CompanyType) error
}

// Listener receives the full list after every successful mutation. Called
// synchronously under the service; listeners must not block.
type Listener func(list []domct.CompanyType)

// Subscription is the handle returned by Subscribe. Unsubscribe is idempotent.
type Subscription struct {
	svc *Service
	id  uint64
}

// Unsubscribe detaches the listener. Safe to call more than once.
func (s *Subscription) Unsubscribe() {
	s.svc.mu.Lock()
	defer s.svc.mu.Unlock()
	delete(s.svc.listeners, s.id)
}

// Service implements company-type management.
type Service struct {
	store Store
	newID func() string

	mu        sync.Mutex
	nextSub   uint64
	listeners map[uint64]Listener
}

// New creates a company-type service.
func New(store Store) *Service {
	return &Service{
		store:     store,
		newID:     uuid.NewString,
		listeners: map[uint64]Listener{},
	}
}

// WithIDGenerator overrides the ID source.
func (s *Service) WithIDGenerator(fn func() string) *Service {
	s.newID = fn
	return s
}

// List returns the configured company types.
func (s *Service) List(ctx context.Context) ([]domct.CompanyType, error) {
	return s.store.Load(ctx)
}

// Subscribe registers a listener for list changes and returns its handle.
// The listener only sees mutations made after subscription.
func (s *Service) Subscribe(fn Listener) *Subscription {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextSub++
	id := s.nextSub
	s.listeners[id] = fn
	return &Subscription{svc: s, id: id}
}

// Save adds a company type, or replaces the entry with the same id.
func (s *Service) Save(ctx context.Context, label, color string) (domct.CompanyType, error) {
	entry := domct.CompanyType{ID: s.newID(), Label: label, Color: color}
	if err := entry.Validate(); err != nil {
		return domct.CompanyType{}, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}

	list, err := s.store.Load(ctx)
	if err != nil {
		return domct.CompanyType{}, fmt.Errorf("load company types: %w", err)
	}
	list = append(list, entry)

	if err := s.store.Store(ctx, list); err != nil {
		return domct.CompanyType{}, fmt.Errorf("store company types: %w", err)
	}
	s.notify(list)
	return entry, nil
}

// Update changes an existing company type in place.
func (s *Service) Update(ctx context.Context, id, label, color string) (domct.CompanyType, error) {
	entry := domct.CompanyType{ID: id, Label: label, Color: color}
	if err := entry.Validate(); err != nil {
		return domct.CompanyType{}, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}

	list, err := s.store.Load(ctx)
	if err != nil {
		return domct.CompanyType{}, fmt.Errorf("load company types: %w", err)
	}

	found := false
	for i := range list {
		if list[i].ID == id {
			list[i] = entry
			found = true
			break
		}
	}
	if !found {
		return domct.CompanyType{}, domain.ErrNotFound
	}

	if err := s.store.Store(ctx, list); err != nil {
		return domct.CompanyType{}, fmt.Errorf("store company types: %w", err)
	}
	s.notify(list)
	return entry, nil
}

// Delete removes a company type. Unknown ids are a no-op and do not notify.
func (s *Service) Delete(ctx context.Context, id string) error {
	list, err := s.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("load company types: %w", err)
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
		return fmt.Errorf("store company types: %w", err)
	}
	s.notify(kept)
	return nil
}

func (s *Service) notify(list []domct.CompanyType) {
	s.mu.Lock()
	fns := make([]Listener, 0, len(s.listeners))
	for _, fn := range s.listeners {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	// Each listener gets its own copy so one cannot corrupt another's view.
	for _, fn := range fns {
		fn(append([]domct.CompanyType(nil), list...))
	}
}
