package companytype

import (
	"context"
	"errors"
	"testing"

	"github.com/900robman/competitor-compass/internal/domain"
	domct "github.com/900robman/competitor-compass/internal/domain/companytype"
)

type memStore struct {
	list []domct.CompanyType
}

func (m *memStore) Load(_ context.Context) ([]domct.CompanyType, error) {
	return append([]domct.CompanyType(nil), m.list...), nil
}

func (m *memStore) Store(_ context.Context, list []domct.CompanyType) error {
	m.list = append([]domct.CompanyType(nil), list...)
	return nil
}

func newTestService(store Store) *Service {
	n := 0
	svc := New(store)
	svc.newID = func() string {
		n++
		return string(rune('a' + n - 1))
	}
	return svc
}

func TestSaveUpdateDelete(t *testing.T) {
	svc := newTestService(&memStore{})
	ctx := context.Background()

	saved, err := svc.Save(ctx, "Direct", "#ff0000")
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	updated, err := svc.Update(ctx, saved.ID, "Direct competitor", "#00ff00")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Label != "Direct competitor" {
		t.Errorf("label = %q", updated.Label)
	}

	list, _ := svc.List(ctx)
	if len(list) != 1 || list[0].Color != "#00ff00" {
		t.Fatalf("unexpected list: %+v", list)
	}

	if err := svc.Delete(ctx, saved.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	list, _ = svc.List(ctx)
	if len(list) != 0 {
		t.Fatalf("expected empty list, got %+v", list)
	}
}

func TestSave_InvalidLabel(t *testing.T) {
	svc := newTestService(&memStore{})
	if _, err := svc.Save(context.Background(), "", ""); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestUpdate_UnknownID(t *testing.T) {
	svc := newTestService(&memStore{})
	if _, err := svc.Update(context.Background(), "ghost", "X", ""); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSubscribe_NotifiesOnMutation(t *testing.T) {
	svc := newTestService(&memStore{})
	ctx := context.Background()

	var events [][]domct.CompanyType
	sub := svc.Subscribe(func(list []domct.CompanyType) {
		events = append(events, list)
	})

	saved, _ := svc.Save(ctx, "Direct", "")
	if len(events) != 1 || len(events[0]) != 1 {
		t.Fatalf("expected one event with one entry, got %+v", events)
	}

	if err := svc.Delete(ctx, saved.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(events) != 2 || len(events[1]) != 0 {
		t.Fatalf("expected second event with empty list, got %+v", events)
	}

	// Unknown-id delete is a no-op and must not notify.
	if err := svc.Delete(ctx, "ghost"); err != nil {
		t.Fatalf("delete ghost: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("no-op delete must not notify")
	}

	sub.Unsubscribe()
	if _, err := svc.Save(ctx, "Adjacent", ""); err != nil {
		t.Fatalf("save: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("unsubscribed listener still notified")
	}

	// Idempotent.
	sub.Unsubscribe()
}

func TestSubscribe_MultipleListenersIsolatedCopies(t *testing.T) {
	svc := newTestService(&memStore{})
	ctx := context.Background()

	var a, b []domct.CompanyType
	svc.Subscribe(func(list []domct.CompanyType) { a = list })
	svc.Subscribe(func(list []domct.CompanyType) { b = list })

	if _, err := svc.Save(ctx, "Direct", ""); err != nil {
		t.Fatalf("save: %v", err)
	}
	if len(a) != 1 || len(b) != 1 {
		t.Fatalf("both listeners should fire: %v %v", a, b)
	}

	// Mutating one listener's slice must not leak into the other's.
	a[0].Label = "tampered"
	if b[0].Label == "tampered" {
		t.Fatalf("listener copies are shared")
	}
}
