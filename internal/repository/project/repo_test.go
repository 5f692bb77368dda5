package project

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/900robman/competitor-compass/internal/domain"
)

// --- Upsert ---

func TestUpsert_CreatesAndIndexes(t *testing.T) {
	repo, ms := newTestRepo(t)
	p := testProject(t, "proj-1", "Launch watch", time.Now())

	var hsetKey, setKey string
	var hsetFields map[string]string
	ms.hsetFn = func(_ context.Context, key string, fields map[string]string) error {
		hsetKey = key
		hsetFields = fields
		return nil
	}
	ms.saddFn = func(_ context.Context, key string, members ...string) error {
		setKey = key
		if len(members) != 1 || members[0] != "proj-1" {
			t.Errorf("unexpected members: %v", members)
		}
		return nil
	}

	created, err := repo.Upsert(context.Background(), &p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !created {
		t.Error("expected created=true for a new project")
	}
	if hsetKey != "compass:project:proj-1" {
		t.Errorf("unexpected hash key: %s", hsetKey)
	}
	if hsetFields["name"] != "Launch watch" {
		t.Errorf("unexpected fields: %v", hsetFields)
	}
	if setKey != "compass:projects" {
		t.Errorf("unexpected index key: %s", setKey)
	}
}

func TestUpsert_ExistingReturnsFalse(t *testing.T) {
	repo, ms := newTestRepo(t)
	p := testProject(t, "proj-1", "Launch watch", time.Now())

	ms.existsFn = func(_ context.Context, _ string) (bool, error) { return true, nil }

	created, err := repo.Upsert(context.Background(), &p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created {
		t.Error("expected created=false when the key already exists")
	}
}

// --- Get ---

func TestGet_RoundTrip(t *testing.T) {
	repo, ms := newTestRepo(t)
	want := testProject(t, "proj-1", "Launch watch", time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC))

	ms.hgetAllFn = func(_ context.Context, key string) (map[string]string, error) {
		if key != "compass:project:proj-1" {
			t.Errorf("unexpected key: %s", key)
		}
		return buildFields(&want), nil
	}

	got, err := repo.Get(context.Background(), "proj-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID() != "proj-1" || got.Name() != "Launch watch" {
		t.Errorf("round trip mismatch: %s/%s", got.ID(), got.Name())
	}
	if !got.CreatedAt().Equal(want.CreatedAt()) {
		t.Errorf("created_at = %v, want %v", got.CreatedAt(), want.CreatedAt())
	}
}

func TestGet_NotFound(t *testing.T) {
	repo, ms := newTestRepo(t)

	ms.hgetAllFn = func(_ context.Context, _ string) (map[string]string, error) {
		return map[string]string{}, nil
	}

	_, err := repo.Get(context.Background(), "ghost")
	if !errors.Is(err, domain.ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}
}

// --- List ---

func TestList_NewestFirst(t *testing.T) {
	repo, ms := newTestRepo(t)
	old := testProject(t, "proj-old", "Old watch", time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	fresh := testProject(t, "proj-new", "New watch", time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC))

	ms.smembersFn = func(_ context.Context, key string) ([]string, error) {
		if key != "compass:projects" {
			t.Errorf("unexpected set key: %s", key)
		}
		return []string{"proj-old", "proj-new"}, nil
	}
	ms.hgetAllMultiFn = func(_ context.Context, keys []string) ([]map[string]string, error) {
		if len(keys) != 2 {
			t.Errorf("expected 2 keys, got %v", keys)
		}
		return []map[string]string{buildFields(&old), buildFields(&fresh)}, nil
	}

	list, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("len = %d, want 2", len(list))
	}
	if list[0].ID() != "proj-new" {
		t.Errorf("first = %s, want proj-new (newest first)", list[0].ID())
	}
}

func TestList_SkipsStrayMemberships(t *testing.T) {
	repo, ms := newTestRepo(t)
	p := testProject(t, "proj-1", "Launch watch", time.Now())

	ms.smembersFn = func(_ context.Context, _ string) ([]string, error) {
		return []string{"proj-1", "proj-deleted"}, nil
	}
	ms.hgetAllMultiFn = func(_ context.Context, _ []string) ([]map[string]string, error) {
		return []map[string]string{buildFields(&p), {}}, nil
	}

	list, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 1 || list[0].ID() != "proj-1" {
		t.Errorf("expected only proj-1, got %d results", len(list))
	}
}

// --- Delete ---

func TestDelete_RemovesHashAndIndex(t *testing.T) {
	repo, ms := newTestRepo(t)

	ms.existsFn = func(_ context.Context, _ string) (bool, error) { return true, nil }
	var delKey, sremKey string
	ms.delFn = func(_ context.Context, key string) error {
		delKey = key
		return nil
	}
	ms.sremFn = func(_ context.Context, key string, _ ...string) error {
		sremKey = key
		return nil
	}

	if err := repo.Delete(context.Background(), "proj-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if delKey != "compass:project:proj-1" {
		t.Errorf("deleted key: %s", delKey)
	}
	if sremKey != "compass:projects" {
		t.Errorf("index key: %s", sremKey)
	}
}

func TestDelete_NotFound(t *testing.T) {
	repo, ms := newTestRepo(t)

	ms.existsFn = func(_ context.Context, _ string) (bool, error) { return false, nil }
	ms.delFn = func(_ context.Context, _ string) error {
		t.Fatal("del must not run for a missing project")
		return nil
	}

	if err := repo.Delete(context.Background(), "ghost"); !errors.Is(err, domain.ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}
}
