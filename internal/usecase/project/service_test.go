package project

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/900robman/competitor-compass/internal/domain"
	domcomp "github.com/900robman/competitor-compass/internal/domain/competitor"
	domproj "github.com/900robman/competitor-compass/internal/domain/project"
)

type mockRepo struct {
	byID map[string]domproj.Project
}

func newMockRepo() *mockRepo { return &mockRepo{byID: map[string]domproj.Project{}} }

func (m *mockRepo) Upsert(_ context.Context, p *domproj.Project) (bool, error) {
	_, existed := m.byID[p.ID()]
	m.byID[p.ID()] = *p
	return !existed, nil
}

func (m *mockRepo) Get(_ context.Context, id string) (domproj.Project, error) {
	p, ok := m.byID[id]
	if !ok {
		return domproj.Project{}, domain.ErrProjectNotFound
	}
	return p, nil
}

func (m *mockRepo) List(_ context.Context) ([]domproj.Project, error) {
	out := make([]domproj.Project, 0, len(m.byID))
	for _, p := range m.byID {
		out = append(out, p)
	}
	return out, nil
}

func (m *mockRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.byID[id]; !ok {
		return domain.ErrProjectNotFound
	}
	delete(m.byID, id)
	return nil
}

type mockCompetitors struct {
	byProject map[string][]domcomp.Competitor
	deleted   []string
	deleteErr error
}

func (m *mockCompetitors) ListByProject(_ context.Context, projectID string) ([]domcomp.Competitor, error) {
	return m.byProject[projectID], nil
}

func (m *mockCompetitors) Delete(_ context.Context, id string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deleted = append(m.deleted, id)
	return nil
}

func competitorFixture(id, projectID string) domcomp.Competitor {
	now := time.Now().UTC()
	return domcomp.Reconstruct(id, projectID, "Acme", "https://acme.test", "", "", now, now)
}

func TestCreate(t *testing.T) {
	repo := newMockRepo()
	svc := New(repo, &mockCompetitors{})
	svc.newID = func() string { return "proj-1" }

	p, err := svc.Create(context.Background(), "Market watch", "Q3")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if p.ID() != "proj-1" || p.Name() != "Market watch" {
		t.Errorf("unexpected project: %+v", p)
	}
	if _, ok := repo.byID["proj-1"]; !ok {
		t.Errorf("project not persisted")
	}
}

func TestCreate_InvalidName(t *testing.T) {
	svc := New(newMockRepo(), &mockCompetitors{})

	cases := []string{"", strings.Repeat("x", 129)}
	for _, name := range cases {
		if _, err := svc.Create(context.Background(), name, ""); !errors.Is(err, domain.ErrInvalidInput) {
			t.Errorf("name length %d: expected ErrInvalidInput, got %v", len(name), err)
		}
	}
}

func TestUpdate(t *testing.T) {
	repo := newMockRepo()
	p, _ := domproj.New("proj-1", "Old", "old desc")
	repo.byID["proj-1"] = p
	svc := New(repo, &mockCompetitors{})

	updated, err := svc.Update(context.Background(), "proj-1", "New", "new desc")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name() != "New" || updated.Description() != "new desc" {
		t.Errorf("unexpected project: %+v", updated)
	}

	if _, err := svc.Update(context.Background(), "ghost", "x", ""); !errors.Is(err, domain.ErrProjectNotFound) {
		t.Errorf("expected ErrProjectNotFound, got %v", err)
	}
}

func TestDelete_CascadesCompetitors(t *testing.T) {
	repo := newMockRepo()
	p, _ := domproj.New("proj-1", "Main", "")
	repo.byID["proj-1"] = p
	comps := &mockCompetitors{byProject: map[string][]domcomp.Competitor{
		"proj-1": {competitorFixture("comp-1", "proj-1"), competitorFixture("comp-2", "proj-1")},
	}}
	svc := New(repo, comps)

	if err := svc.Delete(context.Background(), "proj-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(comps.deleted) != 2 {
		t.Errorf("expected 2 competitor deletes, got %v", comps.deleted)
	}
	if _, ok := repo.byID["proj-1"]; ok {
		t.Errorf("project still present")
	}
}

func TestDelete_CascadeFailureKeepsProject(t *testing.T) {
	repo := newMockRepo()
	p, _ := domproj.New("proj-1", "Main", "")
	repo.byID["proj-1"] = p
	comps := &mockCompetitors{
		byProject: map[string][]domcomp.Competitor{"proj-1": {competitorFixture("comp-1", "proj-1")}},
		deleteErr: errors.New("store down"),
	}
	svc := New(repo, comps)

	if err := svc.Delete(context.Background(), "proj-1"); err == nil {
		t.Fatalf("expected cascade error")
	}
	if _, ok := repo.byID["proj-1"]; !ok {
		t.Errorf("project must survive a failed cascade")
	}
}

func TestDelete_UnknownProjectIsNoError(t *testing.T) {
	svc := New(newMockRepo(), &mockCompetitors{})
	if err := svc.Delete(context.Background(), "ghost"); err != nil {
		t.Fatalf("delete unknown: %v", err)
	}
}
