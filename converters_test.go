package compass

import (
	"testing"
	"time"

	domcomp "github.com/900robman/competitor-compass/internal/domain/competitor"
	dominterview "github.com/900robman/competitor-compass/internal/domain/interview"
	dompage "github.com/900robman/competitor-compass/internal/domain/page"
	domproj "github.com/900robman/competitor-compass/internal/domain/project"
	healthuc "github.com/900robman/competitor-compass/internal/usecase/health"
)

func TestFromInternalProject(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	p := domproj.Reconstruct("p1", "Acme Watch", "tracking acme", now, now)

	out := fromInternalProject(p)
	if out.ID != "p1" {
		t.Errorf("ID = %q, want p1", out.ID)
	}
	if out.Name != "Acme Watch" {
		t.Errorf("Name = %q, want Acme Watch", out.Name)
	}
	if out.Description != "tracking acme" {
		t.Errorf("Description = %q", out.Description)
	}
	if !out.CreatedAt.Equal(now) {
		t.Errorf("CreatedAt = %v, want %v", out.CreatedAt, now)
	}
}

func TestFromInternalCompetitor(t *testing.T) {
	now := time.Now()
	c := domcomp.Reconstruct("c1", "p1", "Acme", "https://acme.test", "saas", "notes", now, now)

	out := fromInternalCompetitor(c)
	if out.ID != "c1" || out.ProjectID != "p1" {
		t.Errorf("IDs = %q/%q", out.ID, out.ProjectID)
	}
	if out.SiteURL != "https://acme.test" {
		t.Errorf("SiteURL = %q", out.SiteURL)
	}
	if out.CompanyType != "saas" {
		t.Errorf("CompanyType = %q", out.CompanyType)
	}
}

func TestFromInternalPage_EffectiveCategory(t *testing.T) {
	now := time.Now()
	withCat := dompage.Reconstruct(
		"pg1", "https://acme.test/pricing", "Pricing", "", "",
		map[string]string{"category": "Pricing"},
		"c1", "Acme", dompage.StatusSuccess, &now, now, now,
	)
	withoutCat := dompage.Reconstruct(
		"pg2", "https://acme.test/about", "About", "", "",
		nil, "c1", "Acme", dompage.StatusNotScraped, nil, now, now,
	)

	if got := fromInternalPage(withCat).Category; got != "Pricing" {
		t.Errorf("Category = %q, want Pricing", got)
	}
	if got := fromInternalPage(withoutCat).Category; got != "Uncategorized" {
		t.Errorf("Category = %q, want Uncategorized", got)
	}
	if got := fromInternalPage(withCat).ScrapeStatus; got != "success" {
		t.Errorf("ScrapeStatus = %q, want success", got)
	}
}

func TestFromInternalInterview(t *testing.T) {
	now := time.Now()
	iv := dominterview.Reconstruct(
		"iv1", "p1",
		[]dominterview.Message{
			{Role: dominterview.RoleInterviewer, Content: "What are you building?", At: now},
			{Role: dominterview.RoleClient, Content: "A dashboard.", At: now},
		},
		[]string{"needs a dashboard"},
		dominterview.StatusCompleted,
		now, now,
	)

	out := fromInternalInterview(iv)
	if out.ID != "iv1" || out.ProjectID != "p1" {
		t.Errorf("IDs = %q/%q", out.ID, out.ProjectID)
	}
	if len(out.Messages) != 2 {
		t.Fatalf("len(Messages) = %d, want 2", len(out.Messages))
	}
	if out.Messages[0].Role != "interviewer" || out.Messages[1].Role != "client" {
		t.Errorf("roles = %q/%q", out.Messages[0].Role, out.Messages[1].Role)
	}
	if len(out.Insights) != 1 {
		t.Errorf("len(Insights) = %d, want 1", len(out.Insights))
	}
	if out.Status != "completed" {
		t.Errorf("Status = %q, want completed", out.Status)
	}
}

func TestFromSearchResults_Empty(t *testing.T) {
	results := fromSearchResults(nil)
	if len(results) != 0 {
		t.Errorf("len = %d, want 0", len(results))
	}
}

func TestFromInternalReport(t *testing.T) {
	r := healthuc.Report{
		Status: healthuc.Degraded,
		Checks: map[string]healthuc.CheckResult{
			"database":  healthuc.CheckOK,
			"interview": healthuc.CheckError,
		},
	}

	out := fromInternalReport(r)
	if out.Status != "degraded" {
		t.Errorf("Status = %q, want degraded", out.Status)
	}
	if out.Checks["database"] != "ok" || out.Checks["interview"] != "error" {
		t.Errorf("Checks = %+v", out.Checks)
	}
}
