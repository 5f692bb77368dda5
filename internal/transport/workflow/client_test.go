package workflow

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/900robman/competitor-compass/internal/domain"
)

func TestTrigger_PostsPayload(t *testing.T) {
	var got triggerPayload
	var auth, contentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		contentType = r.Header.Get("Content-Type")
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	c := NewClient(Config{WebhookURL: srv.URL, Token: "wf-secret"}, zap.NewNop())
	if err := c.Trigger(context.Background(), "crawl", "comp-1", "https://acme.test"); err != nil {
		t.Fatalf("trigger: %v", err)
	}

	if got.Trigger != "crawl" || got.CompetitorID != "comp-1" || got.URL != "https://acme.test" {
		t.Errorf("payload = %+v", got)
	}
	if auth != "Bearer wf-secret" {
		t.Errorf("auth header = %q", auth)
	}
	if contentType != "application/json" {
		t.Errorf("content type = %q", contentType)
	}
}

func TestTrigger_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(Config{WebhookURL: srv.URL}, zap.NewNop())
	err := c.Trigger(context.Background(), "scrape", "comp-1", "https://acme.test")
	if !errors.Is(err, domain.ErrWorkflowUnavailable) {
		t.Fatalf("expected ErrWorkflowUnavailable, got %v", err)
	}
}

func TestTrigger_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // immediately, so the port refuses connections

	c := NewClient(Config{WebhookURL: srv.URL}, zap.NewNop())
	err := c.Trigger(context.Background(), "crawl", "comp-1", "https://acme.test")
	if !errors.Is(err, domain.ErrWorkflowUnavailable) {
		t.Fatalf("expected ErrWorkflowUnavailable, got %v", err)
	}
}

func TestTrigger_NoTokenNoAuthHeader(t *testing.T) {
	var auth string
	present := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		_, present = r.Header["Authorization"]
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewClient(Config{WebhookURL: srv.URL}, zap.NewNop())
	if err := c.Trigger(context.Background(), "crawl", "comp-1", "https://acme.test"); err != nil {
		t.Fatalf("trigger: %v", err)
	}
	if present || auth != "" {
		t.Errorf("unexpected auth header %q", auth)
	}
}
