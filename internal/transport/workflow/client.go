// Package workflow is the outbound client for the external workflow engine.
// The engine does all crawling, scraping and content summarization; this
// client only fires its webhook and reports availability.
package workflow

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/900robman/competitor-compass/internal/domain"
	"github.com/900robman/competitor-compass/internal/metrics"
)

const defaultTimeout = 10 * time.Second

// Config holds client settings.
type Config struct {
	// WebhookURL is the workflow engine's trigger endpoint.
	WebhookURL string
	// Token is sent as a Bearer token when non-empty.
	Token string
	// Timeout bounds a single webhook call. Zero means the default.
	Timeout time.Duration
}

// Client posts trigger requests to the workflow webhook.
type Client struct {
	httpClient *http.Client
	webhookURL string
	token      string
	logger     *zap.Logger
}

// triggerPayload is the webhook wire format.
type triggerPayload struct {
	CompetitorID string `json:"competitor_id"`
	URL          string `json:"url"`
	Trigger      string `json:"trigger"`
}

// NewClient creates a workflow webhook client.
func NewClient(cfg Config, logger *zap.Logger) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		webhookURL: cfg.WebhookURL,
		token:      cfg.Token,
		logger:     logger,
	}
}

// Trigger fires the webhook. Any transport failure or non-2xx response maps
// to ErrWorkflowUnavailable so callers can surface a uniform upstream error.
func (c *Client) Trigger(ctx context.Context, trigger, competitorID, siteURL string) error {
	if c.webhookURL == "" {
		return fmt.Errorf("%w: no webhook configured", domain.ErrWorkflowUnavailable)
	}

	body, err := json.Marshal(triggerPayload{
		CompetitorID: competitorID,
		URL:          siteURL,
		Trigger:      trigger,
	})
	if err != nil {
		return fmt.Errorf("marshal trigger payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.WorkflowTriggersTotal.WithLabelValues(trigger, "error").Inc()
		c.logger.Error("workflow webhook call failed",
			zap.String("trigger", trigger),
			zap.String("competitor_id", competitorID),
			zap.Error(err))
		return fmt.Errorf("%w: %s", domain.ErrWorkflowUnavailable, err)
	}
	defer resp.Body.Close()
	// Drain so the connection can be reused.
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.WorkflowTriggersTotal.WithLabelValues(trigger, "error").Inc()
		c.logger.Error("workflow webhook returned error status",
			zap.String("trigger", trigger),
			zap.String("competitor_id", competitorID),
			zap.Int("http_status", resp.StatusCode))
		return fmt.Errorf("%w: webhook returned status %d", domain.ErrWorkflowUnavailable, resp.StatusCode)
	}

	metrics.WorkflowTriggersTotal.WithLabelValues(trigger, "success").Inc()
	c.logger.Info("workflow trigger fired",
		zap.String("trigger", trigger),
		zap.String("competitor_id", competitorID))
	return nil
}
