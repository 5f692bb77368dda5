package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/900robman/competitor-compass/internal/domain"
	dominterview "github.com/900robman/competitor-compass/internal/domain/interview"
	"github.com/900robman/competitor-compass/internal/metrics"
)

// doneSentinel is what the model is instructed to reply when the interview
// has covered enough ground.
const doneSentinel = "DONE"

const systemPrompt = `You are a requirements analyst interviewing a client about their ` +
	`competitor-tracking needs. Ask one concise question at a time. When you have ` +
	`enough information, reply with exactly DONE.`

const insightsPrompt = `Extract the client's key requirements from this interview as a ` +
	`plain list, one requirement per line prefixed with "- ". Reply with the list only.`

// Interviewer drives the requirements interview through an OpenAI-compatible
// chat completion API.
type Interviewer struct {
	client *openai.Client
	model  string
	logger *zap.Logger
}

// Config holds the interview provider settings.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Logger  *zap.Logger
}

// NewInterviewer creates an OpenAI-compatible interview provider.
func NewInterviewer(cfg *Config) *Interviewer {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	return &Interviewer{
		client: openai.NewClientWithConfig(clientCfg),
		model:  cfg.Model,
		logger: cfg.Logger,
	}
}

// OpeningQuestion asks the model for the first interview question.
func (p *Interviewer) OpeningQuestion(ctx context.Context, projectName string) (string, error) {
	msgs := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
		{Role: openai.ChatMessageRoleUser, Content: fmt.Sprintf("The project is called %q. Ask your opening question.", projectName)},
	}
	out, err := p.complete(ctx, "opening_question", msgs)
	if err != nil {
		return "", err
	}
	if out == "" || out == doneSentinel {
		return "", fmt.Errorf("no opening question produced: %w", domain.ErrInterviewProviderError)
	}
	return out, nil
}

// NextQuestion asks for a follow-up. An empty return means the model is done.
func (p *Interviewer) NextQuestion(ctx context.Context, transcript []dominterview.Message) (string, error) {
	msgs := make([]openai.ChatCompletionMessage, 0, len(transcript)+1)
	msgs = append(msgs, openai.ChatCompletionMessage{
		Role: openai.ChatMessageRoleSystem, Content: systemPrompt,
	})
	for _, m := range transcript {
		role := openai.ChatMessageRoleUser
		if m.Role == dominterview.RoleInterviewer {
			role = openai.ChatMessageRoleAssistant
		}
		msgs = append(msgs, openai.ChatCompletionMessage{Role: role, Content: m.Content})
	}

	out, err := p.complete(ctx, "next_question", msgs)
	if err != nil {
		return "", err
	}
	if out == doneSentinel {
		return "", nil
	}
	return out, nil
}

// ExtractInsights distills the transcript into requirement bullets.
func (p *Interviewer) ExtractInsights(ctx context.Context, transcript []dominterview.Message) ([]string, error) {
	var b strings.Builder
	for _, m := range transcript {
		b.WriteString(string(m.Role))
		b.WriteString(": ")
		b.WriteString(m.Content)
		b.WriteString("\n")
	}

	msgs := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: insightsPrompt},
		{Role: openai.ChatMessageRoleUser, Content: b.String()},
	}
	out, err := p.complete(ctx, "extract_insights", msgs)
	if err != nil {
		return nil, err
	}
	return parseBullets(out), nil
}

// HealthCheck verifies API availability via ListModels (free endpoint).
func (p *Interviewer) HealthCheck(ctx context.Context) error {
	if _, err := p.client.ListModels(ctx); err != nil {
		return fmt.Errorf("list models: %w", err)
	}
	return nil
}

func (p *Interviewer) complete(ctx context.Context, operation string, msgs []openai.ChatCompletionMessage) (string, error) {
	start := time.Now()

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    p.model,
		Messages: msgs,
	})

	duration := time.Since(start)

	if err != nil {
		metrics.InterviewRequestsTotal.WithLabelValues(operation, "error").Inc()
		p.logger.Error("interview completion failed",
			zap.String("operation", operation), zap.Error(err))
		return "", parseAPIError(err)
	}
	if len(resp.Choices) == 0 {
		metrics.InterviewRequestsTotal.WithLabelValues(operation, "error").Inc()
		return "", fmt.Errorf("empty completion response: %w", domain.ErrInterviewProviderError)
	}

	metrics.InterviewRequestsTotal.WithLabelValues(operation, "success").Inc()
	metrics.InterviewRequestDuration.WithLabelValues(operation).Observe(duration.Seconds())

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// parseBullets turns the model's "- item" lines into a clean string slice.
func parseBullets(out string) []string {
	var bullets []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimPrefix(line, "- ")
		line = strings.TrimPrefix(line, "* ")
		if line != "" {
			bullets = append(bullets, line)
		}
	}
	return bullets
}

// parseAPIError extracts a human-readable error from the API response.
// All errors wrap domain.ErrInterviewProviderError for correct 502 mapping.
func parseAPIError(err error) error {
	wrap := domain.ErrInterviewProviderError

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		detail := extractDetail(reqErr.Body)
		if detail != "" {
			return fmt.Errorf("interview API error %d: %s: %w",
				reqErr.HTTPStatusCode, detail, wrap)
		}
		return fmt.Errorf("interview API error %d: %s: %w",
			reqErr.HTTPStatusCode, string(reqErr.Body), wrap)
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("interview API error %d: %s: %w",
			apiErr.HTTPStatusCode, apiErr.Message, wrap)
	}

	return fmt.Errorf("interview request failed: %w", wrap)
}

// extractDetail extracts the "detail" field from a JSON error body.
func extractDetail(body []byte) string {
	var parsed struct {
		Detail string `json:"detail"`
	}
	if json.Unmarshal(body, &parsed) == nil && parsed.Detail != "" {
		return parsed.Detail
	}
	return ""
}
