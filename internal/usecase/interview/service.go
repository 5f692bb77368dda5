// Package interview implements the AI-led requirements interview: the
// provider asks questions, the client answers, and at the end the transcript
// is distilled into requirement insights stored on the session.
package interview

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/900robman/competitor-compass/internal/domain"
	dominterview "github.com/900robman/competitor-compass/internal/domain/interview"
)

// MaxQuestions caps the interview length regardless of what the provider
// wants to ask next.
const MaxQuestions = 10

// Service implements interview operations.
type Service struct {
	interviews Repository
	projects   ProjectReader
	questions  QuestionGenerator
	insights   InsightExtractor
	newID      func() string
}

// New creates an interview service.
func New(interviews Repository, projects ProjectReader, questions QuestionGenerator, insights InsightExtractor) *Service {
	return &Service{
		interviews: interviews,
		projects:   projects,
		questions:  questions,
		insights:   insights,
		newID:      uuid.NewString,
	}
}

// WithIDGenerator overrides the ID source.
func (s *Service) WithIDGenerator(fn func() string) *Service {
	s.newID = fn
	return s
}

// Start opens a new interview under a project with an AI-generated opening
// question.
func (s *Service) Start(ctx context.Context, projectID string) (dominterview.Interview, error) {
	proj, err := s.projects.Get(ctx, projectID)
	if err != nil {
		return dominterview.Interview{}, err
	}

	opening, err := s.questions.OpeningQuestion(ctx, proj.Name())
	if err != nil {
		return dominterview.Interview{}, err
	}

	iv, err := dominterview.New(s.newID(), projectID, opening)
	if err != nil {
		return dominterview.Interview{}, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}

	if err := s.interviews.Save(ctx, &iv); err != nil {
		return dominterview.Interview{}, fmt.Errorf("save interview: %w", err)
	}
	return iv, nil
}

// Answer records the client's answer and appends the AI follow-up question.
// The interview completes when the provider has nothing more to ask or the
// question cap is reached.
func (s *Service) Answer(ctx context.Context, id, answer string) (dominterview.Interview, error) {
	if strings.TrimSpace(answer) == "" {
		return dominterview.Interview{}, fmt.Errorf("%w: answer must not be blank", domain.ErrInvalidInput)
	}

	iv, err := s.interviews.Get(ctx, id)
	if err != nil {
		return dominterview.Interview{}, err
	}
	if iv.Completed() {
		return dominterview.Interview{}, domain.ErrInterviewCompleted
	}

	followUp := ""
	if iv.QuestionCount() < MaxQuestions {
		// The provider sees the transcript including this answer.
		probe := iv.WithExchange(answer, "")
		followUp, err = s.questions.NextQuestion(ctx, probe.Messages())
		if err != nil {
			return dominterview.Interview{}, err
		}
	}

	updated := iv.WithExchange(answer, followUp)
	if err := s.interviews.Save(ctx, &updated); err != nil {
		return dominterview.Interview{}, fmt.Errorf("save interview: %w", err)
	}
	return updated, nil
}

// Insights extracts requirement insights from the transcript and persists
// them on the interview. Re-running replaces the previous extraction.
func (s *Service) Insights(ctx context.Context, id string) (dominterview.Interview, error) {
	iv, err := s.interviews.Get(ctx, id)
	if err != nil {
		return dominterview.Interview{}, err
	}

	bullets, err := s.insights.ExtractInsights(ctx, iv.Messages())
	if err != nil {
		return dominterview.Interview{}, err
	}

	updated := iv.WithInsights(bullets)
	if err := s.interviews.Save(ctx, &updated); err != nil {
		return dominterview.Interview{}, fmt.Errorf("save interview: %w", err)
	}
	return updated, nil
}

// Get returns one interview by id.
func (s *Service) Get(ctx context.Context, id string) (dominterview.Interview, error) {
	return s.interviews.Get(ctx, id)
}

// ListByProject returns a project's interviews newest first.
func (s *Service) ListByProject(ctx context.Context, projectID string) ([]dominterview.Interview, error) {
	return s.interviews.ListByProject(ctx, projectID)
}

// Delete removes an interview.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.interviews.Delete(ctx, id)
}
