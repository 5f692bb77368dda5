package interview

import (
	"context"
	"fmt"

	"github.com/900robman/competitor-compass/internal/domain"
	dominterview "github.com/900robman/competitor-compass/internal/domain/interview"
	domproj "github.com/900robman/competitor-compass/internal/domain/project"
)

// Repository is the interview persistence contract.
type Repository interface {
	Save(ctx context.Context, iv *dominterview.Interview) error
	Get(ctx context.Context, id string) (dominterview.Interview, error)
	ListByProject(ctx context.Context, projectID string) ([]dominterview.Interview, error)
	Delete(ctx context.Context, id string) error
}

// ProjectReader checks project existence when starting an interview.
type ProjectReader interface {
	Get(ctx context.Context, id string) (domproj.Project, error)
}

// QuestionGenerator produces interview questions from the AI provider.
// NextQuestion returns an empty string when the provider decides the
// interview is finished.
type QuestionGenerator interface {
	OpeningQuestion(ctx context.Context, projectName string) (string, error)
	NextQuestion(ctx context.Context, transcript []dominterview.Message) (string, error)
}

// InsightExtractor distills the transcript into requirement bullets.
type InsightExtractor interface {
	ExtractInsights(ctx context.Context, transcript []dominterview.Message) ([]string, error)
}

// DisabledProvider satisfies both AI contracts and fails every call. Wired
// when no provider is configured so interview endpoints degrade to a clean
// provider error instead of a nil dereference.
type DisabledProvider struct{}

func (DisabledProvider) OpeningQuestion(_ context.Context, _ string) (string, error) {
	return "", errProviderDisabled()
}

func (DisabledProvider) NextQuestion(_ context.Context, _ []dominterview.Message) (string, error) {
	return "", errProviderDisabled()
}

func (DisabledProvider) ExtractInsights(_ context.Context, _ []dominterview.Message) ([]string, error) {
	return nil, errProviderDisabled()
}

func errProviderDisabled() error {
	return fmt.Errorf("%w: provider not configured", domain.ErrInterviewProviderError)
}
