package compass

import "github.com/900robman/competitor-compass/internal/domain"

// Sentinel errors returned by SDK operations, for errors.Is checks.
var (
	ErrNotFound               = domain.ErrNotFound
	ErrProjectNotFound        = domain.ErrProjectNotFound
	ErrCompetitorNotFound     = domain.ErrCompetitorNotFound
	ErrPageNotFound           = domain.ErrPageNotFound
	ErrInterviewNotFound      = domain.ErrInterviewNotFound
	ErrAlreadyExists          = domain.ErrAlreadyExists
	ErrInvalidInput           = domain.ErrInvalidInput
	ErrWorkflowUnavailable    = domain.ErrWorkflowUnavailable
	ErrInterviewProviderError = domain.ErrInterviewProviderError
	ErrInterviewCompleted     = domain.ErrInterviewCompleted
)
