package domain

import "errors"

var (
	// ErrNotFound signals a missing resource.
	ErrNotFound = errors.New("not found")
	// ErrProjectNotFound signals a missing project.
	ErrProjectNotFound = errors.New("project not found")
	// ErrCompetitorNotFound signals a missing competitor.
	ErrCompetitorNotFound = errors.New("competitor not found")
	// ErrPageNotFound signals a missing page.
	ErrPageNotFound = errors.New("page not found")
	// ErrInterviewNotFound signals a missing interview session.
	ErrInterviewNotFound = errors.New("interview not found")
	// ErrAlreadyExists signals a duplicate resource.
	ErrAlreadyExists = errors.New("already exists")
	// ErrInvalidInput signals a request that fails domain validation.
	ErrInvalidInput = errors.New("invalid input")
	// ErrWorkflowUnavailable signals that the external workflow engine rejected
	// or never received a trigger.
	ErrWorkflowUnavailable = errors.New("workflow engine unavailable")
	// ErrInterviewProviderError signals a failure of the external AI provider
	// backing the interview feature.
	ErrInterviewProviderError = errors.New("interview provider error")
	// ErrInterviewCompleted signals an answer submitted to a finished interview.
	ErrInterviewCompleted = errors.New("interview already completed")
)
