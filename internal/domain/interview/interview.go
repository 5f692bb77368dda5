package interview

import (
	"fmt"
	"time"
)

// Status is the interview session lifecycle label.
type Status string

const (
	// StatusActive marks an interview still collecting answers.
	StatusActive Status = "active"
	// StatusCompleted marks an interview that asked its final question.
	StatusCompleted Status = "completed"
)

// Role identifies the author of a transcript message.
type Role string

const (
	// RoleInterviewer marks AI-generated questions.
	RoleInterviewer Role = "interviewer"
	// RoleClient marks client answers.
	RoleClient Role = "client"
)

// Message is one transcript entry.
type Message struct {
	Role    Role      `json:"role"`
	Content string    `json:"content"`
	At      time.Time `json:"at"`
}

// Interview is a conversational requirements-gathering session. The questions
// come from an external AI provider; this aggregate only holds the transcript
// and the extracted insights.
type Interview struct {
	id        string
	projectID string
	messages  []Message
	insights  []string
	status    Status
	createdAt time.Time
	updatedAt time.Time
}

// New validates and creates an Interview with its opening question.
func New(id, projectID, openingQuestion string) (Interview, error) {
	if id == "" {
		return Interview{}, fmt.Errorf("interview ID is required")
	}
	if projectID == "" {
		return Interview{}, fmt.Errorf("project ID is required")
	}
	if openingQuestion == "" {
		return Interview{}, fmt.Errorf("opening question is required")
	}

	now := time.Now().UTC()
	return Interview{
		id:        id,
		projectID: projectID,
		messages:  []Message{{Role: RoleInterviewer, Content: openingQuestion, At: now}},
		status:    StatusActive,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// Reconstruct creates an Interview without validation (storage hydration).
func Reconstruct(
	id, projectID string, messages []Message, insights []string, status Status,
	createdAt, updatedAt time.Time,
) Interview {
	return Interview{
		id:        id,
		projectID: projectID,
		messages:  messages,
		insights:  insights,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// ID returns the interview identifier.
func (i *Interview) ID() string { return i.id }

// ProjectID returns the owning project identifier.
func (i *Interview) ProjectID() string { return i.projectID }

// Messages returns the transcript in chronological order.
func (i *Interview) Messages() []Message { return i.messages }

// Insights returns the extracted requirement insights (may be empty).
func (i *Interview) Insights() []string { return i.insights }

// Status returns the lifecycle label.
func (i *Interview) Status() Status { return i.status }

// CreatedAt returns the session creation time.
func (i *Interview) CreatedAt() time.Time { return i.createdAt }

// UpdatedAt returns the last transcript mutation time.
func (i *Interview) UpdatedAt() time.Time { return i.updatedAt }

// QuestionCount returns the number of interviewer questions asked so far.
func (i *Interview) QuestionCount() int {
	n := 0
	for _, m := range i.messages {
		if m.Role == RoleInterviewer {
			n++
		}
	}
	return n
}

// WithExchange returns a copy with the client answer and the AI follow-up
// question appended. An empty followUp closes the interview instead of
// appending a question.
func (i *Interview) WithExchange(answer, followUp string) Interview {
	now := time.Now().UTC()
	out := *i
	out.messages = append(append([]Message{}, i.messages...), Message{
		Role: RoleClient, Content: answer, At: now,
	})
	if followUp == "" {
		out.status = StatusCompleted
	} else {
		out.messages = append(out.messages, Message{
			Role: RoleInterviewer, Content: followUp, At: now,
		})
	}
	out.updatedAt = now
	return out
}

// WithInsights returns a copy with extracted insights replaced.
func (i *Interview) WithInsights(insights []string) Interview {
	out := *i
	out.insights = append([]string{}, insights...)
	out.updatedAt = time.Now().UTC()
	return out
}

// Completed reports whether the interview stopped accepting answers.
func (i *Interview) Completed() bool { return i.status == StatusCompleted }
