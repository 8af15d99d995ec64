package events

import (
	"time"

	"github.com/spec-kit/request-tracker/internal/domain"
	"github.com/spec-kit/request-tracker/internal/workflow"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventTransitionApproved EventType = "transition_approved"
	EventTransitionDenied   EventType = "transition_denied"
	EventFeedbackChecked    EventType = "feedback_checked"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string       `json:"id"`
	Type      EventType    `json:"type"`
	RequestID string       `json:"request_id"`
	Actor     domain.Actor `json:"actor"`
	Timestamp time.Time    `json:"timestamp"`
	Payload   interface{}  `json:"payload"`
}

// DecisionPayload accompanies every guard event.
type DecisionPayload struct {
	FromStatus domain.RequestStatus `json:"from_status"`
	ToStatus   domain.RequestStatus `json:"to_status,omitempty"`
	Decision   workflow.Decision    `json:"decision"`
}
