package dto

import (
	"github.com/spec-kit/request-tracker/internal/domain"
)

// TransitionCheckRequest payload.
type TransitionCheckRequest struct {
	ToStatus     string `json:"to_status"`
	Comment      string `json:"comment"`
	EvidenceLink string `json:"evidence_link"`
}

// RequestSummary response.
type RequestSummary struct {
	ID           string                 `json:"id"`
	Status       domain.RequestStatus   `json:"status"`
	StatusTone   domain.Tone            `json:"status_tone"`
	Priority     domain.Priority        `json:"priority,omitempty"`
	PriorityTone domain.Tone            `json:"priority_tone,omitempty"`
	RequesterID  string                 `json:"requester_id"`
	AssignedTo   *string                `json:"assigned_to"`
	Terminal     bool                   `json:"terminal"`
	NextStatuses []domain.RequestStatus `json:"next_statuses"`
}

// ActionsResponse lists what the caller may do on a request.
type ActionsResponse struct {
	Request RequestSummary  `json:"request"`
	Actions []domain.Action `json:"actions"`
}

// NewRequestSummary renders req with its display tones.
func NewRequestSummary(req domain.Request) RequestSummary {
	summary := RequestSummary{
		ID:           req.ID,
		Status:       req.Status,
		StatusTone:   req.Status.Tone(),
		Priority:     req.Priority,
		RequesterID:  req.RequesterID,
		AssignedTo:   req.AssignedTo,
		Terminal:     req.Status.Terminal(),
		NextStatuses: domain.NextStatuses(req.Status),
	}
	if req.Priority.Valid() {
		summary.PriorityTone = req.Priority.Tone()
	}
	if summary.NextStatuses == nil {
		summary.NextStatuses = []domain.RequestStatus{}
	}
	return summary
}
