package domain

import (
	"strings"

	"github.com/spec-kit/request-tracker/internal/record"
)

// Request is the canonical view of a tracked request, read from a backend snapshot.
type Request struct {
	ID              string        `json:"id"`
	Status          RequestStatus `json:"status"`
	Priority        Priority      `json:"priority,omitempty"`
	Level           Level         `json:"level,omitempty"`
	Type            RequestType   `json:"type,omitempty"`
	Channel         Channel       `json:"channel,omitempty"`
	Department      string        `json:"department,omitempty"`
	RequesterID     string        `json:"requester_id"`
	AssignedBy      string        `json:"assigned_by,omitempty"`
	AssignedTo      *string       `json:"assigned_to"`
	RejectionReason *string       `json:"rejection_reason"`
	ReviewEvidence  *Evidence     `json:"review_evidence,omitempty"`
	Feedback        *Feedback     `json:"feedback"`
}

// Evidence links the deliverable submitted for review.
type Evidence struct {
	URL string `json:"url"`
}

// Feedback is the requester's verdict on a finished request.
type Feedback struct {
	Rating  string `json:"rating"`
	Comment string `json:"comment,omitempty"`
}

var (
	requestIDAliases   = []string{"id", "request_id"}
	assigneeAliases    = []string{"assigned_to", "assigned_to_id"}
	evidenceURLAliases = []string{"url", "link", "evidence_link"}
)

// RequestFromRecord reads a request snapshot. Values outside the catalog are
// left empty rather than passed through.
func RequestFromRecord(rec record.Record) Request {
	req := Request{}
	req.ID, _ = rec.ID(requestIDAliases...)
	req.RequesterID, _ = rec.ID("requester_id")
	req.AssignedBy, _ = rec.ID("assigned_by")
	if assignee, ok := rec.ID(assigneeAliases...); ok {
		req.AssignedTo = &assignee
	}

	if raw, ok := rec.String("status"); ok {
		if status, valid := ParseStatus(strings.TrimSpace(raw)); valid {
			req.Status = status
		}
	}
	if raw, ok := rec.String("priority"); ok && Priority(raw).Valid() {
		req.Priority = Priority(raw)
	}
	if n, ok := rec.Int("level"); ok && Level(n).Valid() {
		req.Level = Level(n)
	}
	if raw, ok := rec.String("type"); ok && containsType(RequestType(raw)) {
		req.Type = RequestType(raw)
	}
	if raw, ok := rec.String("channel"); ok && containsChannel(Channel(raw)) {
		req.Channel = Channel(raw)
	}
	req.Department, _ = rec.String("department")

	if reason, ok := rec.String("rejection_reason"); ok {
		req.RejectionReason = &reason
	}
	if evidence, ok := rec.Map("review_evidence"); ok {
		if url, ok := evidence.String(evidenceURLAliases...); ok {
			req.ReviewEvidence = &Evidence{URL: url}
		}
	} else if url, ok := rec.String("evidence_link"); ok {
		req.ReviewEvidence = &Evidence{URL: url}
	}
	if fb, ok := rec.Map("feedback"); ok {
		rating, _ := fb.String("rating")
		comment, _ := fb.String("comment")
		req.Feedback = &Feedback{Rating: rating, Comment: comment}
	}
	return req
}

// IsAssignee reports whether actorID is the assigned technician.
func (r Request) IsAssignee(actorID string) bool {
	return actorID != "" && r.AssignedTo != nil && *r.AssignedTo == actorID
}

// IsRequester reports whether actorID opened the request.
func (r Request) IsRequester(actorID string) bool {
	return actorID != "" && r.RequesterID == actorID
}

func containsType(t RequestType) bool {
	for _, candidate := range RequestTypes {
		if candidate == t {
			return true
		}
	}
	return false
}

func containsChannel(c Channel) bool {
	for _, candidate := range Channels {
		if candidate == c {
			return true
		}
	}
	return false
}
