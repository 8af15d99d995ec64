// Package workflow decides which status changes a request may undergo and who
// may invoke them. Every function is a pure decision over a snapshot; callers
// issue the actual change and refetch.
package workflow

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/spec-kit/request-tracker/internal/domain"
)

// Payload carries the auxiliary data some transitions require.
type Payload struct {
	Reason      string `json:"reason,omitempty"`
	EvidenceURL string `json:"evidence_url,omitempty"`
}

// TransitionRequest is the full input of a guard check.
type TransitionRequest struct {
	RequestID string               `json:"request_id"`
	ActorID   string               `json:"actor_id"`
	ActorRole domain.Role          `json:"actor_role"`
	ToStatus  domain.RequestStatus `json:"to_status"`
	Payload   Payload              `json:"payload"`
}

// Check runs CanTransition for tr against req.
func Check(req domain.Request, tr TransitionRequest) Decision {
	if req.ID == "" {
		req.ID = tr.RequestID
	}
	actor := domain.Actor{ID: tr.ActorID, Role: tr.ActorRole}
	return CanTransition(req, actor, tr.ToStatus, tr.Payload)
}

// CanTransition decides whether actor may move req to toStatus with payload.
func CanTransition(req domain.Request, actor domain.Actor, toStatus domain.RequestStatus, payload Payload) Decision {
	action, ok := domain.TransitionAction(req.Status, toStatus)
	if !ok {
		return deny("", InvalidTransition, fmt.Sprintf(reasonInvalidTransition, req.Status, toStatus))
	}

	var decision Decision
	switch action {
	case domain.ActionReject:
		decision = checkReject(actor, payload)
	case domain.ActionSendToReview:
		decision = checkSendToReview(req, actor, payload)
	default:
		decision = checkStaff(action, actor)
	}
	if decision.Allowed {
		decision.Call = outboundCall(req, toStatus, payload)
	}
	return decision
}

// CanSubmitFeedback decides whether actor may rate req. Feedback is set once,
// by the requester, on a finished request.
func CanSubmitFeedback(req domain.Request, actor domain.Actor) Decision {
	switch {
	case req.Status != domain.StatusFinished:
		return deny(domain.ActionSubmitFeedback, InvalidTransition, reasonFeedbackStatus)
	case req.Feedback != nil:
		return deny(domain.ActionSubmitFeedback, InvalidTransition, reasonFeedbackTaken)
	case !req.IsRequester(actor.ID):
		return deny(domain.ActionSubmitFeedback, Unauthorized, reasonFeedbackRequester)
	}
	return allow(domain.ActionSubmitFeedback)
}

// AvailableActions lists the actions actor may be offered on req, checking
// role and relationship only. Payload requirements are enforced at submit time.
func AvailableActions(req domain.Request, actor domain.Actor) []domain.Action {
	var actions []domain.Action
	for _, next := range domain.NextStatuses(req.Status) {
		action, _ := domain.TransitionAction(req.Status, next)
		if authorized(action, req, actor) {
			actions = append(actions, action)
		}
	}
	if CanSubmitFeedback(req, actor).Allowed {
		actions = append(actions, domain.ActionSubmitFeedback)
	}
	return actions
}

func authorized(action domain.Action, req domain.Request, actor domain.Actor) bool {
	if action == domain.ActionSendToReview {
		return canSendToReview(req, actor)
	}
	return actor.Role.Staff()
}

// checkReject validates the reason before the role so a missing reason is
// reported the same way to every caller.
func checkReject(actor domain.Actor, payload Payload) Decision {
	if strings.TrimSpace(payload.Reason) == "" {
		return deny(domain.ActionReject, MissingReason, reasonMissingReason)
	}
	return checkStaff(domain.ActionReject, actor)
}

func checkSendToReview(req domain.Request, actor domain.Actor, payload Payload) Decision {
	if !ValidEvidenceURL(payload.EvidenceURL) {
		return deny(domain.ActionSendToReview, InvalidEvidenceURL, reasonInvalidEvidence)
	}
	if !canSendToReview(req, actor) {
		return deny(domain.ActionSendToReview, Unauthorized, reasonReviewNotAllowed)
	}
	return allow(domain.ActionSendToReview)
}

func checkStaff(action domain.Action, actor domain.Actor) Decision {
	if !actor.Role.Staff() {
		return deny(action, Unauthorized, reasonStaffOnly)
	}
	return allow(action)
}

// canSendToReview also accepts whoever assigned the request when the
// snapshot carries no requester.
func canSendToReview(req domain.Request, actor domain.Actor) bool {
	if actor.Role == domain.RoleAdmin || req.IsAssignee(actor.ID) || req.IsRequester(actor.ID) {
		return true
	}
	return req.RequesterID == "" && actor.ID != "" && req.AssignedBy == actor.ID
}

// ValidEvidenceURL reports whether raw is an absolute http(s) URL.
func ValidEvidenceURL(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || !u.IsAbs() || u.Host == "" {
		return false
	}
	scheme := strings.ToLower(u.Scheme)
	return scheme == "http" || scheme == "https"
}

func outboundCall(req domain.Request, toStatus domain.RequestStatus, payload Payload) *OutboundCall {
	body := TransitionBody{ToStatus: toStatus}
	switch toStatus {
	case domain.StatusRejected:
		body.Comment = strings.TrimSpace(payload.Reason)
	case domain.StatusInReview:
		body.EvidenceLink = strings.TrimSpace(payload.EvidenceURL)
	}
	return &OutboundCall{
		Method: "POST",
		Path:   "/requests/" + url.PathEscape(req.ID) + "/transition",
		Body:   body,
	}
}
