package workflow

import "github.com/spec-kit/request-tracker/internal/domain"

// DenialCode classifies why a transition was refused.
type DenialCode string

const (
	InvalidTransition  DenialCode = "INVALID_TRANSITION"
	MissingReason      DenialCode = "MISSING_REASON"
	InvalidEvidenceURL DenialCode = "INVALID_EVIDENCE_URL"
	Unauthorized       DenialCode = "UNAUTHORIZED"
)

// Decision is the outcome of a guard check. Reason is shown to the user verbatim.
type Decision struct {
	Allowed bool          `json:"allowed"`
	Action  domain.Action `json:"action,omitempty"`
	Code    DenialCode    `json:"code,omitempty"`
	Reason  string        `json:"reason,omitempty"`
	Call    *OutboundCall `json:"call,omitempty"`
}

// OutboundCall is the state change the caller issues after an allowed check.
type OutboundCall struct {
	Method string         `json:"method"`
	Path   string         `json:"path"`
	Body   TransitionBody `json:"body"`
}

// TransitionBody is the payload of POST /requests/{id}/transition.
type TransitionBody struct {
	ToStatus     domain.RequestStatus `json:"to_status"`
	Comment      string               `json:"comment,omitempty"`
	EvidenceLink string               `json:"evidence_link,omitempty"`
}

func allow(action domain.Action) Decision {
	return Decision{Allowed: true, Action: action}
}

func deny(action domain.Action, code DenialCode, reason string) Decision {
	return Decision{Allowed: false, Action: action, Code: code, Reason: reason}
}

const (
	reasonInvalidTransition = "La solicitud no puede pasar de %q a %q."
	reasonMissingReason     = "Debes indicar el motivo."
	reasonInvalidEvidence   = "Ingresa un enlace válido (http/https)."
	reasonStaffOnly         = "Solo soporte o administración puede realizar esta acción."
	reasonReviewNotAllowed  = "Solo el asignado, el solicitante o un administrador puede enviar a revisión."
	reasonFeedbackStatus    = "Solo se puede calificar una solicitud finalizada."
	reasonFeedbackTaken     = "La solicitud ya tiene retroalimentación."
	reasonFeedbackRequester = "Solo el solicitante puede calificar la solicitud."
)
