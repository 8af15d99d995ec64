package domain

// RequestStatus enumerates lifecycle states for requests.
type RequestStatus string

const (
	StatusPending    RequestStatus = "Pendiente"
	StatusInProgress RequestStatus = "En progreso"
	StatusInReview   RequestStatus = "En revisión"
	StatusFinished   RequestStatus = "Finalizada"
	StatusRejected   RequestStatus = "Rechazada"
)

// Action names the user-facing operation behind a status edge.
type Action string

const (
	ActionTake             Action = "take"
	ActionReject           Action = "reject"
	ActionSendToReview     Action = "send_to_review"
	ActionReturnToProgress Action = "return_to_progress"
	ActionFinish           Action = "finish"
	ActionSubmitFeedback   Action = "submit_feedback"
)

// Statuses lists every status in lifecycle order.
var Statuses = []RequestStatus{
	StatusPending,
	StatusInProgress,
	StatusInReview,
	StatusFinished,
	StatusRejected,
}

// transitionGraph is the only source of legal status edges. Statuses with no
// entry, or an empty one, are terminal.
var transitionGraph = map[RequestStatus]map[RequestStatus]Action{
	StatusPending: {
		StatusInProgress: ActionTake,
		StatusRejected:   ActionReject,
	},
	StatusInProgress: {
		StatusInReview: ActionSendToReview,
		StatusRejected: ActionReject,
	},
	StatusInReview: {
		StatusInProgress: ActionReturnToProgress,
		StatusFinished:   ActionFinish,
	},
	StatusFinished: {},
	StatusRejected: {},
}

var statusTones = map[RequestStatus]Tone{
	StatusPending:    ToneYellow,
	StatusInProgress: ToneBlue,
	StatusInReview:   TonePurple,
	StatusFinished:   ToneGreen,
	StatusRejected:   ToneRed,
}

// ParseStatus reports whether raw is exactly one of the catalog statuses.
func ParseStatus(raw string) (RequestStatus, bool) {
	status := RequestStatus(raw)
	_, ok := transitionGraph[status]
	return status, ok
}

// Valid reports whether s belongs to the catalog.
func (s RequestStatus) Valid() bool {
	_, ok := transitionGraph[s]
	return ok
}

// Terminal reports whether no edge leaves s.
func (s RequestStatus) Terminal() bool {
	return s.Valid() && len(transitionGraph[s]) == 0
}

// Tone returns the display tone for s.
func (s RequestStatus) Tone() Tone {
	if tone, ok := statusTones[s]; ok {
		return tone
	}
	return ToneGray
}

// TransitionAction returns the action behind the edge from -> to.
func TransitionAction(from, to RequestStatus) (Action, bool) {
	action, ok := transitionGraph[from][to]
	return action, ok
}

// NextStatuses returns the out-edges of from in lifecycle order.
func NextStatuses(from RequestStatus) []RequestStatus {
	edges := transitionGraph[from]
	next := make([]RequestStatus, 0, len(edges))
	for _, candidate := range Statuses {
		if _, ok := edges[candidate]; ok {
			next = append(next, candidate)
		}
	}
	return next
}
