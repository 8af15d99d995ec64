package workflow

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/request-tracker/internal/domain"
	"github.com/spec-kit/request-tracker/internal/record"
)

var (
	support  = domain.Actor{ID: "10", Role: domain.RoleSupport}
	admin    = domain.Actor{ID: "1", Role: domain.RoleAdmin}
	employee = domain.Actor{ID: "30", Role: domain.RoleEmployee}
)

func request(status domain.RequestStatus) domain.Request {
	assignee := "10"
	return domain.Request{ID: "55", Status: status, RequesterID: "30", AssignedTo: &assignee}
}

func TestTransitionGraphClosure(t *testing.T) {
	statuses := append([]domain.RequestStatus{"", "Cerrada"}, domain.Statuses...)
	payload := Payload{Reason: "duplicado", EvidenceURL: "https://drive.google.com/x"}

	for _, from := range statuses {
		for _, to := range statuses {
			if _, ok := domain.TransitionAction(from, to); ok {
				continue
			}
			for _, actor := range []domain.Actor{support, admin, employee} {
				d := CanTransition(request(from), actor, to, payload)
				require.False(t, d.Allowed, "%s -> %s as %s", from, to, actor.Role)
				require.Equal(t, InvalidTransition, d.Code)
				require.NotEmpty(t, d.Reason)
			}
		}
	}
}

func TestRejectRequiresReason(t *testing.T) {
	req := request(domain.StatusPending)

	d := CanTransition(req, support, domain.StatusRejected, Payload{Reason: "   "})
	require.False(t, d.Allowed)
	require.Equal(t, MissingReason, d.Code)
	require.Equal(t, "Debes indicar el motivo.", d.Reason)

	d = CanTransition(req, employee, domain.StatusRejected, Payload{})
	require.Equal(t, MissingReason, d.Code)

	d = CanTransition(req, support, domain.StatusRejected, Payload{Reason: "duplicado"})
	require.True(t, d.Allowed)
	require.Equal(t, domain.ActionReject, d.Action)
	require.Equal(t, "/requests/55/transition", d.Call.Path)
	require.Equal(t, "duplicado", d.Call.Body.Comment)
	require.Equal(t, domain.StatusRejected, d.Call.Body.ToStatus)

	d = CanTransition(req, employee, domain.StatusRejected, Payload{Reason: "duplicado"})
	require.Equal(t, Unauthorized, d.Code)
}

func TestTakeIsStaffOnly(t *testing.T) {
	req := request(domain.StatusPending)

	require.True(t, CanTransition(req, support, domain.StatusInProgress, Payload{}).Allowed)
	require.True(t, CanTransition(req, admin, domain.StatusInProgress, Payload{}).Allowed)

	d := CanTransition(req, employee, domain.StatusInProgress, Payload{})
	require.False(t, d.Allowed)
	require.Equal(t, Unauthorized, d.Code)
	require.Equal(t, domain.ActionTake, d.Action)
}

func TestSendToReview(t *testing.T) {
	req := request(domain.StatusInProgress)

	d := CanTransition(req, support, domain.StatusInReview, Payload{EvidenceURL: "ftp://x"})
	require.Equal(t, InvalidEvidenceURL, d.Code)

	d = CanTransition(req, support, domain.StatusInReview, Payload{EvidenceURL: "https://drive.google.com/x"})
	require.True(t, d.Allowed)
	require.Equal(t, "https://drive.google.com/x", d.Call.Body.EvidenceLink)

	requester := domain.Actor{ID: "30", Role: domain.RoleEmployee}
	require.True(t, CanTransition(req, requester, domain.StatusInReview, Payload{EvidenceURL: "http://intranet/doc"}).Allowed)

	stranger := domain.Actor{ID: "77", Role: domain.RoleSupport}
	d = CanTransition(req, stranger, domain.StatusInReview, Payload{EvidenceURL: "https://drive.google.com/x"})
	require.Equal(t, Unauthorized, d.Code)

	require.True(t, CanTransition(req, admin, domain.StatusInReview, Payload{EvidenceURL: "https://x.io"}).Allowed)
}

func TestValidEvidenceURL(t *testing.T) {
	valid := []string{"https://drive.google.com/x", "http://host:8080/a?b=c", " HTTPS://docs.example.com "}
	invalid := []string{"", "ftp://x", "drive.google.com/x", "https://", "/relative/path", "javascript:alert(1)"}

	for _, raw := range valid {
		require.True(t, ValidEvidenceURL(raw), raw)
	}
	for _, raw := range invalid {
		require.False(t, ValidEvidenceURL(raw), raw)
	}
}

func TestReviewOutcomesAreStaffOnly(t *testing.T) {
	req := request(domain.StatusInReview)

	for _, to := range []domain.RequestStatus{domain.StatusInProgress, domain.StatusFinished} {
		require.True(t, CanTransition(req, support, to, Payload{}).Allowed)
		require.True(t, CanTransition(req, admin, to, Payload{}).Allowed)
		require.Equal(t, Unauthorized, CanTransition(req, employee, to, Payload{}).Code)
	}
}

func TestCanSubmitFeedback(t *testing.T) {
	requester := domain.Actor{ID: "30", Role: domain.RoleEmployee}

	require.True(t, CanSubmitFeedback(request(domain.StatusFinished), requester).Allowed)
	require.False(t, CanSubmitFeedback(request(domain.StatusInReview), requester).Allowed)
	require.Equal(t, Unauthorized, CanSubmitFeedback(request(domain.StatusFinished), admin).Code)

	rated := request(domain.StatusFinished)
	rated.Feedback = &domain.Feedback{Rating: "up"}
	require.False(t, CanSubmitFeedback(rated, requester).Allowed)
}

func TestAssignerIsNotTheRequester(t *testing.T) {
	rec := record.Record{"id": "8", "status": "Finalizada", "created_by": "99", "assigned_by": "40"}
	req := domain.RequestFromRecord(rec)

	for _, id := range []string{"99", "40"} {
		d := CanSubmitFeedback(req, domain.Actor{ID: id, Role: domain.RoleEmployee})
		require.False(t, d.Allowed, id)
		require.Equal(t, Unauthorized, d.Code)
	}
}

func TestSendToReviewFallsBackToAssigner(t *testing.T) {
	req := domain.RequestFromRecord(record.Record{"id": "8", "status": "En progreso", "assigned_by": "40", "created_by": "99"})
	evidence := Payload{EvidenceURL: "https://drive.google.com/x"}

	require.True(t, CanTransition(req, domain.Actor{ID: "40", Role: domain.RoleEmployee}, domain.StatusInReview, evidence).Allowed)
	require.Equal(t, Unauthorized, CanTransition(req, domain.Actor{ID: "99", Role: domain.RoleEmployee}, domain.StatusInReview, evidence).Code)

	req.RequesterID = "30"
	require.Equal(t, Unauthorized, CanTransition(req, domain.Actor{ID: "40", Role: domain.RoleEmployee}, domain.StatusInReview, evidence).Code)
}

func TestAvailableActions(t *testing.T) {
	require.Equal(t,
		[]domain.Action{domain.ActionTake, domain.ActionReject},
		AvailableActions(request(domain.StatusPending), support))
	require.Empty(t, AvailableActions(request(domain.StatusPending), employee))
	require.Equal(t,
		[]domain.Action{domain.ActionSendToReview},
		AvailableActions(request(domain.StatusInProgress), domain.Actor{ID: "30", Role: domain.RoleEmployee}))
	require.Equal(t,
		[]domain.Action{domain.ActionSubmitFeedback},
		AvailableActions(request(domain.StatusFinished), domain.Actor{ID: "30", Role: domain.RoleEmployee}))
}

func TestCheckUsesRequestID(t *testing.T) {
	d := Check(domain.Request{Status: domain.StatusPending}, TransitionRequest{
		RequestID: "abc",
		ActorID:   "10",
		ActorRole: domain.RoleSupport,
		ToStatus:  domain.StatusInProgress,
	})
	require.True(t, d.Allowed)
	require.Equal(t, "/requests/abc/transition", d.Call.Path)
}
