package domain

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/request-tracker/internal/record"
)

func TestTransitionGraph(t *testing.T) {
	edges := map[[2]RequestStatus]Action{
		{StatusPending, StatusInProgress}:  ActionTake,
		{StatusPending, StatusRejected}:    ActionReject,
		{StatusInProgress, StatusInReview}: ActionSendToReview,
		{StatusInProgress, StatusRejected}: ActionReject,
		{StatusInReview, StatusInProgress}: ActionReturnToProgress,
		{StatusInReview, StatusFinished}:   ActionFinish,
	}
	for _, from := range Statuses {
		for _, to := range Statuses {
			action, ok := TransitionAction(from, to)
			want, exists := edges[[2]RequestStatus{from, to}]
			require.Equal(t, exists, ok, "%s -> %s", from, to)
			require.Equal(t, want, action)
		}
	}

	require.True(t, StatusFinished.Terminal())
	require.True(t, StatusRejected.Terminal())
	require.False(t, StatusInReview.Terminal())
	require.Equal(t, []RequestStatus{StatusInProgress, StatusFinished}, NextStatuses(StatusInReview))
	require.Empty(t, NextStatuses("Cerrada"))
}

func TestCatalogMembership(t *testing.T) {
	_, ok := ParseStatus("En revisión")
	require.True(t, ok)
	_, ok = ParseStatus("en revisión")
	require.False(t, ok)

	require.Equal(t, ToneRed, PriorityHigh.Tone())
	require.Equal(t, ToneGray, Priority("Urgente").Tone())
	require.Equal(t, TonePurple, StatusInReview.Tone())
	require.False(t, Level(4).Valid())
	require.True(t, RoleAdmin.Staff())
	require.False(t, RoleEmployee.Staff())
}

func TestRequestFromRecord(t *testing.T) {
	rec := record.Record{
		"id":              float64(15),
		"status":          "En progreso",
		"priority":        "Urgente",
		"level":           "2",
		"type":            "Mejora",
		"channel":         "WhatsApp",
		"requester_id":    float64(3),
		"assigned_to":     "9",
		"review_evidence": map[string]any{"url": "https://drive.google.com/x"},
		"feedback":        map[string]any{"rating": "up"},
	}

	req := RequestFromRecord(rec)
	require.Equal(t, "15", req.ID)
	require.Equal(t, StatusInProgress, req.Status)
	require.Empty(t, req.Priority)
	require.Equal(t, LevelSupport, req.Level)
	require.Equal(t, TypeImprovement, req.Type)
	require.Equal(t, ChannelWhatsApp, req.Channel)
	require.True(t, req.IsRequester("3"))
	require.True(t, req.IsAssignee("9"))
	require.False(t, req.IsAssignee(""))
	require.Equal(t, "https://drive.google.com/x", req.ReviewEvidence.URL)
	require.Equal(t, "up", req.Feedback.Rating)

	unknown := RequestFromRecord(record.Record{"status": "archived"})
	require.Empty(t, unknown.Status)
	require.Nil(t, unknown.AssignedTo)
}

func TestRequesterComesOnlyFromRequesterID(t *testing.T) {
	req := RequestFromRecord(record.Record{"status": "Finalizada", "created_by": "99", "assigned_by": "40"})
	require.Empty(t, req.RequesterID)
	require.False(t, req.IsRequester("99"))
	require.False(t, req.IsRequester("40"))
	require.Equal(t, "40", req.AssignedBy)
}
