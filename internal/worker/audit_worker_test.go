package worker

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/request-tracker/internal/domain"
	"github.com/spec-kit/request-tracker/internal/events"
	"github.com/spec-kit/request-tracker/internal/observability"
	"github.com/spec-kit/request-tracker/internal/service"
	"github.com/spec-kit/request-tracker/internal/workflow"
)

func TestAuditWorkerCountsDecisions(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()
	metrics := observability.NewMetrics()
	StartAuditWorker(service.NewAuditService(dispatcher, zap.NewNop(), metrics))

	req := domain.Request{ID: "15", Status: domain.StatusPending}
	support := domain.Actor{ID: "9", Role: domain.RoleSupport}
	decision := workflow.CanTransition(req, support, domain.StatusInProgress, workflow.Payload{})

	require.NoError(t, dispatcher.Publish(context.Background(), events.Event{
		Type:      events.EventTransitionApproved,
		RequestID: req.ID,
		Actor:     support,
		Payload:   events.DecisionPayload{FromStatus: req.Status, ToStatus: domain.StatusInProgress, Decision: decision},
	}))
	require.NoError(t, dispatcher.Publish(context.Background(), events.Event{
		Type:    events.EventTransitionDenied,
		Payload: "not a decision",
	}))

	require.Equal(t, map[string]int64{"take|ALLOWED": 1}, metrics.Snapshot().GuardDecisions)
}

func TestStartAuditWorkerNil(t *testing.T) {
	require.NotPanics(t, func() { StartAuditWorker(nil) })
}
