package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/request-tracker/internal/events"
	"github.com/spec-kit/request-tracker/internal/observability"
)

// AuditService records every guard decision in the log and the metrics.
type AuditService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	metrics    *observability.Metrics
}

// NewAuditService creates the service.
func NewAuditService(dispatcher events.Dispatcher, logger *zap.Logger, metrics *observability.Metrics) *AuditService {
	return &AuditService{
		dispatcher: dispatcher,
		logger:     logger,
		metrics:    metrics,
	}
}

// RegisterHandlers subscribes to events.
func (a *AuditService) RegisterHandlers() {
	if a.dispatcher == nil {
		return
	}
	a.dispatcher.Subscribe(events.EventTransitionApproved, a.handleDecision)
	a.dispatcher.Subscribe(events.EventTransitionDenied, a.handleDecision)
	a.dispatcher.Subscribe(events.EventFeedbackChecked, a.handleDecision)
}

func (a *AuditService) handleDecision(_ context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.DecisionPayload)
	if !ok {
		a.logger.Warn("unexpected audit payload", zap.String("event_id", event.ID), zap.String("event_type", string(event.Type)))
		return nil
	}
	decision := payload.Decision
	a.metrics.RecordDecision(string(decision.Action), decision.Allowed, string(decision.Code))

	fields := []zap.Field{
		zap.String("event_id", event.ID),
		zap.String("request_id", event.RequestID),
		zap.String("actor_id", event.Actor.ID),
		zap.String("actor_role", string(event.Actor.Role)),
		zap.String("from_status", string(payload.FromStatus)),
		zap.String("to_status", string(payload.ToStatus)),
		zap.Bool("allowed", decision.Allowed),
	}
	if decision.Call != nil {
		fields = append(fields, zap.String("outbound_path", decision.Call.Path))
	}
	if !decision.Allowed {
		fields = append(fields, zap.String("code", string(decision.Code)), zap.String("reason", decision.Reason))
	}
	a.logger.Info(string(event.Type), fields...)
	return nil
}
