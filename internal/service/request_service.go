package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/request-tracker/internal/config"
	"github.com/spec-kit/request-tracker/internal/domain"
	"github.com/spec-kit/request-tracker/internal/events"
	"github.com/spec-kit/request-tracker/internal/history"
	"github.com/spec-kit/request-tracker/internal/record"
	"github.com/spec-kit/request-tracker/internal/repository"
	"github.com/spec-kit/request-tracker/internal/workflow"
	apperrors "github.com/spec-kit/request-tracker/pkg/util"
)

// RequestService answers lifecycle questions about cached request records.
type RequestService struct {
	snapshots  repository.RequestSnapshotRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
	timeline   history.Options
	now        func() time.Time
}

// RequestDependencies bundles collaborators for RequestService.
type RequestDependencies struct {
	SnapshotRepo repository.RequestSnapshotRepository
	Dispatcher   events.Dispatcher
	Logger       *zap.Logger
	Timeline     config.TimelineConfig
}

// TransitionInput is the caller's requested move.
type TransitionInput struct {
	ToStatus     string
	Comment      string
	EvidenceLink string
}

// NewRequestService wires the service.
func NewRequestService(deps RequestDependencies) *RequestService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RequestService{
		snapshots:  deps.SnapshotRepo,
		dispatcher: deps.Dispatcher,
		logger:     logger,
		timeline:   history.Options{CollapseDuplicates: deps.Timeline.CollapseDuplicates},
		now:        time.Now,
	}
}

// SaveSnapshot stores the raw backend record of a request. The body must be a
// JSON object; an embedded id, when present, must match requestID.
func (s *RequestService) SaveSnapshot(ctx context.Context, requestID string, raw []byte) (*domain.Request, error) {
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return nil, apperrors.NewValidationError("request id required", nil)
	}
	rec, err := record.Decode(raw)
	if err != nil {
		return nil, apperrors.NewMalformedRecord(err)
	}
	req := domain.RequestFromRecord(rec)
	if req.ID != "" && req.ID != requestID {
		return nil, apperrors.NewValidationError("record id does not match path", map[string]any{
			"path_id":   requestID,
			"record_id": req.ID,
		})
	}
	req.ID = requestID

	snapshot := &repository.RequestSnapshot{
		RequestID: requestID,
		Status:    string(req.Status),
		Payload:   raw,
	}
	if err := s.snapshots.Upsert(ctx, snapshot); err != nil {
		return nil, err
	}
	return &req, nil
}

// Timeline rebuilds the status history of a cached request.
func (s *RequestService) Timeline(ctx context.Context, requestID string) ([]domain.TimelineEntry, error) {
	rec, _, err := s.load(ctx, requestID)
	if err != nil {
		return nil, err
	}
	return history.ReconstructWithOptions(rec, s.timeline), nil
}

// TimelineFromRaw rebuilds the status history of a record supplied by the caller.
func (s *RequestService) TimelineFromRaw(raw []byte) ([]domain.TimelineEntry, error) {
	rec, err := record.Decode(raw)
	if err != nil {
		return nil, apperrors.NewMalformedRecord(err)
	}
	return history.ReconstructWithOptions(rec, s.timeline), nil
}

// CheckTransition runs the transition guard for actor and publishes the outcome.
func (s *RequestService) CheckTransition(ctx context.Context, actor domain.Actor, requestID string, input TransitionInput) (workflow.Decision, error) {
	_, req, err := s.load(ctx, requestID)
	if err != nil {
		return workflow.Decision{}, err
	}

	to := domain.RequestStatus(strings.TrimSpace(input.ToStatus))
	decision := workflow.Check(req, workflow.TransitionRequest{
		RequestID: req.ID,
		ActorID:   actor.ID,
		ActorRole: actor.Role,
		ToStatus:  to,
		Payload: workflow.Payload{
			Reason:      input.Comment,
			EvidenceURL: input.EvidenceLink,
		},
	})

	eventType := events.EventTransitionApproved
	if !decision.Allowed {
		eventType = events.EventTransitionDenied
		s.logger.Info("transition denied",
			zap.String("request_id", req.ID),
			zap.String("actor_id", actor.ID),
			zap.String("to_status", string(to)),
			zap.String("code", string(decision.Code)))
	}
	s.publishEvent(ctx, events.Event{
		Type:      eventType,
		RequestID: req.ID,
		Actor:     actor,
		Payload:   events.DecisionPayload{FromStatus: req.Status, ToStatus: to, Decision: decision},
	})
	return decision, nil
}

// CheckFeedback decides whether actor may rate the request.
func (s *RequestService) CheckFeedback(ctx context.Context, actor domain.Actor, requestID string) (workflow.Decision, error) {
	_, req, err := s.load(ctx, requestID)
	if err != nil {
		return workflow.Decision{}, err
	}
	decision := workflow.CanSubmitFeedback(req, actor)
	s.publishEvent(ctx, events.Event{
		Type:      events.EventFeedbackChecked,
		RequestID: req.ID,
		Actor:     actor,
		Payload:   events.DecisionPayload{FromStatus: req.Status, Decision: decision},
	})
	return decision, nil
}

// Actions lists what actor may be offered on the request right now.
func (s *RequestService) Actions(ctx context.Context, actor domain.Actor, requestID string) (*domain.Request, []domain.Action, error) {
	_, req, err := s.load(ctx, requestID)
	if err != nil {
		return nil, nil, err
	}
	actions := workflow.AvailableActions(req, actor)
	if actions == nil {
		actions = []domain.Action{}
	}
	return &req, actions, nil
}

func (s *RequestService) load(ctx context.Context, requestID string) (record.Record, domain.Request, error) {
	snapshot, err := s.snapshots.Get(ctx, requestID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.Request{}, apperrors.NewNotFound("request", map[string]any{"request_id": requestID})
		}
		return nil, domain.Request{}, err
	}
	rec, err := record.Decode(snapshot.Payload)
	if err != nil {
		return nil, domain.Request{}, apperrors.NewMalformedRecord(err)
	}
	req := domain.RequestFromRecord(rec)
	if req.ID == "" {
		req.ID = snapshot.RequestID
	}
	return rec, req, nil
}

func (s *RequestService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = s.now()
	}
	if err := s.dispatcher.Publish(ctx, event); err != nil {
		s.logger.Warn("event handler failed", zap.String("event_type", string(event.Type)), zap.Error(err))
	}
}
