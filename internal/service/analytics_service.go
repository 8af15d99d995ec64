package service

import (
	"context"
	"errors"
	"net/url"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/request-tracker/internal/analytics"
	"github.com/spec-kit/request-tracker/internal/record"
	"github.com/spec-kit/request-tracker/internal/repository"
	apperrors "github.com/spec-kit/request-tracker/pkg/util"
)

// AnalyticsService builds productivity views from raw analytics payloads.
type AnalyticsService struct {
	snapshots repository.AnalyticsSnapshotRepository
	now       func() time.Time
}

// NewAnalyticsService wires the service.
func NewAnalyticsService(snapshots repository.AnalyticsSnapshotRepository) *AnalyticsService {
	return &AnalyticsService{snapshots: snapshots, now: time.Now}
}

// SaveSnapshot caches payload for period. Only JSON objects and arrays are accepted.
func (s *AnalyticsService) SaveSnapshot(ctx context.Context, period analytics.Period, raw []byte) error {
	if _, err := decodePayload(raw); err != nil {
		return err
	}
	return s.snapshots.Upsert(ctx, &repository.AnalyticsSnapshot{Period: string(period), Payload: raw})
}

// Build runs the productivity pipeline over a caller-supplied payload.
func (s *AnalyticsService) Build(raw []byte, sel analytics.Selection, period analytics.Period) (analytics.View, error) {
	payload, err := decodePayload(raw)
	if err != nil {
		return analytics.View{}, err
	}
	return analytics.BuildView(payload, sel, period), nil
}

// BuildStored runs the pipeline over the cached payload of period.
func (s *AnalyticsService) BuildStored(ctx context.Context, sel analytics.Selection, period analytics.Period) (analytics.View, error) {
	snapshot, err := s.snapshots.Get(ctx, string(period))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return analytics.View{}, apperrors.NewNotFound("analytics snapshot", map[string]any{"period": period})
		}
		return analytics.View{}, err
	}
	return s.Build(snapshot.Payload, sel, period)
}

// PeriodQuery returns the backend query for period relative to now.
func (s *AnalyticsService) PeriodQuery(period analytics.Period) url.Values {
	return analytics.PeriodQuery(period, s.now())
}

func decodePayload(raw []byte) (any, error) {
	payload, err := record.DecodePayload(raw)
	if err != nil {
		return nil, apperrors.NewMalformedRecord(err)
	}
	return payload, nil
}
