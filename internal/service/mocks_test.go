package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/spec-kit/request-tracker/internal/repository"
)

type requestSnapshotRepoMock struct{ mock.Mock }

var _ repository.RequestSnapshotRepository = (*requestSnapshotRepoMock)(nil)

func (m *requestSnapshotRepoMock) Upsert(ctx context.Context, snapshot *repository.RequestSnapshot) error {
	return m.Called(ctx, snapshot).Error(0)
}

func (m *requestSnapshotRepoMock) Get(ctx context.Context, requestID string) (*repository.RequestSnapshot, error) {
	args := m.Called(ctx, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.RequestSnapshot), args.Error(1)
}

type analyticsSnapshotRepoMock struct{ mock.Mock }

var _ repository.AnalyticsSnapshotRepository = (*analyticsSnapshotRepoMock)(nil)

func (m *analyticsSnapshotRepoMock) Upsert(ctx context.Context, snapshot *repository.AnalyticsSnapshot) error {
	return m.Called(ctx, snapshot).Error(0)
}

func (m *analyticsSnapshotRepoMock) Get(ctx context.Context, period string) (*repository.AnalyticsSnapshot, error) {
	args := m.Called(ctx, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.AnalyticsSnapshot), args.Error(1)
}

type viewStateRepoMock struct{ mock.Mock }

var _ repository.ViewStateRepository = (*viewStateRepoMock)(nil)

func (m *viewStateRepoMock) Get(ctx context.Context, actorID string) ([]byte, error) {
	args := m.Called(ctx, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *viewStateRepoMock) Save(ctx context.Context, actorID string, data []byte, ttl time.Duration) error {
	return m.Called(ctx, actorID, data, ttl).Error(0)
}
