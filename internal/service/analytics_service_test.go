package service

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/request-tracker/internal/analytics"
	"github.com/spec-kit/request-tracker/internal/repository"
)

const productivityPayload = `{
	"assigned": 40,
	"productivity": [
		{"user_id": 1, "name": "Ana", "department": "Soporte", "assigned_total": 5, "in_progress": 2, "in_review": 1, "attended_period": 1, "pending_now": 1},
		{"user_id": 2, "name": "Luis", "department": "TI", "status_breakdown": {"Pendiente": 2, "En progreso": 1, "En revisión": 1, "Finalizada": 3}}
	]
}`

func TestAnalyticsBuild(t *testing.T) {
	svc := NewAnalyticsService(&analyticsSnapshotRepoMock{})

	view, err := svc.Build([]byte(productivityPayload), analytics.Selection{Technician: analytics.All, Department: analytics.All}, analytics.PeriodMonth)
	require.NoError(t, err)
	require.Len(t, view.Normalized, 2)
	require.Equal(t, 40, view.Global.Assigned)
	require.Equal(t, 4, view.Global.Finished)
	require.Equal(t, "2", view.Ranking[0].UserID)

	view, err = svc.Build([]byte(productivityPayload), analytics.Selection{Technician: "1"}, analytics.PeriodMonth)
	require.NoError(t, err)
	require.Equal(t, 5, view.Global.Assigned)
	require.Len(t, view.Ranking, 2)
}

func TestAnalyticsBuildRejectsScalars(t *testing.T) {
	_, err := NewAnalyticsService(&analyticsSnapshotRepoMock{}).Build([]byte(`"nope"`), analytics.Selection{}, analytics.PeriodAll)
	require.Equal(t, "MALFORMED_RECORD", domainCode(t, err))
}

func TestAnalyticsSnapshots(t *testing.T) {
	repo := &analyticsSnapshotRepoMock{}
	repo.On("Upsert", mock.Anything, mock.MatchedBy(func(s *repository.AnalyticsSnapshot) bool {
		return s.Period == "week"
	})).Return(nil).Once()
	repo.On("Get", mock.Anything, "week").Return(&repository.AnalyticsSnapshot{Period: "week", Payload: []byte(productivityPayload)}, nil)
	repo.On("Get", mock.Anything, "day").Return(nil, pgx.ErrNoRows)

	svc := NewAnalyticsService(repo)
	require.NoError(t, svc.SaveSnapshot(context.Background(), analytics.PeriodWeek, []byte(productivityPayload)))

	view, err := svc.BuildStored(context.Background(), analytics.Selection{Department: "ti"}, analytics.PeriodWeek)
	require.NoError(t, err)
	require.Len(t, view.Filtered, 1)
	require.Equal(t, "Luis", view.Filtered[0].Name)

	_, err = svc.BuildStored(context.Background(), analytics.Selection{}, analytics.PeriodDay)
	require.Equal(t, "NOT_FOUND", domainCode(t, err))

	err = svc.SaveSnapshot(context.Background(), analytics.PeriodWeek, []byte(`42`))
	require.Equal(t, "MALFORMED_RECORD", domainCode(t, err))
	repo.AssertNumberOfCalls(t, "Upsert", 1)
}

func TestAnalyticsPeriodQueryUsesClock(t *testing.T) {
	svc := NewAnalyticsService(&analyticsSnapshotRepoMock{})
	svc.now = func() time.Time { return time.Date(2024, 6, 15, 18, 0, 0, 0, time.UTC) }

	q := svc.PeriodQuery(analytics.PeriodDay)
	require.Equal(t, "daily", q.Get("period"))
	require.Equal(t, "2024-06-14T00:00:00.000Z", q.Get("start_date"))
}
