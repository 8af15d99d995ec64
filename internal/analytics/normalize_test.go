package analytics

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/request-tracker/internal/domain"
	"github.com/spec-kit/request-tracker/internal/record"
)

func TestNormalizeFlatAndBreakdownRows(t *testing.T) {
	rows := []record.Record{
		{
			"user_id":         "1",
			"name":            "Ana",
			"department":      "Soporte",
			"assigned_total":  float64(5),
			"in_progress":     float64(2),
			"in_review":       float64(1),
			"attended_period": float64(1),
			"pending_now":     float64(1),
		},
		{
			"user_id":    "2",
			"name":       "Luis",
			"department": "TI",
			"status_breakdown": map[string]any{
				"Pendiente":   float64(2),
				"En progreso": float64(1),
				"En revisión": float64(1),
				"Finalizada":  float64(3),
			},
		},
	}

	got := Normalize(rows)
	require.Equal(t, []domain.ProductivityRow{
		{UserID: "1", Name: "Ana", Department: "Soporte", Assigned: 5, InProgress: 2, InReview: 1, Finished: 1, Pending: 1},
		{UserID: "2", Name: "Luis", Department: "TI", Assigned: 7, InProgress: 1, InReview: 1, Finished: 3, Pending: 2},
	}, got)
}

func TestBreakdownWinsOverStaleAggregate(t *testing.T) {
	row := NormalizeRow(record.Record{
		"status_breakdown": map[string]any{
			"pending":     float64(1),
			"in progress": float64(1),
			"review":      float64(0),
			"finished":    float64(2),
		},
		"assigned_total": float64(50),
	})
	require.Equal(t, 4, row.Assigned)
	require.Equal(t, 2, row.Finished)
	require.Equal(t, 1, row.Pending)
	require.Equal(t, 1, row.InProgress)
	require.Equal(t, 0, row.InReview)
}

func TestBreakdownKeysAreCaseAndUnderscoreInsensitive(t *testing.T) {
	row := NormalizeRow(record.Record{
		"user_id": "5",
		"status_counts": map[string]any{
			"PENDING_NOW": float64(2),
			"IN_PROGRESS": "3",
			"IN_REVIEW":   float64(1),
			"COMPLETADAS": float64(4),
			"archivadas":  float64(9),
		},
	})
	require.Equal(t, domain.ProductivityRow{
		UserID:   "5", Name: UnknownName, Department: UnknownDepartment,
		Assigned: 10, Pending: 2, InProgress: 3, InReview: 1, Finished: 4,
	}, row)
}

func TestBreakdownBucketsSumAcrossSpellings(t *testing.T) {
	counts := Breakdown(record.Record{"statuses": map[string]any{"done": float64(2), "Finalizadas": float64(3), "review": "x"}})
	require.Equal(t, map[Bucket]int{BucketFinished: 5, BucketInReview: 0}, counts)
}

func TestMissingCountsResolveToZero(t *testing.T) {
	row := NormalizeRow(record.Record{"name": "Sin datos"})
	require.Equal(t, domain.ProductivityRow{
		UserID: UnknownUser, Name: "Sin datos", Department: UnknownDepartment,
	}, row)

	empty := NormalizeRow(nil)
	require.Equal(t, UnknownUser, empty.UserID)
	require.Zero(t, empty.Assigned+empty.InProgress+empty.InReview+empty.Finished+empty.Pending)
}

func TestAssignedFallbacks(t *testing.T) {
	cases := []struct {
		name string
		raw  record.Record
		want int
	}{
		{"assigned_total", record.Record{"assigned_total": float64(9), "total": float64(1)}, 9},
		{"assigned_period", record.Record{"assigned_period": float64(6), "assigned": float64(2)}, 6},
		{"total", record.Record{"total": float64(3)}, 3},
		{"sum of counts", record.Record{"progress": float64(2), "review": float64(1), "finished": float64(4), "pending": float64(1)}, 8},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, NormalizeRow(tc.raw).Assigned)
		})
	}
}

func TestUserIDFallsBackThroughAliases(t *testing.T) {
	require.Equal(t, "42", NormalizeRow(record.Record{"id": float64(42)}).UserID)
	require.Equal(t, "ana", NormalizeRow(record.Record{"user": map[string]any{"id": 1}, "username": "ana"}).UserID)
	require.Equal(t, "ana", NormalizeRow(record.Record{"username": "ana"}).Name)
	require.Equal(t, "Ventas", NormalizeRow(record.Record{"dept": "Ventas"}).Department)
}
