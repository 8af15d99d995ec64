package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// AnalyticsSnapshot is the last productivity payload fetched for a period.
type AnalyticsSnapshot struct {
	Period    string
	Payload   json.RawMessage
	FetchedAt time.Time
}

// AnalyticsSnapshotRepository caches raw analytics payloads per period.
type AnalyticsSnapshotRepository interface {
	Upsert(ctx context.Context, snapshot *AnalyticsSnapshot) error
	Get(ctx context.Context, period string) (*AnalyticsSnapshot, error)
}

type analyticsSnapshotRepository struct {
	pool *pgxpool.Pool
}

// NewAnalyticsSnapshotRepository builds repository.
func NewAnalyticsSnapshotRepository(pool *pgxpool.Pool) AnalyticsSnapshotRepository {
	return &analyticsSnapshotRepository{pool: pool}
}

func (r *analyticsSnapshotRepository) Upsert(ctx context.Context, snapshot *AnalyticsSnapshot) error {
	if r.pool == nil {
		return ErrNotConfigured
	}
	const query = `
        INSERT INTO analytics_snapshots (period, payload)
        VALUES ($1,$2)
        ON CONFLICT (period) DO UPDATE
        SET payload=EXCLUDED.payload, fetched_at=now()
        RETURNING fetched_at`
	return r.pool.QueryRow(ctx, query, snapshot.Period, snapshot.Payload).Scan(&snapshot.FetchedAt)
}

func (r *analyticsSnapshotRepository) Get(ctx context.Context, period string) (*AnalyticsSnapshot, error) {
	if r.pool == nil {
		return nil, ErrNotConfigured
	}
	const query = `SELECT period, payload, fetched_at FROM analytics_snapshots WHERE period=$1`
	var snapshot AnalyticsSnapshot
	if err := r.pool.QueryRow(ctx, query, period).Scan(&snapshot.Period, &snapshot.Payload, &snapshot.FetchedAt); err != nil {
		return nil, err
	}
	return &snapshot, nil
}
