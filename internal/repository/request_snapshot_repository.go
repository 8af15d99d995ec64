package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotConfigured is returned when the backing store was never connected.
var ErrNotConfigured = errors.New("store not configured")

// RequestSnapshot is the last raw backend record seen for a request.
type RequestSnapshot struct {
	RequestID string
	Status    string
	Payload   json.RawMessage
	FetchedAt time.Time
}

// RequestSnapshotRepository caches raw request records.
type RequestSnapshotRepository interface {
	Upsert(ctx context.Context, snapshot *RequestSnapshot) error
	Get(ctx context.Context, requestID string) (*RequestSnapshot, error)
}

type requestSnapshotRepository struct {
	pool *pgxpool.Pool
}

// NewRequestSnapshotRepository builds repository.
func NewRequestSnapshotRepository(pool *pgxpool.Pool) RequestSnapshotRepository {
	return &requestSnapshotRepository{pool: pool}
}

func (r *requestSnapshotRepository) Upsert(ctx context.Context, snapshot *RequestSnapshot) error {
	if r.pool == nil {
		return ErrNotConfigured
	}
	const query = `
        INSERT INTO request_snapshots (request_id, status, payload)
        VALUES ($1,$2,$3)
        ON CONFLICT (request_id) DO UPDATE
        SET status=EXCLUDED.status, payload=EXCLUDED.payload, fetched_at=now()
        RETURNING fetched_at`
	return r.pool.QueryRow(ctx, query,
		snapshot.RequestID,
		snapshot.Status,
		snapshot.Payload,
	).Scan(&snapshot.FetchedAt)
}

func (r *requestSnapshotRepository) Get(ctx context.Context, requestID string) (*RequestSnapshot, error) {
	if r.pool == nil {
		return nil, ErrNotConfigured
	}
	const query = `
        SELECT request_id, status, payload, fetched_at
        FROM request_snapshots WHERE request_id=$1`
	var snapshot RequestSnapshot
	if err := r.pool.QueryRow(ctx, query, requestID).Scan(
		&snapshot.RequestID,
		&snapshot.Status,
		&snapshot.Payload,
		&snapshot.FetchedAt,
	); err != nil {
		return nil, err
	}
	return &snapshot, nil
}
