package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestUnconfiguredStores(t *testing.T) {
	ctx := context.Background()

	_, err := NewRequestSnapshotRepository(nil).Get(ctx, "15")
	require.ErrorIs(t, err, ErrNotConfigured)
	require.ErrorIs(t, NewRequestSnapshotRepository(nil).Upsert(ctx, &RequestSnapshot{RequestID: "15"}), ErrNotConfigured)

	_, err = NewAnalyticsSnapshotRepository(nil).Get(ctx, "month")
	require.ErrorIs(t, err, ErrNotConfigured)

	_, err = NewViewStateRepository(nil).Get(ctx, "u1")
	require.ErrorIs(t, err, ErrNotConfigured)
	require.ErrorIs(t, NewViewStateRepository(nil).Save(ctx, "u1", []byte("{}"), time.Hour), ErrNotConfigured)
}

func TestViewStateKey(t *testing.T) {
	require.Equal(t, "view_state:42", ViewStateKey("42"))
}
