package repository

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const viewStateKeyPrefix = "view_state:"

// ViewStateRepository stores serialized list views per actor.
type ViewStateRepository interface {
	Get(ctx context.Context, actorID string) ([]byte, error)
	Save(ctx context.Context, actorID string, data []byte, ttl time.Duration) error
}

type viewStateRepository struct {
	client *redis.Client
}

// NewViewStateRepository builds repository.
func NewViewStateRepository(client *redis.Client) ViewStateRepository {
	return &viewStateRepository{client: client}
}

// Get returns nil data without error when the actor has no saved view.
func (r *viewStateRepository) Get(ctx context.Context, actorID string) ([]byte, error) {
	if r.client == nil {
		return nil, ErrNotConfigured
	}
	data, err := r.client.Get(ctx, ViewStateKey(actorID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	return data, err
}

func (r *viewStateRepository) Save(ctx context.Context, actorID string, data []byte, ttl time.Duration) error {
	if r.client == nil {
		return ErrNotConfigured
	}
	return r.client.Set(ctx, ViewStateKey(actorID), data, ttl).Err()
}

// ViewStateKey is the redis key holding actorID's view.
func ViewStateKey(actorID string) string {
	return viewStateKeyPrefix + actorID
}
