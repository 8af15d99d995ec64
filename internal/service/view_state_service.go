package service

import (
	"context"
	"time"

	"github.com/spec-kit/request-tracker/internal/domain"
	"github.com/spec-kit/request-tracker/internal/filter"
	"github.com/spec-kit/request-tracker/internal/repository"
	apperrors "github.com/spec-kit/request-tracker/pkg/util"
)

// ViewStateService keeps each actor's list filters and paging between sessions.
type ViewStateService struct {
	repo repository.ViewStateRepository
	ttl  time.Duration
}

// NewViewStateService wires the service.
func NewViewStateService(repo repository.ViewStateRepository, ttl time.Duration) *ViewStateService {
	return &ViewStateService{repo: repo, ttl: ttl}
}

// Get returns the actor's saved view, or the default view when none is stored.
func (s *ViewStateService) Get(ctx context.Context, actor domain.Actor) (filter.ViewState, error) {
	if actor.ID == "" {
		return filter.ViewState{}, apperrors.NewUnauthorized("actor required")
	}
	data, err := s.repo.Get(ctx, actor.ID)
	if err != nil {
		return filter.ViewState{}, err
	}
	if data == nil {
		return filter.DefaultViewState(), nil
	}
	return filter.Deserialize(data), nil
}

// Save sanitizes raw and stores the result. Unknown or invalid values fall
// back to defaults instead of failing.
func (s *ViewStateService) Save(ctx context.Context, actor domain.Actor, raw []byte) (filter.ViewState, error) {
	if actor.ID == "" {
		return filter.ViewState{}, apperrors.NewUnauthorized("actor required")
	}
	state := filter.Deserialize(raw)
	data, err := filter.Serialize(state)
	if err != nil {
		return filter.ViewState{}, apperrors.NewInternalError(err)
	}
	if err := s.repo.Save(ctx, actor.ID, data, s.ttl); err != nil {
		return filter.ViewState{}, err
	}
	return state, nil
}
