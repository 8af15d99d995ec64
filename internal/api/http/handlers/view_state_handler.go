package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/request-tracker/internal/auth"
	"github.com/spec-kit/request-tracker/internal/service"
	apperrors "github.com/spec-kit/request-tracker/pkg/util"
)

// ViewStateHandler stores the caller's list filters.
type ViewStateHandler struct {
	service *service.ViewStateService
}

// NewViewStateHandler constructs handler.
func NewViewStateHandler(viewStateService *service.ViewStateService) *ViewStateHandler {
	return &ViewStateHandler{service: viewStateService}
}

// Get GET /view-state.
func (h *ViewStateHandler) Get(c *fiber.Ctx) error {
	actor, ok := auth.ActorFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("actor required")
	}
	state, err := h.service.Get(c.UserContext(), actor)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": state})
}

// Put PUT /view-state.
func (h *ViewStateHandler) Put(c *fiber.Ctx) error {
	actor, ok := auth.ActorFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("actor required")
	}
	state, err := h.service.Save(c.UserContext(), actor, c.Body())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": state})
}
