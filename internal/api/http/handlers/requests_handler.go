package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/request-tracker/internal/api/dto"
	"github.com/spec-kit/request-tracker/internal/auth"
	"github.com/spec-kit/request-tracker/internal/service"
	apperrors "github.com/spec-kit/request-tracker/pkg/util"
)

// RequestsHandler exposes lifecycle checks and timelines for requests.
type RequestsHandler struct {
	service *service.RequestService
}

// NewRequestsHandler constructs handler.
func NewRequestsHandler(requestService *service.RequestService) *RequestsHandler {
	return &RequestsHandler{service: requestService}
}

// PutSnapshot PUT /requests/:id/snapshot.
func (h *RequestsHandler) PutSnapshot(c *fiber.Ctx) error {
	req, err := h.service.SaveSnapshot(c.UserContext(), c.Params("id"), c.Body())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewRequestSummary(*req)})
}

// Timeline GET /requests/:id/timeline.
func (h *RequestsHandler) Timeline(c *fiber.Ctx) error {
	entries, err := h.service.Timeline(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": entries})
}

// TimelineFromBody POST /timeline.
func (h *RequestsHandler) TimelineFromBody(c *fiber.Ctx) error {
	entries, err := h.service.TimelineFromRaw(c.Body())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": entries})
}

// CheckTransition POST /requests/:id/transition/check.
func (h *RequestsHandler) CheckTransition(c *fiber.Ctx) error {
	actor, ok := auth.ActorFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("actor required")
	}
	var req dto.TransitionCheckRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.ToStatus == "" {
		return apperrors.NewValidationError("to_status required", nil)
	}

	decision, err := h.service.CheckTransition(c.UserContext(), actor, c.Params("id"), service.TransitionInput{
		ToStatus:     req.ToStatus,
		Comment:      req.Comment,
		EvidenceLink: req.EvidenceLink,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": decision})
}

// CheckFeedback POST /requests/:id/feedback/check.
func (h *RequestsHandler) CheckFeedback(c *fiber.Ctx) error {
	actor, ok := auth.ActorFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("actor required")
	}
	decision, err := h.service.CheckFeedback(c.UserContext(), actor, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": decision})
}

// Actions GET /requests/:id/actions.
func (h *RequestsHandler) Actions(c *fiber.Ctx) error {
	actor, ok := auth.ActorFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("actor required")
	}
	req, actions, err := h.service.Actions(c.UserContext(), actor, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.ActionsResponse{
		Request: dto.NewRequestSummary(*req),
		Actions: actions,
	}})
}
