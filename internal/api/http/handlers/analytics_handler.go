package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/request-tracker/internal/analytics"
	"github.com/spec-kit/request-tracker/internal/service"
)

// AnalyticsHandler serves the productivity screen.
type AnalyticsHandler struct {
	service *service.AnalyticsService
}

// NewAnalyticsHandler constructs handler.
func NewAnalyticsHandler(analyticsService *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{service: analyticsService}
}

// PutSnapshot PUT /analytics/snapshots/:period.
func (h *AnalyticsHandler) PutSnapshot(c *fiber.Ctx) error {
	period := analytics.ParsePeriod(c.Params("period"))
	if err := h.service.SaveSnapshot(c.UserContext(), period, c.Body()); err != nil {
		return err
	}
	return c.Status(fiber.StatusNoContent).Send(nil)
}

// Productivity POST /analytics/productivity.
func (h *AnalyticsHandler) Productivity(c *fiber.Ctx) error {
	view, err := h.service.Build(c.Body(), selection(c), analytics.ParsePeriod(c.Query("period")))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": view})
}

// StoredProductivity GET /analytics/productivity/:period.
func (h *AnalyticsHandler) StoredProductivity(c *fiber.Ctx) error {
	view, err := h.service.BuildStored(c.UserContext(), selection(c), analytics.ParsePeriod(c.Params("period")))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": view})
}

// PeriodQuery GET /analytics/period-query.
func (h *AnalyticsHandler) PeriodQuery(c *fiber.Ctx) error {
	params := h.service.PeriodQuery(analytics.ParsePeriod(c.Query("period")))
	out := make(map[string]string, len(params))
	for key := range params {
		out[key] = params.Get(key)
	}
	return c.JSON(fiber.Map{"data": out, "query": params.Encode()})
}

func selection(c *fiber.Ctx) analytics.Selection {
	return analytics.Selection{
		Technician: c.Query("technician", analytics.All),
		Department: c.Query("department", analytics.All),
	}
}
