package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/crm-ventas/internal/application/analytics"
)

// DashboardHandler expone los widgets del tablero. Cada endpoint devuelve
// los datos ya filtrados al alcance del usuario autenticado.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Overview GET /api/dashboard/overview
func (h *DashboardHandler) Overview(c *fiber.Ctx) error {
	out, err := h.uc.Overview(c.Context(), GetActor(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Pipeline GET /api/dashboard/pipeline
func (h *DashboardHandler) Pipeline(c *fiber.Ctx) error {
	out, err := h.uc.Pipeline(c.Context(), GetActor(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Billing GET /api/dashboard/billing
func (h *DashboardHandler) Billing(c *fiber.Ctx) error {
	out, err := h.uc.Billing(c.Context(), GetActor(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Clients GET /api/dashboard/clients
func (h *DashboardHandler) Clients(c *fiber.Ctx) error {
	out, err := h.uc.Clients(c.Context(), GetActor(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Quotes GET /api/dashboard/quotes
func (h *DashboardHandler) Quotes(c *fiber.Ctx) error {
	out, err := h.uc.Quotes(c.Context(), GetActor(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
