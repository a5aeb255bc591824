package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/crm-ventas/internal/application/analytics"
	"github.com/tu-usuario/crm-ventas/internal/application/dto"
)

// ReportHandler expone los reportes de proyecciones, publicidad,
// activaciones y el reporte de ventas con filtros.
type ReportHandler struct {
	uc *analytics.ReportUseCase
}

func NewReportHandler(uc *analytics.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Projections GET /api/reports/projections
func (h *ReportHandler) Projections(c *fiber.Ctx) error {
	out, err := h.uc.Projections(c.Context(), GetActor(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Publicidad GET /api/reports/publicidad
func (h *ReportHandler) Publicidad(c *fiber.Ctx) error {
	out, err := h.uc.Publicidad(c.Context(), GetActor(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Activaciones GET /api/reports/activaciones
func (h *ReportHandler) Activaciones(c *fiber.Ctx) error {
	out, err := h.uc.Activaciones(c.Context(), GetActor(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Sales GET /api/reports/sales?client_id=&assigned_to=&fecha_inicio=&fecha_fin=
func (h *ReportHandler) Sales(c *fiber.Ctx) error {
	fechaInicio, ok := parseDateQuery(c, "fecha_inicio")
	if !ok {
		return nil
	}
	fechaFin, ok := parseDateQuery(c, "fecha_fin")
	if !ok {
		return nil
	}
	out, err := h.uc.SalesReport(c.Context(), GetActor(c), c.Query("client_id"), c.Query("assigned_to"), fechaInicio, fechaFin)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// parseDateQuery acepta fechas en RFC3339 o "2006-01-02"; ausente es cero.
// Si el valor es inválido deja escrita la respuesta 400 y devuelve ok=false.
func parseDateQuery(c *fiber.Ctx, name string) (time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return time.Time{}, true
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, true
	}
	_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Code:    "VALIDATION",
		Message: name + " debe ser RFC3339 o YYYY-MM-DD",
	})
	return time.Time{}, false
}
