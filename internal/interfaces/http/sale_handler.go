package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/crm-ventas/internal/application/dto"
	"github.com/tu-usuario/crm-ventas/internal/application/usecase"
)

// SaleHandler expone el pipeline de ventas: alta desde cotización aprobada,
// cambio de etapa, cierre, notas de seguimiento y tareas.
type SaleHandler struct {
	uc *usecase.SaleUseCase
}

func NewSaleHandler(uc *usecase.SaleUseCase) *SaleHandler {
	return &SaleHandler{uc: uc}
}

// Create POST /api/sales
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	sale, err := h.uc.Create(GetActor(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(sale)
}

// List GET /api/sales
func (h *SaleHandler) List(c *fiber.Ctx) error {
	sales, err := h.uc.List(GetActor(c), parsePage(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(sales)
}

// GetByID GET /api/sales/:id
func (h *SaleHandler) GetByID(c *fiber.Ctx) error {
	sale, err := h.uc.GetByID(GetActor(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(sale)
}

// UpdateStage PUT /api/sales/:id
func (h *SaleHandler) UpdateStage(c *fiber.Ctx) error {
	var in dto.UpdateSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	sale, err := h.uc.UpdateStage(GetActor(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(sale)
}

// Close POST /api/sales/:id/close
func (h *SaleHandler) Close(c *fiber.Ctx) error {
	sale, err := h.uc.Close(GetActor(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(sale)
}

// AddNote POST /api/sales/:id/notes
func (h *SaleHandler) AddNote(c *fiber.Ctx) error {
	var in dto.AddNoteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	sale, err := h.uc.AddNote(GetActor(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(sale)
}

// AddTask POST /api/sales/:id/tasks
func (h *SaleHandler) AddTask(c *fiber.Ctx) error {
	var in dto.AddTaskRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	sale, err := h.uc.AddTask(GetActor(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(sale)
}

// CompleteTask PUT /api/sales/:id/tasks/:taskId/complete
func (h *SaleHandler) CompleteTask(c *fiber.Ctx) error {
	sale, err := h.uc.CompleteTask(GetActor(c), c.Params("id"), c.Params("taskId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(sale)
}
