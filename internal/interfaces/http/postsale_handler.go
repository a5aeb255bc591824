package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/crm-ventas/internal/application/dto"
	"github.com/tu-usuario/crm-ventas/internal/application/usecase"
)

// PostSaleHandler expone el seguimiento postventa de una venta cerrada.
type PostSaleHandler struct {
	uc *usecase.PostSaleUseCase
}

func NewPostSaleHandler(uc *usecase.PostSaleUseCase) *PostSaleHandler {
	return &PostSaleHandler{uc: uc}
}

// Create POST /api/post-sales
func (h *PostSaleHandler) Create(c *fiber.Ctx) error {
	var in dto.PostSalePayload
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	ps, err := h.uc.Create(GetActor(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(ps)
}

// List GET /api/post-sales
func (h *PostSaleHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.List(GetActor(c), parsePage(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(items)
}

// GetByID GET /api/post-sales/:id
func (h *PostSaleHandler) GetByID(c *fiber.Ctx) error {
	ps, err := h.uc.GetByID(GetActor(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(ps)
}

// Update PUT /api/post-sales/:id
func (h *PostSaleHandler) Update(c *fiber.Ctx) error {
	var in dto.PostSalePayload
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	ps, err := h.uc.Update(GetActor(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(ps)
}

// Delete DELETE /api/post-sales/:id
func (h *PostSaleHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetActor(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
