package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/crm-ventas/internal/application/dto"
	"github.com/tu-usuario/crm-ventas/internal/application/usecase"
)

// CampaignHandler expone las campañas publicitarias de los clientes.
type CampaignHandler struct {
	uc *usecase.CampaignUseCase
}

func NewCampaignHandler(uc *usecase.CampaignUseCase) *CampaignHandler {
	return &CampaignHandler{uc: uc}
}

// Create POST /api/campaigns
func (h *CampaignHandler) Create(c *fiber.Ctx) error {
	var in dto.CampaignPayload
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	campaign, err := h.uc.Create(GetActor(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(campaign)
}

// List GET /api/campaigns
func (h *CampaignHandler) List(c *fiber.Ctx) error {
	campaigns, err := h.uc.List(GetActor(c), parsePage(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(campaigns)
}

// GetByID GET /api/campaigns/:id
func (h *CampaignHandler) GetByID(c *fiber.Ctx) error {
	campaign, err := h.uc.GetByID(GetActor(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(campaign)
}

// Update PUT /api/campaigns/:id
func (h *CampaignHandler) Update(c *fiber.Ctx) error {
	var in dto.CampaignPayload
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	campaign, err := h.uc.Update(GetActor(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(campaign)
}

// Delete DELETE /api/campaigns/:id
func (h *CampaignHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetActor(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
