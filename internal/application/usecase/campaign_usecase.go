package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/crm-ventas/internal/application/dto"
	"github.com/tu-usuario/crm-ventas/internal/domain"
	"github.com/tu-usuario/crm-ventas/internal/domain/entity"
	"github.com/tu-usuario/crm-ventas/internal/domain/repository"
)

// CampaignUseCase casos de uso de campañas publicitarias.
type CampaignUseCase struct {
	campaignRepo repository.CampaignRepository
	clientRepo   repository.ClientRepository
}

// NewCampaignUseCase construye el caso de uso.
func NewCampaignUseCase(campaignRepo repository.CampaignRepository, clientRepo repository.ClientRepository) *CampaignUseCase {
	return &CampaignUseCase{campaignRepo: campaignRepo, clientRepo: clientRepo}
}

// Create crea una campaña. Cliente y nombre son obligatorios; sin estado
// explícito arranca como planificada.
func (uc *CampaignUseCase) Create(actor entity.Actor, in dto.CampaignPayload) (*entity.Campaign, error) {
	if in.ClientID == "" || in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Status != "" && !isValidCampaignStatus(in.Status) {
		return nil, domain.ErrInvalidInput
	}
	client, err := uc.clientRepo.GetByID(in.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	if !actor.CanAccess(client.AssignedTo) {
		return nil, domain.ErrForbidden
	}

	status := in.Status
	if status == "" {
		status = entity.CampaignPlanificada
	}

	now := time.Now()
	campaign := &entity.Campaign{
		ID:           uuid.New().String(),
		ClientID:     in.ClientID,
		SaleID:       in.SaleID,
		QuoteID:      in.QuoteID,
		Nombre:       in.Nombre,
		Descripcion:  in.Descripcion,
		FechaInicio:  in.FechaInicio,
		FechaFin:     in.FechaFin,
		Espacios:     in.Espacios,
		Status:       status,
		Formatos:     in.Formatos,
		Periodicidad: in.Periodicidad,
		Cortesias:    in.Cortesias,
		CreatedBy:    actor.UserID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.campaignRepo.Create(campaign); err != nil {
		return nil, err
	}
	return campaign, nil
}

// List lista las campañas visibles: todas para OWNER, propias para WORKER.
func (uc *CampaignUseCase) List(actor entity.Actor, page dto.PageRequest) ([]*entity.Campaign, error) {
	page.DefaultPage()
	return uc.campaignRepo.List(ownershipFilter(actor), page.Limit, page.Offset)
}

// GetByID obtiene una campaña verificando existencia antes que propiedad.
func (uc *CampaignUseCase) GetByID(actor entity.Actor, id string) (*entity.Campaign, error) {
	campaign, err := uc.campaignRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, domain.ErrNotFound
	}
	if !actor.CanAccess(campaign.CreatedBy) {
		return nil, domain.ErrForbidden
	}
	return campaign, nil
}

// Update actualiza una campaña. El cliente de origen es inmutable.
func (uc *CampaignUseCase) Update(actor entity.Actor, id string, in dto.CampaignPayload) (*entity.Campaign, error) {
	campaign, err := uc.GetByID(actor, id)
	if err != nil {
		return nil, err
	}
	if in.Status != "" && !isValidCampaignStatus(in.Status) {
		return nil, domain.ErrInvalidInput
	}

	if in.Nombre != "" {
		campaign.Nombre = in.Nombre
	}
	campaign.SaleID = in.SaleID
	campaign.QuoteID = in.QuoteID
	campaign.Descripcion = in.Descripcion
	campaign.FechaInicio = in.FechaInicio
	campaign.FechaFin = in.FechaFin
	campaign.Espacios = in.Espacios
	if in.Status != "" {
		campaign.Status = in.Status
	}
	campaign.Formatos = in.Formatos
	campaign.Periodicidad = in.Periodicidad
	campaign.Cortesias = in.Cortesias
	campaign.UpdatedAt = time.Now()

	if err := uc.campaignRepo.Update(campaign); err != nil {
		return nil, err
	}
	return campaign, nil
}

// Delete elimina una campaña. Solo OWNER.
func (uc *CampaignUseCase) Delete(actor entity.Actor, id string) error {
	if !actor.IsOwner() {
		return domain.ErrForbidden
	}
	campaign, err := uc.campaignRepo.GetByID(id)
	if err != nil {
		return err
	}
	if campaign == nil {
		return domain.ErrNotFound
	}
	return uc.campaignRepo.Delete(id)
}

func isValidCampaignStatus(status string) bool {
	switch status {
	case entity.CampaignPlanificada, entity.CampaignEnCurso, entity.CampaignFinalizada, entity.CampaignCancelada:
		return true
	}
	return false
}
