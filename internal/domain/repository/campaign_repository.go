package repository

import "github.com/tu-usuario/crm-ventas/internal/domain/entity"

// CampaignRepository define el puerto de persistencia para Campaign.
type CampaignRepository interface {
	Create(campaign *entity.Campaign) error
	GetByID(id string) (*entity.Campaign, error)
	List(createdBy string, limit, offset int) ([]*entity.Campaign, error)
	Update(campaign *entity.Campaign) error
	Delete(id string) error
}
