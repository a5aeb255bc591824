package repository

import "github.com/tu-usuario/crm-ventas/internal/domain/entity"

// PostSaleRepository define el puerto de persistencia para PostSale.
type PostSaleRepository interface {
	Create(ps *entity.PostSale) error
	GetByID(id string) (*entity.PostSale, error)
	List(assignedTo string, limit, offset int) ([]*entity.PostSale, error)
	Update(ps *entity.PostSale) error
	Delete(id string) error
}
