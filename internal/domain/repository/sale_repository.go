package repository

import "github.com/tu-usuario/crm-ventas/internal/domain/entity"

// SaleRepository define el puerto de persistencia para Sale.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	GetByID(id string) (*entity.Sale, error)
	// GetByQuoteID busca la venta originada por una cotización (nil si no hay).
	GetByQuoteID(quoteID string) (*entity.Sale, error)
	List(assignedTo string, limit, offset int) ([]*entity.Sale, error)
	Update(sale *entity.Sale) error
}
