package repository

import "github.com/tu-usuario/crm-ventas/internal/domain/entity"

// InvoiceRepository define el puerto de persistencia para Invoice.
type InvoiceRepository interface {
	Create(invoice *entity.Invoice) error
	GetByID(id string) (*entity.Invoice, error)
	List(createdBy string, limit, offset int) ([]*entity.Invoice, error)
	Update(invoice *entity.Invoice) error
	Delete(id string) error
}
