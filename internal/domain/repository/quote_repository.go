package repository

import "github.com/tu-usuario/crm-ventas/internal/domain/entity"

// QuoteRepository define el puerto de persistencia para Quote.
type QuoteRepository interface {
	// NextFolio reserva el siguiente folio consecutivo: max(folio)+1, o 1 si no
	// hay cotizaciones. Debe llamarse dentro de la misma transacción que Create
	// para que dos creaciones concurrentes no observen el mismo máximo.
	NextFolio() (int, error)
	Create(quote *entity.Quote) error
	GetByID(id string) (*entity.Quote, error)
	List(createdBy string, limit, offset int) ([]*entity.Quote, error)
	Update(quote *entity.Quote) error
	Delete(id string) error
}
