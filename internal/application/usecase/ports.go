package usecase

import "github.com/tu-usuario/crm-ventas/internal/domain/repository"

// QuoteTxRunner ejecuta una función con un repositorio de cotizaciones ligado
// a una transacción. La reserva del folio consecutivo y el insert de la
// cotización deben ocurrir dentro de la misma transacción.
type QuoteTxRunner interface {
	Run(fn func(quoteRepo repository.QuoteRepository) error) error
}
