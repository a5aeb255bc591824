package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/crm-ventas/internal/application/dto"
	"github.com/tu-usuario/crm-ventas/internal/domain"
	"github.com/tu-usuario/crm-ventas/internal/domain/entity"
	"github.com/tu-usuario/crm-ventas/internal/domain/pricing"
	"github.com/tu-usuario/crm-ventas/internal/domain/repository"
)

// QuoteUseCase casos de uso de cotizaciones: folio consecutivo, total
// recalculado en servidor y flujo de aprobación reservado al OWNER.
type QuoteUseCase struct {
	txRunner   QuoteTxRunner
	quoteRepo  repository.QuoteRepository
	clientRepo repository.ClientRepository
}

// NewQuoteUseCase construye el caso de uso.
func NewQuoteUseCase(txRunner QuoteTxRunner, quoteRepo repository.QuoteRepository, clientRepo repository.ClientRepository) *QuoteUseCase {
	return &QuoteUseCase{txRunner: txRunner, quoteRepo: quoteRepo, clientRepo: clientRepo}
}

// Create crea una cotización en estado pendiente. El folio se reserva y el
// insert se ejecuta en la misma transacción para que dos creaciones
// concurrentes nunca obtengan el mismo consecutivo.
func (uc *QuoteUseCase) Create(actor entity.Actor, in dto.QuotePayload) (*entity.Quote, error) {
	if in.ClientID == "" {
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
	if in.AjustesPrecios.TipoAccion != "" && !isValidAjuste(in.AjustesPrecios.TipoAccion) {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	quote := &entity.Quote{
		ID:                    uuid.New().String(),
		Folio:                 in.Folio,
		ClientID:              in.ClientID,
		CreatedBy:             actor.UserID,
		Tarifas:               in.Tarifas,
		Duracion:              in.Duracion,
		Activacion:            in.Activacion,
		DesarrolloInformativo: in.DesarrolloInformativo,
		PosteoRedesSociales:   in.PosteoRedesSociales,
		Fajillas:              in.Fajillas,
		Intercambio:           in.Intercambio,
		Cortesias:             in.Cortesias,
		FormaPago:             in.FormaPago,
		UsoCFDI:               in.UsoCFDI,
		FacturacionEstado:     in.FacturacionEstado,
		EstadoCliente:         in.EstadoCliente,
		AjustesPrecios:        in.AjustesPrecios,
		Status:                entity.QuoteStatusPendiente,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
	if quote.FacturacionEstado == "" {
		quote.FacturacionEstado = entity.FacturacionPorFacturar
	}
	quote.Total = pricing.Calculate(quote)

	err = uc.txRunner.Run(func(quoteRepo repository.QuoteRepository) error {
		if quote.Folio <= 0 {
			folio, err := quoteRepo.NextFolio()
			if err != nil {
				return err
			}
			quote.Folio = folio
		}
		return quoteRepo.Create(quote)
	})
	if err != nil {
		return nil, err
	}
	return quote, nil
}

// List lista las cotizaciones visibles: todas para OWNER, propias para WORKER.
func (uc *QuoteUseCase) List(actor entity.Actor, page dto.PageRequest) ([]*entity.Quote, error) {
	page.DefaultPage()
	return uc.quoteRepo.List(ownershipFilter(actor), page.Limit, page.Offset)
}

// GetByID obtiene una cotización verificando existencia antes que propiedad.
func (uc *QuoteUseCase) GetByID(actor entity.Actor, id string) (*entity.Quote, error) {
	quote, err := uc.quoteRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, domain.ErrNotFound
	}
	if !actor.CanAccess(quote.CreatedBy) {
		return nil, domain.ErrForbidden
	}
	return quote, nil
}

// Update actualiza una cotización y recalcula el total. El folio es inmutable.
// Un WORKER no puede tocar el estado de aprobación; el OWNER sí, vía payload
// o por los endpoints dedicados de aprobación.
func (uc *QuoteUseCase) Update(actor entity.Actor, id string, in dto.QuotePayload) (*entity.Quote, error) {
	quote, err := uc.quoteRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, domain.ErrNotFound
	}
	if !actor.CanAccess(quote.CreatedBy) {
		return nil, domain.ErrForbidden
	}
	if in.AjustesPrecios.TipoAccion != "" && !isValidAjuste(in.AjustesPrecios.TipoAccion) {
		return nil, domain.ErrInvalidInput
	}

	if in.ClientID != "" && in.ClientID != quote.ClientID {
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
		quote.ClientID = in.ClientID
	}

	quote.Tarifas = in.Tarifas
	quote.Duracion = in.Duracion
	quote.Activacion = in.Activacion
	quote.DesarrolloInformativo = in.DesarrolloInformativo
	quote.PosteoRedesSociales = in.PosteoRedesSociales
	quote.Fajillas = in.Fajillas
	quote.Intercambio = in.Intercambio
	quote.Cortesias = in.Cortesias
	quote.FormaPago = in.FormaPago
	quote.UsoCFDI = in.UsoCFDI
	if in.FacturacionEstado != "" {
		quote.FacturacionEstado = in.FacturacionEstado
	}
	quote.EstadoCliente = in.EstadoCliente
	quote.AjustesPrecios = in.AjustesPrecios
	if actor.IsOwner() && in.Status != "" {
		if !isValidQuoteStatus(in.Status) {
			return nil, domain.ErrInvalidInput
		}
		quote.Status = in.Status
	}
	quote.Total = pricing.Calculate(quote)
	quote.UpdatedAt = time.Now()

	if err := uc.quoteRepo.Update(quote); err != nil {
		return nil, err
	}
	return quote, nil
}

// Approve aprueba una cotización. Exclusivo del OWNER; deja registro de quién
// y cuándo aprobó.
func (uc *QuoteUseCase) Approve(actor entity.Actor, id string) (*entity.Quote, error) {
	return uc.decide(actor, id, entity.QuoteStatusAprobado)
}

// Reject rechaza una cotización. Exclusivo del OWNER.
func (uc *QuoteUseCase) Reject(actor entity.Actor, id string) (*entity.Quote, error) {
	return uc.decide(actor, id, entity.QuoteStatusRechazado)
}

func (uc *QuoteUseCase) decide(actor entity.Actor, id, status string) (*entity.Quote, error) {
	if !actor.IsOwner() {
		return nil, domain.ErrForbidden
	}
	quote, err := uc.quoteRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	quote.Status = status
	quote.ApprovedBy = actor.UserID
	quote.ApprovedAt = &now
	quote.UpdatedAt = now
	if err := uc.quoteRepo.Update(quote); err != nil {
		return nil, err
	}
	return quote, nil
}

// Delete elimina una cotización. Solo OWNER.
func (uc *QuoteUseCase) Delete(actor entity.Actor, id string) error {
	if !actor.IsOwner() {
		return domain.ErrForbidden
	}
	quote, err := uc.quoteRepo.GetByID(id)
	if err != nil {
		return err
	}
	if quote == nil {
		return domain.ErrNotFound
	}
	return uc.quoteRepo.Delete(id)
}

func isValidQuoteStatus(status string) bool {
	switch status {
	case entity.QuoteStatusPendiente, entity.QuoteStatusAprobado, entity.QuoteStatusRechazado:
		return true
	}
	return false
}

func isValidAjuste(accion string) bool {
	switch accion {
	case entity.AjusteNinguno, entity.AjusteAumentar, entity.AjusteReducir:
		return true
	}
	return false
}
