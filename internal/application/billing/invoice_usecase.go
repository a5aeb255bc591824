package billing

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/crm-ventas/internal/application/dto"
	"github.com/tu-usuario/crm-ventas/internal/domain"
	"github.com/tu-usuario/crm-ventas/internal/domain/entity"
	"github.com/tu-usuario/crm-ventas/internal/domain/repository"
)

// InvoiceUseCase crea y mantiene facturas. El importe con IVA siempre se
// deriva en servidor y el pago se propaga a la venta de la cotización en la
// misma transacción.
type InvoiceUseCase struct {
	txRunner    BillingTxRunner
	invoiceRepo repository.InvoiceRepository
	clientRepo  repository.ClientRepository
	quoteRepo   repository.QuoteRepository
	saleRepo    repository.SaleRepository
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(
	txRunner BillingTxRunner,
	invoiceRepo repository.InvoiceRepository,
	clientRepo repository.ClientRepository,
	quoteRepo repository.QuoteRepository,
	saleRepo repository.SaleRepository,
) *InvoiceUseCase {
	return &InvoiceUseCase{
		txRunner:    txRunner,
		invoiceRepo: invoiceRepo,
		clientRepo:  clientRepo,
		quoteRepo:   quoteRepo,
		saleRepo:    saleRepo,
	}
}

// Create crea una factura. El RFC se copia del cliente (snapshot), el importe
// con IVA se deriva del importe sin IVA y, si llega pagada, la venta ligada a
// la cotización se marca pagada en la misma transacción.
func (uc *InvoiceUseCase) Create(actor entity.Actor, in dto.CreateInvoiceRequest) (*entity.Invoice, error) {
	if in.ClientID == "" || in.QuoteID == "" || in.NumeroFactura == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.ImporteSinIVA.LessThan(decimal.Zero) {
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
	quote, err := uc.quoteRepo.GetByID(in.QuoteID)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	fechaFactura := in.FechaFactura
	if fechaFactura.IsZero() {
		fechaFactura = now
	}

	invoice := &entity.Invoice{
		ID:            uuid.New().String(),
		ClientID:      client.ID,
		RFC:           client.RFC,
		QuoteID:       quote.ID,
		NumeroFactura: in.NumeroFactura,
		FechaFactura:  fechaFactura,
		ImporteSinIVA: in.ImporteSinIVA,
		ImporteConIVA: entity.ComputeIVA(in.ImporteSinIVA),
		ImportePago:   in.ImportePago,
		CreatedBy:     actor.UserID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	err = uc.txRunner.RunBilling(func(invoiceRepo repository.InvoiceRepository, saleRepo repository.SaleRepository) error {
		sale, err := saleRepo.GetByQuoteID(quote.ID)
		if err != nil {
			return err
		}
		if sale != nil {
			invoice.SaleID = sale.ID
		}
		if in.Pagado {
			var fechaPago time.Time
			if in.FechaPago != nil {
				fechaPago = *in.FechaPago
			}
			invoice.Pagado = true
			pagadoEn := fechaPago
			if pagadoEn.IsZero() {
				pagadoEn = now
			}
			invoice.FechaPago = &pagadoEn
			if sale != nil {
				sale.MarkPaid(fechaPago, now)
				sale.UpdatedAt = now
				if err := saleRepo.Update(sale); err != nil {
					return err
				}
			}
		}
		return invoiceRepo.Create(invoice)
	})
	if err != nil {
		return nil, err
	}
	return invoice, nil
}

// List lista las facturas visibles: todas para OWNER, propias para WORKER.
func (uc *InvoiceUseCase) List(actor entity.Actor, page dto.PageRequest) ([]*entity.Invoice, error) {
	page.DefaultPage()
	createdBy := ""
	if !actor.IsOwner() {
		createdBy = actor.UserID
	}
	return uc.invoiceRepo.List(createdBy, page.Limit, page.Offset)
}

// GetByID obtiene una factura verificando existencia antes que propiedad.
func (uc *InvoiceUseCase) GetByID(actor entity.Actor, id string) (*entity.Invoice, error) {
	invoice, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, domain.ErrNotFound
	}
	if !actor.CanAccess(invoice.CreatedBy) {
		return nil, domain.ErrForbidden
	}
	return invoice, nil
}

// Update actualiza una factura. Cliente, cotización y RFC del snapshot son
// inmutables; cambiar el importe sin IVA rederiva el importe con IVA, y pasar
// a pagada propaga el pago a la venta en la misma transacción.
func (uc *InvoiceUseCase) Update(actor entity.Actor, id string, in dto.UpdateInvoiceRequest) (*entity.Invoice, error) {
	invoice, err := uc.GetByID(actor, id)
	if err != nil {
		return nil, err
	}

	if in.NumeroFactura != "" {
		invoice.NumeroFactura = in.NumeroFactura
	}
	if in.FechaFactura != nil {
		invoice.FechaFactura = *in.FechaFactura
	}
	if in.ImporteSinIVA != nil {
		if in.ImporteSinIVA.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		invoice.ImporteSinIVA = *in.ImporteSinIVA
		invoice.ImporteConIVA = entity.ComputeIVA(*in.ImporteSinIVA)
	}
	if in.ImportePago != nil {
		invoice.ImportePago = *in.ImportePago
	}
	if in.FechaPago != nil {
		invoice.FechaPago = in.FechaPago
	}

	now := time.Now()
	becamePaid := in.Pagado != nil && *in.Pagado && !invoice.Pagado
	if in.Pagado != nil {
		invoice.Pagado = *in.Pagado
		if *in.Pagado && invoice.FechaPago == nil {
			invoice.FechaPago = &now
		}
	}
	invoice.UpdatedAt = now

	err = uc.txRunner.RunBilling(func(invoiceRepo repository.InvoiceRepository, saleRepo repository.SaleRepository) error {
		if becamePaid {
			sale, err := saleRepo.GetByQuoteID(invoice.QuoteID)
			if err != nil {
				return err
			}
			if sale != nil {
				var fechaPago time.Time
				if invoice.FechaPago != nil {
					fechaPago = *invoice.FechaPago
				}
				sale.MarkPaid(fechaPago, now)
				sale.UpdatedAt = now
				if err := saleRepo.Update(sale); err != nil {
					return err
				}
			}
		}
		return invoiceRepo.Update(invoice)
	})
	if err != nil {
		return nil, err
	}
	return invoice, nil
}

// Delete elimina una factura. Solo OWNER; no revierte pagos ya propagados.
func (uc *InvoiceUseCase) Delete(actor entity.Actor, id string) error {
	if !actor.IsOwner() {
		return domain.ErrForbidden
	}
	invoice, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return err
	}
	if invoice == nil {
		return domain.ErrNotFound
	}
	return uc.invoiceRepo.Delete(id)
}
