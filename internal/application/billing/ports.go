package billing

import (
	"context"

	"github.com/tu-usuario/crm-ventas/internal/domain/entity"
	"github.com/tu-usuario/crm-ventas/internal/domain/repository"
)

// BillingTxRunner ejecuta una función con repositorios de facturas y ventas
// ligados a una transacción. Crear la factura y propagar el pago a la venta
// deben ser atómicos: o ambos quedan, o ninguno.
type BillingTxRunner interface {
	RunBilling(fn func(
		invoiceRepo repository.InvoiceRepository,
		saleRepo repository.SaleRepository,
	) error) error
}

// QuotePDFGenerator genera la propuesta comercial (PDF) de una cotización.
type QuotePDFGenerator interface {
	GenerateQuotePDF(ctx context.Context, quote *entity.Quote, client *entity.Client) ([]byte, error)
}
