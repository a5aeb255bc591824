package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateInvoiceRequest body para POST /api/invoices.
// El importe con IVA no se acepta del cliente: se deriva del importe sin IVA.
// El RFC tampoco viene en el body: se copia del cliente al momento de crear.
type CreateInvoiceRequest struct {
	ClientID      string          `json:"client_id"`
	QuoteID       string          `json:"quote_id"`
	NumeroFactura string          `json:"numero_factura"`
	FechaFactura  time.Time       `json:"fecha_factura"`
	ImporteSinIVA decimal.Decimal `json:"importe_sin_iva"`
	Pagado        bool            `json:"pagado"`
	FechaPago     *time.Time      `json:"fecha_pago,omitempty"`
	ImportePago   decimal.Decimal `json:"importe_pago"`
}

// UpdateInvoiceRequest body para PUT /api/invoices/:id.
// Al cambiar ImporteSinIVA el importe con IVA se rederiva con la misma regla
// que en la creación.
type UpdateInvoiceRequest struct {
	NumeroFactura string           `json:"numero_factura,omitempty"`
	FechaFactura  *time.Time       `json:"fecha_factura,omitempty"`
	ImporteSinIVA *decimal.Decimal `json:"importe_sin_iva,omitempty"`
	Pagado        *bool            `json:"pagado,omitempty"`
	FechaPago     *time.Time       `json:"fecha_pago,omitempty"`
	ImportePago   *decimal.Decimal `json:"importe_pago,omitempty"`
}
