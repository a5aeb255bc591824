package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// IVARate tasa de IVA fija (16%).
var IVARate = decimal.NewFromFloat(0.16)

// Invoice representa una factura emitida a partir de una cotización.
// RFC es una copia del cliente al momento de crear la factura; no se
// resincroniza si el RFC del cliente cambia después (snapshot deliberado).
type Invoice struct {
	ID       string `json:"id"`
	ClientID string `json:"client_id"`
	RFC      string `json:"rfc"`
	QuoteID  string `json:"quote_id"`
	SaleID   string `json:"sale_id,omitempty"` // resuelta por cotización al crear

	NumeroFactura string    `json:"numero_factura"` // único
	FechaFactura  time.Time `json:"fecha_factura"`

	ImporteSinIVA decimal.Decimal `json:"importe_sin_iva"`
	ImporteConIVA decimal.Decimal `json:"importe_con_iva"` // siempre derivado, nunca del cliente

	Pagado      bool            `json:"pagado"`
	FechaPago   *time.Time      `json:"fecha_pago,omitempty"`
	ImportePago decimal.Decimal `json:"importe_pago"`

	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ComputeIVA deriva el importe con IVA a partir del importe sin IVA:
// importe × 1.16, redondeado a 2 decimales.
func ComputeIVA(importeSinIVA decimal.Decimal) decimal.Decimal {
	return importeSinIVA.Mul(decimal.NewFromInt(1).Add(IVARate)).Round(2)
}
