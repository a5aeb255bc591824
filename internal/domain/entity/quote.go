package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de aprobación de una cotización.
const (
	QuoteStatusPendiente = "pendiente"
	QuoteStatusAprobado  = "aprobado"
	QuoteStatusRechazado = "rechazado"
)

// Acciones válidas para el ajuste de precios.
const (
	AjusteNinguno  = "Ninguno"
	AjusteAumentar = "Aumentar"
	AjusteReducir  = "Reducir"
)

// Estados de facturación de la cotización.
const (
	FacturacionFacturado   = "facturado"
	FacturacionPorFacturar = "por_facturar"
)

// Tarifa línea de tarifa de la cotización: espacio publicitario con periodicidad.
type Tarifa struct {
	Periodicidad int             `json:"periodicidad"` // número de inserciones
	Formato      string          `json:"formato,omitempty"`
	Costo        decimal.Decimal `json:"costo"`
	Fechas       []time.Time     `json:"fechas,omitempty"` // Fecha 1 ... Fecha 5
	TotalLinea   decimal.Decimal `json:"total_linea"`      // periodicidad × costo, siempre recalculado
}

// Activacion activación de marca (BTL) dentro de la cotización.
type Activacion struct {
	Activo             bool            `json:"activo"`
	Cantidad           int             `json:"cantidad"`
	Costo              decimal.Decimal `json:"costo"`
	Tipo               string          `json:"tipo,omitempty"`
	Fechas             []time.Time     `json:"fechas,omitempty"`
	PuntosDistribucion string          `json:"puntos_distribucion,omitempty"`
}

// DesarrolloInformativo inserción informativa (no suma al total).
type DesarrolloInformativo struct {
	Activo  bool       `json:"activo"`
	Fecha   *time.Time `json:"fecha,omitempty"`
	Formato string     `json:"formato,omitempty"`
}

// PosteoRedes posteo en redes sociales (no suma al total).
type PosteoRedes struct {
	Activo   bool        `json:"activo"`
	Cantidad int         `json:"cantidad"`
	Fechas   []time.Time `json:"fechas,omitempty"`
}

// Fajillas fajillas publicitarias (sí suman al total cuando están activas).
type Fajillas struct {
	Activo             bool            `json:"activo"`
	Cantidad           int             `json:"cantidad"`
	Precio             decimal.Decimal `json:"precio"`
	PuntosDistribucion string          `json:"puntos_distribucion,omitempty"`
}

// Intercambio convenio de intercambio (pago parcial en especie).
type Intercambio struct {
	Activo             bool            `json:"activo"`
	PorcentajeEfectivo decimal.Decimal `json:"porcentaje_efectivo"`
	PorcentajeEspecie  decimal.Decimal `json:"porcentaje_especie"`
	Ofrecemos          string          `json:"ofrecemos,omitempty"`
	NosOfrecen         string          `json:"nos_ofrecen,omitempty"`
}

// Cortesias inserciones de cortesía (no suman al total).
type Cortesias struct {
	Activo   bool        `json:"activo"`
	Cantidad int         `json:"cantidad"`
	Fechas   []time.Time `json:"fechas,omitempty"`
}

// AjustePrecios ajuste final sobre el subtotal: porcentaje o monto absoluto,
// con acción Aumentar/Reducir. El porcentaje tiene precedencia si ambos vienen.
type AjustePrecios struct {
	PorcentajeAjuste decimal.Decimal `json:"porcentaje_ajuste"`
	ValorAjuste      decimal.Decimal `json:"valor_ajuste"`
	TipoAccion       string          `json:"tipo_accion"` // Aumentar | Reducir | Ninguno
}

// Quote representa una cotización de espacios publicitarios.
// El folio es consecutivo global, inmutable una vez asignado.
// El total siempre es el recalculado por pricing.Calculate, nunca el que envíe el cliente.
type Quote struct {
	ID        string `json:"id"`
	Folio     int    `json:"folio"`
	ClientID  string `json:"client_id"`
	CreatedBy string `json:"created_by"`

	Tarifas  []Tarifa `json:"tarifas"`
	Duracion string   `json:"duracion,omitempty"`

	Activacion            Activacion            `json:"activacion"`
	DesarrolloInformativo DesarrolloInformativo `json:"desarrollo_informativo"`
	PosteoRedesSociales   PosteoRedes           `json:"posteo_redes_sociales"`
	Fajillas              Fajillas              `json:"fajillas"`
	Intercambio           Intercambio           `json:"intercambio"`
	Cortesias             Cortesias             `json:"cortesias"`

	FormaPago         string `json:"forma_pago,omitempty"` // EFECTIVO, TRANSFERENCIA, TARJETA...
	UsoCFDI           string `json:"uso_cfdi,omitempty"`   // G01, G03, P01...
	FacturacionEstado string `json:"facturacion_estado"`   // facturado | por_facturar
	EstadoCliente     string `json:"estado_cliente,omitempty"`

	AjustesPrecios AjustePrecios   `json:"ajustes_precios"`
	Total          decimal.Decimal `json:"total"`

	Status     string     `json:"status"` // pendiente | aprobado | rechazado
	ApprovedBy string     `json:"approved_by,omitempty"`
	ApprovedAt *time.Time `json:"approved_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
