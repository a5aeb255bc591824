package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProjectionsDTO proyección de ingresos: ventas en etapa propuesta.
type ProjectionsDTO struct {
	TotalPropuestas int64           `json:"total_propuestas"`
	TotalPotencial  decimal.Decimal `json:"total_potencial"`
	Propuestas      []ProjectionDTO `json:"propuestas"`
}

// ProjectionDTO una propuesta abierta con el total cotizado.
type ProjectionDTO struct {
	SaleID          string          `json:"sale_id"`
	NombreComercial string          `json:"nombre_comercial"`
	Folio           int             `json:"folio"`
	QuoteTotal      decimal.Decimal `json:"quote_total"`
}

// PublicidadDTO suma de totales de línea por formato de tarifa.
type PublicidadDTO struct {
	Formatos []FormatoTotalDTO `json:"formatos"`
}

// FormatoTotalDTO acumulado por formato.
type FormatoTotalDTO struct {
	Formato string          `json:"formato"`
	Total   decimal.Decimal `json:"total"`
	Lineas  int64           `json:"lineas"`
}

// ActivacionesDTO activaciones agendadas en cotizaciones.
type ActivacionesDTO struct {
	TotalActivaciones int64               `json:"total_activaciones"`
	Activaciones      []ActivacionItemDTO `json:"activaciones"`
}

// ActivacionItemDTO una activación con su folio y cliente.
type ActivacionItemDTO struct {
	Folio    int             `json:"folio"`
	Cliente  string          `json:"cliente"`
	Fechas   []time.Time     `json:"fechas,omitempty"`
	Cantidad int             `json:"cantidad"`
	Costo    decimal.Decimal `json:"costo"`
}

// SalesReportDTO reporte de ventas con agregaciones.
type SalesReportDTO struct {
	Total  int64                `json:"total"`
	Ventas []SalesReportItemDTO `json:"ventas"`
	Stats  SalesReportStatsDTO  `json:"stats"`
}

// SalesReportItemDTO fila del reporte.
type SalesReportItemDTO struct {
	SaleID          string          `json:"sale_id"`
	NombreComercial string          `json:"nombre_comercial"`
	TipoCliente     string          `json:"tipo_cliente,omitempty"`
	Ejecutivo       string          `json:"ejecutivo"`
	PipelineStage   string          `json:"pipeline_stage"`
	Folio           int             `json:"folio,omitempty"`
	QuoteTotal      decimal.Decimal `json:"quote_total"`
	Pagado          bool            `json:"pagado"`
	CreatedAt       time.Time       `json:"created_at"`
}

// SalesReportStatsDTO conteos agrupados del reporte.
type SalesReportStatsDTO struct {
	PorCliente     map[string]int64 `json:"por_cliente"`
	PorEjecutivo   map[string]int64 `json:"por_ejecutivo"`
	PorTipoCliente map[string]int64 `json:"por_tipo_cliente"`
	PorMes         map[string]int64 `json:"por_mes"`
	PorEtapa       map[string]int64 `json:"por_etapa"`
}
