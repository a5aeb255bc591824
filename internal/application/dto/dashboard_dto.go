package dto

import "github.com/shopspring/decimal"

// OverviewDTO tarjetas principales del dashboard.
type OverviewDTO struct {
	TotalClientes     int64           `json:"total_clientes"`
	VentasCerradas    int64           `json:"ventas_cerradas"`
	TotalFacturado    decimal.Decimal `json:"total_facturado"`
	TotalPendiente    decimal.Decimal `json:"total_pendiente"`
	TotalCotizaciones int64           `json:"total_cotizaciones"`
}

// PipelineDTO conteo de ventas por etapa del pipeline.
type PipelineDTO struct {
	Prospeccion  int64 `json:"prospeccion"`
	Presentacion int64 `json:"presentacion"`
	Propuesta    int64 `json:"propuesta"`
	Cierre       int64 `json:"cierre"`
}

// BillingDTO facturación pagada vs pendiente.
type BillingDTO struct {
	Pagado    decimal.Decimal `json:"pagado"`
	Pendiente decimal.Decimal `json:"pendiente"`
}

// ClientsWidgetDTO clientes activos y nuevos del mes.
type ClientsWidgetDTO struct {
	Activos   int64 `json:"activos"`
	NuevosMes int64 `json:"nuevos_mes"`
}

// QuotesWidgetDTO cotizaciones creadas en el mes en curso.
type QuotesWidgetDTO struct {
	CotizacionesMes int64 `json:"cotizaciones_mes"`
}
