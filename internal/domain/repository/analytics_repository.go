package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// ProjectionRow venta en etapa propuesta con el total de su cotización.
type ProjectionRow struct {
	SaleID          string
	ClientID        string
	NombreComercial string
	QuoteID         string
	Folio           int
	QuoteTotal      decimal.Decimal
	AssignedTo      string
}

// FormatoTotal suma de totales de línea agrupada por formato de tarifa.
type FormatoTotal struct {
	Formato string
	Total   decimal.Decimal
	Lineas  int64
}

// ActivacionRow activación agendada en una cotización.
type ActivacionRow struct {
	QuoteID         string
	Folio           int
	NombreComercial string
	Cantidad        int
	Costo           decimal.Decimal
	Fechas          []time.Time
}

// SalesReportFilter filtros del reporte de ventas. Los campos vacíos no filtran.
// AssignedTo se usa tanto para la vista WORKER como para el filtro por
// ejecutivo del OWNER.
type SalesReportFilter struct {
	ClientID    string
	AssignedTo  string
	FechaInicio time.Time
	FechaFin    time.Time
}

// SalesReportRow fila del reporte de ventas con datos desnormalizados.
type SalesReportRow struct {
	SaleID          string
	NombreComercial string
	TipoCliente     string
	EjecutivoNombre string
	PipelineStage   string
	Folio           int
	QuoteTotal      decimal.Decimal
	Paid            bool
	CreatedAt       time.Time
}

// AnalyticsRepository consultas de solo lectura para dashboard y reportes.
// Los parámetros assignedTo/createdBy vacíos consultan todos los registros
// (vista OWNER); no vacíos restringen a ese usuario (vista WORKER).
type AnalyticsRepository interface {
	CountClients(ctx context.Context, assignedTo string) (int64, error)
	CountActiveClients(ctx context.Context, assignedTo string) (int64, error)
	CountClientsCreatedSince(ctx context.Context, assignedTo string, since time.Time) (int64, error)

	CountQuotes(ctx context.Context, createdBy string) (int64, error)
	CountQuotesCreatedSince(ctx context.Context, createdBy string, since time.Time) (int64, error)

	// CountSalesByStage devuelve el conteo de ventas por etapa del pipeline.
	CountSalesByStage(ctx context.Context, assignedTo string) (map[string]int64, error)

	// SumInvoicesByPaid suma importe_con_iva de facturas pagadas o pendientes.
	SumInvoicesByPaid(ctx context.Context, createdBy string, pagado bool) (decimal.Decimal, error)

	ListProjections(ctx context.Context, assignedTo string) ([]ProjectionRow, error)
	SumTarifasByFormato(ctx context.Context, createdBy string) ([]FormatoTotal, error)
	ListActivaciones(ctx context.Context, createdBy string) ([]ActivacionRow, error)
	ListSalesForReport(ctx context.Context, f SalesReportFilter) ([]SalesReportRow, error)
}
