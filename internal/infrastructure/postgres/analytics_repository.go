package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/crm-ventas/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura para dashboard y reportes.
// Todas las consultas aceptan un filtro de propietario: cadena vacía agrega
// sobre todos los registros (vista OWNER), no vacía restringe (vista WORKER).
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// CountClients cuenta los clientes visibles.
func (r *AnalyticsRepo) CountClients(ctx context.Context, assignedTo string) (int64, error) {
	return r.count(ctx,
		`SELECT COUNT(*) FROM clients WHERE ($1 = '' OR assigned_to = $1)`, assignedTo)
}

// CountActiveClients cuenta los clientes con cliente_activo = true.
func (r *AnalyticsRepo) CountActiveClients(ctx context.Context, assignedTo string) (int64, error) {
	return r.count(ctx,
		`SELECT COUNT(*) FROM clients WHERE cliente_activo AND ($1 = '' OR assigned_to = $1)`, assignedTo)
}

// CountClientsCreatedSince cuenta clientes creados desde la fecha dada.
func (r *AnalyticsRepo) CountClientsCreatedSince(ctx context.Context, assignedTo string, since time.Time) (int64, error) {
	return r.count(ctx,
		`SELECT COUNT(*) FROM clients WHERE created_at >= $2 AND ($1 = '' OR assigned_to = $1)`,
		assignedTo, since)
}

// CountQuotes cuenta las cotizaciones visibles.
func (r *AnalyticsRepo) CountQuotes(ctx context.Context, createdBy string) (int64, error) {
	return r.count(ctx,
		`SELECT COUNT(*) FROM quotes WHERE ($1 = '' OR created_by = $1)`, createdBy)
}

// CountQuotesCreatedSince cuenta cotizaciones creadas desde la fecha dada.
func (r *AnalyticsRepo) CountQuotesCreatedSince(ctx context.Context, createdBy string, since time.Time) (int64, error) {
	return r.count(ctx,
		`SELECT COUNT(*) FROM quotes WHERE created_at >= $2 AND ($1 = '' OR created_by = $1)`,
		createdBy, since)
}

func (r *AnalyticsRepo) count(ctx context.Context, query string, args ...any) (int64, error) {
	var n int64
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("analytics count: %w", err)
	}
	return n, nil
}

// CountSalesByStage devuelve el conteo de ventas por etapa del pipeline.
// Las etapas sin ventas no aparecen en el mapa.
func (r *AnalyticsRepo) CountSalesByStage(ctx context.Context, assignedTo string) (map[string]int64, error) {
	const query = `
		SELECT pipeline_stage, COUNT(*)
		FROM sales
		WHERE ($1 = '' OR assigned_to = $1)
		GROUP BY pipeline_stage`
	rows, err := r.pool.Query(ctx, query, assignedTo)
	if err != nil {
		return nil, fmt.Errorf("analytics.CountSalesByStage: %w", err)
	}
	defer rows.Close()

	out := map[string]int64{}
	for rows.Next() {
		var stage string
		var n int64
		if err := rows.Scan(&stage, &n); err != nil {
			return nil, fmt.Errorf("analytics.CountSalesByStage scan: %w", err)
		}
		out[stage] = n
	}
	return out, rows.Err()
}

// SumInvoicesByPaid suma importe_con_iva de facturas pagadas o pendientes.
// Usa COALESCE para devolver cero si no hay filas.
func (r *AnalyticsRepo) SumInvoicesByPaid(ctx context.Context, createdBy string, pagado bool) (decimal.Decimal, error) {
	const query = `
		SELECT COALESCE(SUM(importe_con_iva), 0)
		FROM invoices
		WHERE pagado = $2 AND ($1 = '' OR created_by = $1)`
	var total decimal.Decimal
	if err := r.pool.QueryRow(ctx, query, createdBy, pagado).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("analytics.SumInvoicesByPaid: %w", err)
	}
	return total, nil
}

// ListProjections lista las ventas en etapa propuesta con el total cotizado.
func (r *AnalyticsRepo) ListProjections(ctx context.Context, assignedTo string) ([]repository.ProjectionRow, error) {
	const query = `
		SELECT s.id, s.client_id, c.nombre_comercial, q.id, q.folio, q.total, s.assigned_to
		FROM sales s
		JOIN clients c ON c.id = s.client_id
		JOIN quotes  q ON q.id = s.quote_id
		WHERE s.pipeline_stage = 'propuesta'
		  AND ($1 = '' OR s.assigned_to = $1)
		ORDER BY q.total DESC`
	rows, err := r.pool.Query(ctx, query, assignedTo)
	if err != nil {
		return nil, fmt.Errorf("analytics.ListProjections: %w", err)
	}
	defer rows.Close()

	var results []repository.ProjectionRow
	for rows.Next() {
		var row repository.ProjectionRow
		if err := rows.Scan(
			&row.SaleID, &row.ClientID, &row.NombreComercial,
			&row.QuoteID, &row.Folio, &row.QuoteTotal, &row.AssignedTo,
		); err != nil {
			return nil, fmt.Errorf("analytics.ListProjections scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// SumTarifasByFormato expande el JSONB de tarifas de cada cotización y agrupa
// los totales de línea por formato del espacio. Las líneas sin formato se
// consolidan en "Sin formato".
func (r *AnalyticsRepo) SumTarifasByFormato(ctx context.Context, createdBy string) ([]repository.FormatoTotal, error) {
	const query = `
		SELECT
		    COALESCE(NULLIF(t->>'formato', ''), 'Sin formato')        AS formato,
		    SUM((t->>'total_linea')::NUMERIC)                         AS total,
		    COUNT(*)                                                  AS lineas
		FROM quotes q, jsonb_array_elements(q.tarifas) AS t
		WHERE ($1 = '' OR q.created_by = $1)
		GROUP BY 1
		ORDER BY total DESC`
	rows, err := r.pool.Query(ctx, query, createdBy)
	if err != nil {
		return nil, fmt.Errorf("analytics.SumTarifasByFormato: %w", err)
	}
	defer rows.Close()

	var results []repository.FormatoTotal
	for rows.Next() {
		var row repository.FormatoTotal
		if err := rows.Scan(&row.Formato, &row.Total, &row.Lineas); err != nil {
			return nil, fmt.Errorf("analytics.SumTarifasByFormato scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// ListActivaciones lista las activaciones de marca activas en cotizaciones.
func (r *AnalyticsRepo) ListActivaciones(ctx context.Context, createdBy string) ([]repository.ActivacionRow, error) {
	const query = `
		SELECT q.id, q.folio, c.nombre_comercial,
		       COALESCE((q.activacion->>'cantidad')::INT, 0),
		       COALESCE((q.activacion->>'costo')::NUMERIC, 0),
		       q.activacion->'fechas'
		FROM quotes q
		JOIN clients c ON c.id = q.client_id
		WHERE (q.activacion->>'activo')::BOOLEAN
		  AND ($1 = '' OR q.created_by = $1)
		ORDER BY q.folio`
	rows, err := r.pool.Query(ctx, query, createdBy)
	if err != nil {
		return nil, fmt.Errorf("analytics.ListActivaciones: %w", err)
	}
	defer rows.Close()

	var results []repository.ActivacionRow
	for rows.Next() {
		var row repository.ActivacionRow
		if err := rows.Scan(
			&row.QuoteID, &row.Folio, &row.NombreComercial,
			&row.Cantidad, &row.Costo, &row.Fechas,
		); err != nil {
			return nil, fmt.Errorf("analytics.ListActivaciones scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// ListSalesForReport devuelve las filas desnormalizadas del reporte de ventas.
// Los filtros vacíos (o fechas en cero) no restringen.
func (r *AnalyticsRepo) ListSalesForReport(ctx context.Context, f repository.SalesReportFilter) ([]repository.SalesReportRow, error) {
	const query = `
		SELECT s.id, c.nombre_comercial, c.tipo_cliente, COALESCE(u.name, 'Desconocido'),
		       s.pipeline_stage, COALESCE(q.folio, 0), COALESCE(q.total, 0), s.paid, s.created_at
		FROM sales s
		JOIN clients c ON c.id = s.client_id
		LEFT JOIN quotes q ON q.id = s.quote_id
		LEFT JOIN users  u ON u.id = s.assigned_to
		WHERE ($1 = '' OR s.client_id = $1)
		  AND ($2 = '' OR s.assigned_to = $2)
		  AND ($3::TIMESTAMPTZ IS NULL OR s.created_at >= $3)
		  AND ($4::TIMESTAMPTZ IS NULL OR s.created_at <= $4)
		ORDER BY s.created_at DESC`

	var inicio, fin *time.Time
	if !f.FechaInicio.IsZero() {
		inicio = &f.FechaInicio
	}
	if !f.FechaFin.IsZero() {
		fin = &f.FechaFin
	}

	rows, err := r.pool.Query(ctx, query, f.ClientID, f.AssignedTo, inicio, fin)
	if err != nil {
		return nil, fmt.Errorf("analytics.ListSalesForReport: %w", err)
	}
	defer rows.Close()

	var results []repository.SalesReportRow
	for rows.Next() {
		var row repository.SalesReportRow
		if err := rows.Scan(
			&row.SaleID, &row.NombreComercial, &row.TipoCliente, &row.EjecutivoNombre,
			&row.PipelineStage, &row.Folio, &row.QuoteTotal, &row.Paid, &row.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("analytics.ListSalesForReport scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
