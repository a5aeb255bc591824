package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/crm-ventas/internal/domain"
	"github.com/tu-usuario/crm-ventas/internal/domain/entity"
	"github.com/tu-usuario/crm-ventas/internal/domain/repository"
)

var _ repository.QuoteRepository = (*QuoteRepo)(nil)

// QuoteRepo implementación de QuoteRepository (usable con pool o tx).
// Las secciones de la cotización (tarifas, activación, etc.) van en JSONB.
type QuoteRepo struct {
	q Querier
}

// NewQuoteRepository construye el adaptador. Pasar pool o tx (Querier).
func NewQuoteRepository(q Querier) *QuoteRepo {
	return &QuoteRepo{q: q}
}

const quoteColumns = `id, folio, client_id, created_by, tarifas, duracion, activacion,
	desarrollo_informativo, posteo_redes_sociales, fajillas, intercambio, cortesias,
	forma_pago, uso_cfdi, facturacion_estado, estado_cliente, ajustes_precios, total,
	status, approved_by, approved_at, created_at, updated_at`

// NextFolio reserva el siguiente folio consecutivo. Toma un lock exclusivo de
// la tabla: debe llamarse dentro de la transacción que hace el insert, así dos
// creaciones concurrentes nunca observan el mismo máximo. El índice único
// sobre folio respalda la garantía.
func (r *QuoteRepo) NextFolio() (int, error) {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx, `LOCK TABLE quotes IN EXCLUSIVE MODE`); err != nil {
		return 0, fmt.Errorf("lock quotes: %w", err)
	}
	var folio int
	err := r.q.QueryRow(ctx, `SELECT COALESCE(MAX(folio), 0) + 1 FROM quotes`).Scan(&folio)
	if err != nil {
		return 0, fmt.Errorf("next folio: %w", err)
	}
	return folio, nil
}

// Create persiste una nueva cotización.
func (r *QuoteRepo) Create(quote *entity.Quote) error {
	query := `
		INSERT INTO quotes (` + quoteColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23)`
	_, err := r.q.Exec(context.Background(), query,
		quote.ID, quote.Folio, quote.ClientID, quote.CreatedBy, quote.Tarifas, quote.Duracion,
		quote.Activacion, quote.DesarrolloInformativo, quote.PosteoRedesSociales, quote.Fajillas,
		quote.Intercambio, quote.Cortesias, quote.FormaPago, quote.UsoCFDI, quote.FacturacionEstado,
		quote.EstadoCliente, quote.AjustesPrecios, quote.Total, quote.Status, quote.ApprovedBy,
		quote.ApprovedAt, quote.CreatedAt, quote.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert quote: %w", err)
	}
	return nil
}

// GetByID obtiene una cotización por ID.
func (r *QuoteRepo) GetByID(id string) (*entity.Quote, error) {
	query := `SELECT ` + quoteColumns + ` FROM quotes WHERE id = $1`
	var q entity.Quote
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&q.ID, &q.Folio, &q.ClientID, &q.CreatedBy, &q.Tarifas, &q.Duracion,
		&q.Activacion, &q.DesarrolloInformativo, &q.PosteoRedesSociales, &q.Fajillas,
		&q.Intercambio, &q.Cortesias, &q.FormaPago, &q.UsoCFDI, &q.FacturacionEstado,
		&q.EstadoCliente, &q.AjustesPrecios, &q.Total, &q.Status, &q.ApprovedBy,
		&q.ApprovedAt, &q.CreatedAt, &q.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get quote: %w", err)
	}
	return &q, nil
}

// List lista cotizaciones con paginación. createdBy vacío lista todas (OWNER).
func (r *QuoteRepo) List(createdBy string, limit, offset int) ([]*entity.Quote, error) {
	query := `SELECT ` + quoteColumns + ` FROM quotes
		WHERE ($1 = '' OR created_by = $1)
		ORDER BY folio DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, createdBy, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list quotes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Quote
	for rows.Next() {
		var q entity.Quote
		if err := rows.Scan(
			&q.ID, &q.Folio, &q.ClientID, &q.CreatedBy, &q.Tarifas, &q.Duracion,
			&q.Activacion, &q.DesarrolloInformativo, &q.PosteoRedesSociales, &q.Fajillas,
			&q.Intercambio, &q.Cortesias, &q.FormaPago, &q.UsoCFDI, &q.FacturacionEstado,
			&q.EstadoCliente, &q.AjustesPrecios, &q.Total, &q.Status, &q.ApprovedBy,
			&q.ApprovedAt, &q.CreatedAt, &q.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan quote: %w", err)
		}
		list = append(list, &q)
	}
	return list, rows.Err()
}

// Update actualiza una cotización completa. El folio nunca se toca.
func (r *QuoteRepo) Update(quote *entity.Quote) error {
	query := `
		UPDATE quotes SET client_id = $2, tarifas = $3, duracion = $4, activacion = $5,
			desarrollo_informativo = $6, posteo_redes_sociales = $7, fajillas = $8,
			intercambio = $9, cortesias = $10, forma_pago = $11, uso_cfdi = $12,
			facturacion_estado = $13, estado_cliente = $14, ajustes_precios = $15,
			total = $16, status = $17, approved_by = $18, approved_at = $19, updated_at = $20
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		quote.ID, quote.ClientID, quote.Tarifas, quote.Duracion, quote.Activacion,
		quote.DesarrolloInformativo, quote.PosteoRedesSociales, quote.Fajillas,
		quote.Intercambio, quote.Cortesias, quote.FormaPago, quote.UsoCFDI,
		quote.FacturacionEstado, quote.EstadoCliente, quote.AjustesPrecios,
		quote.Total, quote.Status, quote.ApprovedBy, quote.ApprovedAt, quote.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update quote: %w", err)
	}
	return nil
}

// Delete elimina una cotización por ID.
func (r *QuoteRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM quotes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete quote: %w", err)
	}
	return nil
}
