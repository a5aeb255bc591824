package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/crm-ventas/internal/domain/entity"
	"github.com/tu-usuario/crm-ventas/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación de SaleRepository (usable con pool o tx).
// Historial, notas y tareas son columnas JSONB append-only desde el dominio.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

const saleColumns = `id, client_id, quote_id, assigned_to, pipeline_stage, history,
	follow_up_notes, tasks, is_closed, closed_at, paid, paid_at, created_at, updated_at`

// Create persiste una nueva venta.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	query := `
		INSERT INTO sales (` + saleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.ClientID, sale.QuoteID, sale.AssignedTo, sale.PipelineStage,
		sale.History, sale.FollowUpNotes, sale.Tasks, sale.IsClosed, sale.ClosedAt,
		sale.Paid, sale.PaidAt, sale.CreatedAt, sale.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// GetByID obtiene una venta por ID.
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	return r.getBy(`WHERE id = $1`, id)
}

// GetByQuoteID busca la venta originada por una cotización (nil si no hay).
func (r *SaleRepo) GetByQuoteID(quoteID string) (*entity.Sale, error) {
	return r.getBy(`WHERE quote_id = $1`, quoteID)
}

func (r *SaleRepo) getBy(where string, arg any) (*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales ` + where
	var s entity.Sale
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&s.ID, &s.ClientID, &s.QuoteID, &s.AssignedTo, &s.PipelineStage,
		&s.History, &s.FollowUpNotes, &s.Tasks, &s.IsClosed, &s.ClosedAt,
		&s.Paid, &s.PaidAt, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return &s, nil
}

// List lista ventas con paginación. assignedTo vacío lista todas (OWNER).
func (r *SaleRepo) List(assignedTo string, limit, offset int) ([]*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales
		WHERE ($1 = '' OR assigned_to = $1)
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, assignedTo, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(
			&s.ID, &s.ClientID, &s.QuoteID, &s.AssignedTo, &s.PipelineStage,
			&s.History, &s.FollowUpNotes, &s.Tasks, &s.IsClosed, &s.ClosedAt,
			&s.Paid, &s.PaidAt, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Update actualiza una venta completa.
func (r *SaleRepo) Update(sale *entity.Sale) error {
	query := `
		UPDATE sales SET pipeline_stage = $2, history = $3, follow_up_notes = $4,
			tasks = $5, is_closed = $6, closed_at = $7, paid = $8, paid_at = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.PipelineStage, sale.History, sale.FollowUpNotes, sale.Tasks,
		sale.IsClosed, sale.ClosedAt, sale.Paid, sale.PaidAt, sale.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update sale: %w", err)
	}
	return nil
}
