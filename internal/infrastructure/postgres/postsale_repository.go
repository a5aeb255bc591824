package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/crm-ventas/internal/domain/entity"
	"github.com/tu-usuario/crm-ventas/internal/domain/repository"
)

var _ repository.PostSaleRepository = (*PostSaleRepo)(nil)

// PostSaleRepo implementación de PostSaleRepository (usable con pool o tx).
type PostSaleRepo struct {
	q Querier
}

// NewPostSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPostSaleRepository(q Querier) *PostSaleRepo {
	return &PostSaleRepo{q: q}
}

const postSaleColumns = `id, sale_id, client_id, assigned_to, post_sale_stage,
	medicion_resultados, encuesta_satisfaccion, renovacion, notas, created_at, updated_at`

// Create persiste un nuevo registro post-venta.
func (r *PostSaleRepo) Create(ps *entity.PostSale) error {
	query := `
		INSERT INTO post_sales (` + postSaleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		ps.ID, ps.SaleID, ps.ClientID, ps.AssignedTo, ps.PostSaleStage,
		ps.MedicionResultados, ps.Encuesta, ps.Renovacion, ps.Notas, ps.CreatedAt, ps.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert post_sale: %w", err)
	}
	return nil
}

// GetByID obtiene un registro post-venta por ID.
func (r *PostSaleRepo) GetByID(id string) (*entity.PostSale, error) {
	query := `SELECT ` + postSaleColumns + ` FROM post_sales WHERE id = $1`
	var ps entity.PostSale
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&ps.ID, &ps.SaleID, &ps.ClientID, &ps.AssignedTo, &ps.PostSaleStage,
		&ps.MedicionResultados, &ps.Encuesta, &ps.Renovacion, &ps.Notas, &ps.CreatedAt, &ps.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get post_sale: %w", err)
	}
	return &ps, nil
}

// List lista registros post-venta. assignedTo vacío lista todos (OWNER).
func (r *PostSaleRepo) List(assignedTo string, limit, offset int) ([]*entity.PostSale, error) {
	query := `SELECT ` + postSaleColumns + ` FROM post_sales
		WHERE ($1 = '' OR assigned_to = $1)
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, assignedTo, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list post_sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.PostSale
	for rows.Next() {
		var ps entity.PostSale
		if err := rows.Scan(
			&ps.ID, &ps.SaleID, &ps.ClientID, &ps.AssignedTo, &ps.PostSaleStage,
			&ps.MedicionResultados, &ps.Encuesta, &ps.Renovacion, &ps.Notas, &ps.CreatedAt, &ps.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan post_sale: %w", err)
		}
		list = append(list, &ps)
	}
	return list, rows.Err()
}

// Update actualiza un registro post-venta.
func (r *PostSaleRepo) Update(ps *entity.PostSale) error {
	query := `
		UPDATE post_sales SET post_sale_stage = $2, medicion_resultados = $3,
			encuesta_satisfaccion = $4, renovacion = $5, notas = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		ps.ID, ps.PostSaleStage, ps.MedicionResultados, ps.Encuesta, ps.Renovacion, ps.Notas, ps.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update post_sale: %w", err)
	}
	return nil
}

// Delete elimina un registro post-venta por ID.
func (r *PostSaleRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM post_sales WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete post_sale: %w", err)
	}
	return nil
}
