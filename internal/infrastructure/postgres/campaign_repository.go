package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/crm-ventas/internal/domain/entity"
	"github.com/tu-usuario/crm-ventas/internal/domain/repository"
)

var _ repository.CampaignRepository = (*CampaignRepo)(nil)

// CampaignRepo implementación de CampaignRepository (usable con pool o tx).
// Espacios va en JSONB; formatos como text[].
type CampaignRepo struct {
	q Querier
}

// NewCampaignRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCampaignRepository(q Querier) *CampaignRepo {
	return &CampaignRepo{q: q}
}

const campaignColumns = `id, client_id, sale_id, quote_id, nombre, descripcion, fecha_inicio,
	fecha_fin, espacios, status, formatos, periodicidad, cortesias, created_by, created_at, updated_at`

// Create persiste una nueva campaña.
func (r *CampaignRepo) Create(campaign *entity.Campaign) error {
	query := `
		INSERT INTO campaigns (` + campaignColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.q.Exec(context.Background(), query,
		campaign.ID, campaign.ClientID, campaign.SaleID, campaign.QuoteID, campaign.Nombre,
		campaign.Descripcion, campaign.FechaInicio, campaign.FechaFin, campaign.Espacios,
		campaign.Status, campaign.Formatos, campaign.Periodicidad, campaign.Cortesias,
		campaign.CreatedBy, campaign.CreatedAt, campaign.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert campaign: %w", err)
	}
	return nil
}

// GetByID obtiene una campaña por ID.
func (r *CampaignRepo) GetByID(id string) (*entity.Campaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM campaigns WHERE id = $1`
	var c entity.Campaign
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.ClientID, &c.SaleID, &c.QuoteID, &c.Nombre,
		&c.Descripcion, &c.FechaInicio, &c.FechaFin, &c.Espacios,
		&c.Status, &c.Formatos, &c.Periodicidad, &c.Cortesias,
		&c.CreatedBy, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get campaign: %w", err)
	}
	return &c, nil
}

// List lista campañas con paginación. createdBy vacío lista todas (OWNER).
func (r *CampaignRepo) List(createdBy string, limit, offset int) ([]*entity.Campaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM campaigns
		WHERE ($1 = '' OR created_by = $1)
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, createdBy, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}
	defer rows.Close()
	var list []*entity.Campaign
	for rows.Next() {
		var c entity.Campaign
		if err := rows.Scan(
			&c.ID, &c.ClientID, &c.SaleID, &c.QuoteID, &c.Nombre,
			&c.Descripcion, &c.FechaInicio, &c.FechaFin, &c.Espacios,
			&c.Status, &c.Formatos, &c.Periodicidad, &c.Cortesias,
			&c.CreatedBy, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan campaign: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update actualiza una campaña. El cliente de origen no se toca.
func (r *CampaignRepo) Update(campaign *entity.Campaign) error {
	query := `
		UPDATE campaigns SET sale_id = $2, quote_id = $3, nombre = $4, descripcion = $5,
			fecha_inicio = $6, fecha_fin = $7, espacios = $8, status = $9, formatos = $10,
			periodicidad = $11, cortesias = $12, updated_at = $13
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		campaign.ID, campaign.SaleID, campaign.QuoteID, campaign.Nombre, campaign.Descripcion,
		campaign.FechaInicio, campaign.FechaFin, campaign.Espacios, campaign.Status,
		campaign.Formatos, campaign.Periodicidad, campaign.Cortesias, campaign.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update campaign: %w", err)
	}
	return nil
}

// Delete elimina una campaña por ID.
func (r *CampaignRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM campaigns WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete campaign: %w", err)
	}
	return nil
}
