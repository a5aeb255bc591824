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

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo implementación de ClientRepository (usable con pool o tx).
// Dirección y contactos se guardan como columnas JSONB.
type ClientRepo struct {
	q Querier
}

// NewClientRepository construye el adaptador. Pasar pool o tx (Querier).
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

const clientColumns = `id, nombre_comercial, razon_social, rfc, curp, direccion, regimen,
	agencia_o_directo, tipo_cliente, tipo_industria, contactos, ejecutivo_asignado,
	cliente_activo, status, assigned_to, created_at, updated_at`

// Create persiste un nuevo cliente.
func (r *ClientRepo) Create(client *entity.Client) error {
	query := `
		INSERT INTO clients (` + clientColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err := r.q.Exec(context.Background(), query,
		client.ID, client.NombreComercial, client.RazonSocial, client.RFC, client.CURP,
		client.Direccion, client.Regimen, client.AgenciaODirecto, client.TipoCliente,
		client.TipoIndustria, client.Contactos, client.EjecutivoAsignado, client.ClienteActivo,
		client.Status, client.AssignedTo, client.CreatedAt, client.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID.
func (r *ClientRepo) GetByID(id string) (*entity.Client, error) {
	return r.getBy(`WHERE id = $1`, id)
}

// GetByRFC obtiene un cliente por RFC (ya normalizado a mayúsculas).
func (r *ClientRepo) GetByRFC(rfc string) (*entity.Client, error) {
	return r.getBy(`WHERE rfc = $1`, rfc)
}

// GetByNombreComercial obtiene un cliente por nombre comercial exacto.
func (r *ClientRepo) GetByNombreComercial(nombre string) (*entity.Client, error) {
	return r.getBy(`WHERE nombre_comercial = $1`, nombre)
}

func (r *ClientRepo) getBy(where string, arg any) (*entity.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients ` + where
	var c entity.Client
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&c.ID, &c.NombreComercial, &c.RazonSocial, &c.RFC, &c.CURP,
		&c.Direccion, &c.Regimen, &c.AgenciaODirecto, &c.TipoCliente,
		&c.TipoIndustria, &c.Contactos, &c.EjecutivoAsignado, &c.ClienteActivo,
		&c.Status, &c.AssignedTo, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	return &c, nil
}

// List lista clientes con paginación. assignedTo vacío lista todos (OWNER).
func (r *ClientRepo) List(assignedTo string, limit, offset int) ([]*entity.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients
		WHERE ($1 = '' OR assigned_to = $1)
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, assignedTo, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()
	var list []*entity.Client
	for rows.Next() {
		var c entity.Client
		if err := rows.Scan(
			&c.ID, &c.NombreComercial, &c.RazonSocial, &c.RFC, &c.CURP,
			&c.Direccion, &c.Regimen, &c.AgenciaODirecto, &c.TipoCliente,
			&c.TipoIndustria, &c.Contactos, &c.EjecutivoAsignado, &c.ClienteActivo,
			&c.Status, &c.AssignedTo, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update actualiza un cliente completo.
func (r *ClientRepo) Update(client *entity.Client) error {
	query := `
		UPDATE clients SET nombre_comercial = $2, razon_social = $3, rfc = $4, curp = $5,
			direccion = $6, regimen = $7, agencia_o_directo = $8, tipo_cliente = $9,
			tipo_industria = $10, contactos = $11, ejecutivo_asignado = $12,
			cliente_activo = $13, status = $14, assigned_to = $15, updated_at = $16
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		client.ID, client.NombreComercial, client.RazonSocial, client.RFC, client.CURP,
		client.Direccion, client.Regimen, client.AgenciaODirecto, client.TipoCliente,
		client.TipoIndustria, client.Contactos, client.EjecutivoAsignado, client.ClienteActivo,
		client.Status, client.AssignedTo, client.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update client: %w", err)
	}
	return nil
}

// UpdateStatus actualiza sólo el status del cliente (espejo del pipeline).
func (r *ClientRepo) UpdateStatus(id, status string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE clients SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update client status: %w", err)
	}
	return nil
}

// Delete elimina un cliente por ID.
func (r *ClientRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	return nil
}
