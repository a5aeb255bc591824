package repository

import "github.com/tu-usuario/crm-ventas/internal/domain/entity"

// ClientRepository define el puerto de persistencia para Client.
// Los listados con assignedTo vacío devuelven todos los registros (vista OWNER);
// con assignedTo no vacío filtran por ejecutivo (vista WORKER).
type ClientRepository interface {
	Create(client *entity.Client) error
	GetByID(id string) (*entity.Client, error)
	GetByRFC(rfc string) (*entity.Client, error)
	GetByNombreComercial(nombre string) (*entity.Client, error)
	List(assignedTo string, limit, offset int) ([]*entity.Client, error)
	Update(client *entity.Client) error
	// UpdateStatus actualiza sólo el campo status (espejo del pipeline).
	UpdateStatus(id, status string) error
	Delete(id string) error
}
