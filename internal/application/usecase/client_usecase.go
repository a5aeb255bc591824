package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/crm-ventas/internal/application/dto"
	"github.com/tu-usuario/crm-ventas/internal/domain"
	"github.com/tu-usuario/crm-ventas/internal/domain/entity"
	"github.com/tu-usuario/crm-ventas/internal/domain/repository"
)

// ClientUseCase casos de uso de clientes.
// Visibilidad: OWNER ve todo; WORKER sólo los clientes con assignedTo propio.
type ClientUseCase struct {
	clientRepo repository.ClientRepository
	userRepo   repository.UserRepository
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(clientRepo repository.ClientRepository, userRepo repository.UserRepository) *ClientUseCase {
	return &ClientUseCase{clientRepo: clientRepo, userRepo: userRepo}
}

// Create crea un cliente. Un WORKER queda como propietario automáticamente;
// el OWNER puede asignar a cualquier ejecutivo vía payload.
func (uc *ClientUseCase) Create(actor entity.Actor, in dto.ClientPayload) (*entity.Client, error) {
	if in.NombreComercial == "" || in.RazonSocial == "" || in.RFC == "" {
		return nil, domain.ErrInvalidInput
	}

	assignedTo := actor.UserID
	if actor.IsOwner() && in.AssignedTo != "" {
		assignedTo = in.AssignedTo
	}

	now := time.Now()
	client := &entity.Client{
		ID:                uuid.New().String(),
		NombreComercial:   strings.TrimSpace(in.NombreComercial),
		RazonSocial:       in.RazonSocial,
		RFC:               normalizeRFC(in.RFC),
		CURP:              in.CURP,
		Direccion:         in.Direccion,
		Regimen:           in.Regimen,
		AgenciaODirecto:   in.AgenciaODirecto,
		TipoCliente:       in.TipoCliente,
		TipoIndustria:     in.TipoIndustria,
		Contactos:         in.Contactos,
		EjecutivoAsignado: in.EjecutivoAsignado,
		ClienteActivo:     true,
		Status:            entity.StageProspeccion,
		AssignedTo:        assignedTo,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if in.ClienteActivo != nil {
		client.ClienteActivo = *in.ClienteActivo
	}
	if err := uc.clientRepo.Create(client); err != nil {
		return nil, err
	}
	return client, nil
}

// List lista clientes visibles para el actor.
func (uc *ClientUseCase) List(actor entity.Actor, page dto.PageRequest) ([]*entity.Client, error) {
	page.DefaultPage()
	return uc.clientRepo.List(ownershipFilter(actor), page.Limit, page.Offset)
}

// GetByID obtiene un cliente. La existencia se verifica primero: un registro
// fuera del alcance del WORKER responde acceso denegado, no "no encontrado".
func (uc *ClientUseCase) GetByID(actor entity.Actor, id string) (*entity.Client, error) {
	client, err := uc.clientRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	if !actor.CanAccess(client.AssignedTo) {
		return nil, domain.ErrForbidden
	}
	return client, nil
}

// Update actualiza un cliente. WORKER sólo los suyos y sin reasignar;
// OWNER puede reasignar libremente.
func (uc *ClientUseCase) Update(actor entity.Actor, id string, in dto.ClientPayload) (*entity.Client, error) {
	client, err := uc.clientRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	if !actor.CanAccess(client.AssignedTo) {
		return nil, domain.ErrForbidden
	}

	if in.NombreComercial != "" {
		client.NombreComercial = strings.TrimSpace(in.NombreComercial)
	}
	if in.RazonSocial != "" {
		client.RazonSocial = in.RazonSocial
	}
	if in.RFC != "" {
		client.RFC = normalizeRFC(in.RFC)
	}
	client.CURP = in.CURP
	client.Direccion = in.Direccion
	client.Regimen = in.Regimen
	client.AgenciaODirecto = in.AgenciaODirecto
	client.TipoCliente = in.TipoCliente
	client.TipoIndustria = in.TipoIndustria
	client.Contactos = in.Contactos
	client.EjecutivoAsignado = in.EjecutivoAsignado
	if in.ClienteActivo != nil {
		client.ClienteActivo = *in.ClienteActivo
	}
	// Reasignación: exclusiva del OWNER.
	if actor.IsOwner() && in.AssignedTo != "" {
		client.AssignedTo = in.AssignedTo
	}
	client.UpdatedAt = time.Now()

	if err := uc.clientRepo.Update(client); err != nil {
		return nil, err
	}
	return client, nil
}

// Delete elimina un cliente. Solo OWNER, sin importar el propietario.
func (uc *ClientUseCase) Delete(actor entity.Actor, id string) error {
	if !actor.IsOwner() {
		return domain.ErrForbidden
	}
	client, err := uc.clientRepo.GetByID(id)
	if err != nil {
		return err
	}
	if client == nil {
		return domain.ErrNotFound
	}
	return uc.clientRepo.Delete(id)
}

// CheckRFC verificación advisory: indica si el RFC ya está registrado y por
// cuál ejecutivo, para evitar que dos workers capturen al mismo cliente.
func (uc *ClientUseCase) CheckRFC(rfc string) (*dto.ClientCheckResponse, error) {
	if rfc == "" {
		return nil, domain.ErrInvalidInput
	}
	client, err := uc.clientRepo.GetByRFC(normalizeRFC(rfc))
	if err != nil {
		return nil, err
	}
	return uc.checkResponse(client)
}

// CheckNombreComercial verificación advisory por nombre comercial.
func (uc *ClientUseCase) CheckNombreComercial(nombre string) (*dto.ClientCheckResponse, error) {
	if nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	client, err := uc.clientRepo.GetByNombreComercial(strings.TrimSpace(nombre))
	if err != nil {
		return nil, err
	}
	return uc.checkResponse(client)
}

func (uc *ClientUseCase) checkResponse(client *entity.Client) (*dto.ClientCheckResponse, error) {
	if client == nil {
		return &dto.ClientCheckResponse{Exists: false}, nil
	}
	resp := &dto.ClientCheckResponse{Exists: true, WorkerName: "Desconocido"}
	if owner, err := uc.userRepo.GetByID(client.AssignedTo); err == nil && owner != nil {
		resp.WorkerName = owner.Name
		resp.WorkerEmail = owner.Email
	}
	return resp, nil
}

func normalizeRFC(rfc string) string {
	return strings.ToUpper(strings.TrimSpace(rfc))
}

// ownershipFilter devuelve el filtro de propiedad para listados: vacío para
// OWNER (ve todo), el propio ID para WORKER.
func ownershipFilter(actor entity.Actor) string {
	if actor.IsOwner() {
		return ""
	}
	return actor.UserID
}
