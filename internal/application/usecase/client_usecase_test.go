package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/crm-ventas/internal/application/dto"
	"github.com/tu-usuario/crm-ventas/internal/application/usecase"
	"github.com/tu-usuario/crm-ventas/internal/domain"
	"github.com/tu-usuario/crm-ventas/internal/domain/entity"
)

func newClientFixture() (*usecase.ClientUseCase, *fakeClientRepo, *fakeUserRepo) {
	clientRepo := newFakeClientRepo()
	userRepo := newFakeUserRepo()
	userRepo.users[workerA.UserID] = &entity.User{ID: workerA.UserID, Name: "Ana López", Email: "ana@periodico.mx", Role: entity.RoleWorker}
	return usecase.NewClientUseCase(clientRepo, userRepo), clientRepo, userRepo
}

func TestClientCreate_WorkerSeAsignaASiMismo(t *testing.T) {
	uc, _, _ := newClientFixture()

	client, err := uc.Create(workerA, dto.ClientPayload{
		NombreComercial: "Tacos El Güero",
		RazonSocial:     "Taquerías del Norte SA de CV",
		RFC:             " gue850101aaa ",
		AssignedTo:      workerB.UserID, // se ignora para WORKER
	})
	require.NoError(t, err)
	assert.Equal(t, workerA.UserID, client.AssignedTo)
	assert.Equal(t, "GUE850101AAA", client.RFC, "el RFC se normaliza a mayúsculas sin espacios")
	assert.True(t, client.ClienteActivo)
	assert.Equal(t, entity.StageProspeccion, client.Status)
}

func TestClientCreate_OwnerPuedeAsignar(t *testing.T) {
	uc, _, _ := newClientFixture()

	client, err := uc.Create(owner, dto.ClientPayload{
		NombreComercial: "Farmacia Luna",
		RazonSocial:     "Farmacias Luna SA de CV",
		RFC:             "LUN900202BBB",
		AssignedTo:      workerB.UserID,
	})
	require.NoError(t, err)
	assert.Equal(t, workerB.UserID, client.AssignedTo)
}

func TestClientCreate_CamposObligatorios(t *testing.T) {
	uc, _, _ := newClientFixture()

	_, err := uc.Create(workerA, dto.ClientPayload{NombreComercial: "Sin RFC"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestClientMatrizDeAcceso(t *testing.T) {
	uc, _, _ := newClientFixture()

	client, err := uc.Create(workerA, dto.ClientPayload{
		NombreComercial: "Tacos El Güero",
		RazonSocial:     "Taquerías del Norte SA de CV",
		RFC:             "GUE850101AAA",
	})
	require.NoError(t, err)

	// WORKER ajeno: existe pero no es suyo → acceso denegado, no "no encontrado".
	_, err = uc.GetByID(workerB, client.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = uc.GetByID(workerA, client.ID)
	assert.NoError(t, err)

	_, err = uc.GetByID(owner, client.ID)
	assert.NoError(t, err)

	_, err = uc.GetByID(owner, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Eliminar es exclusivo del OWNER, incluso sobre lo propio.
	err = uc.Delete(workerA, client.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	err = uc.Delete(owner, client.ID)
	assert.NoError(t, err)
}

func TestClientUpdate_WorkerNoReasigna(t *testing.T) {
	uc, _, _ := newClientFixture()

	client, err := uc.Create(workerA, dto.ClientPayload{
		NombreComercial: "Tacos El Güero",
		RazonSocial:     "Taquerías del Norte SA de CV",
		RFC:             "GUE850101AAA",
	})
	require.NoError(t, err)

	updated, err := uc.Update(workerA, client.ID, dto.ClientPayload{AssignedTo: workerB.UserID})
	require.NoError(t, err)
	assert.Equal(t, workerA.UserID, updated.AssignedTo, "solo el OWNER reasigna clientes")

	updated, err = uc.Update(owner, client.ID, dto.ClientPayload{AssignedTo: workerB.UserID})
	require.NoError(t, err)
	assert.Equal(t, workerB.UserID, updated.AssignedTo)
}

func TestClientList_VisibilidadPorRol(t *testing.T) {
	uc, _, _ := newClientFixture()

	_, err := uc.Create(workerA, dto.ClientPayload{NombreComercial: "A", RazonSocial: "A SA", RFC: "AAA010101AAA"})
	require.NoError(t, err)
	_, err = uc.Create(workerB, dto.ClientPayload{NombreComercial: "B", RazonSocial: "B SA", RFC: "BBB020202BBB"})
	require.NoError(t, err)

	propios, err := uc.List(workerA, dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, propios, 1)

	todos, err := uc.List(owner, dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, todos, 2)
}

func TestClientCheckRFC(t *testing.T) {
	uc, _, _ := newClientFixture()

	resp, err := uc.CheckRFC("GUE850101AAA")
	require.NoError(t, err)
	assert.False(t, resp.Exists)

	_, err = uc.Create(workerA, dto.ClientPayload{
		NombreComercial: "Tacos El Güero",
		RazonSocial:     "Taquerías del Norte SA de CV",
		RFC:             "GUE850101AAA",
	})
	require.NoError(t, err)

	// La verificación normaliza antes de buscar.
	resp, err = uc.CheckRFC("  gue850101aaa ")
	require.NoError(t, err)
	assert.True(t, resp.Exists)
	assert.Equal(t, "Ana López", resp.WorkerName)
	assert.Equal(t, "ana@periodico.mx", resp.WorkerEmail)

	resp, err = uc.CheckNombreComercial("Tacos El Güero")
	require.NoError(t, err)
	assert.True(t, resp.Exists)
}
