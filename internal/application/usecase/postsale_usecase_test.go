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

func newPostSaleFixture() (*usecase.PostSaleUseCase, *fakePostSaleRepo, *fakeSaleRepo) {
	postSaleRepo := newFakePostSaleRepo()
	saleRepo := newFakeSaleRepo()
	saleRepo.sales["sale-1"] = &entity.Sale{ID: "sale-1", ClientID: "cli-a", AssignedTo: workerA.UserID, IsClosed: true}
	return usecase.NewPostSaleUseCase(postSaleRepo, saleRepo), postSaleRepo, saleRepo
}

func TestPostSaleCreate_CopiaDeLaVenta(t *testing.T) {
	uc, _, _ := newPostSaleFixture()

	ps, err := uc.Create(workerA, dto.PostSalePayload{SaleID: "sale-1"})
	require.NoError(t, err)
	assert.Equal(t, "cli-a", ps.ClientID, "el cliente se copia de la venta")
	assert.Equal(t, workerA.UserID, ps.AssignedTo, "el ejecutivo se copia de la venta")
	assert.Equal(t, entity.PostSaleServicio, ps.PostSaleStage, "sin etapa explícita arranca en servicio post-venta")
}

func TestPostSaleCreate_VentaAjena(t *testing.T) {
	uc, _, _ := newPostSaleFixture()

	_, err := uc.Create(workerB, dto.PostSalePayload{SaleID: "sale-1"})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = uc.Create(workerA, dto.PostSalePayload{SaleID: "no-existe"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPostSale_ValidaEtapaYCalificacion(t *testing.T) {
	uc, _, _ := newPostSaleFixture()

	_, err := uc.Create(workerA, dto.PostSalePayload{SaleID: "sale-1", PostSaleStage: "etapa_inventada"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(workerA, dto.PostSalePayload{
		SaleID:   "sale-1",
		Encuesta: entity.EncuestaSatisfaccion{Calificacion: 11},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	ps, err := uc.Create(workerA, dto.PostSalePayload{
		SaleID:        "sale-1",
		PostSaleStage: entity.PostSaleFacturacion,
		Encuesta:      entity.EncuestaSatisfaccion{Calificacion: 9, Comentarios: "Buen servicio"},
	})
	require.NoError(t, err)
	assert.Equal(t, entity.PostSaleFacturacion, ps.PostSaleStage)
	assert.Equal(t, 9, ps.Encuesta.Calificacion)
}

func TestPostSaleUpdate_OrigenInmutable(t *testing.T) {
	uc, _, _ := newPostSaleFixture()

	ps, err := uc.Create(workerA, dto.PostSalePayload{SaleID: "sale-1"})
	require.NoError(t, err)

	updated, err := uc.Update(workerA, ps.ID, dto.PostSalePayload{
		SaleID:        "otra-venta", // se ignora
		PostSaleStage: entity.PostSaleReportes,
		Notas:         "Cliente quiere renovar en diciembre",
	})
	require.NoError(t, err)
	assert.Equal(t, "sale-1", updated.SaleID)
	assert.Equal(t, entity.PostSaleReportes, updated.PostSaleStage)
	assert.Equal(t, "Cliente quiere renovar en diciembre", updated.Notas)
}

func TestPostSaleDelete_SoloOwner(t *testing.T) {
	uc, repo, _ := newPostSaleFixture()

	ps, err := uc.Create(workerA, dto.PostSalePayload{SaleID: "sale-1"})
	require.NoError(t, err)

	err = uc.Delete(workerA, ps.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	err = uc.Delete(owner, ps.ID)
	require.NoError(t, err)
	assert.Empty(t, repo.records)
}
