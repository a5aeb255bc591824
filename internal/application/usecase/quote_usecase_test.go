package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/crm-ventas/internal/application/dto"
	"github.com/tu-usuario/crm-ventas/internal/application/usecase"
	"github.com/tu-usuario/crm-ventas/internal/domain"
	"github.com/tu-usuario/crm-ventas/internal/domain/entity"
)

var (
	owner   = entity.Actor{UserID: "owner-1", Role: entity.RoleOwner}
	workerA = entity.Actor{UserID: "worker-a", Role: entity.RoleWorker}
	workerB = entity.Actor{UserID: "worker-b", Role: entity.RoleWorker}
)

func newQuoteFixture() (*usecase.QuoteUseCase, *fakeQuoteRepo, *fakeClientRepo) {
	quoteRepo := newFakeQuoteRepo()
	clientRepo := newFakeClientRepo()
	clientRepo.clients["cli-a"] = &entity.Client{ID: "cli-a", NombreComercial: "Tacos El Güero", RFC: "GUE850101AAA", AssignedTo: workerA.UserID}
	uc := usecase.NewQuoteUseCase(&fakeQuoteTxRunner{quoteRepo: quoteRepo}, quoteRepo, clientRepo)
	return uc, quoteRepo, clientRepo
}

func TestQuoteCreate_FoliosConsecutivos(t *testing.T) {
	uc, _, _ := newQuoteFixture()

	for i := 1; i <= 3; i++ {
		q, err := uc.Create(workerA, dto.QuotePayload{ClientID: "cli-a"})
		require.NoError(t, err)
		assert.Equal(t, i, q.Folio, "el folio debe ser consecutivo global")
	}
}

func TestQuoteCreate_TotalSiempreRecalculado(t *testing.T) {
	uc, _, _ := newQuoteFixture()

	q, err := uc.Create(workerA, dto.QuotePayload{
		ClientID: "cli-a",
		Tarifas: []entity.Tarifa{
			{Periodicidad: 5, Costo: decimal.NewFromInt(100), TotalLinea: decimal.NewFromInt(999999)},
		},
	})
	require.NoError(t, err)
	assert.True(t, q.Total.Equal(decimal.NewFromInt(500)), "total esperado 500, obtuvo %s", q.Total)
	assert.True(t, q.Tarifas[0].TotalLinea.Equal(decimal.NewFromInt(500)), "el total de línea enviado por el cliente se descarta")
	assert.Equal(t, entity.QuoteStatusPendiente, q.Status)
}

func TestQuoteCreate_ClienteAjeno(t *testing.T) {
	uc, _, _ := newQuoteFixture()

	_, err := uc.Create(workerB, dto.QuotePayload{ClientID: "cli-a"})
	assert.ErrorIs(t, err, domain.ErrForbidden, "un WORKER no cotiza sobre clientes ajenos")

	_, err = uc.Create(owner, dto.QuotePayload{ClientID: "cli-a"})
	assert.NoError(t, err, "el OWNER cotiza sobre cualquier cliente")
}

func TestQuoteUpdate_WorkerNoTocaStatus(t *testing.T) {
	uc, _, _ := newQuoteFixture()

	q, err := uc.Create(workerA, dto.QuotePayload{ClientID: "cli-a"})
	require.NoError(t, err)

	updated, err := uc.Update(workerA, q.ID, dto.QuotePayload{ClientID: "cli-a", Status: entity.QuoteStatusAprobado})
	require.NoError(t, err)
	assert.Equal(t, entity.QuoteStatusPendiente, updated.Status, "el WORKER no puede autoaprobar")

	updated, err = uc.Update(owner, q.ID, dto.QuotePayload{ClientID: "cli-a", Status: entity.QuoteStatusAprobado})
	require.NoError(t, err)
	assert.Equal(t, entity.QuoteStatusAprobado, updated.Status)
}

func TestQuoteUpdate_FolioInmutableYTotalRecalculado(t *testing.T) {
	uc, _, _ := newQuoteFixture()

	q, err := uc.Create(workerA, dto.QuotePayload{
		ClientID: "cli-a",
		Tarifas:  []entity.Tarifa{{Periodicidad: 2, Costo: decimal.NewFromInt(100)}},
	})
	require.NoError(t, err)
	require.Equal(t, 1, q.Folio)

	updated, err := uc.Update(workerA, q.ID, dto.QuotePayload{
		ClientID: "cli-a",
		Folio:    99,
		Tarifas:  []entity.Tarifa{{Periodicidad: 3, Costo: decimal.NewFromInt(100)}},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, updated.Folio, "el folio no cambia después de asignado")
	assert.True(t, updated.Total.Equal(decimal.NewFromInt(300)), "total esperado 300, obtuvo %s", updated.Total)
}

func TestQuoteApprove_SoloOwner(t *testing.T) {
	uc, _, _ := newQuoteFixture()

	q, err := uc.Create(workerA, dto.QuotePayload{ClientID: "cli-a"})
	require.NoError(t, err)

	_, err = uc.Approve(workerA, q.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	approved, err := uc.Approve(owner, q.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.QuoteStatusAprobado, approved.Status)
	assert.Equal(t, owner.UserID, approved.ApprovedBy)
	require.NotNil(t, approved.ApprovedAt)

	rejected, err := uc.Reject(owner, q.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.QuoteStatusRechazado, rejected.Status)
}

func TestQuoteDelete_SoloOwner(t *testing.T) {
	uc, quoteRepo, _ := newQuoteFixture()

	q, err := uc.Create(workerA, dto.QuotePayload{ClientID: "cli-a"})
	require.NoError(t, err)

	err = uc.Delete(workerA, q.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden, "un WORKER nunca elimina, ni lo suyo")

	err = uc.Delete(owner, q.ID)
	require.NoError(t, err)
	assert.Empty(t, quoteRepo.quotes)
}

func TestQuoteGetByID_ExistenciaAntesQuePropiedad(t *testing.T) {
	uc, _, _ := newQuoteFixture()

	q, err := uc.Create(workerA, dto.QuotePayload{ClientID: "cli-a"})
	require.NoError(t, err)

	_, err = uc.GetByID(workerB, q.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden, "registro existente fuera de alcance: acceso denegado")

	_, err = uc.GetByID(workerB, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
