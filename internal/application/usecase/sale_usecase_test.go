package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/crm-ventas/internal/application/dto"
	"github.com/tu-usuario/crm-ventas/internal/application/usecase"
	"github.com/tu-usuario/crm-ventas/internal/domain"
	"github.com/tu-usuario/crm-ventas/internal/domain/entity"
	"github.com/tu-usuario/crm-ventas/internal/domain/event"
)

func newSaleFixture() (*usecase.SaleUseCase, *fakeSaleRepo, *fakeQuoteRepo, *fakeClientRepo) {
	saleRepo := newFakeSaleRepo()
	quoteRepo := newFakeQuoteRepo()
	clientRepo := newFakeClientRepo()

	clientRepo.clients["cli-a"] = &entity.Client{ID: "cli-a", NombreComercial: "Tacos El Güero", AssignedTo: workerA.UserID}
	quoteRepo.quotes["quo-1"] = &entity.Quote{ID: "quo-1", Folio: 1, ClientID: "cli-a", CreatedBy: workerA.UserID, Status: entity.QuoteStatusAprobado}
	quoteRepo.quotes["quo-2"] = &entity.Quote{ID: "quo-2", Folio: 2, ClientID: "cli-a", CreatedBy: workerA.UserID, Status: entity.QuoteStatusPendiente}

	dispatcher := event.NewDispatcher()
	// El mismo suscriptor que registra main: espejar el cierre en el cliente.
	dispatcher.SubscribeSaleClosed(func(e event.SaleClosed) error {
		return clientRepo.UpdateStatus(e.ClientID, entity.StageCierre)
	})

	uc := usecase.NewSaleUseCase(saleRepo, quoteRepo, clientRepo, dispatcher)
	return uc, saleRepo, quoteRepo, clientRepo
}

func TestSaleCreate_RequiereCotizacionAprobada(t *testing.T) {
	uc, _, _, clientRepo := newSaleFixture()

	_, err := uc.Create(workerA, dto.CreateSaleRequest{QuoteID: "quo-2"})
	assert.ErrorIs(t, err, domain.ErrQuoteNotApproved)

	sale, err := uc.Create(workerA, dto.CreateSaleRequest{QuoteID: "quo-1"})
	require.NoError(t, err)
	assert.Equal(t, "cli-a", sale.ClientID)
	assert.Equal(t, workerA.UserID, sale.AssignedTo, "el ejecutivo se hereda del creador de la cotización")
	assert.Equal(t, entity.StageProspeccion, sale.PipelineStage)
	assert.Empty(t, sale.History, "una venta nueva arranca sin historial")
	assert.Equal(t, entity.StageProspeccion, clientRepo.clients["cli-a"].Status)
}

func TestSaleCreate_UnaVentaPorCotizacion(t *testing.T) {
	uc, _, _, _ := newSaleFixture()

	_, err := uc.Create(workerA, dto.CreateSaleRequest{QuoteID: "quo-1"})
	require.NoError(t, err)

	_, err = uc.Create(workerA, dto.CreateSaleRequest{QuoteID: "quo-1"})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestSaleUpdateStage_HistorialSoloConCambioReal(t *testing.T) {
	uc, _, _, clientRepo := newSaleFixture()

	sale, err := uc.Create(workerA, dto.CreateSaleRequest{QuoteID: "quo-1"})
	require.NoError(t, err)

	sale, err = uc.UpdateStage(workerA, sale.ID, dto.UpdateSaleRequest{PipelineStage: entity.StagePresentacion})
	require.NoError(t, err)
	require.Len(t, sale.History, 1)
	assert.Equal(t, entity.StageProspeccion, sale.History[0].FromStage)
	assert.Equal(t, entity.StagePresentacion, sale.History[0].ToStage)
	assert.Equal(t, workerA.UserID, sale.History[0].ChangedBy)
	assert.Equal(t, entity.StagePresentacion, clientRepo.clients["cli-a"].Status, "el estado del cliente espeja la etapa")

	// Repetir la misma etapa no agrega historial.
	sale, err = uc.UpdateStage(workerA, sale.ID, dto.UpdateSaleRequest{PipelineStage: entity.StagePresentacion})
	require.NoError(t, err)
	assert.Len(t, sale.History, 1)

	// Retroceder sí es un cambio válido.
	sale, err = uc.UpdateStage(workerA, sale.ID, dto.UpdateSaleRequest{PipelineStage: entity.StageProspeccion})
	require.NoError(t, err)
	assert.Len(t, sale.History, 2)
}

func TestSaleUpdateStage_EtapaInvalida(t *testing.T) {
	uc, _, _, _ := newSaleFixture()

	sale, err := uc.Create(workerA, dto.CreateSaleRequest{QuoteID: "quo-1"})
	require.NoError(t, err)

	_, err = uc.UpdateStage(workerA, sale.ID, dto.UpdateSaleRequest{PipelineStage: "negociacion"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSaleClose_EspejaEstadoDelCliente(t *testing.T) {
	uc, _, _, clientRepo := newSaleFixture()

	sale, err := uc.Create(workerA, dto.CreateSaleRequest{QuoteID: "quo-1"})
	require.NoError(t, err)

	closed, err := uc.Close(workerA, sale.ID)
	require.NoError(t, err)
	assert.True(t, closed.IsClosed)
	require.NotNil(t, closed.ClosedAt)
	assert.Equal(t, entity.StageCierre, closed.PipelineStage)
	require.Len(t, closed.History, 1)
	assert.Equal(t, entity.StageCierre, clientRepo.clients["cli-a"].Status)
}

func TestSaleClose_ViaUpdateStage(t *testing.T) {
	uc, _, _, clientRepo := newSaleFixture()

	sale, err := uc.Create(workerA, dto.CreateSaleRequest{QuoteID: "quo-1"})
	require.NoError(t, err)

	closed, err := uc.UpdateStage(workerA, sale.ID, dto.UpdateSaleRequest{PipelineStage: entity.StageCierre})
	require.NoError(t, err)
	assert.True(t, closed.IsClosed, "mover a cierre equivale a cerrar la venta")
	assert.Equal(t, entity.StageCierre, clientRepo.clients["cli-a"].Status)
}

func TestSaleNotesTasks(t *testing.T) {
	uc, _, _, _ := newSaleFixture()

	sale, err := uc.Create(workerA, dto.CreateSaleRequest{QuoteID: "quo-1"})
	require.NoError(t, err)

	_, err = uc.AddNote(workerA, sale.ID, dto.AddNoteRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	sale, err = uc.AddNote(workerA, sale.ID, dto.AddNoteRequest{Text: "Llamar el lunes"})
	require.NoError(t, err)
	require.Len(t, sale.FollowUpNotes, 1)
	assert.Equal(t, workerA.UserID, sale.FollowUpNotes[0].CreatedBy)

	sale, err = uc.AddTask(workerA, sale.ID, dto.AddTaskRequest{Title: "Enviar propuesta"})
	require.NoError(t, err)
	require.Len(t, sale.Tasks, 1)
	assert.False(t, sale.Tasks[0].Completed)

	sale, err = uc.CompleteTask(workerA, sale.ID, sale.Tasks[0].ID)
	require.NoError(t, err)
	assert.True(t, sale.Tasks[0].Completed)

	// Completar dos veces es idempotente.
	sale, err = uc.CompleteTask(workerA, sale.ID, sale.Tasks[0].ID)
	require.NoError(t, err)
	assert.True(t, sale.Tasks[0].Completed)

	_, err = uc.CompleteTask(workerA, sale.ID, "tarea-fantasma")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSaleVisibilidadPorRol(t *testing.T) {
	uc, _, _, _ := newSaleFixture()

	sale, err := uc.Create(workerA, dto.CreateSaleRequest{QuoteID: "quo-1"})
	require.NoError(t, err)

	_, err = uc.GetByID(workerB, sale.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = uc.GetByID(owner, sale.ID)
	assert.NoError(t, err)

	propias, err := uc.List(workerB, dto.PageRequest{})
	require.NoError(t, err)
	assert.Empty(t, propias)

	todas, err := uc.List(owner, dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, todas, 1)
}
