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

func newCampaignFixture() (*usecase.CampaignUseCase, *fakeCampaignRepo) {
	campaignRepo := newFakeCampaignRepo()
	clientRepo := newFakeClientRepo()
	clientRepo.clients["cli-a"] = &entity.Client{ID: "cli-a", NombreComercial: "Tacos El Güero", AssignedTo: workerA.UserID}
	return usecase.NewCampaignUseCase(campaignRepo, clientRepo), campaignRepo
}

func TestCampaignCreate_ClienteYNombreObligatorios(t *testing.T) {
	uc, _ := newCampaignFixture()

	_, err := uc.Create(workerA, dto.CampaignPayload{Nombre: "Sin cliente"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(workerA, dto.CampaignPayload{ClientID: "cli-a"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	campaign, err := uc.Create(workerA, dto.CampaignPayload{ClientID: "cli-a", Nombre: "Verano 2026"})
	require.NoError(t, err)
	assert.Equal(t, entity.CampaignPlanificada, campaign.Status, "sin estado explícito arranca planificada")
	assert.Equal(t, workerA.UserID, campaign.CreatedBy)
}

func TestCampaignCreate_EstadoInvalido(t *testing.T) {
	uc, _ := newCampaignFixture()

	_, err := uc.Create(workerA, dto.CampaignPayload{ClientID: "cli-a", Nombre: "X", Status: "pausada"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCampaignCreate_ClienteAjeno(t *testing.T) {
	uc, _ := newCampaignFixture()

	_, err := uc.Create(workerB, dto.CampaignPayload{ClientID: "cli-a", Nombre: "Ajena"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestCampaignUpdate_ClienteInmutable(t *testing.T) {
	uc, _ := newCampaignFixture()

	campaign, err := uc.Create(workerA, dto.CampaignPayload{ClientID: "cli-a", Nombre: "Verano 2026"})
	require.NoError(t, err)

	updated, err := uc.Update(workerA, campaign.ID, dto.CampaignPayload{
		ClientID: "otro-cliente", // se ignora
		Status:   entity.CampaignEnCurso,
	})
	require.NoError(t, err)
	assert.Equal(t, "cli-a", updated.ClientID)
	assert.Equal(t, entity.CampaignEnCurso, updated.Status)
	assert.Equal(t, "Verano 2026", updated.Nombre, "nombre vacío en el payload conserva el actual")
}

func TestCampaignDelete_SoloOwner(t *testing.T) {
	uc, repo := newCampaignFixture()

	campaign, err := uc.Create(workerA, dto.CampaignPayload{ClientID: "cli-a", Nombre: "Verano 2026"})
	require.NoError(t, err)

	err = uc.Delete(workerA, campaign.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	err = uc.Delete(owner, campaign.ID)
	require.NoError(t, err)
	assert.Empty(t, repo.campaigns)
}
