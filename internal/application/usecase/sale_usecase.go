package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/crm-ventas/internal/application/dto"
	"github.com/tu-usuario/crm-ventas/internal/domain"
	"github.com/tu-usuario/crm-ventas/internal/domain/entity"
	"github.com/tu-usuario/crm-ventas/internal/domain/event"
	"github.com/tu-usuario/crm-ventas/internal/domain/repository"
)

// SaleUseCase casos de uso del pipeline de ventas. Una venta nace de una
// cotización aprobada y avanza por etapas con historial append-only.
type SaleUseCase struct {
	saleRepo   repository.SaleRepository
	quoteRepo  repository.QuoteRepository
	clientRepo repository.ClientRepository
	dispatcher *event.Dispatcher
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(
	saleRepo repository.SaleRepository,
	quoteRepo repository.QuoteRepository,
	clientRepo repository.ClientRepository,
	dispatcher *event.Dispatcher,
) *SaleUseCase {
	return &SaleUseCase{
		saleRepo:   saleRepo,
		quoteRepo:  quoteRepo,
		clientRepo: clientRepo,
		dispatcher: dispatcher,
	}
}

// Create genera la venta a partir de una cotización aprobada. Cliente y
// ejecutivo se derivan de la cotización; el cliente arranca en prospección.
func (uc *SaleUseCase) Create(actor entity.Actor, in dto.CreateSaleRequest) (*entity.Sale, error) {
	if in.QuoteID == "" {
		return nil, domain.ErrInvalidInput
	}
	quote, err := uc.quoteRepo.GetByID(in.QuoteID)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, domain.ErrNotFound
	}
	if !actor.CanAccess(quote.CreatedBy) {
		return nil, domain.ErrForbidden
	}
	if quote.Status != entity.QuoteStatusAprobado {
		return nil, domain.ErrQuoteNotApproved
	}
	if existing, err := uc.saleRepo.GetByQuoteID(quote.ID); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrConflict
	}

	assignedTo := quote.CreatedBy
	if assignedTo == "" {
		assignedTo = actor.UserID
	}

	now := time.Now()
	sale := &entity.Sale{
		ID:            uuid.New().String(),
		ClientID:      quote.ClientID,
		QuoteID:       quote.ID,
		AssignedTo:    assignedTo,
		PipelineStage: entity.StageProspeccion,
		History:       []entity.HistoryEntry{},
		FollowUpNotes: []entity.FollowUpNote{},
		Tasks:         []entity.Task{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.saleRepo.Create(sale); err != nil {
		return nil, err
	}
	// El cliente entra (o regresa) al inicio del pipeline.
	if err := uc.clientRepo.UpdateStatus(sale.ClientID, entity.StageProspeccion); err != nil {
		return nil, err
	}
	return sale, nil
}

// List lista las ventas visibles: todas para OWNER, propias para WORKER.
func (uc *SaleUseCase) List(actor entity.Actor, page dto.PageRequest) ([]*entity.Sale, error) {
	page.DefaultPage()
	return uc.saleRepo.List(ownershipFilter(actor), page.Limit, page.Offset)
}

// GetByID obtiene una venta verificando existencia antes que propiedad.
func (uc *SaleUseCase) GetByID(actor entity.Actor, id string) (*entity.Sale, error) {
	return uc.loadAccessible(actor, id)
}

// UpdateStage mueve la venta de etapa. El historial sólo crece cuando la
// etapa realmente cambia; repetir la misma etapa es un no-op persistido.
// Mover a "cierre" por esta vía equivale a cerrar la venta.
func (uc *SaleUseCase) UpdateStage(actor entity.Actor, id string, in dto.UpdateSaleRequest) (*entity.Sale, error) {
	if !entity.IsValidPipelineStage(in.PipelineStage) {
		return nil, domain.ErrInvalidInput
	}
	sale, err := uc.loadAccessible(actor, id)
	if err != nil {
		return nil, err
	}

	if in.PipelineStage == entity.StageCierre {
		return uc.close(actor, sale)
	}

	now := time.Now()
	if sale.ChangeStage(in.PipelineStage, actor.UserID, now) {
		sale.UpdatedAt = now
		if err := uc.clientRepo.UpdateStatus(sale.ClientID, in.PipelineStage); err != nil {
			return nil, err
		}
	}
	if err := uc.saleRepo.Update(sale); err != nil {
		return nil, err
	}
	return sale, nil
}

// Close cierra la venta: etapa cierre, flag de cerrada y evento SaleClosed
// para que el estado del cliente quede espejado.
func (uc *SaleUseCase) Close(actor entity.Actor, id string) (*entity.Sale, error) {
	sale, err := uc.loadAccessible(actor, id)
	if err != nil {
		return nil, err
	}
	return uc.close(actor, sale)
}

func (uc *SaleUseCase) close(actor entity.Actor, sale *entity.Sale) (*entity.Sale, error) {
	now := time.Now()
	sale.Close(actor.UserID, now)
	sale.UpdatedAt = now
	if err := uc.saleRepo.Update(sale); err != nil {
		return nil, err
	}
	err := uc.dispatcher.PublishSaleClosed(event.SaleClosed{
		SaleID:   sale.ID,
		ClientID: sale.ClientID,
		ActorID:  actor.UserID,
		ClosedAt: now,
	})
	if err != nil {
		return nil, err
	}
	return sale, nil
}

// AddNote agrega una nota de seguimiento (append-only).
func (uc *SaleUseCase) AddNote(actor entity.Actor, id string, in dto.AddNoteRequest) (*entity.Sale, error) {
	if in.Text == "" {
		return nil, domain.ErrInvalidInput
	}
	sale, err := uc.loadAccessible(actor, id)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	sale.FollowUpNotes = append(sale.FollowUpNotes, entity.FollowUpNote{
		Text:      in.Text,
		CreatedAt: now,
		CreatedBy: actor.UserID,
	})
	sale.UpdatedAt = now
	if err := uc.saleRepo.Update(sale); err != nil {
		return nil, err
	}
	return sale, nil
}

// AddTask agrega una tarea pendiente a la venta.
func (uc *SaleUseCase) AddTask(actor entity.Actor, id string, in dto.AddTaskRequest) (*entity.Sale, error) {
	if in.Title == "" {
		return nil, domain.ErrInvalidInput
	}
	sale, err := uc.loadAccessible(actor, id)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	sale.Tasks = append(sale.Tasks, entity.Task{
		ID:        uuid.New().String(),
		Title:     in.Title,
		DueDate:   in.DueDate,
		CreatedAt: now,
		CreatedBy: actor.UserID,
	})
	sale.UpdatedAt = now
	if err := uc.saleRepo.Update(sale); err != nil {
		return nil, err
	}
	return sale, nil
}

// CompleteTask marca una tarea como completada. La transición es sólo de
// pendiente a completada; completar dos veces es un no-op.
func (uc *SaleUseCase) CompleteTask(actor entity.Actor, id, taskID string) (*entity.Sale, error) {
	sale, err := uc.loadAccessible(actor, id)
	if err != nil {
		return nil, err
	}
	found := false
	for i := range sale.Tasks {
		if sale.Tasks[i].ID == taskID {
			sale.Tasks[i].Completed = true
			found = true
			break
		}
	}
	if !found {
		return nil, domain.ErrNotFound
	}
	sale.UpdatedAt = time.Now()
	if err := uc.saleRepo.Update(sale); err != nil {
		return nil, err
	}
	return sale, nil
}

func (uc *SaleUseCase) loadAccessible(actor entity.Actor, id string) (*entity.Sale, error) {
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	if !actor.CanAccess(sale.AssignedTo) {
		return nil, domain.ErrForbidden
	}
	return sale, nil
}
