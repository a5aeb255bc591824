package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/crm-ventas/internal/application/dto"
	"github.com/tu-usuario/crm-ventas/internal/domain"
	"github.com/tu-usuario/crm-ventas/internal/domain/entity"
	"github.com/tu-usuario/crm-ventas/internal/domain/repository"
)

// PostSaleUseCase casos de uso del seguimiento post-venta.
type PostSaleUseCase struct {
	postSaleRepo repository.PostSaleRepository
	saleRepo     repository.SaleRepository
}

// NewPostSaleUseCase construye el caso de uso.
func NewPostSaleUseCase(postSaleRepo repository.PostSaleRepository, saleRepo repository.SaleRepository) *PostSaleUseCase {
	return &PostSaleUseCase{postSaleRepo: postSaleRepo, saleRepo: saleRepo}
}

// Create abre el seguimiento post-venta de una venta. Cliente y ejecutivo se
// copian de la venta; sin etapa explícita arranca en servicio_post_venta.
func (uc *PostSaleUseCase) Create(actor entity.Actor, in dto.PostSalePayload) (*entity.PostSale, error) {
	if in.SaleID == "" {
		return nil, domain.ErrInvalidInput
	}
	sale, err := uc.saleRepo.GetByID(in.SaleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	if !actor.CanAccess(sale.AssignedTo) {
		return nil, domain.ErrForbidden
	}
	if err := validatePostSalePayload(in); err != nil {
		return nil, err
	}

	stage := in.PostSaleStage
	if stage == "" {
		stage = entity.PostSaleServicio
	}

	now := time.Now()
	ps := &entity.PostSale{
		ID:                 uuid.New().String(),
		SaleID:             sale.ID,
		ClientID:           sale.ClientID,
		AssignedTo:         sale.AssignedTo,
		PostSaleStage:      stage,
		MedicionResultados: in.MedicionResultados,
		Encuesta:           in.Encuesta,
		Renovacion:         in.Renovacion,
		Notas:              in.Notas,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := uc.postSaleRepo.Create(ps); err != nil {
		return nil, err
	}
	return ps, nil
}

// List lista los registros post-venta visibles para el actor.
func (uc *PostSaleUseCase) List(actor entity.Actor, page dto.PageRequest) ([]*entity.PostSale, error) {
	page.DefaultPage()
	return uc.postSaleRepo.List(ownershipFilter(actor), page.Limit, page.Offset)
}

// GetByID obtiene un registro post-venta verificando existencia antes que propiedad.
func (uc *PostSaleUseCase) GetByID(actor entity.Actor, id string) (*entity.PostSale, error) {
	ps, err := uc.postSaleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ps == nil {
		return nil, domain.ErrNotFound
	}
	if !actor.CanAccess(ps.AssignedTo) {
		return nil, domain.ErrForbidden
	}
	return ps, nil
}

// Update actualiza el seguimiento. La venta de origen y el cliente copiado
// son inmutables.
func (uc *PostSaleUseCase) Update(actor entity.Actor, id string, in dto.PostSalePayload) (*entity.PostSale, error) {
	ps, err := uc.GetByID(actor, id)
	if err != nil {
		return nil, err
	}
	if err := validatePostSalePayload(in); err != nil {
		return nil, err
	}

	if in.PostSaleStage != "" {
		ps.PostSaleStage = in.PostSaleStage
	}
	ps.MedicionResultados = in.MedicionResultados
	ps.Encuesta = in.Encuesta
	ps.Renovacion = in.Renovacion
	ps.Notas = in.Notas
	ps.UpdatedAt = time.Now()

	if err := uc.postSaleRepo.Update(ps); err != nil {
		return nil, err
	}
	return ps, nil
}

// Delete elimina un registro post-venta. Solo OWNER.
func (uc *PostSaleUseCase) Delete(actor entity.Actor, id string) error {
	if !actor.IsOwner() {
		return domain.ErrForbidden
	}
	ps, err := uc.postSaleRepo.GetByID(id)
	if err != nil {
		return err
	}
	if ps == nil {
		return domain.ErrNotFound
	}
	return uc.postSaleRepo.Delete(id)
}

func validatePostSalePayload(in dto.PostSalePayload) error {
	if in.PostSaleStage != "" && !entity.IsValidPostSaleStage(in.PostSaleStage) {
		return domain.ErrInvalidInput
	}
	// Calificación en cero significa "sin contestar".
	if c := in.Encuesta.Calificacion; c != 0 && (c < 1 || c > 10) {
		return domain.ErrInvalidInput
	}
	return nil
}
