package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/crm-ventas/internal/application/dto"
	"github.com/tu-usuario/crm-ventas/internal/domain/entity"
	"github.com/tu-usuario/crm-ventas/internal/domain/repository"
)

// ReportUseCase genera los reportes de negocio: proyección de ingresos,
// publicidad contratada, activaciones agendadas y el reporte general de ventas.
type ReportUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(analyticsRepo repository.AnalyticsRepository) *ReportUseCase {
	return &ReportUseCase{analyticsRepo: analyticsRepo}
}

// Projections lista las ventas en etapa propuesta con el total cotizado:
// el ingreso potencial si todas las propuestas abiertas cierran.
func (uc *ReportUseCase) Projections(ctx context.Context, actor entity.Actor) (*dto.ProjectionsDTO, error) {
	rows, err := uc.analyticsRepo.ListProjections(ctx, scopeFor(actor))
	if err != nil {
		return nil, fmt.Errorf("reportes: proyecciones: %w", err)
	}

	out := &dto.ProjectionsDTO{
		TotalPropuestas: int64(len(rows)),
		TotalPotencial:  decimal.Zero,
		Propuestas:      make([]dto.ProjectionDTO, 0, len(rows)),
	}
	for _, r := range rows {
		out.TotalPotencial = out.TotalPotencial.Add(r.QuoteTotal)
		out.Propuestas = append(out.Propuestas, dto.ProjectionDTO{
			SaleID:          r.SaleID,
			NombreComercial: r.NombreComercial,
			Folio:           r.Folio,
			QuoteTotal:      r.QuoteTotal,
		})
	}
	out.TotalPotencial = out.TotalPotencial.Round(2)
	return out, nil
}

// Publicidad suma los totales de línea de todas las tarifas cotizadas,
// agrupados por formato del espacio.
func (uc *ReportUseCase) Publicidad(ctx context.Context, actor entity.Actor) (*dto.PublicidadDTO, error) {
	rows, err := uc.analyticsRepo.SumTarifasByFormato(ctx, scopeFor(actor))
	if err != nil {
		return nil, fmt.Errorf("reportes: publicidad: %w", err)
	}

	out := &dto.PublicidadDTO{Formatos: make([]dto.FormatoTotalDTO, 0, len(rows))}
	for _, r := range rows {
		out.Formatos = append(out.Formatos, dto.FormatoTotalDTO{
			Formato: r.Formato,
			Total:   r.Total.Round(2),
			Lineas:  r.Lineas,
		})
	}
	return out, nil
}

// Activaciones lista las activaciones de marca agendadas en cotizaciones.
func (uc *ReportUseCase) Activaciones(ctx context.Context, actor entity.Actor) (*dto.ActivacionesDTO, error) {
	rows, err := uc.analyticsRepo.ListActivaciones(ctx, scopeFor(actor))
	if err != nil {
		return nil, fmt.Errorf("reportes: activaciones: %w", err)
	}

	out := &dto.ActivacionesDTO{
		TotalActivaciones: int64(len(rows)),
		Activaciones:      make([]dto.ActivacionItemDTO, 0, len(rows)),
	}
	for _, r := range rows {
		out.Activaciones = append(out.Activaciones, dto.ActivacionItemDTO{
			Folio:    r.Folio,
			Cliente:  r.NombreComercial,
			Fechas:   r.Fechas,
			Cantidad: r.Cantidad,
			Costo:    r.Costo,
		})
	}
	return out, nil
}

// SalesReport genera el reporte de ventas con filtros opcionales por cliente,
// ejecutivo y rango de fechas. Para un WORKER el filtro por ejecutivo se
// fuerza a sí mismo sin importar lo que pida.
func (uc *ReportUseCase) SalesReport(ctx context.Context, actor entity.Actor, clientID, assignedTo string, fechaInicio, fechaFin time.Time) (*dto.SalesReportDTO, error) {
	if !actor.IsOwner() {
		assignedTo = actor.UserID
	}
	rows, err := uc.analyticsRepo.ListSalesForReport(ctx, repository.SalesReportFilter{
		ClientID:    clientID,
		AssignedTo:  assignedTo,
		FechaInicio: fechaInicio,
		FechaFin:    fechaFin,
	})
	if err != nil {
		return nil, fmt.Errorf("reportes: ventas: %w", err)
	}

	out := &dto.SalesReportDTO{
		Total:  int64(len(rows)),
		Ventas: make([]dto.SalesReportItemDTO, 0, len(rows)),
		Stats: dto.SalesReportStatsDTO{
			PorCliente:     map[string]int64{},
			PorEjecutivo:   map[string]int64{},
			PorTipoCliente: map[string]int64{},
			PorMes:         map[string]int64{},
			PorEtapa:       map[string]int64{},
		},
	}
	for _, r := range rows {
		out.Ventas = append(out.Ventas, dto.SalesReportItemDTO{
			SaleID:          r.SaleID,
			NombreComercial: r.NombreComercial,
			TipoCliente:     r.TipoCliente,
			Ejecutivo:       r.EjecutivoNombre,
			PipelineStage:   r.PipelineStage,
			Folio:           r.Folio,
			QuoteTotal:      r.QuoteTotal,
			Pagado:          r.Paid,
			CreatedAt:       r.CreatedAt,
		})
		out.Stats.PorCliente[r.NombreComercial]++
		out.Stats.PorEjecutivo[r.EjecutivoNombre]++
		if r.TipoCliente != "" {
			out.Stats.PorTipoCliente[r.TipoCliente]++
		}
		out.Stats.PorMes[r.CreatedAt.Format("2006-01")]++
		out.Stats.PorEtapa[r.PipelineStage]++
	}
	return out, nil
}
