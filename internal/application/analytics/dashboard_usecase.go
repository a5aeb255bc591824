// Package analytics contiene los casos de uso de solo lectura del CRM: el
// dashboard de ventas y los reportes de negocio. Todos respetan la
// visibilidad por rol: OWNER agrega sobre todo el equipo, WORKER sólo sobre
// sus propios registros.
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

// DashboardUseCase genera los widgets del dashboard de ventas.
//
// Fuente de datos: AnalyticsRepository (consultas read-only).
// No accede directamente a las tablas; delega todo en el repositorio.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo}
}

// Overview construye las tarjetas principales del dashboard.
//
// Cuatro consultas en paralelo: clientes, cotizaciones, pipeline (para ventas
// cerradas) y montos facturados pagado/pendiente.
func (uc *DashboardUseCase) Overview(ctx context.Context, actor entity.Actor) (*dto.OverviewDTO, error) {
	scope := scopeFor(actor)

	type countResult struct {
		n   int64
		err error
	}
	type stagesResult struct {
		stages map[string]int64
		err    error
	}
	type billingResult struct {
		pagado    decimal.Decimal
		pendiente decimal.Decimal
		err       error
	}

	clientsCh := make(chan countResult, 1)
	quotesCh := make(chan countResult, 1)
	stagesCh := make(chan stagesResult, 1)
	billingCh := make(chan billingResult, 1)

	go func() {
		n, err := uc.analyticsRepo.CountClients(ctx, scope)
		clientsCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.analyticsRepo.CountQuotes(ctx, scope)
		quotesCh <- countResult{n, err}
	}()
	go func() {
		stages, err := uc.analyticsRepo.CountSalesByStage(ctx, scope)
		stagesCh <- stagesResult{stages, err}
	}()
	go func() {
		pagado, err := uc.analyticsRepo.SumInvoicesByPaid(ctx, scope, true)
		if err != nil {
			billingCh <- billingResult{err: err}
			return
		}
		pendiente, err := uc.analyticsRepo.SumInvoicesByPaid(ctx, scope, false)
		billingCh <- billingResult{pagado, pendiente, err}
	}()

	clients := <-clientsCh
	quotes := <-quotesCh
	stages := <-stagesCh
	billing := <-billingCh

	if clients.err != nil {
		return nil, fmt.Errorf("dashboard: conteo de clientes: %w", clients.err)
	}
	if quotes.err != nil {
		return nil, fmt.Errorf("dashboard: conteo de cotizaciones: %w", quotes.err)
	}
	if stages.err != nil {
		return nil, fmt.Errorf("dashboard: pipeline: %w", stages.err)
	}
	if billing.err != nil {
		return nil, fmt.Errorf("dashboard: facturación: %w", billing.err)
	}

	return &dto.OverviewDTO{
		TotalClientes:     clients.n,
		VentasCerradas:    stages.stages[entity.StageCierre],
		TotalFacturado:    billing.pagado.Round(2),
		TotalPendiente:    billing.pendiente.Round(2),
		TotalCotizaciones: quotes.n,
	}, nil
}

// Pipeline devuelve el conteo de ventas por etapa.
func (uc *DashboardUseCase) Pipeline(ctx context.Context, actor entity.Actor) (*dto.PipelineDTO, error) {
	stages, err := uc.analyticsRepo.CountSalesByStage(ctx, scopeFor(actor))
	if err != nil {
		return nil, fmt.Errorf("dashboard: pipeline: %w", err)
	}
	return &dto.PipelineDTO{
		Prospeccion:  stages[entity.StageProspeccion],
		Presentacion: stages[entity.StagePresentacion],
		Propuesta:    stages[entity.StagePropuesta],
		Cierre:       stages[entity.StageCierre],
	}, nil
}

// Billing devuelve facturación pagada vs pendiente.
func (uc *DashboardUseCase) Billing(ctx context.Context, actor entity.Actor) (*dto.BillingDTO, error) {
	scope := scopeFor(actor)
	pagado, err := uc.analyticsRepo.SumInvoicesByPaid(ctx, scope, true)
	if err != nil {
		return nil, fmt.Errorf("dashboard: facturación pagada: %w", err)
	}
	pendiente, err := uc.analyticsRepo.SumInvoicesByPaid(ctx, scope, false)
	if err != nil {
		return nil, fmt.Errorf("dashboard: facturación pendiente: %w", err)
	}
	return &dto.BillingDTO{Pagado: pagado.Round(2), Pendiente: pendiente.Round(2)}, nil
}

// Clients devuelve clientes activos y nuevos del mes en curso.
func (uc *DashboardUseCase) Clients(ctx context.Context, actor entity.Actor) (*dto.ClientsWidgetDTO, error) {
	scope := scopeFor(actor)
	activos, err := uc.analyticsRepo.CountActiveClients(ctx, scope)
	if err != nil {
		return nil, fmt.Errorf("dashboard: clientes activos: %w", err)
	}
	nuevos, err := uc.analyticsRepo.CountClientsCreatedSince(ctx, scope, monthStart(time.Now()))
	if err != nil {
		return nil, fmt.Errorf("dashboard: clientes nuevos: %w", err)
	}
	return &dto.ClientsWidgetDTO{Activos: activos, NuevosMes: nuevos}, nil
}

// Quotes devuelve las cotizaciones creadas en el mes en curso.
func (uc *DashboardUseCase) Quotes(ctx context.Context, actor entity.Actor) (*dto.QuotesWidgetDTO, error) {
	n, err := uc.analyticsRepo.CountQuotesCreatedSince(ctx, scopeFor(actor), monthStart(time.Now()))
	if err != nil {
		return nil, fmt.Errorf("dashboard: cotizaciones del mes: %w", err)
	}
	return &dto.QuotesWidgetDTO{CotizacionesMes: n}, nil
}

// monthStart devuelve el día 1 del mes a las 00:00.
func monthStart(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
}

// scopeFor devuelve el filtro de visibilidad: vacío para OWNER (agrega sobre
// todos), el propio ID para WORKER.
func scopeFor(actor entity.Actor) string {
	if actor.IsOwner() {
		return ""
	}
	return actor.UserID
}
