package billing_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/crm-ventas/internal/application/billing"
	"github.com/tu-usuario/crm-ventas/internal/application/dto"
	"github.com/tu-usuario/crm-ventas/internal/domain"
	"github.com/tu-usuario/crm-ventas/internal/domain/entity"
	"github.com/tu-usuario/crm-ventas/internal/domain/repository"
)

var (
	owner   = entity.Actor{UserID: "owner-1", Role: entity.RoleOwner}
	workerA = entity.Actor{UserID: "worker-a", Role: entity.RoleWorker}
	workerB = entity.Actor{UserID: "worker-b", Role: entity.RoleWorker}
)

type fakeClientRepo struct{ clients map[string]*entity.Client }

func (r *fakeClientRepo) Create(c *entity.Client) error  { r.clients[c.ID] = c; return nil }
func (r *fakeClientRepo) GetByID(id string) (*entity.Client, error) { return r.clients[id], nil }
func (r *fakeClientRepo) GetByRFC(string) (*entity.Client, error)   { return nil, nil }
func (r *fakeClientRepo) GetByNombreComercial(string) (*entity.Client, error) {
	return nil, nil
}
func (r *fakeClientRepo) List(string, int, int) ([]*entity.Client, error) { return nil, nil }
func (r *fakeClientRepo) Update(c *entity.Client) error                   { r.clients[c.ID] = c; return nil }
func (r *fakeClientRepo) UpdateStatus(id, status string) error {
	if c, ok := r.clients[id]; ok {
		c.Status = status
	}
	return nil
}
func (r *fakeClientRepo) Delete(id string) error { delete(r.clients, id); return nil }

type fakeQuoteRepo struct{ quotes map[string]*entity.Quote }

func (r *fakeQuoteRepo) NextFolio() (int, error)                  { return len(r.quotes) + 1, nil }
func (r *fakeQuoteRepo) Create(q *entity.Quote) error             { r.quotes[q.ID] = q; return nil }
func (r *fakeQuoteRepo) GetByID(id string) (*entity.Quote, error) { return r.quotes[id], nil }
func (r *fakeQuoteRepo) List(string, int, int) ([]*entity.Quote, error) {
	return nil, nil
}
func (r *fakeQuoteRepo) Update(q *entity.Quote) error { r.quotes[q.ID] = q; return nil }
func (r *fakeQuoteRepo) Delete(id string) error       { delete(r.quotes, id); return nil }

type fakeSaleRepo struct{ sales map[string]*entity.Sale }

func (r *fakeSaleRepo) Create(s *entity.Sale) error            { r.sales[s.ID] = s; return nil }
func (r *fakeSaleRepo) GetByID(id string) (*entity.Sale, error) { return r.sales[id], nil }
func (r *fakeSaleRepo) GetByQuoteID(quoteID string) (*entity.Sale, error) {
	for _, s := range r.sales {
		if s.QuoteID == quoteID {
			return s, nil
		}
	}
	return nil, nil
}
func (r *fakeSaleRepo) List(string, int, int) ([]*entity.Sale, error) { return nil, nil }
func (r *fakeSaleRepo) Update(s *entity.Sale) error                   { r.sales[s.ID] = s; return nil }

type fakeInvoiceRepo struct{ invoices map[string]*entity.Invoice }

func (r *fakeInvoiceRepo) Create(inv *entity.Invoice) error { r.invoices[inv.ID] = inv; return nil }
func (r *fakeInvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	return r.invoices[id], nil
}
func (r *fakeInvoiceRepo) List(string, int, int) ([]*entity.Invoice, error) { return nil, nil }
func (r *fakeInvoiceRepo) Update(inv *entity.Invoice) error {
	r.invoices[inv.ID] = inv
	return nil
}
func (r *fakeInvoiceRepo) Delete(id string) error { delete(r.invoices, id); return nil }

type fakeBillingTxRunner struct {
	invoiceRepo repository.InvoiceRepository
	saleRepo    repository.SaleRepository
}

func (tr *fakeBillingTxRunner) RunBilling(fn func(repository.InvoiceRepository, repository.SaleRepository) error) error {
	return fn(tr.invoiceRepo, tr.saleRepo)
}

func newInvoiceFixture() (*billing.InvoiceUseCase, *fakeInvoiceRepo, *fakeSaleRepo, *fakeClientRepo) {
	clientRepo := &fakeClientRepo{clients: map[string]*entity.Client{
		"cli-a": {ID: "cli-a", NombreComercial: "Tacos El Güero", RFC: "GUE850101AAA", AssignedTo: workerA.UserID},
	}}
	quoteRepo := &fakeQuoteRepo{quotes: map[string]*entity.Quote{
		"quo-1": {ID: "quo-1", Folio: 1, ClientID: "cli-a", CreatedBy: workerA.UserID, Status: entity.QuoteStatusAprobado},
	}}
	saleRepo := &fakeSaleRepo{sales: map[string]*entity.Sale{
		"sale-1": {ID: "sale-1", ClientID: "cli-a", QuoteID: "quo-1", AssignedTo: workerA.UserID},
	}}
	invoiceRepo := &fakeInvoiceRepo{invoices: map[string]*entity.Invoice{}}
	tx := &fakeBillingTxRunner{invoiceRepo: invoiceRepo, saleRepo: saleRepo}
	uc := billing.NewInvoiceUseCase(tx, invoiceRepo, clientRepo, quoteRepo, saleRepo)
	return uc, invoiceRepo, saleRepo, clientRepo
}

func TestInvoiceCreate_DerivaIVAYSnapshotRFC(t *testing.T) {
	uc, _, _, clientRepo := newInvoiceFixture()

	inv, err := uc.Create(workerA, dto.CreateInvoiceRequest{
		ClientID:      "cli-a",
		QuoteID:       "quo-1",
		NumeroFactura: "F-001",
		ImporteSinIVA: decimal.NewFromInt(1000),
	})
	require.NoError(t, err)
	assert.True(t, inv.ImporteConIVA.Equal(decimal.NewFromInt(1160)), "1000 × 1.16 = 1160, obtuvo %s", inv.ImporteConIVA)
	assert.Equal(t, "GUE850101AAA", inv.RFC)
	assert.Equal(t, "sale-1", inv.SaleID, "la venta se resuelve por cotización")
	assert.False(t, inv.Pagado)

	// Cambiar el RFC del cliente después no toca el snapshot.
	clientRepo.clients["cli-a"].RFC = "NUE990909ZZZ"
	got, err := uc.GetByID(workerA, inv.ID)
	require.NoError(t, err)
	assert.Equal(t, "GUE850101AAA", got.RFC)
}

func TestInvoiceCreate_RedondeoIVA(t *testing.T) {
	uc, _, _, _ := newInvoiceFixture()

	inv, err := uc.Create(workerA, dto.CreateInvoiceRequest{
		ClientID:      "cli-a",
		QuoteID:       "quo-1",
		NumeroFactura: "F-002",
		ImporteSinIVA: decimal.NewFromFloat(100.55),
	})
	require.NoError(t, err)
	// 100.55 × 1.16 = 116.638 → 116.64
	assert.Equal(t, "116.64", inv.ImporteConIVA.StringFixed(2))
}

func TestInvoiceCreate_ImporteNegativo(t *testing.T) {
	uc, _, _, _ := newInvoiceFixture()

	_, err := uc.Create(workerA, dto.CreateInvoiceRequest{
		ClientID:      "cli-a",
		QuoteID:       "quo-1",
		NumeroFactura: "F-003",
		ImporteSinIVA: decimal.NewFromInt(-1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestInvoiceCreate_PagadaPropagaALaVenta(t *testing.T) {
	uc, _, saleRepo, _ := newInvoiceFixture()

	fechaPago := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	inv, err := uc.Create(workerA, dto.CreateInvoiceRequest{
		ClientID:      "cli-a",
		QuoteID:       "quo-1",
		NumeroFactura: "F-004",
		ImporteSinIVA: decimal.NewFromInt(500),
		Pagado:        true,
		FechaPago:     &fechaPago,
	})
	require.NoError(t, err)
	assert.True(t, inv.Pagado)
	require.NotNil(t, inv.FechaPago)
	assert.Equal(t, fechaPago, *inv.FechaPago)

	sale := saleRepo.sales["sale-1"]
	assert.True(t, sale.Paid, "el pago se propaga a la venta de la cotización")
	require.NotNil(t, sale.PaidAt)
	assert.Equal(t, fechaPago, *sale.PaidAt)
}

func TestInvoiceUpdate_PasarAPagadaPropaga(t *testing.T) {
	uc, _, saleRepo, _ := newInvoiceFixture()

	inv, err := uc.Create(workerA, dto.CreateInvoiceRequest{
		ClientID:      "cli-a",
		QuoteID:       "quo-1",
		NumeroFactura: "F-005",
		ImporteSinIVA: decimal.NewFromInt(800),
	})
	require.NoError(t, err)
	assert.False(t, saleRepo.sales["sale-1"].Paid)

	pagado := true
	nuevoImporte := decimal.NewFromInt(900)
	updated, err := uc.Update(workerA, inv.ID, dto.UpdateInvoiceRequest{
		Pagado:        &pagado,
		ImporteSinIVA: &nuevoImporte,
	})
	require.NoError(t, err)
	assert.True(t, updated.Pagado)
	assert.True(t, updated.ImporteConIVA.Equal(decimal.NewFromInt(1044)), "900 × 1.16 = 1044")
	assert.True(t, saleRepo.sales["sale-1"].Paid)
}

func TestInvoiceAccesoYDelete(t *testing.T) {
	uc, repo, _, _ := newInvoiceFixture()

	inv, err := uc.Create(workerA, dto.CreateInvoiceRequest{
		ClientID:      "cli-a",
		QuoteID:       "quo-1",
		NumeroFactura: "F-006",
		ImporteSinIVA: decimal.NewFromInt(100),
	})
	require.NoError(t, err)

	_, err = uc.GetByID(workerB, inv.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	err = uc.Delete(workerA, inv.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	err = uc.Delete(owner, inv.ID)
	require.NoError(t, err)
	assert.Empty(t, repo.invoices)
}
