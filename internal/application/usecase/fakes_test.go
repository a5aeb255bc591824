package usecase_test

import (
	"github.com/tu-usuario/crm-ventas/internal/domain/entity"
	"github.com/tu-usuario/crm-ventas/internal/domain/repository"
)

// Fakes en memoria para los casos de uso. Implementan los mismos puertos que
// los repositorios de Postgres, respaldados por mapas.

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) List(limit, offset int) ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *fakeUserRepo) Update(u *entity.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) Delete(id string) error {
	delete(r.users, id)
	return nil
}

type fakeClientRepo struct {
	clients map[string]*entity.Client
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{clients: map[string]*entity.Client{}}
}

func (r *fakeClientRepo) Create(c *entity.Client) error {
	r.clients[c.ID] = c
	return nil
}

func (r *fakeClientRepo) GetByID(id string) (*entity.Client, error) {
	return r.clients[id], nil
}

func (r *fakeClientRepo) GetByRFC(rfc string) (*entity.Client, error) {
	for _, c := range r.clients {
		if c.RFC == rfc {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeClientRepo) GetByNombreComercial(nombre string) (*entity.Client, error) {
	for _, c := range r.clients {
		if c.NombreComercial == nombre {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeClientRepo) List(assignedTo string, limit, offset int) ([]*entity.Client, error) {
	out := []*entity.Client{}
	for _, c := range r.clients {
		if assignedTo == "" || c.AssignedTo == assignedTo {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeClientRepo) Update(c *entity.Client) error {
	r.clients[c.ID] = c
	return nil
}

func (r *fakeClientRepo) UpdateStatus(id, status string) error {
	if c, ok := r.clients[id]; ok {
		c.Status = status
	}
	return nil
}

func (r *fakeClientRepo) Delete(id string) error {
	delete(r.clients, id)
	return nil
}

type fakeQuoteRepo struct {
	quotes map[string]*entity.Quote
}

func newFakeQuoteRepo() *fakeQuoteRepo {
	return &fakeQuoteRepo{quotes: map[string]*entity.Quote{}}
}

func (r *fakeQuoteRepo) NextFolio() (int, error) {
	max := 0
	for _, q := range r.quotes {
		if q.Folio > max {
			max = q.Folio
		}
	}
	return max + 1, nil
}

func (r *fakeQuoteRepo) Create(q *entity.Quote) error {
	r.quotes[q.ID] = q
	return nil
}

func (r *fakeQuoteRepo) GetByID(id string) (*entity.Quote, error) {
	return r.quotes[id], nil
}

func (r *fakeQuoteRepo) List(createdBy string, limit, offset int) ([]*entity.Quote, error) {
	out := []*entity.Quote{}
	for _, q := range r.quotes {
		if createdBy == "" || q.CreatedBy == createdBy {
			out = append(out, q)
		}
	}
	return out, nil
}

func (r *fakeQuoteRepo) Update(q *entity.Quote) error {
	r.quotes[q.ID] = q
	return nil
}

func (r *fakeQuoteRepo) Delete(id string) error {
	delete(r.quotes, id)
	return nil
}

// fakeQuoteTxRunner ejecuta la función directamente contra el repo en memoria.
type fakeQuoteTxRunner struct {
	quoteRepo repository.QuoteRepository
}

func (tr *fakeQuoteTxRunner) Run(fn func(quoteRepo repository.QuoteRepository) error) error {
	return fn(tr.quoteRepo)
}

type fakeSaleRepo struct {
	sales map[string]*entity.Sale
}

func newFakeSaleRepo() *fakeSaleRepo {
	return &fakeSaleRepo{sales: map[string]*entity.Sale{}}
}

func (r *fakeSaleRepo) Create(s *entity.Sale) error {
	r.sales[s.ID] = s
	return nil
}

func (r *fakeSaleRepo) GetByID(id string) (*entity.Sale, error) {
	return r.sales[id], nil
}

func (r *fakeSaleRepo) GetByQuoteID(quoteID string) (*entity.Sale, error) {
	for _, s := range r.sales {
		if s.QuoteID == quoteID {
			return s, nil
		}
	}
	return nil, nil
}

func (r *fakeSaleRepo) List(assignedTo string, limit, offset int) ([]*entity.Sale, error) {
	out := []*entity.Sale{}
	for _, s := range r.sales {
		if assignedTo == "" || s.AssignedTo == assignedTo {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeSaleRepo) Update(s *entity.Sale) error {
	r.sales[s.ID] = s
	return nil
}

type fakePostSaleRepo struct {
	records map[string]*entity.PostSale
}

func newFakePostSaleRepo() *fakePostSaleRepo {
	return &fakePostSaleRepo{records: map[string]*entity.PostSale{}}
}

func (r *fakePostSaleRepo) Create(ps *entity.PostSale) error {
	r.records[ps.ID] = ps
	return nil
}

func (r *fakePostSaleRepo) GetByID(id string) (*entity.PostSale, error) {
	return r.records[id], nil
}

func (r *fakePostSaleRepo) List(assignedTo string, limit, offset int) ([]*entity.PostSale, error) {
	out := []*entity.PostSale{}
	for _, ps := range r.records {
		if assignedTo == "" || ps.AssignedTo == assignedTo {
			out = append(out, ps)
		}
	}
	return out, nil
}

func (r *fakePostSaleRepo) Update(ps *entity.PostSale) error {
	r.records[ps.ID] = ps
	return nil
}

func (r *fakePostSaleRepo) Delete(id string) error {
	delete(r.records, id)
	return nil
}

type fakeCampaignRepo struct {
	campaigns map[string]*entity.Campaign
}

func newFakeCampaignRepo() *fakeCampaignRepo {
	return &fakeCampaignRepo{campaigns: map[string]*entity.Campaign{}}
}

func (r *fakeCampaignRepo) Create(c *entity.Campaign) error {
	r.campaigns[c.ID] = c
	return nil
}

func (r *fakeCampaignRepo) GetByID(id string) (*entity.Campaign, error) {
	return r.campaigns[id], nil
}

func (r *fakeCampaignRepo) List(createdBy string, limit, offset int) ([]*entity.Campaign, error) {
	out := []*entity.Campaign{}
	for _, c := range r.campaigns {
		if createdBy == "" || c.CreatedBy == createdBy {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeCampaignRepo) Update(c *entity.Campaign) error {
	r.campaigns[c.ID] = c
	return nil
}

func (r *fakeCampaignRepo) Delete(id string) error {
	delete(r.campaigns, id)
	return nil
}
