package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/crm-ventas/internal/domain"
	"github.com/tu-usuario/crm-ventas/internal/domain/entity"
	"github.com/tu-usuario/crm-ventas/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación de InvoiceRepository (usable con pool o tx).
// numero_factura tiene índice único: el duplicado sale como ErrDuplicate.
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

const invoiceColumns = `id, client_id, rfc, quote_id, sale_id, numero_factura, fecha_factura,
	importe_sin_iva, importe_con_iva, pagado, fecha_pago, importe_pago, created_by, created_at, updated_at`

// Create persiste una nueva factura.
func (r *InvoiceRepo) Create(invoice *entity.Invoice) error {
	query := `
		INSERT INTO invoices (` + invoiceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(context.Background(), query,
		invoice.ID, invoice.ClientID, invoice.RFC, invoice.QuoteID, invoice.SaleID,
		invoice.NumeroFactura, invoice.FechaFactura, invoice.ImporteSinIVA, invoice.ImporteConIVA,
		invoice.Pagado, invoice.FechaPago, invoice.ImportePago, invoice.CreatedBy,
		invoice.CreatedAt, invoice.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// GetByID obtiene una factura por ID.
func (r *InvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE id = $1`
	var inv entity.Invoice
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&inv.ID, &inv.ClientID, &inv.RFC, &inv.QuoteID, &inv.SaleID,
		&inv.NumeroFactura, &inv.FechaFactura, &inv.ImporteSinIVA, &inv.ImporteConIVA,
		&inv.Pagado, &inv.FechaPago, &inv.ImportePago, &inv.CreatedBy,
		&inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return &inv, nil
}

// List lista facturas con paginación. createdBy vacío lista todas (OWNER).
func (r *InvoiceRepo) List(createdBy string, limit, offset int) ([]*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices
		WHERE ($1 = '' OR created_by = $1)
		ORDER BY fecha_factura DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, createdBy, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()
	var list []*entity.Invoice
	for rows.Next() {
		var inv entity.Invoice
		if err := rows.Scan(
			&inv.ID, &inv.ClientID, &inv.RFC, &inv.QuoteID, &inv.SaleID,
			&inv.NumeroFactura, &inv.FechaFactura, &inv.ImporteSinIVA, &inv.ImporteConIVA,
			&inv.Pagado, &inv.FechaPago, &inv.ImportePago, &inv.CreatedBy,
			&inv.CreatedAt, &inv.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, &inv)
	}
	return list, rows.Err()
}

// Update actualiza una factura. Cliente, cotización y RFC no se tocan.
func (r *InvoiceRepo) Update(invoice *entity.Invoice) error {
	query := `
		UPDATE invoices SET numero_factura = $2, fecha_factura = $3, importe_sin_iva = $4,
			importe_con_iva = $5, pagado = $6, fecha_pago = $7, importe_pago = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		invoice.ID, invoice.NumeroFactura, invoice.FechaFactura, invoice.ImporteSinIVA,
		invoice.ImporteConIVA, invoice.Pagado, invoice.FechaPago, invoice.ImportePago, invoice.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update invoice: %w", err)
	}
	return nil
}

// Delete elimina una factura por ID.
func (r *InvoiceRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete invoice: %w", err)
	}
	return nil
}
