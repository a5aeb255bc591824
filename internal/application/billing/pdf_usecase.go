package billing

import (
	"context"
	"fmt"

	"github.com/tu-usuario/crm-ventas/internal/domain"
	"github.com/tu-usuario/crm-ventas/internal/domain/entity"
	"github.com/tu-usuario/crm-ventas/internal/domain/repository"
)

// PDFUseCase genera la propuesta comercial (PDF) de una cotización.
type PDFUseCase struct {
	quoteRepo  repository.QuoteRepository
	clientRepo repository.ClientRepository
	generator  QuotePDFGenerator
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(quoteRepo repository.QuoteRepository, clientRepo repository.ClientRepository, generator QuotePDFGenerator) *PDFUseCase {
	return &PDFUseCase{quoteRepo: quoteRepo, clientRepo: clientRepo, generator: generator}
}

// DownloadQuotePDF recupera cotización y cliente y genera la propuesta.
//
// Retorna:
//   - (pdfBytes, filename, nil) si todo sale bien.
//   - domain.ErrNotFound        si la cotización no existe.
//   - domain.ErrForbidden       si el actor no puede ver la cotización.
func (uc *PDFUseCase) DownloadQuotePDF(ctx context.Context, actor entity.Actor, quoteID string) (pdfBytes []byte, filename string, err error) {
	quote, err := uc.quoteRepo.GetByID(quoteID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener cotización: %w", err)
	}
	if quote == nil {
		return nil, "", domain.ErrNotFound
	}
	if !actor.CanAccess(quote.CreatedBy) {
		return nil, "", domain.ErrForbidden
	}

	client, err := uc.clientRepo.GetByID(quote.ClientID)
	if err != nil || client == nil {
		return nil, "", fmt.Errorf("pdf: obtener cliente: %w", err)
	}

	pdfBytes, err = uc.generator.GenerateQuotePDF(ctx, quote, client)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}

	filename = fmt.Sprintf("cotizacion_%d.pdf", quote.Folio)
	return pdfBytes, filename, nil
}
