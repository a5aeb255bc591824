package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/crm-ventas/internal/application/analytics"
	"github.com/tu-usuario/crm-ventas/internal/application/auth"
	"github.com/tu-usuario/crm-ventas/internal/application/billing"
	"github.com/tu-usuario/crm-ventas/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	ClientUC    *usecase.ClientUseCase
	QuoteUC     *usecase.QuoteUseCase
	SaleUC      *usecase.SaleUseCase
	PostSaleUC  *usecase.PostSaleUseCase
	CampaignUC  *usecase.CampaignUseCase
	InvoiceUC   *billing.InvoiceUseCase
	PDFUC       *billing.PDFUseCase
	DashboardUC *analytics.DashboardUseCase
	ReportUC    *analytics.ReportUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público: bootstrap del dueño y login)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register-owner", authHandler.RegisterOwner)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Alta de vendedores (protegido, solo OWNER)
	protected.Post("/auth/register", RequireOwner(), authHandler.RegisterWorker)

	// Clients (protegido)
	clients := protected.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Get("/check-rfc", clientHandler.CheckRFC)
	clients.Get("/check-name", clientHandler.CheckNombre)
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Put("/:id", clientHandler.Update)
	clients.Delete("/:id", clientHandler.Delete)

	// Quotes (protegido)
	quotes := protected.Group("/quotes")
	quoteHandler := NewQuoteHandler(deps.QuoteUC, deps.PDFUC)
	quotes.Post("/", quoteHandler.Create)
	quotes.Get("/", quoteHandler.List)
	quotes.Get("/:id", quoteHandler.GetByID)
	quotes.Put("/:id", quoteHandler.Update)
	quotes.Delete("/:id", quoteHandler.Delete)
	quotes.Post("/:id/approve", quoteHandler.Approve)
	quotes.Post("/:id/reject", quoteHandler.Reject)
	quotes.Get("/:id/pdf", quoteHandler.DownloadPDF)

	// Sales (protegido)
	sales := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC)
	sales.Post("/", saleHandler.Create)
	sales.Get("/", saleHandler.List)
	sales.Get("/:id", saleHandler.GetByID)
	sales.Put("/:id", saleHandler.UpdateStage)
	sales.Post("/:id/close", saleHandler.Close)
	sales.Post("/:id/notes", saleHandler.AddNote)
	sales.Post("/:id/tasks", saleHandler.AddTask)
	sales.Put("/:id/tasks/:taskId/complete", saleHandler.CompleteTask)

	// Post-sales (protegido)
	postSales := protected.Group("/post-sales")
	postSaleHandler := NewPostSaleHandler(deps.PostSaleUC)
	postSales.Post("/", postSaleHandler.Create)
	postSales.Get("/", postSaleHandler.List)
	postSales.Get("/:id", postSaleHandler.GetByID)
	postSales.Put("/:id", postSaleHandler.Update)
	postSales.Delete("/:id", postSaleHandler.Delete)

	// Invoices (protegido)
	invoices := protected.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/", invoiceHandler.List)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Put("/:id", invoiceHandler.Update)
	invoices.Delete("/:id", invoiceHandler.Delete)

	// Campaigns (protegido)
	campaigns := protected.Group("/campaigns")
	campaignHandler := NewCampaignHandler(deps.CampaignUC)
	campaigns.Post("/", campaignHandler.Create)
	campaigns.Get("/", campaignHandler.List)
	campaigns.Get("/:id", campaignHandler.GetByID)
	campaigns.Put("/:id", campaignHandler.Update)
	campaigns.Delete("/:id", campaignHandler.Delete)

	// Dashboard (protegido)
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/overview", dashboardHandler.Overview)
	dashboard.Get("/pipeline", dashboardHandler.Pipeline)
	dashboard.Get("/billing", dashboardHandler.Billing)
	dashboard.Get("/clients", dashboardHandler.Clients)
	dashboard.Get("/quotes", dashboardHandler.Quotes)

	// Reports (protegido)
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/projections", reportHandler.Projections)
	reports.Get("/publicidad", reportHandler.Publicidad)
	reports.Get("/activaciones", reportHandler.Activaciones)
	reports.Get("/sales", reportHandler.Sales)
}
