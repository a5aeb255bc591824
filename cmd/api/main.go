package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/tu-usuario/crm-ventas/internal/application/analytics"
	"github.com/tu-usuario/crm-ventas/internal/application/auth"
	"github.com/tu-usuario/crm-ventas/internal/application/billing"
	"github.com/tu-usuario/crm-ventas/internal/application/usecase"
	"github.com/tu-usuario/crm-ventas/internal/domain/entity"
	"github.com/tu-usuario/crm-ventas/internal/domain/event"
	infrapdf "github.com/tu-usuario/crm-ventas/internal/infrastructure/pdf"
	"github.com/tu-usuario/crm-ventas/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/crm-ventas/internal/interfaces/http"
	"github.com/tu-usuario/crm-ventas/pkg/config"
	"github.com/tu-usuario/crm-ventas/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	quoteRepo := postgres.NewQuoteRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	postSaleRepo := postgres.NewPostSaleRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	campaignRepo := postgres.NewCampaignRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Al cerrar una venta, el estado del cliente se espeja a "cierre".
	dispatcher := event.NewDispatcher()
	dispatcher.SubscribeSaleClosed(func(e event.SaleClosed) error {
		return clientRepo.UpdateStatus(e.ClientID, entity.StageCierre)
	})

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	clientUC := usecase.NewClientUseCase(clientRepo, userRepo)
	quoteUC := usecase.NewQuoteUseCase(txRunner, quoteRepo, clientRepo)
	saleUC := usecase.NewSaleUseCase(saleRepo, quoteRepo, clientRepo, dispatcher)
	postSaleUC := usecase.NewPostSaleUseCase(postSaleRepo, saleRepo)
	campaignUC := usecase.NewCampaignUseCase(campaignRepo, clientRepo)
	invoiceUC := billing.NewInvoiceUseCase(txRunner, invoiceRepo, clientRepo, quoteRepo, saleRepo)

	// PDF: propuesta comercial de la cotización
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	pdfUC := billing.NewPDFUseCase(quoteRepo, clientRepo, pdfGenerator)

	dashboardUC := analytics.NewDashboardUseCase(analyticsRepo)
	reportUC := analytics.NewReportUseCase(analyticsRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		ClientUC:    clientUC,
		QuoteUC:     quoteUC,
		SaleUC:      saleUC,
		PostSaleUC:  postSaleUC,
		CampaignUC:  campaignUC,
		InvoiceUC:   invoiceUC,
		PDFUC:       pdfUC,
		DashboardUC: dashboardUC,
		ReportUC:    reportUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
