package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/serranorte/serraria-api/internal/application/alerts"
	"github.com/serranorte/serraria-api/internal/application/auth"
	"github.com/serranorte/serraria-api/internal/application/production"
	"github.com/serranorte/serraria-api/internal/application/reporting"
	"github.com/serranorte/serraria-api/internal/application/sales"
	"github.com/serranorte/serraria-api/internal/application/stock"
	"github.com/serranorte/serraria-api/internal/application/trucks"
	infrapdf "github.com/serranorte/serraria-api/internal/infrastructure/pdf"
	"github.com/serranorte/serraria-api/internal/infrastructure/postgres"
	httpRouter "github.com/serranorte/serraria-api/internal/interfaces/http"
	"github.com/serranorte/serraria-api/internal/scheduler"
	"github.com/serranorte/serraria-api/pkg/config"
	"github.com/serranorte/serraria-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão com PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	stockRepo := postgres.NewStockItemRepository(pool)
	truckRepo := postgres.NewTruckEntryRepository(pool)
	productionRepo := postgres.NewProductionRunRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	notifRepo := postgres.NewNotificationRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	pdfGenerator := infrapdf.NewMarotoPDFGenerator(cfg.App.Name)

	authUC := auth.New(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	stockUC := stock.New(txRunner, stockRepo)
	trucksUC := trucks.New(txRunner, truckRepo)
	productionUC := production.New(txRunner, productionRepo)
	salesUC := sales.New(txRunner, saleRepo)
	reportingUC := reporting.New(reportRepo, stockRepo, pdfGenerator)
	alertsUC := alerts.New(txRunner, notifRepo, stockRepo, reportRepo, log.Zerolog())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Serraria API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		StockUC:      stockUC,
		TrucksUC:     trucksUC,
		ProductionUC: productionUC,
		SalesUC:      salesUC,
		ReportingUC:  reportingUC,
		AlertsUC:     alertsUC,
		JWTSecret:    cfg.JWT.Secret,
	})

	sched := scheduler.New(cfg.Alerts.Cron, alertsUC, log.Zerolog())
	sched.Start()

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	sched.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
