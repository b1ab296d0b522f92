package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/serranorte/serraria-api/internal/application/alerts"
	"github.com/serranorte/serraria-api/internal/application/auth"
	"github.com/serranorte/serraria-api/internal/application/production"
	"github.com/serranorte/serraria-api/internal/application/reporting"
	"github.com/serranorte/serraria-api/internal/application/sales"
	"github.com/serranorte/serraria-api/internal/application/stock"
	"github.com/serranorte/serraria-api/internal/application/trucks"
)

// RouterDeps dependências do router.
type RouterDeps struct {
	AuthUC       *auth.UseCase
	StockUC      *stock.UseCase
	TrucksUC     *trucks.UseCase
	ProductionUC *production.UseCase
	SalesUC      *sales.UseCase
	ReportingUC  *reporting.UseCase
	AlertsUC     *alerts.UseCase
	JWTSecret    string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rotas protegidas (exigem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Perfil
	protected.Get("/profile", authHandler.GetProfile)
	protected.Put("/profile", authHandler.UpdateProfile)

	// Estoque de madeira
	stockGroup := protected.Group("/stock")
	stockHandler := NewStockHandler(deps.StockUC)
	stockGroup.Post("/", stockHandler.Register)
	stockGroup.Get("/", stockHandler.List)
	stockGroup.Post("/:id/adjust", stockHandler.Adjust)

	// Pátio de caminhões
	trucksGroup := protected.Group("/trucks")
	truckHandler := NewTruckHandler(deps.TrucksUC)
	trucksGroup.Post("/", truckHandler.RecordArrival)
	trucksGroup.Get("/", truckHandler.List)
	trucksGroup.Post("/:id/departure", truckHandler.RecordDeparture)

	// Produção de paletes
	productionGroup := protected.Group("/production")
	productionHandler := NewProductionHandler(deps.ProductionUC)
	productionGroup.Post("/", productionHandler.Record)
	productionGroup.Get("/", productionHandler.List)

	// Vendas
	salesGroup := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.SalesUC)
	salesGroup.Post("/", saleHandler.Record)
	salesGroup.Get("/", saleHandler.List)

	// Painel e relatórios
	reportHandler := NewReportHandler(deps.ReportingUC)
	protected.Get("/dashboard", reportHandler.Dashboard)
	protected.Get("/reports", reportHandler.Summary)
	protected.Get("/reports/pdf", reportHandler.SummaryPDF)

	// Notificações
	notifGroup := protected.Group("/notifications")
	notificationHandler := NewNotificationHandler(deps.AlertsUC)
	notifGroup.Get("/", notificationHandler.List)
	notifGroup.Post("/sweep", notificationHandler.Sweep)
	notifGroup.Patch("/:id/read", notificationHandler.MarkRead)
	notifGroup.Post("/read-all", notificationHandler.MarkAllRead)
}
