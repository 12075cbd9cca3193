package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/outletaseo/outlet-api/internal/application/analytics"
	"github.com/outletaseo/outlet-api/internal/application/finance"
	"github.com/outletaseo/outlet-api/internal/application/inventory"
	"github.com/outletaseo/outlet-api/internal/application/reports"
	"github.com/outletaseo/outlet-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC        *usecase.ProductUseCase
	RegisterMovement *inventory.RegisterMovementUseCase
	ReportsUC        *reports.ReportsUseCase
	DashboardUC      *analytics.DashboardUseCase
	FinanceGate      *finance.GateUseCase
	AIUC             *usecase.AIUseCase
	BackupUC         *usecase.BackupUseCase
	ReportPDF        PeriodPDFGenerator
	JWTSecret        string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Inventory movements
	invGroup := api.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.RegisterMovement)
	invGroup.Post("/movements", inventoryHandler.Register)
	invGroup.Get("/movements", inventoryHandler.List)

	// Reports (públicos: rankings, stock bajo y reporte de período)
	reportsHandler := NewReportsHandler(deps.ReportsUC, deps.ReportPDF)
	reportsGroup := api.Group("/reports")
	reportsGroup.Get("/period", reportsHandler.Period)
	reportsGroup.Get("/period/export", reportsHandler.ExportCSV)
	reportsGroup.Get("/best-sellers", reportsHandler.BestSellers)
	reportsGroup.Get("/slow-movers", reportsHandler.SlowMovers)
	reportsGroup.Get("/low-stock", reportsHandler.LowStock)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	api.Get("/dashboard/summary", dashboardHandler.Summary)

	// Finance: unlock público, panel protegido por token con scope "finance"
	financeHandler := NewFinanceHandler(deps.FinanceGate)
	financeGroup := api.Group("/finance")
	financeGroup.Post("/unlock", financeHandler.Unlock)

	gated := financeGroup.Group("/", FinanceMiddleware(deps.JWTSecret))
	gated.Get("/report", reportsHandler.Period)
	gated.Get("/report/pdf", reportsHandler.ExportPDF)
	gated.Get("/daily-register", reportsHandler.DailyRegister)
	gated.Get("/daily-register/export", reportsHandler.ExportDailyRegisterCSV)
	gated.Get("/valuation", reportsHandler.Valuation)

	// Backup
	backupHandler := NewBackupHandler(deps.BackupUC)
	backupGroup := api.Group("/backup")
	backupGroup.Get("/export", backupHandler.Export)
	backupGroup.Post("/import", backupHandler.Import)

	// IA
	aiHandler := NewAIHandler(deps.AIUC)
	aiGroup := api.Group("/ai")
	aiGroup.Post("/description", aiHandler.GenerateDescription)
	aiGroup.Post("/analysis", aiHandler.AnalyzeHealth)
}
