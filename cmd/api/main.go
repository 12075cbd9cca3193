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
	appanalytics "github.com/outletaseo/outlet-api/internal/application/analytics"
	"github.com/outletaseo/outlet-api/internal/application/finance"
	"github.com/outletaseo/outlet-api/internal/application/inventory"
	"github.com/outletaseo/outlet-api/internal/application/reports"
	"github.com/outletaseo/outlet-api/internal/application/usecase"
	infraai "github.com/outletaseo/outlet-api/internal/infrastructure/ai"
	"github.com/outletaseo/outlet-api/internal/infrastructure/jsonfile"
	infrapdf "github.com/outletaseo/outlet-api/internal/infrastructure/pdf"
	httpRouter "github.com/outletaseo/outlet-api/internal/interfaces/http"
	"github.com/outletaseo/outlet-api/internal/store"
	"github.com/outletaseo/outlet-api/pkg/config"
	"github.com/outletaseo/outlet-api/pkg/logger"
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

	// Estado en memoria + persistencia JSON en disco
	st := store.New()
	var fileRepo *jsonfile.Repository
	if cfg.Store.Path != "" {
		fileRepo = jsonfile.NewRepository(cfg.Store.Path, log)
		snap, err := fileRepo.Load()
		if err != nil {
			log.Fatal().Err(err).Msg("cargar inventario desde disco")
		}
		if snap != nil {
			if err := st.Restore(*snap); err != nil {
				log.Fatal().Err(err).Msg("restaurar inventario")
			}
		}
		// Cada cambio de estado se vuelca a disco
		st.Subscribe(func(snap store.Snapshot) {
			if err := fileRepo.Save(snap); err != nil {
				log.Error().Err(err).Msg("guardar inventario en disco")
			}
		})
	} else {
		log.Warn().Msg("STORE_PATH vacío: el inventario no se persiste")
	}

	// Casos de uso
	productUC := usecase.NewProductUseCase(st)
	registerMovementUC := inventory.NewRegisterMovementUseCase(st)
	reportsUC := reports.NewReportsUseCase(st)
	dashboardUC := appanalytics.NewDashboardUseCase(st)
	backupUC := usecase.NewBackupUseCase(st)

	financeGate, err := finance.NewGateUseCase(
		cfg.Finance.Password, cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Expiration,
	)
	if err != nil {
		log.Fatal().Err(err).Msg("configurar candado financiero")
	}

	geminiSvc := infraai.NewGeminiService(cfg.AI.GeminiAPIKey, cfg.AI.GeminiModel)
	aiUC := usecase.NewAIUseCase(geminiSvc, dashboardUC)

	pdfGenerator := infrapdf.NewMarotoReportGenerator(cfg.App.Name)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30, // los exports PDF pueden demorar
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Outlet API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:        productUC,
		RegisterMovement: registerMovementUC,
		ReportsUC:        reportsUC,
		DashboardUC:      dashboardUC,
		FinanceGate:      financeGate,
		AIUC:             aiUC,
		BackupUC:         backupUC,
		ReportPDF:        pdfGenerator,
		JWTSecret:        cfg.JWT.Secret,
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
