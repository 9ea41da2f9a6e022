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
	"github.com/kthaib/aqari-api/internal/application/auth"
	appcontract "github.com/kthaib/aqari-api/internal/application/contract"
	appledger "github.com/kthaib/aqari-api/internal/application/ledger"
	appreport "github.com/kthaib/aqari-api/internal/application/report"
	"github.com/kthaib/aqari-api/internal/application/usecase"
	infraexcel "github.com/kthaib/aqari-api/internal/infrastructure/excel"
	infrapdf "github.com/kthaib/aqari-api/internal/infrastructure/pdf"
	"github.com/kthaib/aqari-api/internal/infrastructure/postgres"
	"github.com/kthaib/aqari-api/internal/infrastructure/storage"
	httpRouter "github.com/kthaib/aqari-api/internal/interfaces/http"
	"github.com/kthaib/aqari-api/pkg/config"
	"github.com/kthaib/aqari-api/pkg/logger"
	"github.com/shopspring/decimal"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	if err := postgres.RunMigrations(cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("database migrations")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection")
	}
	defer pool.Close()

	ownerRepo := postgres.NewOwnerRepository(pool)
	tenantRepo := postgres.NewTenantRepository(pool)
	projectRepo := postgres.NewProjectRepository(pool)
	unitRepo := postgres.NewUnitRepository(pool)
	contractRepo := postgres.NewContractRepository(pool)
	paymentRepo := postgres.NewPaymentRepository(pool)
	auditRepo := postgres.NewAuditRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	store, err := storage.NewLocalStore(cfg.Upload.Dir)
	if err != nil {
		log.Fatal().Err(err).Str("dir", cfg.Upload.Dir).Msg("document storage")
	}

	ownerUC := usecase.NewOwnerUseCase(ownerRepo, unitRepo, auditRepo)
	tenantUC := usecase.NewTenantUseCase(tenantRepo, contractRepo, auditRepo)
	projectUC := usecase.NewProjectUseCase(projectRepo, unitRepo, auditRepo)
	unitUC := usecase.NewUnitUseCase(unitRepo, projectRepo, ownerRepo, paymentRepo, auditRepo)
	contractUC := appcontract.NewUseCase(contractRepo, unitRepo, tenantRepo, paymentRepo, auditRepo, store)

	ledgerUC := appledger.NewUseCase(txRunner, paymentRepo, ownerRepo, tenantRepo, appledger.Rates{
		Company: decimal.NewFromFloat(cfg.Ledger.CompanyRate),
		VAT:     decimal.NewFromFloat(cfg.Ledger.VATRate),
	})
	balanceUC := appledger.NewBalanceUseCase(contractRepo, unitRepo, ownerRepo, paymentRepo)

	pdfGenerator := infrapdf.NewMarotoReportGenerator()
	excelGenerator := infraexcel.NewExcelizeReportGenerator()
	reportUC := appreport.NewUseCase(reportRepo, projectRepo, pdfGenerator, excelGenerator, cfg.App.Name)
	dashboardUC := usecase.NewDashboardUseCase(reportRepo, auditRepo)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		BodyLimit:    cfg.Upload.MaxSizeMB * 1024 * 1024,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Aqari API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		OwnerUC:     ownerUC,
		TenantUC:    tenantUC,
		ProjectUC:   projectUC,
		UnitUC:      unitUC,
		ContractUC:  contractUC,
		LedgerUC:    ledgerUC,
		BalanceUC:   balanceUC,
		ReportUC:    reportUC,
		DashboardUC: dashboardUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, closing server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
