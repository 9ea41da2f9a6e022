package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/kthaib/aqari-api/internal/application/auth"
	"github.com/kthaib/aqari-api/internal/application/contract"
	"github.com/kthaib/aqari-api/internal/application/ledger"
	"github.com/kthaib/aqari-api/internal/application/report"
	"github.com/kthaib/aqari-api/internal/application/usecase"
	"github.com/kthaib/aqari-api/internal/domain/entity"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	OwnerUC     *usecase.OwnerUseCase
	TenantUC    *usecase.TenantUseCase
	ProjectUC   *usecase.ProjectUseCase
	UnitUC      *usecase.UnitUseCase
	ContractUC  *contract.UseCase
	LedgerUC    *ledger.UseCase
	BalanceUC   *ledger.BalanceUseCase
	ReportUC    *report.UseCase
	DashboardUC *usecase.DashboardUseCase
	JWTSecret   string
}

// Router registers the API routes. Everything except auth runs behind
// the Bearer token; money endpoints additionally require the admin or
// accountant role, and deletes require admin.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (public)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Protected routes (require Bearer token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	money := RequireRole(entity.RoleAdmin, entity.RoleAccountant)
	adminOnly := RequireRole(entity.RoleAdmin)

	// Owners
	owners := protected.Group("/owners")
	ownerHandler := NewOwnerHandler(deps.OwnerUC, deps.BalanceUC)
	owners.Post("/", ownerHandler.Create)
	owners.Get("/", ownerHandler.List)
	owners.Get("/:id", ownerHandler.GetByID)
	owners.Get("/:id/balance", money, ownerHandler.Balance)
	owners.Put("/:id", ownerHandler.Update)
	owners.Delete("/:id", adminOnly, ownerHandler.Delete)

	// Tenants
	tenants := protected.Group("/tenants")
	tenantHandler := NewTenantHandler(deps.TenantUC)
	tenants.Post("/", tenantHandler.Create)
	tenants.Get("/", tenantHandler.List)
	tenants.Get("/:id", tenantHandler.GetByID)
	tenants.Put("/:id", tenantHandler.Update)
	tenants.Delete("/:id", adminOnly, tenantHandler.Delete)

	// Projects
	projects := protected.Group("/projects")
	projectHandler := NewProjectHandler(deps.ProjectUC)
	projects.Post("/", projectHandler.Create)
	projects.Get("/", projectHandler.List)
	projects.Get("/:id", projectHandler.GetByID)
	projects.Put("/:id", projectHandler.Update)
	projects.Delete("/:id", adminOnly, projectHandler.Delete)

	// Units
	units := protected.Group("/units")
	unitHandler := NewUnitHandler(deps.UnitUC, deps.BalanceUC)
	units.Post("/", unitHandler.Create)
	units.Get("/", unitHandler.List)
	units.Get("/:id", unitHandler.GetByID)
	units.Get("/:id/balance", money, unitHandler.Balance)
	units.Put("/:id", unitHandler.Update)
	units.Delete("/:id", adminOnly, unitHandler.Delete)

	// Contracts
	contracts := protected.Group("/contracts")
	contractHandler := NewContractHandler(deps.ContractUC, deps.BalanceUC)
	contracts.Post("/", contractHandler.Create)
	contracts.Get("/", contractHandler.List)
	contracts.Get("/:id", contractHandler.GetByID)
	contracts.Post("/:id/end", contractHandler.End)
	contracts.Post("/:id/document", contractHandler.AttachDocument)
	contracts.Get("/:id/document", contractHandler.GetDocument)
	contracts.Get("/:id/balance", money, contractHandler.Balance)
	contracts.Delete("/:id", adminOnly, contractHandler.Delete)

	// Payments (ledger, restricted)
	payments := protected.Group("/payments", money)
	paymentHandler := NewPaymentHandler(deps.LedgerUC)
	payments.Post("/", paymentHandler.Record)
	payments.Get("/", paymentHandler.List)
	payments.Get("/:id", paymentHandler.GetByID)
	payments.Put("/:id", paymentHandler.Update)
	payments.Delete("/:id", adminOnly, paymentHandler.Delete)

	// Reports (restricted)
	reports := protected.Group("/reports", money)
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/payments", reportHandler.Payments)
	reports.Get("/payments/csv", reportHandler.CSV)
	reports.Get("/payments/excel", reportHandler.Excel)
	reports.Get("/payments/pdf", reportHandler.PDF)
	reports.Get("/payments/text", reportHandler.Text)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.Get)
}
