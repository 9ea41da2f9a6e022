// adminctl is the operator CLI: runs migrations and seeds the first
// admin account without going through the HTTP API.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/kthaib/aqari-api/internal/application/auth"
	appcontract "github.com/kthaib/aqari-api/internal/application/contract"
	"github.com/kthaib/aqari-api/internal/application/dto"
	appledger "github.com/kthaib/aqari-api/internal/application/ledger"
	"github.com/kthaib/aqari-api/internal/application/usecase"
	"github.com/kthaib/aqari-api/internal/domain/entity"
	"github.com/kthaib/aqari-api/internal/infrastructure/postgres"
	"github.com/kthaib/aqari-api/internal/infrastructure/storage"
	"github.com/kthaib/aqari-api/pkg/config"
)

func main() {
	// .env is optional; real deployments set env vars directly.
	_ = godotenv.Load()

	root := &cobra.Command{
		Use:           "adminctl",
		Short:         "Operational tasks for the aqari API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(migrateCmd(), seedCmd(), seedDemoCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if err := postgres.RunMigrations(cfg.DB.ConnectionString()); err != nil {
				return err
			}
			fmt.Println("migrations applied")
			return nil
		},
	}
}

func seedCmd() *cobra.Command {
	var (
		email    string
		password string
		name     string
	)
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create the initial admin user",
		RunE: func(cmd *cobra.Command, args []string) error {
			if email == "" || password == "" {
				return fmt.Errorf("--email and --password are required")
			}
			if len(password) < 8 {
				return fmt.Errorf("password must be at least 8 characters")
			}
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			pool, err := postgres.NewPool(context.Background(), cfg.DB)
			if err != nil {
				return err
			}
			defer pool.Close()

			authUC := auth.NewAuthUseCase(postgres.NewUserRepository(pool), auth.JWTConfig{
				Secret:     cfg.JWT.Secret,
				ExpMinutes: cfg.JWT.Expiration,
				Issuer:     cfg.JWT.Issuer,
			})
			user, err := authUC.RegisterUser(dto.RegisterRequest{
				Email:    email,
				Password: password,
				Name:     name,
				Role:     entity.RoleAdmin,
			})
			if err != nil {
				return err
			}
			fmt.Printf("admin user created: %s (%s)\n", user.Email, user.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "admin email")
	cmd.Flags().StringVar(&password, "password", "", "admin password (min 8 chars)")
	cmd.Flags().StringVar(&name, "name", "", "display name (defaults to email)")
	return cmd
}

func seedDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed-demo",
		Short: "Populate the database with sample owners, tenants, units and payments",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			pool, err := postgres.NewPool(context.Background(), cfg.DB)
			if err != nil {
				return err
			}
			defer pool.Close()
			return seedDemo(cmd.Context(), cfg, pool)
		},
	}
}

// seedDemo writes a small realistic data set through the same use cases
// the API runs, so every guard and audit hook applies.
func seedDemo(ctx context.Context, cfg *config.Config, pool *pgxpool.Pool) error {
	const actor = "seed-demo"

	ownerRepo := postgres.NewOwnerRepository(pool)
	tenantRepo := postgres.NewTenantRepository(pool)
	projectRepo := postgres.NewProjectRepository(pool)
	unitRepo := postgres.NewUnitRepository(pool)
	contractRepo := postgres.NewContractRepository(pool)
	paymentRepo := postgres.NewPaymentRepository(pool)
	auditRepo := postgres.NewAuditRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	store, err := storage.NewLocalStore(cfg.Upload.Dir)
	if err != nil {
		return err
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

	owner, err := ownerUC.Create(actor, dto.CreateOwnerRequest{
		Name:       "Abdullah Al-Rashid",
		NationalID: "1012345678",
		Phone:      "+966501234567",
		Email:      "abdullah@example.sa",
		Address:    "King Fahd Road, Riyadh",
		SabNumber:  "SA4420000001234567891234",
	})
	if err != nil {
		return fmt.Errorf("seed owner: %w", err)
	}
	tenant, err := tenantUC.Create(actor, dto.CreateTenantRequest{
		Name:      "Fahad Al-Otaibi",
		Phone:     "+966555987654",
		Email:     "fahad@example.sa",
		SabNumber: "SA0380000000608010167519",
	})
	if err != nil {
		return fmt.Errorf("seed tenant: %w", err)
	}
	project, err := projectUC.Create(actor, dto.CreateProjectRequest{
		Name:     "Al Noor Towers",
		Location: "Olaya District, Riyadh",
	})
	if err != nil {
		return fmt.Errorf("seed project: %w", err)
	}

	unit, err := unitUC.Create(actor, dto.CreateUnitRequest{
		ProjectID:  project.ID,
		OwnerID:    owner.ID,
		UnitNumber: "A-101",
		Type:       "apartment",
		Area:       decimal.NewFromInt(120),
	})
	if err != nil {
		return fmt.Errorf("seed unit: %w", err)
	}
	if _, err := unitUC.Create(actor, dto.CreateUnitRequest{
		ProjectID:  project.ID,
		OwnerID:    owner.ID,
		UnitNumber: "A-102",
		Type:       "apartment",
		Area:       decimal.NewFromInt(95),
	}); err != nil {
		return fmt.Errorf("seed unit: %w", err)
	}

	year := time.Now().Year()
	contract, err := contractUC.Create(actor, dto.CreateContractRequest{
		UnitID:      unit.ID,
		TenantID:    tenant.ID,
		Number:      fmt.Sprintf("CT-%d-001", year),
		StartDate:   fmt.Sprintf("%d-01-01", year),
		EndDate:     fmt.Sprintf("%d-12-31", year),
		TotalAmount: decimal.NewFromInt(48000),
	})
	if err != nil {
		return fmt.Errorf("seed contract: %w", err)
	}

	for i, amount := range []int64{4000, 4000, 4000} {
		_, err := ledgerUC.Record(ctx, actor, dto.RecordPaymentRequest{
			ContractID:  contract.ID,
			PayerType:   entity.PayerTenant,
			PayerID:     tenant.ID,
			Amount:      decimal.NewFromInt(amount),
			Date:        fmt.Sprintf("%d-%02d-05", year, i+1),
			Description: fmt.Sprintf("monthly rent %d/%d", i+1, year),
		})
		if err != nil {
			return fmt.Errorf("seed payment: %w", err)
		}
	}

	fmt.Println("sample data created: 1 owner, 1 tenant, 1 project, 2 units, 1 contract, 3 payments")
	return nil
}
