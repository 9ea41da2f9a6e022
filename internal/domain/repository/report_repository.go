package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// ReportFilter is the filter shared by report queries and exports.
type ReportFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	ProjectID string
	PayerType string // owner | tenant | ""
}

// PaymentRow is a denormalized ledger row for reports: the payment joined
// with its unit, project and payer name.
type PaymentRow struct {
	ID                string
	Date              time.Time
	UnitNumber        string
	ProjectName       string
	PayerType         string
	PayerName         string
	Amount            decimal.Decimal
	CompanyCommission decimal.Decimal
	VATOnCommission   decimal.Decimal
	NetToOwner        decimal.Decimal
	Description       string
}

// MonthlyStat aggregates one calendar month of the ledger.
type MonthlyStat struct {
	Month       string // "2025-08"
	Count       int
	OwnerCount  int
	TenantCount int
	Total       decimal.Decimal
	Commissions decimal.Decimal
}

// ProjectStat aggregates the ledger for one project.
type ProjectStat struct {
	ProjectID   string
	ProjectName string
	Count       int
	Total       decimal.Decimal
	Commissions decimal.Decimal
}

// LedgerTotals are the headline sums of a filtered ledger slice.
type LedgerTotals struct {
	Count       int
	Gross       decimal.Decimal
	Commissions decimal.Decimal
	VAT         decimal.Decimal
	NetToOwners decimal.Decimal
}

// DashboardCounts are the entity counters shown on the dashboard.
type DashboardCounts struct {
	Owners         int
	Tenants        int
	Projects       int
	Units          int
	AvailableUnits int
	RentedUnits    int
}

// ReportRepository defines the read-only queries behind reports and the
// dashboard. Implementations never modify data.
type ReportRepository interface {
	FilterPayments(ctx context.Context, f ReportFilter) ([]PaymentRow, error)
	GetMonthlyStats(ctx context.Context, f ReportFilter) ([]MonthlyStat, error)
	GetProjectStats(ctx context.Context, f ReportFilter) ([]ProjectStat, error)
	GetLedgerTotals(ctx context.Context, f ReportFilter) (LedgerTotals, error)
	GetDashboardCounts(ctx context.Context) (DashboardCounts, error)
	GetRecentPayments(ctx context.Context, limit int) ([]PaymentRow, error)
}
