package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReportRow one payment in a rendered report.
type ReportRow struct {
	ID                string          `json:"id"`
	Date              string          `json:"date"`
	UnitNumber        string          `json:"unit_number"`
	ProjectName       string          `json:"project_name"`
	PayerType         string          `json:"payer_type"`
	PayerName         string          `json:"payer_name"`
	Amount            decimal.Decimal `json:"amount"`
	CompanyCommission decimal.Decimal `json:"company_commission"`
	VATOnCommission   decimal.Decimal `json:"vat_on_commission"`
	NetToOwner        decimal.Decimal `json:"net_to_owner"`
	Description       string          `json:"description,omitempty"`
}

// ReportTotals headline sums; always computed from the same rows the
// report renders.
type ReportTotals struct {
	Count       int             `json:"count"`
	Gross       decimal.Decimal `json:"gross"`
	Commissions decimal.Decimal `json:"commissions"`
	VAT         decimal.Decimal `json:"vat"`
	NetToOwners decimal.Decimal `json:"net_to_owners"`
}

// MonthlyStatDTO one month of ledger activity.
type MonthlyStatDTO struct {
	Month       string          `json:"month"` // "2025-08"
	Count       int             `json:"count"`
	OwnerCount  int             `json:"owner_count"`
	TenantCount int             `json:"tenant_count"`
	Total       decimal.Decimal `json:"total"`
	Commissions decimal.Decimal `json:"commissions"`
}

// QuarterlyStatDTO one quarter of ledger activity.
type QuarterlyStatDTO struct {
	Quarter     string          `json:"quarter"` // "2025-Q3"
	Count       int             `json:"count"`
	Total       decimal.Decimal `json:"total"`
	Commissions decimal.Decimal `json:"commissions"`
}

// ProjectStatDTO ledger activity of one project.
type ProjectStatDTO struct {
	ProjectID   string          `json:"project_id"`
	ProjectName string          `json:"project_name"`
	Count       int             `json:"count"`
	Total       decimal.Decimal `json:"total"`
	Commissions decimal.Decimal `json:"commissions"`
}

// ReportKPIs derived performance indicators.
type ReportKPIs struct {
	AveragePayment    decimal.Decimal `json:"average_payment"`
	AverageCommission decimal.Decimal `json:"average_commission"`
	CommissionPercent decimal.Decimal `json:"commission_percent"`
}

// ReportFilterEcho echoes the applied filter back in the report.
type ReportFilterEcho struct {
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
	ProjectID   string `json:"project_id,omitempty"`
	ProjectName string `json:"project_name,omitempty"`
	PayerType   string `json:"payer_type,omitempty"`
}

// PaymentReport is the assembled ledger report consumed by every
// renderer (JSON, CSV, Excel, PDF, text).
type PaymentReport struct {
	GeneratedAt      time.Time          `json:"generated_at"`
	GeneratedAtHijri string             `json:"generated_at_hijri,omitempty"`
	CompanyName      string             `json:"company_name"`
	Filter           ReportFilterEcho   `json:"filter"`
	Totals           ReportTotals       `json:"totals"`
	Rows             []ReportRow        `json:"rows"`
	Monthly          []MonthlyStatDTO   `json:"monthly"`
	Quarterly        []QuarterlyStatDTO `json:"quarterly"`
	Projects         []ProjectStatDTO   `json:"projects"`
	TopPayments      []ReportRow        `json:"top_payments"`
	KPIs             ReportKPIs         `json:"kpis"`
}

// DashboardResponse KPIs and recent activity for GET /api/dashboard.
type DashboardResponse struct {
	TotalPayments    decimal.Decimal `json:"total_payments"`
	TotalCommissions decimal.Decimal `json:"total_commissions"`
	TotalVAT         decimal.Decimal `json:"total_vat"`
	NetToOwners      decimal.Decimal `json:"net_to_owners"`
	Owners           int             `json:"owners"`
	Tenants          int             `json:"tenants"`
	Projects         int             `json:"projects"`
	Units            int             `json:"units"`
	AvailableUnits   int             `json:"available_units"`
	RentedUnits      int             `json:"rented_units"`
	RecentPayments   []ReportRow     `json:"recent_payments"`
	RecentAudit      []AuditEntryDTO `json:"recent_audit"`
}

// AuditEntryDTO one audit trail row.
type AuditEntryDTO struct {
	Action    string    `json:"action"`
	User      string    `json:"user"`
	Timestamp time.Time `json:"timestamp"`
}
