package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kthaib/aqari-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo read-only queries behind reports and the dashboard. Rows are
// denormalized at the database: the payment joined with its unit, project
// and payer name, so renderers never chase references.
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepository builds the report adapter.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// reportFilterSQL is the shared WHERE fragment; placeholders $1..$4 are
// start date, end date, project id and payer type.
const reportFilterSQL = `
	  ($1::date IS NULL OR p.date >= $1)
	  AND ($2::date IS NULL OR p.date <= $2)
	  AND ($3 = '' OR u.project_id = $3)
	  AND ($4 = '' OR p.payer_type = $4)`

const reportRowSQL = `
	SELECT
	    p.id,
	    p.date,
	    u.unit_number,
	    pr.name,
	    p.payer_type,
	    COALESCE(o.name, t.name, '') AS payer_name,
	    p.amount,
	    p.company_commission,
	    p.vat_on_commission,
	    p.net_to_owner,
	    p.description
	FROM payments p
	JOIN units    u  ON u.id  = p.unit_id
	JOIN projects pr ON pr.id = u.project_id
	LEFT JOIN owners  o ON p.payer_type = 'owner'  AND o.id = p.payer_id
	LEFT JOIN tenants t ON p.payer_type = 'tenant' AND t.id = p.payer_id`

// FilterPayments returns the ledger rows matching the filter, oldest first.
func (r *ReportRepo) FilterPayments(ctx context.Context, f repository.ReportFilter) ([]repository.PaymentRow, error) {
	query := reportRowSQL + `
	WHERE` + reportFilterSQL + `
	ORDER BY p.date, p.created_at`
	rows, err := r.pool.Query(ctx, query, f.StartDate, f.EndDate, f.ProjectID, f.PayerType)
	if err != nil {
		return nil, fmt.Errorf("report.FilterPayments: %w", err)
	}
	defer rows.Close()

	var results []repository.PaymentRow
	for rows.Next() {
		var row repository.PaymentRow
		if err := rows.Scan(
			&row.ID, &row.Date, &row.UnitNumber, &row.ProjectName, &row.PayerType, &row.PayerName,
			&row.Amount, &row.CompanyCommission, &row.VATOnCommission, &row.NetToOwner, &row.Description,
		); err != nil {
			return nil, fmt.Errorf("report.FilterPayments scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// GetMonthlyStats groups the filtered ledger by calendar month.
func (r *ReportRepo) GetMonthlyStats(ctx context.Context, f repository.ReportFilter) ([]repository.MonthlyStat, error) {
	query := `
	SELECT
	    to_char(p.date, 'YYYY-MM')                                  AS month,
	    COUNT(*)                                                     AS payment_count,
	    COUNT(*) FILTER (WHERE p.payer_type = 'owner')               AS owner_count,
	    COUNT(*) FILTER (WHERE p.payer_type = 'tenant')              AS tenant_count,
	    COALESCE(SUM(p.amount), 0)                                   AS total,
	    COALESCE(SUM(p.company_commission), 0)                       AS commissions
	FROM payments p
	JOIN units u ON u.id = p.unit_id
	WHERE` + reportFilterSQL + `
	GROUP BY to_char(p.date, 'YYYY-MM')
	ORDER BY month`
	rows, err := r.pool.Query(ctx, query, f.StartDate, f.EndDate, f.ProjectID, f.PayerType)
	if err != nil {
		return nil, fmt.Errorf("report.GetMonthlyStats: %w", err)
	}
	defer rows.Close()

	var results []repository.MonthlyStat
	for rows.Next() {
		var s repository.MonthlyStat
		if err := rows.Scan(&s.Month, &s.Count, &s.OwnerCount, &s.TenantCount, &s.Total, &s.Commissions); err != nil {
			return nil, fmt.Errorf("report.GetMonthlyStats scan: %w", err)
		}
		results = append(results, s)
	}
	return results, rows.Err()
}

// GetProjectStats groups the filtered ledger by project, biggest first.
func (r *ReportRepo) GetProjectStats(ctx context.Context, f repository.ReportFilter) ([]repository.ProjectStat, error) {
	query := `
	SELECT
	    pr.id,
	    pr.name,
	    COUNT(*)                               AS payment_count,
	    COALESCE(SUM(p.amount), 0)             AS total,
	    COALESCE(SUM(p.company_commission), 0) AS commissions
	FROM payments p
	JOIN units    u  ON u.id  = p.unit_id
	JOIN projects pr ON pr.id = u.project_id
	WHERE` + reportFilterSQL + `
	GROUP BY pr.id, pr.name
	ORDER BY total DESC`
	rows, err := r.pool.Query(ctx, query, f.StartDate, f.EndDate, f.ProjectID, f.PayerType)
	if err != nil {
		return nil, fmt.Errorf("report.GetProjectStats: %w", err)
	}
	defer rows.Close()

	var results []repository.ProjectStat
	for rows.Next() {
		var s repository.ProjectStat
		if err := rows.Scan(&s.ProjectID, &s.ProjectName, &s.Count, &s.Total, &s.Commissions); err != nil {
			return nil, fmt.Errorf("report.GetProjectStats scan: %w", err)
		}
		results = append(results, s)
	}
	return results, rows.Err()
}

// GetLedgerTotals returns the headline sums of the filtered ledger. Uses
// COALESCE so an empty slice yields zeros.
func (r *ReportRepo) GetLedgerTotals(ctx context.Context, f repository.ReportFilter) (repository.LedgerTotals, error) {
	query := `
	SELECT
	    COUNT(*),
	    COALESCE(SUM(p.amount), 0),
	    COALESCE(SUM(p.company_commission), 0),
	    COALESCE(SUM(p.vat_on_commission), 0),
	    COALESCE(SUM(p.net_to_owner), 0)
	FROM payments p
	JOIN units u ON u.id = p.unit_id
	WHERE` + reportFilterSQL
	var t repository.LedgerTotals
	err := r.pool.QueryRow(ctx, query, f.StartDate, f.EndDate, f.ProjectID, f.PayerType).
		Scan(&t.Count, &t.Gross, &t.Commissions, &t.VAT, &t.NetToOwners)
	if err != nil {
		return repository.LedgerTotals{}, fmt.Errorf("report.GetLedgerTotals: %w", err)
	}
	return t, nil
}

// GetDashboardCounts returns the entity counters shown on the dashboard.
func (r *ReportRepo) GetDashboardCounts(ctx context.Context) (repository.DashboardCounts, error) {
	query := `
	SELECT
	    (SELECT COUNT(*) FROM owners),
	    (SELECT COUNT(*) FROM tenants),
	    (SELECT COUNT(*) FROM projects),
	    (SELECT COUNT(*) FROM units),
	    (SELECT COUNT(*) FROM units WHERE status = 'available'),
	    (SELECT COUNT(*) FROM units WHERE status = 'rented')`
	var c repository.DashboardCounts
	err := r.pool.QueryRow(ctx, query).
		Scan(&c.Owners, &c.Tenants, &c.Projects, &c.Units, &c.AvailableUnits, &c.RentedUnits)
	if err != nil {
		return repository.DashboardCounts{}, fmt.Errorf("report.GetDashboardCounts: %w", err)
	}
	return c, nil
}

// GetRecentPayments returns the newest ledger rows.
func (r *ReportRepo) GetRecentPayments(ctx context.Context, limit int) ([]repository.PaymentRow, error) {
	query := reportRowSQL + `
	ORDER BY p.date DESC, p.created_at DESC
	LIMIT $1`
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("report.GetRecentPayments: %w", err)
	}
	defer rows.Close()

	var results []repository.PaymentRow
	for rows.Next() {
		var row repository.PaymentRow
		if err := rows.Scan(
			&row.ID, &row.Date, &row.UnitNumber, &row.ProjectName, &row.PayerType, &row.PayerName,
			&row.Amount, &row.CompanyCommission, &row.VATOnCommission, &row.NetToOwner, &row.Description,
		); err != nil {
			return nil, fmt.Errorf("report.GetRecentPayments scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
