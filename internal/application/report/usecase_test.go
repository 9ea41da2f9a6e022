package report

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/kthaib/aqari-api/internal/application/dto"
	"github.com/kthaib/aqari-api/internal/domain"
	"github.com/kthaib/aqari-api/internal/domain/entity"
	"github.com/kthaib/aqari-api/internal/domain/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubReportRepo struct {
	rows     []repository.PaymentRow
	monthly  []repository.MonthlyStat
	projects []repository.ProjectStat
}

func (r *stubReportRepo) FilterPayments(ctx context.Context, f repository.ReportFilter) ([]repository.PaymentRow, error) {
	return r.rows, nil
}

func (r *stubReportRepo) GetMonthlyStats(ctx context.Context, f repository.ReportFilter) ([]repository.MonthlyStat, error) {
	return r.monthly, nil
}

func (r *stubReportRepo) GetProjectStats(ctx context.Context, f repository.ReportFilter) ([]repository.ProjectStat, error) {
	return r.projects, nil
}

func (r *stubReportRepo) GetLedgerTotals(ctx context.Context, f repository.ReportFilter) (repository.LedgerTotals, error) {
	return repository.LedgerTotals{}, nil
}

func (r *stubReportRepo) GetDashboardCounts(ctx context.Context) (repository.DashboardCounts, error) {
	return repository.DashboardCounts{}, nil
}

func (r *stubReportRepo) GetRecentPayments(ctx context.Context, limit int) ([]repository.PaymentRow, error) {
	return nil, nil
}

type stubProjectRepo struct {
	projects map[string]*entity.Project
}

func (r *stubProjectRepo) Create(p *entity.Project) error { return nil }
func (r *stubProjectRepo) GetByID(id string) (*entity.Project, error) {
	return r.projects[id], nil
}
func (r *stubProjectRepo) GetByName(name string) (*entity.Project, error) { return nil, nil }
func (r *stubProjectRepo) List(search string, limit, offset int) ([]*entity.Project, error) {
	return nil, nil
}
func (r *stubProjectRepo) Update(p *entity.Project) error { return nil }
func (r *stubProjectRepo) Delete(id string) error         { return nil }

type stubGenerator struct{ out []byte }

func (g *stubGenerator) Generate(rep *dto.PaymentReport) ([]byte, error) { return g.out, nil }

func d(s string) decimal.Decimal {
	v, _ := decimal.NewFromString(s)
	return v
}

func row(id, date, amount string) repository.PaymentRow {
	t, _ := time.Parse("2006-01-02", date)
	a := d(amount)
	commission := a.Mul(d("0.05")).Round(2)
	vat := commission.Mul(d("0.15")).Round(2)
	return repository.PaymentRow{
		ID:                id,
		Date:              t,
		UnitNumber:        "A-101",
		ProjectName:       "Al Noor Towers",
		PayerType:         "tenant",
		PayerName:         "Fahad Al-Otaibi",
		Amount:            a,
		CompanyCommission: commission,
		VATOnCommission:   vat,
		NetToOwner:        a.Sub(commission).Sub(vat),
	}
}

func newReportFixture() (*UseCase, *stubReportRepo) {
	repo := &stubReportRepo{
		rows: []repository.PaymentRow{
			row("p1", "2025-01-15", "4500"),
			row("p2", "2025-02-10", "3000"),
			row("p3", "2025-04-05", "6000"),
		},
		monthly: []repository.MonthlyStat{
			{Month: "2025-01", Count: 1, TenantCount: 1, Total: d("4500"), Commissions: d("225")},
			{Month: "2025-02", Count: 1, TenantCount: 1, Total: d("3000"), Commissions: d("150")},
			{Month: "2025-04", Count: 1, TenantCount: 1, Total: d("6000"), Commissions: d("300")},
		},
		projects: []repository.ProjectStat{
			{ProjectID: "pr1", ProjectName: "Al Noor Towers", Count: 3, Total: d("13500"), Commissions: d("675")},
		},
	}
	projects := &stubProjectRepo{projects: map[string]*entity.Project{
		"pr1": {ID: "pr1", Name: "Al Noor Towers"},
	}}
	uc := NewUseCase(repo, projects, &stubGenerator{out: []byte("%PDF")}, &stubGenerator{out: []byte("PK")}, "Aqari Property Management")
	return uc, repo
}

func TestBuild_TotalsMatchRows(t *testing.T) {
	uc, _ := newReportFixture()

	rep, err := uc.Build(context.Background(), repository.ReportFilter{})
	require.NoError(t, err)

	assert.Equal(t, 3, rep.Totals.Count)
	assert.Equal(t, "13500", rep.Totals.Gross.String())
	assert.Equal(t, "675", rep.Totals.Commissions.String())

	// totals must equal the sum of the rendered rows
	sum := decimal.Zero
	for _, r := range rep.Rows {
		sum = sum.Add(r.Amount)
	}
	assert.True(t, rep.Totals.Gross.Equal(sum))
}

func TestBuild_TopPaymentsSorted(t *testing.T) {
	uc, _ := newReportFixture()

	rep, err := uc.Build(context.Background(), repository.ReportFilter{})
	require.NoError(t, err)

	require.Len(t, rep.TopPayments, 3)
	assert.Equal(t, "p3", rep.TopPayments[0].ID)
	assert.Equal(t, "p1", rep.TopPayments[1].ID)
	assert.Equal(t, "p2", rep.TopPayments[2].ID)
}

func TestBuild_TopPaymentsCapped(t *testing.T) {
	uc, repo := newReportFixture()
	for i := 0; i < 10; i++ {
		repo.rows = append(repo.rows, row("extra", "2025-03-01", "100"))
	}

	rep, err := uc.Build(context.Background(), repository.ReportFilter{})
	require.NoError(t, err)
	assert.Len(t, rep.TopPayments, topPaymentsCap)
}

func TestBuild_QuarterlyDerivedFromMonthly(t *testing.T) {
	uc, _ := newReportFixture()

	rep, err := uc.Build(context.Background(), repository.ReportFilter{})
	require.NoError(t, err)

	require.Len(t, rep.Quarterly, 2)
	assert.Equal(t, "2025-Q1", rep.Quarterly[0].Quarter)
	assert.Equal(t, 2, rep.Quarterly[0].Count)
	assert.Equal(t, "7500", rep.Quarterly[0].Total.String())
	assert.Equal(t, "2025-Q2", rep.Quarterly[1].Quarter)
	assert.Equal(t, "6000", rep.Quarterly[1].Total.String())
}

func TestBuild_KPIs(t *testing.T) {
	uc, _ := newReportFixture()

	rep, err := uc.Build(context.Background(), repository.ReportFilter{})
	require.NoError(t, err)

	assert.Equal(t, "4500", rep.KPIs.AveragePayment.String())
	assert.Equal(t, "225", rep.KPIs.AverageCommission.String())
	assert.Equal(t, "5", rep.KPIs.CommissionPercent.String())
}

func TestBuild_EmptyLedger(t *testing.T) {
	uc, repo := newReportFixture()
	repo.rows = nil
	repo.monthly = nil
	repo.projects = nil

	rep, err := uc.Build(context.Background(), repository.ReportFilter{})
	require.NoError(t, err)

	assert.Equal(t, 0, rep.Totals.Count)
	assert.True(t, rep.Totals.Gross.IsZero())
	assert.True(t, rep.KPIs.AveragePayment.IsZero())
	assert.Empty(t, rep.TopPayments)
}

func TestBuild_FilterEchoResolvesProjectName(t *testing.T) {
	uc, _ := newReportFixture()

	start := "2025-01-01"
	f, err := ParseFilter(start, "2025-12-31", "pr1", "tenant")
	require.NoError(t, err)

	rep, err := uc.Build(context.Background(), f)
	require.NoError(t, err)
	assert.Equal(t, "Al Noor Towers", rep.Filter.ProjectName)
	assert.Equal(t, start, rep.Filter.StartDate)
	assert.Equal(t, "tenant", rep.Filter.PayerType)
}

func TestParseFilter_Invalid(t *testing.T) {
	_, err := ParseFilter("2025-13-40", "", "", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = ParseFilter("2025-06-01", "2025-01-01", "", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = ParseFilter("", "", "", "broker")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRenderCSV(t *testing.T) {
	uc, _ := newReportFixture()

	out, err := uc.BuildCSV(context.Background(), repository.ReportFilter{})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	require.Len(t, lines, 5) // header + 3 rows + totals
	assert.Contains(t, lines[0], "company_commission")
	assert.Contains(t, lines[4], "TOTAL")
	assert.Contains(t, lines[4], "13500.00")
}

func TestRenderText(t *testing.T) {
	uc, _ := newReportFixture()

	out, err := uc.BuildText(context.Background(), repository.ReportFilter{})
	require.NoError(t, err)
	text := string(out)

	assert.Contains(t, text, "PAYMENT LEDGER REPORT")
	assert.Contains(t, text, "Aqari Property Management")
	assert.Contains(t, text, "TOTALS")
	assert.Contains(t, text, "MONTHLY ACTIVITY")
	assert.Contains(t, text, "QUARTERLY ACTIVITY")
	assert.Contains(t, text, "TOP PAYMENTS")
	assert.Contains(t, text, "Al Noor Towers")
}

func TestBuildPDFAndExcelDelegate(t *testing.T) {
	uc, _ := newReportFixture()
	ctx := context.Background()

	pdf, err := uc.BuildPDF(ctx, repository.ReportFilter{})
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(pdf))

	xlsx, err := uc.BuildExcel(ctx, repository.ReportFilter{})
	require.NoError(t, err)
	assert.Equal(t, "PK", string(xlsx))
}
