package report

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/kthaib/aqari-api/internal/application/dto"
	"github.com/kthaib/aqari-api/internal/domain"
	"github.com/kthaib/aqari-api/internal/domain/repository"
	"github.com/kthaib/aqari-api/pkg/hijri"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const (
	dateLayout     = "2006-01-02"
	topPaymentsCap = 5
)

var hundred = decimal.NewFromInt(100)

// UseCase assembles the payment ledger report. One assembled report
// feeds every output format, so JSON, CSV, Excel, PDF and text renditions
// of the same filter always agree.
type UseCase struct {
	reportRepo  repository.ReportRepository
	projectRepo repository.ProjectRepository
	pdf         PDFGenerator
	excel       ExcelGenerator
	companyName string
}

// NewUseCase builds the report use case.
func NewUseCase(
	reportRepo repository.ReportRepository,
	projectRepo repository.ProjectRepository,
	pdf PDFGenerator,
	excel ExcelGenerator,
	companyName string,
) *UseCase {
	return &UseCase{
		reportRepo:  reportRepo,
		projectRepo: projectRepo,
		pdf:         pdf,
		excel:       excel,
		companyName: companyName,
	}
}

// ParseFilter turns query-string values into a repository filter.
func ParseFilter(startDate, endDate, projectID, payerType string) (repository.ReportFilter, error) {
	var f repository.ReportFilter
	if startDate != "" {
		t, err := time.Parse(dateLayout, startDate)
		if err != nil {
			return f, domain.ErrInvalidInput
		}
		f.StartDate = &t
	}
	if endDate != "" {
		t, err := time.Parse(dateLayout, endDate)
		if err != nil {
			return f, domain.ErrInvalidInput
		}
		f.EndDate = &t
	}
	if f.StartDate != nil && f.EndDate != nil && f.EndDate.Before(*f.StartDate) {
		return f, domain.ErrInvalidInput
	}
	if payerType != "" && payerType != "owner" && payerType != "tenant" {
		return f, domain.ErrInvalidInput
	}
	f.ProjectID = projectID
	f.PayerType = payerType
	return f, nil
}

// Build runs the report queries concurrently and assembles the result.
// Headline totals are summed from the same rows the report renders, so
// the two can never drift apart.
func (uc *UseCase) Build(ctx context.Context, f repository.ReportFilter) (*dto.PaymentReport, error) {
	var (
		rows     []repository.PaymentRow
		monthly  []repository.MonthlyStat
		projects []repository.ProjectStat
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rows, err = uc.reportRepo.FilterPayments(gctx, f)
		return err
	})
	g.Go(func() error {
		var err error
		monthly, err = uc.reportRepo.GetMonthlyStats(gctx, f)
		return err
	})
	g.Go(func() error {
		var err error
		projects, err = uc.reportRepo.GetProjectStats(gctx, f)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	now := time.Now()
	rep := &dto.PaymentReport{
		GeneratedAt:      now,
		GeneratedAtHijri: hijri.FormatTime(now),
		CompanyName:      uc.companyName,
		Filter:           uc.echoFilter(f),
		Rows:             toRows(rows),
		Monthly:          toMonthly(monthly),
		Quarterly:        deriveQuarterly(monthly),
		Projects:         toProjects(projects),
	}
	rep.Totals = sumRows(rep.Rows)
	rep.TopPayments = topPayments(rep.Rows)
	rep.KPIs = deriveKPIs(rep.Totals)
	return rep, nil
}

// BuildPDF assembles the report and renders it as PDF.
func (uc *UseCase) BuildPDF(ctx context.Context, f repository.ReportFilter) ([]byte, error) {
	rep, err := uc.Build(ctx, f)
	if err != nil {
		return nil, err
	}
	return uc.pdf.Generate(rep)
}

// BuildExcel assembles the report and renders it as an XLSX workbook.
func (uc *UseCase) BuildExcel(ctx context.Context, f repository.ReportFilter) ([]byte, error) {
	rep, err := uc.Build(ctx, f)
	if err != nil {
		return nil, err
	}
	return uc.excel.Generate(rep)
}

// BuildCSV assembles the report and renders the rows as CSV.
func (uc *UseCase) BuildCSV(ctx context.Context, f repository.ReportFilter) ([]byte, error) {
	rep, err := uc.Build(ctx, f)
	if err != nil {
		return nil, err
	}
	return RenderCSV(rep)
}

// BuildText assembles the report and renders the full plain-text digest.
func (uc *UseCase) BuildText(ctx context.Context, f repository.ReportFilter) ([]byte, error) {
	rep, err := uc.Build(ctx, f)
	if err != nil {
		return nil, err
	}
	return []byte(RenderText(rep)), nil
}

func (uc *UseCase) echoFilter(f repository.ReportFilter) dto.ReportFilterEcho {
	echo := dto.ReportFilterEcho{
		ProjectID: f.ProjectID,
		PayerType: f.PayerType,
	}
	if f.StartDate != nil {
		echo.StartDate = f.StartDate.Format(dateLayout)
	}
	if f.EndDate != nil {
		echo.EndDate = f.EndDate.Format(dateLayout)
	}
	if f.ProjectID != "" {
		if p, err := uc.projectRepo.GetByID(f.ProjectID); err == nil && p != nil {
			echo.ProjectName = p.Name
		}
	}
	return echo
}

func toRows(rows []repository.PaymentRow) []dto.ReportRow {
	out := make([]dto.ReportRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.ReportRow{
			ID:                r.ID,
			Date:              r.Date.Format(dateLayout),
			UnitNumber:        r.UnitNumber,
			ProjectName:       r.ProjectName,
			PayerType:         r.PayerType,
			PayerName:         r.PayerName,
			Amount:            r.Amount,
			CompanyCommission: r.CompanyCommission,
			VATOnCommission:   r.VATOnCommission,
			NetToOwner:        r.NetToOwner,
			Description:       r.Description,
		})
	}
	return out
}

func toMonthly(stats []repository.MonthlyStat) []dto.MonthlyStatDTO {
	out := make([]dto.MonthlyStatDTO, 0, len(stats))
	for _, s := range stats {
		out = append(out, dto.MonthlyStatDTO{
			Month:       s.Month,
			Count:       s.Count,
			OwnerCount:  s.OwnerCount,
			TenantCount: s.TenantCount,
			Total:       s.Total,
			Commissions: s.Commissions,
		})
	}
	return out
}

func toProjects(stats []repository.ProjectStat) []dto.ProjectStatDTO {
	out := make([]dto.ProjectStatDTO, 0, len(stats))
	for _, s := range stats {
		out = append(out, dto.ProjectStatDTO{
			ProjectID:   s.ProjectID,
			ProjectName: s.ProjectName,
			Count:       s.Count,
			Total:       s.Total,
			Commissions: s.Commissions,
		})
	}
	return out
}

// deriveQuarterly folds monthly stats into quarters. Months arrive as
// "2006-01" strings; malformed ones are skipped.
func deriveQuarterly(monthly []repository.MonthlyStat) []dto.QuarterlyStatDTO {
	byQuarter := map[string]*dto.QuarterlyStatDTO{}
	for _, m := range monthly {
		parts := strings.SplitN(m.Month, "-", 2)
		if len(parts) != 2 {
			continue
		}
		month, err := strconv.Atoi(parts[1])
		if err != nil || month < 1 || month > 12 {
			continue
		}
		key := parts[0] + "-Q" + strconv.Itoa((month-1)/3+1)
		q, ok := byQuarter[key]
		if !ok {
			q = &dto.QuarterlyStatDTO{Quarter: key}
			byQuarter[key] = q
		}
		q.Count += m.Count
		q.Total = q.Total.Add(m.Total)
		q.Commissions = q.Commissions.Add(m.Commissions)
	}
	out := make([]dto.QuarterlyStatDTO, 0, len(byQuarter))
	for _, q := range byQuarter {
		out = append(out, *q)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Quarter < out[j].Quarter })
	return out
}

func sumRows(rows []dto.ReportRow) dto.ReportTotals {
	t := dto.ReportTotals{Count: len(rows)}
	for _, r := range rows {
		t.Gross = t.Gross.Add(r.Amount)
		t.Commissions = t.Commissions.Add(r.CompanyCommission)
		t.VAT = t.VAT.Add(r.VATOnCommission)
		t.NetToOwners = t.NetToOwners.Add(r.NetToOwner)
	}
	return t
}

func topPayments(rows []dto.ReportRow) []dto.ReportRow {
	top := make([]dto.ReportRow, len(rows))
	copy(top, rows)
	sort.SliceStable(top, func(i, j int) bool { return top[i].Amount.GreaterThan(top[j].Amount) })
	if len(top) > topPaymentsCap {
		top = top[:topPaymentsCap]
	}
	return top
}

func deriveKPIs(t dto.ReportTotals) dto.ReportKPIs {
	if t.Count == 0 {
		return dto.ReportKPIs{}
	}
	n := decimal.NewFromInt(int64(t.Count))
	kpis := dto.ReportKPIs{
		AveragePayment:    t.Gross.Div(n).Round(2),
		AverageCommission: t.Commissions.Div(n).Round(2),
	}
	if t.Gross.GreaterThan(decimal.Zero) {
		kpis.CommissionPercent = t.Commissions.Div(t.Gross).Mul(hundred).Round(2)
	}
	return kpis
}
