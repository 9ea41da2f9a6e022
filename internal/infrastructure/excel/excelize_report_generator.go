// Package excel renders the payment ledger report as an XLSX workbook
// with excelize: a Payments sheet with the detail rows and totals, plus
// a Summary sheet with monthly and per-project aggregates.
package excel

import (
	"bytes"
	"fmt"

	"github.com/kthaib/aqari-api/internal/application/dto"
	"github.com/kthaib/aqari-api/internal/application/report"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

var _ report.ExcelGenerator = (*ExcelizeReportGenerator)(nil)

// ExcelizeReportGenerator implements report.ExcelGenerator.
type ExcelizeReportGenerator struct{}

// NewExcelizeReportGenerator builds the generator.
func NewExcelizeReportGenerator() *ExcelizeReportGenerator { return &ExcelizeReportGenerator{} }

const (
	sheetPayments = "Payments"
	sheetSummary  = "Summary"
)

// Generate renders the report and returns the workbook bytes.
func (g *ExcelizeReportGenerator) Generate(rep *dto.PaymentReport) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetPayments); err != nil {
		return nil, fmt.Errorf("excel: rename sheet: %w", err)
	}
	if _, err := f.NewSheet(sheetSummary); err != nil {
		return nil, fmt.Errorf("excel: create summary sheet: %w", err)
	}

	if err := writePayments(f, rep); err != nil {
		return nil, err
	}
	if err := writeSummary(f, rep); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("excel: write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writePayments(f *excelize.File, rep *dto.PaymentReport) error {
	header := []any{"Date", "Project", "Unit", "Payer Type", "Payer",
		"Amount", "Company Commission", "VAT on Commission", "Net to Owner", "Description"}
	if err := f.SetSheetRow(sheetPayments, "A1", &header); err != nil {
		return fmt.Errorf("excel: payments header: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("excel: style: %w", err)
	}
	if err := f.SetRowStyle(sheetPayments, 1, 1, bold); err != nil {
		return fmt.Errorf("excel: header style: %w", err)
	}

	for i, r := range rep.Rows {
		cell := fmt.Sprintf("A%d", i+2)
		values := []any{
			r.Date, r.ProjectName, r.UnitNumber, r.PayerType, r.PayerName,
			money(r.Amount), money(r.CompanyCommission), money(r.VATOnCommission), money(r.NetToOwner),
			r.Description,
		}
		if err := f.SetSheetRow(sheetPayments, cell, &values); err != nil {
			return fmt.Errorf("excel: payment row %d: %w", i, err)
		}
	}

	totalsRow := len(rep.Rows) + 3
	totals := []any{"TOTAL", "", "", "", "",
		money(rep.Totals.Gross), money(rep.Totals.Commissions), money(rep.Totals.VAT), money(rep.Totals.NetToOwners), ""}
	cell := fmt.Sprintf("A%d", totalsRow)
	if err := f.SetSheetRow(sheetPayments, cell, &totals); err != nil {
		return fmt.Errorf("excel: totals row: %w", err)
	}
	if err := f.SetRowStyle(sheetPayments, totalsRow, totalsRow, bold); err != nil {
		return fmt.Errorf("excel: totals style: %w", err)
	}
	return nil
}

func writeSummary(f *excelize.File, rep *dto.PaymentReport) error {
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("excel: style: %w", err)
	}

	title := []any{rep.CompanyName + " - generated " + rep.GeneratedAt.Format("2006-01-02")}
	if err := f.SetSheetRow(sheetSummary, "A1", &title); err != nil {
		return fmt.Errorf("excel: summary title: %w", err)
	}

	line := 3
	monthlyHeader := []any{"Month", "Payments", "Owner Payments", "Tenant Payments", "Total", "Commissions"}
	if err := f.SetSheetRow(sheetSummary, fmt.Sprintf("A%d", line), &monthlyHeader); err != nil {
		return fmt.Errorf("excel: monthly header: %w", err)
	}
	if err := f.SetRowStyle(sheetSummary, line, line, bold); err != nil {
		return fmt.Errorf("excel: monthly header style: %w", err)
	}
	line++
	for _, m := range rep.Monthly {
		values := []any{m.Month, m.Count, m.OwnerCount, m.TenantCount, money(m.Total), money(m.Commissions)}
		if err := f.SetSheetRow(sheetSummary, fmt.Sprintf("A%d", line), &values); err != nil {
			return fmt.Errorf("excel: monthly row: %w", err)
		}
		line++
	}

	line += 2
	projectHeader := []any{"Project", "Payments", "Total", "Commissions"}
	if err := f.SetSheetRow(sheetSummary, fmt.Sprintf("A%d", line), &projectHeader); err != nil {
		return fmt.Errorf("excel: project header: %w", err)
	}
	if err := f.SetRowStyle(sheetSummary, line, line, bold); err != nil {
		return fmt.Errorf("excel: project header style: %w", err)
	}
	line++
	for _, p := range rep.Projects {
		values := []any{p.ProjectName, p.Count, money(p.Total), money(p.Commissions)}
		if err := f.SetSheetRow(sheetSummary, fmt.Sprintf("A%d", line), &values); err != nil {
			return fmt.Errorf("excel: project row: %w", err)
		}
		line++
	}
	return nil
}

// money converts decimals to float64 cells so Excel treats them as numbers.
func money(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}
