// Package pdf renders the payment ledger report with Maroto v2.
//
// A4 page layout:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Company name  │  Report title + generated date      │
//	│  ───────────────────────────────────────────────────────── │
//	│  FILTER: period / project / payer type                      │
//	│  TOTALS: gross / commissions / VAT / net to owners          │
//	│  ───────────────────────────────────────────────────────── │
//	│  TABLE: Date | Project/Unit | Payer | Amount | Comm | Net   │
//	│  ───────────────────────────────────────────────────────── │
//	│  BY PROJECT: per-project subtotals                          │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/kthaib/aqari-api/internal/application/dto"
	"github.com/kthaib/aqari-api/internal/application/report"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 90, Blue: 60}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ report.PDFGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implements report.PDFGenerator using Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator builds the generator.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// Generate renders the report and returns the PDF bytes.
func (g *MarotoReportGenerator) Generate(rep *dto.PaymentReport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Payment Ledger Report", true).
		WithAuthor(rep.CompanyName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(rep))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(filterRow(rep.Filter))
	m.AddRows(totalsRow(rep.Totals))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableDetailRows(rep.Rows) {
		m.AddRows(r)
	}

	if len(rep.Projects) > 0 {
		m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
		m.AddRows(projectHeaderRow())
		for _, r := range projectRows(rep.Projects) {
			m.AddRows(r)
		}
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate document: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: company name (left), report title + generated date (right).
func headerRow(rep *dto.PaymentReport) core.Row {
	generated := rep.GeneratedAt.Format("02/01/2006 15:04")
	if rep.GeneratedAtHijri != "" {
		generated += "  (" + rep.GeneratedAtHijri + " AH)"
	}
	return row.New(18).Add(
		col.New(7).Add(
			text.New(rep.CompanyName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New("PAYMENT LEDGER REPORT", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(generated, props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

// filterRow: the applied filter in one line.
func filterRow(f dto.ReportFilterEcho) core.Row {
	period := "full ledger"
	if f.StartDate != "" || f.EndDate != "" {
		period = nonEmpty(f.StartDate, "…") + " to " + nonEmpty(f.EndDate, "…")
	}
	project := nonEmpty(f.ProjectName, nonEmpty(f.ProjectID, "all projects"))
	payer := nonEmpty(f.PayerType, "all payers")
	return row.New(8).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Period: %s   |   Project: %s   |   Payer: %s", period, project, payer),
				props.Text{Size: 8, Top: 2, Color: colorGray}),
		),
	)
}

// totalsRow: headline sums.
func totalsRow(t dto.ReportTotals) core.Row {
	cell := func(label, value string) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{Size: 7, Color: colorGray, Top: 1, Align: align.Center}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 10, Top: 5, Align: align.Center, Color: colorPrimary}),
		)
	}
	return row.New(12).Add(
		cell(fmt.Sprintf("GROSS (%d payments)", t.Count), t.Gross.StringFixed(2)),
		cell("COMMISSIONS", t.Commissions.StringFixed(2)),
		cell("VAT ON COMMISSION", t.VAT.StringFixed(2)),
		cell("NET TO OWNERS", t.NetToOwners.StringFixed(2)),
	)
}

// tableHeaderRow: detail table header.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Date", 2, align.Left),
		h("Project / Unit", 3, align.Left),
		h("Payer", 2, align.Left),
		h("Amount", 2, align.Right),
		h("Commission+VAT", 2, align.Right),
		h("Net", 1, align.Right),
	)
}

// tableDetailRows: one row per ledger entry.
func tableDetailRows(rows []dto.ReportRow) []core.Row {
	result := make([]core.Row, 0, len(rows))
	for _, r := range rows {
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(r.Date, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(3).Add(text.New(r.ProjectName+" / "+r.UnitNumber, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(r.PayerName, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(r.Amount.StringFixed(2), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(r.CompanyCommission.Add(r.VATOnCommission).StringFixed(2), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(1).Add(text.New(r.NetToOwner.StringFixed(2), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

// projectHeaderRow: per-project subtotal section header.
func projectHeaderRow() core.Row {
	return row.New(8).Add(
		col.New(12).Add(text.New("BY PROJECT", props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2,
		})),
	)
}

// projectRows: one row per project with its subtotals.
func projectRows(stats []dto.ProjectStatDTO) []core.Row {
	result := make([]core.Row, 0, len(stats))
	for _, s := range stats {
		result = append(result, row.New(6).Add(
			col.New(5).Add(text.New(s.ProjectName, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(fmt.Sprintf("%d payments", s.Count), props.Text{Size: 8, Top: 1, Color: colorGray})),
			col.New(3).Add(text.New(s.Total.StringFixed(2), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(s.Commissions.StringFixed(2), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
