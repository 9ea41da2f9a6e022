package report

import (
	"fmt"
	"strings"

	"github.com/kthaib/aqari-api/internal/application/dto"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const textRule = "================================================================"

// RenderText produces the comprehensive plain-text digest: header,
// filter, totals, KPIs, monthly and quarterly activity, per-project
// breakdown, top payments and the detail lines.
func RenderText(rep *dto.PaymentReport) string {
	p := message.NewPrinter(language.English)
	var b strings.Builder

	b.WriteString(textRule + "\n")
	b.WriteString(fmt.Sprintf("%s\n", rep.CompanyName))
	b.WriteString("PAYMENT LEDGER REPORT\n")
	b.WriteString(fmt.Sprintf("Generated: %s", rep.GeneratedAt.Format("2006-01-02 15:04")))
	if rep.GeneratedAtHijri != "" {
		b.WriteString(fmt.Sprintf(" (%s AH)", rep.GeneratedAtHijri))
	}
	b.WriteString("\n" + textRule + "\n\n")

	writeFilter(&b, rep.Filter)

	b.WriteString("TOTALS\n")
	b.WriteString(fmt.Sprintf("  Payments:          %d\n", rep.Totals.Count))
	b.WriteString(p.Sprintf("  Gross:             %.2f\n", amount(rep.Totals.Gross)))
	b.WriteString(p.Sprintf("  Commissions:       %.2f\n", amount(rep.Totals.Commissions)))
	b.WriteString(p.Sprintf("  VAT on commission: %.2f\n", amount(rep.Totals.VAT)))
	b.WriteString(p.Sprintf("  Net to owners:     %.2f\n", amount(rep.Totals.NetToOwners)))
	b.WriteString("\n")

	b.WriteString("KPIS\n")
	b.WriteString(p.Sprintf("  Average payment:    %.2f\n", amount(rep.KPIs.AveragePayment)))
	b.WriteString(p.Sprintf("  Average commission: %.2f\n", amount(rep.KPIs.AverageCommission)))
	b.WriteString(p.Sprintf("  Commission percent: %.2f%%\n", amount(rep.KPIs.CommissionPercent)))
	b.WriteString("\n")

	if len(rep.Monthly) > 0 {
		b.WriteString("MONTHLY ACTIVITY\n")
		for _, m := range rep.Monthly {
			b.WriteString(p.Sprintf("  %s  payments=%d (owners=%d tenants=%d)  total=%.2f  commissions=%.2f\n",
				m.Month, m.Count, m.OwnerCount, m.TenantCount, amount(m.Total), amount(m.Commissions)))
		}
		b.WriteString("\n")
	}

	if len(rep.Quarterly) > 0 {
		b.WriteString("QUARTERLY ACTIVITY\n")
		for _, q := range rep.Quarterly {
			b.WriteString(p.Sprintf("  %s  payments=%d  total=%.2f  commissions=%.2f\n",
				q.Quarter, q.Count, amount(q.Total), amount(q.Commissions)))
		}
		b.WriteString("\n")
	}

	if len(rep.Projects) > 0 {
		b.WriteString("BY PROJECT\n")
		for _, pr := range rep.Projects {
			b.WriteString(p.Sprintf("  %-30s payments=%d  total=%.2f  commissions=%.2f\n",
				pr.ProjectName, pr.Count, amount(pr.Total), amount(pr.Commissions)))
		}
		b.WriteString("\n")
	}

	if len(rep.TopPayments) > 0 {
		b.WriteString("TOP PAYMENTS\n")
		for i, r := range rep.TopPayments {
			b.WriteString(p.Sprintf("  %d. %s  %s/%s  %s (%s)  %.2f\n",
				i+1, r.Date, r.ProjectName, r.UnitNumber, r.PayerName, r.PayerType, amount(r.Amount)))
		}
		b.WriteString("\n")
	}

	b.WriteString("DETAIL\n")
	if len(rep.Rows) == 0 {
		b.WriteString("  no payments match the filter\n")
	}
	for _, r := range rep.Rows {
		b.WriteString(p.Sprintf("  %s  %s/%s  %s (%s)  amount=%.2f  commission=%.2f  vat=%.2f  net=%.2f",
			r.Date, r.ProjectName, r.UnitNumber, r.PayerName, r.PayerType,
			amount(r.Amount), amount(r.CompanyCommission), amount(r.VATOnCommission), amount(r.NetToOwner)))
		if r.Description != "" {
			b.WriteString("  " + r.Description)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n" + textRule + "\n")
	return b.String()
}

func writeFilter(b *strings.Builder, f dto.ReportFilterEcho) {
	b.WriteString("FILTER\n")
	if f.StartDate == "" && f.EndDate == "" && f.ProjectID == "" && f.PayerType == "" {
		b.WriteString("  none (full ledger)\n\n")
		return
	}
	if f.StartDate != "" {
		b.WriteString(fmt.Sprintf("  From:       %s\n", f.StartDate))
	}
	if f.EndDate != "" {
		b.WriteString(fmt.Sprintf("  To:         %s\n", f.EndDate))
	}
	if f.ProjectID != "" {
		name := f.ProjectName
		if name == "" {
			name = f.ProjectID
		}
		b.WriteString(fmt.Sprintf("  Project:    %s\n", name))
	}
	if f.PayerType != "" {
		b.WriteString(fmt.Sprintf("  Payer type: %s\n", f.PayerType))
	}
	b.WriteString("\n")
}

func amount(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}
