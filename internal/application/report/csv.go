package report

import (
	"bytes"
	"encoding/csv"

	"github.com/kthaib/aqari-api/internal/application/dto"
)

var csvHeader = []string{
	"date", "project", "unit", "payer_type", "payer",
	"amount", "company_commission", "vat_on_commission", "net_to_owner", "description",
}

// RenderCSV writes the report rows plus a trailing totals line.
func RenderCSV(rep *dto.PaymentReport) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, r := range rep.Rows {
		record := []string{
			r.Date,
			r.ProjectName,
			r.UnitNumber,
			r.PayerType,
			r.PayerName,
			r.Amount.StringFixed(2),
			r.CompanyCommission.StringFixed(2),
			r.VATOnCommission.StringFixed(2),
			r.NetToOwner.StringFixed(2),
			r.Description,
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	totals := []string{
		"TOTAL", "", "", "", "",
		rep.Totals.Gross.StringFixed(2),
		rep.Totals.Commissions.StringFixed(2),
		rep.Totals.VAT.StringFixed(2),
		rep.Totals.NetToOwners.StringFixed(2),
		"",
	}
	if err := w.Write(totals); err != nil {
		return nil, err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
