package report

import "github.com/kthaib/aqari-api/internal/application/dto"

// PDFGenerator renders an assembled report as a PDF document.
type PDFGenerator interface {
	Generate(report *dto.PaymentReport) ([]byte, error)
}

// ExcelGenerator renders an assembled report as an XLSX workbook.
type ExcelGenerator interface {
	Generate(report *dto.PaymentReport) ([]byte, error)
}
