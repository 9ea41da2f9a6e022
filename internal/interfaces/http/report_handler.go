package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/kthaib/aqari-api/internal/application/dto"
	"github.com/kthaib/aqari-api/internal/application/report"
	"github.com/kthaib/aqari-api/internal/domain"
	"github.com/kthaib/aqari-api/internal/domain/repository"
)

// ReportHandler serves the payment ledger report in its five formats.
// All endpoints accept the same query filter: start_date, end_date,
// project_id, payer_type.
type ReportHandler struct {
	uc *report.UseCase
}

// NewReportHandler builds the handler.
func NewReportHandler(uc *report.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

func (h *ReportHandler) filter(c *fiber.Ctx) (repository.ReportFilter, error) {
	return report.ParseFilter(
		c.Query("start_date"),
		c.Query("end_date"),
		c.Query("project_id"),
		c.Query("payer_type"),
	)
}

func reportFilename(ext string) string {
	return fmt.Sprintf("payments_%s.%s", time.Now().Format("20060102"), ext)
}

// Payments GET /api/reports/payments
func (h *ReportHandler) Payments(c *fiber.Ctx) error {
	f, err := h.filter(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	rep, err := h.uc.Build(c.Context(), f)
	if err != nil {
		return reportError(c, err)
	}
	return c.JSON(rep)
}

// CSV GET /api/reports/payments/csv
func (h *ReportHandler) CSV(c *fiber.Ctx) error {
	f, err := h.filter(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.BuildCSV(c.Context(), f)
	if err != nil {
		return reportError(c, err)
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", reportFilename("csv")))
	return c.Send(out)
}

// Excel GET /api/reports/payments/excel
func (h *ReportHandler) Excel(c *fiber.Ctx) error {
	f, err := h.filter(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.BuildExcel(c.Context(), f)
	if err != nil {
		return reportError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", reportFilename("xlsx")))
	return c.Send(out)
}

// PDF GET /api/reports/payments/pdf
func (h *ReportHandler) PDF(c *fiber.Ctx) error {
	f, err := h.filter(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.BuildPDF(c.Context(), f)
	if err != nil {
		return reportError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", reportFilename("pdf")))
	return c.Send(out)
}

// Text GET /api/reports/payments/text
func (h *ReportHandler) Text(c *fiber.Ctx) error {
	f, err := h.filter(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.BuildText(c.Context(), f)
	if err != nil {
		return reportError(c, err)
	}
	c.Set(fiber.HeaderContentType, "text/plain; charset=utf-8")
	return c.Send(out)
}

func reportError(c *fiber.Ctx, err error) error {
	if err == domain.ErrNotFound {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "project not found"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
