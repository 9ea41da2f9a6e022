package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/kthaib/aqari-api/internal/application/dto"
	"github.com/kthaib/aqari-api/internal/application/ledger"
	"github.com/kthaib/aqari-api/internal/domain"
	"github.com/kthaib/aqari-api/internal/domain/repository"
)

// PaymentHandler handles ledger HTTP requests.
type PaymentHandler struct {
	uc *ledger.UseCase
}

// NewPaymentHandler builds the handler.
func NewPaymentHandler(uc *ledger.UseCase) *PaymentHandler {
	return &PaymentHandler{uc: uc}
}

// Record godoc
// @Summary      Record payment
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordPaymentRequest  true  "payment"
// @Success      201   {object}  dto.PaymentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/payments [post]
func (h *PaymentHandler) Record(c *fiber.Ctx) error {
	var in dto.RecordPaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	out, err := h.uc.Record(c.Context(), GetUserID(c), in)
	if err != nil {
		return paymentError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List GET /api/payments?contract_id=&unit_id=&project_id=&payer_type=&start_date=&end_date=&search=
func (h *PaymentHandler) List(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))
	filter := repository.PaymentFilter{
		ContractID: c.Query("contract_id"),
		UnitID:     c.Query("unit_id"),
		ProjectID:  c.Query("project_id"),
		PayerType:  c.Query("payer_type"),
		Search:     c.Query("search"),
	}
	if s := c.Query("start_date"); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "start_date must be YYYY-MM-DD"})
		}
		filter.StartDate = &t
	}
	if s := c.Query("end_date"); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "end_date must be YYYY-MM-DD"})
		}
		filter.EndDate = &t
	}
	list, err := h.uc.List(filter, limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// GetByID GET /api/payments/:id
func (h *PaymentHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "payment not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update PUT /api/payments/:id
func (h *PaymentHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	out, err := h.uc.Update(c.Context(), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return paymentError(c, err)
	}
	return c.JSON(out)
}

// Delete DELETE /api/payments/:id
func (h *PaymentHandler) Delete(c *fiber.Ctx) error {
	err := h.uc.Delete(c.Context(), GetUserID(c), c.Params("id"))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "payment not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// paymentError maps ledger errors shared by Record and Update.
func paymentError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrInvalidInput:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "contract_id, payer and a positive amount are required"})
	case domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "contract, payer or payment not found"})
	case domain.ErrContractInactive:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONTRACT_INACTIVE", Message: "payments can only be recorded on active contracts"})
	case domain.ErrOverpayment:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "OVERPAYMENT", Message: "amount would exceed the contract total"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
