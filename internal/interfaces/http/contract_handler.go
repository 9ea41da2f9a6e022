package http

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/kthaib/aqari-api/internal/application/contract"
	"github.com/kthaib/aqari-api/internal/application/dto"
	"github.com/kthaib/aqari-api/internal/application/ledger"
	"github.com/kthaib/aqari-api/internal/domain"
)

// ContractHandler handles contract HTTP requests, including the
// document upload and download endpoints.
type ContractHandler struct {
	uc  *contract.UseCase
	bal *ledger.BalanceUseCase
}

// NewContractHandler builds the handler.
func NewContractHandler(uc *contract.UseCase, bal *ledger.BalanceUseCase) *ContractHandler {
	return &ContractHandler{uc: uc, bal: bal}
}

// Create POST /api/contracts
func (h *ContractHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateContractRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	out, err := h.uc.Create(GetUserID(c), in)
	if err != nil {
		switch err {
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "unit_id, tenant_id, number and a valid date range are required"})
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "unit or tenant not found"})
		case domain.ErrUnitOccupied:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "UNIT_OCCUPIED", Message: "unit already has an active contract or is sold"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List GET /api/contracts?unit_id=&tenant_id=&limit=20&offset=0
func (h *ContractHandler) List(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))
	list, err := h.uc.List(c.Query("unit_id"), c.Query("tenant_id"), limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// GetByID GET /api/contracts/:id
func (h *ContractHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "contract not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// End POST /api/contracts/:id/end
func (h *ContractHandler) End(c *fiber.Ctx) error {
	out, err := h.uc.End(GetUserID(c), c.Params("id"))
	if err != nil {
		switch err {
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "contract not found"})
		case domain.ErrContractInactive:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONTRACT_INACTIVE", Message: "contract is not active"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// AttachDocument POST /api/contracts/:id/document (multipart field "document")
func (h *ContractHandler) AttachDocument(c *fiber.Ctx) error {
	file, err := c.FormFile("document")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "multipart field 'document' is required"})
	}
	src, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "cannot read uploaded file"})
	}
	defer src.Close()

	out, err := h.uc.AttachDocument(GetUserID(c), c.Params("id"), file.Filename, src)
	if err != nil {
		switch err {
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "file name is required"})
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "contract not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetDocument GET /api/contracts/:id/document?disposition=inline
func (h *ContractHandler) GetDocument(c *fiber.Ctx) error {
	rc, name, err := h.uc.OpenDocument(c.Params("id"))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "contract has no document"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	disposition := "attachment"
	if c.Query("disposition") == "inline" {
		disposition = "inline"
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEOctetStream)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("%s; filename=%q", disposition, name))
	return c.SendStream(rc)
}

// Delete DELETE /api/contracts/:id
func (h *ContractHandler) Delete(c *fiber.Ctx) error {
	err := h.uc.Delete(GetUserID(c), c.Params("id"))
	if err != nil {
		switch err {
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "contract not found"})
		case domain.ErrConflict:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "contract has recorded payments"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Balance GET /api/contracts/:id/balance
func (h *ContractHandler) Balance(c *fiber.Ctx) error {
	out, err := h.bal.ContractBalance(c.Params("id"))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "contract not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
