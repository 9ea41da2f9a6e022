package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/kthaib/aqari-api/internal/application/dto"
	"github.com/kthaib/aqari-api/internal/application/usecase"
)

// DashboardHandler serves the dashboard aggregate.
type DashboardHandler struct {
	uc *usecase.DashboardUseCase
}

// NewDashboardHandler builds the handler.
func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Get GET /api/dashboard
func (h *DashboardHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
