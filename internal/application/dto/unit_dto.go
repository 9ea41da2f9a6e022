package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateUnitRequest body for POST /api/units.
type CreateUnitRequest struct {
	ProjectID  string          `json:"project_id"`
	OwnerID    string          `json:"owner_id,omitempty"`
	UnitNumber string          `json:"unit_number"`
	Type       string          `json:"type,omitempty"`
	Area       decimal.Decimal `json:"area"`
	Status     string          `json:"status,omitempty"` // defaults to available
}

// UpdateUnitRequest body for PUT /api/units/:id.
type UpdateUnitRequest = CreateUnitRequest

// UnitResponse unit in responses.
type UnitResponse struct {
	ID         string          `json:"id"`
	ProjectID  string          `json:"project_id"`
	OwnerID    string          `json:"owner_id,omitempty"`
	UnitNumber string          `json:"unit_number"`
	Type       string          `json:"type,omitempty"`
	Area       decimal.Decimal `json:"area"`
	Status     string          `json:"status"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}
