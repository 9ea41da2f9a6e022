package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateContractRequest body for POST /api/contracts.
// Dates are Gregorian "2006-01-02"; the Hijri rendering is derived.
type CreateContractRequest struct {
	UnitID      string          `json:"unit_id"`
	TenantID    string          `json:"tenant_id"`
	Number      string          `json:"number"`
	StartDate   string          `json:"start_date"`
	EndDate     string          `json:"end_date"`
	TotalAmount decimal.Decimal `json:"total_amount"` // zero = no obligation cap
}

// ContractResponse contract in responses, with Hijri date renderings.
type ContractResponse struct {
	ID             string          `json:"id"`
	UnitID         string          `json:"unit_id"`
	TenantID       string          `json:"tenant_id"`
	TenantName     string          `json:"tenant_name,omitempty"`
	Number         string          `json:"number"`
	StartDate      string          `json:"start_date"`
	StartDateHijri string          `json:"start_date_hijri,omitempty"`
	EndDate        string          `json:"end_date"`
	EndDateHijri   string          `json:"end_date_hijri,omitempty"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	DocumentFile   string          `json:"document_file,omitempty"`
	Status         string          `json:"status"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}
