package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Contract statuses.
const (
	ContractStatusActive = "active"
	ContractStatusEnded  = "ended"
)

// Contract links a Tenant to a Unit. Dates are stored Gregorian and
// rendered in Hijri at the API surface. TotalAmount is the tenant's total
// obligation over the contract term; zero means no cap is enforced.
// DocumentFile holds the stored name of the uploaded contract document.
type Contract struct {
	ID           string
	UnitID       string
	TenantID     string
	Number       string
	StartDate    time.Time
	EndDate      time.Time
	TotalAmount  decimal.Decimal
	DocumentFile string
	Status       string // see ContractStatus* constants
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
