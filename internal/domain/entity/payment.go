package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payer types for Payment.
const (
	PayerOwner  = "owner"
	PayerTenant = "tenant"
)

// Payment is a ledger entry recorded against a Contract (and through it a
// Unit). CompanyRate and VATRate are captured at recording time so later
// rate changes never rewrite history. The three derived fields are a pure
// function of (Amount, CompanyRate, VATRate); the ledger package computes them.
type Payment struct {
	ID          string
	ContractID  string
	UnitID      string
	PayerType   string // owner | tenant
	PayerID     string
	Amount      decimal.Decimal
	Date        time.Time
	Description string
	CompanyRate decimal.Decimal
	VATRate     decimal.Decimal

	// Derived at recording time, recomputed on edit.
	CompanyCommission decimal.Decimal
	VATOnCommission   decimal.Decimal
	NetToOwner        decimal.Decimal

	CreatedAt time.Time
	UpdatedAt time.Time
}
