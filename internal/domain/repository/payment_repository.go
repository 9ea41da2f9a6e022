package repository

import (
	"time"

	"github.com/kthaib/aqari-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// PaymentFilter narrows payment listings.
type PaymentFilter struct {
	ContractID string
	UnitID     string
	ProjectID  string
	PayerType  string
	StartDate  *time.Time
	EndDate    *time.Time
	Search     string // matches description
}

// OwnerBalance aggregates the ledger for one owner's units.
type OwnerBalance struct {
	Gross       decimal.Decimal
	Commissions decimal.Decimal
	VAT         decimal.Decimal
	Net         decimal.Decimal
}

// PaymentRepository is the persistence port for the payment ledger.
type PaymentRepository interface {
	Create(payment *entity.Payment) error
	GetByID(id string) (*entity.Payment, error)
	List(filter PaymentFilter, limit, offset int) ([]*entity.Payment, error)
	Update(payment *entity.Payment) error
	Delete(id string) error
	// SumByContract returns the total recorded against a contract,
	// optionally excluding one payment (used when editing it).
	SumByContract(contractID, excludePaymentID string) (decimal.Decimal, error)
	SumByUnit(unitID string) (decimal.Decimal, error)
	OwnerTotals(ownerID string) (OwnerBalance, error)
	CountByContract(contractID string) (int, error)
	CountByUnit(unitID string) (int, error)
}
