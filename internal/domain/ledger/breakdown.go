// Package ledger holds the commission arithmetic of the payment ledger.
// The breakdown must be a pure function of its inputs: recording and any
// later recomputation of the same payment always yield the same figures.
package ledger

import (
	"github.com/kthaib/aqari-api/internal/domain"
	"github.com/kthaib/aqari-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

var one = decimal.NewFromInt(1)

// Breakdown is the commission split of a single payment.
//
//	CompanyCommission = round2(amount * companyRate)
//	VATOnCommission   = round2(CompanyCommission * vatRate)
//	NetToOwner        = amount - CompanyCommission - VATOnCommission
type Breakdown struct {
	CompanyCommission decimal.Decimal
	VATOnCommission   decimal.Decimal
	NetToOwner        decimal.Decimal
}

// Compute derives the commission split. Amount must be positive; rates are
// fractions in [0, 1). Deterministic and side-effect free.
func Compute(amount, companyRate, vatRate decimal.Decimal) (Breakdown, error) {
	if !amount.GreaterThan(decimal.Zero) {
		return Breakdown{}, domain.ErrInvalidInput
	}
	if companyRate.IsNegative() || companyRate.GreaterThanOrEqual(one) {
		return Breakdown{}, domain.ErrInvalidInput
	}
	if vatRate.IsNegative() || vatRate.GreaterThanOrEqual(one) {
		return Breakdown{}, domain.ErrInvalidInput
	}

	commission := amount.Mul(companyRate).Round(2)
	vat := commission.Mul(vatRate).Round(2)
	net := amount.Sub(commission).Sub(vat)

	return Breakdown{
		CompanyCommission: commission,
		VATOnCommission:   vat,
		NetToOwner:        net,
	}, nil
}

// Apply recomputes the payment's derived fields from its stored inputs.
func Apply(p *entity.Payment) error {
	b, err := Compute(p.Amount, p.CompanyRate, p.VATRate)
	if err != nil {
		return err
	}
	p.CompanyCommission = b.CompanyCommission
	p.VATOnCommission = b.VATOnCommission
	p.NetToOwner = b.NetToOwner
	return nil
}
