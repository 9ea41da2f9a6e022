package dto

import (
	"github.com/shopspring/decimal"
)

// RecordPaymentRequest body for POST /api/payments.
// CompanyRate/VATRate are optional; the configured defaults apply when
// the field is absent, while an explicit 0 records a commission-free
// payment. Date is Gregorian "2006-01-02"; empty means today.
type RecordPaymentRequest struct {
	ContractID  string           `json:"contract_id"`
	PayerType   string           `json:"payer_type"` // owner | tenant
	PayerID     string           `json:"payer_id"`
	Amount      decimal.Decimal  `json:"amount"`
	Date        string           `json:"date,omitempty"`
	Description string           `json:"description,omitempty"`
	CompanyRate *decimal.Decimal `json:"company_rate,omitempty"`
	VATRate     *decimal.Decimal `json:"vat_rate,omitempty"`
}

// UpdatePaymentRequest body for PUT /api/payments/:id. The commission
// breakdown is recomputed from the updated inputs.
type UpdatePaymentRequest = RecordPaymentRequest

// PaymentResponse one ledger entry in responses.
type PaymentResponse struct {
	ID                string          `json:"id"`
	ContractID        string          `json:"contract_id"`
	UnitID            string          `json:"unit_id"`
	PayerType         string          `json:"payer_type"`
	PayerID           string          `json:"payer_id"`
	PayerName         string          `json:"payer_name,omitempty"`
	Amount            decimal.Decimal `json:"amount"`
	Date              string          `json:"date"`
	DateHijri         string          `json:"date_hijri,omitempty"`
	Description       string          `json:"description,omitempty"`
	CompanyRate       decimal.Decimal `json:"company_rate"`
	VATRate           decimal.Decimal `json:"vat_rate"`
	CompanyCommission decimal.Decimal `json:"company_commission"`
	VATOnCommission   decimal.Decimal `json:"vat_on_commission"`
	NetToOwner        decimal.Decimal `json:"net_to_owner"`
}

// ContractBalanceResponse running balance of one contract.
type ContractBalanceResponse struct {
	ContractID  string          `json:"contract_id"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Paid        decimal.Decimal `json:"paid"`
	Outstanding decimal.Decimal `json:"outstanding"`
}

// UnitBalanceResponse total recorded against one unit.
type UnitBalanceResponse struct {
	UnitID string          `json:"unit_id"`
	Paid   decimal.Decimal `json:"paid"`
}

// OwnerBalanceResponse ledger aggregate over all of an owner's units.
type OwnerBalanceResponse struct {
	OwnerID     string          `json:"owner_id"`
	Gross       decimal.Decimal `json:"gross"`
	Commissions decimal.Decimal `json:"commissions"`
	VAT         decimal.Decimal `json:"vat"`
	Net         decimal.Decimal `json:"net"`
}
