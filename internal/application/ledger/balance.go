package ledger

import (
	"github.com/kthaib/aqari-api/internal/application/dto"
	"github.com/kthaib/aqari-api/internal/domain"
	"github.com/kthaib/aqari-api/internal/domain/repository"
)

// BalanceUseCase answers running-balance questions: how much has been
// recorded against a contract, a unit, or across an owner's portfolio.
type BalanceUseCase struct {
	contractRepo repository.ContractRepository
	unitRepo     repository.UnitRepository
	ownerRepo    repository.OwnerRepository
	paymentRepo  repository.PaymentRepository
}

// NewBalanceUseCase builds the balance use case.
func NewBalanceUseCase(
	contractRepo repository.ContractRepository,
	unitRepo repository.UnitRepository,
	ownerRepo repository.OwnerRepository,
	paymentRepo repository.PaymentRepository,
) *BalanceUseCase {
	return &BalanceUseCase{
		contractRepo: contractRepo,
		unitRepo:     unitRepo,
		ownerRepo:    ownerRepo,
		paymentRepo:  paymentRepo,
	}
}

// ContractBalance returns paid and outstanding figures for one contract.
func (uc *BalanceUseCase) ContractBalance(contractID string) (*dto.ContractBalanceResponse, error) {
	c, err := uc.contractRepo.GetByID(contractID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	paid, err := uc.paymentRepo.SumByContract(contractID, "")
	if err != nil {
		return nil, err
	}
	return &dto.ContractBalanceResponse{
		ContractID:  c.ID,
		TotalAmount: c.TotalAmount,
		Paid:        paid,
		Outstanding: c.TotalAmount.Sub(paid),
	}, nil
}

// UnitBalance returns the total recorded against one unit.
func (uc *BalanceUseCase) UnitBalance(unitID string) (*dto.UnitBalanceResponse, error) {
	u, err := uc.unitRepo.GetByID(unitID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNotFound
	}
	paid, err := uc.paymentRepo.SumByUnit(unitID)
	if err != nil {
		return nil, err
	}
	return &dto.UnitBalanceResponse{UnitID: u.ID, Paid: paid}, nil
}

// OwnerBalance aggregates the ledger over all of an owner's units.
func (uc *BalanceUseCase) OwnerBalance(ownerID string) (*dto.OwnerBalanceResponse, error) {
	o, err := uc.ownerRepo.GetByID(ownerID)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	totals, err := uc.paymentRepo.OwnerTotals(ownerID)
	if err != nil {
		return nil, err
	}
	return &dto.OwnerBalanceResponse{
		OwnerID:     o.ID,
		Gross:       totals.Gross,
		Commissions: totals.Commissions,
		VAT:         totals.VAT,
		Net:         totals.Net,
	}, nil
}
