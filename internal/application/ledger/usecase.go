package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/kthaib/aqari-api/internal/application/dto"
	"github.com/kthaib/aqari-api/internal/domain"
	"github.com/kthaib/aqari-api/internal/domain/entity"
	domledger "github.com/kthaib/aqari-api/internal/domain/ledger"
	"github.com/kthaib/aqari-api/internal/domain/repository"
	"github.com/kthaib/aqari-api/pkg/hijri"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// Rates are the default commission fractions applied when a recording
// omits its own.
type Rates struct {
	Company decimal.Decimal
	VAT     decimal.Decimal
}

// UseCase records, edits and removes ledger entries. Every mutation runs
// inside one transaction that locks the contract row, so the overpayment
// rule holds under concurrent recordings.
type UseCase struct {
	tx          TxRunner
	paymentRepo repository.PaymentRepository
	ownerRepo   repository.OwnerRepository
	tenantRepo  repository.TenantRepository
	rates       Rates
}

// NewUseCase builds the ledger use case.
func NewUseCase(
	tx TxRunner,
	paymentRepo repository.PaymentRepository,
	ownerRepo repository.OwnerRepository,
	tenantRepo repository.TenantRepository,
	rates Rates,
) *UseCase {
	return &UseCase{
		tx:          tx,
		paymentRepo: paymentRepo,
		ownerRepo:   ownerRepo,
		tenantRepo:  tenantRepo,
		rates:       rates,
	}
}

// validate normalizes the request into a payment skeleton. Runs before
// the transaction; everything here needs no locks.
func (uc *UseCase) validate(in dto.RecordPaymentRequest) (*entity.Payment, error) {
	if in.ContractID == "" || in.PayerID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.PayerType != entity.PayerOwner && in.PayerType != entity.PayerTenant {
		return nil, domain.ErrInvalidInput
	}
	if !in.Amount.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	date := time.Now().Truncate(24 * time.Hour)
	if in.Date != "" {
		var err error
		date, err = time.Parse(dateLayout, in.Date)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
	}

	companyRate := uc.rates.Company
	if in.CompanyRate != nil {
		if in.CompanyRate.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		companyRate = *in.CompanyRate
	}
	vatRate := uc.rates.VAT
	if in.VATRate != nil {
		if in.VATRate.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		vatRate = *in.VATRate
	}

	switch in.PayerType {
	case entity.PayerOwner:
		owner, err := uc.ownerRepo.GetByID(in.PayerID)
		if err != nil {
			return nil, err
		}
		if owner == nil {
			return nil, domain.ErrNotFound
		}
	case entity.PayerTenant:
		tenant, err := uc.tenantRepo.GetByID(in.PayerID)
		if err != nil {
			return nil, err
		}
		if tenant == nil {
			return nil, domain.ErrNotFound
		}
	}

	p := &entity.Payment{
		ContractID:  in.ContractID,
		PayerType:   in.PayerType,
		PayerID:     in.PayerID,
		Amount:      in.Amount,
		Date:        date,
		Description: in.Description,
		CompanyRate: companyRate,
		VATRate:     vatRate,
	}
	if err := domledger.Apply(p); err != nil {
		return nil, err
	}
	return p, nil
}

// Record writes a new ledger entry. The contract must be active, and
// when it carries a total obligation the recorded sum may not exceed it.
func (uc *UseCase) Record(ctx context.Context, actor string, in dto.RecordPaymentRequest) (*dto.PaymentResponse, error) {
	p, err := uc.validate(in)
	if err != nil {
		return nil, err
	}
	p.ID = uuid.New().String()
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now

	err = uc.tx.Run(ctx, func(
		contracts repository.ContractRepository,
		payments repository.PaymentRepository,
		audits repository.AuditRepository,
	) error {
		c, err := contracts.GetByIDForUpdate(p.ContractID)
		if err != nil {
			return err
		}
		if c == nil {
			return domain.ErrNotFound
		}
		if c.Status != entity.ContractStatusActive {
			return domain.ErrContractInactive
		}
		p.UnitID = c.UnitID

		if c.TotalAmount.GreaterThan(decimal.Zero) {
			paid, err := payments.SumByContract(c.ID, "")
			if err != nil {
				return err
			}
			if paid.Add(p.Amount).GreaterThan(c.TotalAmount) {
				return domain.ErrOverpayment
			}
		}
		if err := payments.Create(p); err != nil {
			return err
		}
		return audits.Create(&entity.AuditLog{
			ID:        uuid.New().String(),
			Action:    fmt.Sprintf("recorded payment of %s on contract %s", p.Amount.StringFixed(2), c.Number),
			User:      actor,
			Timestamp: now,
		})
	})
	if err != nil {
		return nil, err
	}
	return uc.toResponse(p), nil
}

// Update edits a ledger entry and recomputes its breakdown. The entry
// stays on its contract; moving payments between contracts is not
// supported.
func (uc *UseCase) Update(ctx context.Context, actor, id string, in dto.UpdatePaymentRequest) (*dto.PaymentResponse, error) {
	fresh, err := uc.validate(in)
	if err != nil {
		return nil, err
	}

	var updated *entity.Payment
	err = uc.tx.Run(ctx, func(
		contracts repository.ContractRepository,
		payments repository.PaymentRepository,
		audits repository.AuditRepository,
	) error {
		p, err := payments.GetByID(id)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.ErrNotFound
		}
		if in.ContractID != p.ContractID {
			return domain.ErrInvalidInput
		}
		c, err := contracts.GetByIDForUpdate(p.ContractID)
		if err != nil {
			return err
		}
		if c == nil {
			return domain.ErrNotFound
		}
		if c.TotalAmount.GreaterThan(decimal.Zero) {
			paid, err := payments.SumByContract(c.ID, p.ID)
			if err != nil {
				return err
			}
			if paid.Add(fresh.Amount).GreaterThan(c.TotalAmount) {
				return domain.ErrOverpayment
			}
		}

		p.PayerType = fresh.PayerType
		p.PayerID = fresh.PayerID
		p.Amount = fresh.Amount
		p.Date = fresh.Date
		p.Description = fresh.Description
		p.CompanyRate = fresh.CompanyRate
		p.VATRate = fresh.VATRate
		p.CompanyCommission = fresh.CompanyCommission
		p.VATOnCommission = fresh.VATOnCommission
		p.NetToOwner = fresh.NetToOwner
		p.UpdatedAt = time.Now()

		if err := payments.Update(p); err != nil {
			return err
		}
		updated = p
		return audits.Create(&entity.AuditLog{
			ID:        uuid.New().String(),
			Action:    fmt.Sprintf("updated payment %s", p.ID),
			User:      actor,
			Timestamp: p.UpdatedAt,
		})
	})
	if err != nil {
		return nil, err
	}
	return uc.toResponse(updated), nil
}

// Delete removes a ledger entry.
func (uc *UseCase) Delete(ctx context.Context, actor, id string) error {
	return uc.tx.Run(ctx, func(
		contracts repository.ContractRepository,
		payments repository.PaymentRepository,
		audits repository.AuditRepository,
	) error {
		p, err := payments.GetByID(id)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.ErrNotFound
		}
		if err := payments.Delete(id); err != nil {
			return err
		}
		return audits.Create(&entity.AuditLog{
			ID:        uuid.New().String(),
			Action:    fmt.Sprintf("deleted payment %s of %s", p.ID, p.Amount.StringFixed(2)),
			User:      actor,
			Timestamp: time.Now(),
		})
	})
}

// GetByID fetches one ledger entry.
func (uc *UseCase) GetByID(id string) (*dto.PaymentResponse, error) {
	p, err := uc.paymentRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return uc.toResponse(p), nil
}

// List lists ledger entries under the given filter.
func (uc *UseCase) List(filter repository.PaymentFilter, limit, offset int) ([]*dto.PaymentResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	list, err := uc.paymentRepo.List(filter, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PaymentResponse, 0, len(list))
	for _, p := range list {
		out = append(out, uc.toResponse(p))
	}
	return out, nil
}

func (uc *UseCase) payerName(payerType, payerID string) string {
	switch payerType {
	case entity.PayerOwner:
		if o, err := uc.ownerRepo.GetByID(payerID); err == nil && o != nil {
			return o.Name
		}
	case entity.PayerTenant:
		if t, err := uc.tenantRepo.GetByID(payerID); err == nil && t != nil {
			return t.Name
		}
	}
	return ""
}

func (uc *UseCase) toResponse(p *entity.Payment) *dto.PaymentResponse {
	return &dto.PaymentResponse{
		ID:                p.ID,
		ContractID:        p.ContractID,
		UnitID:            p.UnitID,
		PayerType:         p.PayerType,
		PayerID:           p.PayerID,
		PayerName:         uc.payerName(p.PayerType, p.PayerID),
		Amount:            p.Amount,
		Date:              p.Date.Format(dateLayout),
		DateHijri:         hijri.FormatTime(p.Date),
		Description:       p.Description,
		CompanyRate:       p.CompanyRate,
		VATRate:           p.VATRate,
		CompanyCommission: p.CompanyCommission,
		VATOnCommission:   p.VATOnCommission,
		NetToOwner:        p.NetToOwner,
	}
}
