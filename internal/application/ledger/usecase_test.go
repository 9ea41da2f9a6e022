package ledger

import (
	"context"
	"testing"

	"github.com/kthaib/aqari-api/internal/application/dto"
	"github.com/kthaib/aqari-api/internal/domain"
	"github.com/kthaib/aqari-api/internal/domain/entity"
	"github.com/kthaib/aqari-api/internal/domain/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memContractRepo struct {
	contracts map[string]*entity.Contract
}

func (r *memContractRepo) Create(c *entity.Contract) error { r.contracts[c.ID] = c; return nil }

func (r *memContractRepo) GetByID(id string) (*entity.Contract, error) {
	c, ok := r.contracts[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *memContractRepo) GetByIDForUpdate(id string) (*entity.Contract, error) {
	return r.GetByID(id)
}

func (r *memContractRepo) GetActiveByUnit(unitID string) (*entity.Contract, error) { return nil, nil }
func (r *memContractRepo) ListByUnit(unitID string) ([]*entity.Contract, error)   { return nil, nil }
func (r *memContractRepo) ListByTenant(tenantID string) ([]*entity.Contract, error) {
	return nil, nil
}
func (r *memContractRepo) List(limit, offset int) ([]*entity.Contract, error) { return nil, nil }
func (r *memContractRepo) Update(c *entity.Contract) error                    { r.contracts[c.ID] = c; return nil }
func (r *memContractRepo) Delete(id string) error                             { delete(r.contracts, id); return nil }
func (r *memContractRepo) CountByTenant(tenantID string) (int, error)         { return 0, nil }

type memPaymentRepo struct {
	payments map[string]*entity.Payment
}

func (r *memPaymentRepo) Create(p *entity.Payment) error {
	cp := *p
	r.payments[p.ID] = &cp
	return nil
}

func (r *memPaymentRepo) GetByID(id string) (*entity.Payment, error) {
	p, ok := r.payments[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *memPaymentRepo) List(filter repository.PaymentFilter, limit, offset int) ([]*entity.Payment, error) {
	var out []*entity.Payment
	for _, p := range r.payments {
		if filter.ContractID != "" && p.ContractID != filter.ContractID {
			continue
		}
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memPaymentRepo) Update(p *entity.Payment) error {
	cp := *p
	r.payments[p.ID] = &cp
	return nil
}

func (r *memPaymentRepo) Delete(id string) error { delete(r.payments, id); return nil }

func (r *memPaymentRepo) SumByContract(contractID, excludePaymentID string) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, p := range r.payments {
		if p.ContractID != contractID || p.ID == excludePaymentID {
			continue
		}
		sum = sum.Add(p.Amount)
	}
	return sum, nil
}

func (r *memPaymentRepo) SumByUnit(unitID string) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, p := range r.payments {
		if p.UnitID == unitID {
			sum = sum.Add(p.Amount)
		}
	}
	return sum, nil
}

func (r *memPaymentRepo) OwnerTotals(ownerID string) (repository.OwnerBalance, error) {
	return repository.OwnerBalance{}, nil
}

func (r *memPaymentRepo) CountByContract(contractID string) (int, error) {
	n := 0
	for _, p := range r.payments {
		if p.ContractID == contractID {
			n++
		}
	}
	return n, nil
}

func (r *memPaymentRepo) CountByUnit(unitID string) (int, error) { return 0, nil }

type memAuditRepo struct {
	entries []*entity.AuditLog
}

func (r *memAuditRepo) Create(l *entity.AuditLog) error {
	r.entries = append(r.entries, l)
	return nil
}

func (r *memAuditRepo) ListRecent(limit int) ([]*entity.AuditLog, error) { return r.entries, nil }

type memOwnerRepo struct {
	owners map[string]*entity.Owner
}

func (r *memOwnerRepo) Create(o *entity.Owner) error { r.owners[o.ID] = o; return nil }
func (r *memOwnerRepo) GetByID(id string) (*entity.Owner, error) {
	o, ok := r.owners[id]
	if !ok {
		return nil, nil
	}
	return o, nil
}
func (r *memOwnerRepo) List(search string, limit, offset int) ([]*entity.Owner, error) {
	return nil, nil
}
func (r *memOwnerRepo) Update(o *entity.Owner) error { return nil }
func (r *memOwnerRepo) Delete(id string) error       { return nil }

type memTenantRepo struct {
	tenants map[string]*entity.Tenant
}

func (r *memTenantRepo) Create(t *entity.Tenant) error { r.tenants[t.ID] = t; return nil }
func (r *memTenantRepo) GetByID(id string) (*entity.Tenant, error) {
	t, ok := r.tenants[id]
	if !ok {
		return nil, nil
	}
	return t, nil
}
func (r *memTenantRepo) List(search string, limit, offset int) ([]*entity.Tenant, error) {
	return nil, nil
}
func (r *memTenantRepo) Update(t *entity.Tenant) error { return nil }
func (r *memTenantRepo) Delete(id string) error        { return nil }

// memTxRunner hands the in-memory repos straight to fn. No transaction
// semantics; the usecase logic under test is the same either way.
type memTxRunner struct {
	contracts *memContractRepo
	payments  *memPaymentRepo
	audits    *memAuditRepo
}

func (t *memTxRunner) Run(ctx context.Context, fn func(
	contracts repository.ContractRepository,
	payments repository.PaymentRepository,
	audits repository.AuditRepository,
) error) error {
	return fn(t.contracts, t.payments, t.audits)
}

type ledgerFixture struct {
	uc        *UseCase
	contracts *memContractRepo
	payments  *memPaymentRepo
	audits    *memAuditRepo
}

func defaultRates() Rates {
	return Rates{
		Company: decimal.NewFromFloat(0.05),
		VAT:     decimal.NewFromFloat(0.15),
	}
}

func newLedgerFixture() *ledgerFixture {
	contracts := &memContractRepo{contracts: map[string]*entity.Contract{
		"c1": {
			ID:          "c1",
			UnitID:      "u1",
			TenantID:    "t1",
			Number:      "CT-2025-001",
			TotalAmount: decimal.NewFromInt(10000),
			Status:      entity.ContractStatusActive,
		},
		"c2": {
			ID:       "c2",
			UnitID:   "u2",
			TenantID: "t1",
			Number:   "CT-2024-009",
			Status:   entity.ContractStatusEnded,
		},
		"c3": {
			ID:       "c3",
			UnitID:   "u3",
			TenantID: "t1",
			Number:   "CT-2025-002",
			Status:   entity.ContractStatusActive,
			// zero TotalAmount: no obligation cap
		},
	}}
	payments := &memPaymentRepo{payments: map[string]*entity.Payment{}}
	audits := &memAuditRepo{}
	owners := &memOwnerRepo{owners: map[string]*entity.Owner{
		"o1": {ID: "o1", Name: "Saleh Al-Qahtani"},
	}}
	tenants := &memTenantRepo{tenants: map[string]*entity.Tenant{
		"t1": {ID: "t1", Name: "Fahad Al-Otaibi"},
	}}
	tx := &memTxRunner{contracts: contracts, payments: payments, audits: audits}
	uc := NewUseCase(tx, payments, owners, tenants, defaultRates())
	return &ledgerFixture{uc: uc, contracts: contracts, payments: payments, audits: audits}
}

func record(contractID string, amount int64) dto.RecordPaymentRequest {
	return dto.RecordPaymentRequest{
		ContractID: contractID,
		PayerType:  entity.PayerTenant,
		PayerID:    "t1",
		Amount:     decimal.NewFromInt(amount),
		Date:       "2025-08-01",
	}
}

func ratePtr(f float64) *decimal.Decimal {
	d := decimal.NewFromFloat(f)
	return &d
}

func TestRecord_DefaultRates(t *testing.T) {
	f := newLedgerFixture()

	resp, err := f.uc.Record(context.Background(), "acct@test", record("c1", 4500))
	require.NoError(t, err)

	assert.Equal(t, "225", resp.CompanyCommission.String())
	assert.Equal(t, "33.75", resp.VATOnCommission.String())
	assert.Equal(t, "4241.25", resp.NetToOwner.String())
	assert.Equal(t, "0.05", resp.CompanyRate.String())
	assert.Equal(t, "0.15", resp.VATRate.String())
	assert.Equal(t, "u1", resp.UnitID)
	assert.Equal(t, "Fahad Al-Otaibi", resp.PayerName)
	assert.NotEmpty(t, resp.DateHijri)
	assert.Len(t, f.audits.entries, 1)
}

func TestRecord_ExplicitRates(t *testing.T) {
	f := newLedgerFixture()

	in := record("c1", 1000)
	in.CompanyRate = ratePtr(0.10)
	in.VATRate = ratePtr(0.15)
	resp, err := f.uc.Record(context.Background(), "acct@test", in)
	require.NoError(t, err)

	assert.Equal(t, "100", resp.CompanyCommission.String())
	assert.Equal(t, "15", resp.VATOnCommission.String())
	assert.Equal(t, "885", resp.NetToOwner.String())
}

func TestRecord_ExplicitZeroRates(t *testing.T) {
	f := newLedgerFixture()

	// An explicit zero is a commission-free payment, not a request for
	// the configured defaults.
	in := record("c1", 1000)
	in.CompanyRate = ratePtr(0)
	in.VATRate = ratePtr(0)
	resp, err := f.uc.Record(context.Background(), "acct@test", in)
	require.NoError(t, err)

	assert.True(t, resp.CompanyCommission.IsZero())
	assert.True(t, resp.VATOnCommission.IsZero())
	assert.Equal(t, "1000", resp.NetToOwner.String())
	assert.True(t, resp.CompanyRate.IsZero())
	assert.True(t, resp.VATRate.IsZero())
}

func TestRecord_NegativeRateRejected(t *testing.T) {
	f := newLedgerFixture()

	in := record("c1", 1000)
	in.CompanyRate = ratePtr(-0.05)
	_, err := f.uc.Record(context.Background(), "acct@test", in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRecord_InactiveContract(t *testing.T) {
	f := newLedgerFixture()

	_, err := f.uc.Record(context.Background(), "acct@test", record("c2", 1000))
	assert.ErrorIs(t, err, domain.ErrContractInactive)
}

func TestRecord_UnknownContract(t *testing.T) {
	f := newLedgerFixture()

	_, err := f.uc.Record(context.Background(), "acct@test", record("missing", 1000))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRecord_Overpayment(t *testing.T) {
	f := newLedgerFixture()

	_, err := f.uc.Record(context.Background(), "acct@test", record("c1", 6000))
	require.NoError(t, err)

	// 6000 + 5000 > 10000
	_, err = f.uc.Record(context.Background(), "acct@test", record("c1", 5000))
	assert.ErrorIs(t, err, domain.ErrOverpayment)

	// exact fill is allowed
	_, err = f.uc.Record(context.Background(), "acct@test", record("c1", 4000))
	assert.NoError(t, err)
}

func TestRecord_NoCapWhenTotalZero(t *testing.T) {
	f := newLedgerFixture()

	_, err := f.uc.Record(context.Background(), "acct@test", record("c3", 1000000))
	assert.NoError(t, err)
}

func TestRecord_InvalidInput(t *testing.T) {
	f := newLedgerFixture()
	ctx := context.Background()

	in := record("c1", 1000)
	in.PayerType = "broker"
	_, err := f.uc.Record(ctx, "acct@test", in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	in = record("c1", 0)
	_, err = f.uc.Record(ctx, "acct@test", in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	in = record("c1", 1000)
	in.Date = "01-08-2025"
	_, err = f.uc.Record(ctx, "acct@test", in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	in = record("c1", 1000)
	in.PayerID = "ghost"
	_, err = f.uc.Record(ctx, "acct@test", in)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdate_RecomputesBreakdown(t *testing.T) {
	f := newLedgerFixture()
	ctx := context.Background()

	created, err := f.uc.Record(ctx, "acct@test", record("c1", 4500))
	require.NoError(t, err)

	in := record("c1", 2000)
	updated, err := f.uc.Update(ctx, "acct@test", created.ID, in)
	require.NoError(t, err)

	assert.Equal(t, "100", updated.CompanyCommission.String())
	assert.Equal(t, "15", updated.VATOnCommission.String())
	assert.Equal(t, "1885", updated.NetToOwner.String())
}

func TestUpdate_OverpaymentExcludesSelf(t *testing.T) {
	f := newLedgerFixture()
	ctx := context.Background()

	first, err := f.uc.Record(ctx, "acct@test", record("c1", 6000))
	require.NoError(t, err)
	_, err = f.uc.Record(ctx, "acct@test", record("c1", 3000))
	require.NoError(t, err)

	// raising the first payment to 7000 would put the contract at 10000,
	// exactly the cap
	_, err = f.uc.Update(ctx, "acct@test", first.ID, record("c1", 7000))
	assert.NoError(t, err)

	_, err = f.uc.Update(ctx, "acct@test", first.ID, record("c1", 7001))
	assert.ErrorIs(t, err, domain.ErrOverpayment)
}

func TestUpdate_ContractIsImmutable(t *testing.T) {
	f := newLedgerFixture()
	ctx := context.Background()

	created, err := f.uc.Record(ctx, "acct@test", record("c1", 1000))
	require.NoError(t, err)

	_, err = f.uc.Update(ctx, "acct@test", created.ID, record("c3", 1000))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDelete_RemovesEntry(t *testing.T) {
	f := newLedgerFixture()
	ctx := context.Background()

	created, err := f.uc.Record(ctx, "acct@test", record("c1", 1000))
	require.NoError(t, err)

	require.NoError(t, f.uc.Delete(ctx, "acct@test", created.ID))
	_, err = f.uc.GetByID(created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = f.uc.Delete(ctx, "acct@test", created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
