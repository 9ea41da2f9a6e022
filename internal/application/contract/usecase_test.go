package contract

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/kthaib/aqari-api/internal/application/dto"
	"github.com/kthaib/aqari-api/internal/domain"
	"github.com/kthaib/aqari-api/internal/domain/entity"
	"github.com/kthaib/aqari-api/internal/domain/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeContractRepo struct {
	contracts map[string]*entity.Contract
}

func newFakeContractRepo() *fakeContractRepo {
	return &fakeContractRepo{contracts: map[string]*entity.Contract{}}
}

func (r *fakeContractRepo) Create(c *entity.Contract) error {
	cp := *c
	r.contracts[c.ID] = &cp
	return nil
}

func (r *fakeContractRepo) GetByID(id string) (*entity.Contract, error) {
	c, ok := r.contracts[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeContractRepo) GetByIDForUpdate(id string) (*entity.Contract, error) {
	return r.GetByID(id)
}

func (r *fakeContractRepo) GetActiveByUnit(unitID string) (*entity.Contract, error) {
	for _, c := range r.contracts {
		if c.UnitID == unitID && c.Status == entity.ContractStatusActive {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeContractRepo) ListByUnit(unitID string) ([]*entity.Contract, error) {
	var out []*entity.Contract
	for _, c := range r.contracts {
		if c.UnitID == unitID {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeContractRepo) ListByTenant(tenantID string) ([]*entity.Contract, error) {
	var out []*entity.Contract
	for _, c := range r.contracts {
		if c.TenantID == tenantID {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeContractRepo) List(limit, offset int) ([]*entity.Contract, error) {
	var out []*entity.Contract
	for _, c := range r.contracts {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeContractRepo) Update(c *entity.Contract) error {
	cp := *c
	r.contracts[c.ID] = &cp
	return nil
}

func (r *fakeContractRepo) Delete(id string) error {
	delete(r.contracts, id)
	return nil
}

func (r *fakeContractRepo) CountByTenant(tenantID string) (int, error) {
	n := 0
	for _, c := range r.contracts {
		if c.TenantID == tenantID {
			n++
		}
	}
	return n, nil
}

type fakeUnitRepo struct {
	units map[string]*entity.Unit
}

func (r *fakeUnitRepo) Create(u *entity.Unit) error {
	cp := *u
	r.units[u.ID] = &cp
	return nil
}

func (r *fakeUnitRepo) GetByID(id string) (*entity.Unit, error) {
	u, ok := r.units[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUnitRepo) GetByProjectAndNumber(projectID, unitNumber string) (*entity.Unit, error) {
	for _, u := range r.units {
		if u.ProjectID == projectID && u.UnitNumber == unitNumber {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUnitRepo) List(filter repository.UnitFilter, limit, offset int) ([]*entity.Unit, error) {
	return nil, nil
}

func (r *fakeUnitRepo) Update(u *entity.Unit) error {
	cp := *u
	r.units[u.ID] = &cp
	return nil
}

func (r *fakeUnitRepo) Delete(id string) error {
	delete(r.units, id)
	return nil
}

func (r *fakeUnitRepo) CountByProject(projectID string) (int, error) { return 0, nil }
func (r *fakeUnitRepo) CountByOwner(ownerID string) (int, error)     { return 0, nil }

type fakeTenantRepo struct {
	tenants map[string]*entity.Tenant
}

func (r *fakeTenantRepo) Create(t *entity.Tenant) error { r.tenants[t.ID] = t; return nil }

func (r *fakeTenantRepo) GetByID(id string) (*entity.Tenant, error) {
	t, ok := r.tenants[id]
	if !ok {
		return nil, nil
	}
	return t, nil
}

func (r *fakeTenantRepo) List(search string, limit, offset int) ([]*entity.Tenant, error) {
	return nil, nil
}
func (r *fakeTenantRepo) Update(t *entity.Tenant) error { return nil }
func (r *fakeTenantRepo) Delete(id string) error        { return nil }

type fakePaymentCounter struct {
	byContract map[string]int
}

func (r *fakePaymentCounter) Create(p *entity.Payment) error             { return nil }
func (r *fakePaymentCounter) GetByID(id string) (*entity.Payment, error) { return nil, nil }
func (r *fakePaymentCounter) List(filter repository.PaymentFilter, limit, offset int) ([]*entity.Payment, error) {
	return nil, nil
}
func (r *fakePaymentCounter) Update(p *entity.Payment) error { return nil }
func (r *fakePaymentCounter) Delete(id string) error         { return nil }
func (r *fakePaymentCounter) SumByContract(contractID, excludePaymentID string) (decimal.Decimal, error) {
	return decimal.Zero, nil
}
func (r *fakePaymentCounter) SumByUnit(unitID string) (decimal.Decimal, error) {
	return decimal.Zero, nil
}
func (r *fakePaymentCounter) OwnerTotals(ownerID string) (repository.OwnerBalance, error) {
	return repository.OwnerBalance{}, nil
}
func (r *fakePaymentCounter) CountByContract(contractID string) (int, error) {
	return r.byContract[contractID], nil
}
func (r *fakePaymentCounter) CountByUnit(unitID string) (int, error) { return 0, nil }

type fakeAuditRepo struct {
	entries []*entity.AuditLog
}

func (r *fakeAuditRepo) Create(l *entity.AuditLog) error { r.entries = append(r.entries, l); return nil }
func (r *fakeAuditRepo) ListRecent(limit int) ([]*entity.AuditLog, error) {
	return r.entries, nil
}

type fakeStore struct {
	files map[string][]byte
}

func (s *fakeStore) Save(name string, r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	stored := "20250801_120000_" + name
	s.files[stored] = data
	return stored, nil
}

func (s *fakeStore) Open(stored string) (io.ReadCloser, error) {
	data, ok := s.files[stored]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (s *fakeStore) Delete(stored string) error {
	delete(s.files, stored)
	return nil
}

type fixture struct {
	uc        *UseCase
	contracts *fakeContractRepo
	units     *fakeUnitRepo
	payments  *fakePaymentCounter
	audit     *fakeAuditRepo
	store     *fakeStore
}

func newFixture() *fixture {
	contracts := newFakeContractRepo()
	units := &fakeUnitRepo{units: map[string]*entity.Unit{
		"u1": {ID: "u1", ProjectID: "p1", UnitNumber: "A-101", Status: entity.UnitStatusAvailable},
		"u2": {ID: "u2", ProjectID: "p1", UnitNumber: "A-102", Status: entity.UnitStatusSold},
	}}
	tenants := &fakeTenantRepo{tenants: map[string]*entity.Tenant{
		"t1": {ID: "t1", Name: "Fahad Al-Otaibi"},
	}}
	payments := &fakePaymentCounter{byContract: map[string]int{}}
	audit := &fakeAuditRepo{}
	store := &fakeStore{files: map[string][]byte{}}
	uc := NewUseCase(contracts, units, tenants, payments, audit, store)
	return &fixture{uc: uc, contracts: contracts, units: units, payments: payments, audit: audit, store: store}
}

func validRequest() dto.CreateContractRequest {
	return dto.CreateContractRequest{
		UnitID:      "u1",
		TenantID:    "t1",
		Number:      "CT-2025-001",
		StartDate:   "2025-01-01",
		EndDate:     "2026-01-01",
		TotalAmount: decimal.NewFromInt(54000),
	}
}

func TestCreateContract_RentsUnit(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Create("admin@test", validRequest())
	require.NoError(t, err)
	assert.Equal(t, entity.ContractStatusActive, resp.Status)
	assert.Equal(t, "Fahad Al-Otaibi", resp.TenantName)
	assert.NotEmpty(t, resp.StartDateHijri)

	unit, _ := f.units.GetByID("u1")
	assert.Equal(t, entity.UnitStatusRented, unit.Status)
	assert.NotEmpty(t, f.audit.entries)
}

func TestCreateContract_UnitAlreadyRented(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Create("admin@test", validRequest())
	require.NoError(t, err)

	second := validRequest()
	second.Number = "CT-2025-002"
	_, err = f.uc.Create("admin@test", second)
	assert.ErrorIs(t, err, domain.ErrUnitOccupied)
}

func TestCreateContract_SoldUnit(t *testing.T) {
	f := newFixture()

	in := validRequest()
	in.UnitID = "u2"
	_, err := f.uc.Create("admin@test", in)
	assert.ErrorIs(t, err, domain.ErrUnitOccupied)
}

func TestCreateContract_InvalidDates(t *testing.T) {
	f := newFixture()

	in := validRequest()
	in.EndDate = "2024-01-01" // before start
	_, err := f.uc.Create("admin@test", in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	in = validRequest()
	in.StartDate = "01/01/2025"
	_, err = f.uc.Create("admin@test", in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestEndContract_FreesUnit(t *testing.T) {
	f := newFixture()

	created, err := f.uc.Create("admin@test", validRequest())
	require.NoError(t, err)

	ended, err := f.uc.End("admin@test", created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ContractStatusEnded, ended.Status)

	unit, _ := f.units.GetByID("u1")
	assert.Equal(t, entity.UnitStatusAvailable, unit.Status)

	_, err = f.uc.End("admin@test", created.ID)
	assert.ErrorIs(t, err, domain.ErrContractInactive)
}

func TestAttachAndOpenDocument(t *testing.T) {
	f := newFixture()

	created, err := f.uc.Create("admin@test", validRequest())
	require.NoError(t, err)

	resp, err := f.uc.AttachDocument("admin@test", created.ID, "lease.pdf", strings.NewReader("pdf-bytes"))
	require.NoError(t, err)
	assert.Contains(t, resp.DocumentFile, "lease.pdf")

	rc, name, err := f.uc.OpenDocument(created.ID)
	require.NoError(t, err)
	defer rc.Close()
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "pdf-bytes", string(data))
	assert.Equal(t, resp.DocumentFile, name)
}

func TestAttachDocument_ReplacesPrevious(t *testing.T) {
	f := newFixture()

	created, err := f.uc.Create("admin@test", validRequest())
	require.NoError(t, err)

	first, err := f.uc.AttachDocument("admin@test", created.ID, "v1.pdf", strings.NewReader("one"))
	require.NoError(t, err)
	_, err = f.uc.AttachDocument("admin@test", created.ID, "v2.pdf", strings.NewReader("two"))
	require.NoError(t, err)

	_, ok := f.store.files[first.DocumentFile]
	assert.False(t, ok, "previous document should be removed")
	assert.Len(t, f.store.files, 1)
}

func TestAttachDocument_SameStoredNameKeepsDocument(t *testing.T) {
	f := newFixture()

	created, err := f.uc.Create("admin@test", validRequest())
	require.NoError(t, err)

	// fakeStore derives the stored name from the client name alone, so
	// re-uploading the same file name maps to the same stored name. The
	// cleanup of the previous document must not remove the fresh upload.
	_, err = f.uc.AttachDocument("admin@test", created.ID, "lease.pdf", strings.NewReader("one"))
	require.NoError(t, err)
	_, err = f.uc.AttachDocument("admin@test", created.ID, "lease.pdf", strings.NewReader("two"))
	require.NoError(t, err)

	rc, _, err := f.uc.OpenDocument(created.ID)
	require.NoError(t, err)
	defer rc.Close()
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "two", string(data))
}

func TestOpenDocument_NoneAttached(t *testing.T) {
	f := newFixture()

	created, err := f.uc.Create("admin@test", validRequest())
	require.NoError(t, err)

	_, _, err = f.uc.OpenDocument(created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteContract_BlockedByPayments(t *testing.T) {
	f := newFixture()

	created, err := f.uc.Create("admin@test", validRequest())
	require.NoError(t, err)

	f.payments.byContract[created.ID] = 3
	err = f.uc.Delete("admin@test", created.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestDeleteContract_FreesUnitAndDocument(t *testing.T) {
	f := newFixture()

	created, err := f.uc.Create("admin@test", validRequest())
	require.NoError(t, err)
	_, err = f.uc.AttachDocument("admin@test", created.ID, "lease.pdf", strings.NewReader("pdf"))
	require.NoError(t, err)

	require.NoError(t, f.uc.Delete("admin@test", created.ID))

	unit, _ := f.units.GetByID("u1")
	assert.Equal(t, entity.UnitStatusAvailable, unit.Status)
	assert.Empty(t, f.store.files)

	_, err = f.uc.GetByID(created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListContracts_ByTenant(t *testing.T) {
	f := newFixture()

	created, err := f.uc.Create("admin@test", validRequest())
	require.NoError(t, err)

	list, err := f.uc.List("", "t1", 20, 0)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID)

	list, err = f.uc.List("", "other", 20, 0)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestContractDatesRoundTrip(t *testing.T) {
	f := newFixture()

	created, err := f.uc.Create("admin@test", validRequest())
	require.NoError(t, err)

	start, err := time.Parse("2006-01-02", created.StartDate)
	require.NoError(t, err)
	assert.Equal(t, 2025, start.Year())
}
