package ledger

import (
	"context"
	"testing"

	"github.com/kthaib/aqari-api/internal/domain"
	"github.com/kthaib/aqari-api/internal/domain/entity"
	"github.com/kthaib/aqari-api/internal/domain/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memUnitRepo struct {
	units map[string]*entity.Unit
}

func (r *memUnitRepo) Create(u *entity.Unit) error { r.units[u.ID] = u; return nil }
func (r *memUnitRepo) GetByID(id string) (*entity.Unit, error) {
	u, ok := r.units[id]
	if !ok {
		return nil, nil
	}
	return u, nil
}
func (r *memUnitRepo) GetByProjectAndNumber(projectID, unitNumber string) (*entity.Unit, error) {
	return nil, nil
}
func (r *memUnitRepo) List(filter repository.UnitFilter, limit, offset int) ([]*entity.Unit, error) {
	return nil, nil
}
func (r *memUnitRepo) Update(u *entity.Unit) error                  { return nil }
func (r *memUnitRepo) Delete(id string) error                       { return nil }
func (r *memUnitRepo) CountByProject(projectID string) (int, error) { return 0, nil }
func (r *memUnitRepo) CountByOwner(ownerID string) (int, error)     { return 0, nil }

func TestContractBalance(t *testing.T) {
	f := newLedgerFixture()
	ctx := context.Background()

	_, err := f.uc.Record(ctx, "acct@test", record("c1", 6000))
	require.NoError(t, err)
	_, err = f.uc.Record(ctx, "acct@test", record("c1", 1500))
	require.NoError(t, err)

	units := &memUnitRepo{units: map[string]*entity.Unit{"u1": {ID: "u1"}}}
	owners := &memOwnerRepo{owners: map[string]*entity.Owner{"o1": {ID: "o1"}}}
	bal := NewBalanceUseCase(f.contracts, units, owners, f.payments)

	resp, err := bal.ContractBalance("c1")
	require.NoError(t, err)
	assert.Equal(t, "7500", resp.Paid.String())
	assert.Equal(t, "2500", resp.Outstanding.String())

	_, err = bal.ContractBalance("missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUnitBalance(t *testing.T) {
	f := newLedgerFixture()
	ctx := context.Background()

	_, err := f.uc.Record(ctx, "acct@test", record("c1", 2500))
	require.NoError(t, err)

	units := &memUnitRepo{units: map[string]*entity.Unit{"u1": {ID: "u1"}}}
	owners := &memOwnerRepo{owners: map[string]*entity.Owner{}}
	bal := NewBalanceUseCase(f.contracts, units, owners, f.payments)

	resp, err := bal.UnitBalance("u1")
	require.NoError(t, err)
	assert.Equal(t, "2500", resp.Paid.String())
}

func TestOwnerBalance_UnknownOwner(t *testing.T) {
	f := newLedgerFixture()

	units := &memUnitRepo{units: map[string]*entity.Unit{}}
	owners := &memOwnerRepo{owners: map[string]*entity.Owner{}}
	bal := NewBalanceUseCase(f.contracts, units, owners, f.payments)

	_, err := bal.OwnerBalance("ghost")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
