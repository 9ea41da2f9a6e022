package repository

import "github.com/kthaib/aqari-api/internal/domain/entity"

// ContractRepository is the persistence port for Contract.
type ContractRepository interface {
	Create(contract *entity.Contract) error
	GetByID(id string) (*entity.Contract, error)
	// GetByIDForUpdate locks the contract row for the duration of the
	// surrounding transaction; the ledger uses it to serialize the
	// overpayment check against concurrent recordings.
	GetByIDForUpdate(id string) (*entity.Contract, error)
	// GetActiveByUnit returns the unit's active contract, or nil.
	GetActiveByUnit(unitID string) (*entity.Contract, error)
	ListByUnit(unitID string) ([]*entity.Contract, error)
	ListByTenant(tenantID string) ([]*entity.Contract, error)
	List(limit, offset int) ([]*entity.Contract, error)
	Update(contract *entity.Contract) error
	Delete(id string) error
	CountByTenant(tenantID string) (int, error)
}
