package repository

import "github.com/kthaib/aqari-api/internal/domain/entity"

// UnitFilter narrows unit listings.
type UnitFilter struct {
	ProjectID string
	OwnerID   string
	Status    string
}

// UnitRepository is the persistence port for Unit.
type UnitRepository interface {
	Create(unit *entity.Unit) error
	GetByID(id string) (*entity.Unit, error)
	// GetByProjectAndNumber backs the unit-number-unique-per-project rule.
	GetByProjectAndNumber(projectID, unitNumber string) (*entity.Unit, error)
	List(filter UnitFilter, limit, offset int) ([]*entity.Unit, error)
	Update(unit *entity.Unit) error
	Delete(id string) error
	CountByProject(projectID string) (int, error)
	CountByOwner(ownerID string) (int, error)
}
