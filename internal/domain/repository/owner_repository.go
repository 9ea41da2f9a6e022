package repository

import "github.com/kthaib/aqari-api/internal/domain/entity"

// OwnerRepository is the persistence port for Owner.
type OwnerRepository interface {
	Create(owner *entity.Owner) error
	GetByID(id string) (*entity.Owner, error)
	List(search string, limit, offset int) ([]*entity.Owner, error)
	Update(owner *entity.Owner) error
	Delete(id string) error
}
