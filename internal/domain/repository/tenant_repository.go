package repository

import "github.com/kthaib/aqari-api/internal/domain/entity"

// TenantRepository is the persistence port for Tenant.
type TenantRepository interface {
	Create(tenant *entity.Tenant) error
	GetByID(id string) (*entity.Tenant, error)
	List(search string, limit, offset int) ([]*entity.Tenant, error)
	Update(tenant *entity.Tenant) error
	Delete(id string) error
}
