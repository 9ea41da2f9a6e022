package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/kthaib/aqari-api/internal/application/dto"
	"github.com/kthaib/aqari-api/internal/domain"
	"github.com/kthaib/aqari-api/internal/domain/entity"
	"github.com/kthaib/aqari-api/internal/domain/repository"
)

// TenantUseCase CRUD for tenants.
type TenantUseCase struct {
	repo         repository.TenantRepository
	contractRepo repository.ContractRepository
	auditRepo    repository.AuditRepository
}

// NewTenantUseCase builds the use case.
func NewTenantUseCase(repo repository.TenantRepository, contractRepo repository.ContractRepository, auditRepo repository.AuditRepository) *TenantUseCase {
	return &TenantUseCase{repo: repo, contractRepo: contractRepo, auditRepo: auditRepo}
}

// Create registers a new tenant.
func (uc *TenantUseCase) Create(actor string, in dto.CreateTenantRequest) (*dto.TenantResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	tenant := &entity.Tenant{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Phone:     in.Phone,
		Email:     in.Email,
		SabNumber: in.SabNumber,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(tenant); err != nil {
		return nil, err
	}
	audit(uc.auditRepo, actor, fmt.Sprintf("created tenant %s", tenant.Name))
	return toTenantResponse(tenant), nil
}

// GetByID fetches one tenant.
func (uc *TenantUseCase) GetByID(id string) (*dto.TenantResponse, error) {
	tenant, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, domain.ErrNotFound
	}
	return toTenantResponse(tenant), nil
}

// List lists tenants with optional name search.
func (uc *TenantUseCase) List(search string, limit, offset int) ([]*dto.TenantResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	list, err := uc.repo.List(search, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.TenantResponse, 0, len(list))
	for _, t := range list {
		out = append(out, toTenantResponse(t))
	}
	return out, nil
}

// Update modifies a tenant.
func (uc *TenantUseCase) Update(actor, id string, in dto.UpdateTenantRequest) (*dto.TenantResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	tenant, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, domain.ErrNotFound
	}
	tenant.Name = in.Name
	tenant.Phone = in.Phone
	tenant.Email = in.Email
	tenant.SabNumber = in.SabNumber
	tenant.UpdatedAt = time.Now()
	if err := uc.repo.Update(tenant); err != nil {
		return nil, err
	}
	audit(uc.auditRepo, actor, fmt.Sprintf("updated tenant %s", tenant.Name))
	return toTenantResponse(tenant), nil
}

// Delete removes a tenant. Blocked while contracts reference the tenant.
func (uc *TenantUseCase) Delete(actor, id string) error {
	tenant, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if tenant == nil {
		return domain.ErrNotFound
	}
	n, err := uc.contractRepo.CountByTenant(id)
	if err != nil {
		return err
	}
	if n > 0 {
		return domain.ErrConflict
	}
	if err := uc.repo.Delete(id); err != nil {
		return err
	}
	audit(uc.auditRepo, actor, fmt.Sprintf("deleted tenant %s", tenant.Name))
	return nil
}

func toTenantResponse(t *entity.Tenant) *dto.TenantResponse {
	return &dto.TenantResponse{
		ID:        t.ID,
		Name:      t.Name,
		Phone:     t.Phone,
		Email:     t.Email,
		SabNumber: t.SabNumber,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}
