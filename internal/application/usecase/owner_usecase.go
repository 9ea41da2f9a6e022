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

// OwnerUseCase CRUD for property owners.
type OwnerUseCase struct {
	repo      repository.OwnerRepository
	unitRepo  repository.UnitRepository
	auditRepo repository.AuditRepository
}

// NewOwnerUseCase builds the use case.
func NewOwnerUseCase(repo repository.OwnerRepository, unitRepo repository.UnitRepository, auditRepo repository.AuditRepository) *OwnerUseCase {
	return &OwnerUseCase{repo: repo, unitRepo: unitRepo, auditRepo: auditRepo}
}

// Create registers a new owner.
func (uc *OwnerUseCase) Create(actor string, in dto.CreateOwnerRequest) (*dto.OwnerResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	owner := &entity.Owner{
		ID:         uuid.New().String(),
		Name:       in.Name,
		NationalID: in.NationalID,
		Phone:      in.Phone,
		Email:      in.Email,
		Address:    in.Address,
		SabNumber:  in.SabNumber,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(owner); err != nil {
		return nil, err
	}
	audit(uc.auditRepo, actor, fmt.Sprintf("created owner %s", owner.Name))
	return toOwnerResponse(owner), nil
}

// GetByID fetches one owner.
func (uc *OwnerUseCase) GetByID(id string) (*dto.OwnerResponse, error) {
	owner, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, domain.ErrNotFound
	}
	return toOwnerResponse(owner), nil
}

// List lists owners with optional name search.
func (uc *OwnerUseCase) List(search string, limit, offset int) ([]*dto.OwnerResponse, error) {
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
	out := make([]*dto.OwnerResponse, 0, len(list))
	for _, o := range list {
		out = append(out, toOwnerResponse(o))
	}
	return out, nil
}

// Update modifies an owner.
func (uc *OwnerUseCase) Update(actor, id string, in dto.UpdateOwnerRequest) (*dto.OwnerResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	owner, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, domain.ErrNotFound
	}
	owner.Name = in.Name
	owner.NationalID = in.NationalID
	owner.Phone = in.Phone
	owner.Email = in.Email
	owner.Address = in.Address
	owner.SabNumber = in.SabNumber
	owner.UpdatedAt = time.Now()
	if err := uc.repo.Update(owner); err != nil {
		return nil, err
	}
	audit(uc.auditRepo, actor, fmt.Sprintf("updated owner %s", owner.Name))
	return toOwnerResponse(owner), nil
}

// Delete removes an owner. Blocked while the owner still holds units.
func (uc *OwnerUseCase) Delete(actor, id string) error {
	owner, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if owner == nil {
		return domain.ErrNotFound
	}
	n, err := uc.unitRepo.CountByOwner(id)
	if err != nil {
		return err
	}
	if n > 0 {
		return domain.ErrConflict
	}
	if err := uc.repo.Delete(id); err != nil {
		return err
	}
	audit(uc.auditRepo, actor, fmt.Sprintf("deleted owner %s", owner.Name))
	return nil
}

func toOwnerResponse(o *entity.Owner) *dto.OwnerResponse {
	return &dto.OwnerResponse{
		ID:         o.ID,
		Name:       o.Name,
		NationalID: o.NationalID,
		Phone:      o.Phone,
		Email:      o.Email,
		Address:    o.Address,
		SabNumber:  o.SabNumber,
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  o.UpdatedAt,
	}
}

// audit appends to the trail. The trail never blocks the mutation it
// describes, so failures are dropped.
func audit(repo repository.AuditRepository, actor, action string) {
	if repo == nil {
		return
	}
	_ = repo.Create(&entity.AuditLog{
		ID:        uuid.New().String(),
		Action:    action,
		User:      actor,
		Timestamp: time.Now(),
	})
}
