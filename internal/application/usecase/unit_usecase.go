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

// UnitUseCase CRUD for units inside a project.
type UnitUseCase struct {
	repo        repository.UnitRepository
	projectRepo repository.ProjectRepository
	ownerRepo   repository.OwnerRepository
	paymentRepo repository.PaymentRepository
	auditRepo   repository.AuditRepository
}

// NewUnitUseCase builds the use case.
func NewUnitUseCase(
	repo repository.UnitRepository,
	projectRepo repository.ProjectRepository,
	ownerRepo repository.OwnerRepository,
	paymentRepo repository.PaymentRepository,
	auditRepo repository.AuditRepository,
) *UnitUseCase {
	return &UnitUseCase{
		repo:        repo,
		projectRepo: projectRepo,
		ownerRepo:   ownerRepo,
		paymentRepo: paymentRepo,
		auditRepo:   auditRepo,
	}
}

func validUnitStatus(status string) bool {
	switch status {
	case entity.UnitStatusAvailable, entity.UnitStatusRented, entity.UnitStatusSold:
		return true
	}
	return false
}

// Create registers a unit. The unit number is unique within its project.
func (uc *UnitUseCase) Create(actor string, in dto.CreateUnitRequest) (*dto.UnitResponse, error) {
	if in.ProjectID == "" || in.UnitNumber == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Area.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = entity.UnitStatusAvailable
	}
	if !validUnitStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	project, err := uc.projectRepo.GetByID(in.ProjectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, domain.ErrNotFound
	}
	if in.OwnerID != "" {
		owner, err := uc.ownerRepo.GetByID(in.OwnerID)
		if err != nil {
			return nil, err
		}
		if owner == nil {
			return nil, domain.ErrNotFound
		}
	}
	existing, _ := uc.repo.GetByProjectAndNumber(in.ProjectID, in.UnitNumber)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	unit := &entity.Unit{
		ID:         uuid.New().String(),
		ProjectID:  in.ProjectID,
		OwnerID:    in.OwnerID,
		UnitNumber: in.UnitNumber,
		Type:       in.Type,
		Area:       in.Area,
		Status:     status,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(unit); err != nil {
		return nil, err
	}
	audit(uc.auditRepo, actor, fmt.Sprintf("created unit %s in project %s", unit.UnitNumber, project.Name))
	return toUnitResponse(unit), nil
}

// GetByID fetches one unit.
func (uc *UnitUseCase) GetByID(id string) (*dto.UnitResponse, error) {
	unit, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if unit == nil {
		return nil, domain.ErrNotFound
	}
	return toUnitResponse(unit), nil
}

// List lists units filtered by project, owner and status.
func (uc *UnitUseCase) List(filter repository.UnitFilter, limit, offset int) ([]*dto.UnitResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	if filter.Status != "" && !validUnitStatus(filter.Status) {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.repo.List(filter, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.UnitResponse, 0, len(list))
	for _, u := range list {
		out = append(out, toUnitResponse(u))
	}
	return out, nil
}

// Update modifies a unit. Moving it to another project or number keeps
// the per-project uniqueness guarantee.
func (uc *UnitUseCase) Update(actor, id string, in dto.UpdateUnitRequest) (*dto.UnitResponse, error) {
	if in.ProjectID == "" || in.UnitNumber == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Area.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = entity.UnitStatusAvailable
	}
	if !validUnitStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	unit, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if unit == nil {
		return nil, domain.ErrNotFound
	}
	if in.ProjectID != unit.ProjectID || in.UnitNumber != unit.UnitNumber {
		existing, _ := uc.repo.GetByProjectAndNumber(in.ProjectID, in.UnitNumber)
		if existing != nil && existing.ID != id {
			return nil, domain.ErrDuplicate
		}
	}
	if in.OwnerID != "" && in.OwnerID != unit.OwnerID {
		owner, err := uc.ownerRepo.GetByID(in.OwnerID)
		if err != nil {
			return nil, err
		}
		if owner == nil {
			return nil, domain.ErrNotFound
		}
	}
	unit.ProjectID = in.ProjectID
	unit.OwnerID = in.OwnerID
	unit.UnitNumber = in.UnitNumber
	unit.Type = in.Type
	unit.Area = in.Area
	unit.Status = status
	unit.UpdatedAt = time.Now()
	if err := uc.repo.Update(unit); err != nil {
		return nil, err
	}
	audit(uc.auditRepo, actor, fmt.Sprintf("updated unit %s", unit.UnitNumber))
	return toUnitResponse(unit), nil
}

// Delete removes a unit. Blocked while payments reference the unit.
func (uc *UnitUseCase) Delete(actor, id string) error {
	unit, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if unit == nil {
		return domain.ErrNotFound
	}
	n, err := uc.paymentRepo.CountByUnit(id)
	if err != nil {
		return err
	}
	if n > 0 {
		return domain.ErrConflict
	}
	if err := uc.repo.Delete(id); err != nil {
		return err
	}
	audit(uc.auditRepo, actor, fmt.Sprintf("deleted unit %s", unit.UnitNumber))
	return nil
}

func toUnitResponse(u *entity.Unit) *dto.UnitResponse {
	return &dto.UnitResponse{
		ID:         u.ID,
		ProjectID:  u.ProjectID,
		OwnerID:    u.OwnerID,
		UnitNumber: u.UnitNumber,
		Type:       u.Type,
		Area:       u.Area,
		Status:     u.Status,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}
