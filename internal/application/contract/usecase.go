package contract

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/kthaib/aqari-api/internal/application/dto"
	"github.com/kthaib/aqari-api/internal/domain"
	"github.com/kthaib/aqari-api/internal/domain/entity"
	"github.com/kthaib/aqari-api/internal/domain/repository"
	"github.com/kthaib/aqari-api/pkg/hijri"
)

const dateLayout = "2006-01-02"

// UseCase manages rental contracts and their uploaded documents.
// Creating a contract rents the unit; ending it frees the unit again.
type UseCase struct {
	repo        repository.ContractRepository
	unitRepo    repository.UnitRepository
	tenantRepo  repository.TenantRepository
	paymentRepo repository.PaymentRepository
	auditRepo   repository.AuditRepository
	store       DocumentStore
}

// NewUseCase builds the contract use case.
func NewUseCase(
	repo repository.ContractRepository,
	unitRepo repository.UnitRepository,
	tenantRepo repository.TenantRepository,
	paymentRepo repository.PaymentRepository,
	auditRepo repository.AuditRepository,
	store DocumentStore,
) *UseCase {
	return &UseCase{
		repo:        repo,
		unitRepo:    unitRepo,
		tenantRepo:  tenantRepo,
		paymentRepo: paymentRepo,
		auditRepo:   auditRepo,
		store:       store,
	}
}

// Create opens a contract on a unit. Fails with ErrUnitOccupied when the
// unit already has an active contract or is sold. On success the unit
// moves to rented.
func (uc *UseCase) Create(actor string, in dto.CreateContractRequest) (*dto.ContractResponse, error) {
	if in.UnitID == "" || in.TenantID == "" || in.Number == "" {
		return nil, domain.ErrInvalidInput
	}
	start, err := time.Parse(dateLayout, in.StartDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	end, err := time.Parse(dateLayout, in.EndDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	if !end.After(start) {
		return nil, domain.ErrInvalidInput
	}
	if in.TotalAmount.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	unit, err := uc.unitRepo.GetByID(in.UnitID)
	if err != nil {
		return nil, err
	}
	if unit == nil {
		return nil, domain.ErrNotFound
	}
	if unit.Status == entity.UnitStatusSold {
		return nil, domain.ErrUnitOccupied
	}
	tenant, err := uc.tenantRepo.GetByID(in.TenantID)
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, domain.ErrNotFound
	}
	active, err := uc.repo.GetActiveByUnit(in.UnitID)
	if err != nil {
		return nil, err
	}
	if active != nil {
		return nil, domain.ErrUnitOccupied
	}

	now := time.Now()
	c := &entity.Contract{
		ID:          uuid.New().String(),
		UnitID:      in.UnitID,
		TenantID:    in.TenantID,
		Number:      in.Number,
		StartDate:   start,
		EndDate:     end,
		TotalAmount: in.TotalAmount,
		Status:      entity.ContractStatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(c); err != nil {
		return nil, err
	}

	unit.Status = entity.UnitStatusRented
	unit.UpdatedAt = now
	if err := uc.unitRepo.Update(unit); err != nil {
		return nil, err
	}

	uc.audit(actor, fmt.Sprintf("created contract %s on unit %s", c.Number, unit.UnitNumber))
	return uc.toResponse(c, tenant.Name), nil
}

// GetByID fetches one contract.
func (uc *UseCase) GetByID(id string) (*dto.ContractResponse, error) {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return uc.toResponse(c, uc.tenantName(c.TenantID)), nil
}

// List lists contracts, optionally narrowed to one unit or one tenant.
func (uc *UseCase) List(unitID, tenantID string, limit, offset int) ([]*dto.ContractResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	var (
		list []*entity.Contract
		err  error
	)
	switch {
	case unitID != "":
		list, err = uc.repo.ListByUnit(unitID)
	case tenantID != "":
		list, err = uc.repo.ListByTenant(tenantID)
	default:
		list, err = uc.repo.List(limit, offset)
	}
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ContractResponse, 0, len(list))
	for _, c := range list {
		out = append(out, uc.toResponse(c, uc.tenantName(c.TenantID)))
	}
	return out, nil
}

// End closes an active contract and frees its unit.
func (uc *UseCase) End(actor, id string) (*dto.ContractResponse, error) {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	if c.Status != entity.ContractStatusActive {
		return nil, domain.ErrContractInactive
	}
	now := time.Now()
	c.Status = entity.ContractStatusEnded
	c.UpdatedAt = now
	if err := uc.repo.Update(c); err != nil {
		return nil, err
	}
	unit, err := uc.unitRepo.GetByID(c.UnitID)
	if err != nil {
		return nil, err
	}
	if unit != nil && unit.Status == entity.UnitStatusRented {
		unit.Status = entity.UnitStatusAvailable
		unit.UpdatedAt = now
		if err := uc.unitRepo.Update(unit); err != nil {
			return nil, err
		}
	}
	uc.audit(actor, fmt.Sprintf("ended contract %s", c.Number))
	return uc.toResponse(c, uc.tenantName(c.TenantID)), nil
}

// AttachDocument stores an uploaded document and links it to the
// contract, replacing a previous upload when present.
func (uc *UseCase) AttachDocument(actor, id, filename string, r io.Reader) (*dto.ContractResponse, error) {
	if filename == "" {
		return nil, domain.ErrInvalidInput
	}
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	stored, err := uc.store.Save(filename, r)
	if err != nil {
		return nil, err
	}
	previous := c.DocumentFile
	c.DocumentFile = stored
	c.UpdatedAt = time.Now()
	if err := uc.repo.Update(c); err != nil {
		_ = uc.store.Delete(stored)
		return nil, err
	}
	if previous != "" && previous != stored {
		_ = uc.store.Delete(previous)
	}
	uc.audit(actor, fmt.Sprintf("attached document to contract %s", c.Number))
	return uc.toResponse(c, uc.tenantName(c.TenantID)), nil
}

// OpenDocument streams the contract's stored document. The caller closes
// the reader.
func (uc *UseCase) OpenDocument(id string) (io.ReadCloser, string, error) {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, "", err
	}
	if c == nil {
		return nil, "", domain.ErrNotFound
	}
	if c.DocumentFile == "" {
		return nil, "", domain.ErrNotFound
	}
	rc, err := uc.store.Open(c.DocumentFile)
	if err != nil {
		return nil, "", err
	}
	return rc, c.DocumentFile, nil
}

// Delete removes a contract. Blocked while payments reference it. A
// rented unit left behind by an active contract is freed.
func (uc *UseCase) Delete(actor, id string) error {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ErrNotFound
	}
	n, err := uc.paymentRepo.CountByContract(id)
	if err != nil {
		return err
	}
	if n > 0 {
		return domain.ErrConflict
	}
	if err := uc.repo.Delete(id); err != nil {
		return err
	}
	if c.Status == entity.ContractStatusActive {
		unit, err := uc.unitRepo.GetByID(c.UnitID)
		if err == nil && unit != nil && unit.Status == entity.UnitStatusRented {
			unit.Status = entity.UnitStatusAvailable
			unit.UpdatedAt = time.Now()
			_ = uc.unitRepo.Update(unit)
		}
	}
	if c.DocumentFile != "" {
		_ = uc.store.Delete(c.DocumentFile)
	}
	uc.audit(actor, fmt.Sprintf("deleted contract %s", c.Number))
	return nil
}

func (uc *UseCase) tenantName(tenantID string) string {
	t, err := uc.tenantRepo.GetByID(tenantID)
	if err != nil || t == nil {
		return ""
	}
	return t.Name
}

func (uc *UseCase) audit(actor, action string) {
	if uc.auditRepo == nil {
		return
	}
	_ = uc.auditRepo.Create(&entity.AuditLog{
		ID:        uuid.New().String(),
		Action:    action,
		User:      actor,
		Timestamp: time.Now(),
	})
}

func (uc *UseCase) toResponse(c *entity.Contract, tenantName string) *dto.ContractResponse {
	return &dto.ContractResponse{
		ID:             c.ID,
		UnitID:         c.UnitID,
		TenantID:       c.TenantID,
		TenantName:     tenantName,
		Number:         c.Number,
		StartDate:      c.StartDate.Format(dateLayout),
		StartDateHijri: hijri.FormatTime(c.StartDate),
		EndDate:        c.EndDate.Format(dateLayout),
		EndDateHijri:   hijri.FormatTime(c.EndDate),
		TotalAmount:    c.TotalAmount,
		DocumentFile:   c.DocumentFile,
		Status:         c.Status,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}
