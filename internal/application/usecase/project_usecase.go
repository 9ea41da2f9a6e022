package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kthaib/aqari-api/internal/application/dto"
	"github.com/kthaib/aqari-api/internal/domain"
	"github.com/kthaib/aqari-api/internal/domain/entity"
	"github.com/kthaib/aqari-api/internal/domain/repository"
)

// ProjectUseCase CRUD for projects.
type ProjectUseCase struct {
	repo      repository.ProjectRepository
	unitRepo  repository.UnitRepository
	auditRepo repository.AuditRepository
}

// NewProjectUseCase builds the use case.
func NewProjectUseCase(repo repository.ProjectRepository, unitRepo repository.UnitRepository, auditRepo repository.AuditRepository) *ProjectUseCase {
	return &ProjectUseCase{repo: repo, unitRepo: unitRepo, auditRepo: auditRepo}
}

// Create registers a new project. Project names are unique.
func (uc *ProjectUseCase) Create(actor string, in dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByName(name)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	project := &entity.Project{
		ID:          uuid.New().String(),
		Name:        name,
		Location:    in.Location,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(project); err != nil {
		return nil, err
	}
	audit(uc.auditRepo, actor, fmt.Sprintf("created project %s", project.Name))
	return toProjectResponse(project), nil
}

// GetByID fetches one project.
func (uc *ProjectUseCase) GetByID(id string) (*dto.ProjectResponse, error) {
	project, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, domain.ErrNotFound
	}
	return toProjectResponse(project), nil
}

// List lists projects, search matches name/location/description.
func (uc *ProjectUseCase) List(search string, limit, offset int) ([]*dto.ProjectResponse, error) {
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
	out := make([]*dto.ProjectResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toProjectResponse(p))
	}
	return out, nil
}

// Update modifies a project.
func (uc *ProjectUseCase) Update(actor, id string, in dto.UpdateProjectRequest) (*dto.ProjectResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	project, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, domain.ErrNotFound
	}
	project.Name = name
	project.Location = in.Location
	project.Description = in.Description
	project.UpdatedAt = time.Now()
	if err := uc.repo.Update(project); err != nil {
		return nil, err
	}
	audit(uc.auditRepo, actor, fmt.Sprintf("updated project %s", project.Name))
	return toProjectResponse(project), nil
}

// Delete removes a project. Blocked while the project still has units.
func (uc *ProjectUseCase) Delete(actor, id string) error {
	project, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if project == nil {
		return domain.ErrNotFound
	}
	n, err := uc.unitRepo.CountByProject(id)
	if err != nil {
		return err
	}
	if n > 0 {
		return domain.ErrConflict
	}
	if err := uc.repo.Delete(id); err != nil {
		return err
	}
	audit(uc.auditRepo, actor, fmt.Sprintf("deleted project %s", project.Name))
	return nil
}

func toProjectResponse(p *entity.Project) *dto.ProjectResponse {
	return &dto.ProjectResponse{
		ID:          p.ID,
		Name:        p.Name,
		Location:    p.Location,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
