package repository

import "github.com/kthaib/aqari-api/internal/domain/entity"

// ProjectRepository is the persistence port for Project.
type ProjectRepository interface {
	Create(project *entity.Project) error
	GetByID(id string) (*entity.Project, error)
	GetByName(name string) (*entity.Project, error)
	List(search string, limit, offset int) ([]*entity.Project, error)
	Update(project *entity.Project) error
	Delete(id string) error
}
