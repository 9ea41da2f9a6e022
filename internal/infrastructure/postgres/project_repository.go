package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/kthaib/aqari-api/internal/domain"
	"github.com/kthaib/aqari-api/internal/domain/entity"
	"github.com/kthaib/aqari-api/internal/domain/repository"
)

var _ repository.ProjectRepository = (*ProjectRepo)(nil)

// ProjectRepo implements ProjectRepository (usable with pool or tx).
type ProjectRepo struct {
	q Querier
}

// NewProjectRepository builds the adapter. Pass a pool or tx (Querier).
func NewProjectRepository(q Querier) *ProjectRepo {
	return &ProjectRepo{q: q}
}

// Create persists a new project.
func (r *ProjectRepo) Create(project *entity.Project) error {
	query := `
		INSERT INTO projects (id, name, location, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		project.ID, project.Name, project.Location, project.Description,
		project.CreatedAt, project.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert project: %w", err)
	}
	return nil
}

// GetByID fetches a project by ID.
func (r *ProjectRepo) GetByID(id string) (*entity.Project, error) {
	query := `
		SELECT id, name, location, description, created_at, updated_at
		FROM projects WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetByName fetches a project by its unique name.
func (r *ProjectRepo) GetByName(name string) (*entity.Project, error) {
	query := `
		SELECT id, name, location, description, created_at, updated_at
		FROM projects WHERE name = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, name))
}

func (r *ProjectRepo) scanOne(row pgx.Row) (*entity.Project, error) {
	var p entity.Project
	err := row.Scan(&p.ID, &p.Name, &p.Location, &p.Description, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get project: %w", err)
	}
	return &p, nil
}

// List lists projects with pagination; search matches name, location and
// description.
func (r *ProjectRepo) List(search string, limit, offset int) ([]*entity.Project, error) {
	query := `
		SELECT id, name, location, description, created_at, updated_at
		FROM projects
		WHERE ($1 = '' OR name ILIKE '%' || $1 || '%' OR location ILIKE '%' || $1 || '%' OR description ILIKE '%' || $1 || '%')
		ORDER BY name LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, search, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()
	var list []*entity.Project
	for rows.Next() {
		var p entity.Project
		if err := rows.Scan(&p.ID, &p.Name, &p.Location, &p.Description, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update updates a project.
func (r *ProjectRepo) Update(project *entity.Project) error {
	query := `
		UPDATE projects SET name = $2, location = $3, description = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		project.ID, project.Name, project.Location, project.Description, project.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update project: %w", err)
	}
	return nil
}

// Delete removes a project by ID.
func (r *ProjectRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete project: %w", err)
	}
	return nil
}
