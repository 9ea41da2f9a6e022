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

var _ repository.UnitRepository = (*UnitRepo)(nil)

// UnitRepo implements UnitRepository (usable with pool or tx).
type UnitRepo struct {
	q Querier
}

// NewUnitRepository builds the adapter. Pass a pool or tx (Querier).
func NewUnitRepository(q Querier) *UnitRepo {
	return &UnitRepo{q: q}
}

const unitColumns = `id, project_id, COALESCE(owner_id, ''), unit_number, type, area, status, created_at, updated_at`

// Create persists a new unit. owner_id is NULL when the unit has no owner.
func (r *UnitRepo) Create(unit *entity.Unit) error {
	query := `
		INSERT INTO units (id, project_id, owner_id, unit_number, type, area, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		unit.ID, unit.ProjectID, nullIfEmpty(unit.OwnerID), unit.UnitNumber, unit.Type, unit.Area, unit.Status,
		unit.CreatedAt, unit.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert unit: %w", err)
	}
	return nil
}

// GetByID fetches a unit by ID.
func (r *UnitRepo) GetByID(id string) (*entity.Unit, error) {
	query := `SELECT ` + unitColumns + ` FROM units WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetByProjectAndNumber fetches a unit by its project and number.
func (r *UnitRepo) GetByProjectAndNumber(projectID, unitNumber string) (*entity.Unit, error) {
	query := `SELECT ` + unitColumns + ` FROM units WHERE project_id = $1 AND unit_number = $2`
	return r.scanOne(r.q.QueryRow(context.Background(), query, projectID, unitNumber))
}

func (r *UnitRepo) scanOne(row pgx.Row) (*entity.Unit, error) {
	var u entity.Unit
	err := row.Scan(&u.ID, &u.ProjectID, &u.OwnerID, &u.UnitNumber, &u.Type, &u.Area, &u.Status, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get unit: %w", err)
	}
	return &u, nil
}

// List lists units with pagination, optionally filtered by project, owner
// and status.
func (r *UnitRepo) List(filter repository.UnitFilter, limit, offset int) ([]*entity.Unit, error) {
	query := `
		SELECT ` + unitColumns + `
		FROM units
		WHERE ($1 = '' OR project_id = $1)
		  AND ($2 = '' OR owner_id = $2)
		  AND ($3 = '' OR status = $3)
		ORDER BY project_id, unit_number LIMIT $4 OFFSET $5`
	rows, err := r.q.Query(context.Background(), query, filter.ProjectID, filter.OwnerID, filter.Status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list units: %w", err)
	}
	defer rows.Close()
	var list []*entity.Unit
	for rows.Next() {
		var u entity.Unit
		if err := rows.Scan(&u.ID, &u.ProjectID, &u.OwnerID, &u.UnitNumber, &u.Type, &u.Area, &u.Status, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan unit: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// Update updates a unit.
func (r *UnitRepo) Update(unit *entity.Unit) error {
	query := `
		UPDATE units SET project_id = $2, owner_id = $3, unit_number = $4, type = $5, area = $6, status = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		unit.ID, unit.ProjectID, nullIfEmpty(unit.OwnerID), unit.UnitNumber, unit.Type, unit.Area, unit.Status, unit.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update unit: %w", err)
	}
	return nil
}

// Delete removes a unit by ID.
func (r *UnitRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM units WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete unit: %w", err)
	}
	return nil
}

// CountByProject counts the units of a project.
func (r *UnitRepo) CountByProject(projectID string) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM units WHERE project_id = $1`, projectID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count units by project: %w", err)
	}
	return n, nil
}

// CountByOwner counts the units held by an owner.
func (r *UnitRepo) CountByOwner(ownerID string) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM units WHERE owner_id = $1`, ownerID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count units by owner: %w", err)
	}
	return n, nil
}
