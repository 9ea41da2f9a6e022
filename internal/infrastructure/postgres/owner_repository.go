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

var _ repository.OwnerRepository = (*OwnerRepo)(nil)

// OwnerRepo implements OwnerRepository (usable with pool or tx).
type OwnerRepo struct {
	q Querier
}

// NewOwnerRepository builds the adapter. Pass a pool or tx (Querier).
func NewOwnerRepository(q Querier) *OwnerRepo {
	return &OwnerRepo{q: q}
}

// Create persists a new owner.
func (r *OwnerRepo) Create(owner *entity.Owner) error {
	query := `
		INSERT INTO owners (id, name, national_id, phone, email, address, sab_number, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		owner.ID, owner.Name, owner.NationalID, owner.Phone, owner.Email, owner.Address, owner.SabNumber,
		owner.CreatedAt, owner.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert owner: %w", err)
	}
	return nil
}

// GetByID fetches an owner by ID.
func (r *OwnerRepo) GetByID(id string) (*entity.Owner, error) {
	query := `
		SELECT id, name, national_id, phone, email, address, sab_number, created_at, updated_at
		FROM owners WHERE id = $1`
	var o entity.Owner
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.Name, &o.NationalID, &o.Phone, &o.Email, &o.Address, &o.SabNumber, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get owner: %w", err)
	}
	return &o, nil
}

// List lists owners with pagination; search matches the name.
func (r *OwnerRepo) List(search string, limit, offset int) ([]*entity.Owner, error) {
	query := `
		SELECT id, name, national_id, phone, email, address, sab_number, created_at, updated_at
		FROM owners
		WHERE ($1 = '' OR name ILIKE '%' || $1 || '%')
		ORDER BY name LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, search, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list owners: %w", err)
	}
	defer rows.Close()
	var list []*entity.Owner
	for rows.Next() {
		var o entity.Owner
		if err := rows.Scan(&o.ID, &o.Name, &o.NationalID, &o.Phone, &o.Email, &o.Address, &o.SabNumber, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan owner: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}

// Update updates an owner.
func (r *OwnerRepo) Update(owner *entity.Owner) error {
	query := `
		UPDATE owners SET name = $2, national_id = $3, phone = $4, email = $5, address = $6, sab_number = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		owner.ID, owner.Name, owner.NationalID, owner.Phone, owner.Email, owner.Address, owner.SabNumber, owner.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update owner: %w", err)
	}
	return nil
}

// Delete removes an owner by ID.
func (r *OwnerRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM owners WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete owner: %w", err)
	}
	return nil
}
