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

var _ repository.TenantRepository = (*TenantRepo)(nil)

// TenantRepo implements TenantRepository (usable with pool or tx).
type TenantRepo struct {
	q Querier
}

// NewTenantRepository builds the adapter. Pass a pool or tx (Querier).
func NewTenantRepository(q Querier) *TenantRepo {
	return &TenantRepo{q: q}
}

// Create persists a new tenant.
func (r *TenantRepo) Create(tenant *entity.Tenant) error {
	query := `
		INSERT INTO tenants (id, name, phone, email, sab_number, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		tenant.ID, tenant.Name, tenant.Phone, tenant.Email, tenant.SabNumber,
		tenant.CreatedAt, tenant.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert tenant: %w", err)
	}
	return nil
}

// GetByID fetches a tenant by ID.
func (r *TenantRepo) GetByID(id string) (*entity.Tenant, error) {
	query := `
		SELECT id, name, phone, email, sab_number, created_at, updated_at
		FROM tenants WHERE id = $1`
	var t entity.Tenant
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&t.ID, &t.Name, &t.Phone, &t.Email, &t.SabNumber, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tenant: %w", err)
	}
	return &t, nil
}

// List lists tenants with pagination; search matches the name.
func (r *TenantRepo) List(search string, limit, offset int) ([]*entity.Tenant, error) {
	query := `
		SELECT id, name, phone, email, sab_number, created_at, updated_at
		FROM tenants
		WHERE ($1 = '' OR name ILIKE '%' || $1 || '%')
		ORDER BY name LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, search, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list tenants: %w", err)
	}
	defer rows.Close()
	var list []*entity.Tenant
	for rows.Next() {
		var t entity.Tenant
		if err := rows.Scan(&t.ID, &t.Name, &t.Phone, &t.Email, &t.SabNumber, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan tenant: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// Update updates a tenant.
func (r *TenantRepo) Update(tenant *entity.Tenant) error {
	query := `
		UPDATE tenants SET name = $2, phone = $3, email = $4, sab_number = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		tenant.ID, tenant.Name, tenant.Phone, tenant.Email, tenant.SabNumber, tenant.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update tenant: %w", err)
	}
	return nil
}

// Delete removes a tenant by ID.
func (r *TenantRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM tenants WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete tenant: %w", err)
	}
	return nil
}
