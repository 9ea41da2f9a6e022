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

var _ repository.ContractRepository = (*ContractRepo)(nil)

// ContractRepo implements ContractRepository (usable with pool or tx).
type ContractRepo struct {
	q Querier
}

// NewContractRepository builds the adapter. Pass a pool or tx (Querier).
func NewContractRepository(q Querier) *ContractRepo {
	return &ContractRepo{q: q}
}

const contractColumns = `id, unit_id, tenant_id, number, start_date, end_date, total_amount, document_file, status, created_at, updated_at`

// Create persists a new contract. A second active contract on the same
// unit hits the partial unique index and maps to ErrUnitOccupied.
func (r *ContractRepo) Create(contract *entity.Contract) error {
	query := `
		INSERT INTO contracts (id, unit_id, tenant_id, number, start_date, end_date, total_amount, document_file, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		contract.ID, contract.UnitID, contract.TenantID, contract.Number,
		contract.StartDate, contract.EndDate, contract.TotalAmount, contract.DocumentFile, contract.Status,
		contract.CreatedAt, contract.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrUnitOccupied
		}
		return fmt.Errorf("insert contract: %w", err)
	}
	return nil
}

// GetByID fetches a contract by ID.
func (r *ContractRepo) GetByID(id string) (*entity.Contract, error) {
	query := `SELECT ` + contractColumns + ` FROM contracts WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetByIDForUpdate locks the contract row until the surrounding
// transaction finishes. Only meaningful when the repo is tx-bound.
func (r *ContractRepo) GetByIDForUpdate(id string) (*entity.Contract, error) {
	query := `SELECT ` + contractColumns + ` FROM contracts WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetActiveByUnit returns the unit's active contract, or nil.
func (r *ContractRepo) GetActiveByUnit(unitID string) (*entity.Contract, error) {
	query := `SELECT ` + contractColumns + ` FROM contracts WHERE unit_id = $1 AND status = 'active'`
	return r.scanOne(r.q.QueryRow(context.Background(), query, unitID))
}

func (r *ContractRepo) scanOne(row pgx.Row) (*entity.Contract, error) {
	var c entity.Contract
	err := row.Scan(
		&c.ID, &c.UnitID, &c.TenantID, &c.Number, &c.StartDate, &c.EndDate,
		&c.TotalAmount, &c.DocumentFile, &c.Status, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get contract: %w", err)
	}
	return &c, nil
}

// ListByUnit lists all contracts on a unit, newest first.
func (r *ContractRepo) ListByUnit(unitID string) ([]*entity.Contract, error) {
	query := `SELECT ` + contractColumns + ` FROM contracts WHERE unit_id = $1 ORDER BY start_date DESC`
	return r.list(query, unitID)
}

// ListByTenant lists all contracts of a tenant, newest first.
func (r *ContractRepo) ListByTenant(tenantID string) ([]*entity.Contract, error) {
	query := `SELECT ` + contractColumns + ` FROM contracts WHERE tenant_id = $1 ORDER BY start_date DESC`
	return r.list(query, tenantID)
}

// List lists contracts with pagination, newest first.
func (r *ContractRepo) List(limit, offset int) ([]*entity.Contract, error) {
	query := `SELECT ` + contractColumns + ` FROM contracts ORDER BY start_date DESC LIMIT $1 OFFSET $2`
	return r.list(query, limit, offset)
}

func (r *ContractRepo) list(query string, args ...any) ([]*entity.Contract, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list contracts: %w", err)
	}
	defer rows.Close()
	var list []*entity.Contract
	for rows.Next() {
		var c entity.Contract
		if err := rows.Scan(
			&c.ID, &c.UnitID, &c.TenantID, &c.Number, &c.StartDate, &c.EndDate,
			&c.TotalAmount, &c.DocumentFile, &c.Status, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan contract: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update updates a contract.
func (r *ContractRepo) Update(contract *entity.Contract) error {
	query := `
		UPDATE contracts SET unit_id = $2, tenant_id = $3, number = $4, start_date = $5, end_date = $6,
			total_amount = $7, document_file = $8, status = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		contract.ID, contract.UnitID, contract.TenantID, contract.Number,
		contract.StartDate, contract.EndDate, contract.TotalAmount, contract.DocumentFile, contract.Status,
		contract.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrUnitOccupied
		}
		return fmt.Errorf("update contract: %w", err)
	}
	return nil
}

// Delete removes a contract by ID.
func (r *ContractRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM contracts WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete contract: %w", err)
	}
	return nil
}

// CountByTenant counts the contracts of a tenant.
func (r *ContractRepo) CountByTenant(tenantID string) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM contracts WHERE tenant_id = $1`, tenantID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count contracts by tenant: %w", err)
	}
	return n, nil
}
