package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/kthaib/aqari-api/internal/domain/entity"
	"github.com/kthaib/aqari-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.PaymentRepository = (*PaymentRepo)(nil)

// PaymentRepo implements PaymentRepository (usable with pool or tx).
type PaymentRepo struct {
	q Querier
}

// NewPaymentRepository builds the adapter. Pass a pool or tx (Querier).
func NewPaymentRepository(q Querier) *PaymentRepo {
	return &PaymentRepo{q: q}
}

const paymentColumns = `id, contract_id, unit_id, payer_type, payer_id, amount, date, description,
	company_rate, vat_rate, company_commission, vat_on_commission, net_to_owner, created_at, updated_at`

// Create persists a new ledger entry.
func (r *PaymentRepo) Create(payment *entity.Payment) error {
	query := `
		INSERT INTO payments (id, contract_id, unit_id, payer_type, payer_id, amount, date, description,
			company_rate, vat_rate, company_commission, vat_on_commission, net_to_owner, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(context.Background(), query,
		payment.ID, payment.ContractID, payment.UnitID, payment.PayerType, payment.PayerID,
		payment.Amount, payment.Date, payment.Description,
		payment.CompanyRate, payment.VATRate, payment.CompanyCommission, payment.VATOnCommission, payment.NetToOwner,
		payment.CreatedAt, payment.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}
	return nil
}

// GetByID fetches a ledger entry by ID.
func (r *PaymentRepo) GetByID(id string) (*entity.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1`
	var p entity.Payment
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.ContractID, &p.UnitID, &p.PayerType, &p.PayerID, &p.Amount, &p.Date, &p.Description,
		&p.CompanyRate, &p.VATRate, &p.CompanyCommission, &p.VATOnCommission, &p.NetToOwner,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payment: %w", err)
	}
	return &p, nil
}

// List lists ledger entries with pagination, newest first.
func (r *PaymentRepo) List(filter repository.PaymentFilter, limit, offset int) ([]*entity.Payment, error) {
	query := `
		SELECT ` + paymentColumns + `
		FROM payments
		WHERE ($1 = '' OR contract_id = $1)
		  AND ($2 = '' OR unit_id = $2)
		  AND ($3 = '' OR unit_id IN (SELECT id FROM units WHERE project_id = $3))
		  AND ($4 = '' OR payer_type = $4)
		  AND ($5::date IS NULL OR date >= $5)
		  AND ($6::date IS NULL OR date <= $6)
		  AND ($7 = '' OR description ILIKE '%' || $7 || '%')
		ORDER BY date DESC, created_at DESC
		LIMIT $8 OFFSET $9`
	rows, err := r.q.Query(context.Background(), query,
		filter.ContractID, filter.UnitID, filter.ProjectID, filter.PayerType,
		filter.StartDate, filter.EndDate, filter.Search, limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()
	var list []*entity.Payment
	for rows.Next() {
		var p entity.Payment
		if err := rows.Scan(
			&p.ID, &p.ContractID, &p.UnitID, &p.PayerType, &p.PayerID, &p.Amount, &p.Date, &p.Description,
			&p.CompanyRate, &p.VATRate, &p.CompanyCommission, &p.VATOnCommission, &p.NetToOwner,
			&p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update updates a ledger entry.
func (r *PaymentRepo) Update(payment *entity.Payment) error {
	query := `
		UPDATE payments SET payer_type = $2, payer_id = $3, amount = $4, date = $5, description = $6,
			company_rate = $7, vat_rate = $8, company_commission = $9, vat_on_commission = $10, net_to_owner = $11,
			updated_at = $12
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		payment.ID, payment.PayerType, payment.PayerID, payment.Amount, payment.Date, payment.Description,
		payment.CompanyRate, payment.VATRate, payment.CompanyCommission, payment.VATOnCommission, payment.NetToOwner,
		payment.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update payment: %w", err)
	}
	return nil
}

// Delete removes a ledger entry by ID.
func (r *PaymentRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM payments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete payment: %w", err)
	}
	return nil
}

// SumByContract sums the amounts recorded against a contract, optionally
// excluding one payment (used when that payment is being edited).
func (r *PaymentRepo) SumByContract(contractID, excludePaymentID string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM payments
		WHERE contract_id = $1 AND ($2 = '' OR id <> $2)`
	var sum decimal.Decimal
	err := r.q.QueryRow(context.Background(), query, contractID, excludePaymentID).Scan(&sum)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum payments by contract: %w", err)
	}
	return sum, nil
}

// SumByUnit sums the amounts recorded against a unit.
func (r *PaymentRepo) SumByUnit(unitID string) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(SUM(amount), 0) FROM payments WHERE unit_id = $1`, unitID).Scan(&sum)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum payments by unit: %w", err)
	}
	return sum, nil
}

// OwnerTotals aggregates the ledger over all units held by an owner.
func (r *PaymentRepo) OwnerTotals(ownerID string) (repository.OwnerBalance, error) {
	query := `
		SELECT
			COALESCE(SUM(p.amount), 0),
			COALESCE(SUM(p.company_commission), 0),
			COALESCE(SUM(p.vat_on_commission), 0),
			COALESCE(SUM(p.net_to_owner), 0)
		FROM payments p
		JOIN units u ON u.id = p.unit_id
		WHERE u.owner_id = $1`
	var b repository.OwnerBalance
	err := r.q.QueryRow(context.Background(), query, ownerID).Scan(&b.Gross, &b.Commissions, &b.VAT, &b.Net)
	if err != nil {
		return repository.OwnerBalance{}, fmt.Errorf("owner totals: %w", err)
	}
	return b, nil
}

// CountByContract counts the ledger entries of a contract.
func (r *PaymentRepo) CountByContract(contractID string) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM payments WHERE contract_id = $1`, contractID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count payments by contract: %w", err)
	}
	return n, nil
}

// CountByUnit counts the ledger entries of a unit.
func (r *PaymentRepo) CountByUnit(unitID string) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM payments WHERE unit_id = $1`, unitID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count payments by unit: %w", err)
	}
	return n, nil
}
