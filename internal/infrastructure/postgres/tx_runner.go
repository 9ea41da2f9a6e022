package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kthaib/aqari-api/internal/application/ledger"
	"github.com/kthaib/aqari-api/internal/domain/repository"
)

var _ ledger.TxRunner = (*TxRunner)(nil)

// TxRunner runs callbacks inside one PostgreSQL transaction.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner builds the runner over the pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run begins a transaction, executes fn with tx-bound repos and commits,
// rolling back on any error.
func (r *TxRunner) Run(ctx context.Context, fn func(
	contracts repository.ContractRepository,
	payments repository.PaymentRepository,
	audits repository.AuditRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	contractRepo := NewContractRepository(tx)
	paymentRepo := NewPaymentRepository(tx)
	auditRepo := NewAuditRepository(tx)

	if err := fn(contractRepo, paymentRepo, auditRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
