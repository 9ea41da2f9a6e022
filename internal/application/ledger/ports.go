package ledger

import (
	"context"

	"github.com/kthaib/aqari-api/internal/domain/repository"
)

// TxRunner executes fn inside one database transaction. The repositories
// handed to fn are bound to that transaction, so the contract row lock,
// the overpayment check, the payment write and the audit row commit or
// roll back together.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		contracts repository.ContractRepository,
		payments repository.PaymentRepository,
		audits repository.AuditRepository,
	) error) error
}
