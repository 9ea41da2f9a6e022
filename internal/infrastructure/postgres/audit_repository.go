package postgres

import (
	"context"
	"fmt"

	"github.com/kthaib/aqari-api/internal/domain/entity"
	"github.com/kthaib/aqari-api/internal/domain/repository"
)

var _ repository.AuditRepository = (*AuditRepo)(nil)

// AuditRepo implements AuditRepository (usable with pool or tx).
type AuditRepo struct {
	q Querier
}

// NewAuditRepository builds the adapter. Pass a pool or tx (Querier).
func NewAuditRepository(q Querier) *AuditRepo {
	return &AuditRepo{q: q}
}

// Create appends a row to the audit trail.
func (r *AuditRepo) Create(log *entity.AuditLog) error {
	query := `INSERT INTO audit_logs (id, action, user_name, ts) VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query, log.ID, log.Action, log.User, log.Timestamp)
	if err != nil {
		return fmt.Errorf("insert audit log: %w", err)
	}
	return nil
}

// ListRecent returns the newest trail entries.
func (r *AuditRepo) ListRecent(limit int) ([]*entity.AuditLog, error) {
	query := `SELECT id, action, user_name, ts FROM audit_logs ORDER BY ts DESC LIMIT $1`
	rows, err := r.q.Query(context.Background(), query, limit)
	if err != nil {
		return nil, fmt.Errorf("list audit logs: %w", err)
	}
	defer rows.Close()
	var list []*entity.AuditLog
	for rows.Next() {
		var l entity.AuditLog
		if err := rows.Scan(&l.ID, &l.Action, &l.User, &l.Timestamp); err != nil {
			return nil, fmt.Errorf("scan audit log: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}
