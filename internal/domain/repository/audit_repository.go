package repository

import "github.com/kthaib/aqari-api/internal/domain/entity"

// AuditRepository is the persistence port for the audit trail.
type AuditRepository interface {
	Create(log *entity.AuditLog) error
	ListRecent(limit int) ([]*entity.AuditLog, error)
}
