package entity

import "time"

// AuditLog records who did what; appended on every mutation.
type AuditLog struct {
	ID        string
	Action    string
	User      string
	Timestamp time.Time
}
