package entity

import "time"

// Tenant represents a renting party (person or company). Lease terms live
// on Contract, not here.
type Tenant struct {
	ID        string
	Name      string
	Phone     string
	Email     string
	SabNumber string
	CreatedAt time.Time
	UpdatedAt time.Time
}
