package entity

import "time"

// Valid roles for User.
const (
	RoleAdmin      = "admin"
	RoleAccountant = "accountant"
	RoleClerk      = "clerk"
)

// User represents a staff account.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, never plain after persisting
	Name         string
	Role         string // admin, accountant, clerk
	Status       string // active, inactive, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
