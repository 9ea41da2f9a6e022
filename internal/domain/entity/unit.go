package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Unit statuses.
const (
	UnitStatusAvailable = "available"
	UnitStatusRented    = "rented"
	UnitStatusSold      = "sold"
)

// Unit belongs to exactly one Project and is optionally owned by one Owner.
// UnitNumber is unique within its project.
type Unit struct {
	ID         string
	ProjectID  string
	OwnerID    string // empty when the company itself holds the unit
	UnitNumber string
	Type       string // apartment, office, shop...
	Area       decimal.Decimal
	Status     string // see UnitStatus* constants
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
