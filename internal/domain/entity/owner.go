package entity

import "time"

// Owner represents a property owner managed by the company.
// SabNumber is the owner's SAB bank reference used for settlement transfers.
type Owner struct {
	ID         string
	Name       string
	NationalID string
	Phone      string
	Email      string
	Address    string
	SabNumber  string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
